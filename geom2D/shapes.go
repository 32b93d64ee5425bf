package geom2D

import (
	"math"
)

// Circle returns the parametrization of a circle of radius r about the
// origin, with analytic derivatives.
func Circle(r float64) (f, fp, fpp MapFunc) {
	f = func(t float64) complex128 {
		return complex(r*math.Cos(t), r*math.Sin(t))
	}
	fp = func(t float64) complex128 {
		return complex(-r*math.Sin(t), r*math.Cos(t))
	}
	fpp = func(t float64) complex128 {
		return complex(-r*math.Cos(t), -r*math.Sin(t))
	}
	return
}

// Ellipse returns the parametrization of an axis aligned ellipse with
// semiaxes a and b.
func Ellipse(a, b float64) (f, fp, fpp MapFunc) {
	f = func(t float64) complex128 {
		return complex(a*math.Cos(t), b*math.Sin(t))
	}
	fp = func(t float64) complex128 {
		return complex(-a*math.Sin(t), b*math.Cos(t))
	}
	fpp = func(t float64) complex128 {
		return complex(-a*math.Cos(t), -b*math.Sin(t))
	}
	return
}

// Starfish returns the wobbly star shaped curve
//
//	z(t) = r (1 + amp cos(arms t + phase)) exp(it)
//
// the standard stress test geometry for close evaluation schemes. amp around
// 0.3 with 5 arms gives pronounced concave regions.
func Starfish(r, amp float64, arms int, phase float64) (f, fp, fpp MapFunc) {
	var (
		k = float64(arms)
	)
	rho := func(t float64) float64 { return r * (1. + amp*math.Cos(k*t+phase)) }
	rhop := func(t float64) float64 { return -r * amp * k * math.Sin(k*t+phase) }
	rhopp := func(t float64) float64 { return -r * amp * k * k * math.Cos(k*t+phase) }
	f = func(t float64) complex128 {
		eit := complex(math.Cos(t), math.Sin(t))
		return complex(rho(t), 0) * eit
	}
	fp = func(t float64) complex128 {
		eit := complex(math.Cos(t), math.Sin(t))
		return complex(rhop(t), rho(t)) * eit
	}
	fpp = func(t float64) complex128 {
		eit := complex(math.Cos(t), math.Sin(t))
		return complex(rhopp(t)-rho(t), 2.*rhop(t)) * eit
	}
	return
}
