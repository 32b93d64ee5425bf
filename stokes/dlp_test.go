package stokes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/utils"
)

func circle(t *testing.T, N int, r float64) *geom2D.Segment {
	f, fp, fpp := geom2D.Circle(r)
	seg, err := geom2D.NewSegment(N, f, fp, fpp)
	require.NoError(t, err)
	return seg
}

func starfish(t *testing.T, N int) *geom2D.Segment {
	f, fp, fpp := geom2D.Starfish(1, 0.3, 5, 0.2)
	seg, err := geom2D.NewSegment(N, f, fp, fpp)
	require.NoError(t, err)
	return seg
}

// constDensity stacks the constant vector (cx, cy) node fast, component slow.
func constDensity(N int, cx, cy float64) (sigma utils.Matrix) {
	sigma = utils.NewMatrix(2*N, 1)
	for j := 0; j < N; j++ {
		sigma.DataP[j] = cx
		sigma.DataP[j+N] = cy
	}
	return
}

// The double layer of a constant density is the rigid translation -sigma
// inside the curve and zero outside; its pressure and traction vanish inside.
func TestDLPConstantDensityIdentities(t *testing.T) {
	var (
		N     = 256
		mu    = 0.7
		seg   = starfish(t, N)
		sigma = constDensity(N, 1, 2)
		zIn   = []complex128{0.1 + 0.05i, -0.2 + 0.1i}
		nIn   = []complex128{1, complex(math.Cos(1.1), math.Sin(1.1))}
	)
	tg, err := geom2D.NewTargetsWithNormals(zIn, nIn)
	require.NoError(t, err)
	res, err := Eval(seg, sigma, tg, mu, Velocity|Pressure|Traction)
	require.NoError(t, err)
	M := tg.Len()
	for i := 0; i < M; i++ {
		assert.InDelta(t, -1., res.Vel.At(i, 0), 1.e-12)
		assert.InDelta(t, -2., res.Vel.At(i+M, 0), 1.e-12)
		assert.InDelta(t, 0., res.Pres.At(i, 0), 1.e-12)
		assert.InDelta(t, 0., res.Trac.At(i, 0), 1.e-11)
		assert.InDelta(t, 0., res.Trac.At(i+M, 0), 1.e-11)
	}

	tgOut := geom2D.NewTargets([]complex128{2.5, -2 + 2i})
	out, err := Eval(seg, sigma, tgOut, mu, Velocity)
	require.NoError(t, err)
	for i := range out.Vel.DataP {
		assert.InDelta(t, 0., out.Vel.DataP[i], 1.e-12)
	}
}

func TestDLPSelfDiagonalLimit(t *testing.T) {
	// The -const/2 identity below needs the full on surface rule to have
	// converged, which on the starfish takes a few hundred nodes.
	var (
		N   = 256
		seg = starfish(t, N)
	)
	K, err := DLPMatrices(geom2D.SelfTargets(seg), seg, 1, Velocity)
	require.NoError(t, err)
	for j := 0; j < N; j++ {
		var (
			tx = real(seg.Tang.DataP[j])
			ty = imag(seg.Tang.DataP[j])
			c  = -seg.Cur.DataP[j] / (2. * math.Pi) * seg.W.DataP[j]
		)
		assert.InDelta(t, c*tx*tx, K.Vel.At(j, j), 1.e-14)
		assert.InDelta(t, c*tx*ty, K.Vel.At(j, j+N), 1.e-14)
		assert.InDelta(t, c*ty*tx, K.Vel.At(j+N, j), 1.e-14)
		assert.InDelta(t, c*ty*ty, K.Vel.At(j+N, j+N), 1.e-14)
	}
	// With the correction in place the on surface operator carries the
	// principal value: K * const = -const/2
	uSelf := K.Vel.Mul(constDensity(N, 1, 0))
	for j := 0; j < N; j++ {
		assert.InDelta(t, -0.5, uSelf.At(j, 0), 1.e-12)
		assert.InDelta(t, 0., uSelf.At(j+N, 0), 1.e-12)
	}
}

// The two off diagonal velocity blocks come from the same scalar field
// r_x r_y (r.n)/|r|^4 and must be identical entry for entry.
func TestDLPOffDiagonalBlocksShared(t *testing.T) {
	var (
		N   = 40
		seg = starfish(t, N)
		tg  = geom2D.NewTargets([]complex128{0.1, 0.3 + 0.2i, 2.5i, -1.7})
		M   = tg.Len()
	)
	K, err := DLPMatrices(tg, seg, 1, Velocity)
	require.NoError(t, err)
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			assert.Equal(t, K.Vel.At(i, j+N), K.Vel.At(i+M, j))
		}
	}
	// The diagonal limit rows share their off diagonal scalar the same way
	Kself, err := DLPMatrices(geom2D.SelfTargets(seg), seg, 1, Velocity)
	require.NoError(t, err)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			assert.Equal(t, Kself.Vel.At(i, j+N), Kself.Vel.At(i+N, j))
		}
	}
}

// Pressure and traction have no self interaction limit; requesting them on
// self targets must stay an explicit error, never a silent singular answer.
func TestDLPSelfEvalLimitationsPreserved(t *testing.T) {
	var (
		seg  = starfish(t, 32)
		self = geom2D.SelfTargets(seg)
	)
	_, err := DLPMatrices(self, seg, 1, Velocity|Pressure)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSelfEvalUnsupported)
	_, err = DLPMatrices(self, seg, 1, Velocity|Traction)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSelfEvalUnsupported)
	// Velocity alone is fine, the diagonal limit exists
	_, err = DLPMatrices(self, seg, 1, Velocity)
	assert.NoError(t, err)
}

func TestDLPTractionRequiresNormals(t *testing.T) {
	var (
		seg = starfish(t, 32)
		tg  = geom2D.NewTargets([]complex128{0.1})
	)
	_, err := DLPMatrices(tg, seg, 1, Velocity|Traction)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingNormals)
}

// Traction must equal -p m + mu (grad u + grad u^T) m assembled from the
// velocity and pressure kernels, checked by central differencing the
// velocity field at the target.
func TestDLPTractionConsistency(t *testing.T) {
	var (
		N     = 96
		mu    = 1.3
		seg   = starfish(t, N)
		x0    = 0.25 + 0.1i
		m     = complex(math.Cos(0.4), math.Sin(0.4))
		h     = 1.e-5
		sigma = utils.NewMatrix(2*N, 1)
	)
	for j, tj := range seg.T.DataP {
		sigma.DataP[j] = math.Sin(2*tj) + 0.3
		sigma.DataP[j+N] = math.Cos(3 * tj)
	}
	velAt := func(z complex128) (u, v float64) {
		res, err := Eval(seg, sigma, geom2D.NewTargets([]complex128{z}), mu, Velocity)
		require.NoError(t, err)
		return res.Vel.At(0, 0), res.Vel.At(1, 0)
	}
	uE, vE := velAt(x0 + complex(h, 0))
	uW, vW := velAt(x0 - complex(h, 0))
	uN, vN := velAt(x0 + complex(0, h))
	uS, vS := velAt(x0 - complex(0, h))
	var (
		ux, uy = (uE - uW) / (2 * h), (uN - uS) / (2 * h)
		vx, vy = (vE - vW) / (2 * h), (vN - vS) / (2 * h)
	)
	tg, err := geom2D.NewTargetsWithNormals([]complex128{x0}, []complex128{m})
	require.NoError(t, err)
	res, err := Eval(seg, sigma, tg, mu, Velocity|Pressure|Traction)
	require.NoError(t, err)
	var (
		p        = res.Pres.At(0, 0)
		mx, my   = real(m), imag(m)
		wantFx   = -p*mx + mu*(2*ux*mx+(uy+vx)*my)
		wantFy   = -p*my + mu*((uy+vx)*mx+2*vy*my)
		gotFx    = res.Trac.At(0, 0)
		gotFy    = res.Trac.At(1, 0)
		tolerate = 1.e-6
	)
	assert.InDelta(t, wantFx, gotFx, tolerate)
	assert.InDelta(t, wantFy, gotFy, tolerate)
}

// The wrapper is pure composition: its output must equal the caller's own
// matrix times density product exactly.
func TestEvalMatchesMatrixComposition(t *testing.T) {
	var (
		N     = 48
		mu    = 0.9
		seg   = starfish(t, N)
		sigma = constDensity(N, 0.5, -1.5)
		zs    = []complex128{0.1, 0.2 + 0.1i}
		ns    = []complex128{1i, 1}
	)
	tg, err := geom2D.NewTargetsWithNormals(zs, ns)
	require.NoError(t, err)
	K, err := DLPMatrices(tg, seg, mu, Velocity|Pressure|Traction)
	require.NoError(t, err)
	res, err := Eval(seg, sigma, tg, mu, Velocity|Pressure|Traction)
	require.NoError(t, err)
	assert.Equal(t, K.Vel.Mul(sigma).DataP, res.Vel.DataP)
	assert.Equal(t, K.Pres.Mul(sigma).DataP, res.Pres.DataP)
	assert.Equal(t, K.Trac.Mul(sigma).DataP, res.Trac.DataP)
}

// A stacked three column density must come back as the column for column
// concatenation of three single column evaluations.
func TestEvalBatchedColumns(t *testing.T) {
	var (
		N   = 40
		mu  = 1.0
		seg = starfish(t, N)
		tg  = geom2D.NewTargets([]complex128{0.1, -0.2 + 0.15i})
	)
	sigma := utils.NewMatrix(2*N, 3)
	for j := 0; j < 2*N; j++ {
		for c := 0; c < 3; c++ {
			sigma.DataP[j*3+c] = math.Sin(float64(j+1) * float64(c+1) * 0.1)
		}
	}
	batched, err := Eval(seg, sigma, tg, mu, Velocity|Pressure)
	require.NoError(t, err)
	for c := 0; c < 3; c++ {
		col := utils.NewMatrix(2*N, 1, sigma.Col(c).DataP)
		single, err := Eval(seg, col, tg, mu, Velocity|Pressure)
		require.NoError(t, err)
		for i := 0; i < 2*tg.Len(); i++ {
			assert.InDelta(t, single.Vel.At(i, 0), batched.Vel.At(i, c), 1.e-14)
		}
		for i := 0; i < tg.Len(); i++ {
			assert.InDelta(t, single.Pres.At(i, 0), batched.Pres.At(i, c), 1.e-14)
		}
	}
}

func TestEvalDimensionCheck(t *testing.T) {
	seg := circle(t, 32, 1)
	_, err := Eval(seg, utils.NewMatrix(32, 1), geom2D.NewTargets([]complex128{0}), 1, Velocity)
	require.Error(t, err)
}

func TestEvalOnlyRequestedOutputs(t *testing.T) {
	var (
		N   = 32
		seg = circle(t, N, 1)
		tg  = geom2D.NewTargets([]complex128{0.2})
	)
	res, err := Eval(seg, constDensity(N, 1, 0), tg, 1, Velocity)
	require.NoError(t, err)
	assert.False(t, res.Vel.IsEmpty())
	assert.True(t, res.Pres.IsEmpty())
	assert.True(t, res.Trac.IsEmpty())
}
