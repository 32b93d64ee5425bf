// Package params holds the YAML experiment parameters consumed by the
// command layer and the experiment drivers.
package params

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/spectralkit/gobie/cauchy"
	"github.com/spectralkit/gobie/geom2D"
)

// Parameters obtained from the YAML input file
type Parameters struct {
	Title     string    `yaml:"Title"`
	Curve     string    `yaml:"Curve"` // circle, ellipse, starfish
	Radius    float64   `yaml:"Radius"`
	SemiX     float64   `yaml:"SemiX"` // ellipse semiaxes
	SemiY     float64   `yaml:"SemiY"`
	Amplitude float64   `yaml:"Amplitude"` // starfish wobble
	Arms      int       `yaml:"Arms"`
	Phase     float64   `yaml:"Phase"`
	Ns        []int     `yaml:"Ns"`        // node count sweep
	Distances []float64 `yaml:"Distances"` // target distances off the curve
	Mu        float64   `yaml:"Mu"`        // Stokes viscosity
	Side      string    `yaml:"Side"`      // interior or exterior
}

// NewParameters returns the defaults of the paper experiments: the five
// armed starfish, interior side, unit viscosity.
func NewParameters() *Parameters {
	return &Parameters{
		Title:     "default",
		Curve:     "starfish",
		Radius:    1,
		SemiX:     1,
		SemiY:     0.5,
		Amplitude: 0.3,
		Arms:      5,
		Phase:     0.2,
		Ns:        []int{32, 64, 128, 256},
		Distances: []float64{1.e-2, 1.e-4, 1.e-6, 1.e-8, 1.e-10},
		Mu:        1,
		Side:      "interior",
	}
}

func (p *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

func (p *Parameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("[%s]\t\t= Curve\n", p.Curve)
	fmt.Printf("%8.5f\t\t= Radius\n", p.Radius)
	fmt.Printf("%8.5f\t\t= Amplitude\n", p.Amplitude)
	fmt.Printf("[%d]\t\t\t= Arms\n", p.Arms)
	fmt.Printf("%8.5f\t\t= Mu\n", p.Mu)
	fmt.Printf("[%s]\t\t= Side\n", p.Side)
	fmt.Printf("%v\t= Ns\n", p.Ns)
	fmt.Printf("%v\t= Distances\n", p.Distances)
}

// Segment builds the configured curve at N nodes.
func (p *Parameters) Segment(N int) (*geom2D.Segment, error) {
	switch strings.ToLower(p.Curve) {
	case "circle":
		f, fp, fpp := geom2D.Circle(p.Radius)
		return geom2D.NewSegment(N, f, fp, fpp)
	case "ellipse":
		f, fp, fpp := geom2D.Ellipse(p.SemiX, p.SemiY)
		return geom2D.NewSegment(N, f, fp, fpp)
	case "starfish", "":
		f, fp, fpp := geom2D.Starfish(p.Radius, p.Amplitude, p.Arms, p.Phase)
		return geom2D.NewSegment(N, f, fp, fpp)
	}
	return nil, fmt.Errorf("unknown curve family %q", p.Curve)
}

// SideEnum converts the YAML side string to the evaluation enum.
func (p *Parameters) SideEnum() (cauchy.Side, error) {
	switch strings.ToLower(p.Side) {
	case "interior", "":
		return cauchy.Interior, nil
	case "exterior":
		return cauchy.Exterior, nil
	}
	return cauchy.Interior, fmt.Errorf("unknown side %q", p.Side)
}
