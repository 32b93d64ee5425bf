package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectralkit/gobie/cauchy"
)

func TestParseYAML(t *testing.T) {
	data := `
Title: "Close evaluation sweep"
Curve: circle
Radius: 2.5
Side: exterior
Ns: [16, 32]
Distances: [1.e-3, 1.e-6]
Mu: 0.7
`
	p := NewParameters()
	require.NoError(t, p.Parse([]byte(data)))
	assert.Equal(t, "Close evaluation sweep", p.Title)
	assert.Equal(t, 2.5, p.Radius)
	assert.Equal(t, []int{16, 32}, p.Ns)
	assert.Equal(t, 0.7, p.Mu)

	side, err := p.SideEnum()
	require.NoError(t, err)
	assert.Equal(t, cauchy.Exterior, side)

	seg, err := p.Segment(16)
	require.NoError(t, err)
	assert.Equal(t, 16, seg.N)
	assert.InDelta(t, 2.5, seg.Sp.DataP[0], 1.e-12)
}

func TestUnknownCurveAndSide(t *testing.T) {
	p := NewParameters()
	p.Curve = "lemniscate"
	_, err := p.Segment(32)
	require.Error(t, err)
	p.Side = "above"
	_, err = p.SideEnum()
	require.Error(t, err)
}
