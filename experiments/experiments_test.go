package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spectralkit/gobie/params"
)

func smallParams() *params.Parameters {
	ip := params.NewParameters()
	ip.Title = "smoke"
	ip.Ns = []int{16, 32}
	ip.Distances = []float64{1.e-2, 1.e-5}
	return ip
}

func TestLaplaceCloseRuns(t *testing.T) {
	c, err := NewLaplaceClose(smallParams())
	require.NoError(t, err)
	require.NotPanics(t, func() { c.Run(false) })
}

func TestLaplaceCloseExteriorRuns(t *testing.T) {
	ip := smallParams()
	ip.Side = "exterior"
	c, err := NewLaplaceClose(ip)
	require.NoError(t, err)
	require.NotPanics(t, func() { c.Run(false) })
}

func TestStokesIdentityRuns(t *testing.T) {
	require.NotPanics(t, func() { NewStokesIdentity(smallParams()).Run(false) })
}

func TestDirichletBVPRuns(t *testing.T) {
	require.NotPanics(t, func() { NewDirichletBVP(smallParams()).Run(false) })
}

func TestBadSideRejected(t *testing.T) {
	ip := smallParams()
	ip.Side = "sideways"
	_, err := NewLaplaceClose(ip)
	require.Error(t, err)
}
