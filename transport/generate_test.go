package transport_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fctp/transport"
)

func TestGenerate_Ranges(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p, err := transport.Generate(4, 6, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Equal(t, 4, p.Sources())
		require.Equal(t, 6, p.Destinations())
		require.NotEqual(t, transport.UnderSupplied, p.Balance())
		require.GreaterOrEqual(t, float64(p.TotalSupply()), 1.25*float64(p.TotalDemand())-1e-9)

		for _, d := range p.Demand() {
			require.GreaterOrEqual(t, d, 40)
			require.LessOrEqual(t, d, 150)
		}
		for _, row := range p.UnitCost().ToRows() {
			for _, v := range row {
				require.GreaterOrEqual(t, v, 2.0)
				require.LessOrEqual(t, v, 10.0)
			}
		}
		for _, row := range p.FixedCost().ToRows() {
			for _, v := range row {
				require.GreaterOrEqual(t, v, 30.0)
				require.LessOrEqual(t, v, 70.0)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := transport.Generate(3, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := transport.Generate(3, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := transport.Generate(3, 3, nil)
	require.NoError(t, err)
	d, err := transport.Generate(3, 3, nil)
	require.NoError(t, err)
	require.Equal(t, c, d)

	_, err = transport.Generate(0, 3, nil)
	require.ErrorIs(t, err, transport.ErrMalformedInput)
}
