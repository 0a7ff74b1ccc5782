package precompile_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/b76"
	"github.com/calebcase/b76/args"
	"github.com/calebcase/b76/precompile"
	"github.com/calebcase/b76/selector"
)

func request(t *testing.T, op selector.Operation) []byte {
	data, err := b76.Request(op, &args.Arguments{
		ExpirySec:  0,
		Discount:   big.NewInt(1),
		Volatility: big.NewInt(1),
		Forward:    big.NewInt(110),
		Strike:     big.NewInt(100),
		Exponent:   0,
	})
	require.NoError(t, err)

	return data
}

func TestCall(t *testing.T) {
	c := &precompile.Black76{}

	t.Run("ok", func(t *testing.T) {
		out := make([]byte, precompile.MaxOutput)

		n, code := c.Call(request(t, selector.PricesDelta), out)
		require.Equal(t, b76.OK, code)
		require.Equal(t, 48, n)
		require.Equal(t, byte(10), out[15])

		n, code = c.Call(request(t, selector.Delta), out)
		require.Equal(t, b76.OK, code)
		require.Equal(t, 16, n)
	})

	t.Run("failures", func(t *testing.T) {
		out := make([]byte, precompile.MaxOutput)

		n, code := c.Call([]byte{0x5f, 0x53}, out)
		require.Equal(t, b76.WrongSelectorLength, code)
		require.Zero(t, n)

		n, code = c.Call([]byte{0x01, 0x02, 0x03, 0x04}, out)
		require.Equal(t, b76.UnknownSelector, code)
		require.Zero(t, n)

		n, code = c.Call(request(t, selector.Prices)[:64], out)
		require.Equal(t, b76.WrongLengthOfArguments, code)
		require.Zero(t, n)

		require.Equal(t, make([]byte, precompile.MaxOutput), out)
	})
}

func TestCallShortOutput(t *testing.T) {
	c := &precompile.Black76{}

	type TC struct {
		op   selector.Operation
		size int
	}

	tcs := []TC{
		{op: selector.PricesDelta, size: 47},
		{op: selector.PricesDelta, size: 32},
		{op: selector.Prices, size: 31},
		{op: selector.Delta, size: 0},
	}

	for _, tc := range tcs {
		t.Run(tc.op.Name, func(t *testing.T) {
			out := make([]byte, tc.size)

			n, code := c.Call(request(t, tc.op), out)
			require.Equal(t, b76.ShortOutput, code)
			require.Zero(t, n)
			require.Equal(t, make([]byte, tc.size), out)
		})
	}

	t.Run("exact fit", func(t *testing.T) {
		out := make([]byte, 16)

		n, code := c.Call(request(t, selector.Delta), out)
		require.Equal(t, b76.OK, code)
		require.Equal(t, 16, n)
	})
}

func TestRun(t *testing.T) {
	c := &precompile.Black76{}

	require.Equal(t, uint64(300), c.RequiredGas(nil))

	out, err := c.Run(request(t, selector.Prices))
	require.NoError(t, err)
	require.Len(t, out, 32)

	_, err = c.Run(nil)
	require.ErrorIs(t, err, b76.WrongSelectorLength)
}
