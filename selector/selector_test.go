package selector_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/b76/selector"
)

func TestDerive(t *testing.T) {
	for _, op := range selector.Operations {
		t.Run(op.Name, func(t *testing.T) {
			require.Equal(t, op.Selector, selector.Derive(op.Signature))
		})
	}

	// Keccak-256 of the empty string begins c5d24601.
	require.Equal(t, "c5d24601", hex.EncodeToString(func() []byte {
		s := selector.Derive("")
		return s[:]
	}()))
}

func TestMatch(t *testing.T) {
	type TC struct {
		Input []byte
		Op    selector.Operation
		OK    bool
	}

	tcs := []TC{
		{
			Input: []byte{0x5f, 0x53, 0x18, 0x3d},
			Op:    selector.PricesDelta,
			OK:    true,
		},
		{
			Input: []byte{0x10, 0x25, 0x1f, 0x08, 0x00, 0x01},
			Op:    selector.Prices,
			OK:    true,
		},
		{
			Input: []byte{0x12, 0x9a, 0xb3, 0x1e},
			Op:    selector.Delta,
			OK:    true,
		},
		{
			Input: []byte{0x12, 0x9a, 0xb3, 0x1f},
			Op:    selector.Unknown,
			OK:    false,
		},
		{
			Input: []byte{0x12, 0x9a, 0xb3},
			Op:    selector.Unknown,
			OK:    false,
		},
		{
			Input: nil,
			Op:    selector.Unknown,
			OK:    false,
		},
	}

	for _, tc := range tcs {
		t.Run(hex.EncodeToString(tc.Input), func(t *testing.T) {
			op, ok := selector.Operations.Match(tc.Input)
			require.Equal(t, tc.OK, ok)
			require.Equal(t, tc.Op, op)
		})
	}
}

func TestFields(t *testing.T) {
	require.Equal(t, []selector.Field{selector.CallPrice, selector.PutPrice, selector.CallDelta}, selector.PricesDelta.Fields)
	require.Equal(t, []selector.Field{selector.CallPrice, selector.PutPrice}, selector.Prices.Fields)
	require.Equal(t, []selector.Field{selector.CallDelta}, selector.Delta.Fields)

	require.Equal(t, "call_delta", selector.CallDelta.String())
	require.Equal(t, "unknown", selector.Field(9).String())
}

func TestLookup(t *testing.T) {
	op, ok := selector.Operations.Lookup("prices")
	require.True(t, ok)
	require.Equal(t, selector.Prices, op)

	_, ok = selector.Operations.Lookup("gamma")
	require.False(t, ok)
}
