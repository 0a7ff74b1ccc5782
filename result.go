package b76

import (
	"github.com/calebcase/b76/args"
	"github.com/calebcase/b76/black76"
	"github.com/calebcase/b76/fixed"
	"github.com/calebcase/b76/integer"
	"github.com/calebcase/b76/selector"
)

// Result holds the encoded outputs of a request.
//
// CallDelta is the call delta scaled by the discount factor, except when the
// strike is not positive: there it holds the discount factor itself.
type Result struct {
	CallPrice integer.Uint128
	PutPrice  integer.Uint128
	CallDelta integer.Uint128
}

// Field returns the word for f.
func (r Result) Field(f selector.Field) integer.Uint128 {
	switch f {
	case selector.CallPrice:
		return r.CallPrice
	case selector.PutPrice:
		return r.PutPrice
	case selector.CallDelta:
		return r.CallDelta
	}

	return integer.Zero
}

// Encode concatenates the words for fields in order.
func (r Result) Encode(fields ...selector.Field) []byte {
	out := make([]byte, 0, len(fields)*integer.Size128)
	for _, f := range fields {
		w := r.Field(f)
		out = append(out, w[:]...)
	}

	return out
}

// Calculate prices both legs of a and encodes the results with a's exponent.
//
// Prices are undiscounted model prices clamped to the discounted forward
// (call) and discounted strike (put). A non-positive strike or forward skips
// the model entirely.
func Calculate(a *args.Arguments) Result {
	v := a.Values()

	fwdDiscounted := v.Forward * v.Discount
	if v.Strike <= 0 {
		return Result{
			CallPrice: fixed.Encode(fwdDiscounted, v.Exponent),
			PutPrice:  fixed.Zero,
			CallDelta: fixed.Encode(v.Discount, v.Exponent),
		}
	}

	strikeDiscounted := v.Strike * v.Discount
	if v.Forward <= 0 {
		return Result{
			CallPrice: fixed.Zero,
			PutPrice:  fixed.Encode(strikeDiscounted, v.Exponent),
			CallDelta: fixed.Zero,
		}
	}

	c := black76.Contract{
		Strike:    v.Strike,
		ExpirySec: v.ExpirySec,
		IsCall:    true,
	}

	callPrice := c.Price(v.Forward, v.Volatility)
	callDelta := c.Delta(v.Forward, v.Volatility)
	c.IsCall = false
	putPrice := c.Price(v.Forward, v.Volatility)

	callDelta *= v.Discount

	// A NaN price fails both comparisons and is left to saturate on encode.
	if callPrice > fwdDiscounted {
		callPrice = fwdDiscounted
	}
	if putPrice > strikeDiscounted {
		putPrice = strikeDiscounted
	}

	return Result{
		CallPrice: fixed.Encode(callPrice, v.Exponent),
		PutPrice:  fixed.Encode(putPrice, v.Exponent),
		CallDelta: fixed.Encode(callDelta, v.Exponent),
	}
}
