// Package precompile adapts b76 to a host that calls contracts through a
// status code and a caller owned output buffer.
package precompile

import (
	"github.com/calebcase/b76"
)

// MaxOutput is the largest response any operation produces.
const MaxOutput = 48

// Black76 is the Black-76 precompiled contract.
type Black76 struct{}

// RequiredGas returns the cost of running input.
func (c *Black76) RequiredGas(input []byte) uint64 {
	return b76.RequiredGas(input)
}

// Run evaluates input.
func (c *Black76) Run(input []byte) ([]byte, error) {
	return b76.Compute(input)
}

// Call evaluates input into out and returns the number of bytes written with
// the status code. Nothing is written unless the code is b76.OK. A response
// longer than out fails with b76.ShortOutput; MaxOutput bytes always suffice.
func (c *Black76) Call(input []byte, out []byte) (n int, code b76.Code) {
	res, err := b76.Compute(input)
	if err != nil {
		code, _ = b76.CodeOf(err)

		return 0, code
	}

	if len(out) < len(res) {
		return 0, b76.ShortOutput
	}

	return copy(out, res), b76.OK
}
