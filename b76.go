// Package b76 evaluates Black-76 option requests encoded as fixed point
// binary.
//
// A request is a 4 byte selector followed by a 61 byte argument block (see
// package args). The response is a sequence of 16 byte big-endian unsigned
// words, each a scaled decimal using the request's exponent:
//
//  | Operation    | Response                                        |
//  |--------------|-------------------------------------------------|
//  | prices_delta | call price ‖ put price ‖ call delta (48 bytes)  |
//  | prices       | call price ‖ put price (32 bytes)               |
//  | delta        | call delta (16 bytes)                           |
//  |--------------|-------------------------------------------------|
//
// Compute is pure: identical requests always produce identical responses.
package b76

import (
	"github.com/calebcase/b76/args"
	"github.com/calebcase/b76/integer"
	"github.com/calebcase/b76/selector"
)

// Gas is the fixed cost of a request.
const Gas uint64 = 300

// RequiredGas returns the cost of evaluating input. It does not depend on the
// input.
func RequiredGas(input []byte) uint64 {
	return Gas
}

// Compute evaluates a request. Failures carry a Code (see CodeOf) and are
// detected before any numeric work.
func Compute(data []byte) (out []byte, err error) {
	if len(data) < selector.Size {
		return nil, Error.Wrap(WrongSelectorLength)
	}

	op, ok := selector.Operations.Match(data)
	if !ok {
		return nil, Error.Wrap(UnknownSelector)
	}

	a, err := args.Parse(data[selector.Size:])
	if err != nil {
		return nil, Error.Wrap(WrongLengthOfArguments)
	}

	return Calculate(a).Encode(op.Fields...), nil
}

// Request assembles a request for op.
func Request(op selector.Operation, a *args.Arguments) (data []byte, err error) {
	block, err := a.MarshalBinary()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	data = make([]byte, 0, selector.Size+args.Size)
	data = append(data, op.Selector[:]...)
	data = append(data, block...)

	return data, nil
}

// Response splits a response into its words.
func Response(data []byte) (words []integer.Uint128, err error) {
	if len(data)%integer.Size128 != 0 {
		return nil, Error.New("invalid response length: %d", len(data))
	}

	words = make([]integer.Uint128, len(data)/integer.Size128)
	for i := range words {
		err = words[i].UnmarshalBinary(data[i*integer.Size128 : (i+1)*integer.Size128])
		if err != nil {
			return nil, Error.Wrap(err)
		}
	}

	return words, nil
}
