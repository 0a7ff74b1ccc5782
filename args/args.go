// Package args decodes the fixed size Black-76 argument block.
//
// The block is 61 bytes, all integers big-endian:
//
//  | Offset | Length | Field          | Encoding                          |
//  |--------|--------|----------------|-----------------------------------|
//  | 0      | 4      | expiry seconds | unsigned 32 bit, unscaled         |
//  | 4      | 8      | discount       | unsigned 64 bit, scaled           |
//  | 12     | 16     | volatility     | unsigned 128 bit, scaled          |
//  | 28     | 16     | forward        | unsigned 128 bit, scaled          |
//  | 44     | 16     | strike         | unsigned 128 bit, scaled          |
//  | 60     | 1      | exponent       | signed 8 bit                      |
//  |--------|--------|----------------|-----------------------------------|
//
// Every scaled field shares the single exponent at offset 60.
package args

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/b76/fixed"
	"github.com/calebcase/b76/integer"
)

// Error is the class of argument errors.
var Error = errs.Class("args")

// Layout of the argument block.
const (
	ExpiryOffset     = 0
	DiscountOffset   = ExpiryOffset + 4
	VolatilityOffset = DiscountOffset + 8
	ForwardOffset    = VolatilityOffset + 16
	StrikeOffset     = ForwardOffset + 16
	ExponentOffset   = StrikeOffset + 16

	Size = ExponentOffset + 1
)

type field struct {
	offset int
	schema integer.Schema
}

var (
	expiryField     = field{ExpiryOffset, integer.Unsigned32}
	discountField   = field{DiscountOffset, integer.Unsigned64}
	volatilityField = field{VolatilityOffset, integer.Unsigned128}
	forwardField    = field{ForwardOffset, integer.Unsigned128}
	strikeField     = field{StrikeOffset, integer.Unsigned128}
	exponentField   = field{ExponentOffset, integer.Signed8}
)

func (f field) decode(data []byte) (*big.Int, error) {
	return f.schema.Decode(data[f.offset : f.offset+f.schema.Size()])
}

func (f field) encode(data []byte, i *big.Int) error {
	b, err := f.schema.Encode(i)
	if err != nil {
		return err
	}

	copy(data[f.offset:], b)

	return nil
}

// Arguments are the raw fields of an argument block.
type Arguments struct {
	ExpirySec  uint32
	Discount   *big.Int
	Volatility *big.Int
	Forward    *big.Int
	Strike     *big.Int
	Exponent   int8
}

// Values are the decoded arguments.
type Values struct {
	ExpirySec  float64
	Discount   float64
	Volatility float64
	Forward    float64
	Strike     float64
	Exponent   int8
}

// Parse slices an argument block into its fields.
func Parse(data []byte) (a *Arguments, err error) {
	if len(data) != Size {
		return nil, Error.New("wrong length of arguments: %d", len(data))
	}

	a = &Arguments{}

	expiry, err := expiryField.decode(data)
	if err != nil {
		return nil, err
	}
	a.ExpirySec = uint32(expiry.Uint64())

	exponent, err := exponentField.decode(data)
	if err != nil {
		return nil, err
	}
	a.Exponent = int8(exponent.Int64())

	a.Discount, err = discountField.decode(data)
	if err != nil {
		return nil, err
	}

	a.Volatility, err = volatilityField.decode(data)
	if err != nil {
		return nil, err
	}

	a.Forward, err = forwardField.decode(data)
	if err != nil {
		return nil, err
	}

	a.Strike, err = strikeField.decode(data)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Values decodes the scaled fields with the block's exponent.
func (a *Arguments) Values() Values {
	return Values{
		ExpirySec:  float64(a.ExpirySec),
		Discount:   fixed.Decode(a.Discount, a.Exponent),
		Volatility: fixed.Decode(a.Volatility, a.Exponent),
		Forward:    fixed.Decode(a.Forward, a.Exponent),
		Strike:     fixed.Decode(a.Strike, a.Exponent),
		Exponent:   a.Exponent,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler. Nil scaled fields are
// written as zero.
func (a *Arguments) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	data = make([]byte, Size)

	fields := []struct {
		f field
		i *big.Int
	}{
		{expiryField, new(big.Int).SetUint64(uint64(a.ExpirySec))},
		{discountField, a.Discount},
		{volatilityField, a.Volatility},
		{forwardField, a.Forward},
		{strikeField, a.Strike},
		{exponentField, big.NewInt(int64(a.Exponent))},
	}

	for _, fi := range fields {
		i := fi.i
		if i == nil {
			i = new(big.Int)
		}

		err = fi.f.encode(data, i)
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}
