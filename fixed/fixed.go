package fixed

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/b76/integer"
)

// Error is the class of fixed point errors.
var Error = errs.Class("fixed")

// Zero is the encoding of 0.
var Zero = integer.Zero

// Decimal is a scaled fixed point decimal: Raw * 10^-Exponent.
type Decimal struct {
	Raw      *big.Int
	Exponent int8
}

// Float64 returns the decimal narrowed to a float64.
func (d Decimal) Float64() float64 {
	return Decode(d.Raw, d.Exponent)
}

// String returns the exact decimal representation.
func (d Decimal) String() string {
	return decimal.NewFromBigInt(d.Raw, -int32(d.Exponent)).String()
}

// Decode returns raw * 10^-exponent as a float64.
func Decode(raw *big.Int, exponent int8) float64 {
	f, _ := decimal.NewFromBigInt(raw, -int32(exponent)).Float64()

	return f
}

// DecodeBytes decodes a big-endian unsigned raw value.
func DecodeBytes(raw []byte, exponent int8) float64 {
	return Decode(new(big.Int).SetBytes(raw), exponent)
}

// Encode returns the exact binary value of value times 10^exponent, truncated
// toward zero, as an unsigned 128 bit integer. Values that cannot be
// represented saturate to integer.Max.
func Encode(value float64, exponent int8) integer.Uint128 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return integer.Max
	}

	i := exact(value).Shift(int32(exponent)).BigInt()

	u, err := integer.FromBig(i)
	if err != nil {
		return integer.Max
	}

	return u
}

// exact returns the exact decimal value of a finite float64.
func exact(value float64) decimal.Decimal {
	frac, exp := math.Frexp(value)

	// value = mant * 2^exp with an integral mant.
	mant := new(big.Int).SetInt64(int64(math.Ldexp(frac, 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}

	// mant * 2^-n = mant * 5^n * 10^-n
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)

	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

// Parse converts a decimal string into the raw integer for the given exponent.
// It fails if the text has more fractional digits than the exponent allows or
// if the result is negative.
func Parse(text string, exponent int8) (raw *big.Int, err error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	scaled := d.Shift(int32(exponent))
	if !scaled.IsInteger() {
		return nil, Error.New("%q is not representable with exponent %d", text, exponent)
	}
	if scaled.Sign() < 0 {
		return nil, Error.New("%q is negative", text)
	}

	return scaled.BigInt(), nil
}
