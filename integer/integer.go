// Package integer provides fixed width big-endian integers.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of integer errors.
var Error = errs.Class("integer")

// Size128 is the number of bytes in a Uint128.
const Size128 = 16

// Uint128 is a 128 bit unsigned integer stored big-endian.
type Uint128 [Size128]byte

var (
	// Zero is the Uint128 encoding of 0.
	Zero = Uint128{}

	// Max is the Uint128 encoding of 2^128-1.
	Max = Uint128{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}

	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// FromBig converts i to a Uint128. It fails if i is negative or does not fit
// in 128 bits.
func FromBig(i *big.Int) (u Uint128, err error) {
	if i.Sign() < 0 || i.Cmp(maxUint128) > 0 {
		return u, Error.New("out of range: %s", i)
	}

	i.FillBytes(u[:])

	return u, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u Uint128) MarshalBinary() (data []byte, err error) {
	data = make([]byte, Size128)
	copy(data, u[:])

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *Uint128) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size128 {
		return Error.New("invalid length: %d", len(data))
	}

	copy(u[:], data)

	return nil
}

// Schema for an integer.
type Schema struct {
	Bits   uint
	Signed bool
}

// Common schemas.
var (
	Unsigned32  = Schema{Bits: 32}
	Unsigned64  = Schema{Bits: 64}
	Unsigned128 = Schema{Bits: 128}
	Signed8     = Schema{Bits: 8, Signed: true}
)

// Size returns the number of bytes occupied by an integer of this schema.
func (s Schema) Size() int {
	return int((s.Bits + 7) / 8)
}

// Decode reads an integer. Signed integers are two's complement.
func (s Schema) Decode(data []byte) (i *big.Int, err error) {
	if len(data) != s.Size() {
		return nil, Error.New("invalid length: bits=%d len=%d", s.Bits, len(data))
	}

	i = new(big.Int).SetBytes(data)

	if s.Signed && i.Bit(int(s.Bits)-1) == 1 {
		i.Sub(i, new(big.Int).Lsh(big.NewInt(1), s.Bits))
	}

	return i, nil
}

// Encode writes i using exactly Size bytes.
func (s Schema) Encode(i *big.Int) (data []byte, err error) {
	lo, hi := s.bounds()
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return nil, Error.New("out of range: bits=%d signed=%t value=%s", s.Bits, s.Signed, i)
	}

	v := new(big.Int).Set(i)
	if v.Sign() < 0 {
		v.Add(v, new(big.Int).Lsh(big.NewInt(1), s.Bits))
	}

	data = make([]byte, s.Size())
	v.FillBytes(data)

	return data, nil
}

func (s Schema) bounds() (lo, hi *big.Int) {
	if !s.Signed {
		hi = new(big.Int).Lsh(big.NewInt(1), s.Bits)
		hi.Sub(hi, big.NewInt(1))

		return big.NewInt(0), hi
	}

	hi = new(big.Int).Lsh(big.NewInt(1), s.Bits-1)
	lo = new(big.Int).Neg(hi)
	hi.Sub(hi, big.NewInt(1))

	return lo, hi
}
