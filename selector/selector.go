// Package selector routes requests by their 4 byte operation prefix.
//
// Selectors are the first 4 bytes of the Keccak-256 hash of the operation's
// signature:
//
//  | Selector    | Operation    | Output                              |
//  |-------------|--------------|-------------------------------------|
//  | 5f 53 18 3d | prices_delta | call price, put price, call delta   |
//  | 10 25 1f 08 | prices       | call price, put price               |
//  | 12 9a b3 1e | delta        | call delta                          |
//  |-------------|--------------|-------------------------------------|
package selector

import (
	"golang.org/x/crypto/sha3"
)

// Size is the length of a selector in bytes.
const Size = 4

// Selector identifies an operation.
type Selector [Size]byte

// Derive computes the selector of a signature.
func Derive(signature string) (s Selector) {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	copy(s[:], h.Sum(nil))

	return s
}

// Field is a single 16 byte output word.
type Field uint8

// Output fields in their fixed order.
const (
	CallPrice Field = iota
	PutPrice
	CallDelta
)

func (f Field) String() string {
	switch f {
	case CallPrice:
		return "call_price"
	case PutPrice:
		return "put_price"
	case CallDelta:
		return "call_delta"
	}

	return "unknown"
}

// Operation is a routable request shape.
type Operation struct {
	Selector  Selector
	Name      string
	Signature string
	Fields    []Field
}

// Match returns true if the operation's selector matches prefix.
func (op Operation) Match(prefix []byte) bool {
	return len(prefix) >= Size && Selector(prefix[:Size]) == op.Selector
}

type operations []Operation

// Match returns the operation selected by the leading bytes of data.
func (ops operations) Match(data []byte) (op Operation, ok bool) {
	for _, op := range ops {
		if op.Match(data) {
			return op, true
		}
	}

	return op, false
}

// Lookup returns the operation with the given name.
func (ops operations) Lookup(name string) (op Operation, ok bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}

	return op, false
}

var (
	Unknown     = Operation{}
	PricesDelta = Operation{
		Selector:  Selector{0x5f, 0x53, 0x18, 0x3d},
		Name:      "prices_delta",
		Signature: "prices_delta(uint32,uint64,uint128,uint128,uint128,int8)",
		Fields:    []Field{CallPrice, PutPrice, CallDelta},
	}
	Prices = Operation{
		Selector:  Selector{0x10, 0x25, 0x1f, 0x08},
		Name:      "prices",
		Signature: "prices(uint32,uint64,uint128,uint128,uint128,int8)",
		Fields:    []Field{CallPrice, PutPrice},
	}
	Delta = Operation{
		Selector:  Selector{0x12, 0x9a, 0xb3, 0x1e},
		Name:      "delta",
		Signature: "delta(uint32,uint64,uint128,uint128,uint128,int8)",
		Fields:    []Field{CallDelta},
	}

	Operations = operations{
		PricesDelta,
		Prices,
		Delta,
	}
)
