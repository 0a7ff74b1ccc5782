// Package fixed converts scaled fixed point decimals to and from float64.
//
// The equation for a scaled decimal is:
//
//  number = raw * 10 ^ -exponent
//
// Where raw is an unsigned integer of up to 128 bits and exponent is a signed
// 8 bit integer. For example:
//
//  1.23 = 123 * 10^-2 (raw=123, exponent=2)
//
// Decoding
//
// The raw integer is lifted exactly into an arbitrary precision decimal and
// scaled there. Only the scaled result is narrowed to a float64, rounding to
// the nearest representable value (ties to even). Converting raw to a float64
// first would drop low order bits of any raw above 2^53 before the scale is
// applied.
//
// Encoding
//
// The exact binary value of the float64 is scaled by 10^exponent with no
// rounding and then truncated toward zero. A float64 that sits just below its
// nearest decimal therefore encodes one unit low:
//
//  Encode(0.3, 1) = 2 (0.3 is 0.299999999999999988897769753748...)
//
// Encoding saturates. NaN, infinities, negative values and results that need
// more than 128 bits all encode as 2^128-1 rather than failing:
//
//  | Input          | Output      |
//  |----------------|-------------|
//  | NaN            | 2^128-1     |
//  | ±Inf           | 2^128-1     |
//  | x < 0          | 2^128-1     |
//  | x*10^e > Max   | 2^128-1     |
//  | -0             | 0           |
//  |----------------|-------------|
//
// Round Trip
//
// Encode(Decode(raw, e), e) is raw or raw-1 for raw < 2^53, and raw exactly
// when raw * 10^-e is representable as a float64. Above 2^53 the result agrees
// with raw to within a relative error of 2^-52.
package fixed
