// Package black76 prices European options on a forward with the Black-76
// model.
//
// All functions are pure. Products that feed a sum are rounded explicitly with
// a float64 conversion so the compiler cannot fuse them into FMA instructions;
// results are therefore identical on every architecture for a given
// implementation of math.Erf, math.Log and math.Sqrt.
package black76

import (
	"math"
)

// SecondsPerYear is the length of the 365 day year used to annualise expiry.
const SecondsPerYear = 365 * 24 * 60 * 60

const (
	fracOneSqrt2 = 1 / math.Sqrt2

	// 1/√(2π) as the float64 product of 1/√π and 1/√2.
	fracOneSqrtPi  float64 = 1 / math.SqrtPi
	fracOneSqrt2Pi         = fracOneSqrtPi * fracOneSqrt2
)

// NormCDF is the standard normal cumulative distribution function.
func NormCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x*fracOneSqrt2))
}

// NormPDF is the standard normal probability density function.
func NormPDF(x float64) float64 {
	return math.Exp(-0.5*(x*x)) * fracOneSqrt2Pi
}

// D1 returns (-ln(strike/fwd) + σ²τ/2) / (σ√τ).
func D1(sigma, strike, fwd, tau float64) float64 {
	halfVar := float64(0.5*(sigma*sigma)) * tau

	return (-math.Log(strike/fwd) + halfVar) / float64(sigma*math.Sqrt(tau))
}

// D2 returns d1 - σ√τ.
func D2(d1, sigma, tau float64) float64 {
	return d1 - float64(sigma*math.Sqrt(tau))
}

// Contract is a European option on a forward.
type Contract struct {
	Strike    float64
	ExpirySec float64
	IsCall    bool
}

// Tau is the time to expiry in years.
func (c Contract) Tau() float64 {
	return c.ExpirySec / SecondsPerYear
}

// PriceExpired returns the intrinsic value of the contract.
func (c Contract) PriceExpired(fwd float64) float64 {
	v := c.Strike - fwd
	if c.IsCall {
		v = fwd - c.Strike
	}

	if v > 0 {
		return v
	}

	return 0
}

// Price returns the undiscounted Black-76 price. Contracts at or past expiry
// are worth their intrinsic value.
func (c Contract) Price(fwd, vol float64) float64 {
	tau := c.Tau()
	if tau <= 0 {
		return c.PriceExpired(fwd)
	}

	d1 := D1(vol, c.Strike, fwd, tau)
	d2 := D2(d1, vol, tau)

	if c.IsCall {
		return float64(fwd*NormCDF(d1)) - float64(c.Strike*NormCDF(d2))
	}

	return float64(c.Strike*NormCDF(-d2)) - float64(fwd*NormCDF(-d1))
}

// Delta returns the undiscounted forward delta. It is 0 at or past expiry.
func (c Contract) Delta(fwd, vol float64) float64 {
	tau := c.Tau()
	if tau <= 0 {
		return 0
	}

	d1 := D1(vol, c.Strike, fwd, tau)
	if c.IsCall {
		return NormCDF(d1)
	}

	return NormCDF(d1) - 1
}
