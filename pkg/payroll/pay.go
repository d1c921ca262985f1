package payroll

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultHourlyRate applies when a contractor has no usable pay rate.
	DefaultHourlyRate = 9.0

	// CISRegisteredRate and CISUnregisteredRate are withholding percentages.
	CISRegisteredRate   = 20
	CISUnregisteredRate = 30
)

// PaySummary holds monetary values already rounded to pence.
type PaySummary struct {
	Hours          float64
	HourlyRate     float64
	WithholdingPct int
	Gross          float64
	Net            float64
	Deduction      float64
}

// EffectiveHourlyRate falls back to DefaultHourlyRate for missing, zero or negative rates.
func EffectiveHourlyRate(rate *float64) float64 {
	if rate == nil || *rate <= 0 {
		return DefaultHourlyRate
	}
	return *rate
}

// WithholdingRate returns the CIS deduction percentage for a contractor.
func WithholdingRate(cisRegistered bool) int {
	if cisRegistered {
		return CISRegisteredRate
	}
	return CISUnregisteredRate
}

// Round2 rounds half-up to two decimals on the shortest decimal form of v,
// so 1.005 becomes 1.01 even though its binary value sits just below.
// Negative values round half away from zero.
func Round2(v float64) float64 {
	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	if len(frac) <= 2 {
		return v
	}

	cents, err := strconv.ParseInt(whole+frac[:2], 10, 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	if frac[2] >= '5' {
		cents++
	}
	return math.Copysign(float64(cents)/100, v)
}

// CalculatePay computes gross, net and deduction for the given hours.
// Deduction is derived from the rounded gross and net so the three
// published figures always reconcile.
func CalculatePay(hours, hourlyRate float64, withholdingPct int) PaySummary {
	gross := hours * hourlyRate
	net := gross * (1 - float64(withholdingPct)/100)

	roundedGross := Round2(gross)
	roundedNet := Round2(net)

	return PaySummary{
		Hours:          Round2(hours),
		HourlyRate:     hourlyRate,
		WithholdingPct: withholdingPct,
		Gross:          roundedGross,
		Net:            roundedNet,
		Deduction:      Round2(roundedGross - roundedNet),
	}
}
