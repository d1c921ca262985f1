package payroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestCalculatePayScenario(t *testing.T) {
	hours := SumDurations([]*string{strPtr("4:30"), strPtr("3:15")}, nil)

	pay := CalculatePay(hours, 12.50, WithholdingRate(false))

	assert.Equal(t, 7.75, pay.Hours)
	assert.Equal(t, 96.88, pay.Gross)
	assert.Equal(t, 67.81, pay.Net)
	assert.Equal(t, 29.07, pay.Deduction)
	assert.Equal(t, 30, pay.WithholdingPct)
}

func TestCalculatePayReconciles(t *testing.T) {
	hoursCases := []float64{0, 0.25, 1, 7.75, 8.3333333, 13.5, 37.916666, 61.1}
	rates := []float64{9, 10.5, 12.5, 15.75, 22.33}

	for _, pct := range []int{CISRegisteredRate, CISUnregisteredRate} {
		for _, hours := range hoursCases {
			for _, rate := range rates {
				pay := CalculatePay(hours, rate, pct)

				gross := hours * rate
				assert.Equal(t, Round2(gross), pay.Gross)
				assert.Equal(t, Round2(gross*(1-float64(pct)/100)), pay.Net)
				assert.Equal(t, Round2(pay.Gross-pay.Net), pay.Deduction)
				assert.InDelta(t, pay.Gross-pay.Net, pay.Deduction, 0.005)
			}
		}
	}
}

func TestWithholdingRate(t *testing.T) {
	assert.Equal(t, 20, WithholdingRate(true))
	assert.Equal(t, 30, WithholdingRate(false))
}

func TestEffectiveHourlyRate(t *testing.T) {
	assert.Equal(t, DefaultHourlyRate, EffectiveHourlyRate(nil))
	assert.Equal(t, DefaultHourlyRate, EffectiveHourlyRate(floatPtr(0)))
	assert.Equal(t, DefaultHourlyRate, EffectiveHourlyRate(floatPtr(-3)))
	assert.Equal(t, 12.5, EffectiveHourlyRate(floatPtr(12.5)))
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 96.88, Round2(96.875))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 67.81, Round2(67.8125))
	assert.Equal(t, 10.0, Round2(9.999))
}

func TestRound2UsesDecimalForm(t *testing.T) {
	cases := map[float64]float64{
		1.005:   1.01,
		2.675:   2.68,
		1.115:   1.12,
		8.345:   8.35,
		0.3:     0.3,
		12.5:    12.5,
		0.004:   0,
		-1.005:  -1.01,
		1e-7:    0,
		123.455: 123.46,
	}
	for in, want := range cases {
		assert.Equal(t, want, Round2(in), "Round2(%v)", in)
	}
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
}
