package scenario

import (
	"math"

	"loopfixtures/scenarist/defs"
)

// Sine curve parameters, in mg/dL and seconds.
const (
	curveBase      = 110.0
	curveAmplitude = 40.0
	curveSamples   = 120 // on each side of the anchor
)

var curvePeriod = defs.Hours(3)

func Make() defs.Scenario {
	return defs.Scenario{
		GlucoseValues: GlucoseValues(),
		BasalDoses:    BasalDoses(),
		BolusDoses:    BolusDoses(),
		CarbEntries:   CarbEntries(),
	}
}

// GlucoseValues samples a sine wave every five minutes for ten hours on
// either side of the anchor.
func GlucoseValues() []defs.GlucoseValue {
	step := int(defs.SampleInterval.Seconds())

	gvs := make([]defs.GlucoseValue, 0, 2*curveSamples)
	for t := -curveSamples; t < curveSamples; t++ {
		offset := t * step
		gvs = append(gvs, defs.GlucoseValue{
			MgdlValue:  curveBase + curveAmplitude*math.Sin(2*math.Pi/float64(curvePeriod)*float64(offset)),
			DateOffset: offset,
		})
	}
	return gvs
}

func BasalDoses() []defs.BasalDose {
	return []defs.BasalDose{
		{UnitsPerHourValue: 1.2, DateOffset: defs.Hours(-1.5), Duration: defs.Hours(0.5)},
		{UnitsPerHourValue: 0.9, DateOffset: defs.Hours(-1.0), Duration: defs.Hours(0.5)},
		{UnitsPerHourValue: 0.8, DateOffset: defs.Hours(-0.5), Duration: defs.Hours(0.5)},
	}
}

func BolusDoses() []defs.BolusDose {
	return []defs.BolusDose{
		{UnitsValue: 3.0, DateOffset: defs.Minutes(-15), DeliveryDuration: defs.Minutes(2)},
	}
}

func CarbEntries() []defs.CarbEntry {
	enteredAt := defs.Minutes(-15)
	return []defs.CarbEntry{
		{GramValue: 30, DateOffset: defs.Minutes(-5), AbsorptionTime: defs.Hours(3)},
		{GramValue: 15, DateOffset: defs.Minutes(15), AbsorptionTime: defs.Hours(2), EnteredAtOffset: &enteredAt},
	}
}
