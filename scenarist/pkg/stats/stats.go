package stats

import (
	"loopfixtures/scenarist/defs"

	"github.com/montanaflynn/stats"
)

type RangeAnalysis struct {
	BelowRange float64
	InRange    float64
	AboveRange float64
}

func TimeSpentInRange(gvs []defs.GlucoseValue, lower, upper float64) RangeAnalysis {
	if len(gvs) == 0 {
		return RangeAnalysis{}
	}

	below, above := 0.0, 0.0
	for _, gv := range gvs {
		switch {
		case gv.MgdlValue <= lower:
			below++
		case gv.MgdlValue >= upper:
			above++
		}
	}
	in := float64(len(gvs)) - below - above

	total := float64(len(gvs))
	return RangeAnalysis{
		BelowRange: below / total,
		InRange:    in / total,
		AboveRange: above / total,
	}
}

type SummaryStatistics struct {
	Average   float64
	Deviation float64
	Min       float64
	Max       float64
}

// GlucoseSummary is zero-valued for an empty sequence.
func GlucoseSummary(gvs []defs.GlucoseValue) SummaryStatistics {
	if len(gvs) == 0 {
		return SummaryStatistics{}
	}

	values := make([]float64, len(gvs))
	for i, gv := range gvs {
		values[i] = gv.MgdlValue
	}
	avg, _ := stats.Mean(values)
	dev, _ := stats.StandardDeviation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	return SummaryStatistics{Average: avg, Deviation: dev, Min: min, Max: max}
}
