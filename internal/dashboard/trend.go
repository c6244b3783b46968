package dashboard

import (
	"fmt"
	"math"
)

// trendDeadBandPct is the change range classified as stable, so that noise
// does not flap a KPI between up and down.
const trendDeadBandPct = 2.0

// changePercent returns the percentage change from previous to current. A
// zero previous period yields 100 when anything happened this period and 0
// otherwise; the division is never evaluated with a zero denominator.
func changePercent(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

func classifyTrend(pct float64) Trend {
	switch {
	case pct > trendDeadBandPct:
		return TrendUp
	case pct < -trendDeadBandPct:
		return TrendDown
	default:
		return TrendStable
	}
}

// comparisonText renders the change as a human-readable sentence fragment.
// Changes under one percent read as equality; otherwise the percentage is
// rounded half away from zero and signed.
func comparisonText(pct float64, period string) string {
	if math.Abs(pct) < 1 {
		return "equal to " + period
	}
	return fmt.Sprintf("%+d%% vs %s", int(math.Round(pct)), period)
}

// trendBetween builds the full trend value object for a (current, previous)
// pair. Every KPI uses this same path; nothing here is metric-specific.
func trendBetween(current, previous float64, period string) MetricWithTrend {
	pct := changePercent(current, previous)
	return MetricWithTrend{
		Value:          current,
		PreviousValue:  previous,
		ChangePercent:  pct,
		Trend:          classifyTrend(pct),
		ComparisonText: comparisonText(pct, period),
	}
}
