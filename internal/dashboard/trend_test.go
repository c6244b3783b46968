package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth", 120, 100, 20},
		{"decline", 80, 100, -20},
		{"flat", 100, 100, 0},
		{"zero previous, zero current", 0, 0, 0},
		{"zero previous, some current", 5, 0, 100},
		{"fractional", 101, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, changePercent(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestClassifyTrendDeadBand(t *testing.T) {
	tests := []struct {
		pct  float64
		want Trend
	}{
		{0, TrendStable},
		{1.9, TrendStable},
		{-1.9, TrendStable},
		{2, TrendStable}, // boundary: exactly +2% is stable
		{-2, TrendStable},
		{2.01, TrendUp},
		{-2.01, TrendDown},
		{100, TrendUp},
		{-100, TrendDown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyTrend(tt.pct), "pct=%v", tt.pct)
	}
}

func TestComparisonText(t *testing.T) {
	tests := []struct {
		pct    float64
		period string
		want   string
	}{
		{0, "yesterday", "equal to yesterday"},
		{0.9, "yesterday", "equal to yesterday"},
		{-0.9, "last month", "equal to last month"},
		{20, "yesterday", "+20% vs yesterday"},
		{-20, "last month", "-20% vs last month"},
		{19.5, "yesterday", "+20% vs yesterday"},   // round half away from zero
		{-19.5, "last month", "-20% vs last month"},
		{1, "yesterday", "+1% vs yesterday"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, comparisonText(tt.pct, tt.period), "pct=%v", tt.pct)
	}
}

func TestTrendBetweenZeroPrevious(t *testing.T) {
	m := trendBetween(3, 0, "yesterday")
	assert.Equal(t, float64(100), m.ChangePercent)
	assert.Equal(t, TrendUp, m.Trend)
	assert.Equal(t, "+100% vs yesterday", m.ComparisonText)

	m = trendBetween(0, 0, "yesterday")
	assert.Equal(t, float64(0), m.ChangePercent)
	assert.Equal(t, TrendStable, m.Trend)
	assert.Equal(t, "equal to yesterday", m.ComparisonText)
}

func TestTrendBetweenCarriesValues(t *testing.T) {
	m := trendBetween(2800, 3500, "last month")
	assert.Equal(t, float64(2800), m.Value)
	assert.Equal(t, float64(3500), m.PreviousValue)
	assert.InDelta(t, -20, m.ChangePercent, 1e-9)
	assert.Equal(t, TrendDown, m.Trend)
	assert.Equal(t, "-20% vs last month", m.ComparisonText)
}
