package macro

import (
	"math"
	"testing"
	"time"

	"github.com/macroview/macro-dashboard/internal/model"
)

func monthlySeries(id string, values ...float64) model.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := make([]model.Observation, 0, len(values))
	for i, v := range values {
		obs = append(obs, model.Observation{Date: base.AddDate(0, i, 0), Value: v})
	}
	return model.Series{ID: id, Observations: obs}
}

func TestLatest(t *testing.T) {
	s := monthlySeries("UNRATE", 4.3, 4.2, 4.1)

	v, ok := Latest(s)
	if !ok || v != 4.1 {
		t.Errorf("Latest = %v, %v; want 4.1, true", v, ok)
	}

	if _, ok := Latest(model.Series{}); ok {
		t.Error("Latest on empty series should report absence")
	}
}

func TestYoY(t *testing.T) {
	// 13 observations: 100 a year ago, 103 now -> +3%
	values := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 103}
	s := monthlySeries("PCEPILFE", values...)

	v, ok := YoY(s)
	if !ok {
		t.Fatal("YoY should derive a value from 13 observations")
	}
	if math.Abs(v-3.0) > 1e-9 {
		t.Errorf("YoY = %v; want 3.0", v)
	}
}

func TestYoYTooShort(t *testing.T) {
	s := monthlySeries("PCEPILFE", 100, 101, 102)
	if _, ok := YoY(s); ok {
		t.Error("YoY on a series shorter than 13 observations should report absence")
	}
}

func TestQoQAnnualized(t *testing.T) {
	// 1% quarterly growth annualizes to (1.01^4 - 1) * 100
	s := monthlySeries("GDPC1", 100, 101)

	v, ok := QoQAnnualized(s)
	if !ok {
		t.Fatal("QoQAnnualized should derive a value from 2 observations")
	}
	want := (math.Pow(1.01, 4) - 1) * 100
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("QoQAnnualized = %v; want %v", v, want)
	}
}

func TestQoQAnnualizedTooShort(t *testing.T) {
	s := monthlySeries("GDPC1", 100)
	if _, ok := QoQAnnualized(s); ok {
		t.Error("QoQAnnualized on a single observation should report absence")
	}
}

func TestMonthChangeScaled(t *testing.T) {
	// PAYEMS delta of +150 (thousands) scaled down by 1000
	s := monthlySeries("PAYEMS", 157000, 157150)

	v, ok := MonthChangeScaled(s)
	if !ok {
		t.Fatal("MonthChangeScaled should derive a value from 2 observations")
	}
	if math.Abs(v-0.15) > 1e-9 {
		t.Errorf("MonthChangeScaled = %v; want 0.15", v)
	}
}

func TestSpread(t *testing.T) {
	t10y := monthlySeries("DGS10", 4.3, 4.25)
	t3m := monthlySeries("DTB3", 5.3, 5.35)

	v, ok := Spread(t10y, t3m)
	if !ok {
		t.Fatal("Spread should derive a value when both sides have data")
	}
	if math.Abs(v-(-1.1)) > 1e-9 {
		t.Errorf("Spread = %v; want -1.1", v)
	}

	if _, ok := Spread(t10y, model.Series{}); ok {
		t.Error("Spread should report absence when one side is empty")
	}
}

func TestCatalogShape(t *testing.T) {
	defs := Catalog()
	if len(defs) != 10 {
		t.Fatalf("Catalog should contain 10 indicators, got %d", len(defs))
	}

	seen := map[string]bool{}
	for _, def := range defs {
		if def.ID == "" || def.Name == "" || len(def.SeriesIDs) == 0 || def.Derive == nil {
			t.Errorf("Definition %q is incomplete", def.ID)
		}
		if seen[def.ID] {
			t.Errorf("Duplicate definition id %q", def.ID)
		}
		seen[def.ID] = true
	}

	// Yield curve is the only two-series definition
	yieldCurve := defs[7]
	if yieldCurve.ID != "yield_curve_3m_10y" || len(yieldCurve.SeriesIDs) != 2 {
		t.Errorf("Expected yield curve definition with two series, got %+v", yieldCurve)
	}
}
