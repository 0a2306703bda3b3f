package model

import (
	"errors"
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	in := &Indicator{Name: "Unemployment Rate (%)"}

	// No value renders as the placeholder dash
	if got := in.FormatValue(); got != "—" {
		t.Errorf("Expected placeholder dash, got %q", got)
	}

	in.SetValue(4.1)
	if got := in.FormatValue(); got != "4.10" {
		t.Errorf("Expected 4.10, got %q", got)
	}

	in.SetValue(-0.456)
	if got := in.FormatValue(); got != "-0.46" {
		t.Errorf("Expected -0.46, got %q", got)
	}
}

func TestFormatValueDecimals(t *testing.T) {
	in := &Indicator{}
	in.SetValue(3.14159)

	if got := in.FormatValueDecimals(1); got != "3.1" {
		t.Errorf("Expected 3.1, got %q", got)
	}

	// Negative decimals clamp to zero
	if got := in.FormatValueDecimals(-2); got != "3" {
		t.Errorf("Expected 3, got %q", got)
	}
}

func TestSetValueRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		in := &Indicator{}
		in.SetValue(v)

		if in.HasValue {
			t.Errorf("Non-finite value %v should collapse to absence", v)
		}
		if in.Status != StatusNoData {
			t.Errorf("Expected status %s, got %s", StatusNoData, in.Status)
		}
		if in.FormatValue() != "—" {
			t.Errorf("Non-finite value should render as dash, got %q", in.FormatValue())
		}
	}
}

func TestSetErrorClearsValue(t *testing.T) {
	in := &Indicator{}
	in.SetValue(1.23)

	in.SetError(errors.New("series fetch failed"))

	if in.HasValue {
		t.Error("SetError should clear HasValue")
	}
	if in.Status != StatusError {
		t.Errorf("Expected status %s, got %s", StatusError, in.Status)
	}
	if in.LastError != "series fetch failed" {
		t.Errorf("Expected error message to be recorded, got %q", in.LastError)
	}
}

func TestSeriesLabel(t *testing.T) {
	in := &Indicator{SeriesIDs: []string{"DGS10", "DTB3"}}
	if got := in.SeriesLabel(); got != "DGS10, DTB3" {
		t.Errorf("Expected joined series ids, got %q", got)
	}
}
