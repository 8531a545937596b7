package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pgrowth/tppgUtil/internal/records"
)

func TestFillDaySeries_FillsGaps(t *testing.T) {
	days := []records.DayCount{
		{Day: "2026-08-18", Count: 3},
		{Day: "2026-08-21", Count: 1},
	}

	series, first, last := fillDaySeries(days)

	want := []float64{3, 0, 0, 1}
	if diff := cmp.Diff(want, series); diff != "" {
		t.Errorf("unexpected series (-want +got):\n%s", diff)
	}
	if first != "2026-08-18" || last != "2026-08-21" {
		t.Errorf("unexpected span %q to %q", first, last)
	}
}

func TestFillDaySeries_SingleDay(t *testing.T) {
	series, first, last := fillDaySeries([]records.DayCount{{Day: "2026-08-20", Count: 2}})

	if diff := cmp.Diff([]float64{2}, series); diff != "" {
		t.Errorf("unexpected series (-want +got):\n%s", diff)
	}
	if first != last {
		t.Errorf("expected identical span labels, got %q and %q", first, last)
	}
}

func TestFillDaySeries_Empty(t *testing.T) {
	series, first, last := fillDaySeries(nil)

	if series != nil || first != "" || last != "" {
		t.Errorf("expected empty result, got %v, %q, %q", series, first, last)
	}
}
