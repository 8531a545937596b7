package theme

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pgrowth/tppgUtil/internal/colorspace"
)

func TestApply_Default(t *testing.T) {
	sink := MapSink{}
	if err := Apply(sink, ""); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	want := MapSink{
		PrimaryProperty: "#0F699D",
		AccentProperty:  "#D0EBFB",
	}
	if diff := cmp.Diff(want, sink); diff != "" {
		t.Errorf("applied properties mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_CustomPrimary(t *testing.T) {
	sink := MapSink{}
	if err := Apply(sink, "#3498DB"); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if got := sink.Get(PrimaryProperty); got != "#3498DB" {
		t.Errorf("primary = %q, want %q written verbatim", got, "#3498DB")
	}

	wantAccent, err := colorspace.Lighten("#3498DB", AccentLightenPercent)
	if err != nil {
		t.Fatal(err)
	}
	if got := sink.Get(AccentProperty); got != wantAccent {
		t.Errorf("accent = %q, want %q", got, wantAccent)
	}
}

func TestApply_Idempotent(t *testing.T) {
	once := MapSink{}
	if err := Apply(once, "#3498DB"); err != nil {
		t.Fatal(err)
	}

	twice := MapSink{}
	for i := 0; i < 2; i++ {
		if err := Apply(twice, "#3498DB"); err != nil {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("repeated Apply diverged from single Apply (-once +twice):\n%s", diff)
	}
}

func TestApply_MalformedPrimary(t *testing.T) {
	sink := MapSink{}
	err := Apply(sink, "#12345")
	if !errors.Is(err, colorspace.ErrInvalidFormat) {
		t.Fatalf("Apply error = %v, want ErrInvalidFormat", err)
	}
	if len(sink) != 0 {
		t.Errorf("sink written despite error: %v", sink)
	}
}

func TestCSSWriter(t *testing.T) {
	w := NewCSSWriter()
	if err := Apply(w, ""); err != nil {
		t.Fatal(err)
	}

	want := ":root {\n" +
		"  --primary-color: #0F699D;\n" +
		"  --accent-color: #D0EBFB;\n" +
		"}\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("rendered CSS mismatch (-want +got):\n%s", diff)
	}
}

func TestCSSWriter_OverwriteKeepsOrder(t *testing.T) {
	w := NewCSSWriter()
	w.SetProperty("--primary-color", "#000000")
	w.SetProperty("--accent-color", "#111111")
	w.SetProperty("--primary-color", "#222222")

	want := ":root {\n" +
		"  --primary-color: #222222;\n" +
		"  --accent-color: #111111;\n" +
		"}\n"
	if got := w.String(); got != want {
		t.Errorf("rendered CSS = %q, want %q", got, want)
	}
}
