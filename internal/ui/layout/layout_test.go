package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		hasScore bool
		want     string
	}{
		{"", 5, true, ""},
		{"Sam", 0, false, "Sam"},
		{"Sam", 7, true, "Sam · 7/10"},
	}
	for _, tt := range tests {
		if got := StatusText(tt.name, tt.score, tt.hasScore); got != tt.want {
			t.Errorf("StatusText(%q, %d, %v) = %q, want %q", tt.name, tt.score, tt.hasScore, got, tt.want)
		}
	}
}

func TestRenderHeaderContainsParts(t *testing.T) {
	h := RenderHeader("Dashboard", "Sam · 4/10", 100)
	for _, want := range []string{"calmly", "Dashboard", "Sam · 4/10"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooterHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Errorf("footer missing hint: %q", f)
	}
}
