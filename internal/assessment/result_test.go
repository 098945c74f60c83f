package assessment

import "testing"

func TestCategoryBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Category
	}{
		{0, CategoryLow},
		{3, CategoryLow},
		{4, CategoryModerate},
		{6, CategoryModerate},
		{7, CategoryHigh},
		{10, CategoryHigh},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.score); got != tt.want {
			t.Errorf("CategoryFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw, n, want int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{34, 10, 3},
		{35, 10, 4},
		{64, 10, 6},
		{65, 10, 7},
		{95, 10, 10},
		{100, 10, 10},
		{250, 10, 10}, // clamped
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw, tt.n); got != tt.want {
			t.Errorf("Normalize(%d, %d) = %d, want %d", tt.raw, tt.n, got, tt.want)
		}
	}
}
