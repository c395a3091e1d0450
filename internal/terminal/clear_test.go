package terminal

import "testing"

func TestLinesFor(t *testing.T) {
	tests := []struct {
		length, width, want int
	}{
		{0, 80, 1},
		{10, 80, 1},
		{80, 80, 1},
		{81, 80, 2},
		{100, 0, 2},
	}
	for _, tt := range tests {
		if got := LinesFor(tt.length, tt.width); got != tt.want {
			t.Errorf("LinesFor(%d, %d) = %d, want %d", tt.length, tt.width, got, tt.want)
		}
	}
}
