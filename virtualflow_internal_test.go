package flow

import "testing"

func TestScrollbarPositionMapping(t *testing.T) {
	const viewport = 200

	tests := []struct {
		name    string
		offset  float32
		content float32
		wantPos float32
	}{
		{"top", 0, 1000, 0},
		{"bottom", 800, 1000, 1000},
		{"middle", 400, 1000, 500},
		{"content fits", 50, 150, 0},
		{"content equals viewport", 0, 200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := offsetToScrollbarPosition(tt.offset, viewport, tt.content)
			if pos != tt.wantPos {
				t.Errorf("offsetToScrollbarPosition(%v): expected %v, got %v", tt.offset, tt.wantPos, pos)
			}
		})
	}
}

func TestScrollbarPositionRoundTrip(t *testing.T) {
	const viewport = 200
	const content = 12345

	for _, offset := range []float32{0, 1, 100, 5000, content - viewport} {
		pos := offsetToScrollbarPosition(offset, viewport, content)
		back := scrollbarPositionToOffset(pos, viewport, content)
		if absf(back-offset) > 0.01 {
			t.Errorf("Round trip of offset %v: got %v", offset, back)
		}
	}

	// Degenerate content maps everything to zero.
	if got := scrollbarPositionToOffset(100, viewport, 150); got != 0 {
		t.Errorf("Expected offset 0 when content fits, got %v", got)
	}
}
