package flow

import "testing"

func TestTransformIndex(t *testing.T) {
	tests := []struct {
		name   string
		i      int
		change ItemsChange
		want   int
	}{
		{"before change untouched", 3, ItemsChange{From: 5, Removed: 2}, 3},
		{"after removal shifts down", 10, ItemsChange{From: 5, Removed: 2}, 8},
		{"inside removed range clamps to From", 6, ItemsChange{From: 5, Removed: 2}, 5},
		{"first removed index clamps to From", 5, ItemsChange{From: 5, Removed: 2}, 5},
		{"at end of removed range shifts", 7, ItemsChange{From: 5, Removed: 2}, 5},
		{"after insertion shifts up", 10, ItemsChange{From: 5, Added: 3}, 13},
		{"at insertion point shifts up", 5, ItemsChange{From: 5, Added: 3}, 8},
		{"before insertion untouched", 4, ItemsChange{From: 5, Added: 3}, 4},
		{"replacement keeps index", 10, ItemsChange{From: 5, Removed: 1, Added: 1}, 10},
		{"replaced index clamps to From", 5, ItemsChange{From: 5, Removed: 1, Added: 1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transformIndex(tt.i, tt.change); got != tt.want {
				t.Errorf("transformIndex(%d, %+v): expected %d, got %d", tt.i, tt.change, tt.want, got)
			}
		})
	}
}

func TestTargetPosition_ScrollBy(t *testing.T) {
	start := anchorStart{index: 5, offset: 10}.scrollBy(30)
	if got := start.(anchorStart); got.index != 5 || got.offset != -20 {
		t.Errorf("Expected anchorStart{5, -20}, got %+v", got)
	}

	end := anchorEnd{index: 5, offset: 0}.scrollBy(-15)
	if got := end.(anchorEnd); got.index != 5 || got.offset != 15 {
		t.Errorf("Expected anchorEnd{5, 15}, got %+v", got)
	}

	// nearestEdge has no offset to translate.
	edge := nearestEdge{index: 5}.scrollBy(100)
	if got := edge.(nearestEdge); got.index != 5 {
		t.Errorf("Expected nearestEdge{5}, got %+v", got)
	}
}
