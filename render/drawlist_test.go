package render

import "testing"

func TestDrawList_AddRect(t *testing.T) {
	dl := NewDrawList()
	dl.AddRect(10, 20, 100, 50, 0xFF0000FF)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Fatalf("Expected 6 indices, got %d", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("Expected ElemCount 6, got %d", dl.CmdBuffer[0].ElemCount)
	}

	// Corner positions.
	checks := [][2]float32{{10, 20}, {110, 20}, {110, 70}, {10, 70}}
	for i, want := range checks {
		if dl.VtxBuffer[i].Pos != want {
			t.Errorf("Vertex %d: expected %v, got %v", i, want, dl.VtxBuffer[i].Pos)
		}
	}
}

func TestDrawList_SkipsTransparent(t *testing.T) {
	dl := NewDrawList()
	dl.AddRect(0, 0, 10, 10, 0x00FF0000) // zero alpha
	dl.AddText(0, 0, "hi", 0x00FFFFFF, 8, 8)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("Expected fully transparent primitives to be skipped")
	}
}

func TestDrawList_ClipRectSplitsCommands(t *testing.T) {
	dl := NewDrawList()
	dl.AddRect(0, 0, 10, 10, 0xFFFFFFFF)
	dl.PushClipRect(0, 0, 50, 50)
	dl.AddRect(5, 5, 10, 10, 0xFFFFFFFF)
	dl.PopClipRect()
	dl.AddRect(20, 20, 10, 10, 0xFFFFFFFF)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("Expected 3 commands, got %d", len(dl.CmdBuffer))
	}
	clipped := dl.CmdBuffer[1]
	if clipped.ClipRect != [4]float32{0, 0, 50, 50} {
		t.Errorf("Expected clip rect (0,0,50,50), got %v", clipped.ClipRect)
	}
	for i, cmd := range dl.CmdBuffer {
		if cmd.ElemCount != 6 {
			t.Errorf("Command %d: expected 6 elements, got %d", i, cmd.ElemCount)
		}
	}
}

func TestDrawList_TextureSplitsCommands(t *testing.T) {
	dl := NewDrawList()
	dl.AddRect(0, 0, 10, 10, 0xFFFFFFFF)
	dl.SetTexture(7)
	dl.AddText(0, 0, "ab", 0xFFFFFFFF, 8, 8)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 {
		t.Errorf("Expected untextured first command, got texture %d", dl.CmdBuffer[0].TextureID)
	}
	if dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("Expected texture 7 on second command, got %d", dl.CmdBuffer[1].TextureID)
	}
	if dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("Expected 12 elements for two glyphs, got %d", dl.CmdBuffer[1].ElemCount)
	}

	// Redundant texture switch must not split again.
	dl.SetTexture(7)
	dl.AddText(0, 16, "c", 0xFFFFFFFF, 8, 8)
	dl.Finalize()
	if len(dl.CmdBuffer) != 2 {
		t.Errorf("Expected no new command for a redundant texture switch, got %d", len(dl.CmdBuffer))
	}
}

func TestDrawList_TextGlyphs(t *testing.T) {
	dl := NewDrawList()
	dl.AddText(0, 0, "A", 0xFFFFFFFF, 8, 8)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("Expected 4 vertices for one glyph, got %d", len(dl.VtxBuffer))
	}
	// 'A' is index 33 in the atlas: column 1, row 2 of the 16x6 grid.
	wantU0 := float32(1*8) / 128
	wantV0 := float32(2*8) / 48
	if dl.VtxBuffer[0].TexCoord != [2]float32{wantU0, wantV0} {
		t.Errorf("Expected 'A' at atlas coord (%v, %v), got %v", wantU0, wantV0, dl.VtxBuffer[0].TexCoord)
	}

	// Non-ASCII renders as '?' but still advances one cell per rune.
	dl.Clear()
	dl.AddText(0, 0, "aéb", 0xFFFFFFFF, 8, 8)
	dl.Finalize()
	if len(dl.VtxBuffer) != 12 {
		t.Fatalf("Expected 12 vertices for three glyphs, got %d", len(dl.VtxBuffer))
	}
	if x := dl.VtxBuffer[8].Pos[0]; x != 16 {
		t.Errorf("Expected third glyph at x=16, got %v", x)
	}
}

func TestDrawList_ClearRetainsNothingVisible(t *testing.T) {
	dl := NewDrawList()
	dl.PushClipRect(0, 0, 10, 10)
	dl.AddRect(0, 0, 10, 10, 0xFFFFFFFF)
	dl.Clear()

	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("Expected empty buffers after Clear")
	}

	dl.AddRect(0, 0, 10, 10, 0xFFFFFFFF)
	dl.Finalize()
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Error("Expected the list to be reusable after Clear")
	}
}
