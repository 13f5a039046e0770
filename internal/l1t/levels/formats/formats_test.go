package formats_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/l1t/internal/l1t/core"
	"github.com/vovakirdan/l1t/internal/l1t/levels/formats"
)

func TestParseText(t *testing.T) {
	data := "First Light\r\nsomeone\r\nSwitch the laser on.\r\nIIIII\r\nIX6.I\r\nI.S.I\r\nIIIII\r\n\r\n"

	lvl, err := formats.ParseText([]byte(data))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}

	if lvl.Name != "First Light" || lvl.Author != "someone" || lvl.Description != "Switch the laser on." {
		t.Errorf("unexpected header: %q / %q / %q", lvl.Name, lvl.Author, lvl.Description)
	}
	if lvl.Rows != 4 || lvl.Cols != 5 {
		t.Errorf("expected 4x5 grid, got %dx%d", lvl.Rows, lvl.Cols)
	}
	if len(lvl.Placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(lvl.Placements))
	}

	laser, ok := lvl.Placements[1].Variant.(*core.Laser)
	if !ok {
		t.Fatalf("expected laser at %v, got %T", lvl.Placements[1].Pos, lvl.Placements[1].Variant)
	}
	if laser.Enabled || laser.Dir != core.DirDown {
		t.Errorf("expected disabled down laser, got %+v", laser)
	}

	if _, err := core.NewBoard(lvl.Layout()); err != nil {
		t.Errorf("parsed level does not build: %v", err)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"empty", "\n\n", formats.CodeMissingHeader},
		{"header only", "name\nauthor\ndescription\n", formats.CodeMissingHeader},
		{"too few rows", "n\na\nd\nIIIII\nIIIII\n", core.CodeBadDimensions},
		{"ragged", "n\na\nd\nIIIII\nIX.I\nIIIII\n", formats.CodeRaggedGrid},
		{"open wall", "n\na\nd\nIIIII\nIX.S.\nIIIII\n", formats.CodeNotWalled},
		{"unknown symbol", "n\na\nd\nIIIII\nIX?SI\nIIIII\n", core.CodeUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formats.ParseText([]byte(tt.data))
			var verr *core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, want %s", verr.Code, tt.code)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := `
id: relay
name: Relay
author: someone
grid:
  - 'IIIIII'
  - 'IX\.SI'
  - 'IIIIII'
metadata:
  difficulty: easy
`
	lvl, err := formats.ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if lvl.ID != "relay" || lvl.Name != "Relay" {
		t.Errorf("unexpected id/name: %q %q", lvl.ID, lvl.Name)
	}
	if lvl.Metadata["difficulty"] != "easy" {
		t.Errorf("expected metadata difficulty=easy, got %v", lvl.Metadata)
	}

	layout := lvl.Layout()
	if layout.ID != "relay" || layout.Rows != 3 || layout.Cols != 6 {
		t.Errorf("unexpected layout header: %+v", layout)
	}
	mirror, ok := layout.Placements[1].Variant.(*core.Mirror)
	if !ok || mirror.Orientation != core.Backward {
		t.Errorf("expected backward mirror, got %#v", layout.Placements[1].Variant)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := formats.ParseYAML([]byte("id: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}

	_, err := formats.ParseYAML([]byte("id: nogrid\nname: x\n"))
	var verr *core.ValidationError
	if !errors.As(err, &verr) || verr.Code != formats.CodeMissingHeader {
		t.Errorf("expected MISSING_HEADER, got %v", err)
	}
}
