package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenCellsAndBounds(t *testing.T) {
	s := NewScreen(5, 3)

	s.SetWithColor(1, 1, 'L', ColorBrightRed)
	s.SetWithColor(2, 1, '→', ColorBrightRed)
	s.Set(-1, 0, 'x')
	s.Set(5, 0, 'x')
	s.Set(0, 3, 'x')

	if got := s.GetCell(1, 1); got != (Cell{Rune: 'L', Color: ColorBrightRed}) {
		t.Errorf("GetCell(1, 1) = %+v", got)
	}
	if got := s.Get(2, 1); got != '→' {
		t.Errorf("Get(2, 1) = %q", got)
	}
	if got := s.GetCell(9, 9); got != (Cell{Rune: ' '}) {
		t.Errorf("out of bounds cell = %+v, expected blank", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out of bounds writes must be ignored")
	}

	s.Clear()
	if got := s.GetCell(1, 1); got != (Cell{Rune: ' '}) {
		t.Errorf("after Clear cell = %+v", got)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		row  string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "S-Z") }, " S-Z      "},
		{"clipped", func(s *Screen) { s.DrawText(7, 0, "statue") }, "       sta"},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "YAY") }, "   YAY    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.row {
				t.Errorf("Row(0) = %q, expected %q", got, tc.row)
			}
		})
	}

	s := NewScreen(10, 1)
	if got := s.Row(5); got != strings.Repeat(" ", 10) {
		t.Errorf("Row out of range = %q", got)
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.Fill('.')

	box := NewRect(1, 1, 6, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box, ColorBrightGreen)

	expected := strings.Join([]string{
		"........",
		".┌────┐.",
		".│    │.",
		".└────┘.",
		"........",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if c := s.GetCell(1, 1).Color; c != ColorBrightGreen {
		t.Errorf("border color = %v", c)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "IXSI")

	s.Resize(6, 3)
	if got := s.Row(0); got != "IXSI  " {
		t.Errorf("grown Row(0) = %q", got)
	}

	s.Resize(2, 1)
	if got := s.String(); got != "IX" {
		t.Errorf("shrunk String() = %q", got)
	}
}
