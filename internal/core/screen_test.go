package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, expected 'x'", got)
	}

	// Untouched cells are spaces.
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are silently ignored.
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	for _, r := range s.String() {
		if r != ' ' && r != '\n' {
			t.Fatal("out-of-bounds Set should not modify the buffer")
		}
	}

	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, 'o', ColorYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'o' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected {o Yellow}", cell)
	}

	// Plain Set uses the default color.
	s.Set(2, 2, 'x')
	if got := s.GetCell(2, 2).Color; got != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 3, 'x', ColorGreen)

	s.Clear()

	cell := s.GetCell(3, 3)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, expected default space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q", got)
	}

	// Text extending past the right edge is clipped.
	s.DrawText(8, 0, "long")
	if got := s.Row(0); got != "        lo" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("centered text should start at column 4, got %q there", got)
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(8, 6)

	s.DrawHLine(1, 2, 4, '-')
	if got := s.Row(2); got != " ----   " {
		t.Errorf("Row(2) = %q", got)
	}

	s.DrawVLine(6, 1, 3, '|')
	for y := 1; y <= 3; y++ {
		if got := s.Get(6, y); got != '|' {
			t.Errorf("Get(6, %d) = %q, expected '|'", y, got)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, expected 2", len(lines))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, expected spaces", got)
	}
}
