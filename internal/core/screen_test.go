package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '█', ColorBrightCyan)

	cell := s.GetCell(3, 4)
	if cell.Rune != '█' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '█'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorBrightCyan", cell.Color)
	}

	// Plain Set keeps the default color
	s.Set(3, 4, '#')
	if got := s.GetCell(3, 4).Color; got != ColorDefault {
		t.Errorf("Set should reset color to default, got %v", got)
	}

	// Out of bounds GetCell returns a default space
	if got := s.GetCell(-1, -1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	// Should all be default spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q, expected text at offset 2", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "long text")
	if s.Get(19, 2) != 'n' {
		t.Errorf("Expected clipped text to end with 'n' at column 19, got %q", s.Get(19, 2))
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(0, 0, "abc", ColorGreen)

	for i, want := range []rune{'a', 'b', 'c'} {
		cell := s.GetCell(i, 0)
		if cell.Rune != want || cell.Color != ColorGreen {
			t.Errorf("cell %d = %+v, expected %q in green", i, cell, want)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Box top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(4, 6)
	s.DrawHLine(0, 2, 4, '=')
	s.DrawVLine(1, 0, 6, '|')

	if s.Get(0, 2) != '=' || s.Get(3, 2) != '=' {
		t.Error("Horizontal line not drawn")
	}
	if s.Get(1, 0) != '|' || s.Get(1, 5) != '|' {
		t.Error("Vertical line not drawn")
	}
	// Later vertical draw overwrites the intersection
	if s.Get(1, 2) != '|' {
		t.Errorf("Intersection = %q, expected '|'", s.Get(1, 2))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(5, 5, 'X', ColorYellow)
	s.Set(9, 9, 'Y')

	// Grow: content preserved
	s.Resize(15, 12)
	if s.Width() != 15 || s.Height() != 12 {
		t.Errorf("Resize to (15, 12) got (%d, %d)", s.Width(), s.Height())
	}
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorYellow {
		t.Errorf("Content not preserved after grow: %+v", cell)
	}
	if s.Get(12, 11) != ' ' {
		t.Error("New area should be spaces")
	}

	// Shrink: out-of-range content dropped
	s.Resize(6, 6)
	if s.Get(5, 5) != 'X' {
		t.Error("Content within new bounds should survive shrink")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("Out-of-bounds read after shrink should be space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	got := s.String()
	want := "ab \ncd "
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if n := strings.Count(got, "\n"); n != 1 {
		t.Errorf("String() has %d newlines, expected 1", n)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "hello")

	if s.Row(1) != "hello" {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "hello")
	}
	if s.Row(-1) != "     " {
		t.Error("Out-of-bounds Row should be all spaces")
	}
	if s.Row(99) != "     " {
		t.Error("Out-of-bounds Row should be all spaces")
	}
}
