package fastmask

import (
	"errors"
	"testing"
)

func TestNewMaskValidatesDimensions(t *testing.T) {
	if _, err := NewMask(0, 10, make([]byte, 0)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero height, got %v", err)
	}
	if _, err := NewMask(10, 0, make([]byte, 0)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero width, got %v", err)
	}
	if _, err := NewMask(2, 2, make([]byte, 3)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for mismatched pix length, got %v", err)
	}
}

func TestNewMaskAccepts(t *testing.T) {
	m, err := NewMask(2, 3, []byte{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	if string(m.row(0)) != string([]byte{1, 2, 3}) {
		t.Fatalf("row(0) = %v, want [1 2 3]", m.row(0))
	}
	if string(m.row(1)) != string([]byte{4, 5, 6}) {
		t.Fatalf("row(1) = %v, want [4 5 6]", m.row(1))
	}
}

func TestMaskFromRows(t *testing.T) {
	m, err := MaskFromRows([][]byte{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("MaskFromRows: %v", err)
	}
	if m.Height != 2 || m.Width != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Height, m.Width)
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	if string(m.Pix) != string(want) {
		t.Fatalf("Pix = %v, want %v", m.Pix, want)
	}
}

func TestMaskFromRowsRejectsJaggedRows(t *testing.T) {
	_, err := MaskFromRows([][]byte{
		{1, 2, 3},
		{4, 5},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for jagged rows, got %v", err)
	}
}

func TestMaskFromRowsRejectsEmpty(t *testing.T) {
	if _, err := MaskFromRows(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for no rows, got %v", err)
	}
	if _, err := MaskFromRows([][]byte{{}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero-width rows, got %v", err)
	}
}

func TestMaskFromRowsCopiesInput(t *testing.T) {
	row := []byte{1, 2, 3}
	m, err := MaskFromRows([][]byte{row})
	if err != nil {
		t.Fatalf("MaskFromRows: %v", err)
	}
	row[0] = 99
	if m.Pix[0] == 99 {
		t.Fatalf("MaskFromRows aliased caller's row instead of copying")
	}
}

func TestMaskEqual(t *testing.T) {
	a, _ := NewMask(2, 2, []byte{1, 2, 3, 4})
	b, _ := NewMask(2, 2, []byte{1, 2, 3, 4})
	c, _ := NewMask(2, 2, []byte{1, 2, 3, 5})
	d, _ := NewMask(1, 4, []byte{1, 2, 3, 4})

	if !a.Equal(b) {
		t.Fatalf("expected a == b")
	}
	if a.Equal(c) {
		t.Fatalf("expected a != c")
	}
	if a.Equal(d) {
		t.Fatalf("expected a != d (different shape)")
	}
}
