package sobel

import (
	"errors"
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name   string
		gx, gy uint8
		want   uint8
	}{
		{"zero", 0, 0, 0},
		{"pythagorean", 3, 4, 5},
		{"rounds down", 1, 1, 1},        // 1.414
		{"rounds up", 2, 3, 4},          // 3.606
		{"one axis", 200, 0, 200},       // exact
		{"clamped", 255, 255, 255},      // 360.6
		{"just over", 181, 181, 255},    // 255.97
		{"rounds to max", 180, 180, 255}, // 254.56
		{"below", 170, 170, 240},        // 240.42
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx := &Image{Width: 1, Height: 1, Channels: 1, Pix: []uint8{tt.gx}}
			gy := &Image{Width: 1, Height: 1, Channels: 1, Pix: []uint8{tt.gy}}
			out := &Image{Width: 1, Height: 1, Channels: 1, Pix: []uint8{0}}

			if err := Combine(gx, gy, out); err != nil {
				t.Fatalf("Combine failed: %v", err)
			}
			if out.Pix[0] != tt.want {
				t.Errorf("Combine(%d, %d): got %d, want %d", tt.gx, tt.gy, out.Pix[0], tt.want)
			}
		})
	}
}

func TestCombine_Commutative(t *testing.T) {
	a := randomImage(t, 6, 5, 3, 10)
	b := randomImage(t, 6, 5, 3, 11)
	ab, _ := NewImageLike(a)
	ba, _ := NewImageLike(a)

	if err := Combine(a, b, ab); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if err := Combine(b, a, ba); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	for i := range ab.Pix {
		if ab.Pix[i] != ba.Pix[i] {
			t.Fatalf("byte %d: Combine(a,b)=%d, Combine(b,a)=%d", i, ab.Pix[i], ba.Pix[i])
		}
	}
}

func TestCombine_EveryByte(t *testing.T) {
	// Border bytes are combined like any other byte.
	gx, _ := NewImage(3, 3, 1)
	gy, _ := NewImage(3, 3, 1)
	gx.Fill(30)
	gy.Fill(40)
	out, _ := NewImageLike(gx)

	if err := Combine(gx, gy, out); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	for i, v := range out.Pix {
		if v != 50 {
			t.Errorf("Pix[%d]: got %d, want 50", i, v)
		}
	}
}

func TestCombine_ShapeMismatch(t *testing.T) {
	a, _ := NewImage(4, 4, 3)
	b, _ := NewImage(4, 4, 1)
	out, _ := NewImage(4, 4, 3)

	if err := Combine(a, b, out); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
	if err := Combine(a, a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}
