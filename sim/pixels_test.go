package sim

import (
	"bytes"
	"testing"
)

func TestPixelBytes(t *testing.T) {
	src := []Color{Empty, Projectile, 0x8000FF00, 0xFFFFFFFF}
	got := PixelBytes(nil, src)
	want := []byte{
		0, 0, 0, 0,
		255, 0, 0, 255,
		0, 128, 0, 128,
		255, 255, 255, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPixelBytesReusesBuffer(t *testing.T) {
	dst := make([]byte, 0, 64)
	out := PixelBytes(dst, []Color{Projectile, Projectile})
	if len(out) != 8 {
		t.Fatalf("Expected 8 bytes, got %d", len(out))
	}
	if &out[0] != &dst[:1][0] {
		t.Error("Expected destination buffer to be reused")
	}
}

func TestColorChannels(t *testing.T) {
	c := Color(0x80112233)
	if c.Alpha() != 0x80 {
		t.Errorf("Expected alpha 0x80, got %#x", c.Alpha())
	}
	r, g, b := c.RGB()
	if r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("Expected rgb 11 22 33, got %x %x %x", r, g, b)
	}
}
