package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/damagedcard/pkg/card"
)

func TestCanvasDrawAndEncode(t *testing.T) {
	c := NewCanvas(320, 180, 1)
	r := NewRenderer(Options{Rand: card.NewRand(3), RipChance: 0})
	r.Draw(c, 320, 180)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
		t.Fatalf("image size = %v", b)
	}

	if _, _, _, a := img.At(160, 90).RGBA(); a != 0xffff {
		t.Errorf("center alpha = %#x, want opaque", a)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("rounded corner alpha = %#x, want transparent", a)
	}
}

func TestCanvasScaleAndResize(t *testing.T) {
	c := NewCanvas(100, 50, 2)
	if b := c.Image().Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("scaled image = %v, want 200x100", b)
	}

	before := c.Context()
	c.Resize(100, 50)
	if c.Context() != before {
		t.Error("same-size resize should keep the context")
	}

	c.Resize(60, 40)
	if w, h := c.Size(); w != 60 || h != 40 {
		t.Errorf("Size() = %vx%v", w, h)
	}
	if b := c.Image().Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("resized image = %v, want 120x80", b)
	}
}
