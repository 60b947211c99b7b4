package cg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetColor(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetColor(5, 5, RGBA(1, 0.5, 0, 1))

	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 255 || data[i+1] != 128 || data[i+2] != 0 || data[i+3] != 255 {
		t.Errorf("raw data = %v, want [255 128 0 255]", data[i:i+4])
	}

	c := pm.ColorAt(5, 5)
	if c.ColorSpace() != ColorSpaceDeviceRGB {
		t.Errorf("ColorAt space = %v", c.ColorSpace())
	}
	r, g, b, a := c.Straight()
	if r != 1 || b != 0 || a != 1 || g < 0.5 || g > 0.51 {
		t.Errorf("ColorAt = %v %v %v %v", r, g, b, a)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGB(0, 0, 0))
	before := append([]uint8(nil), pm.Data()...)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		pm.SetColor(p[0], p[1], RGB(1, 1, 1))
		if _, _, _, a := pm.ColorAt(p[0], p[1]).Straight(); a != 0 {
			t.Errorf("ColorAt(%d, %d) alpha = %v, want 0", p[0], p[1], a)
		}
		if pm.At(p[0], p[1]) != (color.NRGBA{}) {
			t.Errorf("At(%d, %d) is not transparent", p[0], p[1])
		}
	}
	if !bytes.Equal(before, pm.Data()) {
		t.Error("out of bounds writes modified the pixmap")
	}
}

func TestPixmapClearConvertsColorSpaces(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.Clear(Gray(1, 1))
	if got := rgba8(pm, 1, 0); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("gray clear = %v", got)
	}
	pm.Clear(CMYK(0, 1, 1, 0, 1))
	if got := rgba8(pm, 0, 0); got != red {
		t.Errorf("CMYK clear = %v, want red", got)
	}
}

func TestPixmapNegativeSize(t *testing.T) {
	pm := NewPixmap(-3, 5)
	if pm.Width() != 0 || len(pm.Data()) != 0 {
		t.Errorf("NewPixmap(-3, 5) = %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
}

func TestPixmapImageInterop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.SetNRGBA(11, 11, color.NRGBA{1, 2, 3, 4})
	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("FromImage size = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := rgba8(pm, 1, 1); got != [4]uint8{1, 2, 3, 4} {
		t.Errorf("FromImage pixel = %v", got)
	}
	if pm.Bounds() != image.Rect(0, 0, 3, 2) || pm.ColorModel() != color.NRGBAModel {
		t.Error("unexpected image.Image metadata")
	}
	img := pm.ToImage()
	if !bytes.Equal(img.Pix, pm.Data()) {
		t.Error("ToImage pixels differ")
	}
	img.Pix[0] = 99
	if pm.Data()[0] == 99 {
		t.Error("ToImage shares memory with the pixmap")
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetColor(2, 1, RGBA(0, 0, 1, 1))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(2, 1).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("decoded pixel = %d %d %d %d", r, g, b, a)
	}
}

func TestPixmapSavePNGError(t *testing.T) {
	pm := NewPixmap(1, 1)
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
