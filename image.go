package cg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// ErrEmptyImageData is returned when decoding an empty byte slice.
var ErrEmptyImageData = errors.New("cg: empty image data")

// Image is a decoded image tagged with a color space. The drawing core
// reads only its size and color space; pixels are handed to the device
// untouched.
type Image struct {
	img   image.Image
	space ColorSpace
}

// NewImage wraps img, deriving the color space from its color model:
// gray models map to DeviceGray, CMYK to DeviceCMYK and everything else to
// sRGB.
func NewImage(img image.Image) *Image {
	space := ColorSpaceSRGB
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		space = ColorSpaceDeviceGray
	case color.CMYKModel:
		space = ColorSpaceDeviceCMYK
	}
	return &Image{img: img, space: space}
}

// NewImageWithColorSpace wraps img with an explicit color space tag.
func NewImageWithColorSpace(img image.Image, space ColorSpace) *Image {
	return &Image{img: img, space: space}
}

// LoadImage loads an image from the given file path, detecting the format
// from the content. PNG, JPEG, BMP, TIFF and WebP are supported.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cg: open image: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeImage(f)
}

// LoadImageFromBytes decodes an image from a byte slice.
func LoadImageFromBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImageData
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes an image from r.
func DecodeImage(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("cg: decode image: %w", err)
	}
	return NewImage(img), nil
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.img.Bounds().Dy() }

// ColorSpace returns the image's color space tag.
func (i *Image) ColorSpace() ColorSpace { return i.space }

// Image returns the wrapped image.
func (i *Image) Image() image.Image { return i.img }

// nrgba returns the pixels as tightly packed straight-alpha RGBA8.
func (i *Image) nrgba() []byte {
	if n, ok := i.img.(*image.NRGBA); ok && n.Stride == n.Rect.Dx()*4 {
		return n.Pix[:n.Stride*n.Rect.Dy()]
	}
	b := i.img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, i.img, b.Min, draw.Src)
	return dst.Pix
}
