/*
NAME
  image.go

DESCRIPTION
  image.go contains the pixel buffer container and colour format
  conversions used by the sstv encoder.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package image provides the pixel buffer container consumed by the sstv
// encoder, along with the fixed-point RGB/YCbCr conversions SSTV's colour
// modes require.
package image

import "github.com/pkg/errors"

// Format is a pixel format supported by the sstv encoder.
type Format int

// Supported pixel formats.
const (
	FormatY Format = iota
	FormatYCbCr
	FormatRGB
)

// Channels returns the number of bytes per pixel for a format.
func (f Format) Channels() int {
	switch f {
	case FormatY:
		return 1
	case FormatYCbCr, FormatRGB:
		return 3
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatY:
		return "Y"
	case FormatYCbCr:
		return "YCbCr"
	case FormatRGB:
		return "RGB"
	default:
		return "unknown"
	}
}

var (
	// ErrBadFormat is returned for an unrecognised Format.
	ErrBadFormat = errors.New("sstv/image: bad format")
	// ErrBadParameter is returned for invalid dimensions or a nil buffer.
	ErrBadParameter = errors.New("sstv/image: bad parameter")
	// ErrUnsupportedConversion is returned when converting from FormatY,
	// which discards the chroma information irreversibly.
	ErrUnsupportedConversion = errors.New("sstv/image: unsupported conversion")
)

// Image is a width x height pixel buffer in one of the supported formats.
// Buffer's length always equals Width*Height*Format.Channels().
//
// An Image created with New owns its buffer and must be
// released with Close once it's no longer needed. An Image created with
// Pack borrows a caller-owned buffer; Close on it is a no-op.
type Image struct {
	Width, Height int
	Format        Format
	Buffer        []byte

	owned bool
}

// New allocates an Image of the given dimensions and format.
func New(w, h int, format Format) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadParameter
	}
	ch := format.Channels()
	if ch == 0 {
		return nil, ErrBadFormat
	}
	return &Image{
		Width:  w,
		Height: h,
		Format: format,
		Buffer: make([]byte, w*h*ch),
		owned:  true,
	}, nil
}

// Pack wraps an existing caller-owned buffer as an Image. The buffer must
// already be sized Width*Height*Format.Channels(); ownership is not
// transferred, so Close is a no-op on the result.
func Pack(w, h int, format Format, buf []byte) (*Image, error) {
	if w <= 0 || h <= 0 || buf == nil {
		return nil, ErrBadParameter
	}
	ch := format.Channels()
	if ch == 0 {
		return nil, ErrBadFormat
	}
	if len(buf) != w*h*ch {
		return nil, ErrBadParameter
	}
	return &Image{Width: w, Height: h, Format: format, Buffer: buf}, nil
}

// Close releases the Image's buffer if it was allocated by New. It is a
// no-op, and safe to call more than once, on a packed or already-closed
// Image.
func (img *Image) Close() error {
	if img == nil || !img.owned {
		return nil
	}
	img.Buffer = nil
	img.owned = false
	return nil
}

// Convert converts img in place to target, updating img.Format and
// replacing img.Buffer. Converting from FormatY to any other format is
// unsupported, since the chroma channels cannot be recovered; it returns
// ErrUnsupportedConversion.
func (img *Image) Convert(target Format) error {
	if img.Format == target {
		return nil
	}
	if img.Format == FormatY {
		return ErrUnsupportedConversion
	}

	n := img.Width * img.Height
	switch target {
	case FormatY:
		out := make([]byte, n)
		switch img.Format {
		case FormatYCbCr:
			for i := 0; i < n; i++ {
				out[i] = img.Buffer[i*3]
			}
		case FormatRGB:
			for i := 0; i < n; i++ {
				r, g, b := img.Buffer[i*3], img.Buffer[i*3+1], img.Buffer[i*3+2]
				out[i] = rgbToY(r, g, b)
			}
		default:
			return ErrBadFormat
		}
		img.Buffer = out

	case FormatYCbCr:
		if img.Format != FormatRGB {
			return ErrBadFormat
		}
		out := make([]byte, n*3)
		for i := 0; i < n; i++ {
			r, g, b := img.Buffer[i*3], img.Buffer[i*3+1], img.Buffer[i*3+2]
			y, cb, cr := rgbToYCbCr(r, g, b)
			out[i*3], out[i*3+1], out[i*3+2] = y, cb, cr
		}
		img.Buffer = out

	case FormatRGB:
		if img.Format != FormatYCbCr {
			return ErrBadFormat
		}
		out := make([]byte, n*3)
		for i := 0; i < n; i++ {
			y, cb, cr := img.Buffer[i*3], img.Buffer[i*3+1], img.Buffer[i*3+2]
			r, g, b := ycbcrToRGB(y, cb, cr)
			out[i*3], out[i*3+1], out[i*3+2] = r, g, b
		}
		img.Buffer = out

	default:
		return ErrBadFormat
	}

	img.Format = target
	return nil
}
