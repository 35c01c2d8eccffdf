/*
NAME
  image_test.go

DESCRIPTION
  image_test.go tests the Image container and its RGB/YCbCr conversions.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package image

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNewAndClose(t *testing.T) {
	img, err := New(4, 4, FormatRGB)
	if err != nil {
		t.Fatal(err)
	}
	if len(img.Buffer) != 4*4*3 {
		t.Fatalf("buffer length = %d, want %d", len(img.Buffer), 4*4*3)
	}
	if err := img.Close(); err != nil {
		t.Fatal(err)
	}
	if img.Buffer != nil {
		t.Error("Buffer not cleared after Close")
	}
}

func TestPackBadLength(t *testing.T) {
	if _, err := Pack(4, 4, FormatRGB, make([]byte, 10)); err != ErrBadParameter {
		t.Errorf("got %v, want ErrBadParameter", err)
	}
}

func TestPackCloseIsNoOp(t *testing.T) {
	buf := make([]byte, 3)
	img, err := Pack(1, 1, FormatRGB, buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := img.Close(); err != nil {
		t.Fatal(err)
	}
	if img.Buffer == nil {
		t.Error("Close cleared a borrowed buffer")
	}
}

func TestConvertFromYUnsupported(t *testing.T) {
	img, err := New(2, 2, FormatY)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	if err := img.Convert(FormatRGB); err != ErrUnsupportedConversion {
		t.Errorf("got %v, want ErrUnsupportedConversion", err)
	}
}

// TestRoundTripRGBYCbCr checks that converting RGB -> YCbCr -> RGB recovers
// each channel within +/-2, the expected rounding error of the fixed-point
// Szary conversion.
func TestRoundTripRGBYCbCr(t *testing.T) {
	img, err := New(16, 16, FormatRGB)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	for i := range img.Buffer {
		img.Buffer[i] = byte((i * 37) % 256)
	}
	original := append([]byte(nil), img.Buffer...)

	if err := img.Convert(FormatYCbCr); err != nil {
		t.Fatal(err)
	}
	if err := img.Convert(FormatRGB); err != nil {
		t.Fatal(err)
	}

	diffs := make([]float64, len(original))
	for i := range original {
		d := int(img.Buffer[i]) - int(original[i])
		diffs[i] = math.Abs(float64(d))
		if diffs[i] > 2 {
			t.Errorf("byte %d: round-trip diff %d exceeds tolerance", i, d)
		}
	}
	if mean := stat.Mean(diffs, nil); mean > 1.5 {
		t.Errorf("mean round-trip error %.2f exceeds expected tolerance", mean)
	}
}

func TestRgbToYGrey(t *testing.T) {
	// A grey pixel should map to its own value in Y, within rounding.
	const v = 128
	y := rgbToY(v, v, v)
	if int(y) < v-1 || int(y) > v+1 {
		t.Errorf("rgbToY(%d,%d,%d) = %d, want ~%d", v, v, v, y, v)
	}
}
