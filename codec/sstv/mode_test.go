/*
NAME
  mode_test.go

DESCRIPTION
  mode_test.go tests the mode registry's dimension, format and VIS code
  lookups.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sstv

import (
	"testing"

	"github.com/ausocean/sstv/codec/sstv/image"
)

func TestImageProps(t *testing.T) {
	cases := []struct {
		mode       Mode
		w, h       int
		format     image.Format
	}{
		{ModeFAX480, 512, 480, image.FormatY},
		{ModeRobotBW8R, 160, 120, image.FormatY},
		{ModeRobotBW24G, 320, 240, image.FormatY},
		{ModeRobotC12, 160, 120, image.FormatYCbCr},
		{ModeRobotC24, 320, 120, image.FormatYCbCr},
		{ModeRobotC72, 320, 240, image.FormatYCbCr},
		{ModeScottieS1, 320, 256, image.FormatRGB},
		{ModeScottieS3, 320, 128, image.FormatRGB},
		{ModeMartinM1, 320, 256, image.FormatRGB},
		{ModePD120, 640, 496, image.FormatYCbCr},
		{ModePD290, 800, 616, image.FormatYCbCr},
	}
	for _, c := range cases {
		w, h, f, err := ImageProps(c.mode)
		if err != nil {
			t.Errorf("mode %d: unexpected error: %v", c.mode, err)
			continue
		}
		if w != c.w || h != c.h || f != c.format {
			t.Errorf("mode %d: got (%d,%d,%v), want (%d,%d,%v)", c.mode, w, h, f, c.w, c.h, c.format)
		}
	}
}

func TestImagePropsBadMode(t *testing.T) {
	if _, _, _, err := ImageProps(Mode(-1)); err != ErrBadMode {
		t.Errorf("got %v, want ErrBadMode", err)
	}
}

func TestVISCodeMatchesMode(t *testing.T) {
	modes := []Mode{
		ModeFAX480, ModeRobotBW8R, ModeRobotC12, ModeScottieS1,
		ModeMartinM1, ModePD120,
	}
	for _, m := range modes {
		vis, err := VISCode(m)
		if err != nil {
			t.Fatalf("mode %d: %v", m, err)
		}
		if vis != byte(m) {
			t.Errorf("mode %d: VISCode = %d, want %d", m, vis, byte(m))
		}
	}
}

func TestNewImageForMode(t *testing.T) {
	img, err := NewImageForMode(ModePD120)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	w, h, f, _ := ImageProps(ModePD120)
	if img.Width != w || img.Height != h || img.Format != f {
		t.Errorf("got (%d,%d,%v), want (%d,%d,%v)", img.Width, img.Height, img.Format, w, h, f)
	}
	if len(img.Buffer) != w*h*f.Channels() {
		t.Errorf("buffer length = %d, want %d", len(img.Buffer), w*h*f.Channels())
	}
}

func TestNewEncoderRejectsWrongResolution(t *testing.T) {
	// PD50 wants 320x256; a differently-sized image, odd-height or not,
	// must be rejected before any scheduling state is touched.
	img, err := image.New(320, 255, image.FormatYCbCr)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	if _, err := NewEncoder(img, ModePD50, 48000); err != ErrBadResolution {
		t.Errorf("got %v, want ErrBadResolution", err)
	}
}
