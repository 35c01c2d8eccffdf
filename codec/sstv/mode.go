/*
NAME
  mode.go

DESCRIPTION
  mode.go contains the SSTV mode registry: image dimensions and pixel
  format, VIS code, and timing/frequency descriptor lookups.

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

import "github.com/ausocean/sstv/codec/sstv/image"

// Mode identifies one of the supported SSTV transmission modes. Its
// underlying value is the mode's VIS+parity byte, matching libsstv's
// sstv_mode_t enum exactly.
type Mode int

// Supported SSTV modes.
const (
	ModeFAX480 Mode = 85

	ModeRobotBW8R  Mode = 129
	ModeRobotBW8G  Mode = 130
	ModeRobotBW8B  Mode = 3
	ModeRobotBW12R Mode = 5
	ModeRobotBW12G Mode = 6
	ModeRobotBW12B Mode = 135
	ModeRobotBW24R Mode = 9
	ModeRobotBW24G Mode = 10
	ModeRobotBW24B Mode = 139
	ModeRobotBW36R Mode = 141
	ModeRobotBW36G Mode = 142
	ModeRobotBW36B Mode = 15

	ModeRobotC12 Mode = 0
	ModeRobotC24 Mode = 132
	ModeRobotC36 Mode = 136
	ModeRobotC72 Mode = 12

	ModeScottieS1 Mode = 60
	ModeScottieS2 Mode = 184
	ModeScottieS3 Mode = 180
	ModeScottieS4 Mode = 48
	ModeScottieDX Mode = 204

	ModeMartinM1 Mode = 172
	ModeMartinM2 Mode = 40
	ModeMartinM3 Mode = 36
	ModeMartinM4 Mode = 160

	ModePD50  Mode = 221
	ModePD90  Mode = 99
	ModePD120 Mode = 95
	ModePD160 Mode = 226
	ModePD180 Mode = 96
	ModePD240 Mode = 225
	ModePD290 Mode = 222
)

// modeFamily groups modes that share a segment scheduler.
type modeFamily int

const (
	familyMono modeFamily = iota // FAX + all Robot BW
	familyRobotHalf
	familyRobotFull
	familyScottie
	familyMartin
	familyPD
)

func (m Mode) family() (modeFamily, bool) {
	switch m {
	case ModeFAX480,
		ModeRobotBW8R, ModeRobotBW8G, ModeRobotBW8B,
		ModeRobotBW12R, ModeRobotBW12G, ModeRobotBW12B,
		ModeRobotBW24R, ModeRobotBW24G, ModeRobotBW24B,
		ModeRobotBW36R, ModeRobotBW36G, ModeRobotBW36B:
		return familyMono, true
	case ModeRobotC12, ModeRobotC36:
		return familyRobotHalf, true
	case ModeRobotC24, ModeRobotC72:
		return familyRobotFull, true
	case ModeScottieS1, ModeScottieS2, ModeScottieS3, ModeScottieS4, ModeScottieDX:
		return familyScottie, true
	case ModeMartinM1, ModeMartinM2, ModeMartinM3, ModeMartinM4:
		return familyMartin, true
	case ModePD50, ModePD90, ModePD120, ModePD160, ModePD180, ModePD240, ModePD290:
		return familyPD, true
	default:
		return 0, false
	}
}

// ImageProps returns the image dimensions and pixel format the mode
// requires.
func ImageProps(m Mode) (w, h int, f image.Format, err error) {
	switch m {
	case ModeFAX480:
		return 512, 480, image.FormatY, nil

	case ModeRobotBW8R, ModeRobotBW8G, ModeRobotBW8B,
		ModeRobotBW12R, ModeRobotBW12G, ModeRobotBW12B:
		return 160, 120, image.FormatY, nil

	case ModeRobotBW24R, ModeRobotBW24G, ModeRobotBW24B,
		ModeRobotBW36R, ModeRobotBW36G, ModeRobotBW36B:
		return 320, 240, image.FormatY, nil

	case ModeRobotC12:
		return 160, 120, image.FormatYCbCr, nil
	case ModeRobotC24:
		return 320, 120, image.FormatYCbCr, nil
	case ModeRobotC36, ModeRobotC72:
		return 320, 240, image.FormatYCbCr, nil

	case ModeScottieS1, ModeScottieS2, ModeScottieDX:
		return 320, 256, image.FormatRGB, nil
	case ModeScottieS3, ModeScottieS4:
		return 320, 128, image.FormatRGB, nil

	case ModeMartinM1, ModeMartinM2:
		return 320, 256, image.FormatRGB, nil
	case ModeMartinM3, ModeMartinM4:
		return 320, 128, image.FormatRGB, nil

	case ModePD50, ModePD90:
		return 320, 256, image.FormatYCbCr, nil
	case ModePD120, ModePD180, ModePD240:
		return 640, 496, image.FormatYCbCr, nil
	case ModePD160:
		return 512, 400, image.FormatYCbCr, nil
	case ModePD290:
		return 800, 616, image.FormatYCbCr, nil

	default:
		return 0, 0, 0, ErrBadMode
	}
}

// VISCode returns the 8-bit VIS+parity byte transmitted at the start of a
// transmission for mode m.
func VISCode(m Mode) (byte, error) {
	if _, ok := m.family(); !ok {
		return 0, ErrBadMode
	}
	return byte(m), nil
}

// NewImageForMode allocates an Image sized and formatted for mode m.
func NewImageForMode(m Mode) (*image.Image, error) {
	w, h, f, err := ImageProps(m)
	if err != nil {
		return nil, err
	}
	return image.New(w, h, f)
}
