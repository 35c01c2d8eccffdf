/*
NAME
  convert.go

DESCRIPTION
  convert.go contains the fixed-point RGB/YCbCr colour conversions used by
  Image.Convert.

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

// Fixed-point RGB<->YCbCr conversion constants, after Leszek Szary:
// https://stackoverflow.com/questions/1737726/how-to-perform-rgb-yuv-conversion-in-c-c
//
// These reproduce libsstv's sstv_convert_image arithmetic exactly, including
// the order of operations, so results match bit-for-bit.
const (
	szaryY2R  = 91881
	szaryCb2G = 22544
	szaryCr2G = 46793
	szaryCb2B = 116129
	szaryR2Y  = 19595
	szaryG2Y  = 38470
	szaryB2Y  = 7471
	szaryB2Cb = 36962
	szaryR2Cr = 46727
)

func clip(x int32) byte {
	switch {
	case x > 255:
		return 255
	case x < 0:
		return 0
	default:
		return byte(x)
	}
}

func rgbToY(r, g, b byte) byte {
	return clip((szaryR2Y*int32(r) + szaryG2Y*int32(g) + szaryB2Y*int32(b)) >> 16)
}

func rgbToYCbCr(r, g, b byte) (y, cb, cr byte) {
	y = rgbToY(r, g, b)
	cb = clip((szaryB2Cb*(int32(b)-int32(y))>>16)+128)
	cr = clip((szaryR2Cr*(int32(r)-int32(y))>>16)+128)
	return y, cb, cr
}

// Inverse offsets, folding the Cb/Cr 128 bias into literal constants exactly
// as libsstv's CYCbCr2{R,G,B} macros do, rather than de-biasing Cb/Cr first
// and rounding differently.
const (
	ycbcr2rOffset = 179
	ycbcr2gOffset = 135
	ycbcr2bOffset = 226
)

func ycbcrToRGB(y, cb, cr byte) (r, g, b byte) {
	yy, cbc, crc := int32(y), int32(cb), int32(cr)
	r = clip(yy + (szaryY2R*crc)>>16 - ycbcr2rOffset)
	g = clip(yy - ((szaryCb2G*cbc+szaryCr2G*crc)>>16) + ycbcr2gOffset)
	b = clip(yy + (szaryCb2B*cbc)>>16 - ycbcr2bOffset)
	return r, g, b
}
