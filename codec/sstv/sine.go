/*
NAME
  sine.go

DESCRIPTION
  sine.go contains the fixed-point sine lookup tables the tone generator
  indexes with the top 10 bits of its phase accumulator.

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

import "math"

// sineTableSize is the number of entries in one full period of each sine
// table; the tone generator indexes them with phase>>22, the top 10 bits of
// a 32-bit phase accumulator.
const sineTableSize = 1024

var (
	sinInt8  [sineTableSize]int8
	sinUint8 [sineTableSize]uint8
	sinInt16 [sineTableSize]int16
)

func init() {
	for i := 0; i < sineTableSize; i++ {
		v := math.Sin(2 * math.Pi * float64(i) / sineTableSize)
		sinInt8[i] = int8(math.Round(v * 127))
		sinUint8[i] = uint8(math.Round(v*127 + 128))
		sinInt16[i] = int16(math.Round(v * 32767))
	}
}
