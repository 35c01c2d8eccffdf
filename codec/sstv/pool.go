/*
NAME
  pool.go

DESCRIPTION
  pool.go contains the fixed-size fallback pool of encoder (and decoder)
  sessions used when no allocator hooks have been registered with Init.

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

// DefaultEncoderSlots is the number of encoder sessions available from the
// default pool when no allocator hooks are registered via Init. Once all
// slots are in use, NewEncoder returns ErrNoDefaultEncoders until one is
// freed with Close.
const DefaultEncoderSlots = 64

// DefaultDecoderSlots mirrors DefaultEncoderSlots for the decoder stub's own
// pool.
const DefaultDecoderSlots = 64

var (
	defaultEncoderPool  [DefaultEncoderSlots]Encoder
	defaultEncoderInUse uint64 // bitmask, bit i set iff defaultEncoderPool[i] is claimed

	defaultDecoderPool  [DefaultDecoderSlots]Decoder
	defaultDecoderInUse uint64
)

// claimEncoderSlot finds a free slot in the default pool, marks it used and
// returns a pointer to it, or nil if the pool is exhausted.
func claimEncoderSlot() (*Encoder, int) {
	for i := 0; i < DefaultEncoderSlots; i++ {
		if defaultEncoderInUse&(1<<uint(i)) == 0 {
			defaultEncoderInUse |= 1 << uint(i)
			return &defaultEncoderPool[i], i
		}
	}
	return nil, -1
}

// releaseEncoderSlot marks slot i of the default pool free again.
func releaseEncoderSlot(i int) {
	defaultEncoderInUse &^= 1 << uint(i)
}

func claimDecoderSlot() (*Decoder, int) {
	for i := 0; i < DefaultDecoderSlots; i++ {
		if defaultDecoderInUse&(1<<uint(i)) == 0 {
			defaultDecoderInUse |= 1 << uint(i)
			return &defaultDecoderPool[i], i
		}
	}
	return nil, -1
}

func releaseDecoderSlot(i int) {
	defaultDecoderInUse &^= 1 << uint(i)
}
