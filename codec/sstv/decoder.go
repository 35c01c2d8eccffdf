/*
NAME
  decoder.go

DESCRIPTION
  decoder.go contains the decoder session stub. Decoding SSTV audio back
  into an image is out of scope for this package (see DESIGN.md); Decoder
  exists so that callers porting session-management code from libsstv have
  a matching type, and so that a future decoder implementation has a home
  that doesn't change the package's public surface.

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

// Decoder is a decode session handle. It currently implements no decoding;
// Decode always reports StatusEncodeEnd.
type Decoder struct {
	rate uint32
	slot int
}

// CreateDecoder creates a decode session at the given sample rate.
func CreateDecoder(sampleRate uint32) (*Decoder, error) {
	if sampleRate == 0 {
		return nil, ErrBadParameter
	}

	var d *Decoder
	var slot int
	if userAlloc != nil {
		d, slot = new(Decoder), -1
	} else {
		d, slot = claimDecoderSlot()
		if d == nil {
			return nil, ErrNoDefaultEncoders
		}
	}
	*d = Decoder{rate: sampleRate, slot: slot}
	return d, nil
}

// Decode is unimplemented; it always reports that the stream has ended.
func (d *Decoder) Decode(sig *Signal, img *image.Image) (Status, error) {
	if d == nil || sig == nil || img == nil {
		return StatusBadParameter, ErrBadParameter
	}
	return StatusEncodeEnd, nil
}

// Close releases the decoder's session resources. It is idempotent.
func (d *Decoder) Close() error {
	if d == nil {
		return nil
	}
	if d.slot >= 0 {
		releaseDecoderSlot(d.slot)
		d.slot = -1
	}
	return nil
}
