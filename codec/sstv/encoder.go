/*
NAME
  encoder.go

DESCRIPTION
  encoder.go contains the encoder session façade: session creation,
  destruction, and the per-call sample-draining loop. The per-mode segment
  scheduling lives in scheduler*.go; this file owns the tone generator
  (phase accumulator) and the state common to every mode (header, VIS).

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

// schedState is the scheduler's tagged state. Per spec.md's "tagged states
// replace string/enum fan-out" redesign note, the per-mode scan pattern is
// a pure function from (state, cursor) to (next state, tone program); see
// scheduler*.go.
type schedState int

const (
	stateStart schedState = iota

	stateLeader1
	stateBreak
	stateLeader2

	stateVisStart
	stateVisBit
	stateVisStop

	stateSync
	stateSyncFirst
	statePorch
	statePorch2
	statePorchR
	statePorchG
	statePorchB
	statePorchRY
	statePorchBY

	stateSeparator
	stateSeparator2
	stateSeparatorRY
	stateSeparatorBY

	stateYScan
	stateYOddScan
	stateYEvenScan
	stateRYScan
	stateBYScan
	stateRScan
	stateGScan
	stateBScan

	stateEnd
)

// scanCursor tracks position within the mode-specific scan pattern. phase is
// a small family-specific sub-state counter (e.g. which of G/B/R a line's
// scan is currently on) that doesn't warrant its own schedState value.
type scanCursor struct {
	line, col, phase int
}

// visCursor tracks progress through the 10-cell VIS header (start + 8 data
// bits + stop).
type visCursor struct {
	visp   byte
	curBit int
}

// Encoder holds one encoding session: the source image, the chosen mode and
// sample rate, the precomputed descriptor, and the scheduler/tone-generator
// state that Encode mutates incrementally across calls.
type Encoder struct {
	img  *image.Image
	mode Mode
	rate uint32
	desc ModeDescriptor

	state schedState
	scan  scanCursor
	vis   visCursor

	phase, phaseDelta uint32
	microRemaining    uint64

	scanAdvance func(*Encoder) error

	slot int // index into the default pool, or -1 if heap-allocated
}

// NewEncoder creates an encoding session for img using mode at sampleRate.
// img's dimensions and format must match ImageProps(mode) exactly, and for
// PD-family modes, img.Height must be even (the PD scheduler advances two
// lines at a time).
func NewEncoder(img *image.Image, mode Mode, sampleRate uint32) (*Encoder, error) {
	if img == nil {
		return nil, ErrBadParameter
	}
	if sampleRate == 0 {
		return nil, ErrBadParameter
	}

	family, ok := mode.family()
	if !ok {
		return nil, ErrBadMode
	}

	w, h, f, err := ImageProps(mode)
	if err != nil {
		return nil, err
	}
	if img.Width != w || img.Height != h {
		return nil, ErrBadResolution
	}
	if img.Format != f {
		return nil, ErrBadFormat
	}
	if family == familyPD && h%2 != 0 {
		return nil, ErrBadResolution
	}

	desc, err := Descriptor(mode, sampleRate)
	if err != nil {
		return nil, err
	}

	e, slot := acquireEncoder()
	if e == nil {
		return nil, ErrNoDefaultEncoders
	}

	*e = Encoder{
		img:   img,
		mode:  mode,
		rate:  sampleRate,
		desc:  desc,
		state: stateStart,
		slot:  slot,
	}
	e.scanAdvance = scanFuncFor(family)

	return e, nil
}

// acquireEncoder returns either a heap-allocated Encoder (when allocator
// hooks are registered via Init) or a slot from the default pool, with slot
// set to -1 in the heap case.
func acquireEncoder() (*Encoder, int) {
	if userAlloc != nil {
		return new(Encoder), -1
	}
	return claimEncoderSlot()
}

// Close releases the encoder's session resources. It is idempotent.
func (e *Encoder) Close() error {
	if e == nil {
		return nil
	}
	if e.slot >= 0 {
		releaseEncoderSlot(e.slot)
		e.slot = -1
	}
	return nil
}

// program arms the tone generator with a new phase-delta and adds t's
// micro-sample count to the outstanding countdown. Accumulating rather than
// overwriting the countdown preserves timing accuracy across segment
// boundaries when a duration's micro-sample count has a fractional
// remainder.
func (e *Encoder) program(freq freqDesc, t timing) {
	e.phaseDelta = freq.phaseDelta
	e.microRemaining += t.usamp
}

// programPixel arms the tone generator for one pixel sample of value v.
func (e *Encoder) programPixel(v byte, t timing) {
	e.phaseDelta = e.desc.pixel.valPhaseDelta[v]
	e.microRemaining += t.usamp
}

// px returns channel ch of the pixel at (line, col) in the source image.
func (e *Encoder) px(line, col, ch int) byte {
	stride := e.img.Format.Channels()
	return e.img.Buffer[(line*e.img.Width+col)*stride+ch]
}

// avg2 returns the truncated mean of channel ch at (lineA, col) and
// (lineB, col), used by the PD and Robot colour families' vertically
// averaged chroma scans.
func (e *Encoder) avg2(lineA, lineB, col, ch int) byte {
	return byte((int(e.px(lineA, col, ch)) + int(e.px(lineB, col, ch))) / 2)
}

// tick advances the phase accumulator by one sample, writes it into sig,
// and consumes one sample's worth (1_000_000 micro-samples) of the countdown.
func (e *Encoder) tick(sig *Signal) error {
	e.microRemaining -= 1_000_000
	e.phase += e.phaseDelta
	return sig.writeSample(e.phase)
}

// Encode drains samples into sig until sig is full or the encoding has
// finished. It resets sig.Count to zero on entry. A capacity-0 signal is a
// no-op that returns StatusEncodeSuccessful without advancing scheduler
// state.
func (e *Encoder) Encode(sig *Signal) (Status, error) {
	if e == nil || sig == nil {
		return StatusBadParameter, ErrBadParameter
	}
	sig.Count = 0
	if sig.Capacity == 0 {
		return StatusEncodeSuccessful, nil
	}

	for {
		if e.microRemaining < 1_000_000 {
			if err := e.advance(); err != nil {
				s := StatusInternalError
				if se, ok := err.(*Error); ok {
					s = se.Code()
				}
				return s, err
			}
			if e.state == stateEnd {
				return StatusEncodeEnd, nil
			}
			if e.microRemaining < 1_000_000 {
				return StatusInternalError, ErrInternalError
			}
			continue
		}

		if sig.Count == sig.Capacity {
			return StatusEncodeSuccessful, nil
		}

		if err := e.tick(sig); err != nil {
			return StatusBadSampleType, err
		}
	}
}
