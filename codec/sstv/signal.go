/*
NAME
  signal.go

DESCRIPTION
  signal.go contains the caller-supplied output buffer container the
  encoder drains samples into.

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

import "encoding/binary"

// SampleType is the element type of a Signal's sample buffer.
type SampleType int

// Supported sample types.
const (
	SampleUint8 SampleType = iota
	SampleInt8
	SampleInt16
)

func (t SampleType) bytesPerSample() int {
	if t == SampleInt16 {
		return 2
	}
	return 1
}

// Signal is a caller-supplied sample buffer. Count never exceeds Capacity;
// after a call to Encoder.Encode returns StatusEncodeSuccessful, Count
// equals Capacity.
type Signal struct {
	Type     SampleType
	Capacity int
	Count    int

	buf []byte
}

// PackSignal wraps buf, a caller-owned byte buffer, as a Signal able to hold
// up to capacity samples of the given type. buf must be at least
// capacity*bytesPerSample(type) bytes long.
func PackSignal(t SampleType, capacity int, buf []byte) (*Signal, error) {
	if capacity < 0 || buf == nil {
		return nil, ErrBadParameter
	}
	bps := t.bytesPerSample()
	if t != SampleUint8 && t != SampleInt8 && t != SampleInt16 {
		return nil, ErrBadSampleType
	}
	if len(buf) < capacity*bps {
		return nil, ErrBadParameter
	}
	return &Signal{Type: t, Capacity: capacity, buf: buf}, nil
}

// writeSample writes the tone generator's current phase-indexed sample at
// position Count and advances Count.
func (s *Signal) writeSample(phase uint32) error {
	idx := phase >> 22
	off := s.Count * s.Type.bytesPerSample()
	switch s.Type {
	case SampleInt8:
		s.buf[off] = byte(sinInt8[idx])
	case SampleUint8:
		s.buf[off] = sinUint8[idx]
	case SampleInt16:
		binary.LittleEndian.PutUint16(s.buf[off:], uint16(sinInt16[idx]))
	default:
		return ErrBadSampleType
	}
	s.Count++
	return nil
}

// Bytes returns the portion of the backing buffer that holds the Count
// samples written so far.
func (s *Signal) Bytes() []byte {
	return s.buf[:s.Count*s.Type.bytesPerSample()]
}
