/*
NAME
  encoder_test.go

DESCRIPTION
  encoder_test.go contains end-to-end tests of the encoder: header tone
  content, full-image completion across mode families, chunked buffer
  fill/drain handoff, resolution validation and default-pool exhaustion.

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
	"encoding/binary"
	"testing"

	"github.com/ausocean/sstv/codec/sstv/image"
	"github.com/ausocean/sstv/codec/sstv/spectral"
)

func fillImage(img *image.Image, v byte) {
	for i := range img.Buffer {
		img.Buffer[i] = v
	}
}

func bytesToInt16(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return out
}

// TestLeaderToneFrequency confirms that the waveform's first segment is the
// 1900Hz leader tone, regardless of mode or image content.
func TestLeaderToneFrequency(t *testing.T) {
	const rate = 48000

	img, err := NewImageForMode(ModePD120)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	fillImage(img, 128)

	enc, err := NewEncoder(img, ModePD120, rate)
	if err != nil {
		t.Fatal(err)
	}
	defer enc.Close()

	buf := make([]byte, 4096*2)
	sig, err := PackSignal(SampleInt16, 4096, buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Encode(sig); err != nil {
		t.Fatal(err)
	}

	samples := bytesToInt16(sig.Bytes())
	freq, err := spectral.DominantFreq(spectral.Int16ToFloat64(samples), rate)
	if err != nil {
		t.Fatal(err)
	}
	if freq < 1850 || freq > 1950 {
		t.Errorf("leader tone dominant frequency = %.1f Hz, want ~1900Hz", freq)
	}
}

// TestEncodeCompletesAcrossFamilies drives one representative mode per
// scheduler family to completion and checks that it terminates cleanly with
// StatusEncodeEnd rather than an internal error.
func TestEncodeCompletesAcrossFamilies(t *testing.T) {
	modes := []Mode{
		ModeFAX480,
		ModeRobotBW8R,
		ModeRobotC12,
		ModeRobotC24,
		ModeScottieS1,
		ModeMartinM1,
		ModePD50,
	}

	for _, m := range modes {
		m := m
		t.Run(modeLabel(m), func(t *testing.T) {
			img, err := NewImageForMode(m)
			if err != nil {
				t.Fatal(err)
			}
			defer img.Close()
			fillImage(img, 128)

			const rate = 8000
			enc, err := NewEncoder(img, m, rate)
			if err != nil {
				t.Fatal(err)
			}
			defer enc.Close()

			buf := make([]byte, 8192*2)
			total := 0
			for {
				sig, err := PackSignal(SampleInt16, 8192, buf)
				if err != nil {
					t.Fatal(err)
				}
				status, err := enc.Encode(sig)
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				total += sig.Count
				if status == StatusEncodeEnd {
					break
				}
				if status != StatusEncodeSuccessful {
					t.Fatalf("unexpected status: %v", status)
				}
			}
			if total == 0 {
				t.Error("encoded zero samples")
			}
		})
	}
}

func modeLabel(m Mode) string {
	if f, ok := m.family(); ok {
		switch f {
		case familyMono:
			return "mono"
		case familyRobotHalf:
			return "robotHalf"
		case familyRobotFull:
			return "robotFull"
		case familyScottie:
			return "scottie"
		case familyMartin:
			return "martin"
		case familyPD:
			return "pd"
		}
	}
	return "unknown"
}

// TestEncodeChunkedHandoff confirms that draining a stream through a buffer
// far smaller than one full image produces the same total sample count as
// draining it through one large buffer.
func TestEncodeChunkedHandoff(t *testing.T) {
	const rate = 8000

	run := func(capacity int) int {
		img, err := NewImageForMode(ModePD90)
		if err != nil {
			t.Fatal(err)
		}
		defer img.Close()
		fillImage(img, 64)

		enc, err := NewEncoder(img, ModePD90, rate)
		if err != nil {
			t.Fatal(err)
		}
		defer enc.Close()

		buf := make([]byte, capacity)
		total := 0
		for {
			sig, err := PackSignal(SampleUint8, capacity, buf)
			if err != nil {
				t.Fatal(err)
			}
			status, err := enc.Encode(sig)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			total += sig.Count
			if status == StatusEncodeEnd {
				return total
			}
			if sig.Count != capacity {
				t.Fatalf("partial buffer of %d on a non-terminal call", sig.Count)
			}
		}
	}

	small := run(37)
	large := run(65536)
	if small != large {
		t.Errorf("chunked total = %d, unchunked total = %d, want equal", small, large)
	}
}

func TestNewEncoderBadResolution(t *testing.T) {
	img, err := image.New(320, 256, image.FormatRGB)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	if _, err := NewEncoder(img, ModePD120, 48000); err != ErrBadResolution {
		t.Errorf("got %v, want ErrBadResolution", err)
	}
}

func TestDefaultPoolExhaustion(t *testing.T) {
	img, err := NewImageForMode(ModeFAX480)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	var encs []*Encoder
	defer func() {
		for _, e := range encs {
			e.Close()
		}
	}()

	for i := 0; i < DefaultEncoderSlots; i++ {
		e, err := NewEncoder(img, ModeFAX480, 48000)
		if err != nil {
			t.Fatalf("slot %d: unexpected error: %v", i, err)
		}
		encs = append(encs, e)
	}

	if _, err := NewEncoder(img, ModeFAX480, 48000); err != ErrNoDefaultEncoders {
		t.Errorf("got %v, want ErrNoDefaultEncoders", err)
	}

	encs[0].Close()
	encs = encs[1:]

	if e, err := NewEncoder(img, ModeFAX480, 48000); err != nil {
		t.Errorf("unexpected error after freeing a slot: %v", err)
	} else {
		encs = append(encs, e)
	}
}
