/*
NAME
  descriptor_test.go

DESCRIPTION
  descriptor_test.go tests the mode descriptor's timing and frequency
  computation.

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

import "testing"

func TestDescriptorHeaderTiming(t *testing.T) {
	d, err := Descriptor(ModePD120, 48000)
	if err != nil {
		t.Fatal(err)
	}
	const wantUsamp = uint64(300_000_000) * 48000 / 1000 // 300ms at 48kHz, in micro-samples
	if d.leaderTone.time.usamp != wantUsamp {
		t.Errorf("leader tone usamp = %d, want %d", d.leaderTone.time.usamp, wantUsamp)
	}
	if d.leaderTone.freq.hz != 1900 {
		t.Errorf("leader tone freq = %d, want 1900", d.leaderTone.freq.hz)
	}
	if d.breakTone.freq.hz != 1200 {
		t.Errorf("break tone freq = %d, want 1200", d.breakTone.freq.hz)
	}
}

func TestDescriptorPD120Timing(t *testing.T) {
	d, err := Descriptor(ModePD120, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if d.sync.time.ns != 20_000_000 {
		t.Errorf("sync time = %d, want 20000000", d.sync.time.ns)
	}
	if d.porch.time.ns != 2_080_000 {
		t.Errorf("porch time = %d, want 2080000", d.porch.time.ns)
	}
	if d.pixel.time.ns != 190_000 {
		t.Errorf("pixel time = %d, want 190000", d.pixel.time.ns)
	}
}

func TestPixelPhaseDeltaMonotonic(t *testing.T) {
	d, err := Descriptor(ModeFAX480, 48000)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < 256; i++ {
		if d.pixel.valPhaseDelta[i] <= d.pixel.valPhaseDelta[i-1] {
			t.Fatalf("valPhaseDelta not strictly increasing at %d: %d <= %d",
				i, d.pixel.valPhaseDelta[i], d.pixel.valPhaseDelta[i-1])
		}
	}
}

func TestPixelPhaseDeltaEndpoints(t *testing.T) {
	const rate = 48000
	d, err := Descriptor(ModeFAX480, rate)
	if err != nil {
		t.Fatal(err)
	}
	lowWant := newFreq(1500, rate).phaseDelta
	highWant := newFreq(2300, rate).phaseDelta

	if d.pixel.valPhaseDelta[0] != lowWant {
		t.Errorf("valPhaseDelta[0] = %d, want %d (1500Hz)", d.pixel.valPhaseDelta[0], lowWant)
	}
	if d.pixel.valPhaseDelta[255] != highWant {
		t.Errorf("valPhaseDelta[255] = %d, want %d (2300Hz)", d.pixel.valPhaseDelta[255], highWant)
	}
}

func TestDescriptorBadMode(t *testing.T) {
	if _, err := Descriptor(Mode(-1), 48000); err != ErrBadMode {
		t.Errorf("got %v, want ErrBadMode", err)
	}
}

func TestDescriptorBadSampleRate(t *testing.T) {
	if _, err := Descriptor(ModePD120, 0); err != ErrBadParameter {
		t.Errorf("got %v, want ErrBadParameter", err)
	}
}
