/*
NAME
  descriptor.go

DESCRIPTION
  descriptor.go computes the per-(mode, sample rate) timing and frequency
  descriptor that drives the segment scheduler and tone generator.

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

// timing holds a segment duration in both nanoseconds and "micro-samples"
// (duration * sampleRate / 1000), the unit the scheduler's countdown counts
// in.
type timing struct {
	ns    uint32
	usamp uint64
}

func newTiming(ns, sampleRate uint32) timing {
	return timing{ns: ns, usamp: uint64(ns) * uint64(sampleRate) / 1000}
}

// freqDesc holds a tone frequency in both hertz and phase-delta (the
// per-sample increment of a 32-bit phase accumulator that produces it).
type freqDesc struct {
	hz         uint32
	phaseDelta uint32
}

func newFreq(hz, sampleRate uint32) freqDesc {
	return freqDesc{hz: hz, phaseDelta: uint32((uint64(hz) << 32) / uint64(sampleRate))}
}

// toneSeg is a fixed-duration, fixed-frequency segment: leader tone, break,
// sync, porch, porch2, separator and separator2 are all single tones.
type toneSeg struct {
	time timing
	freq freqDesc
}

// visSeg is the VIS bit-cell timing, shared by the start bit, all 8 data
// bits and the stop bit; the frequency used per-cell depends on the bit
// value (see scheduler.go).
type visSeg struct {
	time               timing
	sepFreq, low, high freqDesc
}

// pixelSeg is the per-pixel scan segment. time is used for full-bandwidth
// scans (Y, R, G, B); time2 is used for the half-rate chroma scans in the
// Robot colour modes. valPhaseDelta maps a pixel byte directly to the
// phase-delta that encodes it.
type pixelSeg struct {
	time, time2      timing
	lowFreq          freqDesc
	bandwidth        freqDesc
	valPhaseDelta    [256]uint32
}

// ModeDescriptor holds every timing and frequency value needed to encode one
// mode at one sample rate. Fields that a mode's scheduler never uses are
// left zero-valued.
type ModeDescriptor struct {
	leaderTone            toneSeg
	breakTone             toneSeg
	vis                   visSeg
	sync                  toneSeg
	porch, porch2         toneSeg
	separator, separator2 toneSeg
	pixel                 pixelSeg
}

// Descriptor computes the full timing/frequency descriptor for mode m at
// the given sample rate.
func Descriptor(m Mode, sampleRate uint32) (ModeDescriptor, error) {
	family, ok := m.family()
	if !ok {
		return ModeDescriptor{}, ErrBadMode
	}
	if sampleRate == 0 {
		return ModeDescriptor{}, ErrBadParameter
	}

	var d ModeDescriptor

	// Header segments: identical across every mode.
	d.leaderTone = toneSeg{time: newTiming(300_000_000, sampleRate), freq: newFreq(1900, sampleRate)}
	d.breakTone = toneSeg{time: newTiming(10_000_000, sampleRate), freq: newFreq(1200, sampleRate)}
	d.vis = visSeg{
		time:    newTiming(30_000_000, sampleRate),
		sepFreq: newFreq(1200, sampleRate),
		low:     newFreq(1300, sampleRate),
		high:    newFreq(1100, sampleRate),
	}

	// Mode-family frequencies.
	d.sync.freq = newFreq(1200, sampleRate)
	d.porch.freq = newFreq(1500, sampleRate)
	d.pixel.lowFreq = newFreq(1500, sampleRate)
	d.pixel.bandwidth = newFreq(800, sampleRate)
	switch family {
	case familyRobotHalf, familyRobotFull:
		d.porch2.freq = newFreq(1900, sampleRate)
		d.separator.freq = newFreq(1500, sampleRate)
		d.separator2.freq = newFreq(2300, sampleRate)
	}

	// Mode-specific durations.
	switch m {
	case ModeFAX480:
		d.sync.time = newTiming(5_120_000, sampleRate)
		d.pixel.time = newTiming(512_000, sampleRate)

	case ModeRobotBW8R, ModeRobotBW8G, ModeRobotBW8B:
		d.sync.time = newTiming(10_000_000, sampleRate)
		d.pixel.time = newTiming(350_000, sampleRate)

	case ModeRobotBW12R, ModeRobotBW12G, ModeRobotBW12B:
		d.sync.time = newTiming(7_000_000, sampleRate)
		d.pixel.time = newTiming(581_250, sampleRate)

	case ModeRobotBW24R, ModeRobotBW24G, ModeRobotBW24B:
		d.sync.time = newTiming(12_000_000, sampleRate)
		d.pixel.time = newTiming(290_625, sampleRate)

	case ModeRobotBW36R, ModeRobotBW36G, ModeRobotBW36B:
		d.sync.time = newTiming(12_000_000, sampleRate)
		d.pixel.time = newTiming(431_250, sampleRate)

	case ModeRobotC12:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(3_000_000, sampleRate)
		d.porch2.time = newTiming(1_500_000, sampleRate)
		d.separator.time = newTiming(4_500_000, sampleRate)
		d.separator2.time = newTiming(4_500_000, sampleRate)
		d.pixel.time = newTiming(375_000, sampleRate)
		d.pixel.time2 = newTiming(187_500, sampleRate)

	case ModeRobotC24:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(3_000_000, sampleRate)
		d.porch2.time = newTiming(1_500_000, sampleRate)
		d.separator.time = newTiming(4_500_000, sampleRate)
		d.separator2.time = newTiming(4_500_000, sampleRate)
		d.pixel.time = newTiming(275_000, sampleRate)
		d.pixel.time2 = newTiming(137_500, sampleRate)

	case ModeRobotC36:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(3_000_000, sampleRate)
		d.porch2.time = newTiming(1_500_000, sampleRate)
		d.separator.time = newTiming(4_500_000, sampleRate)
		d.separator2.time = newTiming(4_500_000, sampleRate)
		d.pixel.time = newTiming(281_250, sampleRate)
		d.pixel.time2 = newTiming(140_625, sampleRate)

	case ModeRobotC72:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(3_000_000, sampleRate)
		d.porch2.time = newTiming(1_500_000, sampleRate)
		d.separator.time = newTiming(4_500_000, sampleRate)
		d.separator2.time = newTiming(4_500_000, sampleRate)
		d.pixel.time = newTiming(431_250, sampleRate)
		d.pixel.time2 = newTiming(215_625, sampleRate)

	case ModeScottieS1:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(1_500_000, sampleRate)
		d.pixel.time = newTiming(432_000, sampleRate)

	case ModeScottieS2:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(1_500_000, sampleRate)
		d.pixel.time = newTiming(275_200, sampleRate)

	case ModeScottieS3:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(1_500_000, sampleRate)
		d.pixel.time = newTiming(432_000, sampleRate)

	case ModeScottieS4:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(1_500_000, sampleRate)
		d.pixel.time = newTiming(275_200, sampleRate)

	case ModeScottieDX:
		d.sync.time = newTiming(9_000_000, sampleRate)
		d.porch.time = newTiming(1_500_000, sampleRate)
		d.pixel.time = newTiming(1_080_000, sampleRate)

	case ModeMartinM1:
		d.sync.time = newTiming(4_862_000, sampleRate)
		d.porch.time = newTiming(572_000, sampleRate)
		d.pixel.time = newTiming(457_600, sampleRate)

	case ModeMartinM2:
		d.sync.time = newTiming(4_862_000, sampleRate)
		d.porch.time = newTiming(572_000, sampleRate)
		d.pixel.time = newTiming(228_800, sampleRate)

	case ModeMartinM3:
		d.sync.time = newTiming(4_862_000, sampleRate)
		d.porch.time = newTiming(572_000, sampleRate)
		d.pixel.time = newTiming(457_600, sampleRate)

	case ModeMartinM4:
		d.sync.time = newTiming(4_862_000, sampleRate)
		d.porch.time = newTiming(572_000, sampleRate)
		d.pixel.time = newTiming(228_800, sampleRate)

	case ModePD50:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(286_000, sampleRate)

	case ModePD90:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(532_000, sampleRate)

	case ModePD120:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(190_000, sampleRate)

	case ModePD160:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(382_000, sampleRate)

	case ModePD180:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(286_000, sampleRate)

	case ModePD240:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(382_000, sampleRate)

	case ModePD290:
		d.sync.time = newTiming(20_000_000, sampleRate)
		d.porch.time = newTiming(2_080_000, sampleRate)
		d.pixel.time = newTiming(286_000, sampleRate)

	default:
		return ModeDescriptor{}, ErrBadMode
	}

	// Pixel value -> phase-delta lookup table, computed with 64-bit
	// arithmetic to avoid truncation before the final cast, matching
	// libsstv's sstv_get_mode_descriptor pixel table computation exactly.
	for i := 0; i < 256; i++ {
		freqT255 := uint64(d.pixel.lowFreq.hz)*255 + uint64(d.pixel.bandwidth.hz)*uint64(i)
		dphase := (freqT255 << 32) / (uint64(sampleRate) * 255)
		d.pixel.valPhaseDelta[i] = uint32(dphase)
	}

	return d, nil
}
