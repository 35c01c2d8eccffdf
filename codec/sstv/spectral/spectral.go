/*
NAME
  spectral.go

DESCRIPTION
  spectral.go contains FFT-based helpers for verifying an encoded SSTV
  waveform's instantaneous tone frequency, used by codec/sstv's tests and
  by the sstv-plot diagnostic tool.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package spectral provides frequency-domain analysis of PCM sample
// windows, used to confirm that an SSTV encoder segment carries the tone
// its descriptor specifies.
package spectral

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/pkg/errors"
)

// ErrEmptyWindow is returned when a zero-length sample window is given to
// DominantFreq.
var ErrEmptyWindow = errors.New("spectral: empty window")

// DominantFreq returns the frequency, in Hz, of the largest-magnitude bin
// in samples' real FFT, restricted to the bins below the Nyquist rate.
// samples must be normalised to [-1, 1].
func DominantFreq(samples []float64, sampleRate int) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyWindow
	}

	spectrum := fft.FFTReal(samples)
	n := len(spectrum)

	best, bestMag := 0, -1.0
	for i := 1; i < n/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		if mag > bestMag {
			bestMag, best = mag, i
		}
	}

	return float64(best) * float64(sampleRate) / float64(n), nil
}

// Int16ToFloat64 converts little-endian-decoded int16 PCM samples to the
// [-1, 1] range DominantFreq expects.
func Int16ToFloat64(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) / math.MaxInt16
	}
	return out
}
