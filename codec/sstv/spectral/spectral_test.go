/*
NAME
  spectral_test.go

DESCRIPTION
  spectral_test.go tests DominantFreq against synthetic sine waves of known
  frequency.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectral

import (
	"math"
	"testing"
)

func generateSine(freq float64, rate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
	}
	return out
}

func TestDominantFreq(t *testing.T) {
	const rate = 48000
	const n = 4096

	for _, freq := range []float64{1200, 1500, 1900, 2300} {
		samples := generateSine(freq, rate, n)
		got, err := DominantFreq(samples, rate)
		if err != nil {
			t.Fatal(err)
		}
		binWidth := float64(rate) / float64(n)
		if math.Abs(got-freq) > binWidth {
			t.Errorf("DominantFreq(%gHz) = %g, want within %g of %g", freq, got, binWidth, freq)
		}
	}
}

func TestDominantFreqEmptyWindow(t *testing.T) {
	if _, err := DominantFreq(nil, 48000); err != ErrEmptyWindow {
		t.Errorf("got %v, want ErrEmptyWindow", err)
	}
}

func TestInt16ToFloat64Range(t *testing.T) {
	out := Int16ToFloat64([]int16{math.MinInt16, 0, math.MaxInt16})
	if out[1] != 0 {
		t.Errorf("zero sample mapped to %g, want 0", out[1])
	}
	if out[2] != 1 {
		t.Errorf("max sample mapped to %g, want 1", out[2])
	}
}
