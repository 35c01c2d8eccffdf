/*
NAME
  sstv-plot

DESCRIPTION
  sstv-plot is a diagnostic tool that reads a WAV file produced by
  sstv-encode and plots its dominant tone frequency over time, letting a
  developer eyeball whether an encoder change altered a mode's timing or
  frequency plan.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// sstv-plot renders the frequency-over-time profile of an SSTV WAV file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/sstv/codec/sstv/spectral"
)

func main() {
	input := flag.String("input", "", "input WAV file, as produced by sstv-encode")
	output := flag.String("output", "freq.png", "output PNG plot file")
	window := flag.Int("window", 512, "FFT window size, in samples")
	flag.Parse()

	if err := run(*input, *output, *window); err != nil {
		fmt.Fprintln(os.Stderr, "sstv-plot:", err)
		os.Exit(1)
	}
}

func run(input, output string, window int) error {
	if input == "" {
		return fmt.Errorf("-input is required")
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return err
	}

	rate := buf.Format.SampleRate
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	pts, err := frequencyProfile(samples, rate, window)
	if err != nil {
		return err
	}

	return savePlot(pts, output)
}

// frequencyProfile splits samples into non-overlapping windows of the given
// size and returns the dominant frequency of each, paired with its
// window's start time in seconds.
func frequencyProfile(samples []int16, rate, window int) (plotter.XYs, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive")
	}

	var pts plotter.XYs
	for start := 0; start+window <= len(samples); start += window {
		floats := spectral.Int16ToFloat64(samples[start : start+window])
		freq, err := spectral.DominantFreq(floats, rate)
		if err != nil {
			return nil, err
		}
		pts = append(pts, plotter.XY{
			X: float64(start) / float64(rate),
			Y: freq,
		})
	}
	return pts, nil
}

// savePlot renders pts as a line plot, logging the mean frequency as a
// sanity check on the overall tonal balance of the waveform.
func savePlot(pts plotter.XYs, output string) error {
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}
	fmt.Printf("mean frequency: %.1f Hz over %d windows\n", stat.Mean(ys, nil), len(ys))

	p := plot.New()
	p.Title.Text = "SSTV tone frequency over time"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "frequency (Hz)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(10*vg.Inch, 4*vg.Inch, output)
}
