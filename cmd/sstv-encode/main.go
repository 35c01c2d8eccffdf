/*
NAME
  sstv-encode

DESCRIPTION
  sstv-encode renders a JPEG or PNG image as the audio waveform of an SSTV
  transmission mode, writing the result as a WAV file.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// sstv-encode is a command line tool for converting an image file into an
// SSTV audio waveform.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	xdraw "golang.org/x/image/draw"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/sstv/codec/sstv"
	sstvimage "github.com/ausocean/sstv/codec/sstv/image"
	"github.com/ausocean/utils/logging"
)

// Logging related constants.
const (
	logPath      = "sstv-encode.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

// modeNames maps the command line -mode flag's accepted values to sstv.Mode.
var modeNames = map[string]sstv.Mode{
	"fax480":      sstv.ModeFAX480,
	"robot8r":     sstv.ModeRobotBW8R,
	"robot8g":     sstv.ModeRobotBW8G,
	"robot8b":     sstv.ModeRobotBW8B,
	"robot12r":    sstv.ModeRobotBW12R,
	"robot12g":    sstv.ModeRobotBW12G,
	"robot12b":    sstv.ModeRobotBW12B,
	"robot24r":    sstv.ModeRobotBW24R,
	"robot24g":    sstv.ModeRobotBW24G,
	"robot24b":    sstv.ModeRobotBW24B,
	"robot36r":    sstv.ModeRobotBW36R,
	"robot36g":    sstv.ModeRobotBW36G,
	"robot36b":    sstv.ModeRobotBW36B,
	"robot12c":    sstv.ModeRobotC12,
	"robot24c":    sstv.ModeRobotC24,
	"robot36c":    sstv.ModeRobotC36,
	"robot72c":    sstv.ModeRobotC72,
	"scottie1":    sstv.ModeScottieS1,
	"scottie2":    sstv.ModeScottieS2,
	"scottie3":    sstv.ModeScottieS3,
	"scottie4":    sstv.ModeScottieS4,
	"scottiedx":   sstv.ModeScottieDX,
	"martin1":     sstv.ModeMartinM1,
	"martin2":     sstv.ModeMartinM2,
	"martin3":     sstv.ModeMartinM3,
	"martin4":     sstv.ModeMartinM4,
	"pd50":        sstv.ModePD50,
	"pd90":        sstv.ModePD90,
	"pd120":       sstv.ModePD120,
	"pd160":       sstv.ModePD160,
	"pd180":       sstv.ModePD180,
	"pd240":       sstv.ModePD240,
	"pd290":       sstv.ModePD290,
}

func main() {
	var (
		modeFlag = flag.String("mode", "pd120", "SSTV mode to encode")
		input    = flag.String("input", "", "input image file (JPEG or PNG)")
		output   = flag.String("output", "", "output WAV file")
		rate     = flag.Uint("rate", 48000, "output sample rate, in Hz")
	)
	flag.Parse()

	lj := &lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	l := logging.New(logVerbosity, io.MultiWriter(os.Stderr, lj), logSuppress)

	if err := run(*modeFlag, *input, *output, uint32(*rate), l); err != nil {
		l.Log(logging.Error, "encode failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(modeName, input, output string, rate uint32, l logging.Logger) error {
	mode, ok := modeNames[strings.ToLower(modeName)]
	if !ok {
		return fmt.Errorf("unrecognised mode: %s", modeName)
	}
	if input == "" {
		return fmt.Errorf("-input is required")
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".wav"
	}

	l.Log(logging.Info, "loading image", "path", input)
	src, err := decodeImage(input)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}

	img, err := prepareImage(src, mode)
	if err != nil {
		return fmt.Errorf("preparing image for mode: %w", err)
	}
	defer img.Close()

	enc, err := sstv.NewEncoder(img, mode, rate)
	if err != nil {
		return fmt.Errorf("creating encoder: %w", err)
	}
	defer enc.Close()

	l.Log(logging.Info, "encoding", "mode", modeName, "rate", rate)
	samples, err := encodeAll(enc)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	l.Log(logging.Info, "writing wav", "path", output, "samples", len(samples))
	return writeWAV(output, samples, rate)
}

// decodeImage reads a JPEG or PNG file from path.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	case ".png":
		return png.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported image extension: %s", filepath.Ext(path))
	}
}

// prepareImage resizes src to fit mode's required dimensions, preserving its
// aspect ratio, centred, with any uncovered border left black, and converts
// it to mode's required pixel format.
func prepareImage(src image.Image, mode sstv.Mode) (*sstvimage.Image, error) {
	w, h, format, err := sstv.ImageProps(mode)
	if err != nil {
		return nil, err
	}

	sb := src.Bounds()
	dw, dh := w, h
	if sb.Dx()*h > sb.Dy()*w {
		dh = sb.Dy() * w / sb.Dx()
	} else {
		dw = sb.Dx() * h / sb.Dy()
	}
	x0, y0 := (w-dw)/2, (h-dh)/2

	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(resized, image.Rect(x0, y0, x0+dw, y0+dh), src, sb, draw.Over, nil)

	buf := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			off := (y*w + x) * 3
			buf[off] = byte(r >> 8)
			buf[off+1] = byte(g >> 8)
			buf[off+2] = byte(b >> 8)
		}
	}

	img, err := sstvimage.Pack(w, h, sstvimage.FormatRGB, buf)
	if err != nil {
		return nil, err
	}
	if format != sstvimage.FormatRGB {
		if err := img.Convert(format); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// encodeAll drains enc into a buffer of int16 PCM samples.
func encodeAll(enc *sstv.Encoder) ([]int16, error) {
	const chunkSamples = 4096
	chunk := make([]byte, chunkSamples*2)

	var out []int16
	for {
		sig, err := sstv.PackSignal(sstv.SampleInt16, chunkSamples, chunk)
		if err != nil {
			return nil, err
		}
		status, err := enc.Encode(sig)
		if err != nil {
			return nil, err
		}
		for i := 0; i < sig.Count; i++ {
			out = append(out, int16(chunk[i*2])|int16(chunk[i*2+1])<<8)
		}
		if status == sstv.StatusEncodeEnd {
			return out, nil
		}
	}
}

// writeWAV writes samples as a mono 16-bit PCM WAV file at path.
func writeWAV(path string, samples []int16, rate uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, int(rate), 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{SampleRate: int(rate), NumChannels: 1},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
