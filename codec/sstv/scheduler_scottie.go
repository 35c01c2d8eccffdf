/*
NAME
  scheduler_scottie.go

DESCRIPTION
  scheduler_scottie.go implements the Scottie family's scan pattern: a
  porch before every channel scan, in the order G, B, R, with the line's
  sync pulse positioned between the B and R scans rather than at the
  line's start. The first line has no preceding R scan to hang its sync
  off, so it gets one free standing sync pulse before its leading porch.

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

// RGB channel indices within Image.Buffer.
const (
	chanR = 0
	chanG = 1
	chanB = 2
)

// advanceScottie implements the familyScottie scan pattern:
// SYNC_FIRST -> PORCH_G -> G_SCAN -> PORCH_B -> B_SCAN -> SYNC -> PORCH_R ->
// R_SCAN -> (line++) -> PORCH_G -> ...
func advanceScottie(e *Encoder) error {
	w, h := e.img.Width, e.img.Height

	switch e.state {
	case stateVisStop:
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSyncFirst
		return nil

	case stateSyncFirst:
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorchG
		return nil

	case statePorchG:
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line, 0, chanG), e.desc.pixel.time)
		e.state = stateGScan
		return nil

	case stateGScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanG), e.desc.pixel.time)
			return nil
		}
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorchB
		return nil

	case statePorchB:
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line, 0, chanB), e.desc.pixel.time)
		e.state = stateBScan
		return nil

	case stateBScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanB), e.desc.pixel.time)
			return nil
		}
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	case stateSync:
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorchR
		return nil

	case statePorchR:
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line, 0, chanR), e.desc.pixel.time)
		e.state = stateRScan
		return nil

	case stateRScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanR), e.desc.pixel.time)
			return nil
		}
		e.scan.line++
		if e.scan.line >= h {
			e.state = stateEnd
			return nil
		}
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorchG
		return nil

	default:
		return ErrInternalError
	}
}
