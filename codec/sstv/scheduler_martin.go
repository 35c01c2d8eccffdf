/*
NAME
  scheduler_martin.go

DESCRIPTION
  scheduler_martin.go implements the Martin family's scan pattern: a sync
  pulse followed by G, B and R channel scans, each preceded by a short
  porch tone, with a further trailing porch after the red scan closing
  out the line before the next sync.

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

// Martin scan phases, tracked in scanCursor.phase across the shared
// statePorch separator state.
const (
	martinPhaseG = iota
	martinPhaseB
	martinPhaseR
)

// advanceMartin implements the familyMartin scan pattern.
func advanceMartin(e *Encoder) error {
	w, h := e.img.Width, e.img.Height

	switch e.state {
	case stateVisStop:
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.scan.phase = martinPhaseG
		e.state = stateSync
		return nil

	case stateSync:
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorch
		return nil

	case statePorch:
		e.scan.col = 0
		switch e.scan.phase {
		case martinPhaseG:
			e.programPixel(e.px(e.scan.line, 0, chanG), e.desc.pixel.time)
			e.state = stateGScan
		case martinPhaseB:
			e.programPixel(e.px(e.scan.line, 0, chanB), e.desc.pixel.time)
			e.state = stateBScan
		default:
			e.programPixel(e.px(e.scan.line, 0, chanR), e.desc.pixel.time)
			e.state = stateRScan
		}
		return nil

	case stateGScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanG), e.desc.pixel.time)
			return nil
		}
		e.scan.phase = martinPhaseB
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorch
		return nil

	case stateBScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanB), e.desc.pixel.time)
			return nil
		}
		e.scan.phase = martinPhaseR
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorch
		return nil

	case stateRScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanR), e.desc.pixel.time)
			return nil
		}
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorch2
		return nil

	case statePorch2:
		e.scan.line++
		if e.scan.line >= h {
			e.state = stateEnd
			return nil
		}
		e.scan.phase = martinPhaseG
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	default:
		return ErrInternalError
	}
}
