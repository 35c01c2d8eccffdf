/*
NAME
  scheduler_robot.go

DESCRIPTION
  scheduler_robot.go implements the Robot colour families' scan patterns.
  Both average chroma vertically across a pair of adjacent lines at full
  width; the "half" family transmits one chroma channel per line
  (alternating R-Y/B-Y by line parity, each framed by its own separator
  tone), while the "full" family transmits both chroma channels on every
  line, each framed by its own separator and porch.

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

// YCbCr channel indices within Image.Buffer.
const (
	chanY  = 0
	chanCb = 1 // proxy for B-Y
	chanCr = 2 // proxy for R-Y
)

// chromaNeighbor returns the adjacent line averaged with line to approximate
// its chroma sample, preferring line+1 and falling back to line-1 at the
// last line.
func chromaNeighbor(line, h int) int {
	if line+1 < h {
		return line + 1
	}
	return line - 1
}

// advanceRobotHalf implements the familyRobotHalf scan pattern: sync,
// porch, Y scan, then a single chroma scan (R-Y on even lines framed by
// separator, B-Y on odd lines framed by separator2) averaged vertically
// across the line and its neighbour, at full width.
func advanceRobotHalf(e *Encoder) error {
	w, h := e.img.Width, e.img.Height

	switch e.state {
	case stateVisStop:
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	case stateSync:
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorch
		return nil

	case statePorch:
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line, 0, chanY), e.desc.pixel.time)
		e.state = stateYScan
		return nil

	case stateYScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanY), e.desc.pixel.time)
			return nil
		}
		if e.scan.line%2 == 0 {
			e.program(e.desc.separator.freq, e.desc.separator.time)
			e.scan.phase = 0 // R-Y
		} else {
			e.program(e.desc.separator2.freq, e.desc.separator2.time)
			e.scan.phase = 1 // B-Y
		}
		e.state = stateSeparator
		return nil

	case stateSeparator:
		e.program(e.desc.porch2.freq, e.desc.porch2.time)
		e.state = statePorch2
		return nil

	case statePorch2:
		ch := chanCr
		if e.scan.phase == 1 {
			ch = chanCb
		}
		neighbor := chromaNeighbor(e.scan.line, h)
		e.scan.col = 0
		e.programPixel(e.avg2(e.scan.line, neighbor, 0, ch), e.desc.pixel.time2)
		if ch == chanCr {
			e.state = stateRYScan
		} else {
			e.state = stateBYScan
		}
		return nil

	case stateRYScan, stateBYScan:
		ch := chanCr
		if e.state == stateBYScan {
			ch = chanCb
		}
		neighbor := chromaNeighbor(e.scan.line, h)
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.avg2(e.scan.line, neighbor, e.scan.col, ch), e.desc.pixel.time2)
			return nil
		}
		e.scan.line++
		if e.scan.line >= h {
			e.state = stateEnd
			return nil
		}
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	default:
		return ErrInternalError
	}
}

// advanceRobotFull implements the familyRobotFull scan pattern: sync,
// porch, Y scan, then R-Y framed by its own separator and porch, then B-Y
// framed by its own separator and porch, both scans reading a single
// vertically-averaged chroma sample per column at full width.
func advanceRobotFull(e *Encoder) error {
	w, h := e.img.Width, e.img.Height

	switch e.state {
	case stateVisStop:
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	case stateSync:
		e.program(e.desc.porch.freq, e.desc.porch.time)
		e.state = statePorch
		return nil

	case statePorch:
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line, 0, chanY), e.desc.pixel.time)
		e.state = stateYScan
		return nil

	case stateYScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanY), e.desc.pixel.time)
			return nil
		}
		e.program(e.desc.separator.freq, e.desc.separator.time)
		e.scan.phase = 0 // R-Y
		e.state = stateSeparator
		return nil

	case stateSeparator:
		e.program(e.desc.porch2.freq, e.desc.porch2.time)
		e.state = statePorch2
		return nil

	case statePorch2:
		neighbor := chromaNeighbor(e.scan.line, h)
		e.scan.col = 0
		if e.scan.phase == 0 {
			e.programPixel(e.avg2(e.scan.line, neighbor, 0, chanCr), e.desc.pixel.time2)
			e.state = stateRYScan
		} else {
			e.programPixel(e.avg2(e.scan.line, neighbor, 0, chanCb), e.desc.pixel.time2)
			e.state = stateBYScan
		}
		return nil

	case stateRYScan:
		neighbor := chromaNeighbor(e.scan.line, h)
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.avg2(e.scan.line, neighbor, e.scan.col, chanCr), e.desc.pixel.time2)
			return nil
		}
		e.program(e.desc.separator2.freq, e.desc.separator2.time)
		e.scan.phase = 1 // B-Y
		e.state = stateSeparator2
		return nil

	case stateSeparator2:
		e.program(e.desc.porch2.freq, e.desc.porch2.time)
		e.state = statePorch2
		return nil

	case stateBYScan:
		neighbor := chromaNeighbor(e.scan.line, h)
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.avg2(e.scan.line, neighbor, e.scan.col, chanCb), e.desc.pixel.time2)
			return nil
		}
		e.scan.line++
		if e.scan.line >= h {
			e.state = stateEnd
			return nil
		}
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	default:
		return ErrInternalError
	}
}
