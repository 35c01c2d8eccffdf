/*
NAME
  scheduler_pd.go

DESCRIPTION
  scheduler_pd.go implements the PD family's scan pattern: one sync/porch
  pair covers a pair of lines. Within the pair it transmits the even line's
  Y samples, then R-Y and B-Y chroma averaged vertically across both
  lines at full width, then the odd line's Y samples.

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

// advancePD implements the familyPD scan pattern.
func advancePD(e *Encoder) error {
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
		e.state = stateYEvenScan
		return nil

	case stateYEvenScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, chanY), e.desc.pixel.time)
			return nil
		}
		e.scan.col = 0
		e.programPixel(e.avg2(e.scan.line, e.scan.line+1, 0, chanCr), e.desc.pixel.time)
		e.state = stateRYScan
		return nil

	case stateRYScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.avg2(e.scan.line, e.scan.line+1, e.scan.col, chanCr), e.desc.pixel.time)
			return nil
		}
		e.scan.col = 0
		e.programPixel(e.avg2(e.scan.line, e.scan.line+1, 0, chanCb), e.desc.pixel.time)
		e.state = stateBYScan
		return nil

	case stateBYScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.avg2(e.scan.line, e.scan.line+1, e.scan.col, chanCb), e.desc.pixel.time)
			return nil
		}
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line+1, 0, chanY), e.desc.pixel.time)
		e.state = stateYOddScan
		return nil

	case stateYOddScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line+1, e.scan.col, chanY), e.desc.pixel.time)
			return nil
		}
		e.scan.line += 2
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
