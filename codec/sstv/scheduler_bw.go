/*
NAME
  scheduler_bw.go

DESCRIPTION
  scheduler_bw.go implements the monochrome scan pattern shared by FAX480
  and every Robot BW mode: one sync pulse per line followed directly by a
  single full-bandwidth luminance scan.

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

// advanceMono implements the familyMono scan pattern: per line, sync, then
// one Y sample per column. Mono modes carry no porch segment.
func advanceMono(e *Encoder) error {
	w, h := e.img.Width, e.img.Height

	switch e.state {
	case stateVisStop:
		e.program(e.desc.sync.freq, e.desc.sync.time)
		e.state = stateSync
		return nil

	case stateSync:
		e.scan.col = 0
		e.programPixel(e.px(e.scan.line, 0, 0), e.desc.pixel.time)
		e.state = stateYScan
		return nil

	case stateYScan:
		e.scan.col++
		if e.scan.col < w {
			e.programPixel(e.px(e.scan.line, e.scan.col, 0), e.desc.pixel.time)
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
