/*
NAME
  scheduler.go

DESCRIPTION
  scheduler.go contains the segment scheduler's common header: every mode
  transmits the same leader/break/VIS preamble before handing off to its
  family-specific scan pattern in scheduler_*.go.

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

// scanFuncFor returns the per-family scan continuation, invoked once the
// common header (leader/break/VIS) has finished.
func scanFuncFor(f modeFamily) func(*Encoder) error {
	switch f {
	case familyMono:
		return advanceMono
	case familyRobotHalf:
		return advanceRobotHalf
	case familyRobotFull:
		return advanceRobotFull
	case familyScottie:
		return advanceScottie
	case familyMartin:
		return advanceMartin
	case familyPD:
		return advancePD
	default:
		return nil
	}
}

// advance moves the encoder to its next scheduler state, programming the
// tone generator for the segment being entered. It is called whenever the
// outstanding micro-sample countdown has dropped below one full sample.
func (e *Encoder) advance() error {
	switch e.state {
	case stateStart:
		e.program(e.desc.leaderTone.freq, e.desc.leaderTone.time)
		e.state = stateLeader1
		return nil

	case stateLeader1:
		e.program(e.desc.breakTone.freq, e.desc.breakTone.time)
		e.state = stateBreak
		return nil

	case stateBreak:
		e.program(e.desc.leaderTone.freq, e.desc.leaderTone.time)
		e.state = stateLeader2
		return nil

	case stateLeader2:
		visByte, err := VISCode(e.mode)
		if err != nil {
			return err
		}
		e.vis.visp = visByte
		e.vis.curBit = 0
		e.program(e.desc.vis.sepFreq, e.desc.vis.time)
		e.state = stateVisStart
		return nil

	case stateVisStart:
		e.programVISBit()
		e.state = stateVisBit
		return nil

	case stateVisBit:
		e.vis.curBit++
		if e.vis.curBit < 8 {
			e.programVISBit()
			return nil
		}
		e.program(e.desc.vis.sepFreq, e.desc.vis.time)
		e.state = stateVisStop
		return nil

	case stateVisStop:
		e.scan = scanCursor{}
		return e.scanAdvance(e)

	default:
		return e.scanAdvance(e)
	}
}

// programVISBit programs the tone for VIS data bit e.vis.curBit (bit 0 is
// the byte's least-significant bit, transmitted first): a 1 bit is the
// "high" VIS frequency (1100Hz) and a 0 bit is the "low" VIS frequency
// (1300Hz).
func (e *Encoder) programVISBit() {
	bit := (e.vis.visp >> uint(e.vis.curBit)) & 1
	freq := e.desc.vis.low
	if bit == 1 {
		freq = e.desc.vis.high
	}
	e.program(freq, e.desc.vis.time)
}
