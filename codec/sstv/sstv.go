/*
NAME
  sstv.go

DESCRIPTION
  sstv.go contains the top level status codes, error type and process-wide
  allocator hooks for the sstv codec.

AUTHOR
  AusOcean SSTV contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sstv provides an encoder that turns a raster image into the audio
// waveform of one of the Slow-Scan Television (SSTV) amateur radio modes.
//
// The package mirrors the status-code and session-handle conventions of the
// libsstv C library it is modelled on: operations return a Status alongside
// an error, and EncodeSuccessful/EncodeEnd are reported as successful
// statuses rather than errors, since they signal normal buffer-full/
// stream-end conditions rather than failures.
package sstv

import "github.com/pkg/errors"

// Status is a numeric outcome code. The values match the libsstv ABI
// exactly, so callers porting code from the C library can rely on the
// numbers, not just the names.
type Status int

// Status codes, as specified by the libsstv ABI.
const (
	StatusOk                   Status = 0
	StatusInternalError        Status = 1
	StatusBadInitializers      Status = 100
	StatusBadUserAlloc         Status = 101
	StatusBadUserDealloc       Status = 102
	StatusBadParameter         Status = 103
	StatusBadMode              Status = 104
	StatusBadFormat            Status = 105
	StatusBadResolution        Status = 106
	StatusBadSampleType        Status = 107
	StatusUnsupportedConversion Status = 108
	StatusAllocFail            Status = 200
	StatusEncodeSuccessful     Status = 1000
	StatusEncodeEnd            Status = 1001
	StatusNoDefaultEncoders    Status = 1100
)

// String returns the symbolic name of a status code.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusInternalError:
		return "InternalError"
	case StatusBadInitializers:
		return "BadInitializers"
	case StatusBadUserAlloc:
		return "BadUserAlloc"
	case StatusBadUserDealloc:
		return "BadUserDealloc"
	case StatusBadParameter:
		return "BadParameter"
	case StatusBadMode:
		return "BadMode"
	case StatusBadFormat:
		return "BadFormat"
	case StatusBadResolution:
		return "BadResolution"
	case StatusBadSampleType:
		return "BadSampleType"
	case StatusUnsupportedConversion:
		return "UnsupportedConversion"
	case StatusAllocFail:
		return "AllocFail"
	case StatusEncodeSuccessful:
		return "EncodeSuccessful"
	case StatusEncodeEnd:
		return "EncodeEnd"
	case StatusNoDefaultEncoders:
		return "NoDefaultEncoders"
	default:
		return "Unknown"
	}
}

// Error wraps a Status with contextual information. It implements error, so
// callers that don't need the ABI code can treat it as an ordinary error,
// while callers that do can recover it with Code.
type Error struct {
	status Status
	msg    string
}

func newError(s Status, msg string) *Error { return &Error{status: s, msg: msg} }

// Code returns the ABI status code carried by the error.
func (e *Error) Code() Status { return e.status }

func (e *Error) Error() string {
	if e.msg == "" {
		return e.status.String()
	}
	return e.status.String() + ": " + e.msg
}

// Sentinel errors for the fixed ABI taxonomy. Wrap these with errors.Wrap
// when additional context is useful; errors.Is still matches the sentinel.
var (
	ErrBadParameter          = newError(StatusBadParameter, "")
	ErrBadMode               = newError(StatusBadMode, "")
	ErrBadFormat             = newError(StatusBadFormat, "")
	ErrBadResolution         = newError(StatusBadResolution, "")
	ErrBadSampleType         = newError(StatusBadSampleType, "")
	ErrBadInitializers       = newError(StatusBadInitializers, "")
	ErrBadUserAlloc          = newError(StatusBadUserAlloc, "")
	ErrBadUserDealloc        = newError(StatusBadUserDealloc, "")
	ErrUnsupportedConversion = newError(StatusUnsupportedConversion, "")
	ErrAllocFail             = newError(StatusAllocFail, "")
	ErrInternalError         = newError(StatusInternalError, "")
	ErrNoDefaultEncoders     = newError(StatusNoDefaultEncoders, "")
)

// wrap returns an error for status s annotated with msg. With a nil cause
// the result is an *Error carrying s; otherwise it is cause wrapped with
// errors.Wrap, using the status text and msg as the message, and is not
// itself an *Error. It mirrors the
// layered errors.Wrap usage in codec/pcm of the av library this is derived
// from.
func wrap(s Status, msg string, cause error) error {
	e := newError(s, msg)
	if cause == nil {
		return e
	}
	return errors.Wrap(cause, e.Error())
}

// AllocFunc allocates n bytes. DeallocFunc releases a buffer previously
// returned by AllocFunc. Both mirror libsstv's sstv_malloc_t/sstv_free_t
// hooks for ABI parity with callers porting code from the C library; pure Go
// callers will almost always leave Init uncalled and let the garbage
// collector do the work.
type AllocFunc func(n int) []byte
type DeallocFunc func([]byte)

var (
	userAlloc   AllocFunc
	userDealloc DeallocFunc
)

// Init installs process-wide allocator hooks. Both must be nil or both must
// be non-nil, else ErrBadInitializers is returned. Init must be called, if
// at all, before any session (encoder or decoder) is created, and the hooks
// must not change while any session exists.
func Init(alloc AllocFunc, dealloc DeallocFunc) error {
	if (alloc == nil) != (dealloc == nil) {
		return ErrBadInitializers
	}
	userAlloc = alloc
	userDealloc = dealloc
	return nil
}
