package bmp

import (
	"errors"
	"fmt"
)

// ReadStatus is the outcome of decoding a bitmap stream.
type ReadStatus uint8

const (
	ReadOK ReadStatus = iota
	ReadInvalidSignature
	ReadInvalidBits
	ReadInvalidHeader
	ReadIOError
)

// WriteStatus is the outcome of encoding a bitmap stream.
type WriteStatus uint8

const (
	WriteOK WriteStatus = iota
	WriteIOError
)

func (s ReadStatus) String() string {
	switch s {
	case ReadOK:
		return "OK"
	case ReadInvalidSignature:
		return "Invalid signature"
	case ReadInvalidBits:
		return "Invalid bit count"
	case ReadInvalidHeader:
		return "Invalid header"
	case ReadIOError:
		return "Read IO error"
	default:
		return "Read error"
	}
}

func (s WriteStatus) String() string {
	switch s {
	case WriteOK:
		return "OK"
	case WriteIOError:
		return "Write IO error"
	default:
		return "Write error"
	}
}

// ReadError reports a failed decode. Row is the logical row being read, or
// -1 when the failure happened on the header.
type ReadError struct {
	Status ReadStatus
	Row    int
	Cause  error
}

func (e *ReadError) Error() string {
	msg := e.Status.String()
	if e.Row >= 0 {
		msg = fmt.Sprintf("%s at row %d", msg, e.Row)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// Is matches a ReadStatus target, so errors.Is(err, ReadIOError) works.
func (e *ReadError) Is(target error) bool {
	s, ok := target.(ReadStatus)
	return ok && s == e.Status
}

// WriteError reports a failed encode. Row is the logical row being written,
// or -1 when the failure happened on the header.
type WriteError struct {
	Status WriteStatus
	Row    int
	Cause  error
}

func (e *WriteError) Error() string {
	msg := e.Status.String()
	if e.Row >= 0 {
		msg = fmt.Sprintf("%s at row %d", msg, e.Row)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is matches a WriteStatus target, so errors.Is(err, WriteIOError) works.
func (e *WriteError) Is(target error) bool {
	s, ok := target.(WriteStatus)
	return ok && s == e.Status
}

// The statuses double as errors.Is targets.
func (s ReadStatus) Error() string  { return s.String() }
func (s WriteStatus) Error() string { return s.String() }

// Returns the read status carried by err (ReadOK for nil, ReadIOError for
// errors that carry no status)
func ReadStatusOf(err error) ReadStatus {
	if err == nil {
		return ReadOK
	}
	var re *ReadError
	if errors.As(err, &re) {
		return re.Status
	}
	return ReadIOError
}

// Returns the write status carried by err (WriteOK for nil, WriteIOError for
// errors that carry no status)
func WriteStatusOf(err error) WriteStatus {
	if err == nil {
		return WriteOK
	}
	var we *WriteError
	if errors.As(err, &we) {
		return we.Status
	}
	return WriteIOError
}

func readError(status ReadStatus, row int, cause error) *ReadError {
	return &ReadError{Status: status, Row: row, Cause: cause}
}

func writeError(status WriteStatus, row int, cause error) *WriteError {
	return &WriteError{Status: status, Row: row, Cause: cause}
}
