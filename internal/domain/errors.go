package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrTransfer = errors.New("dataset transfer failed")
	ErrFormat   = errors.New("malformed dataset")
	ErrRange    = errors.New("value out of range")
)

// TransferError reports a network or HTTP failure while fetching the dataset.
type TransferError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransferError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

func (e *TransferError) Is(target error) bool { return target == ErrTransfer }

// FormatError reports a payload that does not match the expected shape.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrFormat, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RangeError reports a record field outside its valid bounds.
type RangeError struct {
	Field string
	Value int
	Index int // position of the record in monthlyVariance
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("record %d: %s %d out of range", e.Index, e.Field, e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// ErrorKind names the taxonomy bucket of err for logs and metrics labels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTransfer):
		return "transfer"
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrRange):
		return "range"
	default:
		return "other"
	}
}
