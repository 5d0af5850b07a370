// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
)

// Validation messages, in the order the checks run
const (
	MsgGroupRequired    = "group required"
	MsgWrongAnswerCount = "wrong answer count"
	MsgAnswerOutOfRange = "answers must be between 1 and 10"
)

// ErrNoSummary is returned when no snapshot has been stored yet
var ErrNoSummary = errors.New("no summary available")

// ValidationError rejects a submission before it reaches the store
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a failure reading from or writing to the store
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
