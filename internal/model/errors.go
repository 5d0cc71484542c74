package model

import "errors"

// Common errors used across the application
var (
	// Word list errors
	ErrUnknownLang = errors.New("unknown language")
	ErrNoWords     = errors.New("word list is empty")

	// Input errors
	ErrInputClosed = errors.New("input stream closed")
	ErrInterrupted = errors.New("round interrupted")
)
