package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrSessionNotPlaying = errors.New("session is not accepting scores")
	ErrStepNotActive     = errors.New("step is not the active step")
	ErrDuplicateScore    = errors.New("step already scored")
	ErrSessionComplete   = errors.New("session is complete")
	ErrSessionAbandoned  = errors.New("session was abandoned")
	ErrAlreadyStarted    = errors.New("session already started")
	ErrSessionActive     = errors.New("session is still running")
)
