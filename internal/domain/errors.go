package domain

import "errors"

var (
	// ErrSourceUnreadable is returned when a source cannot be opened or decoded.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrEmptySource is returned when a readable source holds no deals.
	ErrEmptySource = errors.New("source contains no deals")
	// ErrInvalidSelection is returned for a malformed board selection.
	ErrInvalidSelection = errors.New("invalid board selection")
)
