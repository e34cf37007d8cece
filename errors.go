package wad

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is in callers.
var (
	// ErrTooSmall means the data is shorter than a WAD header.
	ErrTooSmall = errors.New("wad too small for header")
	// ErrCorrupt means the directory, a lump or a field inside a lump lies outside the data.
	ErrCorrupt           = errors.New("wad data out of range")
	ErrLumpNotFound      = errors.New("lump not found")
	ErrMapNotFound       = errors.New("map not found")
	ErrMapSequenceBroken = errors.New("map lump sequence broken")
	// ErrNonASCIIName means a lump name contains a byte outside 7-bit ASCII.
	ErrNonASCIIName = errors.New("lump name is not ASCII")
	// ErrOutputExists means the destination file is already present.
	ErrOutputExists = errors.New("output file already exists")
)

// MapSequenceError reports the first lump of a map group that is not where it should be.
type MapSequenceError struct {
	Map      string // Map marker name as requested
	Expected string // Lump name required at the break
	Found    string // Lump name actually present, empty if the directory ended
}

func (e *MapSequenceError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%v: %s missing from %s (directory ended)", ErrMapSequenceBroken, e.Expected, e.Map)
	}
	return fmt.Sprintf("%v: %s missing from %s (found %s)", ErrMapSequenceBroken, e.Expected, e.Map, e.Found)
}

func (e *MapSequenceError) Unwrap() error {
	return ErrMapSequenceBroken
}
