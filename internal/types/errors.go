package types

import "fmt"

// ErrInvalidRoot is returned when the game directory is missing or is not a directory
type ErrInvalidRoot struct {
	Path   string
	Reason string
}

func (e ErrInvalidRoot) Error() string {
	return fmt.Sprintf("invalid game directory %s: %s", e.Path, e.Reason)
}

// ErrDecode is returned when a disc image header is not valid ASCII
type ErrDecode struct {
	Path   string
	Offset int
	Byte   byte
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("game ID in %s is not ASCII: byte 0x%02x at offset %d", e.Path, e.Byte, e.Offset)
}

// ErrConflict is returned when a rename or move would replace an existing entry
type ErrConflict struct {
	Source string
	Target string
}

func (e ErrConflict) Error() string {
	return fmt.Sprintf("refusing to overwrite %s with %s", e.Target, e.Source)
}

// ErrOperation wraps a failed filesystem mutation
type ErrOperation struct {
	Op     string
	Source string
	Target string
	Err    error
}

func (e ErrOperation) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Source, e.Target, e.Err)
}

func (e ErrOperation) Unwrap() error {
	return e.Err
}
