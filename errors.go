package painter

import "errors"

// Sentinel errors returned by painter operations.
// Operations wrap these with context; test with errors.Is.
var (
	// ErrInvalidArgument is returned for a wrong argument count, a negative
	// extent or an unknown mode string. It aborts only the current call.
	ErrInvalidArgument = errors.New("painter: invalid argument")

	// ErrDecode is returned when an image or font source cannot be parsed.
	// The resource is never created.
	ErrDecode = errors.New("painter: decode failed")

	// ErrAllocation is returned when a pixel buffer cannot be obtained.
	ErrAllocation = errors.New("painter: allocation failed")

	// ErrNoFontSet is returned when text is measured or drawn without a font.
	ErrNoFontSet = errors.New("painter: no font set")
)
