package atlas

import (
	"errors"
	"fmt"
)

// Validation errors returned by CreateAtlas before any layout work begins.
// Compare with errors.Is.
var (
	// ErrZeroMaxPageCount reports a Descriptor with MaxPageCount < 1.
	ErrZeroMaxPageCount = errors.New("atlas: max page count is zero")

	// ErrZeroEntry reports a Descriptor with an empty entry list.
	ErrZeroEntry = errors.New("atlas: entry list is empty")
)

// InvalidSizeError reports a page size that is not a power of two while the
// requested mip option generates mip levels.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("atlas: size is not a power of two: %d", e.Size)
}

// InvalidBlockSizeError reports a MipWithBlock block size that is not a
// power of two.
type InvalidBlockSizeError struct {
	BlockSize int
}

func (e *InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("atlas: block size is not a power of two: %d", e.BlockSize)
}

// InvalidPaddingError reports a negative padding passed to NoMipWithPadding
// or MipWithPadding. A negative padding would deflate each placed rectangle
// past its own edges and produce texcoords outside the page.
type InvalidPaddingError struct {
	Padding int
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("atlas: padding is negative: %d", e.Padding)
}

// PackingError reports that the placement service could not fit every entry
// within the page budget. The collaborator's failure is carried unmodified
// and reachable through errors.Unwrap. The caller must adjust parameters
// (page count, size, padding) and re-invoke; CreateAtlas never retries.
type PackingError struct {
	Err error
}

func (e *PackingError) Error() string {
	return "atlas: packing failed: " + e.Err.Error()
}

func (e *PackingError) Unwrap() error {
	return e.Err
}
