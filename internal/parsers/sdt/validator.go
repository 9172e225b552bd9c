package sdt

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// ErrInvalidLength is returned when a header declares a length smaller than
// the header itself.
var ErrInvalidLength = errors.New("table length smaller than table header")

// SignatureMismatchError reports a table whose signature differs from the one
// expected for the table kind being parsed.
type SignatureMismatchError struct {
	Expected types.Signature
	Actual   types.Signature
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("table signature mismatch: expected %q, got %q", e.Expected.String(), e.Actual.String())
}

// IsSignatureMismatch reports whether err is, or wraps, a SignatureMismatchError.
func IsSignatureMismatch(err error) bool {
	var mismatch *SignatureMismatchError
	return errors.As(err, &mismatch)
}

// ValidateHeader confirms that header belongs to the table kind identified by
// expected. Nothing else is examined when the signature differs. The checksum
// is left to the mapping layer.
func ValidateHeader(expected types.Signature, header types.SDTHeader) error {
	if header.Signature != expected {
		return &SignatureMismatchError{Expected: expected, Actual: header.Signature}
	}

	if header.Length < types.SDTHeaderSize {
		return fmt.Errorf("%w: %s declares %d bytes", ErrInvalidLength, expected, header.Length)
	}

	return nil
}
