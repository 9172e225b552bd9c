// Package sdt decodes and validates the System Description Table header that
// prefixes every ACPI table, together with the Generic Address Structure.
package sdt

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// ErrTruncated is returned when fewer bytes are available than a structure needs.
var ErrTruncated = errors.New("truncated table data")

// tableHeaderReader implements the TableHeaderReader interface
type tableHeaderReader struct {
	header types.SDTHeader
}

// NewTableHeaderReader decodes the header in data and validates it against expected
func NewTableHeaderReader(data []byte, expected types.Signature) (interfaces.TableHeaderReader, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if err := ValidateHeader(expected, header); err != nil {
		return nil, err
	}

	return &tableHeaderReader{header: header}, nil
}

// ReadSignature returns the 4-byte signature at the start of data
func ReadSignature(data []byte) (types.Signature, error) {
	var sig types.Signature
	if len(data) < len(sig) {
		return sig, fmt.Errorf("%w: need %d bytes for signature, have %d", ErrTruncated, len(sig), len(data))
	}
	copy(sig[:], data[types.SDTSignatureOffset:types.SDTSignatureOffset+4])
	return sig, nil
}

// ParseHeader parses raw bytes into an SDTHeader structure
func ParseHeader(data []byte) (types.SDTHeader, error) {
	var h types.SDTHeader
	if len(data) < types.SDTHeaderSize {
		return h, fmt.Errorf("%w: need %d bytes for table header, have %d", ErrTruncated, types.SDTHeaderSize, len(data))
	}

	copy(h.Signature[:], data[0:4])
	h.Length = binary.LittleEndian.Uint32(data[4:8])
	h.Revision = data[8]
	h.Checksum = data[9]
	copy(h.OEMID[:], data[10:16])
	copy(h.OEMTableID[:], data[16:24])
	h.OEMRevision = binary.LittleEndian.Uint32(data[24:28])
	h.CreatorID = binary.LittleEndian.Uint32(data[28:32])
	h.CreatorRevision = binary.LittleEndian.Uint32(data[32:36])

	return h, nil
}

// Header returns the decoded table header
func (r *tableHeaderReader) Header() types.SDTHeader {
	return r.header
}

// Signature returns the table signature
func (r *tableHeaderReader) Signature() types.Signature {
	return r.header.Signature
}

// Revision returns the table revision
func (r *tableHeaderReader) Revision() uint8 {
	return r.header.Revision
}

// Length returns the declared table length in bytes
func (r *tableHeaderReader) Length() uint32 {
	return r.header.Length
}
