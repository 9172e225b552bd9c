// Package hpet decodes the IA-PC High Precision Event Timer description table.
package hpet

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// ErrTableTooShort is returned when the HPET table is smaller than its fixed layout.
var ErrTableTooShort = errors.New("HPET table too short")

// hpetReader implements the HPETReader interface
type hpetReader struct {
	hpet types.HPET
}

// NewHPETReader validates and decodes the HPET table in data
func NewHPETReader(data []byte) (interfaces.HPETReader, error) {
	header, err := sdt.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HPET header: %w", err)
	}

	if err := sdt.ValidateHeader(types.SignatureHPET, header); err != nil {
		return nil, err
	}

	if header.Length < types.HPETSize || len(data) < types.HPETSize {
		return nil, fmt.Errorf("%w: declared %d bytes, mapped %d, need %d", ErrTableTooShort, header.Length, len(data), types.HPETSize)
	}

	hpet, err := parseHPET(header, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HPET: %w", err)
	}

	return &hpetReader{hpet: hpet}, nil
}

// parseHPET parses raw bytes into an HPET structure
func parseHPET(header types.SDTHeader, data []byte) (types.HPET, error) {
	h := types.HPET{SDTHeader: header}

	h.EventTimerBlockID = binary.LittleEndian.Uint32(data[36:40])

	base, err := sdt.ParseGenericAddress(data[40:52])
	if err != nil {
		return h, err
	}
	h.BaseAddress = base

	h.Number = data[52]
	h.MinimumClockTick = binary.LittleEndian.Uint16(data[53:55])
	h.PageProtection = data[55]

	return h, nil
}

// Header returns the decoded table header
func (r *hpetReader) Header() types.SDTHeader {
	return r.hpet.SDTHeader
}

// Signature returns the table signature
func (r *hpetReader) Signature() types.Signature {
	return r.hpet.Signature
}

// Revision returns the table revision
func (r *hpetReader) Revision() uint8 {
	return r.hpet.Revision
}

// Length returns the declared table length in bytes
func (r *hpetReader) Length() uint32 {
	return r.hpet.Length
}

// HPET returns a copy of the decoded table
func (r *hpetReader) HPET() types.HPET {
	return r.hpet
}

// BaseAddress returns the timer register block address
func (r *hpetReader) BaseAddress() types.GenericAddress {
	return r.hpet.BaseAddress
}
