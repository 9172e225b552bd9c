// Package aml receives definition blocks (DSDT and SSDT) handed off by the
// FADT parser. It validates the block at the table level and records it for
// an AML interpreter; byte-code semantics are not interpreted here.
package aml

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/state"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// ErrUnsupportedRole is returned for tags other than DSDT and SSDT.
var ErrUnsupportedRole = errors.New("unsupported definition block role")

// ErrBlockTruncated is returned when the declared block length exceeds the mapping.
var ErrBlockTruncated = errors.New("definition block extends past mapping")

// DefinitionBlockParser implements the AMLTableParser interface
type DefinitionBlockParser struct {
	// VerifyChecksums rejects blocks whose bytes do not sum to zero.
	VerifyChecksums bool
}

var _ interfaces.AMLTableParser = (*DefinitionBlockParser)(nil)

// NewDefinitionBlockParser creates a new DefinitionBlockParser
func NewDefinitionBlockParser(verifyChecksums bool) *DefinitionBlockParser {
	return &DefinitionBlockParser{VerifyChecksums: verifyChecksums}
}

// ParseAMLTable validates the definition block in mapping and records a copy
// of it in st. A DSDT replaces the recorded DSDT; SSDTs accumulate.
func (p *DefinitionBlockParser) ParseAMLTable(st *state.State, _ interfaces.PhysicalMapper, mapping *types.PhysicalMapping, tag types.Signature) error {
	if tag != types.SignatureDSDT && tag != types.SignatureSSDT {
		return fmt.Errorf("%w: %q", ErrUnsupportedRole, tag.String())
	}

	data := mapping.Bytes()
	header, err := sdt.ParseHeader(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s header: %w", tag, err)
	}

	if err := sdt.ValidateHeader(tag, header); err != nil {
		return err
	}

	if int(header.Length) > len(data) {
		return fmt.Errorf("%w: %s declares %d bytes, mapped %d", ErrBlockTruncated, tag, header.Length, len(data))
	}
	block := data[:header.Length]

	if p.VerifyChecksums {
		if err := sdt.VerifyChecksum(block); err != nil {
			return fmt.Errorf("%s: %w", tag, err)
		}
	}

	table := types.AMLTable{
		Signature:       header.Signature,
		Revision:        header.Revision,
		PhysicalAddress: mapping.PhysicalStart,
		OEMTableID:      header.OEMTableIDString(),
		Code:            append([]byte(nil), block[types.SDTHeaderSize:]...),
	}

	if tag == types.SignatureDSDT {
		st.SetDSDT(table)
	} else {
		st.AddSSDT(table)
	}

	return nil
}
