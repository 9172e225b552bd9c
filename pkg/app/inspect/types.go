package inspect

import (
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// TableKind selects what is read at the requested address
type TableKind string

const (
	KindHeader TableKind = "header"
	KindFADT   TableKind = "fadt"
	KindHPET   TableKind = "hpet"
)

// Request represents a table inspection request
type Request struct {
	Kind TableKind

	// Address is the physical address of the table, decimal or 0x-prefixed hex
	Address string

	// Parsing policy
	StrictAML       bool
	VerifyChecksums bool
}

// Response represents an inspected table
type Response struct {
	SessionID string       `json:"session_id" yaml:"session_id"`
	Kind      TableKind    `json:"kind" yaml:"kind"`
	Address   Hex          `json:"address" yaml:"address"`
	Header    HeaderReport `json:"header" yaml:"header"`

	FADT *FADTReport            `json:"fadt,omitempty" yaml:"fadt,omitempty"`
	DSDT *DefinitionBlockReport `json:"dsdt,omitempty" yaml:"dsdt,omitempty"`
	HPET *HPETReport            `json:"hpet,omitempty" yaml:"hpet,omitempty"`
}

// Hex is an address rendered as 0x-prefixed hex
type Hex uint64

// String returns the 0x-prefixed hex form
func (h Hex) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

// MarshalText renders the address as hex in JSON and YAML
func (h Hex) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// HeaderReport represents a decoded table header
type HeaderReport struct {
	Signature       string `json:"signature" yaml:"signature"`
	Length          uint32 `json:"length" yaml:"length"`
	Revision        uint8  `json:"revision" yaml:"revision"`
	Checksum        uint8  `json:"checksum" yaml:"checksum"`
	OEMID           string `json:"oem_id" yaml:"oem_id"`
	OEMTableID      string `json:"oem_table_id" yaml:"oem_table_id"`
	OEMRevision     uint32 `json:"oem_revision" yaml:"oem_revision"`
	CreatorID       string `json:"creator_id" yaml:"creator_id"`
	CreatorRevision uint32 `json:"creator_revision" yaml:"creator_revision"`
}

// RegisterReport represents a resolved register block
type RegisterReport struct {
	Name       string `json:"name" yaml:"name"`
	Space      string `json:"space" yaml:"space"`
	BitWidth   uint8  `json:"bit_width" yaml:"bit_width"`
	BitOffset  uint8  `json:"bit_offset" yaml:"bit_offset"`
	AccessSize uint8  `json:"access_size" yaml:"access_size"`
	Address    Hex    `json:"address" yaml:"address"`
}

// FADTReport represents the resolved FADT addresses and platform flags
type FADTReport struct {
	FirmwareControl  Hex              `json:"firmware_control" yaml:"firmware_control"`
	DSDT             Hex              `json:"dsdt" yaml:"dsdt"`
	PreferredProfile string           `json:"preferred_profile" yaml:"preferred_profile"`
	SCIInterrupt     uint16           `json:"sci_interrupt" yaml:"sci_interrupt"`
	Flags            uint32           `json:"flags" yaml:"flags"`
	HardwareReduced  bool             `json:"hardware_reduced" yaml:"hardware_reduced"`
	Registers        []RegisterReport `json:"registers" yaml:"registers"`
}

// DefinitionBlockReport represents a definition block recorded for AML parsing
type DefinitionBlockReport struct {
	Signature    string `json:"signature" yaml:"signature"`
	Revision     uint8  `json:"revision" yaml:"revision"`
	Address      Hex    `json:"address" yaml:"address"`
	OEMTableID   string `json:"oem_table_id" yaml:"oem_table_id"`
	CodeLength   int    `json:"code_length" yaml:"code_length"`
	IntegerWidth int    `json:"integer_width" yaml:"integer_width"`
}

// HPETReport represents a decoded HPET
type HPETReport struct {
	VendorID          string         `json:"vendor_id" yaml:"vendor_id"`
	HardwareRevision  uint8          `json:"hardware_revision" yaml:"hardware_revision"`
	Comparators       int            `json:"comparators" yaml:"comparators"`
	Counter64Bit      bool           `json:"counter_64bit" yaml:"counter_64bit"`
	LegacyReplacement bool           `json:"legacy_replacement" yaml:"legacy_replacement"`
	Number            uint8          `json:"number" yaml:"number"`
	MinimumClockTick  uint16         `json:"minimum_clock_tick" yaml:"minimum_clock_tick"`
	PageProtection    uint8          `json:"page_protection" yaml:"page_protection"`
	BaseAddress       RegisterReport `json:"base_address" yaml:"base_address"`
}

func newHeaderReport(h types.SDTHeader) HeaderReport {
	return HeaderReport{
		Signature:       h.Signature.String(),
		Length:          h.Length,
		Revision:        h.Revision,
		Checksum:        h.Checksum,
		OEMID:           h.OEMIDString(),
		OEMTableID:      h.OEMTableIDString(),
		OEMRevision:     h.OEMRevision,
		CreatorID:       fmt.Sprintf("0x%08x", h.CreatorID),
		CreatorRevision: h.CreatorRevision,
	}
}

func newRegisterReport(name string, g types.GenericAddress) RegisterReport {
	return RegisterReport{
		Name:       name,
		Space:      g.Space.String(),
		BitWidth:   g.BitWidth,
		BitOffset:  g.BitOffset,
		AccessSize: g.AccessSize,
		Address:    Hex(g.Address),
	}
}
