// File: internal/interfaces/acpi.go
package interfaces

import (
	"github.com/deploymenttheory/go-acpi/internal/state"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// PhysicalMapper makes firmware-owned physical memory accessible to the table
// parsers. Every mapping returned by MapPhysicalRegion must be released with
// UnmapPhysicalRegion exactly once.
type PhysicalMapper interface {
	// MapPhysicalRegion maps length bytes starting at address
	MapPhysicalRegion(address types.PhysicalAddress, length uint32) (*types.PhysicalMapping, error)

	// UnmapPhysicalRegion releases a mapping obtained from MapPhysicalRegion
	UnmapPhysicalRegion(mapping *types.PhysicalMapping) error

	// PeekHeader reads the table header at address without mapping the whole table
	PeekHeader(address types.PhysicalAddress) (types.SDTHeader, error)
}

// AMLTableParser consumes definition blocks handed off by the FADT parser
type AMLTableParser interface {
	// ParseAMLTable parses the definition block in mapping. tag identifies the
	// role of the block (DSDT or SSDT). The mapping is only valid for the
	// duration of the call.
	ParseAMLTable(st *state.State, mapper PhysicalMapper, mapping *types.PhysicalMapping, tag types.Signature) error
}

// TableHeaderReader provides methods for reading the common table header
type TableHeaderReader interface {
	// Header returns the decoded table header
	Header() types.SDTHeader

	// Signature returns the table signature
	Signature() types.Signature

	// Revision returns the table revision
	Revision() uint8

	// Length returns the declared table length in bytes
	Length() uint32
}

// FADTReader provides methods for reading the Fixed ACPI Description Table.
// Each address accessor applies the legacy/extended resolution rule to its
// own field pair.
type FADTReader interface {
	TableHeaderReader

	// FADT returns a copy of the decoded table
	FADT() types.FADT

	// FirmwareControlAddress returns the resolved FACS address
	FirmwareControlAddress() types.PhysicalAddress

	// DSDTAddress returns the resolved DSDT address
	DSDTAddress() types.PhysicalAddress

	// PM1aEventBlock returns the resolved PM1a event register block
	PM1aEventBlock() types.GenericAddress

	// PM1bEventBlock returns the resolved PM1b event register block
	PM1bEventBlock() types.GenericAddress

	// PM1aControlBlock returns the resolved PM1a control register block
	PM1aControlBlock() types.GenericAddress

	// PM1bControlBlock returns the resolved PM1b control register block
	PM1bControlBlock() types.GenericAddress

	// PM2ControlBlock returns the resolved PM2 control register block
	PM2ControlBlock() types.GenericAddress

	// PMTimerBlock returns the resolved power management timer block
	PMTimerBlock() types.GenericAddress

	// GPE0Block returns the resolved general purpose event 0 block
	GPE0Block() types.GenericAddress

	// GPE1Block returns the resolved general purpose event 1 block
	GPE1Block() types.GenericAddress
}

// HPETReader provides methods for reading the HPET description table
type HPETReader interface {
	TableHeaderReader

	// HPET returns a copy of the decoded table
	HPET() types.HPET

	// BaseAddress returns the timer register block address
	BaseAddress() types.GenericAddress
}
