package fadt

import (
	"math"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// extendedFieldsRevision is the first FADT revision whose X_ fields may be trusted.
const extendedFieldsRevision = 2

// ResolveAddress picks between the legacy 32-bit and extended 64-bit copy of
// the same address. The extended value wins only when the table revision is
// above 1 and the extended value is non-zero.
func ResolveAddress(revision uint8, legacy uint32, extended uint64) uint64 {
	if revision >= extendedFieldsRevision && extended != 0 {
		return extended
	}
	return uint64(legacy)
}

// ResolveRegister applies the ResolveAddress rule to a register block that
// is published both as a legacy I/O port with a byte length and as an
// extended Generic Address Structure. A legacy block is expressed as a
// SystemIO generic address of blockLength bytes.
func ResolveRegister(revision uint8, legacy uint32, blockLength uint8, extended types.GenericAddress) types.GenericAddress {
	if revision >= extendedFieldsRevision && extended.Address != 0 {
		return extended
	}

	if legacy == 0 {
		return types.GenericAddress{}
	}

	bitWidth := int(blockLength) * 8
	if bitWidth > math.MaxUint8 {
		// GPE blocks may be longer than a GAS can describe
		bitWidth = math.MaxUint8
	}

	return types.GenericAddress{
		Space:    types.AddressSpaceSystemIO,
		BitWidth: uint8(bitWidth),
		Address:  uint64(legacy),
	}
}
