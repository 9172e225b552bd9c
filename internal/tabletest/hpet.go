package tabletest

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// HPETOptions describes the HPET fields a test cares about.
type HPETOptions struct {
	EventTimerBlockID uint32
	BaseAddress       types.GenericAddress
	Number            uint8
	MinimumClockTick  uint16
	PageProtection    uint8
}

// HPET builds a checksummed HPET image from opts.
func HPET(opts HPETOptions) []byte {
	b := make([]byte, types.HPETSize)
	WriteHeader(b, types.SignatureHPET, types.HPETSize, 1)

	binary.LittleEndian.PutUint32(b[types.HPETEventTimerBlockIDOffset:], opts.EventTimerBlockID)
	PutGenericAddress(b[types.HPETBaseAddressOffset:], opts.BaseAddress)
	b[types.HPETNumberOffset] = opts.Number
	binary.LittleEndian.PutUint16(b[types.HPETMinimumClockTickOffset:], opts.MinimumClockTick)
	b[types.HPETPageProtectionOffset] = opts.PageProtection

	return Finalize(b)
}
