package types

// IA-PC High Precision Event Timer Table (HPET specification 1.0a, section 3.2.4)

// HPETSize is the size of the HPET description table.
const HPETSize = 56

// Byte offsets of the HPET fields, relative to the start of the table.
const (
	HPETEventTimerBlockIDOffset = 36
	HPETBaseAddressOffset       = 40
	HPETNumberOffset            = 52
	HPETMinimumClockTickOffset  = 53
	HPETPageProtectionOffset    = 55
)

// Page protection values of the HPET page protection and OEM attribute byte.
const (
	HPETPageProtectionNone uint8 = 0
	HPETPageProtection4K   uint8 = 1
	HPETPageProtection64K  uint8 = 2
)

// HPET describes the register block of a high precision event timer.
type HPET struct {
	SDTHeader

	// EventTimerBlockID mirrors the general capabilities register of the
	// timer block: vendor ID, counter size, comparator count and revision.
	EventTimerBlockID uint32

	// BaseAddress locates the timer register block.
	BaseAddress GenericAddress

	// Number is the sequence number of this timer block.
	Number uint8

	// MinimumClockTick is the minimum clock tick count the block supports
	// without losing interrupts in periodic mode.
	MinimumClockTick uint16

	// PageProtection holds the page protection in bits 3:0 and OEM
	// attributes in bits 7:4.
	PageProtection uint8
}

// HardwareRevision returns the hardware revision ID of the timer block.
func (h HPET) HardwareRevision() uint8 {
	return uint8(h.EventTimerBlockID & 0xff)
}

// ComparatorCount returns the number of comparators in the timer block.
func (h HPET) ComparatorCount() int {
	return int((h.EventTimerBlockID>>8)&0x1f) + 1
}

// CounterIs64Bit reports whether the main counter is 64 bits wide.
func (h HPET) CounterIs64Bit() bool {
	return h.EventTimerBlockID&(1<<13) != 0
}

// LegacyReplacementCapable reports whether the block supports the legacy
// IRQ replacement route.
func (h HPET) LegacyReplacementCapable() bool {
	return h.EventTimerBlockID&(1<<15) != 0
}

// VendorID returns the PCI vendor ID of the timer block.
func (h HPET) VendorID() uint16 {
	return uint16(h.EventTimerBlockID >> 16)
}

// PageProtectionKind returns the page protection in bits 3:0.
func (h HPET) PageProtectionKind() uint8 {
	return h.PageProtection & 0x0f
}

// OEMAttributes returns the OEM attribute bits 7:4.
func (h HPET) OEMAttributes() uint8 {
	return h.PageProtection >> 4
}
