package tabletest

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// FADTOptions describes the FADT fields a test cares about. Everything else
// is zero.
type FADTOptions struct {
	Revision uint8

	// Length is the declared and encoded table length. Zero selects the
	// full ACPI 6.x size.
	Length uint32

	FirmwareCtrl  uint32
	Dsdt          uint32
	XFirmwareCtrl uint64
	XDsdt         uint64

	PM1aEventBlock   uint32
	PM1EventLength   uint8
	XPM1aEventBlock  types.GenericAddress
	PMTimerBlock     uint32
	PMTimerLength    uint8
	XPMTimerBlock    types.GenericAddress
	GPE0Block        uint32
	GPE0Length       uint8
	XGPE0Block       types.GenericAddress
	PM1aControlBlock uint32
	PM1ControlLength uint8

	PreferredProfile types.PowerProfileType
	SCIInterrupt     uint16
	Flags            uint32
	BootArchFlags    uint16
	ResetReg         types.GenericAddress
	ResetValue       uint8
	SleepControlReg  types.GenericAddress
	HypervisorVendor uint64
}

// FADT builds a checksummed FADT image from opts.
func FADT(opts FADTOptions) []byte {
	length := opts.Length
	if length == 0 {
		length = types.FADTSize
	}

	// Encode the full layout and truncate afterwards so short tables keep
	// their leading fields at the right offsets.
	b := make([]byte, types.FADTSize)
	le := binary.LittleEndian

	le.PutUint32(b[types.FADTFirmwareCtrlOffset:], opts.FirmwareCtrl)
	le.PutUint32(b[types.FADTDsdtOffset:], opts.Dsdt)
	b[types.FADTPreferredPMProfileOffset] = uint8(opts.PreferredProfile)
	le.PutUint16(b[types.FADTSCIInterruptOffset:], opts.SCIInterrupt)
	le.PutUint32(b[types.FADTPM1aEventBlockOffset:], opts.PM1aEventBlock)
	le.PutUint32(b[types.FADTPM1aControlBlockOffset:], opts.PM1aControlBlock)
	le.PutUint32(b[types.FADTPMTimerBlockOffset:], opts.PMTimerBlock)
	le.PutUint32(b[types.FADTGPE0BlockOffset:], opts.GPE0Block)
	b[types.FADTPM1EventLengthOffset] = opts.PM1EventLength
	b[types.FADTPM1ControlLengthOffset] = opts.PM1ControlLength
	b[types.FADTPMTimerLengthOffset] = opts.PMTimerLength
	b[types.FADTGPE0LengthOffset] = opts.GPE0Length
	le.PutUint16(b[types.FADTBootArchFlagsOffset:], opts.BootArchFlags)
	le.PutUint32(b[types.FADTFlagsOffset:], opts.Flags)
	PutGenericAddress(b[types.FADTResetRegOffset:], opts.ResetReg)
	b[types.FADTResetValueOffset] = opts.ResetValue
	le.PutUint64(b[types.FADTXFirmwareCtrlOffset:], opts.XFirmwareCtrl)
	le.PutUint64(b[types.FADTXDsdtOffset:], opts.XDsdt)
	PutGenericAddress(b[types.FADTXPM1aEventBlockOffset:], opts.XPM1aEventBlock)
	PutGenericAddress(b[types.FADTXPMTimerBlockOffset:], opts.XPMTimerBlock)
	PutGenericAddress(b[types.FADTXGPE0BlockOffset:], opts.XGPE0Block)
	PutGenericAddress(b[types.FADTSleepControlRegOffset:], opts.SleepControlReg)
	le.PutUint64(b[types.FADTHypervisorVendorIDOffset:], opts.HypervisorVendor)

	if int(length) < len(b) {
		b = b[:length]
	} else if int(length) > len(b) {
		b = append(b, make([]byte, int(length)-len(b))...)
	}

	WriteHeader(b, types.SignatureFADT, length, opts.Revision)
	return Finalize(b)
}
