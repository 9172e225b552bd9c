// Package fadt decodes the Fixed ACPI Description Table and resolves the
// register and table addresses it publishes.
package fadt

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// ErrTableTooShort is returned when a FADT is too short to carry the DSDT pointer.
var ErrTableTooShort = errors.New("FADT too short")

// fadtReader implements the FADTReader interface
type fadtReader struct {
	fadt types.FADT
}

// NewFADTReader validates and decodes the FADT in data. Fields that lie past
// the declared table length, or past the end of data, decode as zero.
func NewFADTReader(data []byte) (interfaces.FADTReader, error) {
	header, err := sdt.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FADT header: %w", err)
	}

	if err := sdt.ValidateHeader(types.SignatureFADT, header); err != nil {
		return nil, err
	}

	if header.Length < types.FADTMinSize || len(data) < types.FADTMinSize {
		return nil, fmt.Errorf("%w: declared %d bytes, mapped %d, need %d", ErrTableTooShort, header.Length, len(data), types.FADTMinSize)
	}

	fadt, err := parseFADT(header, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FADT: %w", err)
	}

	return &fadtReader{fadt: fadt}, nil
}

// parseFADT parses raw bytes into a FADT structure
func parseFADT(header types.SDTHeader, data []byte) (types.FADT, error) {
	limit := len(data)
	if int(header.Length) < limit {
		limit = int(header.Length)
	}
	if limit > types.FADTSize {
		limit = types.FADTSize
	}

	// Work on a zero-filled copy of the full layout so older, shorter
	// revisions read as zero past their end.
	buf := make([]byte, types.FADTSize)
	copy(buf, data[:limit])

	le := binary.LittleEndian
	f := types.FADT{SDTHeader: header}

	f.FirmwareCtrl = le.Uint32(buf[36:40])
	f.Dsdt = le.Uint32(buf[40:44])
	f.PreferredPowerManagementProfile = types.PowerProfileType(buf[45])
	f.SCIInterrupt = le.Uint16(buf[46:48])
	f.SMICommandPort = le.Uint32(buf[48:52])
	f.AcpiEnable = buf[52]
	f.AcpiDisable = buf[53]
	f.S4BIOSReq = buf[54]
	f.PStateControl = buf[55]

	// Legacy register blocks
	f.PM1aEventBlock = le.Uint32(buf[56:60])
	f.PM1bEventBlock = le.Uint32(buf[60:64])
	f.PM1aControlBlock = le.Uint32(buf[64:68])
	f.PM1bControlBlock = le.Uint32(buf[68:72])
	f.PM2ControlBlock = le.Uint32(buf[72:76])
	f.PMTimerBlock = le.Uint32(buf[76:80])
	f.GPE0Block = le.Uint32(buf[80:84])
	f.GPE1Block = le.Uint32(buf[84:88])
	f.PM1EventLength = buf[88]
	f.PM1ControlLength = buf[89]
	f.PM2ControlLength = buf[90]
	f.PMTimerLength = buf[91]
	f.GPE0Length = buf[92]
	f.GPE1Length = buf[93]
	f.GPE1Base = buf[94]
	f.CStateControl = buf[95]

	f.WorstC2Latency = le.Uint16(buf[96:98])
	f.WorstC3Latency = le.Uint16(buf[98:100])
	f.FlushSize = le.Uint16(buf[100:102])
	f.FlushStride = le.Uint16(buf[102:104])
	f.DutyOffset = buf[104]
	f.DutyWidth = buf[105]
	f.DayAlarm = buf[106]
	f.MonthAlarm = buf[107]
	f.Century = buf[108]
	f.BootArchitectureFlags = le.Uint16(buf[109:111])
	f.Flags = le.Uint32(buf[112:116])

	var err error
	if f.ResetReg, err = sdt.ParseGenericAddress(buf[116:128]); err != nil {
		return f, err
	}
	f.ResetValue = buf[128]
	f.ARMBootArchitectureFlags = le.Uint16(buf[129:131])
	f.MinorVersion = buf[131]

	// 64-bit extensions
	f.Ext.FirmwareControl = le.Uint64(buf[132:140])
	f.Ext.Dsdt = le.Uint64(buf[140:148])

	blocks := []struct {
		dst    *types.GenericAddress
		offset int
	}{
		{&f.Ext.PM1aEventBlock, types.FADTXPM1aEventBlockOffset},
		{&f.Ext.PM1bEventBlock, types.FADTXPM1bEventBlockOffset},
		{&f.Ext.PM1aControlBlock, types.FADTXPM1aControlBlockOffset},
		{&f.Ext.PM1bControlBlock, types.FADTXPM1bControlBlockOffset},
		{&f.Ext.PM2ControlBlock, types.FADTXPM2ControlBlockOffset},
		{&f.Ext.PMTimerBlock, types.FADTXPMTimerBlockOffset},
		{&f.Ext.GPE0Block, types.FADTXGPE0BlockOffset},
		{&f.Ext.GPE1Block, types.FADTXGPE1BlockOffset},
		{&f.SleepControlReg, types.FADTSleepControlRegOffset},
		{&f.SleepStatusReg, types.FADTSleepStatusRegOffset},
	}
	for _, blk := range blocks {
		if *blk.dst, err = sdt.ParseGenericAddress(buf[blk.offset : blk.offset+types.GenericAddressSize]); err != nil {
			return f, err
		}
	}

	f.HypervisorVendorID = le.Uint64(buf[268:276])

	return f, nil
}

// Header returns the decoded table header
func (r *fadtReader) Header() types.SDTHeader {
	return r.fadt.SDTHeader
}

// Signature returns the table signature
func (r *fadtReader) Signature() types.Signature {
	return r.fadt.Signature
}

// Revision returns the table revision
func (r *fadtReader) Revision() uint8 {
	return r.fadt.Revision
}

// Length returns the declared table length in bytes
func (r *fadtReader) Length() uint32 {
	return r.fadt.Length
}

// FADT returns a copy of the decoded table
func (r *fadtReader) FADT() types.FADT {
	return r.fadt
}

// FirmwareControlAddress returns the resolved FACS address
func (r *fadtReader) FirmwareControlAddress() types.PhysicalAddress {
	return types.PhysicalAddress(ResolveAddress(r.fadt.Revision, r.fadt.FirmwareCtrl, r.fadt.Ext.FirmwareControl))
}

// DSDTAddress returns the resolved DSDT address
func (r *fadtReader) DSDTAddress() types.PhysicalAddress {
	return types.PhysicalAddress(ResolveAddress(r.fadt.Revision, r.fadt.Dsdt, r.fadt.Ext.Dsdt))
}

// PM1aEventBlock returns the resolved PM1a event register block
func (r *fadtReader) PM1aEventBlock() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.PM1aEventBlock, r.fadt.PM1EventLength, r.fadt.Ext.PM1aEventBlock)
}

// PM1bEventBlock returns the resolved PM1b event register block
func (r *fadtReader) PM1bEventBlock() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.PM1bEventBlock, r.fadt.PM1EventLength, r.fadt.Ext.PM1bEventBlock)
}

// PM1aControlBlock returns the resolved PM1a control register block
func (r *fadtReader) PM1aControlBlock() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.PM1aControlBlock, r.fadt.PM1ControlLength, r.fadt.Ext.PM1aControlBlock)
}

// PM1bControlBlock returns the resolved PM1b control register block
func (r *fadtReader) PM1bControlBlock() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.PM1bControlBlock, r.fadt.PM1ControlLength, r.fadt.Ext.PM1bControlBlock)
}

// PM2ControlBlock returns the resolved PM2 control register block
func (r *fadtReader) PM2ControlBlock() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.PM2ControlBlock, r.fadt.PM2ControlLength, r.fadt.Ext.PM2ControlBlock)
}

// PMTimerBlock returns the resolved power management timer block
func (r *fadtReader) PMTimerBlock() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.PMTimerBlock, r.fadt.PMTimerLength, r.fadt.Ext.PMTimerBlock)
}

// GPE0Block returns the resolved general purpose event 0 block
func (r *fadtReader) GPE0Block() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.GPE0Block, r.fadt.GPE0Length, r.fadt.Ext.GPE0Block)
}

// GPE1Block returns the resolved general purpose event 1 block
func (r *fadtReader) GPE1Block() types.GenericAddress {
	return ResolveRegister(r.fadt.Revision, r.fadt.GPE1Block, r.fadt.GPE1Length, r.fadt.Ext.GPE1Block)
}

// NewFADTReaderFromTable wraps an already decoded table, such as the copy
// recorded in a State
func NewFADTReaderFromTable(table types.FADT) interfaces.FADTReader {
	return &fadtReader{fadt: table}
}
