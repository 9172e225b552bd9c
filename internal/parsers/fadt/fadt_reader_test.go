package fadt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/tabletest"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

func TestFADTReader_DSDTAddress(t *testing.T) {
	tests := []struct {
		name     string
		revision uint8
		dsdt     uint32
		xdsdt    uint64
		want     types.PhysicalAddress
	}{
		{name: "Revision 1", revision: 1, dsdt: 0x1000, xdsdt: 0x2000, want: 0x1000},
		{name: "Revision 2 without extended", revision: 2, dsdt: 0x1000, xdsdt: 0, want: 0x1000},
		{name: "Revision 2 with extended", revision: 2, dsdt: 0x1000, xdsdt: 0x2000, want: 0x2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tabletest.FADT(tabletest.FADTOptions{Revision: tt.revision, Dsdt: tt.dsdt, XDsdt: tt.xdsdt})

			reader, err := NewFADTReader(data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reader.DSDTAddress())
		})
	}
}

func TestFADTReader_Fields(t *testing.T) {
	resetReg := types.GenericAddress{Space: types.AddressSpaceSystemIO, BitWidth: 8, AccessSize: types.AccessSizeByte, Address: 0xcf9}
	sleepCtl := types.GenericAddress{Space: types.AddressSpaceSystemMemory, BitWidth: 8, Address: 0xfe000100}
	xTimer := types.GenericAddress{Space: types.AddressSpaceSystemIO, BitWidth: 32, AccessSize: types.AccessSizeDword, Address: 0x608}

	data := tabletest.FADT(tabletest.FADTOptions{
		Revision:         6,
		FirmwareCtrl:     0x7fe0000,
		XFirmwareCtrl:    0x1_7fe0_0000,
		Dsdt:             0x7fd0000,
		PM1aEventBlock:   0x600,
		PM1EventLength:   4,
		PMTimerBlock:     0x608,
		PMTimerLength:    4,
		XPMTimerBlock:    xTimer,
		PreferredProfile: types.PowerProfileMobile,
		SCIInterrupt:     9,
		Flags:            types.FADTFlagWBINVD | types.FADTFlagResetRegSup,
		BootArchFlags:    types.BootArch8042,
		ResetReg:         resetReg,
		ResetValue:       6,
		SleepControlReg:  sleepCtl,
		HypervisorVendor: 0x4b564d4b564d4b56,
	})

	reader, err := NewFADTReader(data)
	require.NoError(t, err)

	f := reader.FADT()
	assert.Equal(t, types.SignatureFADT, reader.Signature())
	assert.Equal(t, uint8(6), reader.Revision())
	assert.Equal(t, uint32(types.FADTSize), reader.Length())
	assert.Equal(t, types.PowerProfileMobile, f.PreferredPowerManagementProfile)
	assert.Equal(t, "Mobile", f.PreferredPowerManagementProfile.String())
	assert.Equal(t, uint16(9), f.SCIInterrupt)
	assert.True(t, f.HasFlag(types.FADTFlagResetRegSup))
	assert.False(t, f.IsHardwareReduced())
	assert.True(t, f.HasBootArchFlag(types.BootArch8042))
	assert.Equal(t, resetReg, f.ResetReg)
	assert.Equal(t, uint8(6), f.ResetValue)
	assert.Equal(t, sleepCtl, f.SleepControlReg)
	assert.Equal(t, uint64(0x4b564d4b564d4b56), f.HypervisorVendorID)

	assert.Equal(t, types.PhysicalAddress(0x1_7fe0_0000), reader.FirmwareControlAddress())
	assert.Equal(t, types.PhysicalAddress(0x7fd0000), reader.DSDTAddress())

	// Each register pair resolves on its own: PM1a event only has a legacy
	// value while the PM timer has an extended one.
	assert.Equal(t, types.GenericAddress{Space: types.AddressSpaceSystemIO, BitWidth: 32, Address: 0x600}, reader.PM1aEventBlock())
	assert.Equal(t, xTimer, reader.PMTimerBlock())
	assert.True(t, reader.PM1bEventBlock().IsZero())
	assert.True(t, reader.GPE1Block().IsZero())
}

func TestFADTReader_ShortRevisionReadsZero(t *testing.T) {
	// An ACPI 1.0 table ends before the extended fields; bytes that follow
	// it in memory must not leak into the decoded table.
	data := tabletest.FADT(tabletest.FADTOptions{
		Revision: 1,
		Length:   types.FADTRev1Size,
		Dsdt:     0x1000,
	})
	trailing := make([]byte, 64)
	for i := range trailing {
		trailing[i] = 0xff
	}
	data = append(data, trailing...)

	reader, err := NewFADTReader(data)
	require.NoError(t, err)

	f := reader.FADT()
	assert.Equal(t, uint64(0), f.Ext.Dsdt)
	assert.Equal(t, uint64(0), f.Ext.FirmwareControl)
	assert.True(t, f.ResetReg.IsZero())
	assert.Equal(t, types.PhysicalAddress(0x1000), reader.DSDTAddress())
}

func TestFADTReader_DeclaredLengthBeyondMapping(t *testing.T) {
	data := tabletest.FADT(tabletest.FADTOptions{Revision: 2, Dsdt: 0x1000, XDsdt: 0x2000})

	// Only the first 132 bytes are available; X_DSDT lives at 140.
	reader, err := NewFADTReader(data[:types.FADTXFirmwareCtrlOffset])
	require.NoError(t, err)
	assert.Equal(t, types.PhysicalAddress(0x1000), reader.DSDTAddress())
}

func TestFADTReader_ErrorCases(t *testing.T) {
	valid := tabletest.FADT(tabletest.FADTOptions{Revision: 2, Dsdt: 0x1000})

	wrongSig := append([]byte(nil), valid...)
	copy(wrongSig[0:4], "FACQ")

	tests := []struct {
		name  string
		data  []byte
		check func(t *testing.T, err error)
	}{
		{
			name: "Empty data",
			data: []byte{},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, sdt.ErrTruncated)
			},
		},
		{
			name: "Wrong signature",
			data: wrongSig,
			check: func(t *testing.T, err error) {
				assert.True(t, sdt.IsSignatureMismatch(err))
			},
		},
		{
			name: "Declared length too short",
			data: tabletest.FADT(tabletest.FADTOptions{Revision: 1, Length: 40}),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTableTooShort)
			},
		},
		{
			name: "Mapped bytes too short",
			data: valid[:40],
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTableTooShort)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFADTReader(tt.data)
			require.Error(t, err)
			assert.Nil(t, reader)
			tt.check(t, err)
		})
	}
}

func TestNewFADTReaderFromTable(t *testing.T) {
	reader := NewFADTReaderFromTable(types.FADT{
		SDTHeader: types.SDTHeader{Signature: types.SignatureFADT, Revision: 3},
		Dsdt:      0x1000,
		Ext:       types.FADT64{Dsdt: 0x2000},
	})

	assert.Equal(t, types.PhysicalAddress(0x2000), reader.DSDTAddress())
	assert.Equal(t, uint8(3), reader.Revision())
}
