package inspect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-acpi/internal/device"
	"github.com/deploymenttheory/go-acpi/internal/tabletest"
	"github.com/deploymenttheory/go-acpi/internal/types"
	"github.com/deploymenttheory/go-acpi/pkg/app"
)

// createTestPlatform places a revision 2 FADT at 0x500 pointing at a DSDT at
// 0x2000, an HPET at 0xe000 and a DSDT with a bad checksum at 0x3000
// referenced by a revision 1 FADT at 0x700
func createTestPlatform(t *testing.T) *device.MemoryImage {
	t.Helper()

	image := device.NewMemoryImage()
	require.NoError(t, image.Place(0x500, tabletest.FADT(tabletest.FADTOptions{
		Revision:         2,
		Dsdt:             0x1000,
		XDsdt:            0x2000,
		PMTimerBlock:     0x408,
		PMTimerLength:    4,
		PreferredProfile: types.PowerProfileMobile,
		SCIInterrupt:     9,
	})))
	require.NoError(t, image.Place(0x2000, tabletest.AML(types.SignatureDSDT, 2, []byte{0x14, 0x08})))
	require.NoError(t, image.Place(0xe000, tabletest.HPET(tabletest.HPETOptions{
		EventTimerBlockID: 0x8086a201,
		BaseAddress:       types.GenericAddress{Space: types.AddressSpaceSystemMemory, BitWidth: 64, Address: 0xfed00000},
	})))

	corrupt := tabletest.AML(types.SignatureDSDT, 2, []byte{0x14, 0x08})
	corrupt[len(corrupt)-1]++
	require.NoError(t, image.Place(0x3000, corrupt))
	require.NoError(t, image.Place(0x700, tabletest.FADT(tabletest.FADTOptions{Revision: 1, Dsdt: 0x3000})))

	return image
}

func newTestContext() (*app.Context, *bytes.Buffer) {
	var errOut bytes.Buffer
	ctx := app.NewContext()
	ctx.Out = &bytes.Buffer{}
	ctx.ErrOut = &errOut
	return ctx, &errOut
}

func TestHandle_FADT(t *testing.T) {
	image := createTestPlatform(t)
	ctx, _ := newTestContext()

	resp, err := Handle(ctx, image, &Request{Kind: KindFADT, Address: "0x500"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "FACP", resp.Header.Signature)
	assert.Equal(t, "GOACPI", resp.Header.OEMID)

	require.NotNil(t, resp.FADT)
	assert.Equal(t, Hex(0x2000), resp.FADT.DSDT)
	assert.Equal(t, "Mobile", resp.FADT.PreferredProfile)
	assert.Equal(t, uint16(9), resp.FADT.SCIInterrupt)

	var timer RegisterReport
	for _, r := range resp.FADT.Registers {
		if r.Name == "PM_TMR" {
			timer = r
		}
	}
	assert.Equal(t, "SystemIO", timer.Space)
	assert.Equal(t, uint8(32), timer.BitWidth)
	assert.Equal(t, Hex(0x408), timer.Address)

	require.NotNil(t, resp.DSDT)
	assert.Equal(t, 2, resp.DSDT.CodeLength)
	assert.Equal(t, 64, resp.DSDT.IntegerWidth)

	assert.Nil(t, resp.HPET)
	assert.Equal(t, 0, image.LiveMappings())
}

func TestHandle_AMLPolicy(t *testing.T) {
	t.Run("Lenient records FADT", func(t *testing.T) {
		image := createTestPlatform(t)
		ctx, errOut := newTestContext()

		resp, err := Handle(ctx, image, &Request{Kind: KindFADT, Address: "0x700", VerifyChecksums: true})
		require.NoError(t, err)
		assert.NotNil(t, resp.FADT)
		assert.Nil(t, resp.DSDT)
		assert.Contains(t, errOut.String(), "Warning:")
	})

	t.Run("Strict fails", func(t *testing.T) {
		image := createTestPlatform(t)
		ctx, _ := newTestContext()

		resp, err := Handle(ctx, image, &Request{Kind: KindFADT, Address: "0x700", VerifyChecksums: true, StrictAML: true})
		assert.Nil(t, resp)
		assert.Equal(t, app.ErrCodeParseFailed, app.ErrorCode(err))
		assert.Equal(t, 0, image.LiveMappings())
	})
}

func TestHandle_HPET(t *testing.T) {
	image := createTestPlatform(t)
	ctx, _ := newTestContext()

	resp, err := Handle(ctx, image, &Request{Kind: KindHPET, Address: "0xe000"})
	require.NoError(t, err)

	require.NotNil(t, resp.HPET)
	assert.Equal(t, "0x8086", resp.HPET.VendorID)
	assert.Equal(t, 3, resp.HPET.Comparators)
	assert.True(t, resp.HPET.LegacyReplacement)
	assert.Equal(t, Hex(0xfed00000), resp.HPET.BaseAddress.Address)
	assert.Nil(t, resp.FADT)
}

func TestHandle_Header(t *testing.T) {
	image := createTestPlatform(t)
	ctx, _ := newTestContext()

	resp, err := Handle(ctx, image, &Request{Kind: KindHeader, Address: "0x2000"})
	require.NoError(t, err)
	assert.Equal(t, "DSDT", resp.Header.Signature)
	assert.Equal(t, uint32(types.SDTHeaderSize+2), resp.Header.Length)
	assert.Nil(t, resp.FADT)
	assert.Nil(t, resp.HPET)
}

func TestHandle_ErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantCode string
	}{
		{name: "Invalid address", req: Request{Kind: KindFADT, Address: "nowhere"}, wantCode: app.ErrCodeInvalidInput},
		{name: "Unbacked address", req: Request{Kind: KindFADT, Address: "0x9000"}, wantCode: app.ErrCodeTableAccess},
		{name: "HPET read as FADT", req: Request{Kind: KindFADT, Address: "0xe000"}, wantCode: app.ErrCodeSignatureMismatch},
		{name: "FADT read as HPET", req: Request{Kind: KindHPET, Address: "0x500"}, wantCode: app.ErrCodeSignatureMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := createTestPlatform(t)
			ctx, _ := newTestContext()

			resp, err := Handle(ctx, image, &tt.req)
			assert.Nil(t, resp)
			assert.Equal(t, tt.wantCode, app.ErrorCode(err))
			assert.Equal(t, 0, image.LiveMappings())
		})
	}
}
