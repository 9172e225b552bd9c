package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-acpi/internal/types"
	"github.com/deploymenttheory/go-acpi/pkg/app"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.PhysicalAddress
		wantErr bool
	}{
		{name: "Hex", input: "0xfed00000", want: 0xfed00000},
		{name: "Upper hex", input: "0XE0000", want: 0xe0000},
		{name: "Decimal", input: "4096", want: 4096},
		{name: "Underscores", input: "0x1_0000_0000", want: 0x100000000},
		{name: "Surrounding space", input: " 0x500 ", want: 0x500},
		{name: "Empty", input: "", wantErr: true},
		{name: "Null", input: "0x0", wantErr: true},
		{name: "Not a number", input: "FACP", wantErr: true},
		{name: "Overflow", input: "0x1_0000_0000_0000_0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "FADT", req: Request{Kind: KindFADT, Address: "0x500"}},
		{name: "HPET", req: Request{Kind: KindHPET, Address: "0x500"}},
		{name: "Header", req: Request{Kind: KindHeader, Address: "0x500"}},
		{name: "Unknown kind", req: Request{Kind: "madt", Address: "0x500"}, wantErr: true},
		{name: "Missing address", req: Request{Kind: KindFADT}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
