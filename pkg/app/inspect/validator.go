package inspect

import (
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-acpi/internal/types"
	"github.com/deploymenttheory/go-acpi/pkg/app"
)

// Validate validates an inspection request
func (r *Request) Validate() error {
	switch r.Kind {
	case KindHeader, KindFADT, KindHPET:
	default:
		return app.NewError(app.ErrCodeInvalidInput, "unsupported table kind: "+string(r.Kind), nil)
	}

	if _, err := r.PhysicalAddress(); err != nil {
		return err
	}

	return nil
}

// PhysicalAddress parses the requested address
func (r *Request) PhysicalAddress() (types.PhysicalAddress, error) {
	return ParseAddress(r.Address)
}

// ParseAddress parses a decimal or 0x-prefixed hex physical address. The
// null address is rejected.
func ParseAddress(s string) (types.PhysicalAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, app.NewError(app.ErrCodeInvalidInput, "table address is required", nil)
	}

	value, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 64)
	if err != nil {
		return 0, app.NewError(app.ErrCodeInvalidInput, "invalid table address", err)
	}

	address := types.PhysicalAddress(value)
	if address.IsNull() {
		return 0, app.NewError(app.ErrCodeInvalidInput, "table address cannot be null", nil)
	}

	return address, nil
}
