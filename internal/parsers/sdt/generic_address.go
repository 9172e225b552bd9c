package sdt

import (
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// ParseGenericAddress parses a 12-byte Generic Address Structure
func ParseGenericAddress(data []byte) (types.GenericAddress, error) {
	var gas types.GenericAddress
	if len(data) < types.GenericAddressSize {
		return gas, fmt.Errorf("%w: need %d bytes for generic address, have %d", ErrTruncated, types.GenericAddressSize, len(data))
	}

	gas.Space = types.AddressSpace(data[0])
	gas.BitWidth = data[1]
	gas.BitOffset = data[2]
	gas.AccessSize = data[3]
	gas.Address = binary.LittleEndian.Uint64(data[4:12])

	return gas, nil
}
