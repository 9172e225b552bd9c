package types

// Generic Address Structure (section 5.2.3.2)

// GenericAddressSize is the encoded size of GenericAddress in bytes.
const GenericAddressSize = 12

// AddressSpace defines the location where a set of registers resides.
// Reference: section 5.2.3.2, table 5.1
type AddressSpace uint8

// The list of defined address space identifiers.
const (
	AddressSpaceSystemMemory        AddressSpace = 0x00
	AddressSpaceSystemIO            AddressSpace = 0x01
	AddressSpacePCIConfig           AddressSpace = 0x02
	AddressSpaceEmbeddedController  AddressSpace = 0x03
	AddressSpaceSMBus               AddressSpace = 0x04
	AddressSpaceSystemCMOS          AddressSpace = 0x05
	AddressSpacePCIBarTarget        AddressSpace = 0x06
	AddressSpaceIPMI                AddressSpace = 0x07
	AddressSpaceGeneralPurposeIO    AddressSpace = 0x08
	AddressSpaceGenericSerialBus    AddressSpace = 0x09
	AddressSpacePlatformCommChannel AddressSpace = 0x0A
	AddressSpaceFunctionalFixedHW   AddressSpace = 0x7F
)

var addressSpaceNames = map[AddressSpace]string{
	AddressSpaceSystemMemory:        "SystemMemory",
	AddressSpaceSystemIO:            "SystemIO",
	AddressSpacePCIConfig:           "PCIConfig",
	AddressSpaceEmbeddedController:  "EmbeddedController",
	AddressSpaceSMBus:               "SMBus",
	AddressSpaceSystemCMOS:          "SystemCMOS",
	AddressSpacePCIBarTarget:        "PCIBarTarget",
	AddressSpaceIPMI:                "IPMI",
	AddressSpaceGeneralPurposeIO:    "GeneralPurposeIO",
	AddressSpaceGenericSerialBus:    "GenericSerialBus",
	AddressSpacePlatformCommChannel: "PlatformCommChannel",
	AddressSpaceFunctionalFixedHW:   "FunctionalFixedHW",
}

// String returns the name of the address space.
func (s AddressSpace) String() string {
	if name, ok := addressSpaceNames[s]; ok {
		return name
	}
	if s >= 0x80 {
		return "OEMDefined"
	}
	return "Reserved"
}

// AccessSize values of a GenericAddress.
const (
	AccessSizeUndefined uint8 = 0
	AccessSizeByte      uint8 = 1
	AccessSizeWord      uint8 = 2
	AccessSizeDword     uint8 = 3
	AccessSizeQword     uint8 = 4
)

// GenericAddress specifies a register range located in a particular address
// space.
type GenericAddress struct {
	Space      AddressSpace
	BitWidth   uint8
	BitOffset  uint8
	AccessSize uint8
	Address    uint64
}

// IsZero reports whether the structure carries no address.
func (g GenericAddress) IsZero() bool {
	return g.Address == 0
}

// IsFunctionalFixedHW reports whether the register lives in functional fixed
// hardware. Such an address is processor specific and is not a literal
// memory or I/O address.
func (g GenericAddress) IsFunctionalFixedHW() bool {
	return g.Space == AddressSpaceFunctionalFixedHW
}

// Dereferenceable reports whether Address may be used directly as a memory
// or port address.
func (g GenericAddress) Dereferenceable() bool {
	if g.IsZero() {
		return false
	}
	return g.Space == AddressSpaceSystemMemory || g.Space == AddressSpaceSystemIO
}

// AccessWidth returns the access size in bytes, or 0 when undefined.
func (g GenericAddress) AccessWidth() int {
	switch g.AccessSize {
	case AccessSizeByte:
		return 1
	case AccessSizeWord:
		return 2
	case AccessSizeDword:
		return 4
	case AccessSizeQword:
		return 8
	default:
		return 0
	}
}
