// Package types implements the data structures of the ACPI description tables.
// Layouts follow the ACPI Specification 6.5, section 5.2 (ACPI Software Programming Model).
package types

// General-Purpose Types
// Basic types that are used by every table and aren't associated with any
// particular table kind.

// PhysicalAddress represents a physical address published by firmware.
// Firmware fields are 32 or 64 bits wide; 32-bit values are widened without
// sign interpretation.
type PhysicalAddress uint64

// IsNull reports whether the address is the null address.
func (p PhysicalAddress) IsNull() bool {
	return p == 0
}

// Signature represents the 4-byte tag that identifies an ACPI table kind.
// Reference: section 5.2.6, table 5.5
type Signature [4]byte

// String returns the signature as text, e.g. "FACP".
func (s Signature) String() string {
	return string(s[:])
}

// NewSignature builds a Signature from a 4-character tag. Shorter tags are
// padded with zero bytes and longer tags are truncated.
func NewSignature(tag string) Signature {
	var s Signature
	copy(s[:], tag)
	return s
}

// Table signatures handled by this module.
var (
	// SignatureFADT identifies the Fixed ACPI Description Table.
	SignatureFADT = Signature{'F', 'A', 'C', 'P'}

	// SignatureDSDT identifies the Differentiated System Description Table.
	SignatureDSDT = Signature{'D', 'S', 'D', 'T'}

	// SignatureSSDT identifies a Secondary System Description Table.
	SignatureSSDT = Signature{'S', 'S', 'D', 'T'}

	// SignatureHPET identifies the IA-PC High Precision Event Timer Table.
	SignatureHPET = Signature{'H', 'P', 'E', 'T'}
)

// PhysicalMapping is a view of a physical address range that the platform has
// made accessible. The mapper owns the bytes until the mapping is released;
// consumers must copy anything they keep.
type PhysicalMapping struct {
	// PhysicalStart is the physical address of the first mapped byte.
	PhysicalStart PhysicalAddress

	// Length is the number of bytes requested for the mapping.
	Length uint32

	// Data holds the mapped bytes. len(Data) == Length.
	Data []byte
}

// Bytes returns the mapped bytes.
func (m *PhysicalMapping) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.Data
}
