package types

// System Description Table Header (section 5.2.6)
// All description tables start with this header.

// SDTHeaderSize is the encoded size of SDTHeader in bytes.
const SDTHeaderSize = 36

// Byte offsets of the SDTHeader fields.
const (
	SDTSignatureOffset       = 0
	SDTLengthOffset          = 4
	SDTRevisionOffset        = 8
	SDTChecksumOffset        = 9
	SDTOEMIDOffset           = 10
	SDTOEMTableIDOffset      = 16
	SDTOEMRevisionOffset     = 24
	SDTCreatorIDOffset       = 28
	SDTCreatorRevisionOffset = 32
)

// SDTHeader defines the common header for all ACPI description tables.
// Reference: section 5.2.6, table 5.5
type SDTHeader struct {
	// The signature defines the table type.
	Signature Signature

	// The length of the table in bytes, including the header.
	Length uint32

	// For DSDT/SSDT tables the revision also selects the AML integer width:
	// 32 bits when revision < 2, 64 bits otherwise.
	Revision uint8

	// A value that when added to the sum of all other bytes in the table
	// should result in the value 0.
	Checksum uint8

	// OEM specific information
	OEMID       [6]byte
	OEMTableID  [8]byte
	OEMRevision uint32

	// Information about the ASL compiler that generated this table
	CreatorID       uint32
	CreatorRevision uint32
}

// OEMIDString returns the OEM ID with trailing spaces and NULs removed.
func (h SDTHeader) OEMIDString() string {
	return trimFirmwareString(h.OEMID[:])
}

// OEMTableIDString returns the OEM table ID with trailing spaces and NULs removed.
func (h SDTHeader) OEMTableIDString() string {
	return trimFirmwareString(h.OEMTableID[:])
}

func trimFirmwareString(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == ' ' || b[end-1] == 0) {
		end--
	}
	return string(b[:end])
}
