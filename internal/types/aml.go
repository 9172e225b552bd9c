package types

// AMLTable is a definition block (DSDT or SSDT) that has been handed off for
// byte-code parsing. Code holds a private copy of the AML that follows the
// table header.
type AMLTable struct {
	Signature       Signature
	Revision        uint8
	PhysicalAddress PhysicalAddress
	OEMTableID      string
	Code            []byte
}

// IntegerWidth returns the width in bits of AML integers in this table.
// Revision 1 tables use 32-bit integers.
func (t AMLTable) IntegerWidth() int {
	if t.Revision < 2 {
		return 32
	}
	return 64
}
