// Package tabletest builds well-formed ACPI table images for tests.
package tabletest

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// Header returns a 36-byte table header. The checksum byte is left zero;
// call Finalize once the table body is written.
func Header(sig types.Signature, length uint32, revision uint8) []byte {
	b := make([]byte, types.SDTHeaderSize)
	WriteHeader(b, sig, length, revision)
	return b
}

// WriteHeader writes a table header at the start of b.
func WriteHeader(b []byte, sig types.Signature, length uint32, revision uint8) {
	copy(b[0:4], sig[:])
	binary.LittleEndian.PutUint32(b[4:8], length)
	b[8] = revision
	b[9] = 0
	copy(b[10:16], "GOACPI")
	copy(b[16:24], "TESTTBL ")
	binary.LittleEndian.PutUint32(b[24:28], 1)
	binary.LittleEndian.PutUint32(b[28:32], 0x54534554) // "TEST"
	binary.LittleEndian.PutUint32(b[32:36], 1)
}

// Finalize sets the checksum byte so that the table sums to zero.
func Finalize(b []byte) []byte {
	b[types.SDTChecksumOffset] = 0
	var sum uint8
	for _, v := range b {
		sum += v
	}
	b[types.SDTChecksumOffset] = uint8(0 - sum)
	return b
}

// PutGenericAddress encodes gas at b[0:12].
func PutGenericAddress(b []byte, gas types.GenericAddress) {
	b[0] = uint8(gas.Space)
	b[1] = gas.BitWidth
	b[2] = gas.BitOffset
	b[3] = gas.AccessSize
	binary.LittleEndian.PutUint64(b[4:12], gas.Address)
}

// AML returns a definition block with the given signature, revision and
// byte-code payload.
func AML(sig types.Signature, revision uint8, code []byte) []byte {
	length := uint32(types.SDTHeaderSize + len(code))
	b := make([]byte, length)
	WriteHeader(b, sig, length, revision)
	copy(b[types.SDTHeaderSize:], code)
	return Finalize(b)
}
