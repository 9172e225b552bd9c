package sdt

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch is returned when the bytes of a table do not sum to zero.
var ErrChecksumMismatch = errors.New("detected checksum mismatch while parsing ACPI table")

// Checksum returns the 8-bit sum of all bytes in data.
func Checksum(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}
	return sum
}

// VerifyChecksum checks that the table in data sums to zero.
func VerifyChecksum(data []byte) error {
	if sum := Checksum(data); sum != 0 {
		return fmt.Errorf("%w: sum is 0x%02x", ErrChecksumMismatch, sum)
	}
	return nil
}
