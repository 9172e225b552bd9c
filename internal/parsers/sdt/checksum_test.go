package sdt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploymenttheory/go-acpi/internal/tabletest"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

func TestVerifyChecksum(t *testing.T) {
	table := tabletest.AML(types.SignatureDSDT, 2, []byte{0x10, 0x20, 0x30})
	assert.Equal(t, uint8(0), Checksum(table))
	assert.NoError(t, VerifyChecksum(table))

	table[len(table)-1]++
	assert.ErrorIs(t, VerifyChecksum(table), ErrChecksumMismatch)
}
