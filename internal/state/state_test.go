package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "each State gets its own session ID")

	_, ok := a.FADT()
	assert.False(t, ok)
	_, ok = a.DSDT()
	assert.False(t, ok)
	assert.Empty(t, a.SSDTs())
}

func TestSetFADT_LastWriteWins(t *testing.T) {
	st := New()

	first := types.FADT{SCIInterrupt: 9}
	st.SetFADT(first)
	first.SCIInterrupt = 10

	got, ok := st.FADT()
	require.True(t, ok)
	assert.Equal(t, uint16(9), got.SCIInterrupt, "State keeps its own copy")

	st.SetFADT(types.FADT{SCIInterrupt: 11})
	got, _ = st.FADT()
	assert.Equal(t, uint16(11), got.SCIInterrupt)
}

func TestDefinitionBlocks(t *testing.T) {
	st := New()

	st.SetDSDT(types.AMLTable{Signature: types.SignatureDSDT, PhysicalAddress: 0x1000})
	st.SetDSDT(types.AMLTable{Signature: types.SignatureDSDT, PhysicalAddress: 0x2000})
	dsdt, ok := st.DSDT()
	require.True(t, ok)
	assert.Equal(t, types.PhysicalAddress(0x2000), dsdt.PhysicalAddress)

	st.AddSSDT(types.AMLTable{Signature: types.SignatureSSDT, PhysicalAddress: 0x3000})
	st.AddSSDT(types.AMLTable{Signature: types.SignatureSSDT, PhysicalAddress: 0x4000})

	ssdts := st.SSDTs()
	require.Len(t, ssdts, 2)
	assert.Equal(t, types.PhysicalAddress(0x3000), ssdts[0].PhysicalAddress)

	ssdts[0].PhysicalAddress = 0
	assert.Equal(t, types.PhysicalAddress(0x3000), st.SSDTs()[0].PhysicalAddress, "SSDTs returns a copy")
}
