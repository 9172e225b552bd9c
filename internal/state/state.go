// Package state holds the System ACPI State: the parsed tables that the rest of
// the system consumes once boot-time table parsing is complete.
package state

import (
	"github.com/google/uuid"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

// State is the owned context that table parsers record their results into.
// A State is not safe for concurrent use; callers serialize parsing.
type State struct {
	id   uuid.UUID
	fadt *types.FADT
	dsdt *types.AMLTable

	ssdts []types.AMLTable
}

// New creates an empty State tagged with a fresh session ID.
func New() *State {
	return &State{id: uuid.New()}
}

// ID returns the session identifier of this State.
func (s *State) ID() uuid.UUID {
	return s.id
}

// SetFADT stores a copy of fadt as the current FADT, replacing any previous one.
func (s *State) SetFADT(fadt types.FADT) {
	s.fadt = &fadt
}

// FADT returns a copy of the current FADT and whether one has been recorded.
func (s *State) FADT() (types.FADT, bool) {
	if s.fadt == nil {
		return types.FADT{}, false
	}
	return *s.fadt, true
}

// SetDSDT records the differentiated definition block, replacing any previous one.
func (s *State) SetDSDT(table types.AMLTable) {
	s.dsdt = &table
}

// DSDT returns the recorded differentiated definition block.
func (s *State) DSDT() (types.AMLTable, bool) {
	if s.dsdt == nil {
		return types.AMLTable{}, false
	}
	return *s.dsdt, true
}

// AddSSDT appends a secondary definition block.
func (s *State) AddSSDT(table types.AMLTable) {
	s.ssdts = append(s.ssdts, table)
}

// SSDTs returns the secondary definition blocks in the order they were added.
func (s *State) SSDTs() []types.AMLTable {
	return append([]types.AMLTable(nil), s.ssdts...)
}
