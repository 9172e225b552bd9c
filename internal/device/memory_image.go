package device

import (
	"fmt"
	"sort"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// MemoryImage is a PhysicalMapper over byte regions held in process memory.
// Each region is placed at a physical address; a mapping must fall entirely
// inside one region.
type MemoryImage struct {
	regions []memoryRegion
	tracker *mappingTracker
}

type memoryRegion struct {
	start types.PhysicalAddress
	data  []byte
}

func (r memoryRegion) end() uint64 {
	return uint64(r.start) + uint64(len(r.data))
}

var _ interfaces.PhysicalMapper = (*MemoryImage)(nil)

// NewMemoryImage creates an empty MemoryImage
func NewMemoryImage() *MemoryImage {
	return &MemoryImage{tracker: newMappingTracker()}
}

// Place backs the physical range starting at address with data. The image
// keeps a reference to data. Overlapping regions are rejected.
func (m *MemoryImage) Place(address types.PhysicalAddress, data []byte) error {
	region := memoryRegion{start: address, data: data}
	if uint64(address)+uint64(len(data)) < uint64(address) {
		return fmt.Errorf("region at 0x%x wraps the address space", uint64(address))
	}

	for _, r := range m.regions {
		if uint64(address) < r.end() && uint64(r.start) < region.end() {
			return fmt.Errorf("region at 0x%x overlaps region at 0x%x", uint64(address), uint64(r.start))
		}
	}

	m.regions = append(m.regions, region)
	sort.Slice(m.regions, func(i, j int) bool { return m.regions[i].start < m.regions[j].start })
	return nil
}

func (m *MemoryImage) lookup(address types.PhysicalAddress, length uint32) ([]byte, error) {
	end := uint64(address) + uint64(length)
	for _, r := range m.regions {
		if address >= r.start && end <= r.end() && end >= uint64(address) {
			off := uint64(address - r.start)
			return r.data[off : off+uint64(length)], nil
		}
	}
	return nil, fmt.Errorf("%w: 0x%x (+%d)", ErrUnmapped, uint64(address), length)
}

// MapPhysicalRegion returns a view of length bytes at address
func (m *MemoryImage) MapPhysicalRegion(address types.PhysicalAddress, length uint32) (*types.PhysicalMapping, error) {
	data, err := m.lookup(address, length)
	if err != nil {
		return nil, err
	}

	mapping := &types.PhysicalMapping{PhysicalStart: address, Length: length, Data: data}
	m.tracker.track(mapping)
	return mapping, nil
}

// UnmapPhysicalRegion releases a mapping obtained from MapPhysicalRegion
func (m *MemoryImage) UnmapPhysicalRegion(mapping *types.PhysicalMapping) error {
	return m.tracker.release(mapping)
}

// PeekHeader decodes the table header at address
func (m *MemoryImage) PeekHeader(address types.PhysicalAddress) (types.SDTHeader, error) {
	data, err := m.lookup(address, types.SDTHeaderSize)
	if err != nil {
		return types.SDTHeader{}, err
	}
	return sdt.ParseHeader(data)
}

// Stats returns mapping activity counters
func (m *MemoryImage) Stats() MappingStats {
	return m.tracker.stats()
}

// LiveMappings returns the number of mappings not yet released
func (m *MemoryImage) LiveMappings() int {
	return m.tracker.stats().Live
}
