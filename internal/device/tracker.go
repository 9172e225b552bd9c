package device

import (
	"errors"
	"fmt"
	"sync"

	"github.com/deploymenttheory/go-acpi/internal/types"
)

var (
	// ErrUnmapped is returned when a physical range is not backed by the image.
	ErrUnmapped = errors.New("physical range not backed by image")

	// ErrNotMapped is returned when releasing a mapping that is not live.
	ErrNotMapped = errors.New("mapping is not live")

	// ErrMappingTooLarge is returned when a request exceeds the configured limit.
	ErrMappingTooLarge = errors.New("mapping request too large")
)

// mappingTracker records live mappings so every release can be matched to
// exactly one acquisition.
type mappingTracker struct {
	mu       sync.Mutex
	live     map[*types.PhysicalMapping]struct{}
	mapped   uint64
	unmapped uint64
}

func newMappingTracker() *mappingTracker {
	return &mappingTracker{live: make(map[*types.PhysicalMapping]struct{})}
}

func (t *mappingTracker) track(m *types.PhysicalMapping) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.live[m] = struct{}{}
	t.mapped++
}

func (t *mappingTracker) release(m *types.PhysicalMapping) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if m == nil {
		return fmt.Errorf("%w: nil mapping", ErrNotMapped)
	}
	if _, ok := t.live[m]; !ok {
		return fmt.Errorf("%w: 0x%x (+%d)", ErrNotMapped, uint64(m.PhysicalStart), m.Length)
	}

	delete(t.live, m)
	t.unmapped++
	return nil
}

// MappingStats reports mapping activity of a mapper.
type MappingStats struct {
	Live     int
	Mapped   uint64
	Unmapped uint64
}

func (t *mappingTracker) stats() MappingStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return MappingStats{Live: len(t.live), Mapped: t.mapped, Unmapped: t.unmapped}
}
