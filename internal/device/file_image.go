package device

import (
	"fmt"
	"io"
	"os"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

// FileImage provides access to a physical memory dump. Byte 0 of the image
// corresponds to physical address BaseAddress.
type FileImage struct {
	file            io.Closer
	reader          io.ReaderAt
	size            int64
	base            types.PhysicalAddress
	verifyChecksums bool
	maxMappingSize  uint32
	tracker         *mappingTracker
}

var _ interfaces.PhysicalMapper = (*FileImage)(nil)

// OpenImage opens a physical memory image file
func OpenImage(path string, config *ImageConfig) (*FileImage, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	image := NewFileImage(file, stat.Size(), config)
	image.file = file
	return image, nil
}

// NewFileImage wraps r, which holds size bytes of physical memory
func NewFileImage(r io.ReaderAt, size int64, config *ImageConfig) *FileImage {
	image := &FileImage{
		reader:         r,
		size:           size,
		maxMappingSize: DefaultMaxMappingSize,
		tracker:        newMappingTracker(),
	}

	if config != nil {
		image.base = types.PhysicalAddress(config.BaseAddress)
		image.verifyChecksums = config.VerifyChecksums
		if config.MaxMappingSize != 0 {
			image.maxMappingSize = config.MaxMappingSize
		}
	}

	return image
}

// readAt reads length bytes at the physical address into a fresh buffer
func (f *FileImage) readAt(address types.PhysicalAddress, length uint32) ([]byte, error) {
	if length > f.maxMappingSize {
		return nil, fmt.Errorf("%w: %d bytes at 0x%x exceeds %d", ErrMappingTooLarge, length, uint64(address), f.maxMappingSize)
	}

	if address < f.base {
		return nil, fmt.Errorf("%w: 0x%x is below image base 0x%x", ErrUnmapped, uint64(address), uint64(f.base))
	}

	off := uint64(address - f.base)
	if off > uint64(f.size) || uint64(length) > uint64(f.size)-off {
		return nil, fmt.Errorf("%w: 0x%x (+%d)", ErrUnmapped, uint64(address), length)
	}

	buf := make([]byte, length)
	n, err := f.reader.ReadAt(buf, int64(off))
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return nil, fmt.Errorf("failed to read physical range 0x%x (+%d): %w", uint64(address), length, err)
	}

	return buf, nil
}

// MapPhysicalRegion reads length bytes at address. When checksum
// verification is enabled and the range holds exactly one complete table,
// the table checksum must be valid.
func (f *FileImage) MapPhysicalRegion(address types.PhysicalAddress, length uint32) (*types.PhysicalMapping, error) {
	data, err := f.readAt(address, length)
	if err != nil {
		return nil, err
	}

	if f.verifyChecksums && length >= types.SDTHeaderSize {
		if header, err := sdt.ParseHeader(data); err == nil && header.Length == length {
			if err := sdt.VerifyChecksum(data); err != nil {
				return nil, fmt.Errorf("%s at 0x%x: %w", header.Signature, uint64(address), err)
			}
		}
	}

	mapping := &types.PhysicalMapping{PhysicalStart: address, Length: length, Data: data}
	f.tracker.track(mapping)
	return mapping, nil
}

// UnmapPhysicalRegion releases a mapping obtained from MapPhysicalRegion
func (f *FileImage) UnmapPhysicalRegion(mapping *types.PhysicalMapping) error {
	return f.tracker.release(mapping)
}

// PeekHeader reads only the table header at address
func (f *FileImage) PeekHeader(address types.PhysicalAddress) (types.SDTHeader, error) {
	data, err := f.readAt(address, types.SDTHeaderSize)
	if err != nil {
		return types.SDTHeader{}, err
	}
	return sdt.ParseHeader(data)
}

// Size returns the number of bytes of physical memory in the image
func (f *FileImage) Size() int64 {
	return f.size
}

// BaseAddress returns the physical address of the first image byte
func (f *FileImage) BaseAddress() types.PhysicalAddress {
	return f.base
}

// Stats returns mapping activity counters
func (f *FileImage) Stats() MappingStats {
	return f.tracker.stats()
}

// LiveMappings returns the number of mappings not yet released
func (f *FileImage) LiveMappings() int {
	return f.tracker.stats().Live
}

// Close closes the underlying image file
func (f *FileImage) Close() error {
	if f.file != nil {
		return f.file.Close()
	}
	return nil
}
