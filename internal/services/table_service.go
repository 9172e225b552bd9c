package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/aml"
	"github.com/deploymenttheory/go-acpi/internal/parsers/fadt"
	"github.com/deploymenttheory/go-acpi/internal/parsers/hpet"
	"github.com/deploymenttheory/go-acpi/internal/state"
	"github.com/deploymenttheory/go-acpi/internal/types"
)

var (
	// ErrNoDefinitionBlock is returned when the FADT resolves to a null DSDT address.
	ErrNoDefinitionBlock = errors.New("FADT does not reference a DSDT")

	// ErrDefinitionBlockParse wraps AML parser failures under the strict policy.
	ErrDefinitionBlockParse = errors.New("definition block parse failed")
)

// Policy selects how a failed DSDT handoff affects FADT parsing.
type Policy int

const (
	// PolicyLenient logs AML failures and still records the FADT.
	PolicyLenient Policy = iota

	// PolicyStrict fails the FADT parse when the DSDT cannot be parsed.
	PolicyStrict
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyLenient:
		return "lenient"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// TableService parses ACPI tables out of mapped physical memory and records
// the results into a State
type TableService struct {
	mapper interfaces.PhysicalMapper
	aml    interfaces.AMLTableParser
	policy Policy
	logger *log.Logger
}

// Option configures a TableService
type Option func(*TableService)

// WithPolicy sets the AML failure policy
func WithPolicy(policy Policy) Option {
	return func(s *TableService) {
		s.policy = policy
	}
}

// WithLogger sets the logger used for warnings
func WithLogger(logger *log.Logger) Option {
	return func(s *TableService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewTableService creates a new TableService. A nil AML parser selects the
// default definition block parser.
func NewTableService(mapper interfaces.PhysicalMapper, amlParser interfaces.AMLTableParser, opts ...Option) (*TableService, error) {
	if mapper == nil {
		return nil, fmt.Errorf("physical mapper cannot be nil")
	}

	if amlParser == nil {
		amlParser = aml.NewDefinitionBlockParser(false)
	}

	s := &TableService{
		mapper: mapper,
		aml:    amlParser,
		policy: PolicyLenient,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Policy returns the AML failure policy in effect
func (s *TableService) Policy() Policy {
	return s.policy
}

// ParseFADT validates the FADT in mapping, hands the DSDT it references to
// the AML parser and records the FADT into st. Nothing is recorded when the
// header is invalid or the DSDT cannot be mapped.
func (s *TableService) ParseFADT(st *state.State, mapping *types.PhysicalMapping) error {
	if st == nil {
		return fmt.Errorf("state cannot be nil")
	}

	reader, err := fadt.NewFADTReader(mapping.Bytes())
	if err != nil {
		return err
	}

	dsdtAddress := reader.DSDTAddress()
	if dsdtAddress.IsNull() {
		return fmt.Errorf("%w: FACP revision %d", ErrNoDefinitionBlock, reader.Revision())
	}

	err = s.withTable(dsdtAddress, func(dsdt *types.PhysicalMapping) error {
		return s.handOff(st, dsdt, types.SignatureDSDT)
	})
	if err != nil {
		return err
	}

	st.SetFADT(reader.FADT())
	return nil
}

// handOff passes a definition block to the AML parser and applies the policy
func (s *TableService) handOff(st *state.State, mapping *types.PhysicalMapping, tag types.Signature) error {
	err := s.aml.ParseAMLTable(st, s.mapper, mapping, tag)
	if err == nil {
		return nil
	}

	if s.policy == PolicyStrict {
		return fmt.Errorf("%w: %s at 0x%x: %w", ErrDefinitionBlockParse, tag, uint64(mapping.PhysicalStart), err)
	}

	s.logger.Printf("Warning: [%s] %s at 0x%x could not be parsed: %v", st.ID(), tag, uint64(mapping.PhysicalStart), err)
	return nil
}

// ParseHPET validates and decodes the HPET in mapping
func (s *TableService) ParseHPET(mapping *types.PhysicalMapping) (*types.HPET, error) {
	reader, err := hpet.NewHPETReader(mapping.Bytes())
	if err != nil {
		return nil, err
	}

	table := reader.HPET()
	return &table, nil
}

// LoadFADT maps the FADT at address and parses it into st
func (s *TableService) LoadFADT(st *state.State, address types.PhysicalAddress) error {
	return s.withTable(address, func(mapping *types.PhysicalMapping) error {
		return s.ParseFADT(st, mapping)
	})
}

// LoadHPET maps the HPET at address and decodes it
func (s *TableService) LoadHPET(address types.PhysicalAddress) (*types.HPET, error) {
	var table *types.HPET
	err := s.withTable(address, func(mapping *types.PhysicalMapping) error {
		var err error
		table, err = s.ParseHPET(mapping)
		return err
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// LoadSSDT maps the secondary definition block at address and hands it to
// the AML parser under the service policy
func (s *TableService) LoadSSDT(st *state.State, address types.PhysicalAddress) error {
	if st == nil {
		return fmt.Errorf("state cannot be nil")
	}

	return s.withTable(address, func(mapping *types.PhysicalMapping) error {
		return s.handOff(st, mapping, types.SignatureSSDT)
	})
}

// withTable maps the table at address for its declared length and runs fn
// on the mapping. The mapping is released before withTable returns; a
// failed release is reported alongside any error from fn.
func (s *TableService) withTable(address types.PhysicalAddress, fn func(*types.PhysicalMapping) error) (err error) {
	header, err := s.mapper.PeekHeader(address)
	if err != nil {
		return fmt.Errorf("failed to read table header at 0x%x: %w", uint64(address), err)
	}

	mapping, err := s.mapper.MapPhysicalRegion(address, header.Length)
	if err != nil {
		return fmt.Errorf("failed to map %s at 0x%x: %w", header.Signature, uint64(address), err)
	}

	defer func() {
		if unmapErr := s.mapper.UnmapPhysicalRegion(mapping); unmapErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to unmap %s at 0x%x: %w", header.Signature, uint64(address), unmapErr))
		}
	}()

	return fn(mapping)
}
