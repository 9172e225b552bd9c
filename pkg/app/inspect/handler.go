package inspect

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-acpi/internal/device"
	"github.com/deploymenttheory/go-acpi/internal/interfaces"
	"github.com/deploymenttheory/go-acpi/internal/parsers/aml"
	"github.com/deploymenttheory/go-acpi/internal/parsers/fadt"
	"github.com/deploymenttheory/go-acpi/internal/parsers/sdt"
	"github.com/deploymenttheory/go-acpi/internal/services"
	"github.com/deploymenttheory/go-acpi/internal/state"
	"github.com/deploymenttheory/go-acpi/internal/types"
	"github.com/deploymenttheory/go-acpi/pkg/app"
)

// Handle processes an inspection request against the physical memory
// exposed by mapper
func Handle(ctx *app.Context, mapper interfaces.PhysicalMapper, req *Request) (*Response, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}
	address, _ := req.PhysicalAddress()

	st := state.New()
	ctx.Log(fmt.Sprintf("Session %s: reading %s at 0x%x", st.ID(), req.Kind, uint64(address)))

	// 2. Read the header; every kind reports it
	header, err := mapper.PeekHeader(address)
	if err != nil {
		return nil, classify("failed to read table header", err)
	}

	response := &Response{
		SessionID: st.ID().String(),
		Kind:      req.Kind,
		Address:   Hex(address),
		Header:    newHeaderReport(header),
	}

	if req.Kind == KindHeader {
		return response, nil
	}

	// 3. Parse the table through the service
	policy := services.PolicyLenient
	if req.StrictAML {
		policy = services.PolicyStrict
	}
	ctx.Log(fmt.Sprintf("AML policy: %s, checksum verification: %t", policy, req.VerifyChecksums))

	service, err := services.NewTableService(mapper,
		aml.NewDefinitionBlockParser(req.VerifyChecksums),
		services.WithPolicy(policy),
		services.WithLogger(ctx.Logger()),
	)
	if err != nil {
		return nil, err
	}

	switch req.Kind {
	case KindFADT:
		if err := service.LoadFADT(st, address); err != nil {
			return nil, classify("failed to parse FADT", err)
		}

		table, _ := st.FADT()
		response.FADT = newFADTReport(table)

		if dsdt, ok := st.DSDT(); ok {
			response.DSDT = newDefinitionBlockReport(dsdt)
		} else {
			ctx.Log("DSDT was not recorded")
		}

	case KindHPET:
		table, err := service.LoadHPET(address)
		if err != nil {
			return nil, classify("failed to parse HPET", err)
		}
		response.HPET = newHPETReport(*table)
	}

	ctx.Log(fmt.Sprintf("Session %s: %s parsed", st.ID(), header.Signature))
	return response, nil
}

// classify maps parser and mapper failures onto application error codes
func classify(message string, err error) error {
	code := app.ErrCodeParseFailed
	switch {
	case sdt.IsSignatureMismatch(err):
		code = app.ErrCodeSignatureMismatch
	case errors.Is(err, device.ErrUnmapped), errors.Is(err, device.ErrMappingTooLarge), errors.Is(err, device.ErrNotMapped):
		code = app.ErrCodeTableAccess
	}
	return app.NewError(code, message, err)
}

func newFADTReport(table types.FADT) *FADTReport {
	reader := fadt.NewFADTReaderFromTable(table)

	return &FADTReport{
		FirmwareControl:  Hex(reader.FirmwareControlAddress()),
		DSDT:             Hex(reader.DSDTAddress()),
		PreferredProfile: table.PreferredPowerManagementProfile.String(),
		SCIInterrupt:     table.SCIInterrupt,
		Flags:            table.Flags,
		HardwareReduced:  table.IsHardwareReduced(),
		Registers: []RegisterReport{
			newRegisterReport("PM1a_EVT", reader.PM1aEventBlock()),
			newRegisterReport("PM1b_EVT", reader.PM1bEventBlock()),
			newRegisterReport("PM1a_CNT", reader.PM1aControlBlock()),
			newRegisterReport("PM1b_CNT", reader.PM1bControlBlock()),
			newRegisterReport("PM2_CNT", reader.PM2ControlBlock()),
			newRegisterReport("PM_TMR", reader.PMTimerBlock()),
			newRegisterReport("GPE0", reader.GPE0Block()),
			newRegisterReport("GPE1", reader.GPE1Block()),
			newRegisterReport("RESET", table.ResetReg),
		},
	}
}

func newDefinitionBlockReport(table types.AMLTable) *DefinitionBlockReport {
	return &DefinitionBlockReport{
		Signature:    table.Signature.String(),
		Revision:     table.Revision,
		Address:      Hex(table.PhysicalAddress),
		OEMTableID:   table.OEMTableID,
		CodeLength:   len(table.Code),
		IntegerWidth: table.IntegerWidth(),
	}
}

func newHPETReport(table types.HPET) *HPETReport {
	return &HPETReport{
		VendorID:          fmt.Sprintf("0x%04x", table.VendorID()),
		HardwareRevision:  table.HardwareRevision(),
		Comparators:       table.ComparatorCount(),
		Counter64Bit:      table.CounterIs64Bit(),
		LegacyReplacement: table.LegacyReplacementCapable(),
		Number:            table.Number,
		MinimumClockTick:  table.MinimumClockTick,
		PageProtection:    table.PageProtectionKind(),
		BaseAddress:       newRegisterReport("BASE", table.BaseAddress),
	}
}
