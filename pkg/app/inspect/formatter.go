package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes an inspection response in the given output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats the response as aligned key/value sections
func formatTable(w io.Writer, response *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	h := response.Header
	fmt.Fprintf(tw, "Session:\t%s\n", response.SessionID)
	fmt.Fprintf(tw, "Table:\t%s at %s\n", h.Signature, response.Address)
	fmt.Fprintf(tw, "Length:\t%d\n", h.Length)
	fmt.Fprintf(tw, "Revision:\t%d\n", h.Revision)
	fmt.Fprintf(tw, "Checksum:\t0x%02x\n", h.Checksum)
	fmt.Fprintf(tw, "OEM:\t%s / %s (rev %d)\n", h.OEMID, h.OEMTableID, h.OEMRevision)
	fmt.Fprintf(tw, "Creator:\t%s (rev %d)\n", h.CreatorID, h.CreatorRevision)

	if f := response.FADT; f != nil {
		fmt.Fprintf(tw, "\nFirmware control:\t%s\n", f.FirmwareControl)
		fmt.Fprintf(tw, "DSDT:\t%s\n", f.DSDT)
		fmt.Fprintf(tw, "Preferred profile:\t%s\n", f.PreferredProfile)
		fmt.Fprintf(tw, "SCI interrupt:\t%d\n", f.SCIInterrupt)
		fmt.Fprintf(tw, "Flags:\t0x%08x (hardware reduced: %t)\n", f.Flags, f.HardwareReduced)
		writeRegisters(tw, f.Registers)
	}

	if d := response.DSDT; d != nil {
		fmt.Fprintf(tw, "\nDefinition block:\t%s rev %d at %s\n", d.Signature, d.Revision, d.Address)
		fmt.Fprintf(tw, "AML code:\t%d bytes, %d-bit integers\n", d.CodeLength, d.IntegerWidth)
	}

	if p := response.HPET; p != nil {
		fmt.Fprintf(tw, "\nVendor:\t%s (rev %d)\n", p.VendorID, p.HardwareRevision)
		fmt.Fprintf(tw, "Comparators:\t%d\n", p.Comparators)
		fmt.Fprintf(tw, "64-bit counter:\t%t\n", p.Counter64Bit)
		fmt.Fprintf(tw, "Legacy replacement:\t%t\n", p.LegacyReplacement)
		fmt.Fprintf(tw, "Number:\t%d\n", p.Number)
		fmt.Fprintf(tw, "Minimum clock tick:\t%d\n", p.MinimumClockTick)
		fmt.Fprintf(tw, "Page protection:\t%d\n", p.PageProtection)
		writeRegisters(tw, []RegisterReport{p.BaseAddress})
	}

	return tw.Flush()
}

func writeRegisters(tw *tabwriter.Writer, registers []RegisterReport) {
	fmt.Fprintf(tw, "\nREGISTER\tSPACE\tWIDTH\tOFFSET\tACCESS\tADDRESS\n")
	fmt.Fprintf(tw, "--------\t-----\t-----\t------\t------\t-------\n")
	for _, r := range registers {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", r.Name, r.Space, r.BitWidth, r.BitOffset, r.AccessSize, r.Address)
	}
}

// formatJSON formats the response as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats the response as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
