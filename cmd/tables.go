package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-acpi/internal/device"
	"github.com/deploymenttheory/go-acpi/pkg/app"
	"github.com/deploymenttheory/go-acpi/pkg/app/inspect"
)

// tableAddress is shared by the table commands
var tableAddress string

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Decode the table header at a physical address",
	Long: `Decode the 36-byte header common to every ACPI description table.

Examples:
  # Show the header of the table at 0x7fe1a000
  acpitables --image mem.bin header --addr 0x7fe1a000`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, inspect.KindHeader)
	},
}

var fadtCmd = &cobra.Command{
	Use:   "fadt",
	Short: "Parse the Fixed ACPI Description Table",
	Long: `Parse the FADT, resolve its 32/64-bit register and table addresses and
hand the DSDT it references to the definition block parser.

Examples:
  # Parse the FADT from a dump of the first 4GiB
  acpitables --image mem.bin fadt --addr 0x7fe19000

  # Fail when the DSDT is damaged
  acpitables --image mem.bin --strict-aml --verify-checksums fadt --addr 0x7fe19000`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, inspect.KindFADT)
	},
}

var hpetCmd = &cobra.Command{
	Use:   "hpet",
	Short: "Parse the High Precision Event Timer table",
	Long: `Parse the HPET description table and report the timer block capabilities.

Examples:
  acpitables --image mem.bin -o json hpet --addr 0x7fe1b000`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, inspect.KindHPET)
	},
}

func init() {
	for _, c := range []*cobra.Command{headerCmd, fadtCmd, hpetCmd} {
		c.Flags().StringVar(&tableAddress, "addr", "", "physical address of the table (decimal or 0x hex)")
		c.MarkFlagRequired("addr")
		rootCmd.AddCommand(c)
	}
}

func runInspect(cmd *cobra.Command, kind inspect.TableKind) error {
	// Create application context
	ctx := app.NewContext()
	ctx.OutputFormat = GetOutputFormat()
	ctx.Verbose = GetVerbose()
	ctx.Quiet = GetQuiet()
	ctx.Out = cmd.OutOrStdout()
	ctx.ErrOut = cmd.ErrOrStderr()

	config, err := device.LoadImageConfig()
	if err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "failed to load configuration", err)
	}

	image, err := device.OpenImage(config.ImagePath, config)
	if err != nil {
		return app.NewError(app.ErrCodeTableAccess, "failed to open memory image", err)
	}
	defer image.Close()

	request := &inspect.Request{
		Kind:            kind,
		Address:         tableAddress,
		StrictAML:       config.StrictAML,
		VerifyChecksums: config.VerifyChecksums,
	}

	// Handle the request through application layer
	response, err := inspect.Handle(ctx, image, request)
	if err != nil {
		return err
	}

	if live := image.LiveMappings(); live != 0 {
		ctx.Error("mappings left live after parsing")
	}

	// Format and display results
	return inspect.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}
