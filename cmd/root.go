package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "acpitables",
	Short: "Read-only ACPI description table inspector",
	Long: `acpitables decodes ACPI description tables from a physical memory image.

Tables are located by physical address. The image maps byte 0 to --base-address,
so a dump of the BIOS area or a copy of /dev/mem can be inspected offline.

Commands:
  header    Decode the common table header at an address
  fadt      Parse the FADT, resolve its register blocks and hand off the DSDT
  hpet      Parse the HPET description table

Settings may also come from acpi-config.yaml or ACPI_* environment variables.`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Output control
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	flags.StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")

	// Image settings, resolved through viper so config files and env apply
	flags.String("image", "", "path to the physical memory image")
	flags.String("base-address", "0", "physical address of the first image byte")
	flags.Bool("verify-checksums", false, "reject tables whose checksum is invalid")
	flags.Bool("strict-aml", false, "fail FADT parsing when the DSDT cannot be parsed")
	flags.Uint32("max-mapping-size", 0, "largest table mapping in bytes (0 selects the default)")

	bindFlag("image_path", "image")
	bindFlag("base_address", "base-address")
	bindFlag("verify_checksums", "verify-checksums")
	bindFlag("strict_aml", "strict-aml")
	bindFlag("max_mapping_size", "max-mapping-size")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
	}
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quiet
}

// GetOutputFormat returns the output format
func GetOutputFormat() string {
	return outputFormat
}
