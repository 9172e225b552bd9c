package device

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultMaxMappingSize bounds a single mapping request. Table lengths come
// from firmware and are not trusted.
const DefaultMaxMappingSize = 16 << 20

// ImageConfig holds configuration for physical memory images
type ImageConfig struct {
	ImagePath       string `mapstructure:"image_path"`
	BaseAddress     uint64 `mapstructure:"base_address"`
	VerifyChecksums bool   `mapstructure:"verify_checksums"`
	MaxMappingSize  uint32 `mapstructure:"max_mapping_size"`
	StrictAML       bool   `mapstructure:"strict_aml"`
}

// SetConfigDefaults registers the default configuration values with Viper
func SetConfigDefaults() {
	viper.SetDefault("image_path", "")
	viper.SetDefault("base_address", 0)
	viper.SetDefault("verify_checksums", false)
	viper.SetDefault("max_mapping_size", DefaultMaxMappingSize)
	viper.SetDefault("strict_aml", false)
}

// LoadImageConfig loads image configuration using Viper
func LoadImageConfig() (*ImageConfig, error) {
	viper.SetConfigName("acpi-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.acpi")
	viper.AddConfigPath("/etc/acpi")

	SetConfigDefaults()

	// Allow environment variables
	viper.SetEnvPrefix("ACPI")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config ImageConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.MaxMappingSize == 0 {
		config.MaxMappingSize = DefaultMaxMappingSize
	}

	return &config, nil
}
