package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds plotter configuration
type Config struct {
	// Output: when OutputPath is set the chart is written there
	// instead of opening a window
	OutputPath string

	// Chart canvas size in inches
	WidthInches  float64
	HeightInches float64

	Verbose bool
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		OutputPath:   getEnv("VPA_PLOT_OUTPUT", ""),
		WidthInches:  getEnvFloat("VPA_PLOT_WIDTH", 10),
		HeightInches: getEnvFloat("VPA_PLOT_HEIGHT", 6),
		Verbose:      getEnvBool("VPA_PLOT_VERBOSE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.WidthInches <= 0 || c.HeightInches <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if c.OutputPath != "" {
		switch strings.ToLower(filepath.Ext(c.OutputPath)) {
		case ".png", ".svg", ".pdf":
		default:
			return fmt.Errorf("unsupported output format %q: use .png, .svg or .pdf", filepath.Ext(c.OutputPath))
		}
	}
	return nil
}
