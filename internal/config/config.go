package config

import (
	"errors"
	"fmt"

	"github.com/ossyrian/zipcomment/internal/types"
)

// Config holds app configuration
type Config struct {
	// InputFile is the ZIP archive whose comment is printed.
	InputFile string `mapstructure:"input"`

	// Encoding names the character encoding used to decode the comment
	// (utf-7, latin1, cp437, utf-8). Empty means utf-7.
	Encoding string `mapstructure:"encoding"`

	// MaxScanBytes limits how far back from the end of the file the
	// EOCD record is searched for. 0 scans the whole file.
	MaxScanBytes int64 `mapstructure:"max_scan_bytes"`

	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`
}

// Validate checks the configuration and returns the parsed encoding.
func (c *Config) Validate() (types.Encoding, error) {
	if c.InputFile == "" {
		return types.DefaultEncoding, errors.New("no input file given")
	}

	if c.MaxScanBytes < 0 {
		return types.DefaultEncoding, fmt.Errorf("max_scan_bytes must not be negative, got %d", c.MaxScanBytes)
	}

	enc, err := types.ParseEncoding(c.Encoding)
	if err != nil {
		return types.DefaultEncoding, err
	}
	return enc, nil
}
