package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ossyrian/zipcomment/internal/config"
	"github.com/ossyrian/zipcomment/internal/logging"
	"github.com/ossyrian/zipcomment/internal/parser"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "zipcomment [flags] <file>",
	Short:         "Print the archive comment of a ZIP file",
	Args:          cobra.MaximumNArgs(1),
	RunE:          extract,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	// i/o
	rootCmd.Flags().StringP("input", "i", "", "path to the ZIP file (alternative to the positional argument)")

	// decoding
	rootCmd.Flags().StringP("encoding", "e", "utf-7", "comment encoding (utf-7, latin1, cp437, utf-8)")
	rootCmd.Flags().Int64("max-scan-bytes", 0, "only search this many bytes from the end of the file for the comment record (0 = whole file)")

	// other opts
	rootCmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error, fatal)")
	rootCmd.Flags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stderr and file)")

	viper.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	viper.BindPFlag("encoding", rootCmd.Flags().Lookup("encoding"))
	viper.BindPFlag("max_scan_bytes", rootCmd.Flags().Lookup("max-scan-bytes"))
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.Flags().Lookup("log-output-dir"))
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zipcomment"))
		}
		viper.AddConfigPath("/etc/zipcomment")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("ZIPCOMMENT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// extract prints the comment of the ZIP file named by the positional
// argument or the input setting.
func extract(cmd *cobra.Command, args []string) error {
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if len(args) == 1 {
		cfg.InputFile = args[0]
	}

	enc, err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	closer, err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir)
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	defer closer.Close()

	slog.Info("reading comment", "input", cfg.InputFile, "encoding", enc)

	comment, err := parser.ExtractCommentFromFile(cfg.InputFile, func(opts *parser.Options) {
		opts.Encoding = enc
		opts.MaxScanBytes = cfg.MaxScanBytes
	})
	if err != nil {
		return fmt.Errorf("error reading comment from %s: %w", cfg.InputFile, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), comment)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
