package main

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ebinlog/quatcodec/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "quatc",
	Short: "Compress and inspect quaternion orientation streams",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	rootCmd.AddCommand(compressCmd, decompressCmd, benchCmd)
}

func logger() zerolog.Logger {
	return logging.New(rootCmd.ErrOrStderr(), logLevel)
}

func joinNames(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
