package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/erbsland-dev/elcl-go/access"
	"github.com/erbsland-dev/elcl-go/source"
)

var (
	rootCmd = &cobra.Command{
		Use:          "elcl",
		Short:        "elcl",
		SilenceUsage: true,
		Long:         `elcl parses and inspects Erbsland Configuration Language (ELCL) documents.`,
	}

	logLevel    string
	allowAccess bool
	baseDir     string

	log zerolog.Logger
)

// Execute runs the root command and its subcommands.
func Execute() error {
	defaults := loadEnvDefaults()
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel, "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&allowAccess, "unrestricted", defaults.Unrestricted, "skip the default file access sandbox (read includes from anywhere)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", defaults.BaseDir, "base directory for relative @include paths with no filesystem-backed root")

	cobra.OnInitialize(func() {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	})

	return rootCmd.Execute()
}

// accessCheck builds the access.Check the current flags describe.
func accessCheck() access.Check {
	if allowAccess {
		return access.AllowAll{}
	}
	return access.NewFileCheck()
}

// sourceResolver builds the source.Resolver the current flags describe.
func sourceResolver() source.Resolver {
	return source.NewFileResolver(baseDir)
}
