// Package cli implements the univers command-line front end: one cobra
// subcommand tree per scheme (compare/sort/contains), built from the
// generic univers.Ecosystem interface so that adding a scheme never
// touches dispatch logic, only the registry in root.go's init.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alowayed/go-vers/pkg/ecosystem/calver"
	"github.com/alowayed/go-vers/pkg/ecosystem/gem"
	"github.com/alowayed/go-vers/pkg/ecosystem/gradle"
	"github.com/alowayed/go-vers/pkg/ecosystem/javaver"
	"github.com/alowayed/go-vers/pkg/ecosystem/maven"
	"github.com/alowayed/go-vers/pkg/ecosystem/npm"
)

var (
	verboseFlag bool
	quietFlag   bool

	// logger is rebuilt by PersistentPreRun once the global flags are
	// parsed, so every subcommand sees the level the invocation asked for.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	rootCmd = &cobra.Command{
		Use:   "univers",
		Short: "Parse and compare artifact versions across ecosystems",
		Long: `univers parses version strings and range expressions drawn from
several package ecosystems (Maven, Gradle, npm, RubyGems, Calendar
versioning, and the Java language scheme) into a uniform, totally
ordered representation, and answers compare/sort/contains queries
against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			switch {
			case quietFlag:
				level = slog.LevelError
			case verboseFlag:
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress warnings, reporting errors only")

	rootCmd.AddCommand(newEcosystemCommand(&calver.Ecosystem{}))
	rootCmd.AddCommand(newEcosystemCommand(&gem.Ecosystem{}))
	rootCmd.AddCommand(newEcosystemCommand(&gradle.Ecosystem{}))
	rootCmd.AddCommand(newEcosystemCommand(&javaver.Ecosystem{}))
	rootCmd.AddCommand(newEcosystemCommand(&maven.Ecosystem{}))
	rootCmd.AddCommand(newEcosystemCommand(&npm.Ecosystem{}))
}

// Execute runs the root command against os.Args.
func Execute() error {
	return rootCmd.Execute()
}
