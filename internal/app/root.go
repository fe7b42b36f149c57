// internal/app/root.go
package app

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seqio/internal/config"
)

// version can be overridden at build time with
// -ldflags "-X seqio/internal/app.version=...".
var version = "0.1.0"

// globalState is shared by all subcommands: the logger, and config
// defaults resolved before any RunE fires.
type globalState struct {
	verbose bool
	log     *log.Logger
	cfg     config.Config
}

// NewRoot builds the seqio command tree writing to the given streams.
func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	g := &globalState{
		log: log.NewWithOptions(stderr, log.Options{ReportTimestamp: false}),
	}

	root := &cobra.Command{
		Use:           "seqio",
		Short:         "Validate, reformat and summarize FASTA and GFF files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.verbose {
				g.log.SetLevel(log.DebugLevel)
			} else {
				g.log.SetLevel(log.WarnLevel)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			g.cfg = cfg
			g.log.Debug("config loaded", "width", cfg.Width, "alphabet", cfg.Alphabet, "lenient", cfg.Lenient)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newFmtCmd(g))
	root.AddCommand(newCheckCmd(g))
	root.AddCommand(newStatsCmd(g))
	return root
}
