// internal/app/fmt.go
package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seqio-core/alphabet"
	"seqio-core/fasta"
	"seqio/internal/openers"
	"seqio/internal/writers"
)

func newFmtCmd(g *globalState) *cobra.Command {
	var (
		width   int
		alpha   string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-emit FASTA wrapped at a fixed line width",
		Long: `Parse FASTA from a file, gzip file or stdin ("-") and write it back
out with sequences wrapped at --width columns. Input is validated
against the configured alphabet unless --lenient is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyDefaults(cmd, g, &width, &alpha, &lenient)

			a, err := alphabet.Parse(alpha)
			if err != nil {
				return err
			}
			path := pathArg(args)
			in, err := openers.Open(path)
			if err != nil {
				return err
			}
			defer in.Close()

			r := fasta.NewReaderOptions(in, fasta.Options{Alphabet: a, Strict: !lenient})
			w := fasta.NewWriter(cmd.OutOrStdout())
			w.Width = width

			ctx := cmd.Context()
			records := 0
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := w.Write(rec); err != nil {
					if writers.IsBrokenPipe(err) {
						return nil
					}
					return err
				}
				records++
			}
			if err := w.Flush(); err != nil && !writers.IsBrokenPipe(err) {
				return err
			}
			g.log.Debug("reformatted", "file", path, "records", records, "width", width)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", fasta.DefaultWidth, "wrap column for sequence lines")
	cmd.Flags().StringVar(&alpha, "alphabet", "dna", "sequence alphabet (dna, rna, protein)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "pass out-of-alphabet symbols through")
	return cmd
}

// applyDefaults substitutes config-file defaults for flags the user
// did not set on the command line.
func applyDefaults(cmd *cobra.Command, g *globalState, width *int, alpha *string, lenient *bool) {
	if width != nil && !cmd.Flags().Changed("width") {
		*width = g.cfg.Width
	}
	if alpha != nil && !cmd.Flags().Changed("alphabet") {
		*alpha = g.cfg.Alphabet
	}
	if lenient != nil && !cmd.Flags().Changed("lenient") {
		*lenient = g.cfg.Lenient
	}
}

// pathArg maps an absent positional argument to stdin.
func pathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "-"
}
