package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dcosic/portfolio/internal/apperr"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the portfolio document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, p, err := opts.setup(io.Discard)
			out := cmd.OutOrStdout()
			if err != nil {
				if e, ok := apperr.As(err); ok && len(e.Fields) > 0 {
					keys := make([]string, 0, len(e.Fields))
					for k := range e.Fields {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Fprintf(out, "  %s: %v\n", k, e.Fields[k])
					}
				}
				return err
			}

			fmt.Fprintf(out, "%s: ok (%d experiences, %d projects, %d services, %d skill peaks)\n",
				sourceName(cfg.ContentPath), len(p.Experiences), len(p.Projects), len(p.Services), len(p.Skills.Peaks))
			return nil
		},
	}
}
