package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dcosic/portfolio/internal/web"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		out       string
		overwrite bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write a static export of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, p, err := opts.setup(io.Discard)
			if err != nil {
				return err
			}
			srv, err := web.New(cfg, log, p)
			if err != nil {
				return err
			}

			if out == "-" {
				return srv.RenderPage(cmd.OutOrStdout())
			}
			written, err := srv.Export(out, overwrite)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(written), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", `output directory, or "-" to print index.html`)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "write into a non-empty directory")
	return cmd
}
