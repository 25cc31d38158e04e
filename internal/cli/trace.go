package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dcosic/portfolio/internal/apperr"
	"github.com/dcosic/portfolio/internal/scroll"
)

func newTraceCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Replay a recorded scroll trace and print nav highlight changes",
		Long: `Replay a recorded scroll trace through the frame throttle and tracker.

Samples are scroll events unless they carry "event": "nav" (with "nav": index),
"menu" (toggle the mobile menu) or "close" (dismiss it). Navigation events are
always listed with their scroll target and body lock state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return apperr.Wrap(err, apperr.ErrBadRequest, "open trace")
			}
			defer f.Close()

			tr, err := scroll.DecodeTrace(f)
			if err != nil {
				return err
			}
			frames, err := scroll.NewSession(scroll.Sections).Replay(cmd.Context(), tr)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "AT\tEVENT\tSCROLL_Y\tACTIVE\tBACK_TO_TOP\tPROGRESS\tLOCKED\tTARGET")
			for _, fr := range frames {
				if !fr.Changed && fr.Event == scroll.EventScroll && !all {
					continue
				}
				target := "-"
				if fr.Target != nil {
					target = fmt.Sprintf("%.0f", *fr.Target)
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%t\t%.2f\t%t\t%s\n",
					fr.At, fr.Event, fr.ScrollY, fr.State.Active, fr.State.ShowBackToTop, fr.State.Progress, fr.BodyLocked, target)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d samples, %d frames\n", len(tr.Samples), len(frames))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every frame, not only section changes")
	return cmd
}
