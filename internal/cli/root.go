package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dcosic/portfolio/internal/config"
	"github.com/dcosic/portfolio/internal/content"
	"github.com/dcosic/portfolio/internal/logger"
)

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are shared by every subcommand.
type options struct {
	contentPath string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve or export the single-page portfolio",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.contentPath, "content", "", "portfolio YAML (defaults to $PORTFOLIO_CONTENT, then the embedded document)")

	cmd.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newValidateCmd(opts),
		newTraceCmd(),
	)
	return cmd
}

// setup loads config, builds the logger and reads the portfolio.
func (o *options) setup(logOut io.Writer) (config.Config, *logrus.Logger, *content.Portfolio, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if o.contentPath != "" {
		cfg.ContentPath = o.contentPath
	}
	log := logger.New(cfg, logOut)

	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		return cfg, log, nil, err
	}
	log.WithField("source", sourceName(cfg.ContentPath)).Debug("content loaded")
	return cfg, log, p, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
