// Package cli implements the barista command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Victor-armando18/beverage-commercial/internal/catalog"
	"github.com/Victor-armando18/beverage-commercial/internal/config"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure/money"
	"github.com/Victor-armando18/beverage-commercial/internal/logging"
)

const name = "barista"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
)

// state is shared by the commands once Before has run.
type state struct {
	cfg   config.Config
	menu  *catalog.Registry
	money *money.Formatter
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewCommand builds the root command writing its output to w.
func NewCommand(w io.Writer) *cli.Command {
	st := &state{}

	return &cli.Command{
		Name:    name,
		Usage:   "Price drinks built from a base and a stack of condiments",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Path to a YAML catalog with extra drinks and condiments",
			},
			&cli.StringFlag{
				Name:  "rules-version",
				Usage: "Rule pack version used to price orders",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, st.init(cmd)
		},
		Commands: []*cli.Command{
			demoCmd(st),
			orderCmd(st),
			menuCmd(st),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDemo(cmd.Writer, st)
		},
	}
}

func (st *state) init(cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := cmd.String("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if v := cmd.String("rules-version"); v != "" {
		cfg.RulesVersion = v
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)

	menu := catalog.New()
	if cfg.CatalogPath != "" {
		if err := menu.LoadFile(cfg.CatalogPath); err != nil {
			return err
		}
	}

	formatter, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		return err
	}

	st.cfg = cfg
	st.menu = menu
	st.money = formatter

	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"currency", cfg.Currency,
		"rules_version", cfg.RulesVersion)
	return nil
}
