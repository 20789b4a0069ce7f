package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/config"
	"github.com/litescript/ls-missionplan/internal/history"
	"github.com/litescript/ls-missionplan/internal/logging"
	"github.com/litescript/ls-missionplan/internal/menu"
	"github.com/litescript/ls-missionplan/internal/planner"
	"github.com/litescript/ls-missionplan/internal/report"
	"github.com/litescript/ls-missionplan/internal/state"
	"github.com/litescript/ls-missionplan/internal/ui"
	"github.com/litescript/ls-missionplan/internal/version"
)

// app holds what every command needs once flags are parsed.
type app struct {
	cfg     config.Config
	cat     *catalog.Catalog
	logger  *logging.Logger
	history *history.Store
	svc     *planner.Service

	// isTTY reports whether w is an interactive terminal.
	isTTY func(w io.Writer) bool
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	a := &app{isTTY: isTerminal}
	var (
		configFile string
		tuiMode    bool
	)

	root := &cobra.Command{
		Use:   "ls-missionplan",
		Short: "Rocket mission feasibility planner",
		Long: `ls-missionplan estimates whether a rocket can deliver a payload to the Moon,
Mars or Titan, which profile (direct, perigee kicks, gravity assist, orbital
refueling, kick stage) makes it work, and when the next launch windows open.

Without a subcommand it runs the interactive numbered menu; --tui starts the
full-screen planner instead.

Settings come from flags, then ` + config.EnvPrefix + `_* environment variables
(e.g. ` + config.EnvPrefix + `_LOG_LEVEL), then the --config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if tuiMode {
				return a.runTUI(cmd)
			}
			return a.runMenu(cmd)
		},
	}

	def := config.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (YAML, TOML or JSON)")
	pf.String(config.KeyLogLevel, def.LogLevel, "Log level (debug, info, warn, error)")
	pf.String(config.KeyReportDir, def.ReportDir, "Directory for saved mission reports")
	pf.String(config.KeyHistory, def.HistoryPath, "SQLite mission history file (empty disables history)")
	pf.Int(config.KeyWindows, def.WindowCount, "Number of launch windows to project")
	pf.String(config.KeyCatalog, def.CatalogPath, "YAML rocket and destination catalog (empty uses the stock catalog)")
	root.Flags().BoolVar(&tuiMode, "tui", false, "Run the full-screen planner")

	root.AddCommand(
		a.listCmd(),
		a.planCmd(),
		a.historyCmd(),
		versionCmd(),
	)
	return root
}

// setup resolves configuration and opens shared resources.
func (a *app) setup(cmd *cobra.Command, configFile string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.cat, err = cfg.Catalog()
	if err != nil {
		return err
	}

	a.logger = logging.New(a.cfg.Level())
	if a.cfg.CatalogPath != "" {
		a.logger.Debug("catalog from %s", a.cfg.CatalogPath)
	}

	if a.cfg.HistoryPath != "" {
		store, err := history.Open(a.cfg.HistoryPath)
		if err != nil {
			// History is optional; planning still works without it.
			a.logger.Warn("history disabled: %v", err)
		} else {
			a.history = store
			a.logger.Debug("history at %s", a.cfg.HistoryPath)
		}
	}

	session := state.NewManager(state.Config{MaxEntries: a.cfg.SessionLimit})
	a.svc = planner.New(a.cat, a.cfg, session, a.history, a.logger)
	return nil
}

func (a *app) teardown() error {
	if a.history == nil {
		return nil
	}
	err := a.history.Close()
	a.history = nil
	return err
}

func (a *app) styles(w io.Writer) report.Styles {
	return report.NewStyles(a.isTTY(w))
}

func (a *app) runMenu(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	m := menu.New(a.svc, cmd.InOrStdin(), out, a.styles(out))
	return m.Run(cmd.Context())
}

func (a *app) runTUI(cmd *cobra.Command) error {
	if !a.isTTY(os.Stdout) {
		return errors.New("--tui needs an interactive terminal")
	}

	// Log lines would tear the alternate screen.
	a.logger.SetOutput(io.Discard)

	model := ui.New(cmd.Context(), a.svc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func (a *app) listCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available rockets and destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				return a.cat.WriteYAML(out)
			}
			report.WriteCatalog(out, a.cat, a.styles(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the catalog as YAML, the format --catalog reads")
	return cmd
}

func (a *app) planCmd() *cobra.Command {
	var (
		rocketRef string
		bodyRef   string
		date      string
		save      bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Evaluate one mission non-interactively",
		Example: `  ls-missionplan plan --rocket starship --body mars --payload 100000
  ls-missionplan plan --rocket 4 --body 2 --date 2026-06-01 --json
  ls-missionplan plan --catalog fleet.yaml --rocket fh --body venus`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rocket, err := a.cat.LookupRocket(rocketRef)
			if err != nil {
				return err
			}
			body, err := a.cat.LookupBody(bodyRef)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			outcome, err := a.svc.Plan(ctx, a.svc.Request(rocket, body, date, a.cfg.PayloadKg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := report.Export(outcome.Result, time.Now().UTC()).WriteJSON(out); err != nil {
					return fmt.Errorf("write JSON: %w", err)
				}
			} else {
				report.WriteSummary(out, outcome.Result, a.styles(out))
			}

			if save {
				// Save failures never change the result.
				if path, err := a.svc.Save(ctx, outcome); err == nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Saved mission summary to %s\n", path)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&rocketRef, "rocket", "r", "1", "Rocket by menu number, code or name")
	f.StringVarP(&bodyRef, "body", "b", "1", "Destination by menu number, code or name")
	f.StringVarP(&date, "date", "d", "", "Launch search start date, YYYY-MM-DD (defaults to the configured start-date)")
	f.Float64P(config.KeyPayload, "p", 0, "Payload mass in kg")
	f.BoolVar(&save, "save", false, "Save a report file to --report-dir")
	f.BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently evaluated missions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.history == nil {
				return errors.New("history is disabled; pass --history <file>")
			}

			ctx := cmd.Context()
			records, err := a.history.Recent(ctx, limit)
			if err != nil {
				return err
			}
			total, feasible, err := a.history.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeHistory(out, records)
			fmt.Fprintf(out, "\n%d missions recorded, %d feasible\n", total, feasible)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of missions to show")
	return cmd
}

func writeHistory(w io.Writer, records []history.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No missions recorded yet")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tROCKET\tTARGET\tPAYLOAD KG\tSTRATEGY\tMARGIN\tOK\tREPORT")
	for _, r := range records {
		ok := "no"
		if r.Success {
			ok = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.RocketCode, r.BodyCode,
			r.PayloadKg, r.Strategy, r.Margin.StringFixed(2), ok, r.ReportPath)
	}
	tw.Flush()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ls-missionplan v%s\n", version.Version)
		},
	}
}
