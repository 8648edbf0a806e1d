// Package main provides the CLI entrypoint for hilo.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hilo/internal/command"
	"github.com/verte-zerg/hilo/internal/config"
	"github.com/verte-zerg/hilo/internal/hilo"
	"github.com/verte-zerg/hilo/internal/model"
	"github.com/verte-zerg/hilo/internal/report"
	"github.com/verte-zerg/hilo/internal/tui"
)

var (
	countDecks        int
	countShoeLimit    bool
	countColdOverride bool
	countPlain        bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hilo",
		Short:         "Hi-Lo blackjack card counter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCountCmd,
	}

	rootCmd.Flags().IntVar(&countDecks, "decks", model.DefaultDecks, "decks in the shoe (1-8)")
	rootCmd.Flags().BoolVar(&countShoeLimit, "shoe-limit", true, "reject batches that exceed per-rank shoe supply")
	rootCmd.Flags().BoolVar(&countColdOverride, "cold-override", true, "treat 60+ cumulative cold cards as player-favorable")
	rootCmd.Flags().BoolVar(&countPlain, "plain", false, "line mode instead of the full-screen UI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newValuesCmd())

	return rootCmd
}

func runCountCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "decks", &countDecks, fileCfg.Shoe.Decks)
	applyBoolConfig(cmd, "shoe-limit", &countShoeLimit, fileCfg.Shoe.ShoeLimit)
	applyBoolConfig(cmd, "cold-override", &countColdOverride, fileCfg.Shoe.ColdOverride)
	applyBoolConfig(cmd, "plain", &countPlain, fileCfg.UI.Plain)

	if countDecks < model.MinDecks || countDecks > model.MaxDecks {
		logErrf("decks must be between %d and %d; using %d\n", model.MinDecks, model.MaxDecks, model.DefaultDecks)
		countDecks = model.DefaultDecks
	}

	cfg := model.Config{
		Decks:        countDecks,
		ShoeLimit:    countShoeLimit,
		ColdOverride: countColdOverride,
		Plain:        countPlain,
	}

	if cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(cmd, cfg)
	}

	program := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func runPlain(cmd *cobra.Command, cfg model.Config) error {
	out := cmd.OutOrStdout()
	session := hilo.NewSession(cfg)

	fmt.Fprintf(out, "Hi-Lo counter: %d decks, %d cards\n", session.Decks(), session.TotalCards())
	fmt.Fprintln(out, "Hi-Lo: 2-6=+1, 7-9=0, 10-A=-1")
	if err := report.RenderHelp(out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		intent := command.Parse(line)
		switch intent.Kind {
		case command.Quit:
			fmt.Fprintln(out, "Bye.")
			return nil
		case command.Help:
			if err := report.RenderHelp(out); err != nil {
				return err
			}
		case command.Status:
			if err := report.RenderStatus(out, session.Status()); err != nil {
				return err
			}
		case command.History:
			if err := report.RenderHistory(out, session.History()); err != nil {
				return err
			}
		case command.Composition:
			if err := report.RenderComposition(out, session.Composition()); err != nil {
				return err
			}
		case command.Reset:
			session.Reset()
			fmt.Fprintln(out, "Count reset.")
		case command.Cards:
			result, err := session.ProcessBatch(intent.Batch)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := report.RenderBatch(out, result); err != nil {
				return err
			}
			if err := report.RenderStatus(out, session.Status()); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values",
		Short: "Print the Hi-Lo value table",
		Args:  cobra.NoArgs,
		RunE:  runValuesCmd,
	}
}

func runValuesCmd(cmd *cobra.Command, _ []string) error {
	return report.RenderValues(cmd.OutOrStdout())
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hilo configuration
# Uncomment a value to enable it. CLI flags override config values.

[shoe]
# decks = %d             # Decks in the shoe (%d-%d)
# shoe-limit = true     # Reject batches that exceed per-rank supply
# cold-override = true  # 60+ cumulative cold cards force player-favorable

[ui]
# plain = false         # Line mode instead of the full-screen UI
`,
		model.DefaultDecks,
		model.MinDecks,
		model.MaxDecks,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
