// Package cmd provides the CLI command structure for termide: a single
// cobra.Command accepting zero or one positional argument (spec.md §6).
package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/claudio/internal/config"
	"github.com/Iron-Ham/claudio/internal/host"
	"github.com/Iron-Ham/claudio/internal/logging"
	"github.com/Iron-Ham/claudio/internal/textbuffer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termide [file]",
	Short: "A modal terminal text editor",
	Long: `termide is a modal terminal text editor. With no arguments it opens
an empty buffer; with one argument it opens or creates that file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	logger, err := logging.NewLogger(config.ConfigDir(), logging.LevelInfo)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Close()
	logger = logger.WithComponent("editor")

	buffer, err := textbuffer.New(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	model := host.NewModel(host.Config{
		Buffer:     buffer,
		ConfigPath: config.ConfigFile(),
		Logger:     logger,
	})
	defer model.Close()

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}
