// ABOUTME: popup subcommand running the interactive terminal popup
// ABOUTME: Drives the popup controller for a fixed page through Bubble Tea

package main

import (
	"context"

	"discussions-app-api/core/popup"
	discussions "discussions-app-api/discussions-lib"
	"discussions-app-api/infrastructure/page"
	"discussions-app-api/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var popupTitle string

var popupCmd = &cobra.Command{
	Use:   "popup <url>",
	Short: "Open the interactive discussions popup for a URL",
	Long: `Open the interactive discussions popup for a URL.

Keyboard shortcuts:
  tab, ←/→   Switch between Hacker News and Reddit
  1/2/3      Toggle the URL, Title and Domain search modes
  q          Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runPopup,
}

func init() {
	popupCmd.Flags().StringVar(&popupTitle, "title", "", "page title for the title search mode (default: fetched from the page)")
}

func runPopup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tab, err := page.NewStaticTab(args[0], popupTitle)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	client, err := newClient(cfg, logger, discussions.WithTabQuerier(tab))
	if err != nil {
		return err
	}
	defer client.Close()

	ctrl, err := popup.NewController(popup.Config{
		Searcher: client.Service(),
		Tabs:     tab,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(tui.NewModel(ctx, ctrl), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
