package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termdeck/internal/banner"
	"termdeck/internal/deck"
	"termdeck/internal/logging"
	"termdeck/internal/termsize"
	"termdeck/internal/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	var font string
	cmd := &cobra.Command{
		Use:   "play FILE|DIR",
		Short: "Present a deck full screen",
		Long: `Play builds every slide of the deck and shows it full screen.

Keys: space, n, l, right or page down for the next slide; b, h, left or
page up for the previous one; r restarts the slide; q quits.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, true)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0], a.deckOptions(termsize.Stdout(), banner.Figlet{Font: font}))
			if err != nil {
				return err
			}

			m := tui.New(d, tui.Options{
				FPS:    a.cfg.FPS,
				Resume: a.cfg.ResumeOnReentry,
				Log:    logging.New("tui"),
			})
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&font, "font", banner.DefaultFont, "Figlet font for level 1 headings")
	return cmd
}
