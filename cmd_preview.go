package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"termdeck/internal/deck"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		width int
		theme string
	)
	cmd := &cobra.Command{
		Use:   "preview FILE|DIR",
		Short: "Print each slide's markdown rendered for reading",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Read(args[0])
			if err != nil {
				return err
			}

			styleOpt := glamour.WithAutoStyle()
			if theme != "auto" {
				styleOpt = glamour.WithStandardStyle(theme)
			}
			r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
			if err != nil {
				return errors.Wrap(err, "markdown renderer")
			}

			out := cmd.OutOrStdout()
			chunks := deck.SplitSource(d.Source)
			for i, chunk := range chunks {
				rendered, err := r.Render(chunk)
				if err != nil {
					return errors.Wrapf(err, "render slide %d", i+1)
				}
				fmt.Fprintf(out, "── slide %d/%d ──\n%s\n", i+1, len(chunks), rendered)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Word wrap width")
	cmd.Flags().StringVar(&theme, "style", "auto", "Glamour style (auto, dark, light, notty, ascii)")
	return cmd
}
