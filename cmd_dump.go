package main

import (
	"encoding/json"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"termdeck/internal/banner"
	"termdeck/internal/deck"
	"termdeck/internal/slide"
)

type slideDump struct {
	Index      int           `json:"index"`
	Flags      slide.Flags   `json:"flags"`
	Foreground string        `json:"foreground"`
	Background string        `json:"background"`
	Effect     string        `json:"effect,omitempty"`
	Elements   []elementDump `json:"elements"`
}

type elementDump struct {
	Kind  slide.Kind `json:"kind"`
	Size  int        `json:"size"`
	Width int        `json:"width,omitempty"`
	Delay int        `json:"delay,omitempty"`
	Text  string     `json:"text"`
}

func dumpSlides(slides []*slide.Slide) []slideDump {
	out := make([]slideDump, 0, len(slides))
	for i, s := range slides {
		sd := slideDump{
			Index:      i + 1,
			Flags:      s.Flags,
			Foreground: s.Foreground.String(),
			Background: s.Background.String(),
			Effect:     s.Effect,
		}
		for _, e := range s.Elements {
			ed := elementDump{Kind: e.Kind(), Size: e.Size(), Text: ansi.Strip(e.Render())}
			if w, ok := e.(slide.Wide); ok {
				ed.Width = w.Width()
			}
			if l, ok := e.(slide.Live); ok {
				ed.Delay = l.Delay()
			}
			sd.Elements = append(sd.Elements, ed)
		}
		out = append(out, sd)
	}
	return out
}

func newDumpCmd(a *app) *cobra.Command {
	var (
		cols, rows int
		figlet     bool
	)
	cmd := &cobra.Command{
		Use:   "dump FILE|DIR",
		Short: "Print the slide model as JSON",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var b slide.Banner = slide.PlainBanner{}
			if figlet {
				b = banner.Figlet{}
			}
			d, err := deck.Load(args[0], a.deckOptions(slide.FixedTerminal{Cols: cols, Rows: rows}, b))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dumpSlides(d.Slides))
		},
	}
	f := cmd.Flags()
	f.IntVar(&cols, "cols", 80, "Terminal width used for sizing")
	f.IntVar(&rows, "rows", 24, "Terminal height used for sizing")
	f.BoolVar(&figlet, "figlet", false, "Size level 1 headings as figlet banners")
	return cmd
}
