package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"termdeck/internal/highlight"
)

func newCellsCmd(a *app) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "cells FILE",
		Short: "Print the colored cells of a source file as JSON",
		Long: `Cells tokenizes a source file and prints the cell stream used to type it
out on a slide. The language defaults to the file extension.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read source")
			}
			lang := language
			if lang == "" {
				lang = strings.TrimPrefix(filepath.Ext(args[0]), ".")
			}
			tokens, err := highlight.Tokenise(lang, string(src))
			if err != nil {
				return err
			}
			f := highlight.Formatter{Mapper: highlight.DefaultMapper(), LineNumbers: a.cfg.LineNumbers}
			data, err := highlight.MarshalCells(f.Format(tokens))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(data); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Language of the file (default: from extension)")
	return cmd
}
