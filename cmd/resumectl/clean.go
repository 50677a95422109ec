package main

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <file|->",
		Short: "Print the normalized text of a resume",
		Long:  `Extracts the text of a PDF or TXT file and prints it after normalization. "-" reads plain text from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := filepath.Base(args[0])
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				name = "stdin.txt"
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			raw, err := resume.ExtractText(name, mime.TypeByExtension(filepath.Ext(name)), data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), nlp.CleanResume(raw))
			return err
		},
	}
}
