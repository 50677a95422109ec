package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/predictor"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

func newClassifyCmd() *cobra.Command {
	var (
		asJSON     bool
		modelPath  string
		classifier string
	)
	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Predict the category of a PDF or TXT resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if modelPath != "" {
				cfg.ModelPath = modelPath
			}
			if classifier != "" {
				cfg.Classifier = classifier
			}
			p, err := predictor.New(cfg)
			if err != nil {
				return fmt.Errorf("init predictor: %w", err)
			}

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			svc := resume.NewClassificationService(p, nil)
			res, err := svc.Classify(cmd.Context(), resume.Upload{
				Filename: filepath.Base(path),
				MimeType: mime.TypeByExtension(filepath.Ext(path)),
				Data:     data,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Classification)
			}
			fmt.Fprintf(out, "Predicted Category: %s\n", color.GreenString(res.Category))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the classification as JSON")
	cmd.Flags().StringVar(&modelPath, "model", "", "model file (overrides MODEL_PATH)")
	cmd.Flags().StringVar(&classifier, "classifier", "", "model or llm (overrides CLASSIFIER)")
	return cmd
}
