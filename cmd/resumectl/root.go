package main

import (
	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Resume Analyzer CLI",
		Long:          `resumectl predicts the job category of a resume (PDF or TXT) with the same pipeline as the HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			logger.Setup(cfg.LogLevel, cfg.LogFormat)
		},
	}
	root.AddCommand(newClassifyCmd(), newCleanCmd(), newCategoriesCmd())
	return root
}
