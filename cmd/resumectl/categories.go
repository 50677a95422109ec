package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/category"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category ids and labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Category"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, e := range category.All() {
				table.Append([]string{strconv.Itoa(e.ID), e.Label})
			}
			table.Render()
			return nil
		},
	}
}
