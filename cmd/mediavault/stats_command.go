package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/smymedia/mediavault/internal/domain"
)

func newStatsCommand(ctx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			s := ctx.vault.Stats()

			rows := [][]string{
				{"Total", fmt.Sprintf("%d", s.Total)},
				{"Favorites", fmt.Sprintf("%d", s.Favorites)},
				{"Completed", fmt.Sprintf("%d", s.Completed)},
				{"To Watch", fmt.Sprintf("%d", s.ToWatch)},
			}
			fmt.Println(renderTable([]string{"Metric", "Count"}, rows,
				[]columnAlignment{alignLeft, alignRight}))

			typeRows := make([][]string, 0, len(domain.MediaTypes))
			for _, t := range domain.MediaTypes {
				typeRows = append(typeRows, []string{string(t), fmt.Sprintf("%d", s.ByType[t])})
			}
			fmt.Println(renderTable([]string{"Type", "Count"}, typeRows,
				[]columnAlignment{alignLeft, alignRight}))

			statusRows := make([][]string, 0, len(domain.MediaStatuses))
			for _, st := range domain.MediaStatuses {
				statusRows = append(statusRows, []string{string(st), fmt.Sprintf("%d", s.ByStatus[st])})
			}
			fmt.Println(renderTable([]string{"Status", "Count"}, statusRows,
				[]columnAlignment{alignLeft, alignRight}))

			if len(s.ByCategory) > 0 {
				cats := make([]string, 0, len(s.ByCategory))
				for cat := range s.ByCategory {
					cats = append(cats, cat)
				}
				sort.Strings(cats)

				catRows := make([][]string, 0, len(cats))
				for _, cat := range cats {
					catRows = append(catRows, []string{cat, fmt.Sprintf("%d", s.ByCategory[cat])})
				}
				fmt.Println(renderTable([]string{"Category", "Count"}, catRows,
					[]columnAlignment{alignLeft, alignRight}))
			}

			u := ctx.store.Usage()
			fmt.Printf("Storage: %.2f MB used (%.0f%% of budget)\n",
				float64(u.UsedBytes)/(1024*1024), u.Percent)
			return nil
		},
	}
}
