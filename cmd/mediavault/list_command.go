package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smymedia/mediavault/internal/domain"
	"github.com/smymedia/mediavault/internal/query"
	"github.com/smymedia/mediavault/internal/search"
)

func newListCommand(ctx *appContext) *cobra.Command {
	var (
		termFlag     string
		typeFlag     string
		statusFlag   string
		categoryFlag string
		platformFlag string
		yearFlag     int
		favFlag      bool
		sortFlag     string
		descFlag     bool
		pageFlag     int
		sizeFlag     int
		fuzzyFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			items := ctx.vault.Items()

			if fuzzyFlag && termFlag != "" {
				// Fuzzy mode matches titles loosely instead of the exact
				// substring search.
				matches := search.NewIndex(items).Filter(termFlag)
				items = make([]domain.MediaItem, len(matches))
				for i, m := range matches {
					items[i] = m.Item
				}
			}

			filters := query.Filters{
				Type:     domain.MediaType(typeFlag),
				Status:   domain.MediaStatus(statusFlag),
				Category: categoryFlag,
				Platform: platformFlag,
				Year:     yearFlag,
			}
			if cmd.Flags().Changed("favorite") {
				filters.IsFavorite = &favFlag
			}

			term := termFlag
			if fuzzyFlag {
				term = "" // Already matched above; keep the fuzzy order
			}
			spec := query.SortSpec{Field: query.SortField(sortFlag), Descending: descFlag}
			view := query.Apply(items, term, filters, spec)

			page := query.Paginate(view, pageFlag, sizeFlag)
			if len(page.Items) == 0 {
				fmt.Println("No entries.")
				return nil
			}

			rows := make([][]string, 0, len(page.Items))
			for _, item := range page.Items {
				rating := ""
				if item.Rating != nil {
					rating = fmt.Sprintf("%d", *item.Rating)
				}
				fav := ""
				if item.IsFavorite {
					fav = "♥"
				}
				rows = append(rows, []string{
					item.Title,
					string(item.Type),
					string(item.Status),
					item.Category,
					rating,
					strings.Join(item.Tags, ", "),
					fav,
				})
			}

			fmt.Println(renderTable(
				[]string{"Title", "Type", "Status", "Category", "Rating", "Tags", "Fav"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Printf("Page %d of %d (%d entries)\n", page.Number, page.TotalPages, page.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVarP(&termFlag, "search", "q", "", "Search term (title, description, tags)")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Filter by media type")
	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Filter by status")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Filter by category")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Filter by platform")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "Filter by release year")
	cmd.Flags().BoolVar(&favFlag, "favorite", false, "Filter by favorite flag")
	cmd.Flags().StringVar(&sortFlag, "sort", "addedAt", "Sort field: title, addedAt, lastViewed, rating, year")
	cmd.Flags().BoolVar(&descFlag, "desc", true, "Sort descending")
	cmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	cmd.Flags().IntVar(&sizeFlag, "page-size", 20, "Entries per page: 5, 10, 20, or 50")
	cmd.Flags().BoolVar(&fuzzyFlag, "fuzzy", false, "Fuzzy title matching instead of substring search")

	return cmd
}
