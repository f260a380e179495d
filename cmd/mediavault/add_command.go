package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smymedia/mediavault/internal/domain"
)

func newAddCommand(ctx *appContext) *cobra.Command {
	var (
		urlFlag      string
		typeFlag     string
		statusFlag   string
		categoryFlag string
		tagsFlag     []string
		ratingFlag   int
		yearFlag     int
		platformFlag string
		authorFlag   string
		notesFlag    string
		favFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an entry to the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			draft := domain.Draft{
				Title:      args[0],
				URL:        urlFlag,
				Type:       domain.MediaType(typeFlag),
				Status:     domain.MediaStatus(statusFlag),
				Category:   categoryFlag,
				Tags:       tagsFlag,
				Year:       yearFlag,
				Platform:   platformFlag,
				Author:     authorFlag,
				Notes:      notesFlag,
				IsFavorite: favFlag,
			}
			if cmd.Flags().Changed("rating") {
				draft.Rating = &ratingFlag
			}

			item, err := ctx.vault.Add(draft)
			if err != nil {
				return err
			}

			fmt.Printf("Added %q (%s)\n", item.Title, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&urlFlag, "url", "u", "", "Link to the media resource (required)")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "other", "Media type")
	cmd.Flags().StringVarP(&statusFlag, "status", "s", "to-watch", "Status")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category label")
	cmd.Flags().StringSliceVar(&tagsFlag, "tag", nil, "Tag (repeatable)")
	cmd.Flags().IntVar(&ratingFlag, "rating", 0, "Rating, 1-5 stars")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "Release year")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Platform (Netflix, Steam, ...)")
	cmd.Flags().StringVar(&authorFlag, "author", "", "Author (books)")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "Personal notes")
	cmd.Flags().BoolVar(&favFlag, "favorite", false, "Mark as favorite")
	cmd.MarkFlagRequired("url")

	return cmd
}
