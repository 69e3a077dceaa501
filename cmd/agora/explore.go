package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	aptosagora "github.com/niklabh/AptosAgora"
	"github.com/niklabh/AptosAgora/feed"
)

// newExploreCmd filters and sorts a content collection with the same engine
// the explore page uses. Records are read as a JSON array from a file or
// stdin ("-"), typically the output of repeated `get content` calls.
func newExploreCmd() *cobra.Command {
	var (
		input  string
		search string
		kind   string
		tags   []string
		sortBy string
	)
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Filter and sort a content feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			if input == "-" {
				r = os.Stdin
			} else {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			var items []aptosagora.ContentRecord
			if err := json.NewDecoder(r).Decode(&items); err != nil {
				return fmt.Errorf("decode content records: %w", err)
			}

			out := feed.Apply(items, feed.Filter{
				SearchTerm: search,
				Kind:       kind,
				Tags:       tags,
				SortBy:     feed.SortOrder(sortBy),
			})
			return printJSON(out)
		},
	}
	cmd.Flags().StringVar(&input, "input", "-", "JSON array of content records, or - for stdin")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title/description search")
	cmd.Flags().StringVar(&kind, "type", "", "keep only this content type")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "keep items with any of these tags (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort", "recent", "sort order: recent|popular")
	return cmd
}
