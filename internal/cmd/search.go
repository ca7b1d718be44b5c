package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pixgallery/internal/domain"
	"pixgallery/internal/pixabay"
	"pixgallery/internal/search"
	"pixgallery/internal/ui/views"
)

func newSearchCmd(v *viper.Viper) *cobra.Command {
	var pages int
	var asJSON bool

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print search results without starting the gallery",
		Long: `Run a query and print the results.

Pages are fetched one after another the same way the gallery's load more
button does, stopping early once the result set is exhausted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(v, nil)
			if err != nil {
				return err
			}
			client := pixabay.NewClient(cfg.API)
			lifecycle := search.New(client, search.WithContext(cmd.Context()))
			defer lifecycle.Close()

			st := collectPages(lifecycle, strings.Join(args, " "), pages)
			if st.Error != "" {
				return errors.New(st.Error)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			return writeTable(cmd.OutOrStdout(), st)
		},
	}

	searchCmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages to fetch")
	searchCmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return searchCmd
}

// collectPages submits query and requests more until pages are loaded,
// the results run out or a fetch fails
func collectPages(lifecycle *search.Lifecycle, query string, pages int) domain.SearchState {
	lifecycle.Fetch(lifecycle.Submit(query))
	for i := 1; i < pages; i++ {
		st := lifecycle.State()
		if !st.HasMore || st.Error != "" {
			break
		}
		lifecycle.Fetch(lifecycle.RequestMore())
	}
	return lifecycle.State()
}

type jsonImage struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	LargeURL string `json:"large_url"`
	PageURL  string `json:"page_url"`
	Tags     string `json:"tags"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	User     string `json:"user"`
}

type jsonResult struct {
	Query     string      `json:"query"`
	Page      int         `json:"page"`
	TotalHits int         `json:"total_hits"`
	HasMore   bool        `json:"has_more"`
	Images    []jsonImage `json:"images"`
}

func writeJSON(w io.Writer, st domain.SearchState) error {
	out := jsonResult{
		Query:     st.Query,
		Page:      st.Page,
		TotalHits: st.TotalHits,
		HasMore:   st.HasMore,
		Images:    make([]jsonImage, 0, len(st.Items)),
	}
	for _, img := range st.Items {
		out.Images = append(out.Images, jsonImage{
			ID:       img.ID,
			URL:      img.URL,
			LargeURL: img.LargeURL,
			PageURL:  img.PageURL,
			Tags:     img.AltText,
			Width:    img.Width,
			Height:   img.Height,
			User:     img.User,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, st domain.SearchState) error {
	if st.IsEmpty && len(st.Items) == 0 {
		_, err := fmt.Fprintln(w, views.EmptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSIZE\tTAGS\tUSER\tURL")
	for _, img := range st.Items {
		fmt.Fprintf(tw, "%d\t%dx%d\t%s\t%s\t%s\n", img.ID, img.Width, img.Height, img.AltText, img.User, img.LargeURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	more := "end of results"
	if st.HasMore {
		more = "more available"
	}
	_, err := fmt.Fprintf(w, "\n%d of %d images, page %d, %s\n", len(st.Items), st.TotalHits, st.Page, more)
	return err
}
