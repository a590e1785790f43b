package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cloudbox/internal/domain"
	"cloudbox/internal/projection"
	"cloudbox/internal/service"
)

func newListCommand() *cobra.Command {
	var (
		path    string
		search  string
		sortArg string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the listing of a folder from the seed collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseSortKey(sortArg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, err := buildApp(ctx, opts.cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			content, err := a.fileSvc.ListFiles(ctx, service.ListParams{Path: path, Search: search, Sort: key})
			if err != nil {
				return err
			}

			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), content)
			}
			return printListing(cmd.OutOrStdout(), content.Items)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&path, "path", "/", "current folder path (string prefix)")
	flags.StringVarP(&search, "search", "q", "", "case-insensitive name filter")
	flags.StringVar(&sortArg, "sort", "name", "sort key: name, size, date or type")
	flags.BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func newStatsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate statistics of the seed collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := buildApp(ctx, opts.cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			agg := a.analytics.GetStats(ctx)
			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), agg)
			}

			out := cmd.OutOrStdout()
			quota := a.analytics.GetQuotaInfo(ctx)
			fmt.Fprintf(out, "Records:   %d (%d files, %d folders)\n", agg.Total, agg.Files, agg.Folders)
			fmt.Fprintf(out, "Shared:    %d\n", agg.Shared)
			fmt.Fprintf(out, "Favorites: %d\n", agg.Favorites)
			fmt.Fprintf(out, "Trashed:   %d\n", agg.Trashed)
			fmt.Fprintf(out, "Used:      %s of %s (%.2f%%)\n",
				humanize.IBytes(uint64(quota.UsedSpace)), humanize.IBytes(uint64(quota.TotalSpace)), quota.UsagePercent)

			fmt.Fprintln(out, "\nRecently modified:")
			if err := printListing(out, agg.Recent); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nLargest files:")
			return printListing(out, agg.Largest)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func printListing(w io.Writer, records []domain.FileRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tSIZE\tTYPE\tMODIFIED\tPATH")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			r.Kind,
			projection.FormatSize(r.Size),
			r.MIMEType,
			r.ModifiedAt.Format("2006-01-02"),
			r.Path,
		)
	}
	return tw.Flush()
}

func writeIndentedJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
