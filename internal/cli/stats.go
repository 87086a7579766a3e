package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), cfg.Database.Path)
	if err != nil {
		exitErr("stats", err)
	}

	render(cmd.OutOrStdout(), stats, func(w io.Writer) {
		fmt.Fprintf(w, "database:       %s (%s)\n", stats.DBPath, humanize.Bytes(uint64(stats.DBSizeBytes)))
		fmt.Fprintf(w, "strings:        %s\n", humanize.Comma(int64(stats.TotalStrings)))
		fmt.Fprintf(w, "palindromes:    %s\n", humanize.Comma(int64(stats.Palindromes)))
		fmt.Fprintf(w, "average length: %.1f\n", stats.AverageLength)
		fmt.Fprintf(w, "longest:        %d\n", stats.LongestLength)
		for _, wc := range stats.WordCounts {
			fmt.Fprintf(w, "  %d word(s): %d\n", wc.WordCount, wc.Count)
		}
	})
}
