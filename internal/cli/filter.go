package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "filter [query]",
		Short: "List strings matching a natural-language query",
		Long: `List strings matching a natural-language query. Recognized phrases:
  "single word", "palindromic", "longer than N characters", "containing the letter X".`,
		Args: cobra.MinimumNArgs(1),
		Run:  runFilter,
	}

	RootCmd.AddCommand(cmd)
}

func runFilter(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.ListByNaturalLanguage(cmd.Context(), query)
	if err != nil {
		exitErr("filter", err)
	}

	render(cmd.OutOrStdout(), res, func(w io.Writer) {
		writeRecordsText(w, res.Records)
		fmt.Fprintf(w, "\n%d matching %q (filters: %s)\n",
			res.Count, res.Query.Original, describeFilters(res.Query.ParsedFilters))
	})
}
