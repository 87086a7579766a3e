package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/string-analyzer/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored strings",
		Long:  "List stored strings. Every filter given must match.",
		Run:   runList,
	}

	addFilterFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("palindrome", false, "Filter by palindrome (--palindrome=false for non-palindromes)")
	cmd.Flags().Int("min-length", 0, "Minimum length (inclusive)")
	cmd.Flags().Int("max-length", 0, "Maximum length (inclusive)")
	cmd.Flags().IntP("word-count", "w", 0, "Exact word count")
	cmd.Flags().StringP("contains", "c", "", "Single character the value must contain")
}

// listFilters builds filters from the flags the user actually set.
func listFilters(cmd *cobra.Command) model.Filters {
	var f model.Filters
	flags := cmd.Flags()

	if flags.Changed("palindrome") {
		b, _ := flags.GetBool("palindrome")
		f.IsPalindrome = &b
	}
	if flags.Changed("min-length") {
		n, _ := flags.GetInt("min-length")
		f.MinLength = &n
	}
	if flags.Changed("max-length") {
		n, _ := flags.GetInt("max-length")
		f.MaxLength = &n
	}
	if flags.Changed("word-count") {
		n, _ := flags.GetInt("word-count")
		f.WordCount = &n
	}
	if flags.Changed("contains") {
		c, _ := flags.GetString("contains")
		f.ContainsCharacter = &c
	}
	return f
}

func runList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.List(cmd.Context(), listFilters(cmd))
	if err != nil {
		exitErr("list", err)
	}

	render(cmd.OutOrStdout(), res, func(w io.Writer) {
		writeRecordsText(w, res.Records)
		fmt.Fprintf(w, "\n%d matching (filters: %s)\n", res.Count, describeFilters(res.Filters))
	})
}
