package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/string-analyzer/internal/model"
)

// render writes v in the selected output format. text renders the plain-text form.
func render(w io.Writer, v interface{}, text func(io.Writer)) {
	if err := encode(w, v, text); err != nil {
		exitErr("write output", err)
	}
}

func encode(w io.Writer, v interface{}, text func(io.Writer)) error {
	switch formatFlag {
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "text":
		text(w)
		return nil
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}

func writeRecordText(w io.Writer, r *model.StringRecord) {
	p := r.Properties
	fmt.Fprintf(w, "value:             %q\n", r.Value)
	fmt.Fprintf(w, "id:                %s\n", r.ID)
	fmt.Fprintf(w, "length:            %d\n", p.Length)
	fmt.Fprintf(w, "is_palindrome:     %t\n", p.IsPalindrome)
	fmt.Fprintf(w, "unique_characters: %d\n", p.UniqueCharacters)
	fmt.Fprintf(w, "word_count:        %d\n", p.WordCount)
	fmt.Fprintf(w, "created_at:        %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}

func writeRecordsText(w io.Writer, records []model.StringRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLENGTH\tWORDS\tPALINDROME\tVALUE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%t\t%q\n",
			r.ID[:8], r.Properties.Length, r.Properties.WordCount, r.Properties.IsPalindrome, r.Value)
	}
	tw.Flush()
}

func describeFilters(f model.Filters) string {
	var parts []string
	if f.IsPalindrome != nil {
		parts = append(parts, fmt.Sprintf("is_palindrome=%t", *f.IsPalindrome))
	}
	if f.MinLength != nil {
		parts = append(parts, fmt.Sprintf("min_length=%d", *f.MinLength))
	}
	if f.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max_length=%d", *f.MaxLength))
	}
	if f.WordCount != nil {
		parts = append(parts, fmt.Sprintf("word_count=%d", *f.WordCount))
	}
	if f.ContainsCharacter != nil {
		parts = append(parts, fmt.Sprintf("contains_character=%q", *f.ContainsCharacter))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
