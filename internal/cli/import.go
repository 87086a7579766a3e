package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import strings from JSON",
		Long: "Import strings from JSON on stdin: an array of strings, or the record array " +
			"produced by export. Properties are recomputed; values already stored are skipped.",
		Run: runImport,
	}

	RootCmd.AddCommand(cmd)
}

// parseImport accepts a JSON array whose elements are strings or objects
// carrying a string "value".
func parseImport(data []byte) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}

	values := make([]string, 0, len(items))
	for i, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			values = append(values, s)
			continue
		}
		var rec struct {
			Value *string `json:"value"`
		}
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Value == nil {
			return nil, fmt.Errorf("item %d: expected a string or an object with a string \"value\"", i)
		}
		values = append(values, *rec.Value)
	}
	return values, nil
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		exitErr("read stdin", err)
	}

	values, err := parseImport(data)
	if err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.Import(cmd.Context(), values)
	if err != nil {
		exitErr("import", err)
	}

	render(cmd.OutOrStdout(), res, func(w io.Writer) {
		fmt.Fprintf(w, "imported %d, skipped %d\n", res.Imported, res.Skipped)
	})
}
