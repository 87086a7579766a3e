package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <value>",
		Short: "Delete a stored string (permanent)",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteByValue(cmd.Context(), args[0]); err != nil {
		exitErr("rm", err)
	}

	res := removeResult{OK: true, Value: args[0]}
	render(cmd.OutOrStdout(), res, func(w io.Writer) {
		fmt.Fprintf(w, "deleted %q\n", res.Value)
	})
}

type removeResult struct {
	OK    bool   `json:"ok" yaml:"ok"`
	Value string `json:"value" yaml:"value"`
}
