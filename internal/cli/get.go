package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <value>",
		Short: "Retrieve a stored string by exact value",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.GetByValue(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}

	render(cmd.OutOrStdout(), rec, func(w io.Writer) { writeRecordText(w, rec) })
}
