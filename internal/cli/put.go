package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put [value]",
		Short: "Analyze and store a string",
		Long: "Analyze and store a string. The value can be positional args (joined by spaces) " +
			"or piped via stdin, in which case one trailing newline is dropped.",
		Run: runPut,
	}

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) {
	var value string
	if len(args) > 0 {
		value = strings.Join(args, " ")
	} else {
		if stdinIsTerminal(cmd) {
			exitErr("put", fmt.Errorf("value is required (positional arg or stdin)"))
		}
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			exitErr("read stdin", err)
		}
		value = strings.TrimSuffix(string(b), "\n")
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.Insert(cmd.Context(), value)
	if err != nil {
		exitErr("put", err)
	}

	render(cmd.OutOrStdout(), rec, func(w io.Writer) { writeRecordText(w, rec) })
}

// stdinIsTerminal reports whether the command reads from an interactive
// terminal. Input that cannot be inspected is treated as piped.
func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
