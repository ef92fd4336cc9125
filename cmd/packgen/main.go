// Command packgen packs a Unicode break-property table (word break or line
// break) into compact range data embedded in a generated Go source file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/breakdata/packgen/internal/gen"
)

// Usage errors exit with a different status than data errors so callers can
// tell a bad invocation from a bad table.
const (
	dataExitCode  = 1
	usageExitCode = 2
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

var (
	words    bool
	lines    bool
	input    string
	output   string
	dry      bool
	logLevel string
)

var root = &cobra.Command{
	Use:           "packgen (--words | --lines) --input FILE (--output FILE | --dry)",
	Short:         "packgen packs Unicode break-property tables into compact range data.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	root.Flags().BoolVar(&words, "words", false, "process a word-break property table")
	root.Flags().BoolVar(&lines, "lines", false, "process a line-break property table")
	root.Flags().StringVar(&input, "input", "", "path to the source property table")
	root.Flags().StringVar(&output, "output", "", "path of the generated source file")
	root.Flags().BoolVar(&dry, "dry", false, "print the generated source to stdout instead of writing it")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error, off)")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
}

func run(cmd *cobra.Command, _ []string) error {
	set, err := selectedSet()
	if err != nil {
		return err
	}
	if input == "" {
		return &usageError{msg: "--input is required"}
	}
	if output == "" && !dry {
		return &usageError{msg: "--output is required unless --dry is set"}
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "packgen",
		Level:  hclog.LevelFromString(logLevel),
		Output: cmd.ErrOrStderr(),
	})

	r := &gen.Runner{
		Set:    set,
		Input:  input,
		Output: output,
		Dry:    dry,
		Logger: logger,
		Stdout: cmd.OutOrStdout(),
	}
	return r.Run()
}

// selectedSet maps the family selector flags to a property set. Exactly one
// selector must be given.
func selectedSet() (gen.PropertySet, error) {
	switch {
	case words && lines:
		return gen.PropertySet{}, &usageError{msg: "--words and --lines are mutually exclusive"}
	case words:
		return gen.WordBreak, nil
	case lines:
		return gen.LineBreak, nil
	default:
		return gen.PropertySet{}, &usageError{msg: "one of --words or --lines is required"}
	}
}

func main() {
	err := root.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "packgen:", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(os.Stderr, root.UsageString())
		os.Exit(usageExitCode)
	}
	os.Exit(dataExitCode)
}
