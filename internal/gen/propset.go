// Package gen drives the table-to-source pipeline for one break-property
// family: read table, parse, process, pack, render the generated artifact.
package gen

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/breakdata/packgen/internal/ucd"
)

// PropertySet holds the per-family parameters. The two supported families
// share one pipeline; only these values differ.
type PropertySet struct {
	Name            string // family name for logs and generated comments
	Prefix          string // identifier prefix in generated code
	DefaultProperty string // property carried by any codepoint not listed
	DocURL          string // documentation reference for provenance
	Normalizations  map[string]string
}

var (
	WordBreak = PropertySet{
		Name:            "word break",
		Prefix:          "word",
		DefaultProperty: "Unknown",
		DocURL:          "https://www.unicode.org/reports/tr29/#Word_Boundaries",
	}

	LineBreak = PropertySet{
		Name:            "line break",
		Prefix:          "line",
		DefaultProperty: "AL",
		DocURL:          "https://www.unicode.org/reports/tr14/",
		Normalizations:  ucd.LineBreakNormalizations,
	}
)

// Runner runs the pipeline for one family over one input table. In dry
// mode the rendered artifact goes to Stdout and the filesystem is left
// untouched; otherwise it is written to Output only after the whole
// pipeline has succeeded.
type Runner struct {
	Set    PropertySet
	Input  string
	Output string
	Dry    bool
	Logger hclog.Logger
	Stdout io.Writer
}

func (r *Runner) Run() error {
	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	src, err := os.ReadFile(r.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", r.Input, err)
	}

	enums := ucd.NewEnums()
	header, parsed, err := ucd.ParseTable(src, r.Set.Normalizations, enums)
	if err != nil {
		return fmt.Errorf("parse %s: %w", r.Input, err)
	}
	logger.Debug("parsed table", "family", r.Set.Name, "lines", len(parsed), "properties", enums.Len())

	def := enums.Add(r.Set.DefaultProperty)

	ranges, err := ucd.Process(parsed, def)
	if err != nil {
		return err
	}

	packed, err := ucd.Pack(ranges, enums)
	if err != nil {
		return err
	}
	logger.Info("packed ranges",
		"family", r.Set.Name,
		"ranges", len(ranges),
		"single", packed.SingleRanges,
		"properties", packed.EnumCount,
		"bytes", len(packed.Data))

	rendered, err := render(r.Set, header, enums, packed, def)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	if r.Dry {
		out := r.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(rendered)
		return err
	}

	if err := os.WriteFile(r.Output, rendered, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.Output, err)
	}
	logger.Info("wrote output", "path", r.Output)
	return nil
}
