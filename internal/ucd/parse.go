package ucd

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// MaxCodePoint is the highest valid Unicode scalar value.
const MaxCodePoint = 0x10FFFF

// Range is a span of codepoints carrying one property value. The property
// is a reference into the registry the range was parsed against; the
// registry outlives every range built from it.
type Range struct {
	Start rune
	End   rune
	Prop  *Enum
}

// LineBreakNormalizations folds line-break classes that behave identically
// for packing purposes into their canonical class. The keys are line-break
// class names only; word-break tables run without a normalization table.
var LineBreakNormalizations = map[string]string{
	"NL": "BK",
	"AI": "AL",
	"SA": "AL",
	"SG": "AL",
	"XX": "AL",
	"CJ": "NS",
}

// ParseTable reads a break-property table. The leading run of lines up to
// the first blank line is returned verbatim as the file header; after that,
// '#' comments are stripped, blank lines are skipped, and every remaining
// line must have the shape "<cp>;<prop>" or "<lo>..<hi>;<prop>".
//
// When norm maps a raw property name to a canonical one, the range is
// tagged with the canonical value and the raw spelling is recorded on it
// via AddNormalized. Any malformed line aborts the parse.
func ParseTable(src []byte, norm map[string]string, enums *Enums) (header []string, ranges []Range, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)

	inHeader := true
	for lineNo := 1; scanner.Scan(); lineNo++ {
		raw := scanner.Text()

		if inHeader {
			if strings.TrimSpace(raw) == "" {
				inHeader = false
				continue
			}
			header = append(header, raw)
			continue
		}

		line := raw
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r, err := parseEntry(line, norm, enums)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ranges = append(ranges, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan table: %w", err)
	}

	return header, ranges, nil
}

func parseEntry(line string, norm map[string]string, enums *Enums) (Range, error) {
	left, right, ok := strings.Cut(line, ";")
	if !ok {
		return Range{}, fmt.Errorf("missing ';' in %q", line)
	}

	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return Range{}, fmt.Errorf("malformed entry %q", line)
	}

	lo, hi, err := parseSpan(left)
	if err != nil {
		return Range{}, err
	}

	var prop *Enum
	if target, ok := norm[right]; ok {
		prop = enums.AddNormalized(target, right)
	} else {
		prop = enums.Add(right)
	}

	return Range{Start: lo, End: hi, Prop: prop}, nil
}

func parseSpan(s string) (rune, rune, error) {
	first, second, ok := strings.Cut(s, "..")
	if !ok {
		r, err := parseHex(s)
		return r, r, err
	}

	lo, err := parseHex(first)
	if err != nil {
		return 0, 0, err
	}
	hi, err := parseHex(second)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("descending range %q", s)
	}
	return lo, hi, nil
}

func parseHex(s string) (rune, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	if u > MaxCodePoint {
		return 0, fmt.Errorf("code point %q out of range", s)
	}
	return rune(u), nil
}
