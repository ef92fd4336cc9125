package ucd

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// fieldWidth is the base-36 digit count per codepoint field. Four
	// digits cover 0..36^4-1 = 1,679,615, enough for the 21-bit space.
	fieldWidth = 4

	// singleMarker replaces the end field when a range covers one codepoint.
	singleMarker = '!'

	// maxEnumValues is the capacity of the one-character property code
	// ('A'-'Z' then 'a'-'z').
	maxEnumValues = 52
)

// CapacityError reports a registry too large for the one-character property
// code. Widening the code would change the decode contract for every
// consumer, so this is fatal rather than handled.
type CapacityError struct {
	Count int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d property values exceed the %d encodable in a one-character code", e.Count, maxEnumValues)
}

// Packed is a serialized range collection plus the two counts a decoder
// needs. Each record in Data is fieldWidth base-36 digits for the start,
// then either singleMarker or fieldWidth digits for the end, then the
// property's one-character code; records abut with no delimiters.
type Packed struct {
	Data         string
	SingleRanges int
	EnumCount    int
}

// Pack serializes a processed range collection against its registry.
func Pack(ranges []Range, enums *Enums) (Packed, error) {
	if n := enums.Len(); n > maxEnumValues {
		return Packed{}, &CapacityError{Count: n}
	}

	var b strings.Builder
	b.Grow(len(ranges) * (2*fieldWidth + 1))

	singles := 0
	for _, r := range ranges {
		b.WriteString(base36(r.Start))
		if r.Start == r.End {
			b.WriteByte(singleMarker)
			singles++
		} else {
			b.WriteString(base36(r.End))
		}
		b.WriteByte(r.Prop.Code())
	}

	return Packed{
		Data:         b.String(),
		SingleRanges: singles,
		EnumCount:    enums.Len(),
	}, nil
}

// Unpack decodes a packed collection back into ranges resolved against
// enums. It is the authoritative statement of the decode contract consumers
// of the packed form must implement.
func Unpack(p Packed, enums *Enums) ([]Range, error) {
	data := p.Data
	var out []Range

	for pos := 0; pos < len(data); {
		if len(data)-pos < fieldWidth+2 {
			return nil, fmt.Errorf("truncated record at offset %d", pos)
		}

		start, err := parseBase36(data[pos : pos+fieldWidth])
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", pos, err)
		}
		pos += fieldWidth

		end := start
		if data[pos] == singleMarker {
			pos++
		} else {
			if len(data)-pos < fieldWidth+1 {
				return nil, fmt.Errorf("truncated record at offset %d", pos)
			}
			end, err = parseBase36(data[pos : pos+fieldWidth])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", pos, err)
			}
			pos += fieldWidth
		}

		prop, err := enumForCode(data[pos], enums)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", pos, err)
		}
		pos++

		out = append(out, Range{Start: start, End: end, Prop: prop})
	}

	return out, nil
}

func enumForCode(c byte, enums *Enums) (*Enum, error) {
	var idx int
	switch {
	case c >= 'A' && c <= 'Z':
		idx = int(c - 'A')
	case c >= 'a' && c <= 'z':
		idx = int(c-'a') + 26
	default:
		return nil, fmt.Errorf("invalid property code %q", c)
	}
	if idx >= enums.Len() {
		return nil, fmt.Errorf("property code %q has no registered value", c)
	}
	return enums.Values()[idx], nil
}

func base36(r rune) string {
	s := strconv.FormatInt(int64(r), 36)
	for len(s) < fieldWidth {
		s = "0" + s
	}
	return s
}

func parseBase36(s string) (rune, error) {
	u, err := strconv.ParseUint(s, 36, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid base-36 field %q", s)
	}
	return rune(u), nil
}
