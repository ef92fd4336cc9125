package ucd

import (
	"fmt"
	"sort"
)

// OverlapError reports two parsed ranges whose spans intersect. Source
// tables are expected to be non-overlapping, so this indicates corrupt or
// unexpectedly structured input.
type OverlapError struct {
	Prev Range
	Next Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping ranges %04X..%04X (%s) and %04X..%04X (%s)",
		e.Prev.Start, e.Prev.End, e.Prev.Prop.Name,
		e.Next.Start, e.Next.End, e.Next.Prop.Name)
}

// Process converts parsed ranges into the minimal canonical form: sorted
// ascending by start, verified non-overlapping, then merged in one
// left-to-right pass. Consecutive ranges merge when they are adjacent
// (next.Start == prev.End+1) with the same property, or when both carry the
// default property def regardless of any gap between them. A codepoint not
// listed in the table implicitly carries the default, so stitching default
// ranges across a gap changes nothing observable.
func Process(ranges []Range, def *Enum) ([]Range, error) {
	if len(ranges) == 0 {
		return nil, nil
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start <= sorted[i-1].End {
			return nil, &OverlapError{Prev: sorted[i-1], Next: sorted[i]}
		}
	}

	merged := sorted[:1]
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		switch {
		case next.Prop == last.Prop && next.Start == last.End+1:
			last.End = next.End
		case next.Prop == last.Prop && next.Prop == def:
			last.End = next.End
		default:
			merged = append(merged, next)
		}
	}

	return merged, nil
}
