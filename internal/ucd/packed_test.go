package ucd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// pad36 renders a codepoint the way the packed encoding does. Tests compute
// expected digits instead of hardcoding them.
func pad36(r rune) string {
	s := strconv.FormatInt(int64(r), 36)
	return strings.Repeat("0", 4-len(s)) + s
}

func TestPack_FieldLayout(t *testing.T) {
	es := NewEnums()
	al := es.Add("AL")

	p, err := Pack([]Range{{Start: 0x41, End: 0x7A, Prop: al}}, es)
	require.NoError(t, err)

	require.Equal(t, pad36(0x41)+pad36(0x7A)+"A", p.Data)
	require.Equal(t, 0, p.SingleRanges)
	require.Equal(t, 1, p.EnumCount)
}

func TestPack_SingleCodepointMarker(t *testing.T) {
	es := NewEnums()
	bk := es.Add("BK")

	p, err := Pack([]Range{{Start: 0x2028, End: 0x2028, Prop: bk}}, es)
	require.NoError(t, err)

	require.Equal(t, pad36(0x2028)+"!A", p.Data)
	require.Equal(t, 1, p.SingleRanges)

	decoded, err := Unpack(p, es)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, decoded[0].Start, decoded[0].End)
}

func TestPack_SecondEnumCode(t *testing.T) {
	es := NewEnums()
	al := es.Add("AL")
	nu := es.Add("NU")

	p, err := Pack([]Range{
		{Start: 0x30, End: 0x39, Prop: nu},
		{Start: 0x41, End: 0x5A, Prop: al},
	}, es)
	require.NoError(t, err)

	require.Equal(t, pad36(0x30)+pad36(0x39)+"B"+pad36(0x41)+pad36(0x5A)+"A", p.Data)
}

func TestPack_CapacityLimit(t *testing.T) {
	es := NewEnums()
	for i := 0; i < 52; i++ {
		es.Add(fmt.Sprintf("P%02d", i))
	}

	_, err := Pack(nil, es)
	require.NoError(t, err, "52 values fit the one-character code")

	es.Add("P52")
	_, err = Pack(nil, es)
	require.Error(t, err)

	var cerr *CapacityError
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, 53, cerr.Count)
}

func TestRoundTrip(t *testing.T) {
	es := NewEnums()
	al := es.Add("AL")
	bk := es.Add("BK")
	nu := es.Add("NU")
	def := es.Add("XX")

	in := []Range{
		{Start: 0x0A, End: 0x0A, Prop: bk},
		{Start: 0x30, End: 0x39, Prop: nu},
		{Start: 0x41, End: 0x5A, Prop: al},
		{Start: 0x5B, End: 0x60, Prop: def},
		{Start: 0x10000, End: 0x10FFFF, Prop: al},
	}

	processed, err := Process(in, def)
	require.NoError(t, err)

	p, err := Pack(processed, es)
	require.NoError(t, err)
	require.Equal(t, 4, p.EnumCount)

	decoded, err := Unpack(p, es)
	require.NoError(t, err)

	if diff := cmp.Diff(spans(processed), spans(decoded)); diff != "" {
		t.Errorf("round trip mismatch (-packed +decoded):\n%s", diff)
	}
}

func TestPack_Deterministic(t *testing.T) {
	build := func() (Packed, error) {
		es := NewEnums()
		al := es.Add("AL")
		bk := es.Add("BK")
		return Pack([]Range{
			{Start: 0x0A, End: 0x0A, Prop: bk},
			{Start: 0x41, End: 0x5A, Prop: al},
		}, es)
	}

	a, err := build()
	require.NoError(t, err)
	b, err := build()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestUnpack_Errors(t *testing.T) {
	es := NewEnums()
	es.Add("AL")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "truncated start field", data: "001", wantErr: "truncated"},
		{name: "missing property code", data: pad36(0x41) + "!", wantErr: "truncated"},
		{name: "truncated end field", data: pad36(0x41) + "00", wantErr: "truncated"},
		{name: "marker inside start field", data: "00!1" + pad36(0x41) + "A", wantErr: "invalid base-36"},
		{name: "non-letter property code", data: pad36(0x41) + "!?", wantErr: "invalid property code"},
		{name: "code beyond registry", data: pad36(0x41) + "!B", wantErr: "no registered value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unpack(Packed{Data: tt.data}, es)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
