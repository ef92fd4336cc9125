package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakdata/packgen/internal/ucd"
)

func TestIdent(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{prefix: "word", name: "ALetter", want: "wordALetter"},
		{prefix: "word", name: "Double_Quote", want: "wordDoubleQuote"},
		{prefix: "word", name: "E_Base_GAZ", want: "wordEBaseGAZ"},
		{prefix: "line", name: "AL", want: "lineAL"},
	}

	for _, tt := range tests {
		if got := ident(tt.prefix, tt.name); got != tt.want {
			t.Fatalf("ident(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	es := ucd.NewEnums()
	al := es.AddNormalized("AL", "XX")
	es.AddNormalized("AL", "AI")
	bk := es.Add("BK")

	ranges := []ucd.Range{
		{Start: 0x0A, End: 0x0A, Prop: bk},
		{Start: 0x41, End: 0x5A, Prop: al},
	}
	packed, err := ucd.Pack(ranges, es)
	require.NoError(t, err)

	header := []string{"# LineBreak-15.0.0.txt", "# Date: 2022-08-02"}
	out, err := render(LineBreak, header, es, packed, al)
	require.NoError(t, err)

	src := string(out)
	assert.True(t, strings.HasPrefix(src, "// Code generated by packgen. DO NOT EDIT."))
	assert.Contains(t, src, "package uniprop")
	assert.Contains(t, src, "//   # Date: 2022-08-02\n")
	assert.Contains(t, src, "lineAL lineProperty = iota")
	assert.Contains(t, src, "normalized from: AI, XX")
	assert.Contains(t, src, "lineBK")
	assert.Contains(t, src, "linePackedRanges")
	assert.Contains(t, src, "lineSingleRangeCount = 1")
	assert.Contains(t, src, "linePropertyCount = 2")
	assert.Contains(t, src, "lineDefaultProperty = lineAL")
}
