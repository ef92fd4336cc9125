package gen

import (
	"bytes"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/breakdata/packgen/internal/ucd"
)

// outputPackage is the package the generated source declares. Both
// families generate into the same consumer package.
const outputPackage = "uniprop"

// render produces the generated Go source: provenance header, the property
// type and its const block in registry order, the packed string, and the
// counts the decoder needs. Output is deterministic for identical input.
func render(set PropertySet, header []string, enums *ucd.Enums, packed ucd.Packed, def *ucd.Enum) ([]byte, error) {
	f := jen.NewFile(outputPackage)

	f.HeaderComment("Code generated by packgen. DO NOT EDIT.")
	f.HeaderComment("")
	f.HeaderComment("Packed " + set.Name + " properties, see " + set.DocURL)
	if len(header) > 0 {
		f.HeaderComment("")
		f.HeaderComment("Source file header:")
		for _, line := range header {
			f.HeaderComment("  " + line)
		}
	}

	propType := set.Prefix + "Property"

	f.Comment(propType + " is one " + set.Name + " property value.")
	f.Type().Id(propType).Uint8()

	f.Comment("Property values in packed-code order.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for i, v := range enums.Values() {
			s := g.Id(ident(set.Prefix, v.Name))
			if i == 0 {
				s = s.Id(propType).Op("=").Iota()
			}
			if len(v.NormalizedFrom) > 0 {
				s.Comment("normalized from: " + strings.Join(v.NormalizedFrom, ", "))
			}
		}
	})

	f.Const().DefsFunc(func(g *jen.Group) {
		g.Comment("Each record is 4 base-36 chars (start), then '!' or 4")
		g.Comment("base-36 chars (end), then one property code char.")
		g.Id(set.Prefix + "PackedRanges").Op("=").Lit(packed.Data)

		g.Id(set.Prefix + "SingleRangeCount").Op("=").Lit(packed.SingleRanges)
		g.Id(set.Prefix + "PropertyCount").Op("=").Lit(packed.EnumCount)
	})

	f.Comment("Codepoints not covered by any packed range carry the default.")
	f.Const().Id(set.Prefix + "DefaultProperty").Op("=").Id(ident(set.Prefix, def.Name))

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ident builds a generated identifier from the family prefix and a property
// name, dropping underscores ("E_Base_GAZ" becomes "wordEBaseGAZ").
func ident(prefix, name string) string {
	return prefix + strings.ReplaceAll(name, "_", "")
}
