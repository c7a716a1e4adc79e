package typescript

import (
	"strconv"
	"strings"

	codegen "github.com/negative0/graphql-code-generator"
)

// Sentinel member names for future-proofed enums and unions. Values added
// to the schema after generation time collapse onto these arms.
const (
	enumSentinel  = "%future added value"
	unionSentinel = "%other"
)

// sentinelName disambiguates the sentinel against existing member names by
// appending an incrementing numeric suffix until unique.
func sentinelName(base string, taken map[string]bool) string {
	name := base
	for n := 1; taken[name]; n++ {
		name = base + strconv.Itoa(n)
	}

	return name
}

// renderEnum renders one enum definition in the resolved representation.
func renderEnum(def *codegen.TypeDef, cfg RenderConfig) Declaration {
	members := def.EnumValues

	if cfg.FutureProofEnums {
		taken := make(map[string]bool, len(members))
		for _, v := range members {
			taken[v.Name] = true
		}

		members = append(append([]*codegen.EnumValue{}, members...),
			&codegen.EnumValue{Name: sentinelName(enumSentinel, taken)})
	}

	var body string

	switch cfg.EnumMode {
	case EnumModeTypes:
		body = enumAsType(def.Name, members, cfg)
	case EnumModeConst:
		body = enumAsConst(def.Name, members, cfg)
	default:
		body = enumPlain(def.Name, members, cfg)
	}

	return Declaration{
		Name:        def.Name,
		Kind:        codegen.KindEnum,
		Body:        body,
		Description: def.Description,
	}
}

// enumAsType renders a string-literal union type alias. numericEnums has no
// effect here; allowEnumStringTypes widens the union with string.
func enumAsType(name string, members []*codegen.EnumValue, cfg RenderConfig) string {
	arms := make([]string, 0, len(members)+1)
	for _, v := range members {
		arms = append(arms, quoteLiteral(v.Name))
	}

	if cfg.AllowEnumStringTypes {
		arms = append(arms, "string")
	}

	return exportPrefix(cfg) + "type " + name + " = " + strings.Join(arms, " | ") + ";"
}

// enumAsConst renders a const-asserted object literal plus a derived type
// alias naming the union of its values.
func enumAsConst(name string, members []*codegen.EnumValue, cfg RenderConfig) string {
	var b strings.Builder

	b.WriteString(exportPrefix(cfg) + "const " + name + " = {\n")

	for i, v := range members {
		writeMemberDescription(&b, v.Description, cfg)
		b.WriteString("  " + memberKey(v.Name) + ": " + quoteLiteral(v.Name))

		if i < len(members)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	b.WriteString("} as const;\n\n")
	b.WriteString(exportPrefix(cfg) + "type " + name + " = typeof " + name + "[keyof typeof " + name + "];")

	return b.String()
}

// enumPlain renders an enum declaration, optionally const-modified, with
// string values or zero-based sequential integers under numericEnums.
func enumPlain(name string, members []*codegen.EnumValue, cfg RenderConfig) string {
	var b strings.Builder

	b.WriteString(exportPrefix(cfg))

	if cfg.ConstEnums {
		b.WriteString("const ")
	}

	b.WriteString("enum " + name + " {\n")

	for i, v := range members {
		writeMemberDescription(&b, v.Description, cfg)

		value := quoteLiteral(v.Name)
		if cfg.NumericEnums {
			value = strconv.Itoa(i)
		}

		b.WriteString("  " + memberKey(v.Name) + " = " + value)

		if i < len(members)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

func writeMemberDescription(b *strings.Builder, desc string, cfg RenderConfig) {
	if desc == "" || cfg.DisableDescriptions {
		return
	}

	b.WriteString(descriptionComment(desc, "  "))
}
