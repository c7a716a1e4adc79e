package sdl

import (
	codegen "github.com/negative0/graphql-code-generator"
)

// Convert lowers a parsed document into the codegen schema model,
// preserving declaration order. Directives and the schema block are
// dropped; the generator does not act on them.
func Convert(doc *Document) *codegen.Schema {
	var types []*codegen.TypeDef

	for _, def := range doc.Definitions {
		td := convertDefinition(def)
		if td != nil {
			types = append(types, td)
		}
	}

	return codegen.NewSchema(types)
}

func convertDefinition(def *Definition) *codegen.TypeDef {
	desc := ""
	if def.Description != nil {
		desc = *def.Description
	}

	switch {
	case def.Scalar != nil:
		return &codegen.TypeDef{
			Kind:        codegen.KindScalar,
			Name:        def.Scalar.Name,
			Description: desc,
		}

	case def.Enum != nil:
		values := make([]*codegen.EnumValue, len(def.Enum.Values))
		for i, v := range def.Enum.Values {
			values[i] = &codegen.EnumValue{
				Name:        v.Name,
				Description: stringValue(v.Description),
			}
		}

		return &codegen.TypeDef{
			Kind:        codegen.KindEnum,
			Name:        def.Enum.Name,
			Description: desc,
			EnumValues:  values,
		}

	case def.Input != nil:
		fields := make([]*codegen.Field, len(def.Input.Fields))
		for i, f := range def.Input.Fields {
			fields[i] = &codegen.Field{
				Name:        f.Name,
				Type:        f.Type.ToRef(),
				Description: stringValue(f.Description),
				Default:     defaultText(f.Default),
			}
		}

		return &codegen.TypeDef{
			Kind:        codegen.KindInputObject,
			Name:        def.Input.Name,
			Description: desc,
			Fields:      fields,
		}

	case def.Object != nil:
		return &codegen.TypeDef{
			Kind:        codegen.KindObject,
			Name:        def.Object.Name,
			Description: desc,
			Fields:      convertFields(def.Object.Fields),
			Interfaces:  def.Object.Interfaces,
		}

	case def.Interface != nil:
		return &codegen.TypeDef{
			Kind:        codegen.KindInterface,
			Name:        def.Interface.Name,
			Description: desc,
			Fields:      convertFields(def.Interface.Fields),
			Interfaces:  def.Interface.Interfaces,
		}

	case def.Union != nil:
		return &codegen.TypeDef{
			Kind:        codegen.KindUnion,
			Name:        def.Union.Name,
			Description: desc,
			MemberTypes: def.Union.Members,
		}

	default:
		return nil
	}
}

func convertFields(fields []*FieldDef) []*codegen.Field {
	out := make([]*codegen.Field, len(fields))

	for i, f := range fields {
		args := make([]*codegen.Argument, len(f.Args))
		for j, a := range f.Args {
			args[j] = &codegen.Argument{
				Name:        a.Name,
				Type:        a.Type.ToRef(),
				Description: stringValue(a.Description),
				Default:     defaultText(a.Default),
			}
		}

		out[i] = &codegen.Field{
			Name:        f.Name,
			Type:        f.Type.ToRef(),
			Description: stringValue(f.Description),
			Args:        args,
		}
	}

	return out
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func defaultText(v *Value) *string {
	if v == nil {
		return nil
	}

	text := v.Text()

	return &text
}
