package sdl

import (
	"fmt"
)

// ParsedFile pairs a parsed SDL document with its source path.
type ParsedFile struct {
	Doc  *Document
	Path string
}

// MergeError represents a fatal error during merge.
type MergeError struct {
	TypeName  string
	Path      string
	FirstPath string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("duplicate type %q in %s (first defined in %s)", e.TypeName, e.Path, e.FirstPath)
}

// MergeDocuments merges multiple parsed schema files into a single logical
// document, preserving file order and definition order within each file.
// A type name defined in more than one file is an error.
func MergeDocuments(inputs []ParsedFile) (*Document, error) {
	if len(inputs) == 0 {
		return &Document{}, nil
	}

	if len(inputs) == 1 {
		return inputs[0].Doc, nil
	}

	merged := &Document{}
	firstSeen := make(map[string]string)

	for _, input := range inputs {
		for _, def := range input.Doc.Definitions {
			name := definitionName(def)
			if name != "" {
				if first, ok := firstSeen[name]; ok {
					return nil, &MergeError{TypeName: name, Path: input.Path, FirstPath: first}
				}

				firstSeen[name] = input.Path
			}

			merged.Definitions = append(merged.Definitions, def)
		}
	}

	return merged, nil
}

func definitionName(def *Definition) string {
	switch {
	case def.Scalar != nil:
		return def.Scalar.Name
	case def.Enum != nil:
		return def.Enum.Name
	case def.Input != nil:
		return def.Input.Name
	case def.Object != nil:
		return def.Object.Name
	case def.Interface != nil:
		return def.Interface.Name
	case def.Union != nil:
		return def.Union.Name
	default:
		return ""
	}
}
