package bridge

import (
	"fmt"
	"strings"
)

// ResolveInputSchema turns a JSON-Schema style input schema into a flat,
// fully self-contained properties mapping. Every local $ref pointer is
// substituted with its target definition, the $defs section is dropped and
// each property is guaranteed to carry a description and a type so the
// mapping can be handed to the host framework as-is.
//
// The input is never mutated; the returned mapping shares no maps or slices
// with it. Resolving an already-resolved schema yields an equal mapping.
func ResolveInputSchema(schema map[string]any) (map[string]map[string]any, error) {
	if schema == nil {
		return nil, &SchemaError{Reason: "input schema is missing"}
	}

	resolved, err := resolveRefs(schema, schema, nil)
	if err != nil {
		return nil, err
	}
	root, ok := resolved.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: "input schema does not resolve to an object"}
	}
	delete(root, "$defs")

	rawProps, ok := root["properties"]
	if !ok {
		return nil, &SchemaError{Reason: "input schema has no properties"}
	}
	props, ok := rawProps.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: "properties is not an object"}
	}

	out := make(map[string]map[string]any, len(props))
	for name, raw := range props {
		prop, ok := raw.(map[string]any)
		if !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("property %s is not an object", name)}
		}
		if _, ok := prop["description"]; !ok {
			prop["description"] = "see tool description"
		}
		if _, ok := prop["type"]; !ok {
			prop["type"] = "string"
		}
		out[name] = prop
	}
	return out, nil
}

// resolveRefs walks node and substitutes every local $ref pointer with the
// definition it points at inside root. Substitution is transitive: a resolved
// definition may itself contain references. The walk copies maps and slices
// as it goes so the original document stays untouched. seen holds the chain
// of pointers currently being expanded; revisiting one means the schema is
// circular, which eager substitution cannot represent.
func resolveRefs(node any, root map[string]any, seen []string) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok {
			for _, visited := range seen {
				if visited == ref {
					return nil, &SchemaError{Reason: fmt.Sprintf("circular reference %s", ref)}
				}
			}
			target, err := lookupPointer(root, ref)
			if err != nil {
				return nil, err
			}
			return resolveRefs(target, root, append(seen, ref))
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			r, err := resolveRefs(val, root, seen)
			if err != nil {
				return nil, err
			}
			out[key] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			r, err := resolveRefs(val, root, seen)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

// lookupPointer resolves a document-local JSON pointer such as
// "#/$defs/Animal" against the schema root.
func lookupPointer(root map[string]any, ref string) (any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, &SchemaError{Reason: fmt.Sprintf("unsupported external reference %s", ref)}
	}
	pointer := strings.TrimPrefix(strings.TrimPrefix(ref, "#"), "/")
	if pointer == "" {
		return nil, &SchemaError{Reason: "reference # points at the whole document"}
	}

	var node any = root
	for _, part := range strings.Split(pointer, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("reference %s walks through a non-object", ref)}
		}
		child, ok := obj[part]
		if !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("reference %s points at a missing definition", ref)}
		}
		node = child
	}
	return node, nil
}
