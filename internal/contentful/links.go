package contentful

// maxLinkDepth bounds resolution so self-referencing entries cannot recurse forever.
const maxLinkDepth = 4

// Resolve replaces link objects inside item fields with the matching included
// entry or asset. Unresolvable links are left as they are.
func (c *Collection) Resolve() {
	index := make(map[string]map[string]any, len(c.Includes.Entry)+len(c.Includes.Asset))
	for _, e := range c.Includes.Entry {
		if id := sysID(e); id != "" {
			index[LinkTypeEntry+":"+id] = e
		}
	}
	for _, a := range c.Includes.Asset {
		if id := sysID(a); id != "" {
			index[LinkTypeAsset+":"+id] = a
		}
	}
	if len(index) == 0 {
		return
	}
	for i := range c.Items {
		for k, v := range c.Items[i].Fields {
			c.Items[i].Fields[k] = resolveValue(v, index, 0)
		}
	}
}

func resolveValue(v any, index map[string]map[string]any, depth int) any {
	if depth > maxLinkDepth {
		return v
	}
	switch val := v.(type) {
	case map[string]any:
		if linkType, id, ok := asLink(val); ok {
			target, found := index[linkType+":"+id]
			if !found {
				return val
			}
			return resolveRecord(target, index, depth+1)
		}
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = resolveValue(inner, index, depth)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = resolveValue(inner, index, depth)
		}
		return out
	default:
		return v
	}
}

// resolveRecord copies an included record so shared includes are not mutated.
func resolveRecord(rec map[string]any, index map[string]map[string]any, depth int) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	if fields, ok := rec["fields"].(map[string]any); ok {
		resolved := make(map[string]any, len(fields))
		for k, v := range fields {
			resolved[k] = resolveValue(v, index, depth)
		}
		out["fields"] = resolved
	}
	return out
}

func asLink(m map[string]any) (linkType, id string, ok bool) {
	sys, isMap := m["sys"].(map[string]any)
	if !isMap {
		return "", "", false
	}
	if t, _ := sys["type"].(string); t != "Link" {
		return "", "", false
	}
	linkType, _ = sys["linkType"].(string)
	id, _ = sys["id"].(string)
	return linkType, id, linkType != "" && id != ""
}

func sysID(m map[string]any) string {
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := sys["id"].(string)
	return id
}
