package plan

// Mask converts a raw attribute tree into a Value, replacing every scalar
// leaf whose sensitivity verdict is true with a sensitive marker. The
// sensitivity tree mirrors the value tree: booleans at the leaves, arrays
// and objects for containers. Positions the tree does not cover default to
// not sensitive, as does any position where the two trees disagree on
// shape; a mismatch reveals rather than fails.
func Mask(raw, sensitivity interface{}) Value {
	switch v := raw.(type) {
	case map[string]interface{}:
		fields := make(map[string]Value, len(v))
		for key, child := range v {
			fields[key] = Mask(child, childMask(sensitivity, key))
		}
		return ObjectVal(fields)
	case []interface{}:
		items := make([]Value, len(v))
		elems, isArray := sensitivity.([]interface{})
		for i, child := range v {
			var m interface{}
			if isArray {
				if i < len(elems) {
					m = elems[i]
				}
			} else {
				// A scalar verdict applies to every element.
				m = sensitivity
			}
			items[i] = Mask(child, m)
		}
		return ArrayVal(items)
	case nil:
		// Null carries nothing to protect.
		return NullVal()
	default:
		if verdict(sensitivity) {
			return SensitiveVal()
		}
		return FromRaw(raw)
	}
}

// MaskMap masks one side of a resource change against its sensitivity
// tree. A nil or non-object side yields a nil map.
func MaskMap(raw, sensitivity interface{}) ValueMap {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(ValueMap, len(obj))
	for key, child := range obj {
		out[key] = Mask(child, childMask(sensitivity, key))
	}
	return out
}

// childMask resolves the mask for one object key. An object mask is applied
// per key; any other mask shape is inherited whole by every child.
func childMask(sensitivity interface{}, key string) interface{} {
	if m, ok := sensitivity.(map[string]interface{}); ok {
		return m[key]
	}
	return sensitivity
}

func verdict(sensitivity interface{}) bool {
	b, ok := sensitivity.(bool)
	return ok && b
}
