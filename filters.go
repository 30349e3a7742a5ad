package pandoc

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Filter transforms the JSON-serialized document between the two passes of
// a filtered conversion. Filters receive the full AST document as text and
// must return a document in the same representation. They run in
// registration order and share no state.
type Filter func(doc string) string

// Identity returns the document unchanged. Useful as a placeholder when a
// filter slot is conditional.
func Identity(doc string) string { return doc }

// ChainFilters composes filters into one, applied left to right.
func ChainFilters(filters ...Filter) Filter {
	return func(doc string) string {
		for _, f := range filters {
			doc = f(doc)
		}
		return doc
	}
}

// MetaString reads a top-level MetaString metadata value from an AST
// document. The second return is false when the key is absent or not a
// plain string.
func MetaString(doc, key string) (string, bool) {
	v := gjson.Get(doc, "meta."+key)
	if !v.Exists() || v.Get("t").String() != "MetaString" {
		return "", false
	}
	return v.Get("c").String(), true
}

// SetMeta returns a filter that sets a top-level metadata key to a string
// value, overwriting any existing value. A document the filter cannot
// modify is passed through unchanged.
func SetMeta(key, value string) Filter {
	return func(doc string) string {
		out, err := sjson.Set(doc, "meta."+key, map[string]any{
			"t": "MetaString",
			"c": value,
		})
		if err != nil {
			return doc
		}
		return out
	}
}

// DeleteMeta returns a filter that removes a top-level metadata key. A
// document the filter cannot modify is passed through unchanged.
func DeleteMeta(key string) Filter {
	return func(doc string) string {
		out, err := sjson.Delete(doc, "meta."+key)
		if err != nil {
			return doc
		}
		return out
	}
}
