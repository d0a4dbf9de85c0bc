// Package yamldiff compares two YAML documents at the field level, so a
// status flip renders as one changed field instead of raw diff lines.
package yamldiff

import (
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// FieldChange records one field-level difference. Field is the dotted key
// path from the document root.
type FieldChange struct {
	Field string `json:"field"`
	Old   any    `json:"old,omitempty"`
	New   any    `json:"new,omitempty"`
}

// Result is the structured outcome of a semantic comparison. Available
// reports whether both snapshots parsed as YAML mappings; when false the
// field lists are empty and HasChanges falls back to text inequality.
type Result struct {
	HasChanges bool          `json:"hasChanges"`
	Added      []FieldChange `json:"added,omitempty"`
	Removed    []FieldChange `json:"removed,omitempty"`
	Changed    []FieldChange `json:"changed,omitempty"`
	Available  bool          `json:"-"`
}

// Compare diffs two YAML snapshots field by field. It never fails: a parse
// error on either side degrades to a plain text-equality answer with no
// field detail.
func Compare(oldText, newText string) Result {
	oldDoc, okOld := parseMapping(oldText)
	newDoc, okNew := parseMapping(newText)
	if !okOld || !okNew {
		return Result{HasChanges: oldText != newText}
	}

	res := Result{Available: true}
	compareMappings("", oldDoc, newDoc, &res)
	res.HasChanges = len(res.Added)+len(res.Removed)+len(res.Changed) > 0
	return res
}

// parseMapping decodes a snapshot as a top-level mapping. Scalar or
// sequence documents are out of scope for field-level comparison and report
// ok=false; an empty document is an empty mapping.
func parseMapping(text string) (map[string]any, bool) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, false
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, true
}

// compareMappings walks the union of keys in sorted order, recursing into
// nested mappings. Sequence values are compared by whole-value equality.
func compareMappings(prefix string, oldDoc, newDoc map[string]any, res *Result) {
	keys := make([]string, 0, len(oldDoc)+len(newDoc))
	for k := range oldDoc {
		keys = append(keys, k)
	}
	for k := range newDoc {
		if _, ok := oldDoc[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		oldVal, inOld := oldDoc[k]
		newVal, inNew := newDoc[k]

		switch {
		case !inOld:
			res.Added = append(res.Added, FieldChange{Field: path, New: newVal})
		case !inNew:
			res.Removed = append(res.Removed, FieldChange{Field: path, Old: oldVal})
		default:
			oldMap, oldIsMap := oldVal.(map[string]any)
			newMap, newIsMap := newVal.(map[string]any)
			if oldIsMap && newIsMap {
				compareMappings(path, oldMap, newMap, res)
			} else if !reflect.DeepEqual(oldVal, newVal) {
				res.Changed = append(res.Changed, FieldChange{Field: path, Old: oldVal, New: newVal})
			}
		}
	}
}
