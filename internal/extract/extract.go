// Package extract pulls account handles out of arbitrarily shaped JSON
// documents.
//
// Instagram exports wrap account references in "string_list_data" arrays,
// but the surrounding structure varies between export versions and between
// files within one export. Rather than model any particular schema, the
// extractor walks the whole decoded document and collects handles wherever
// the marker key appears.
package extract

import (
	"github.com/harrison/followcheck/internal/stringset"
	"github.com/harrison/followcheck/internal/username"
)

// markerKey wraps lists of account references in the export format.
const markerKey = "string_list_data"

// Usernames walks a decoded JSON value (as produced by encoding/json
// unmarshalled into any) and returns the deduplicated set of valid handles
// found in string_list_data arrays at any nesting depth.
//
// Malformed entries are skipped, never an error: a marker key whose value is
// not an array is recursed into like any other key, and array entries without
// a string "value" field contribute nothing.
func Usernames(doc any) stringset.Set {
	found := stringset.New()
	walk(doc, found)
	return found
}

func walk(node any, found stringset.Set) {
	switch v := node.(type) {
	case map[string]any:
		for key, value := range v {
			if entries, ok := value.([]any); ok && key == markerKey {
				collectEntries(entries, found)
				continue
			}
			walk(value, found)
		}
	case []any:
		for _, item := range v {
			walk(item, found)
		}
	}
	// Scalars (string, float64, bool, nil) outside a marker array carry nothing.
}

// collectEntries consumes the elements of a matched string_list_data array.
// Elements are only inspected for a string "value" field; they are not
// recursed further.
func collectEntries(entries []any, found stringset.Set) {
	for _, entry := range entries {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		value, ok := item["value"].(string)
		if !ok {
			continue
		}
		if username.Valid(value) {
			found.Add(value)
		}
	}
}
