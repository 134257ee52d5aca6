package extract

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decode parses a JSON document the same way the aggregator does.
func decode(t *testing.T, doc string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatalf("failed to decode test document: %v", err)
	}
	return v
}

func TestUsernames(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "flat export shape",
			doc:  `[{"string_list_data":[{"href":"https://x","value":"alice","timestamp":1}]}]`,
			want: []string{"alice"},
		},
		{
			name: "deep nesting",
			doc:  `{"a":{"b":[{"string_list_data":[{"value":"alice"}]}]}}`,
			want: []string{"alice"},
		},
		{
			name: "multiple marker arrays at different depths",
			doc:  `{"relationships":[{"string_list_data":[{"value":"alice"}]}],"extra":{"string_list_data":[{"value":"bob"}]}}`,
			want: []string{"alice", "bob"},
		},
		{
			name: "invalid handle discarded",
			doc:  `{"string_list_data":[{"value":"bad name!"}]}`,
			want: []string{},
		},
		{
			name: "value not a string skipped",
			doc:  `{"string_list_data":[{"value":42},{"value":"carol"}]}`,
			want: []string{"carol"},
		},
		{
			name: "marker not an array recursed into",
			doc:  `{"string_list_data":{"inner":{"string_list_data":[{"value":"dave"}]}}}`,
			want: []string{"dave"},
		},
		{
			name: "non-object entries in marker array skipped",
			doc:  `{"string_list_data":["alice",7,null,{"value":"erin"}]}`,
			want: []string{"erin"},
		},
		{
			name: "duplicates collapse",
			doc:  `[{"string_list_data":[{"value":"alice"},{"value":"alice"}]}]`,
			want: []string{"alice"},
		},
		{
			name: "scalar root",
			doc:  `"alice"`,
			want: []string{},
		},
		{
			name: "null root",
			doc:  `null`,
			want: []string{},
		},
		{
			name: "unrelated keys contribute nothing",
			doc:  `{"media":[{"title":"photo","uri":"x.jpg"}],"count":3}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Usernames(decode(t, tt.doc)).Sorted()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Usernames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUsernamesOrderIndependent(t *testing.T) {
	// Same content, keys and unmatched array elements permuted.
	a := decode(t, `{"x":{"string_list_data":[{"value":"alice"}]},"y":[1,{"string_list_data":[{"value":"bob"}]}]}`)
	b := decode(t, `{"y":[{"string_list_data":[{"value":"bob"}]},1],"x":{"string_list_data":[{"value":"alice"}]}}`)

	gotA := Usernames(a).Sorted()
	gotB := Usernames(b).Sorted()
	if !reflect.DeepEqual(gotA, gotB) {
		t.Errorf("extraction is order-dependent: %v vs %v", gotA, gotB)
	}
}
