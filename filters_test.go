package pandoc

// Notes:
// - The sample document is the minimal shape pandoc emits for -t json:
//   api version, meta map, block list. Filters only touch meta here.

import (
	"strings"
	"testing"
)

const sampleAST = `{"pandoc-api-version":[1,23,1],"meta":{"title":{"t":"MetaString","c":"Cake"}},"blocks":[]}`

// ---------------------------------------------------------------------------
// TestMetaString
// ---------------------------------------------------------------------------

func TestMetaString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		key    string
		want   string
		wantOK bool
	}{
		{name: "present", doc: sampleAST, key: "title", want: "Cake", wantOK: true},
		{name: "absent", doc: sampleAST, key: "author", wantOK: false},
		{
			name:   "wrong node type",
			doc:    `{"meta":{"title":{"t":"MetaInlines","c":[]}},"blocks":[]}`,
			key:    "title",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := MetaString(tt.doc, tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MetaString() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSetMeta / TestDeleteMeta
// ---------------------------------------------------------------------------

func TestSetMeta(t *testing.T) {
	t.Parallel()

	doc := SetMeta("lang", "en")(sampleAST)

	if got, ok := MetaString(doc, "lang"); !ok || got != "en" {
		t.Errorf("lang after SetMeta = (%q, %v), want (en, true)", got, ok)
	}
	// Existing keys survive.
	if got, ok := MetaString(doc, "title"); !ok || got != "Cake" {
		t.Errorf("title after SetMeta = (%q, %v), want (Cake, true)", got, ok)
	}

	// Overwrite.
	doc = SetMeta("title", "Lie")(doc)
	if got, _ := MetaString(doc, "title"); got != "Lie" {
		t.Errorf("title after overwrite = %q, want Lie", got)
	}
}

func TestDeleteMeta(t *testing.T) {
	t.Parallel()

	doc := DeleteMeta("title")(sampleAST)
	if _, ok := MetaString(doc, "title"); ok {
		t.Error("title must be gone after DeleteMeta")
	}
	if !strings.Contains(doc, `"blocks":[]`) {
		t.Errorf("blocks must be untouched, got %q", doc)
	}
}

// ---------------------------------------------------------------------------
// TestChainFilters
// ---------------------------------------------------------------------------

func TestChainFilters(t *testing.T) {
	t.Parallel()

	chained := ChainFilters(
		func(doc string) string { return doc + "a" },
		func(doc string) string { return doc + "b" },
		Identity,
	)
	if got := chained("x"); got != "xab" {
		t.Errorf("chained filter = %q, want xab (left-to-right order)", got)
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	if got := Identity(sampleAST); got != sampleAST {
		t.Error("Identity must return the document unchanged")
	}
}
