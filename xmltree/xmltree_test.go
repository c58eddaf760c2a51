package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

func elem(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

func TestCollapseLeaf(t *testing.T) {
	assert.Equal(t, map[string]any{"X": "t"}, Collapse(leaf("X", "t")))
	assert.Equal(t, map[string]any{"X": ""}, Collapse(leaf("X", "")))
}

func TestCollapseRepeatedTagsIntoList(t *testing.T) {
	n := elem("L", leaf("E", "A"), leaf("E", "B"), leaf("E", "C"))
	assert.Equal(t, []any{"A", "B", "C"}, Collapse(n))
}

func TestCollapseSingleRepeatedTagStillList(t *testing.T) {
	n := elem("Banks", elem("Bank", leaf("Id", "ASN_BANK"), leaf("Name", "ASN Bank")))
	assert.Equal(t, []any{map[string]any{"Id": "ASN_BANK", "Name": "ASN Bank"}}, Collapse(n))
}

func TestCollapseDistinctLeavesIntoMap(t *testing.T) {
	n := elem("E", leaf("A", "x"), leaf("B", "y"))
	assert.Equal(t, map[string]any{"E": map[string]any{"A": "x", "B": "y"}}, Collapse(n))
}

func TestCollapseNestedRecord(t *testing.T) {
	n := elem("Transaction",
		leaf("ID", "12345"),
		leaf("Paid", "Y"),
		elem("Consumer",
			leaf("Name", "J. Doe"),
			leaf("IBAN", "NL13TEST0123456789"),
			leaf("Bank", "TESTNL2A"),
		),
	)
	want := map[string]any{"Transaction": map[string]any{
		"ID":   "12345",
		"Paid": "Y",
		"Consumer": map[string]any{
			"Name": "J. Doe",
			"IBAN": "NL13TEST0123456789",
			"Bank": "TESTNL2A",
		},
	}}
	assert.Equal(t, want, Collapse(n))
}

func TestCollapseMixedChildrenKeptInDocumentOrder(t *testing.T) {
	// The Banks child collapses to a list, which stops further collapsing:
	// the parent keeps the converted children as-is.
	n := elem("Root",
		leaf("Status", "OK"),
		elem("Banks",
			elem("Bank", leaf("Id", "1"), leaf("Name", "a")),
			elem("Bank", leaf("Id", "2"), leaf("Name", "b")),
		),
	)
	want := map[string]any{"Root": []any{
		map[string]any{"Status": "OK"},
		[]any{
			map[string]any{"Id": "1", "Name": "a"},
			map[string]any{"Id": "2", "Name": "b"},
		},
	}}
	assert.Equal(t, want, Collapse(n))
}

func TestCollapseListPreservesOrder(t *testing.T) {
	children := make([]*Node, 0, 26)
	want := make([]any, 0, 26)
	for i := 0; i < 26; i++ {
		text := string(rune('A' + i))
		children = append(children, leaf("E", text))
		want = append(want, text)
	}
	assert.Equal(t, want, Collapse(elem("L", children...)))
}

func TestCollapseDuplicateKeysKeepLastValue(t *testing.T) {
	// Two children with the same tag plus one with a different tag cannot
	// become a list; the merge keeps the last value per key.
	n := elem("E", leaf("A", "x"), leaf("A", "y"), leaf("B", "z"))
	assert.Equal(t, map[string]any{"E": map[string]any{"A": "y", "B": "z"}}, Collapse(n))
}
