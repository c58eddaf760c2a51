// Package xmltree collapses parsed XML element trees into native Go values.
//
// The Qantani API answers with ad-hoc XML where the same structure sometimes
// means "a list" and sometimes "a record". This package reproduces the exact
// collapsing rules the API documents per command, working on an abstract Node
// so the rules stay independent of any particular XML parser.
package xmltree

// Node is an abstract XML element: a tag, text content, and ordered child
// elements. Text is only meaningful for leaves.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// Collapse converts a Node into a native value:
//
//	leaf                        <X>t</X>                 => map{"X": "t"}
//	repeated same-tag children  <L><E>A</E><E>B</E></L>  => ["A", "B"]
//	distinct leaf-like children <E><A>x</A><B>y</B></E>  => map{"E": map{"A": "x", "B": "y"}}
//
// A child whose own collapse produced a list or a multi-entry map stops the
// collapsing: the parent then maps its tag to the converted child results,
// kept in document order. A leaf with no text collapses to an empty string.
func Collapse(n *Node) any {
	if len(n.Children) == 0 {
		return map[string]any{n.Tag: n.Text}
	}

	results := make([]any, len(n.Children))
	for i, c := range n.Children {
		results[i] = Collapse(c)
	}

	keys, values, ok := singleEntries(results)
	if !ok {
		return map[string]any{n.Tag: results}
	}

	if sameKey(keys) {
		return values
	}

	merged := make(map[string]any, len(keys))
	for i, k := range keys {
		merged[k] = values[i]
	}
	return map[string]any{n.Tag: merged}
}

// singleEntries splits every child result into its single key/value pair.
// ok is false as soon as one result is not a single-entry map.
func singleEntries(results []any) (keys []string, values []any, ok bool) {
	keys = make([]string, 0, len(results))
	values = make([]any, 0, len(results))
	for _, r := range results {
		m, isMap := r.(map[string]any)
		if !isMap || len(m) != 1 {
			return nil, nil, false
		}
		for k, v := range m {
			keys = append(keys, k)
			values = append(values, v)
		}
	}
	return keys, values, true
}

func sameKey(keys []string) bool {
	for _, k := range keys[1:] {
		if k != keys[0] {
			return false
		}
	}
	return true
}
