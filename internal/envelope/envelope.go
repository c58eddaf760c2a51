// Package envelope builds and validates the Qantani XML envelope.
//
// Every API call posts one document shaped like:
//
//	<Transaction>
//	  <Action><Name>CMD</Name><Version>1</Version></Action>
//	  <Parameters><Key>value</Key>...</Parameters>
//	  <Merchant><ID/><Key/><Checksum/></Merchant>
//	</Transaction>
//
// and receives a document whose root carries a Status element.
package envelope

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/stremovskyy/go-qantani/consts"
	"github.com/stremovskyy/go-qantani/xmltree"
)

// Build serializes a request envelope. The Parameters block is omitted when
// params is empty. Parameter elements are written in sorted key order so the
// same request always produces the same bytes.
//
// sum is the checksum over params only; Action and Merchant fields are not
// part of it.
func Build(command consts.Command, params map[string]string, merchantID, merchantKey, sum string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	tx := doc.CreateElement("Transaction")

	action := tx.CreateElement("Action")
	action.CreateElement("Name").SetText(string(command))
	action.CreateElement("Version").SetText(consts.ActionVersion)

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pe := tx.CreateElement("Parameters")
		for _, k := range keys {
			pe.CreateElement(k).SetText(params[k])
		}
	}

	m := tx.CreateElement("Merchant")
	m.CreateElement("ID").SetText(merchantID)
	m.CreateElement("Key").SetText(merchantKey)
	m.CreateElement("Checksum").SetText(sum)

	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize envelope: %w", err)
	}
	return b, nil
}

// Parse reads a response body and checks the protocol contract: the body must
// be well-formed XML whose root has a Status child. On Status != "OK" the
// text of the nearest Description element becomes a RejectError.
//
// Returns the response root on success.
func Parse(raw []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: fmt.Errorf("document has no root element")}
	}

	status := root.SelectElement("Status")
	if status == nil {
		return nil, &ProtocolError{Reason: "response has no Status element"}
	}
	if status.Text() != consts.StatusOK {
		desc := root.FindElement(".//Description")
		if desc == nil {
			return nil, &ProtocolError{Reason: "error response has no Description element"}
		}
		return nil, &RejectError{Description: desc.Text()}
	}
	return root, nil
}

// Result locates the element at selector (relative to root) and collapses it
// into a native value.
func Result(root *etree.Element, selector string) (any, error) {
	el := root.FindElement(selector)
	if el == nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("response has no %s element", strings.TrimPrefix(selector, "./"))}
	}
	return xmltree.Collapse(toNode(el)), nil
}

func toNode(el *etree.Element) *xmltree.Node {
	children := el.ChildElements()
	if len(children) == 0 {
		return &xmltree.Node{Tag: el.Tag, Text: el.Text()}
	}
	n := &xmltree.Node{Tag: el.Tag, Children: make([]*xmltree.Node, len(children))}
	for i, c := range children {
		n.Children[i] = toNode(c)
	}
	return n
}

// ParseError indicates a response body that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response XML: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ProtocolError indicates well-formed XML that misses a mandatory element.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "protocol violation: " + e.Reason
}

// RejectError carries the Description text of a non-OK Status response.
type RejectError struct {
	Description string
}

func (e *RejectError) Error() string {
	return "rejected: " + e.Description
}
