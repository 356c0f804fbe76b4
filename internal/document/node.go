// Package document defines the parsed-markdown node tree consumed by the
// slide builder, and the goldmark adapter that produces it.
package document

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for node types outside the closed Kind set.
var ErrUnknownKind = errors.New("unknown node kind")

// Kind is the closed set of document node types.
type Kind int

const (
	KindHeading Kind = iota
	KindList
	KindListItem
	KindCode
	KindImage
	KindRawMarkup
	KindText
	KindCodespan
	KindStrong
	KindEmphasis
	KindLink
	KindParagraph
	KindBlockQuote
	KindThematicBreak
	KindTranscript
)

var kindNames = [...]string{
	KindHeading:       "heading",
	KindList:          "list",
	KindListItem:      "list_item",
	KindCode:          "code",
	KindImage:         "image",
	KindRawMarkup:     "raw_markup",
	KindText:          "text",
	KindCodespan:      "codespan",
	KindStrong:        "strong",
	KindEmphasis:      "emphasis",
	KindLink:          "link",
	KindParagraph:     "paragraph",
	KindBlockQuote:    "block_quote",
	KindThematicBreak: "thematic_break",
	KindTranscript:    "transcript",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a type name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Node is one parsed unit of the source document. Which fields are set
// depends on Kind:
//
//	heading     Level, Text (plain), Children (inline)
//	list        Children (list_item)
//	list_item   Text (plain), Children (nested list)
//	code        Text, Info (language)
//	image       Dest, Alt
//	transcript  Dest
//	raw_markup  Text
//	text        Text
//	codespan    Text
//	link        Dest, Children
//	others      Children
//
// Nodes are never modified after parsing.
type Node struct {
	Kind     Kind    `json:"type"`
	Children []*Node `json:"children,omitempty"`
	Text     string  `json:"text,omitempty"`
	Level    int     `json:"level,omitempty"`
	Info     string  `json:"info,omitempty"`
	Dest     string  `json:"dest,omitempty"`
	Alt      string  `json:"alt,omitempty"`
}

// PlainText concatenates the text of n and all of its descendants.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}
	if len(n.Children) == 0 {
		return n.Text
	}
	var s string
	for _, c := range n.Children {
		s += c.PlainText()
	}
	return s
}
