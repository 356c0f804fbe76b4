package document

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// TranscriptAlt is the image alt text that marks a transcript reference.
const TranscriptAlt = "codio"

// Parse parses CommonMark source into top-level document nodes. Images
// found directly inside a paragraph are lifted out and placed before it;
// a paragraph left without content is dropped.
func Parse(source []byte) ([]*Node, error) {
	root := markdown.Parser().Parse(text.NewReader(source))

	var nodes []*Node
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		converted, err := convertBlock(n, source)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, converted...)
	}
	return nodes, nil
}

// markdown parses thematic breaks with their source line kept in Lines,
// which goldmark's own break parser leaves empty.
var markdown = goldmark.New(goldmark.WithParserOptions(
	parser.WithBlockParsers(util.Prioritized(positionedBreak{parser.NewThematicBreakParser()}, 199)),
))

type positionedBreak struct {
	parser.BlockParser
}

func (p positionedBreak) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	_, segment := reader.PeekLine()
	n, state := p.BlockParser.Open(parent, reader, pc)
	if n != nil {
		n.Lines().Append(segment)
	}
	return n, state
}

// Split cuts source at its top-level thematic breaks, the same breaks Parse
// reports as KindThematicBreak nodes. Blank chunks are dropped.
func Split(source []byte) []string {
	root := markdown.Parser().Parse(text.NewReader(source))

	var (
		chunks []string
		start  int
	)
	cut := func(stop int) {
		if chunk := strings.TrimSpace(string(source[start:stop])); chunk != "" {
			chunks = append(chunks, chunk+"\n")
		}
	}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindThematicBreak || n.Lines().Len() == 0 {
			continue
		}
		seg := n.Lines().At(0)
		cut(seg.Start)
		start = seg.Stop
	}
	cut(len(source))
	return chunks
}

func convertBlock(n ast.Node, source []byte) ([]*Node, error) {
	switch n := n.(type) {
	case *ast.Heading:
		children, err := convertInlines(n, source)
		if err != nil {
			return nil, err
		}
		node := &Node{Kind: KindHeading, Level: n.Level, Children: children}
		node.Text = node.PlainText()
		return []*Node{node}, nil

	case *ast.List:
		list, err := convertList(n, source)
		if err != nil {
			return nil, err
		}
		return []*Node{list}, nil

	case *ast.FencedCodeBlock:
		return []*Node{{
			Kind: KindCode,
			Text: linesText(n.Lines(), source),
			Info: string(n.Language(source)),
		}}, nil

	case *ast.CodeBlock:
		return []*Node{{Kind: KindCode, Text: linesText(n.Lines(), source)}}, nil

	case *ast.HTMLBlock:
		raw := linesText(n.Lines(), source)
		if n.HasClosure() {
			raw += "\n" + string(n.ClosureLine.Value(source))
		}
		return []*Node{{Kind: KindRawMarkup, Text: strings.TrimRight(raw, "\n")}}, nil

	case *ast.ThematicBreak:
		return []*Node{{Kind: KindThematicBreak}}, nil

	case *ast.Blockquote:
		quote := &Node{Kind: KindBlockQuote}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			converted, err := convertBlock(c, source)
			if err != nil {
				return nil, err
			}
			quote.Children = append(quote.Children, converted...)
		}
		return []*Node{quote}, nil

	case *ast.Paragraph, *ast.TextBlock:
		return convertParagraph(n, source)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, n.Kind())
	}
}

func convertParagraph(p ast.Node, source []byte) ([]*Node, error) {
	var (
		lifted []*Node
		para   = &Node{Kind: KindParagraph}
	)
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		if img, ok := c.(*ast.Image); ok {
			lifted = append(lifted, imageNode(img, source))
			continue
		}
		inline, err := convertInline(c, source)
		if err != nil {
			return nil, err
		}
		para.Children = append(para.Children, inline)
	}
	if strings.TrimSpace(para.PlainText()) != "" {
		lifted = append(lifted, para)
	}
	return lifted, nil
}

func imageNode(img *ast.Image, source []byte) *Node {
	alt := plainText(img, source)
	if alt == TranscriptAlt {
		return &Node{Kind: KindTranscript, Dest: string(img.Destination)}
	}
	return &Node{Kind: KindImage, Dest: string(img.Destination), Alt: alt}
}

func convertList(l *ast.List, source []byte) (*Node, error) {
	list := &Node{Kind: KindList}
	for it := l.FirstChild(); it != nil; it = it.NextSibling() {
		item := &Node{Kind: KindListItem}
		var texts []string
		for c := it.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				nested, err := convertList(c, source)
				if err != nil {
					return nil, err
				}
				item.Children = append(item.Children, nested)
			default:
				texts = append(texts, plainText(c, source))
			}
		}
		item.Text = strings.Join(texts, " ")
		list.Children = append(list.Children, item)
	}
	return list, nil
}

func convertInlines(parent ast.Node, source []byte) ([]*Node, error) {
	var nodes []*Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		n, err := convertInline(c, source)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func convertInline(n ast.Node, source []byte) (*Node, error) {
	switch n := n.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			s += "\n"
		}
		return &Node{Kind: KindText, Text: s}, nil

	case *ast.String:
		return &Node{Kind: KindText, Text: string(n.Value)}, nil

	case *ast.CodeSpan:
		return &Node{Kind: KindCodespan, Text: plainText(n, source)}, nil

	case *ast.Emphasis:
		children, err := convertInlines(n, source)
		if err != nil {
			return nil, err
		}
		kind := KindEmphasis
		if n.Level >= 2 {
			kind = KindStrong
		}
		return &Node{Kind: kind, Children: children}, nil

	case *ast.Link:
		children, err := convertInlines(n, source)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindLink, Dest: string(n.Destination), Children: children}, nil

	case *ast.AutoLink:
		return &Node{
			Kind:     KindLink,
			Dest:     string(n.URL(source)),
			Children: []*Node{{Kind: KindText, Text: string(n.Label(source))}},
		}, nil

	case *ast.Image:
		// only paragraph-level images become image elements
		return &Node{Kind: KindText, Text: plainText(n, source)}, nil

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(source))
		}
		return &Node{Kind: KindRawMarkup, Text: b.String()}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, n.Kind())
	}
}

func linesText(lines *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
