package contentful

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Rich text node types used by the Contentful document model.
const (
	NodeDocument      = "document"
	NodeParagraph     = "paragraph"
	NodeText          = "text"
	NodeHeadingPrefix = "heading-"
	NodeOrderedList   = "ordered-list"
	NodeUnorderedList = "unordered-list"
	NodeListItem      = "list-item"
	NodeBlockquote    = "blockquote"
	NodeHR            = "hr"
	NodeHyperlink     = "hyperlink"
)

type Mark struct {
	Type string `json:"type"`
}

type Node struct {
	NodeType string         `json:"nodeType"`
	Value    string         `json:"value,omitempty"`
	Marks    []Mark         `json:"marks,omitempty"`
	Data     map[string]any `json:"data"`
	Content  []Node         `json:"content,omitempty"`
}

// Document is the root node of a rich text field.
type Document struct {
	Node
}

// DocumentFromValue reinterprets a decoded JSON value as a rich text document.
func DocumentFromValue(v any) (*Document, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if nt, _ := m["nodeType"].(string); nt != NodeDocument {
		return nil, false
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, false
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

func isBlock(nodeType string) bool {
	switch nodeType {
	case NodeParagraph, NodeListItem, NodeBlockquote, NodeHR:
		return true
	}
	return strings.HasPrefix(nodeType, NodeHeadingPrefix)
}

// PlainText flattens the document; block nodes end with a newline.
func PlainText(doc *Document) string {
	if doc == nil {
		return ""
	}
	var buf strings.Builder
	writePlain(&buf, doc.Node)
	return strings.TrimSpace(buf.String())
}

func writePlain(buf *strings.Builder, n Node) {
	if n.NodeType == NodeText {
		buf.WriteString(n.Value)
		return
	}
	for _, child := range n.Content {
		writePlain(buf, child)
	}
	if isBlock(n.NodeType) {
		buf.WriteByte('\n')
	}
}

// WordCount counts whitespace-separated words of the plain text.
func WordCount(doc *Document) int {
	return len(strings.Fields(PlainText(doc)))
}

// FromMarkdown converts a Markdown body into a rich text document.
func FromMarkdown(src string) *Document {
	source := []byte(src)
	root := goldmark.New().Parser().Parse(text.NewReader(source))
	doc := &Document{Node: Node{NodeType: NodeDocument, Data: map[string]any{}}}
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if n, ok := convertBlock(c, source); ok {
			doc.Content = append(doc.Content, n)
		}
	}
	return doc
}

func convertBlock(n ast.Node, src []byte) (Node, bool) {
	switch v := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return block(NodeParagraph, convertInlines(v, src, nil)), true
	case *ast.Heading:
		return block(NodeHeadingPrefix+strconv.Itoa(v.Level), convertInlines(v, src, nil)), true
	case *ast.List:
		kind := NodeUnorderedList
		if v.IsOrdered() {
			kind = NodeOrderedList
		}
		return block(kind, convertChildren(v, src)), true
	case *ast.ListItem:
		return block(NodeListItem, convertChildren(v, src)), true
	case *ast.Blockquote:
		return block(NodeBlockquote, convertChildren(v, src)), true
	case *ast.ThematicBreak:
		return block(NodeHR, nil), true
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var buf bytes.Buffer
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		code := strings.TrimRight(buf.String(), "\n")
		return block(NodeParagraph, []Node{textNode(code, []Mark{{Type: "code"}})}), true
	default:
		return Node{}, false
	}
}

func convertChildren(n ast.Node, src []byte) []Node {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if converted, ok := convertBlock(c, src); ok {
			out = append(out, converted)
		}
	}
	return out
}

func convertInlines(n ast.Node, src []byte, marks []Mark) []Node {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			value := string(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				value += " "
			}
			out = append(out, textNode(value, marks))
		case *ast.String:
			out = append(out, textNode(string(v.Value), marks))
		case *ast.Emphasis:
			mark := Mark{Type: "italic"}
			if v.Level >= 2 {
				mark = Mark{Type: "bold"}
			}
			out = append(out, convertInlines(v, src, withMark(marks, mark))...)
		case *ast.CodeSpan:
			out = append(out, convertInlines(v, src, withMark(marks, Mark{Type: "code"}))...)
		case *ast.Link:
			link := Node{
				NodeType: NodeHyperlink,
				Data:     map[string]any{"uri": string(v.Destination)},
				Content:  convertInlines(v, src, marks),
			}
			out = append(out, link)
		case *ast.AutoLink:
			uri := string(v.URL(src))
			out = append(out, Node{
				NodeType: NodeHyperlink,
				Data:     map[string]any{"uri": uri},
				Content:  []Node{textNode(uri, marks)},
			})
		case *ast.Image, *ast.RawHTML:
			// alt text and inline HTML are not body text
		default:
			if c.HasChildren() {
				out = append(out, convertInlines(c, src, marks)...)
			}
		}
	}
	return out
}

func withMark(marks []Mark, m Mark) []Mark {
	out := make([]Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, m)
}

func block(nodeType string, content []Node) Node {
	return Node{NodeType: nodeType, Data: map[string]any{}, Content: content}
}

func textNode(value string, marks []Mark) Node {
	if marks == nil {
		marks = []Mark{}
	}
	return Node{NodeType: NodeText, Value: value, Marks: marks, Data: map[string]any{}}
}
