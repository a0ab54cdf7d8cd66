package content

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const structuredDataSelector = `script[type="application/ld+json"]`

// Document is a parsed HTML page. It exposes only the lookups the scrapers
// need: first/all by selector, attribute substring search, next sibling and text.
type Document struct {
	doc *goquery.Document
}

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
}

func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("html parse failed: %w", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

func ParseBytes(body []byte) (*Document, error) {
	return ParseDocument(bytes.NewReader(body))
}

// First returns the first element matching selector.
func (d *Document) First(selector string) (Node, bool) {
	return first(d.doc.Selection, selector)
}

// FindAll returns every element matching selector in document order.
func (d *Document) FindAll(selector string) []Node {
	return nodes(d.doc.Find(selector))
}

// FindByAttrContains returns elements whose attr value contains substr.
func (d *Document) FindByAttrContains(attr, substr string) []Node {
	sel := d.doc.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr(attr)
		return ok && strings.Contains(v, substr)
	})
	return nodes(sel)
}

// FindByClass returns tag elements carrying class as one of their classes.
func (d *Document) FindByClass(tag, class string) []Node {
	return nodes(d.doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	}))
}

// StructuredDataBlocks returns the raw contents of every JSON-LD script in
// document order.
func (d *Document) StructuredDataBlocks() []string {
	var blocks []string
	d.doc.Find(structuredDataSelector).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, s.Text())
	})
	return blocks
}

// Links returns the href of every anchor, in document order.
func (d *Document) Links() []string {
	var links []string
	d.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})
	return links
}

// Tag returns the lower-case element name.
func (n Node) Tag() string {
	if n.sel == nil || n.sel.Length() == 0 {
		return ""
	}
	return goquery.NodeName(n.sel)
}

// Text returns the element text with whitespace collapsed.
func (n Node) Text() string {
	if n.sel == nil {
		return ""
	}
	return CleanText(n.sel.Text())
}

func (n Node) Attr(name string) (string, bool) {
	if n.sel == nil {
		return "", false
	}
	return n.sel.Attr(name)
}

// NextSibling returns the next element sibling, skipping text nodes.
func (n Node) NextSibling() (Node, bool) {
	if n.sel == nil {
		return Node{}, false
	}
	next := n.sel.Next()
	if next.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: next}, true
}

func (n Node) First(selector string) (Node, bool) {
	if n.sel == nil {
		return Node{}, false
	}
	return first(n.sel, selector)
}

func (n Node) FindAll(selector string) []Node {
	if n.sel == nil {
		return nil
	}
	return nodes(n.sel.Find(selector))
}

func first(sel *goquery.Selection, selector string) (Node, bool) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: found}, true
}

func nodes(sel *goquery.Selection) []Node {
	if sel.Length() == 0 {
		return nil
	}
	out := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, Node{sel: s})
	})
	return out
}
