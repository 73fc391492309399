// Package xmltree models a parsed report document as an explicit tree of
// elements with a minimal query surface, instead of binding the rest of the
// pipeline to a concrete unmarshalling library. Report dialects differ in
// where attributes live, so parsers need tag/attribute/child/text access
// rather than fixed struct shapes.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/qa-insights/go-qa-analytics/internal/filereader"
	"golang.org/x/net/html/charset"
)

// ParseError reports a document that could not be loaded or was not
// well-formed XML. It is catchable per file so one bad document never aborts
// the ingestion run.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse report document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Element is one node of the document tree.
type Element struct {
	// Name is the local tag name, without any namespace prefix.
	Name string
	// Attrs holds the element's attributes keyed by local name.
	Attrs map[string]string
	// Children are the direct child elements in document order.
	Children []*Element
	// Text is the concatenated character data (including CDATA) placed
	// directly inside this element.
	Text string
}

// Attr returns the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrDefault returns the named attribute, or fallback when absent.
func (e *Element) AttrDefault(name, fallback string) string {
	if v, ok := e.Attrs[name]; ok {
		return v
	}
	return fallback
}

// FindFirst returns the first direct child with the given tag name, or nil.
func (e *Element) FindFirst(tag string) *Element {
	for _, child := range e.Children {
		if child.Name == tag {
			return child
		}
	}
	return nil
}

// FindAll returns every descendant element with the given tag name, in
// document order. The element itself is not considered.
func (e *Element) FindAll(tag string) []*Element {
	var matches []*Element
	for _, child := range e.Children {
		if child.Name == tag {
			matches = append(matches, child)
		}
		matches = append(matches, child.FindAll(tag)...)
	}
	return matches
}

// Document is one loaded report file.
type Document struct {
	Root *Element
}

// Parse reads XML from r and builds the element tree.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	var text []*strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, attr := range t.Attr {
				el.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			el := stack[len(stack)-1]
			el.Text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		}
	}

	if root != nil && len(stack) > 0 {
		return nil, fmt.Errorf("unexpected end of document inside <%s>", stack[len(stack)-1].Name)
	}
	if root == nil {
		return nil, fmt.Errorf("document contains no elements")
	}
	return &Document{Root: root}, nil
}

// ParseFile loads one report file into a Document, decoding any byte order
// mark first. All failures are returned as a *ParseError.
func ParseFile(path string) (*Document, error) {
	f, err := filereader.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}
