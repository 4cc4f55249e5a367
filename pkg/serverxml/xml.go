package serverxml

import (
	"errors"
	"strconv"

	"github.com/beevik/etree"
)

// readRoot parses data and returns its root element.
func readRoot(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, XMLSyntaxError(err)
	}
	root := doc.Root()
	if root == nil {
		return nil, XMLSyntaxError(errors.New("document has no root element"))
	}
	return root, nil
}

// lenientRoot is readRoot for validity checks, malformed input gives nil.
func lenientRoot(data []byte) *etree.Element {
	root, err := readRoot(data)
	if err != nil {
		return nil
	}
	return root
}

func parseBool(token, s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, BooleanFormatError(token, s)
}

func parseInt(token, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, NumberFormatError(token, s, err)
	}
	return i, nil
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}

// attrs reads typed attributes of one element and keeps the first
// error, later reads become no-ops.
type attrs struct {
	el  *etree.Element
	err error
}

func newAttrs(el *etree.Element) *attrs {
	return &attrs{el: el}
}

func (a *attrs) lookup(name string) (string, bool) {
	if a.err != nil {
		return "", false
	}
	at := a.el.SelectAttr(name)
	if at == nil {
		return "", false
	}
	return at.Value, true
}

func (a *attrs) required(name string) (string, bool) {
	s, ok := a.lookup(name)
	if !ok && a.err == nil {
		a.err = StructuralError(name, a.el.Tag)
	}
	return s, ok
}

func (a *attrs) str(name string) string {
	s, _ := a.required(name)
	return s
}

func (a *attrs) boolean(name string) bool {
	s, ok := a.required(name)
	if !ok {
		return false
	}
	return a.toBool(name, s)
}

// optBoolean returns def when the attribute is absent.
func (a *attrs) optBoolean(name string, def bool) bool {
	s, ok := a.lookup(name)
	if !ok {
		return def
	}
	return a.toBool(name, s)
}

func (a *attrs) integer(name string) int {
	s, ok := a.required(name)
	if !ok {
		return 0
	}
	return a.toInt(name, s)
}

func (a *attrs) toBool(name, s string) bool {
	b, err := parseBool(name, s)
	if err != nil {
		a.err = err
	}
	return b
}

func (a *attrs) toInt(name, s string) int {
	i, err := parseInt(name, s)
	if err != nil {
		a.err = err
	}
	return i
}

// serialize pretty-prints doc with indent spaces per level.
func serialize(doc *etree.Document, indent int) (string, error) {
	doc.Indent(indent)
	return doc.WriteToString()
}
