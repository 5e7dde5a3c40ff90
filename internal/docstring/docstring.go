// Package docstring parses structured component doc strings.
//
// A doc string starts with an empty line, followed by an indented body.
// The body may carry field markers:
//
//	:param target: the destination
//	:return: true when the robot arrived
//
// Parsing never fails: malformed input degrades to its raw text.
package docstring

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Param is one documented parameter
type Param struct {
	Name string
	Doc  string
}

// Docstring is the structured form of a doc string
type Docstring struct {
	Description string
	Params      []Param // nil when the doc string has no :param marker
	Return      *string // nil when the doc string has no :return: marker
}

// HasReturn reports whether a non-blank return description was parsed
func (d Docstring) HasReturn() bool {
	return d.Return != nil && strings.TrimSpace(*d.Return) != ""
}

// ParamNames returns the parameter names in declaration order
func (d Docstring) ParamNames() []string {
	names := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		names = append(names, p.Name)
	}
	return names
}

// Reporter receives diagnostics about malformed doc strings
type Reporter interface {
	Warn(format string, args ...interface{})
}

const (
	paramMarker  = ":param "
	returnMarker = ":return:"
)

var fieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Param", Pattern: paramMarker},
	{Name: "Return", Pattern: returnMarker},
	{Name: "Colon", Pattern: `:`},
	{Name: "Text", Pattern: `[^:]+`},
})

var (
	paramToken  = fieldLexer.Symbols()["Param"]
	returnToken = fieldLexer.Symbols()["Return"]
)

// Parser turns raw doc strings into Docstring values
type Parser struct {
	reporter Reporter
}

// NewParser creates a parser reporting malformed doc strings to reporter.
// A nil reporter silences diagnostics.
func NewParser(reporter Reporter) *Parser {
	return &Parser{reporter: reporter}
}

// Parse parses doc without reporting diagnostics
func Parse(doc string) Docstring {
	return NewParser(nil).Parse(doc)
}

// Parse splits doc into description, parameters and return description
func (p *Parser) Parse(doc string) Docstring {
	first, _, _ := strings.Cut(doc, "\n")
	if strings.TrimSpace(first) != "" {
		if p.reporter != nil {
			p.reporter.Warn("doc string does not start with an empty line: %q", first)
		}
		return Docstring{Description: doc}
	}

	text := Dedent(doc)

	markers := scanMarkers(text)
	if markers == nil {
		return Docstring{Description: text}
	}

	firstParam := -1
	for i, m := range markers {
		if m.kind == paramToken {
			firstParam = i
			break
		}
	}

	if firstParam < 0 {
		ret := markers[0]
		rtext := collapse(text[ret.end:])
		return Docstring{Description: text[:ret.start], Return: &rtext}
	}

	start := markers[firstParam].start
	result := Docstring{Description: text[:start]}

	blockEnd := len(text)
	var paramMarkers []marker
	for _, m := range markers[firstParam:] {
		if m.kind == returnToken {
			blockEnd = m.start
			rtext := collapse(text[m.end:])
			result.Return = &rtext
			break
		}
		paramMarkers = append(paramMarkers, m)
	}

	result.Params = make([]Param, 0, len(paramMarkers))
	for i, m := range paramMarkers {
		chunkEnd := blockEnd
		if i+1 < len(paramMarkers) {
			chunkEnd = paramMarkers[i+1].start
		}
		name, desc, _ := strings.Cut(text[m.end:chunkEnd], ":")
		result.Params = append(result.Params, Param{
			Name: strings.TrimSpace(name),
			Doc:  collapse(desc),
		})
	}

	return result
}

// Dedent drops the first line of doc and removes from every other line as
// many leading bytes as the first body line has leading spaces. Deeper
// indentation is kept.
func Dedent(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) < 2 {
		return ""
	}
	body := lines[1:]

	width := len(body[0]) - len(strings.TrimLeft(body[0], " \t"))
	for i, line := range body {
		if len(line) >= width {
			body[i] = line[width:]
		} else {
			body[i] = ""
		}
	}
	return strings.Join(body, "\n")
}

type marker struct {
	kind       lexer.TokenType
	start, end int
}

// scanMarkers returns the :param and :return: markers of text in order,
// or nil when there are none.
func scanMarkers(text string) []marker {
	lex, err := fieldLexer.LexString("", text)
	if err != nil {
		return nil
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil
	}

	var markers []marker
	for _, tok := range tokens {
		if tok.Type != paramToken && tok.Type != returnToken {
			continue
		}
		markers = append(markers, marker{
			kind:  tok.Type,
			start: tok.Pos.Offset,
			end:   tok.Pos.Offset + len(tok.Value),
		})
	}
	return markers
}

// collapse joins wrapped lines into one line of text
func collapse(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
