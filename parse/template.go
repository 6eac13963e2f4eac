/*
Copyright 2026 RLF Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package parse

import (
	"strings"
	"unicode"

	"github.com/thurn/rlf"
)

// ParseTemplate parses the template grammar of spec.md §4.2:
//
//	template      := segment*
//	segment       := literal | '{' interpolation '}'
//	interpolation := transform* reference selector*
//	transform     := '@' ident transform_ctx?
//	transform_ctx := ':' selector
//	reference     := ident | ident '(' args? ')'
//	args          := ref_expr (',' ref_expr)*
//	ref_expr      := reference
//	selector      := ':' ident
//
// src is the already-unquoted template text: literal string escaping
// (quote, backslash) is a concern of the caller when src came from a file
// literal (see ParseFile); ParseTemplate only handles the template-level
// escapes {{, }}, @@, and ::.
func ParseTemplate(src string) (rlf.Template, error) {
	cur, invalid := newCursor(src)
	if invalid != nil {
		return rlf.Template{}, invalid
	}
	tp := &templateParser{cur: cur}
	segs, err := tp.parseSegments(false)
	if err != nil {
		return rlf.Template{}, err
	}
	return rlf.Template{Segments: segs, Span: rlf.Span{Start: rlf.Pos{Line: 1, Column: 1}, End: cur.pos()}}, nil
}

type templateParser struct {
	cur *cursor
}

// parseSegments consumes segments until end of input. inArgContext is
// unused by the grammar above (args are bare references, not segment
// lists) but is kept for symmetry with parseReference's recursive
// structure and to make the "no segment may start mid-escape" invariant
// explicit at call sites.
func (p *templateParser) parseSegments(inArgContext bool) ([]rlf.Segment, error) {
	_ = inArgContext
	var segs []rlf.Segment
	var literal strings.Builder
	literalStart := p.cur.pos()

	flushLiteral := func() {
		if literal.Len() > 0 {
			segs = append(segs, rlf.Segment{
				IsLiteral: true,
				Literal:   literal.String(),
				Span:      rlf.Span{Start: literalStart, End: p.cur.pos()},
			})
			literal.Reset()
		}
	}

	for {
		r, ok := p.cur.peek()
		if !ok {
			flushLiteral()
			return segs, nil
		}

		switch {
		case p.cur.startsWithStr('{', '{'):
			p.cur.next()
			p.cur.next()
			literal.WriteRune('{')
		case p.cur.startsWithStr('}', '}'):
			p.cur.next()
			p.cur.next()
			literal.WriteRune('}')
		case p.cur.startsWithStr('@', '@'):
			p.cur.next()
			p.cur.next()
			literal.WriteRune('@')
		case p.cur.startsWithStr(':', ':'):
			p.cur.next()
			p.cur.next()
			literal.WriteRune(':')
		case r == '{':
			flushLiteral()
			start := p.cur.pos()
			p.cur.next()
			interp, err := p.parseInterpolation()
			if err != nil {
				return nil, err
			}
			if _, ok := p.cur.peek(); !ok {
				return nil, &rlf.UnexpectedEofError{Message: "unterminated interpolation, expected '}'"}
			}
			closeR, _ := p.cur.next()
			if closeR != '}' {
				return nil, &rlf.ParseError{Line: p.cur.line, Column: p.cur.column, Message: "expected '}' to close interpolation"}
			}
			segs = append(segs, rlf.Segment{
				IsLiteral: false,
				Interp:    interp,
				Span:      rlf.Span{Start: start, End: p.cur.pos()},
			})
			literalStart = p.cur.pos()
		default:
			p.cur.next()
			literal.WriteRune(r)
		}
	}
}

// parseInterpolation parses `transform* reference selector*`, the cursor
// having just consumed the opening '{'.
func (p *templateParser) parseInterpolation() (rlf.Interpolation, error) {
	start := p.cur.pos()
	p.cur.skipSpace()

	var transforms []rlf.TransformRef
	for p.cur.startsWith('@') {
		tr, err := p.parseTransform()
		if err != nil {
			return rlf.Interpolation{}, err
		}
		transforms = append(transforms, tr)
		p.cur.skipSpace()
	}

	ref, err := p.parseReference()
	if err != nil {
		return rlf.Interpolation{}, err
	}

	// Automatic capitalization (spec.md §4.2): applied after escape
	// handling (already done by the time we read runes here) and before
	// any further validation. It is keyed off the reference's own name,
	// regardless of whether it is a bare identifier or a call.
	if r := firstRune(ref.Name); r != 0 && isUpper(r) {
		transforms = append([]rlf.TransformRef{{Name: "cap", Span: ref.Span}}, transforms...)
		ref.Name = lowerFirst(ref.Name)
	}

	p.cur.skipSpace()
	var selectors []rlf.Selector
	for p.cur.startsWith(':') {
		sel, err := p.parseSelector()
		if err != nil {
			return rlf.Interpolation{}, err
		}
		selectors = append(selectors, sel)
		p.cur.skipSpace()
	}

	return rlf.Interpolation{
		Transforms: transforms,
		Reference:  ref,
		Selectors:  selectors,
		Span:       rlf.Span{Start: start, End: p.cur.pos()},
	}, nil
}

// parseTransform parses `'@' ident transform_ctx?`.
func (p *templateParser) parseTransform() (rlf.TransformRef, error) {
	start := p.cur.pos()
	p.cur.next() // consume '@'
	name, _, ok := p.cur.readIdent()
	if !ok {
		return rlf.TransformRef{}, &rlf.ParseError{Line: p.cur.line, Column: p.cur.column, Message: "expected transform name after '@'"}
	}
	tr := rlf.TransformRef{Name: name, Span: rlf.Span{Start: start, End: p.cur.pos()}}
	if p.cur.startsWith(':') {
		sel, err := p.parseSelector()
		if err != nil {
			return rlf.TransformRef{}, err
		}
		tr.Context = &sel
		tr.HasContext = true
		tr.Span.End = p.cur.pos()
	}
	return tr, nil
}

// parseSelector parses `':' ident`.
func (p *templateParser) parseSelector() (rlf.Selector, error) {
	start := p.cur.pos()
	p.cur.next() // consume ':'
	name, _, ok := p.cur.readIdent()
	if !ok {
		return rlf.Selector{}, &rlf.ParseError{Line: p.cur.line, Column: p.cur.column, Message: "expected identifier after ':'"}
	}
	return rlf.Selector{Name: name, Span: rlf.Span{Start: start, End: p.cur.pos()}}, nil
}

// parseReference parses `ident | ident '(' args? ')'`.
func (p *templateParser) parseReference() (rlf.Reference, error) {
	start := p.cur.pos()
	name, _, ok := p.cur.readIdent()
	if !ok {
		return rlf.Reference{}, &rlf.ParseError{Line: p.cur.line, Column: p.cur.column, Message: "expected an identifier or phrase call"}
	}
	p.cur.skipSpace()
	if !p.cur.startsWith('(') {
		return rlf.Reference{Kind: rlf.RefIdent, Name: name, Span: rlf.Span{Start: start, End: p.cur.pos()}}, nil
	}

	p.cur.next() // consume '('
	p.cur.skipSpace()
	var args []rlf.Reference
	if !p.cur.startsWith(')') {
		for {
			arg, err := p.parseReference()
			if err != nil {
				return rlf.Reference{}, err
			}
			args = append(args, arg)
			p.cur.skipSpace()
			if p.cur.startsWith(',') {
				p.cur.next()
				p.cur.skipSpace()
				continue
			}
			break
		}
	}
	if !p.cur.startsWith(')') {
		return rlf.Reference{}, &rlf.ParseError{Line: p.cur.line, Column: p.cur.column, Message: "expected ')' to close argument list"}
	}
	p.cur.next() // consume ')'
	return rlf.Reference{Kind: rlf.RefCall, Name: name, Args: args, Span: rlf.Span{Start: start, End: p.cur.pos()}}, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
