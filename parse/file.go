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

	"github.com/thurn/rlf"
)

// ParseFile parses the whole-translation-file grammar of spec.md §4.2,
// with tags and the from-modifier placed after '=' (see parseDefinition):
//
//	file       := (comment | definition)*
//	definition := ident params? '=' tag* (':'? 'from' '(' ident ')')? body ';'
//	tag        := ':' ident
//	params     := '(' ident (',' ident)* ')'
//	body       := template_string
//	            | '{' entry (',' entry)* ','? '}'
//	entry      := key_list ':' template_string
//	key_list   := variant_key (',' variant_key)*
//	variant_key := ident ('.' ident)*
//
// Line comments begin with `//` and run to the end of the line; they are
// only recognized here, at the file level, never inside a template
// string (spec.md §4.2).
func ParseFile(src string) (rlf.File, error) {
	cur, invalid := newCursor(src)
	if invalid != nil {
		return rlf.File{}, invalid
	}
	fp := &fileParser{cur: cur}
	var defs []rlf.PhraseDefinition
	for {
		fp.skipTrivia()
		if fp.cur.eof() {
			return rlf.File{Definitions: defs}, nil
		}
		def, err := fp.parseDefinition()
		if err != nil {
			return rlf.File{}, err
		}
		defs = append(defs, def)
	}
}

type fileParser struct {
	cur *cursor
}

// skipTrivia consumes whitespace and `// ...` line comments.
func (p *fileParser) skipTrivia() {
	for {
		p.cur.skipSpace()
		if p.cur.startsWithStr('/', '/') {
			for {
				r, ok := p.cur.peek()
				if !ok || r == '\n' {
					break
				}
				p.cur.next()
			}
			continue
		}
		return
	}
}

func (p *fileParser) errf(msg string) error {
	return &rlf.ParseError{Line: p.cur.line, Column: p.cur.column, Message: msg}
}

func (p *fileParser) expect(r rune, what string) error {
	if !p.cur.startsWith(r) {
		if p.cur.eof() {
			return &rlf.UnexpectedEofError{Message: "expected " + what}
		}
		return p.errf("expected " + what)
	}
	p.cur.next()
	return nil
}

// parseDefinition parses one definition.
//
// spec.md §4.2 states the abstract grammar as
// `tag* ('from' '(' ident ')')? ident params? '=' body ';'`, placing tags
// and the from-modifier before the phrase name. The worked example in
// spec.md §6 ("Example of every surface form") is unambiguous and
// contradicts that ordering:
//
//	event = :an "event";
//	wrap(x) = :from(x) "<b>{x}</b>";
//
// Tags and from(...) appear immediately after '=', modifying the body,
// not before the name. This implementation follows the concrete example
// (see DESIGN.md for this Open Question resolution): the effective
// surface grammar parsed here is
// `ident params? '=' tag* (':'? 'from' '(' ident ')')? body ';'`.
func (p *fileParser) parseDefinition() (rlf.PhraseDefinition, error) {
	start := p.cur.pos()

	name, nameSpan, ok := p.cur.readIdent()
	if !ok {
		return rlf.PhraseDefinition{}, p.errf("expected a phrase name")
	}
	p.skipTrivia()

	var params []string
	if p.cur.startsWith('(') {
		p.cur.next()
		p.skipTrivia()
		if !p.cur.startsWith(')') {
			for {
				pname, _, ok := p.cur.readIdent()
				if !ok {
					return rlf.PhraseDefinition{}, p.errf("expected a parameter name")
				}
				params = append(params, pname)
				p.skipTrivia()
				if p.cur.startsWith(',') {
					p.cur.next()
					p.skipTrivia()
					continue
				}
				break
			}
		}
		if err := p.expect(')', "')' to close parameter list"); err != nil {
			return rlf.PhraseDefinition{}, err
		}
		p.skipTrivia()
	}

	if err := p.expect('=', "'=' after phrase header"); err != nil {
		return rlf.PhraseDefinition{}, err
	}
	p.skipTrivia()

	var tags []rlf.Tag
	for p.cur.startsWith(':') {
		save := *p.cur
		p.cur.next()
		tagName, _, ok := p.cur.readIdent()
		if !ok {
			return rlf.PhraseDefinition{}, p.errf("expected identifier after ':' in tag")
		}
		if tagName == "from" && p.cur.startsWith('(') {
			// `:from(param)` is the from-modifier, not a tag.
			*p.cur = save
			p.cur.next()
			break
		}
		tags = append(tags, rlf.Tag(tagName))
		p.skipTrivia()
	}

	var from string
	hasFrom := false
	if p.peekKeyword("from") {
		p.consumeKeyword("from")
		p.skipTrivia()
		if err := p.expect('(', "'(' after 'from'"); err != nil {
			return rlf.PhraseDefinition{}, err
		}
		p.skipTrivia()
		fromName, _, ok := p.cur.readIdent()
		if !ok {
			return rlf.PhraseDefinition{}, p.errf("expected parameter name inside from(...)")
		}
		from = fromName
		hasFrom = true
		p.skipTrivia()
		if err := p.expect(')', "')' to close from(...)"); err != nil {
			return rlf.PhraseDefinition{}, err
		}
		p.skipTrivia()
	}

	body, err := p.parseBody()
	if err != nil {
		return rlf.PhraseDefinition{}, err
	}
	p.skipTrivia()
	if err := p.expect(';', "';' to terminate definition"); err != nil {
		return rlf.PhraseDefinition{}, err
	}

	return rlf.PhraseDefinition{
		Name:     name,
		Params:   params,
		Tags:     tags,
		From:     from,
		HasFrom:  hasFrom,
		Body:     body,
		Span:     rlf.Span{Start: start, End: p.cur.pos()},
		NameSpan: nameSpan,
	}, nil
}

// peekKeyword reports whether the upcoming identifier equals kw without
// consuming it (and without matching a longer identifier that merely
// starts with kw, e.g. "fromage").
func (p *fileParser) peekKeyword(kw string) bool {
	save := *p.cur
	defer func() { *p.cur = save }()
	name, _, ok := p.cur.readIdent()
	return ok && name == kw
}

func (p *fileParser) consumeKeyword(kw string) {
	p.cur.readIdent()
	_ = kw
}

// parseBody parses `body := template_string | '{' entry (',' entry)* ','? '}'`.
func (p *fileParser) parseBody() (rlf.PhraseBody, error) {
	if p.cur.startsWith('"') {
		tmpl, err := p.parseTemplateString()
		if err != nil {
			return rlf.PhraseBody{}, err
		}
		return rlf.PhraseBody{Template: tmpl}, nil
	}
	if !p.cur.startsWith('{') {
		return rlf.PhraseBody{}, p.errf("expected a template string or a variant block")
	}
	p.cur.next()
	p.skipTrivia()

	var entries []rlf.VariantEntry
	for !p.cur.startsWith('}') {
		entry, err := p.parseEntry()
		if err != nil {
			return rlf.PhraseBody{}, err
		}
		entries = append(entries, entry)
		p.skipTrivia()
		if p.cur.startsWith(',') {
			p.cur.next()
			p.skipTrivia()
			// Trailing commas are permitted inside variant blocks
			// (spec.md §4.2).
			continue
		}
		break
	}
	if err := p.expect('}', "'}' to close variant block"); err != nil {
		return rlf.PhraseBody{}, err
	}
	return rlf.PhraseBody{IsVariants: true, Variants: entries}, nil
}

// parseEntry parses `key_list ':' template_string`.
func (p *fileParser) parseEntry() (rlf.VariantEntry, error) {
	start := p.cur.pos()
	keys, err := p.parseKeyList()
	if err != nil {
		return rlf.VariantEntry{}, err
	}
	p.skipTrivia()
	if err := p.expect(':', "':' between variant keys and template"); err != nil {
		return rlf.VariantEntry{}, err
	}
	p.skipTrivia()
	tmpl, err := p.parseTemplateString()
	if err != nil {
		return rlf.VariantEntry{}, err
	}
	return rlf.VariantEntry{KeyList: keys, Template: tmpl, Span: rlf.Span{Start: start, End: p.cur.pos()}}, nil
}

// parseKeyList parses `variant_key (',' variant_key)*`.
func (p *fileParser) parseKeyList() ([]rlf.VariantKey, error) {
	var keys []rlf.VariantKey
	for {
		key, err := p.parseVariantKey()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		p.skipTrivia()
		if p.cur.startsWith(',') {
			// A comma here could introduce another key in this key_list.
			// The comma is consumed only when an identifier start follows
			// it; otherwise the cursor is restored to the comma and the
			// key list ends there.
			save := *p.cur
			p.cur.next()
			p.skipTrivia()
			if !isVariantKeyStart(p.cur) {
				*p.cur = save
				return keys, nil
			}
			continue
		}
		return keys, nil
	}
}

func isVariantKeyStart(c *cursor) bool {
	r, ok := c.peek()
	return ok && isIdentStart(r)
}

// parseVariantKey parses `ident ('.' ident)*`.
func (p *fileParser) parseVariantKey() (rlf.VariantKey, error) {
	first, _, ok := p.cur.readIdent()
	if !ok {
		return "", p.errf("expected a variant key")
	}
	var b strings.Builder
	b.WriteString(first)
	for p.cur.startsWith('.') {
		save := *p.cur
		p.cur.next()
		next, _, ok := p.cur.readIdent()
		if !ok {
			*p.cur = save
			break
		}
		b.WriteByte('.')
		b.WriteString(next)
	}
	return rlf.VariantKey(b.String()), nil
}

// parseTemplateString lexes a double-quoted string literal with ordinary
// host-level escaping (`\"` and `\\`) and then parses its content as a
// template (spec.md §4.2, "Inside literal string syntax, the host-level
// escaping... applies as in any quoted string").
func (p *fileParser) parseTemplateString() (rlf.Template, error) {
	if err := p.expect('"', "opening '\"'"); err != nil {
		return rlf.Template{}, err
	}
	var content strings.Builder
	for {
		r, ok := p.cur.next()
		if !ok {
			return rlf.Template{}, &rlf.UnexpectedEofError{Message: "unterminated string literal"}
		}
		if r == '\\' {
			esc, ok := p.cur.next()
			if !ok {
				return rlf.Template{}, &rlf.UnexpectedEofError{Message: "unterminated escape in string literal"}
			}
			switch esc {
			case '"':
				content.WriteByte('"')
			case '\\':
				content.WriteByte('\\')
			case 'n':
				content.WriteByte('\n')
			case 't':
				content.WriteByte('\t')
			default:
				return rlf.Template{}, p.errf("unknown string escape '\\" + string(esc) + "'")
			}
			continue
		}
		if r == '"' {
			break
		}
		content.WriteRune(r)
	}
	return ParseTemplate(content.String())
}
