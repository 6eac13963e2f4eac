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
	"unicode/utf8"

	"github.com/thurn/rlf"
)

// cursor is a rune-level reader over a source string that tracks 1-based
// line and column positions, columns counted in Unicode code points as
// required by spec.md §4.2. It is the lexical foundation shared by both
// ParseTemplate and ParseFile, mirroring the teacher library's parserInput
// peek/next cursor used throughout iri/langtag.
type cursor struct {
	src    string
	offset int // byte offset of the next unread rune
	line   int
	column int
}

// newCursor validates src as UTF-8 up front, returning the byte offset of
// the first invalid byte if any (spec.md §4.2, "rejected if invalid with
// the location of the first invalid byte").
func newCursor(src string) (*cursor, *rlf.InvalidUtf8Error) {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &rlf.InvalidUtf8Error{ByteOffset: i}
		}
		i += size
	}
	return &cursor{src: src, line: 1, column: 1}, nil
}

// pos returns the cursor's current position.
func (c *cursor) pos() rlf.Pos { return rlf.Pos{Line: c.line, Column: c.column} }

// eof reports whether the cursor has consumed the whole input.
func (c *cursor) eof() bool { return c.offset >= len(c.src) }

// peek returns the next rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.offset:])
	return r, true
}

// peek2 returns the rune after the next one, without consuming anything.
// Used to recognize the two-character template escapes ({{, }}, @@, ::).
func (c *cursor) peek2() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(c.src[c.offset:])
	rest := c.src[c.offset+size:]
	if rest == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// next consumes and returns the next rune, advancing line/column.
func (c *cursor) next() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.src[c.offset:])
	c.offset += size
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r, true
}

// startsWith reports whether the unread input begins with r, without
// consuming it.
func (c *cursor) startsWith(r rune) bool {
	got, ok := c.peek()
	return ok && got == r
}

// startsWithStr reports whether the unread input begins with the two-rune
// sequence a, b, without consuming anything.
func (c *cursor) startsWithStr(a, b rune) bool {
	r1, ok1 := c.peek()
	if !ok1 || r1 != a {
		return false
	}
	r2, ok2 := c.peek2()
	return ok2 && r2 == b
}

// skipSpace consumes ASCII whitespace (space, tab, CR, LF) at the cursor.
// Used between tokens in interpolation and file-grammar contexts; literal
// template text never calls this, since whitespace there is significant.
func (c *cursor) skipSpace() {
	for {
		r, ok := c.peek()
		if !ok || !(r == ' ' || r == '\t' || r == '\r' || r == '\n') {
			return
		}
		c.next()
	}
}

// isIdentStart reports whether r may begin an identifier:
// [A-Za-z_] (spec.md §4.2).
func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isIdentCont reports whether r may continue an identifier:
// [A-Za-z0-9_].
func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// isUpper reports whether r is an ASCII uppercase letter, used
// by the automatic-capitalization rule of spec.md §4.2.
func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// readIdent consumes and returns an identifier starting at the cursor,
// along with its span. Returns false if the cursor is not at an
// identifier start.
func (c *cursor) readIdent() (string, rlf.Span, bool) {
	start := c.pos()
	r, ok := c.peek()
	if !ok || !isIdentStart(r) {
		return "", rlf.Span{}, false
	}
	var b []rune
	for {
		r, ok := c.peek()
		if !ok || !isIdentCont(r) {
			break
		}
		c.next()
		b = append(b, r)
	}
	return string(b), rlf.Span{Start: start, End: c.pos()}, true
}
