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

package transform

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/thurn/rlf"
)

func init() {
	register(universalLanguage, "cap", capTransform)
	register(universalLanguage, "upper", upperTransform)
	register(universalLanguage, "lower", lowerTransform)
}

// casesTag maps an RLF language code to the x/text/cases tag that governs
// its casing rules; Turkish and Azerbaijani need the dotted/dotless-I
// distinction (spec.md §4.6, "cap... locale-sensitive: tr/az use
// dotless/dotted i rules").
func casesTag(lang string) language.Tag {
	switch lang {
	case "tr":
		return language.Turkish
	case "az":
		return language.Azerbaijani
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und
	}
	return tag
}

// capTransform uppercases the first extended grapheme cluster of the
// input text, leaving the rest untouched. Operating on the grapheme
// cluster rather than the first rune keeps combining marks and
// multi-rune clusters (e.g. a base letter plus combining diacritic)
// attached to the letter being capitalized.
func capTransform(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := norm.NFC.String(input.AsText())
	if text == "" {
		return text, nil
	}
	gr := uniseg.NewGraphemes(text)
	if !gr.Next() {
		return text, nil
	}
	first := gr.Str()
	rest := text[len(first):]
	upper := cases.Upper(casesTag(lang)).String(first)
	return upper + rest, nil
}

func upperTransform(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	return cases.Upper(casesTag(lang)).String(input.AsText()), nil
}

func lowerTransform(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	return cases.Lower(casesTag(lang)).String(input.AsText()), nil
}

// firstGrapheme returns the first extended grapheme cluster of s after
// NFC normalization, or "" for an empty string, so combining sequences
// are not split. No transform in this package calls it.
func firstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	gr := uniseg.NewGraphemes(norm.NFC.String(s))
	if !gr.Next() {
		return ""
	}
	return gr.Str()
}

// startsWithVowelLetter reports whether s begins (after folding to
// lower case) with a Latin vowel letter or 'h', the common heuristic
// Romance-language elision rules use. The heuristic is unreliable for
// irregular words: a phrase can force elision with the :vowel tag, but
// no tag suppresses it, so an aspirated-h word such as French "héros"
// still elides.
func startsWithVowelLetter(s string) bool {
	s = strings.ToLower(s)
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'h', 'à', 'â', 'é', 'è', 'ê', 'ë', 'î', 'ï', 'ô', 'û', 'ù':
		return true
	default:
		return false
	}
}
