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

package rlf

import "strconv"

// ValueKind identifies the concrete alternative held by a Value.
type ValueKind int

// The four alternatives of the Value tagged union (spec.md §3).
const (
	KindInt ValueKind = iota
	KindFloat
	KindText
	KindPhrase
)

// String renders the kind name, used in error messages and tests.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindPhrase:
		return "phrase"
	default:
		return "unknown"
	}
}

// Value is the tagged union accepted at parameter-binding boundaries and
// produced by resolving a reference during evaluation: an integer, a float,
// literal text, or a rendered Phrase. Only one of the typed fields is
// meaningful at a time, selected by Kind.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string
	// Phrase is non-nil only when Kind == KindPhrase.
	Phrase *Phrase
}

// IntValue constructs an integer Value.
func IntValue(n int64) Value { return Value{Kind: KindInt, Int: n} }

// FloatValue constructs a float Value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// TextValue constructs a text Value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// PhraseValue constructs a Value carrying a rendered Phrase.
func PhraseValue(p *Phrase) Value { return Value{Kind: KindPhrase, Phrase: p} }

// AsText converts the Value to its textual representation. Integer and
// float values render with their ordinary decimal form; a Phrase value
// renders as its default form (spec.md §3, "Phrase (rendered)").
func (v Value) AsText() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindText:
		return v.Text
	case KindPhrase:
		if v.Phrase == nil {
			return ""
		}
		return v.Phrase.Default
	default:
		return ""
	}
}

// AsInt attempts to interpret the Value as an integer, as required by the
// plural classifier (spec.md §4.1, "Conversion from text to integer is
// attempted only when the plural classifier needs it"). Float values
// truncate toward zero. Text values are parsed as a base-10 integer.
func (v Value) AsInt() (int64, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, true
	case KindFloat:
		return int64(v.Float), true
	case KindText:
		n, err := strconv.ParseInt(v.Text, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether the Value holds an integer or float, the two
// kinds eligible for plural classification.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// Tag is a short grammatical marker attached to a phrase, drawn from an
// open alphabet of ASCII identifiers (spec.md §3, "Tag").
type Tag string

// VariantKey is a dotted sequence of identifiers participating in ordered
// fallback lookup (spec.md §3, "VariantKey").
type VariantKey string

// HasTag reports whether tags contains t.
func HasTag(tags []Tag, t Tag) bool {
	for _, candidate := range tags {
		if candidate == t {
			return true
		}
	}
	return false
}

// FirstTagOr returns the first tag in tags, or the empty Tag if tags is
// empty. Used by the evaluator's "phrase used as a selector" rule (spec.md
// §4.5 step 4c): "use that phrase's first tag as the key component".
func FirstTagOr(tags []Tag) (Tag, bool) {
	if len(tags) == 0 {
		return "", false
	}
	return tags[0], true
}
