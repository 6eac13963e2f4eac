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

import "strings"

// Phrase is the unit produced by evaluating a phrase definition in a given
// language with given arguments (spec.md §3, "Phrase (rendered)"). It is
// never cached; it is a short-lived value passed back to the caller of an
// evaluation entry point.
type Phrase struct {
	// Default is the default textual form, used when the Phrase is
	// converted to text directly.
	Default string
	// Variants maps a VariantKey to its textual form. Keys are inserted in
	// the order the defining variant entries declared them, which matters
	// for deterministic "available keys" enumeration in MissingVariant
	// errors (spec.md §9, "Determinism").
	Variants     map[VariantKey]string
	VariantOrder []VariantKey
	// Tags are the phrase's tags, fixed after load (spec.md §3,
	// Invariants).
	Tags []Tag
}

// NewPhrase constructs a rendered Phrase with no variants or tags.
func NewPhrase(def string) *Phrase {
	return &Phrase{Default: def, Variants: map[VariantKey]string{}}
}

// SetVariant records a variant form, preserving first-insertion order for
// deterministic enumeration.
func (p *Phrase) SetVariant(key VariantKey, text string) {
	if p.Variants == nil {
		p.Variants = map[VariantKey]string{}
	}
	if _, exists := p.Variants[key]; !exists {
		p.VariantOrder = append(p.VariantOrder, key)
	}
	p.Variants[key] = text
}

// Variant performs the progressive-fallback lookup of spec.md §4.1:
// "try the exact key; if absent, strip the trailing dot-segment and retry;
// if no segments remain, signal a missing-variant condition." It returns
// the matched text, the key that actually matched, and whether any key
// matched at all. The caller (the evaluator) is responsible for producing
// the final error including the set of available keys and suggestions, as
// called out in the same section.
func (p *Phrase) Variant(key VariantKey) (text string, matched VariantKey, ok bool) {
	candidate := string(key)
	for {
		if text, found := p.Variants[VariantKey(candidate)]; found {
			return text, VariantKey(candidate), true
		}
		idx := strings.LastIndexByte(candidate, '.')
		if idx < 0 {
			return "", "", false
		}
		candidate = candidate[:idx]
	}
}

// AvailableKeys returns the phrase's variant keys in insertion order, used
// to populate MissingVariant.Available deterministically.
func (p *Phrase) AvailableKeys() []VariantKey {
	out := make([]VariantKey, len(p.VariantOrder))
	copy(out, p.VariantOrder)
	return out
}
