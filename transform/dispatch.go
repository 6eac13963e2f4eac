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

// Package transform implements RLF's closed transform library: the
// universal case transforms (cap, upper, lower) and the roughly twenty
// language-specific morphological transforms tabulated in spec.md §4.6
// (articles, case declension, classifiers, particles, vowel harmony,
// assimilation).
//
// Dispatch is static, per spec.md's "No user-pluggable transforms": every
// transform kind is a closed enumeration bound to one Go function in this
// package, keyed by (language, canonical name) after alias resolution.
// universalLanguage holds the language-independent transforms available
// everywhere.
package transform

import (
	"fmt"

	"github.com/thurn/rlf"
)

// Func is the signature every transform implementation satisfies.
// input is the current Value being transformed: the original resolved
// reference Value for the innermost (first-applied) transform in a
// chain, or a text Value for every transform after it (spec.md §4.5 step
// 4d). ctx is the resolved optional `@name:ctx` context value, nil when
// no context was written. lang is the active evaluation language, needed
// by transforms (es/pt/fr/it number agreement) that consult the plural
// classifier.
type Func func(input rlf.Value, ctx *rlf.Value, lang string) (string, error)

// entry pairs a transform's implementation with the tags it may require,
// used by the static validator's soft V7 check and by EvalError's
// MissingTag reporting.
type entry struct {
	fn           Func
	requiredTags [][]rlf.Tag // one or more alternative tag sets; any one suffices
}

// universalLanguage is the pseudo-language key under which cap/upper/lower
// are registered; they resolve in every language (spec.md §4.6,
// "Language-independent transforms... work in all languages").
const universalLanguage = ""

// table is the closed dispatch table: table[language][canonicalName].
var table = map[string]map[string]entry{}

// aliases maps table[language][alias] -> canonicalName. Aliases are
// resolved before dispatch (spec.md §4.6).
var aliases = map[string]map[string]string{}

func register(lang, canonical string, fn Func, requiredTags ...[]rlf.Tag) {
	if table[lang] == nil {
		table[lang] = map[string]entry{}
	}
	table[lang][canonical] = entry{fn: fn, requiredTags: requiredTags}
}

func registerAlias(lang, alias, canonical string) {
	if aliases[lang] == nil {
		aliases[lang] = map[string]string{}
	}
	aliases[lang][alias] = canonical
}

// canonicalize resolves an alias to its canonical transform name within
// lang, falling back to the universal table, then returns the name
// unchanged if it is not an alias of anything.
func canonicalize(lang, name string) (resolvedLang, canonical string) {
	if canon, ok := aliases[lang][name]; ok {
		return lang, canon
	}
	if canon, ok := aliases[universalLanguage][name]; ok {
		return universalLanguage, canon
	}
	if _, ok := table[lang][name]; ok {
		return lang, name
	}
	if _, ok := table[universalLanguage][name]; ok {
		return universalLanguage, name
	}
	return lang, name
}

// Lookup resolves name (after alias resolution) to its implementation
// under lang, consulting the universal table as a fallback. This is the
// single dispatch point used by both the static validator (V3) and the
// evaluator; spec.md §4.6's "Language-scoping rule" is enforced here: a
// name is only found if it is registered for lang specifically or
// universally, never borrowed from another language's table.
func Lookup(lang, name string) (fn Func, canonical string, requiredTags [][]rlf.Tag, ok bool) {
	resolvedLang, canon := canonicalize(lang, name)
	e, found := table[resolvedLang][canon]
	if !found {
		return nil, "", nil, false
	}
	return e.fn, canon, e.requiredTags, true
}

// IsKnown reports whether name resolves to a registered transform for
// lang (used by the static validator's V3 check).
func IsKnown(lang, name string) bool {
	_, _, _, ok := Lookup(lang, name)
	return ok
}

// Names returns every surface name (canonical names and aliases) known
// for lang, including the universal set, sorted is left to the caller;
// used to build did-you-mean suggestions for V3/UnknownTransform.
func Names(lang string) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(n string) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	for name := range table[lang] {
		add(name)
	}
	for name := range table[universalLanguage] {
		add(name)
	}
	for name := range aliases[lang] {
		add(name)
	}
	for name := range aliases[universalLanguage] {
		add(name)
	}
	return out
}

// inputTags returns the tags of input when it is a Phrase, else nil.
func inputTags(input rlf.Value) []rlf.Tag {
	if input.Kind == rlf.KindPhrase && input.Phrase != nil {
		return input.Phrase.Tags
	}
	return nil
}

// requireOneOf returns the first tag from candidates present in tags, or
// an error naming transformName, the candidate set, and phraseText.
func requireOneOf(transformName string, tags []rlf.Tag, candidates []rlf.Tag, phraseText string) (rlf.Tag, error) {
	for _, c := range candidates {
		if rlf.HasTag(tags, c) {
			return c, nil
		}
	}
	return "", &rlf.EvalError{
		Kind:         rlf.ErrMissingTag,
		Transform:    transformName,
		ExpectedTags: candidates,
		Phrase:       phraseText,
	}
}

// ctxText returns the textual content of ctx, or "" with ok=false if ctx
// is nil.
func ctxText(ctx *rlf.Value) (string, bool) {
	if ctx == nil {
		return "", false
	}
	return ctx.AsText(), true
}

// ctxOr returns ctx's text, defaulting to def when ctx is absent.
func ctxOr(ctx *rlf.Value, def string) string {
	if s, ok := ctxText(ctx); ok {
		return s
	}
	return def
}

func errf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// numberContext reduces a transform context to "singular" or "plural" for
// the number-agreement transforms (Romance articles, Greek articles,
// Romanian definite suffix). A numeric ctx (an integer count) is run through the
// plural classifier for lang and treated as plural unless the result is
// One; a literal ctx is read directly if it already says "singular" or
// "plural", or treated as plural unless it says "one"; no ctx at all
// defaults to singular, matching the bare noun being the common case.
func numberContext(ctx *rlf.Value, lang string, classify func(lang string, n int64) string) string {
	if ctx == nil {
		return "singular"
	}
	if ctx.IsNumeric() {
		if n, ok := ctx.AsInt(); ok {
			if classify(lang, n) == "one" {
				return "singular"
			}
			return "plural"
		}
	}
	switch ctx.AsText() {
	case "singular", "one":
		return "singular"
	default:
		return "plural"
	}
}
