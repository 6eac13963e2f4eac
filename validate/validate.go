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

package validate

import (
	"sort"

	"github.com/thurn/rlf"
	"github.com/thurn/rlf/transform"
)

// phraseInfo is the statically known shape of one definition, looked up
// by name while validating every other definition.
type phraseInfo struct {
	name   string
	params []string
	tags   []rlf.Tag
	body   rlf.PhraseBody
}

func hasParam(params []string, name string) bool {
	for _, p := range params {
		if p == name {
			return true
		}
	}
	return false
}

// Validate runs every check in spec.md §4.4 over file, assuming its
// definitions belong to language lang (which selects the transform
// dispatch table consulted by V3 and V7). It returns nil when the file
// is free of defects, or a non-nil rlf.ValidationErrors otherwise.
func Validate(file rlf.File, lang string) error {
	v := &validator{lang: lang, phrases: map[string]*phraseInfo{}}
	names := make([]string, 0, len(file.Definitions))
	for i := range file.Definitions {
		def := &file.Definitions[i]
		v.phrases[def.Name] = &phraseInfo{name: def.Name, params: def.Params, tags: def.Tags, body: def.Body}
		names = append(names, def.Name)
	}
	sort.Strings(names)
	v.sortedPhraseNames = names

	for i := range file.Definitions {
		v.validateDefinition(&file.Definitions[i])
	}
	v.checkCycles(file)

	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

type validator struct {
	lang              string
	phrases           map[string]*phraseInfo
	sortedPhraseNames []string
	errs              rlf.ValidationErrors
}

func (v *validator) add(e *rlf.ValidationError) {
	v.errs = append(v.errs, e)
}

func (v *validator) validateDefinition(def *rlf.PhraseDefinition) {
	v.checkParamShadowing(def)
	v.walkTemplate(def, def.Body.Template, def.Params)
	for _, entry := range def.Body.Variants {
		v.walkTemplate(def, entry.Template, def.Params)
	}
}

// checkParamShadowing implements V4: a phrase's parameter name must not
// coincide with the name of any phrase in the file, since a bare
// identifier inside the body would then be ambiguous between "the
// parameter" and "a call to that phrase."
func (v *validator) checkParamShadowing(def *rlf.PhraseDefinition) {
	for _, p := range def.Params {
		if _, ok := v.phrases[p]; ok {
			v.add(&rlf.ValidationError{
				Kind:       rlf.ErrParameterShadowsPhrase,
				PhraseName: def.Name,
				Param:      p,
			})
		}
	}
}

// walkTemplate visits every interpolation in tmpl, checking V1 (through
// its references), V2 (through its selectors), V3/V7 (through its
// transforms), and V5 (call arity) on any nested reference.
func (v *validator) walkTemplate(def *rlf.PhraseDefinition, tmpl rlf.Template, scope []string) {
	for _, seg := range tmpl.Segments {
		if seg.IsLiteral {
			continue
		}
		v.checkReference(def, seg.Interp.Reference, scope)
		v.checkSelectors(def, seg.Interp, scope)
		v.checkTransforms(def, seg.Interp, scope)
	}
}

// referencedPhrase returns the statically known phraseInfo a reference
// resolves to when it names a phrase directly (not a parameter), or nil
// when ref is a parameter reference or an unknown name.
func (v *validator) referencedPhrase(ref rlf.Reference, scope []string) *phraseInfo {
	if hasParam(scope, ref.Name) {
		return nil
	}
	return v.phrases[ref.Name]
}

// checkReference implements V1 (reference resolvability) and, for calls,
// V5 (call argument count). It recurses into call arguments, which may
// themselves be calls.
func (v *validator) checkReference(def *rlf.PhraseDefinition, ref rlf.Reference, scope []string) {
	isParam := hasParam(scope, ref.Name)
	_, isPhrase := v.phrases[ref.Name]
	if !isParam && !isPhrase {
		v.add(&rlf.ValidationError{
			Kind:        rlf.ErrUnknownReference,
			Name:        ref.Name,
			RefKind:     refKindString(ref.Kind),
			Suggestions: rlf.Suggestions(ref.Name, v.candidateNames(scope)),
		})
	}

	if ref.Kind == rlf.RefCall {
		if target, ok := v.phrases[ref.Name]; ok {
			if len(ref.Args) != len(target.params) {
				v.add(&rlf.ValidationError{
					Kind:       rlf.ErrArgumentCountMismatch,
					PhraseName: ref.Name,
					Expected:   len(target.params),
					Got:        len(ref.Args),
				})
			}
		}
		for _, arg := range ref.Args {
			v.checkReference(def, arg, scope)
		}
	}
}

func (v *validator) candidateNames(scope []string) []string {
	names := append([]string{}, v.sortedPhraseNames...)
	names = append(names, scope...)
	sort.Strings(names)
	return names
}

func refKindString(k rlf.ReferenceKind) string {
	if k == rlf.RefCall {
		return "call"
	}
	return "ident"
}

// checkSelectors implements V2: a selector whose name is not a parameter
// in scope is a literal variant-key component. When the interpolation's
// reference statically names a phrase with a variants body, the literal
// must match some dot-segment of one of that phrase's declared keys;
// otherwise it can never select anything at evaluation time.
func (v *validator) checkSelectors(def *rlf.PhraseDefinition, interp rlf.Interpolation, scope []string) {
	target := v.referencedPhrase(interp.Reference, scope)
	if target == nil || !target.body.IsVariants {
		return
	}
	vocabulary := keyVocabulary(target.body.Variants)
	for _, sel := range interp.Selectors {
		if hasParam(scope, sel.Name) {
			continue
		}
		if _, ok := vocabulary[sel.Name]; ok {
			continue
		}
		available := sortedKeys(vocabulary)
		v.add(&rlf.ValidationError{
			Kind:        rlf.ErrInvalidSelector,
			Key:         sel.Name,
			Phrase:      target.name,
			Available:   available,
			Suggestions: rlf.Suggestions(sel.Name, available),
		})
	}
}

// keyVocabulary collects every dot-segment that appears anywhere in a
// variant body's declared keys, since that is the full set of literal
// names a selector could ever usefully name.
func keyVocabulary(entries []rlf.VariantEntry) map[string]struct{} {
	out := map[string]struct{}{}
	for _, entry := range entries {
		for _, key := range entry.KeyList {
			for _, seg := range splitKey(string(key)) {
				out[seg] = struct{}{}
			}
		}
	}
	return out
}

func splitKey(key string) []string {
	var segs []string
	start := 0
	for i, r := range key {
		if r == '.' {
			segs = append(segs, key[start:i])
			start = i + 1
		}
	}
	segs = append(segs, key[start:])
	return segs
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// checkTransforms implements V3 (transform existence) and V7 (the soft
// static tag-obligation check).
func (v *validator) checkTransforms(def *rlf.PhraseDefinition, interp rlf.Interpolation, scope []string) {
	for _, t := range interp.Transforms {
		_, _, requiredTags, ok := transform.Lookup(v.lang, t.Name)
		if !ok {
			v.add(&rlf.ValidationError{
				Kind:        rlf.ErrUnknownTransform,
				Name:        t.Name,
				Language:    v.lang,
				Suggestions: rlf.Suggestions(t.Name, transform.Names(v.lang)),
			})
			continue
		}
		if len(requiredTags) == 0 {
			continue
		}
		target := v.referencedPhrase(interp.Reference, scope)
		if target == nil {
			// The input is a parameter or an unresolved name; its tags are
			// not known until evaluation, so the soft check does not fire.
			continue
		}
		satisfied := false
		for _, alt := range requiredTags {
			if hasAnyTag(target.tags, alt) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			v.add(&rlf.ValidationError{
				Kind:         rlf.ErrMissingTagStatic,
				Transform:    t.Name,
				Phrase:       target.name,
				ExpectedTags: flattenTagSets(requiredTags),
			})
		}
	}
}

func hasAnyTag(tags []rlf.Tag, want []rlf.Tag) bool {
	for _, w := range want {
		if rlf.HasTag(tags, w) {
			return true
		}
	}
	return false
}

func flattenTagSets(sets [][]rlf.Tag) []rlf.Tag {
	var out []rlf.Tag
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// color marks a phrase node's state during the three-color DFS V6 uses
// to find reference cycles.
type color int

const (
	white color = iota
	gray
	black
)

// checkCycles implements V6: cycle freedom, via a three-color depth-first
// search over the static phrase-reference graph (an edge a -> b exists
// when a's body contains an unparameterized reference or call to b).
// Phrases are visited in sorted-name order, and each node's outgoing
// edges are visited in sorted-target order, so the reported cycle chain
// is deterministic across runs.
func (v *validator) checkCycles(file rlf.File) {
	colors := map[string]color{}
	for _, name := range v.sortedPhraseNames {
		if colors[name] == white {
			if cycle := v.dfs(name, colors, nil); cycle != nil {
				v.add(&rlf.ValidationError{Kind: rlf.ErrCyclicReference, Chain: cycle})
			}
		}
	}
}

func (v *validator) dfs(name string, colors map[string]color, stack []string) []string {
	colors[name] = gray
	stack = append(stack, name)
	for _, target := range v.sortedOutgoingEdges(name) {
		switch colors[target] {
		case white:
			if cycle := v.dfs(target, colors, stack); cycle != nil {
				return cycle
			}
		case gray:
			return append(append([]string{}, stack...), target)
		case black:
			continue
		}
	}
	colors[name] = black
	return nil
}

func (v *validator) sortedOutgoingEdges(name string) []string {
	info, ok := v.phrases[name]
	if !ok {
		return nil
	}
	seen := map[string]struct{}{}
	collect := func(tmpl rlf.Template) {
		for _, seg := range tmpl.Segments {
			if seg.IsLiteral {
				continue
			}
			collectRefTargets(seg.Interp.Reference, info.params, v.phrases, seen)
		}
	}
	collect(info.body.Template)
	for _, entry := range info.body.Variants {
		collect(entry.Template)
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func collectRefTargets(ref rlf.Reference, scope []string, phrases map[string]*phraseInfo, out map[string]struct{}) {
	if !hasParam(scope, ref.Name) {
		if _, ok := phrases[ref.Name]; ok {
			out[ref.Name] = struct{}{}
		}
	}
	for _, arg := range ref.Args {
		collectRefTargets(arg, scope, phrases, out)
	}
}
