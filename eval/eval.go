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

package eval

import (
	"strings"

	"github.com/thurn/rlf"
	"github.com/thurn/rlf/plural"
	"github.com/thurn/rlf/transform"
)

// evaluator carries the store a single top-level call or template
// evaluation runs against; it holds no per-call mutable state itself
// (the call stack and depth counter are threaded explicitly) so one
// evaluator can be reused across many evaluations.
type evaluator struct {
	store Store
}

// evalPhraseDef renders def fully into a *rlf.Phrase: its Default text
// (or, for a variants body, the text of its first-declared entry), every
// declared variant's rendered text, and its tag set (its own :tag
// modifiers plus, when it declares from(param), the tags inherited from
// that parameter's bound value — spec.md §4.5 step 4e, "from(param) tag
// inheritance").
func (ev *evaluator) evalPhraseDef(def rlf.PhraseDefinition, args []rlf.Value, stack []string, depth int) (*rlf.Phrase, error) {
	if depth >= maxCallDepth {
		return nil, &rlf.EvalError{Kind: rlf.ErrMaxDepthExceeded}
	}
	if contains(stack, def.Name) {
		return nil, &rlf.EvalError{Kind: rlf.ErrEvalCyclicReference, Chain: append(append([]string{}, stack...), def.Name)}
	}
	if len(args) != len(def.Params) {
		return nil, &rlf.EvalError{Kind: rlf.ErrEvalArgumentCount, Phrase: def.Name, Expected: len(def.Params), Got: len(args)}
	}

	bindings := make(map[string]rlf.Value, len(def.Params))
	for i, p := range def.Params {
		bindings[p] = args[i]
	}
	newStack := append(append([]string{}, stack...), def.Name)

	var phrase *rlf.Phrase
	if def.Body.IsVariants {
		var defaultText string
		var rendered []struct {
			keys []rlf.VariantKey
			text string
		}
		for i, entry := range def.Body.Variants {
			text, err := ev.evalTemplate(entry.Template, bindings, newStack, depth+1)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				defaultText = text
			}
			rendered = append(rendered, struct {
				keys []rlf.VariantKey
				text string
			}{entry.KeyList, text})
		}
		phrase = rlf.NewPhrase(defaultText)
		for _, r := range rendered {
			for _, key := range r.keys {
				phrase.SetVariant(key, r.text)
			}
		}
	} else {
		text, err := ev.evalTemplate(def.Body.Template, bindings, newStack, depth+1)
		if err != nil {
			return nil, err
		}
		phrase = rlf.NewPhrase(text)
	}

	tags := append([]rlf.Tag{}, def.Tags...)
	if def.HasFrom {
		if pv, ok := bindings[def.From]; ok && pv.Kind == rlf.KindPhrase && pv.Phrase != nil {
			tags = append(tags, pv.Phrase.Tags...)
		}
	}
	phrase.Tags = tags
	return phrase, nil
}

// evalTemplate renders tmpl under bindings, the active call stack, and
// the current recursion depth.
func (ev *evaluator) evalTemplate(tmpl rlf.Template, bindings map[string]rlf.Value, stack []string, depth int) (string, error) {
	var b strings.Builder
	for _, seg := range tmpl.Segments {
		if seg.IsLiteral {
			b.WriteString(seg.Literal)
			continue
		}
		text, err := ev.evalInterpolation(seg.Interp, bindings, stack, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// resolveReference binds ref to a Value: a direct lookup when ref names
// a parameter in scope (spec.md §4.5 step 4a), or a fully evaluated
// *rlf.Phrase wrapped as a Value when it names another phrase, with any
// call arguments themselves resolved first.
func (ev *evaluator) resolveReference(ref rlf.Reference, bindings map[string]rlf.Value, stack []string, depth int) (rlf.Value, error) {
	if ref.Kind == rlf.RefIdent {
		if v, ok := bindings[ref.Name]; ok {
			return v, nil
		}
	}
	def, ok := ev.store.Lookup(ref.Name)
	if !ok {
		return rlf.Value{}, &rlf.EvalError{Kind: rlf.ErrPhraseNotFound, Name: ref.Name}
	}
	argValues := make([]rlf.Value, len(ref.Args))
	for i, a := range ref.Args {
		v, err := ev.resolveReference(a, bindings, stack, depth)
		if err != nil {
			return rlf.Value{}, err
		}
		argValues[i] = v
	}
	phrase, err := ev.evalPhraseDef(def, argValues, stack, depth)
	if err != nil {
		return rlf.Value{}, err
	}
	return rlf.PhraseValue(phrase), nil
}

// evalInterpolation implements spec.md §4.5 step 4 in full: resolve the
// reference, compose and apply any selectors, then apply any transforms
// right to left.
func (ev *evaluator) evalInterpolation(interp rlf.Interpolation, bindings map[string]rlf.Value, stack []string, depth int) (string, error) {
	original, err := ev.resolveReference(interp.Reference, bindings, stack, depth)
	if err != nil {
		return "", err
	}

	selectorText, haveSelectorText, err := ev.applySelectors(original, interp.Reference.Name, interp.Selectors, bindings)
	if err != nil {
		return "", err
	}

	if len(interp.Transforms) == 0 {
		if haveSelectorText {
			return selectorText, nil
		}
		return original.AsText(), nil
	}

	// Transforms apply right to left (the rightmost, written-innermost
	// transform runs first) and the first one to run receives the
	// original resolved value untouched by any selector-driven variant
	// lookup above; only subsequent transforms in the chain see text
	// (spec.md §4.5 step 4d).
	current := original
	var out string
	for i := len(interp.Transforms) - 1; i >= 0; i-- {
		t := interp.Transforms[i]
		ctxVal, err := ev.resolveContext(t, bindings)
		if err != nil {
			return "", err
		}
		fn, _, _, ok := transform.Lookup(ev.store.Language(), t.Name)
		if !ok {
			return "", &rlf.EvalError{Kind: rlf.ErrEvalUnknownTransform, Transform: t.Name, Language: ev.store.Language()}
		}
		text, err := fn(current, ctxVal, ev.store.Language())
		if err != nil {
			return "", err
		}
		current = rlf.TextValue(text)
		out = text
	}
	return out, nil
}

// applySelectors composes the selector list into a dotted VariantKey and
// looks it up in value's variant map, using refName only to label a
// ErrMissingVariant. It reports haveText=false (not an error) when there
// are no selectors; when value is not a Phrase and so has no variants to
// select among, it returns value's plain text with haveText=true.
func (ev *evaluator) applySelectors(value rlf.Value, refName string, selectors []rlf.Selector, bindings map[string]rlf.Value) (text string, haveText bool, err error) {
	if len(selectors) == 0 {
		return "", false, nil
	}
	if value.Kind != rlf.KindPhrase || value.Phrase == nil {
		return value.AsText(), true, nil
	}
	comps := make([]string, len(selectors))
	for i, sel := range selectors {
		comp, err := ev.selectorComponent(sel, bindings)
		if err != nil {
			return "", false, err
		}
		comps[i] = comp
	}
	key := rlf.VariantKey(strings.Join(comps, "."))
	text, _, ok := value.Phrase.Variant(key)
	if !ok {
		available := value.Phrase.AvailableKeys()
		names := make([]string, len(available))
		for i, k := range available {
			names[i] = string(k)
		}
		return "", false, &rlf.EvalError{
			Kind:        rlf.ErrMissingVariant,
			Phrase:      refName,
			Key:         string(key),
			Available:   names,
			Suggestions: rlf.Suggestions(string(key), names),
		}
	}
	return text, true, nil
}

// selectorComponent resolves one selector to the key component it
// contributes: a bound numeric parameter classifies through the plural
// rules, a bound phrase parameter contributes its first tag (failing with
// a missing-tag error if it carries none), a bound text parameter that
// parses as an integer classifies the same as a numeric parameter and
// otherwise contributes its text verbatim, and an unbound name is a
// literal key component (spec.md §4.5 step 4c).
func (ev *evaluator) selectorComponent(sel rlf.Selector, bindings map[string]rlf.Value) (string, error) {
	v, bound := bindings[sel.Name]
	if !bound {
		return sel.Name, nil
	}
	switch v.Kind {
	case rlf.KindInt, rlf.KindFloat:
		n, _ := v.AsInt()
		return plural.Classify(ev.store.Language(), n).String(), nil
	case rlf.KindPhrase:
		if v.Phrase != nil {
			if tag, ok := rlf.FirstTagOr(v.Phrase.Tags); ok {
				return string(tag), nil
			}
		}
		return "", &rlf.EvalError{
			Kind:      rlf.ErrMissingTag,
			Transform: sel.Name,
			Phrase:    v.AsText(),
		}
	default:
		if n, ok := v.AsInt(); ok {
			return plural.Classify(ev.store.Language(), n).String(), nil
		}
		return v.AsText(), nil
	}
}

// resolveContext resolves a transform's optional `:ctx` the same way a
// selector resolves: a bound parameter's value passes through directly
// (this is how `@liaison:x` hands a whole referenced Phrase to the
// liaison transform), otherwise the written name is a literal text
// value.
func (ev *evaluator) resolveContext(t rlf.TransformRef, bindings map[string]rlf.Value) (*rlf.Value, error) {
	if !t.HasContext {
		return nil, nil
	}
	if v, ok := bindings[t.Context.Name]; ok {
		return &v, nil
	}
	lit := rlf.TextValue(t.Context.Name)
	return &lit, nil
}
