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

import (
	"fmt"
	"strings"
)

// ParseError is raised by either grammar parser (spec.md §7, "ParseError").
// Only one error is ever produced per parse attempt: "both parsers report
// a single error at the first failure... No recovery" (spec.md §4.2).
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// InvalidUtf8Error reports the byte offset of the first invalid UTF-8
// byte encountered while scanning input (spec.md §4.2, "UTF-8 input,
// rejected if invalid with the location of the first invalid byte").
type InvalidUtf8Error struct {
	ByteOffset int
}

func (e *InvalidUtf8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.ByteOffset)
}

// UnexpectedEofError reports that input ended while a construct was still
// open (an unterminated string, an unclosed variant block, and so on).
type UnexpectedEofError struct {
	Message string
}

func (e *UnexpectedEofError) Error() string {
	if e.Message == "" {
		return "unexpected end of input"
	}
	return "unexpected end of input: " + e.Message
}

// LoadError wraps a failure that occurred while loading a translation file
// from a path: either an underlying I/O error, a ParseError, or the
// no-recorded-path condition for reload (spec.md §7, "LoadError").
type LoadError struct {
	Path string
	// Language is set only for the NoPathForReload variant.
	Language        string
	NoPathForReload bool
	Cause           error
}

func (e *LoadError) Error() string {
	if e.NoPathForReload {
		return fmt.Sprintf("no recorded path to reload language %q from", e.Language)
	}
	return fmt.Sprintf("loading %q: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Suggestion is one did-you-mean candidate, ordered by Levenshtein
// distance then by name (spec.md §9, "Prefer sorting candidate lists by
// distance then by name").
type Suggestion struct {
	Name     string
	Distance int
}

func formatSuggestions(suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}
	return " (did you mean: " + strings.Join(names, ", ") + "?)"
}

// ValidationErrorKind enumerates the static validator's check families,
// V1 through V7 in spec.md §4.4, plus the load-time duplicate-name and
// PhraseId-collision checks.
type ValidationErrorKind int

const (
	// ErrUnknownReference is V1: a reference resolves to neither a
	// parameter nor a phrase name.
	ErrUnknownReference ValidationErrorKind = iota
	// ErrInvalidSelector is V2: a literal selector names a key absent
	// from the target phrase's variant map (and from its fallback chain).
	ErrInvalidSelector
	// ErrUnknownTransform is V3: the transform name is unknown to the
	// dispatch table for the language under validation.
	ErrUnknownTransform
	// ErrParameterShadowsPhrase is V4.
	ErrParameterShadowsPhrase
	// ErrArgumentCountMismatch is V5.
	ErrArgumentCountMismatch
	// ErrCyclicReference is V6.
	ErrCyclicReference
	// ErrMissingTagStatic is V7, the soft/diagnostic check.
	ErrMissingTagStatic
	// ErrDuplicatePhraseName fires when a phrase name is defined more than
	// once within a single loaded file (spec.md §3, "Phrase names within
	// a single language's store are unique; collision detected at load").
	ErrDuplicatePhraseName
	// ErrPhraseIdCollision fires when two distinct phrase names hash to
	// the same PhraseId within a single loaded file (spec.md §3, "two
	// distinct names hashing to the same id is a load-time error").
	ErrPhraseIdCollision
)

// ValidationError is one diagnostic produced by the static validator
// (spec.md §7, "ValidationError"). Fields beyond Kind and Span are
// populated according to Kind; see the constructors in package validate.
type ValidationError struct {
	Kind ValidationErrorKind
	Span Span

	// V1/V2/V3: the name that failed to resolve, plus suggestions.
	Name        string
	Suggestions []Suggestion

	// V1: what was being looked up ("ident", "call").
	RefKind string

	// V2: the phrase and key involved, and the keys that were available.
	Phrase    string
	Key       string
	Available []string

	// V3: the language the transform was resolved against.
	Language string

	// V4: the phrase whose name the parameter shadows.
	PhraseName string
	Param      string

	// V5: call arity mismatch.
	Expected int
	Got      int

	// V6: the ancestor chain, ending with the revisited node.
	Chain []string

	// V7: transform + expected tag set for the static tag-obligation check.
	Transform    string
	ExpectedTags []Tag

	// Load-time structural checks (spec.md §3 invariants): a duplicate
	// phrase name, or two distinct names whose PhraseId collides.
	OtherName string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrUnknownReference:
		return fmt.Sprintf("unknown %s %q%s", e.RefKind, e.Name, formatSuggestions(e.Suggestions))
	case ErrInvalidSelector:
		return fmt.Sprintf(
			"phrase %q has no variant key %q (available: %s)%s",
			e.Phrase, e.Key, strings.Join(e.Available, ", "), formatSuggestions(e.Suggestions),
		)
	case ErrUnknownTransform:
		return fmt.Sprintf("unknown transform %q for language %q%s", e.Name, e.Language, formatSuggestions(e.Suggestions))
	case ErrParameterShadowsPhrase:
		return fmt.Sprintf("parameter %q of phrase %q shadows a phrase of the same name", e.Param, e.PhraseName)
	case ErrArgumentCountMismatch:
		return fmt.Sprintf("phrase %q expects %d argument(s), got %d", e.PhraseName, e.Expected, e.Got)
	case ErrCyclicReference:
		return fmt.Sprintf("cyclic phrase reference: %s", strings.Join(e.Chain, " -> "))
	case ErrMissingTagStatic:
		return fmt.Sprintf(
			"transform %q applied to phrase %q statically requires one of tags %v, which it lacks",
			e.Transform, e.Phrase, e.ExpectedTags,
		)
	case ErrDuplicatePhraseName:
		return fmt.Sprintf("phrase %q is defined more than once", e.Name)
	case ErrPhraseIdCollision:
		return fmt.Sprintf("phrases %q and %q hash to the same id", e.Name, e.OtherName)
	default:
		return "validation error"
	}
}

// ValidationErrors collects every diagnostic produced by one validation
// run. It implements error so a validation pass can be propagated with a
// plain `return err` while still giving callers access to the full list.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// EvalErrorKind enumerates the evaluation engine's runtime failure modes
// (spec.md §7, "EvalError").
type EvalErrorKind int

const (
	ErrPhraseNotFound EvalErrorKind = iota
	ErrPhraseNotFoundById
	ErrMissingVariant
	ErrMissingTag
	ErrEvalArgumentCount
	ErrEvalCyclicReference
	ErrMaxDepthExceeded
	ErrEvalUnknownTransform
)

// EvalError is the error type returned by every rlf/eval and rlf/registry
// entry point.
type EvalError struct {
	Kind EvalErrorKind

	Name string
	Id   PhraseId

	Phrase      string
	Key         string
	Available   []string
	Suggestions []Suggestion

	Transform    string
	ExpectedTags []Tag

	Expected int
	Got      int

	Chain []string

	Language string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrPhraseNotFound:
		return fmt.Sprintf("phrase %q not found", e.Name)
	case ErrPhraseNotFoundById:
		return fmt.Sprintf("phrase with id %d not found", e.Id)
	case ErrMissingVariant:
		return fmt.Sprintf(
			"phrase %q has no variant matching %q (available: %s)%s",
			e.Phrase, e.Key, strings.Join(e.Available, ", "), formatSuggestions(e.Suggestions),
		)
	case ErrMissingTag:
		return fmt.Sprintf("transform %q requires one of tags %v on phrase %q", e.Transform, e.ExpectedTags, e.Phrase)
	case ErrEvalArgumentCount:
		return fmt.Sprintf("phrase %q expects %d argument(s), got %d", e.Phrase, e.Expected, e.Got)
	case ErrEvalCyclicReference:
		return fmt.Sprintf("cyclic phrase reference at runtime: %s", strings.Join(e.Chain, " -> "))
	case ErrMaxDepthExceeded:
		return "maximum phrase nesting depth exceeded"
	case ErrEvalUnknownTransform:
		return fmt.Sprintf("unknown transform %q for language %q", e.Transform, e.Language)
	default:
		return "evaluation error"
	}
}
