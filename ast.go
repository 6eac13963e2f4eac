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

// Pos is a 1-based line/column source position. Columns count Unicode
// code points, not bytes (spec.md §4.2, "Line/column counts are 1-based;
// column counts Unicode code points, not bytes").
type Pos struct {
	Line   int
	Column int
}

// Span is a half-open range [Start, End) into the source text that
// produced an AST node, preserved so that validation and evaluation
// diagnostics can point back at the original declaration (spec.md §9,
// "Spans").
type Span struct {
	Start Pos
	End   Pos
}

// Template is an ordered sequence of segments (spec.md §3, "Template
// (AST)").
type Template struct {
	Segments []Segment
	Span     Span
}

// Segment is either a literal string or an Interpolation. Exactly one of
// Literal or Interp is non-nil/zero; IsLiteral reports which.
type Segment struct {
	IsLiteral bool
	Literal   string
	Interp    Interpolation
	Span      Span
}

// Interpolation is the triple (transforms, reference, selectors) from
// spec.md §3: "An interpolation is a triple (transforms, reference,
// selectors)".
type Interpolation struct {
	// Transforms is ordered left-to-right as written; the evaluator applies
	// them right-to-left (spec.md §4.5 step 4d).
	Transforms []TransformRef
	Reference  Reference
	Selectors  []Selector
	Span       Span
}

// TransformRef is one `@name` or `@name:ctx` operator.
type TransformRef struct {
	Name string
	// Context is the optional `:ctx` immediately following the transform
	// name, distinguished syntactically from a post-reference selector by
	// position (spec.md §4.2).
	Context    *Selector
	HasContext bool
	Span       Span
}

// Selector is a `:name` segment. At evaluation time it may resolve as a
// parameter value, a literal key, or a tag probe (spec.md §3, "Selector").
type Selector struct {
	Name string
	Span Span
}

// ReferenceKind distinguishes a bare identifier reference from a phrase
// call with arguments.
type ReferenceKind int

const (
	// RefIdent is a bare identifier, resolved to a parameter or a
	// zero-argument phrase at evaluation time.
	RefIdent ReferenceKind = iota
	// RefCall is a named phrase call with an ordered argument list of
	// nested references.
	RefCall
)

// Reference is either an identifier or a named phrase call (spec.md §3,
// "reference").
type Reference struct {
	Kind ReferenceKind
	Name string
	// Args holds the nested reference expressions for RefCall; each
	// ref_expr in the grammar is itself a reference (spec.md §4.2,
	// "ref_expr := reference").
	Args []Reference
	Span Span
}

// VariantEntry is one `key_list ':' template_string` entry in a variant
// body; KeyList holds one or more VariantKeys that share Template.
type VariantEntry struct {
	KeyList  []VariantKey
	Template Template
	Span     Span
}

// PhraseDefinition is the parsed form of a source or translation
// definition (spec.md §3, "PhraseDefinition (AST)").
type PhraseDefinition struct {
	Name string
	// Params is the ordered list of parameter names.
	Params []string
	// Tags are the phrase's static tags, written as `:tag` after the '='.
	Tags []Tag
	// From is the `from(param)` tag-inheritance source, if present.
	From     string
	HasFrom  bool
	Body     PhraseBody
	Span     Span
	NameSpan Span
}

// PhraseBody is either a single template or an ordered list of variant
// entries.
type PhraseBody struct {
	IsVariants bool
	Template   Template
	Variants   []VariantEntry
}

// File is the parsed form of a whole translation file or compile-time
// declaration block: an ordered list of definitions (spec.md §4.2, "file
// grammar").
type File struct {
	Definitions []PhraseDefinition
}
