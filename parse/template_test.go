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
	"testing"

	"github.com/thurn/rlf"
)

func TestParseTemplateLiteralOnly(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("Hello, world!")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	if len(tmpl.Segments) != 1 || !tmpl.Segments[0].IsLiteral || tmpl.Segments[0].Literal != "Hello, world!" {
		t.Fatalf("ParseTemplate() segments = %+v", tmpl.Segments)
	}
}

func TestParseTemplateEscapes(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("Use {{ and }} literally; @@, :: too.")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	if len(tmpl.Segments) != 1 || !tmpl.Segments[0].IsLiteral {
		t.Fatalf("ParseTemplate() segments = %+v", tmpl.Segments)
	}
	want := "Use { and } literally; @, : too."
	if tmpl.Segments[0].Literal != want {
		t.Errorf("ParseTemplate() literal = %q, want %q", tmpl.Segments[0].Literal, want)
	}
}

func TestParseTemplateInterpolationSimple(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("Draw {n} {card:n}.")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	if len(tmpl.Segments) != 5 {
		t.Fatalf("ParseTemplate() got %d segments, want 5: %+v", len(tmpl.Segments), tmpl.Segments)
	}
	if tmpl.Segments[1].IsLiteral || tmpl.Segments[1].Interp.Reference.Name != "n" {
		t.Errorf("segment[1] = %+v", tmpl.Segments[1])
	}
	sel := tmpl.Segments[3].Interp.Selectors
	if len(sel) != 1 || sel[0].Name != "n" {
		t.Errorf("segment[3] selectors = %+v", sel)
	}
}

func TestParseTemplateTransformsAndContext(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("give {@der:dat card}")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	var interp rlf.Interpolation
	found := false
	for _, seg := range tmpl.Segments {
		if !seg.IsLiteral {
			interp = seg.Interp
			found = true
		}
	}
	if !found {
		t.Fatalf("no interpolation found in %+v", tmpl.Segments)
	}
	if len(interp.Transforms) != 1 || interp.Transforms[0].Name != "der" {
		t.Fatalf("transforms = %+v", interp.Transforms)
	}
	if !interp.Transforms[0].HasContext || interp.Transforms[0].Context.Name != "dat" {
		t.Fatalf("transform context = %+v", interp.Transforms[0])
	}
	if interp.Reference.Name != "card" {
		t.Fatalf("reference = %+v", interp.Reference)
	}
}

func TestParseTemplateRightToLeftOrderPreservedAsWritten(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("{@cap @a card}")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	interp := tmpl.Segments[0].Interp
	if len(interp.Transforms) != 2 || interp.Transforms[0].Name != "cap" || interp.Transforms[1].Name != "a" {
		t.Fatalf("transforms = %+v, want [cap, a] in written order (evaluator applies right-to-left)", interp.Transforms)
	}
}

func TestParseTemplateAutoCapitalization(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("{Card}")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	interp := tmpl.Segments[0].Interp
	if interp.Reference.Name != "card" {
		t.Fatalf("reference.Name = %q, want lowercased %q", interp.Reference.Name, "card")
	}
	if len(interp.Transforms) != 1 || interp.Transforms[0].Name != "cap" {
		t.Fatalf("transforms = %+v, want synthesized [cap]", interp.Transforms)
	}
}

func TestParseTemplateCall(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("{wrap(event)} happens.")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	interp := tmpl.Segments[0].Interp
	if interp.Reference.Kind != rlf.RefCall || interp.Reference.Name != "wrap" {
		t.Fatalf("reference = %+v", interp.Reference)
	}
	if len(interp.Reference.Args) != 1 || interp.Reference.Args[0].Name != "event" {
		t.Fatalf("args = %+v", interp.Reference.Args)
	}
}

func TestParseTemplateMultiArgCall(t *testing.T) {
	t.Parallel()
	tmpl, err := ParseTemplate("{combine(a, b, c)}")
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	args := tmpl.Segments[0].Interp.Reference.Args
	if len(args) != 3 || args[0].Name != "a" || args[1].Name != "b" || args[2].Name != "c" {
		t.Fatalf("args = %+v", args)
	}
}

func TestParseTemplateErrors(t *testing.T) {
	t.Parallel()
	cases := []string{
		"{unterminated",
		"{@}",
		"{wrap(a}",
	}
	for _, src := range cases {
		if _, err := ParseTemplate(src); err == nil {
			t.Errorf("ParseTemplate(%q) succeeded, want error", src)
		}
	}
}

func TestParseTemplateInvalidUtf8(t *testing.T) {
	t.Parallel()
	bad := "abc\xffdef"
	_, err := ParseTemplate(bad)
	var invalid *rlf.InvalidUtf8Error
	if err == nil {
		t.Fatal("expected an InvalidUtf8Error")
	}
	if e, ok := err.(*rlf.InvalidUtf8Error); ok {
		invalid = e
	}
	if invalid == nil || invalid.ByteOffset != 3 {
		t.Fatalf("error = %#v, want ByteOffset 3", err)
	}
}
