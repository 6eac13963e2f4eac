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
)

func TestParseFileSimplePhrase(t *testing.T) {
	t.Parallel()
	f, err := ParseFile(`hello = "Hello, world!";`)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(f.Definitions) != 1 || f.Definitions[0].Name != "hello" {
		t.Fatalf("Definitions = %+v", f.Definitions)
	}
}

func TestParseFileParamsAndComments(t *testing.T) {
	t.Parallel()
	src := `
// Simple phrase
hello = "Hello, world!";

// Parameters
greet(name) = "Hello, {name}!";
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(f.Definitions) != 2 {
		t.Fatalf("got %d definitions, want 2: %+v", len(f.Definitions), f.Definitions)
	}
	greet := f.Definitions[1]
	if greet.Name != "greet" || len(greet.Params) != 1 || greet.Params[0] != "name" {
		t.Fatalf("greet definition = %+v", greet)
	}
}

func TestParseFileVariantsTrailingComma(t *testing.T) {
	t.Parallel()
	f, err := ParseFile(`card = { one: "card", other: "cards", };`)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	body := f.Definitions[0].Body
	if !body.IsVariants || len(body.Variants) != 2 {
		t.Fatalf("body = %+v", body)
	}
}

func TestParseFileMultiKeyDottedVariants(t *testing.T) {
	t.Parallel()
	f, err := ParseFile(`noun = { nom, acc: "stem", nom.one: "stem", acc.many: "stems" };`)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	body := f.Definitions[0].Body
	if len(body.Variants) != 3 {
		t.Fatalf("got %d variant entries, want 3: %+v", len(body.Variants), body.Variants)
	}
	first := body.Variants[0]
	if len(first.KeyList) != 2 || first.KeyList[0] != "nom" || first.KeyList[1] != "acc" {
		t.Fatalf("first entry keys = %+v", first.KeyList)
	}
	if body.Variants[1].KeyList[0] != "nom.one" {
		t.Fatalf("second entry key = %+v", body.Variants[1].KeyList)
	}
}

func TestParseFileTagsAndFrom(t *testing.T) {
	t.Parallel()
	f, err := ParseFile(`
event = :an "event";
wrap(x) = :from(x) "<b>{x}</b>";
`)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	ev := f.Definitions[0]
	if len(ev.Tags) != 1 || ev.Tags[0] != "an" {
		t.Fatalf("event tags = %+v", ev.Tags)
	}
	wrap := f.Definitions[1]
	if !wrap.HasFrom || wrap.From != "x" {
		t.Fatalf("wrap from = %+v", wrap)
	}
}

func TestParseFileErrors(t *testing.T) {
	t.Parallel()
	cases := []string{
		`hello = "unterminated`,
		`hello "missing equals";`,
		`hello = "missing semicolon"`,
		`card = { one: "card" other: "cards" };`,
	}
	for _, src := range cases {
		if _, err := ParseFile(src); err == nil {
			t.Errorf("ParseFile(%q) succeeded, want error", src)
		}
	}
}

func TestParseFileExampleFromSpec(t *testing.T) {
	t.Parallel()
	src := `
// Simple phrase
hello = "Hello, world!";

// Parameters
greet(name) = "Hello, {name}!";

// Variants (with trailing comma allowed)
card = { one: "card", other: "cards", };

// Multi-key variants (shared template) and dotted keys
noun = { nom, acc: "stem", nom.one: "stem", acc.many: "stems" };

// Tags and from-modifier
event = :an "event";
wrap(x) = :from(x) "<b>{x}</b>";

// Interpolations with selectors and transforms
draw(n) = "Draw {n} {card:n}.";
title   = "{@cap card}";
a_card  = "Draw {@a card}.";          // requires :a on ` + "`card`" + `
chain   = "{@cap @a card}";           // right-to-left: a then cap
call    = "{wrap(event)} happens.";
escapes = "Use {{ and }} literally; @@, :: too.";
`
	f, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(f.Definitions) != 12 {
		t.Fatalf("got %d definitions, want 12", len(f.Definitions))
	}
}
