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
	"errors"
	"testing"

	"github.com/thurn/rlf"
	"github.com/thurn/rlf/parse"
)

type mapStore struct {
	lang  string
	byName map[string]rlf.PhraseDefinition
	byId   map[rlf.PhraseId]rlf.PhraseDefinition
}

func newMapStore(t *testing.T, lang, src string) *mapStore {
	t.Helper()
	f, err := parse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	s := &mapStore{lang: lang, byName: map[string]rlf.PhraseDefinition{}, byId: map[rlf.PhraseId]rlf.PhraseDefinition{}}
	for _, def := range f.Definitions {
		s.byName[def.Name] = def
		s.byId[rlf.NewPhraseId(def.Name)] = def
	}
	return s
}

func (s *mapStore) Language() string { return s.lang }

func (s *mapStore) Lookup(name string) (rlf.PhraseDefinition, bool) {
	d, ok := s.byName[name]
	return d, ok
}

func (s *mapStore) LookupById(id rlf.PhraseId) (rlf.PhraseDefinition, bool) {
	d, ok := s.byId[id]
	return d, ok
}

func TestCallPhraseSimpleAndParam(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `
hello = "Hello, world!";
greet(name) = "Hello, {name}!";
`)
	if got, err := CallPhrase(store, "hello"); err != nil || got != "Hello, world!" {
		t.Fatalf("CallPhrase(hello) = %q, %v", got, err)
	}
	if got, err := CallPhrase(store, "greet", rlf.TextValue("Ada")); err != nil || got != "Hello, Ada!" {
		t.Fatalf("CallPhrase(greet, Ada) = %q, %v", got, err)
	}
}

func TestCallPhraseVariantSelectionByPlural(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `
card = { one: "card", other: "cards" };
draw(n) = "Draw {n} {card:n}.";
`)
	if got, err := CallPhrase(store, "draw", rlf.IntValue(1)); err != nil || got != "Draw 1 card." {
		t.Fatalf("CallPhrase(draw, 1) = %q, %v", got, err)
	}
	if got, err := CallPhrase(store, "draw", rlf.IntValue(5)); err != nil || got != "Draw 5 cards." {
		t.Fatalf("CallPhrase(draw, 5) = %q, %v", got, err)
	}
}

func TestCallPhraseTransformChainRightToLeft(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `
card = :a "card";
chain = "{@cap @a card}";
`)
	if got, err := CallPhrase(store, "chain"); err != nil || got != "A card" {
		t.Fatalf("CallPhrase(chain) = %q, %v", got, err)
	}
}

func TestCallPhraseAutoCapitalizesUppercaseReference(t *testing.T) {
	t.Parallel()
	// parse.ParseTemplate lowercases an uppercase-initial reference name and
	// synthesizes a leading @cap (spec.md §4.2); Card isn't a valid phrase
	// name so this exercises that the synthesized transform round-trips
	// through evaluation the same as an explicit one.
	store := newMapStore(t, "en", `
card = "card";
title = "{Card}";
`)
	if got, err := CallPhrase(store, "title"); err != nil || got != "Card" {
		t.Fatalf("CallPhrase(title) = %q, %v", got, err)
	}
}

func TestCallPhraseFromTagInheritance(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `
event = :an "event";
wrap(x) = :from(x) "<b>{x}</b>";
call = "{wrap(event)} happens.";
`)
	if got, err := CallPhrase(store, "call"); err != nil || got != "<b>event</b> happens." {
		t.Fatalf("CallPhrase(call) = %q, %v", got, err)
	}
}

func TestCallPhraseGermanCaseContext(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "de", `
man = :masc "Mann";
line = "{@der:dat man}.";
`)
	if got, err := CallPhrase(store, "line"); err != nil || got != "dem Mann." {
		t.Fatalf("CallPhrase(line) = %q, %v", got, err)
	}
}

func TestCallPhraseArabicAssimilationScenario(t *testing.T) {
	t.Parallel()
	// spec.md §8 scenario 5.
	store := newMapStore(t, "ar", `
sun = :sun "شمس";
line = "{@al sun}";
`)
	want := "ال" + "ش" + "ّ" + "شمس"
	if got, err := CallPhrase(store, "line"); err != nil || got != want {
		t.Fatalf("CallPhrase(line) = %q, %v, want %q", got, err, want)
	}
}

func TestCallPhraseKoreanParticleScenario(t *testing.T) {
	t.Parallel()
	// spec.md §8 scenario 6: the particle interpolation emits only the
	// particle, immediately following the noun reference written in the
	// same template, never a repeated copy of the noun.
	store := newMapStore(t, "ko", `
apple = "사과";
book = "책";
sentence_apple = "{apple}{@particle:subj apple} good.";
sentence_book = "{book}{@particle:subj book} good.";
`)
	if got, err := CallPhrase(store, "sentence_apple"); err != nil || got != "사과가 good." {
		t.Fatalf("CallPhrase(sentence_apple) = %q, %v, want 사과가 good.", got, err)
	}
	if got, err := CallPhrase(store, "sentence_book"); err != nil || got != "책이 good." {
		t.Fatalf("CallPhrase(sentence_book) = %q, %v, want 책이 good.", got, err)
	}
}

func TestCallPhraseDetectsRuntimeCycle(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `a = "{b}"; b = "{a}";`)
	_, err := CallPhrase(store, "a")
	if err == nil {
		t.Fatal("CallPhrase(a) = nil error, want cyclic reference error")
	}
	var eerr *rlf.EvalError
	if !errors.As(err, &eerr) || eerr.Kind != rlf.ErrEvalCyclicReference {
		t.Fatalf("CallPhrase(a) error = %v, want ErrEvalCyclicReference", err)
	}
}

func TestCallByIdMatchesCallPhrase(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `hello = "Hello, world!";`)
	id := rlf.NewPhraseId("hello")
	got, err := CallById(store, id)
	if err != nil || got != "Hello, world!" {
		t.Fatalf("CallById(hello) = %q, %v", got, err)
	}
}

func TestCallPhraseMissingVariantError(t *testing.T) {
	t.Parallel()
	store := newMapStore(t, "en", `card = { one: "card", other: "cards" }; x = "{card:missing}";`)
	_, err := CallPhrase(store, "x")
	var eerr *rlf.EvalError
	if !errors.As(err, &eerr) || eerr.Kind != rlf.ErrMissingVariant {
		t.Fatalf("CallPhrase(x) error = %v, want ErrMissingVariant", err)
	}
}
