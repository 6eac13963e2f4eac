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

package registry

import (
	"sort"

	"github.com/thurn/rlf"
)

// locale is one language's loaded phrase store. It satisfies eval.Store
// directly, so a *Registry can hand any of its locales straight to an
// rlf/eval entry point.
type locale struct {
	lang string

	byName map[string]rlf.PhraseDefinition
	byId   map[rlf.PhraseId]rlf.PhraseDefinition

	// sourcePath and hasSourcePath record where this locale's text came
	// from, for reload_translations (spec.md §4.7, "populated only when
	// the language was loaded from a file").
	sourcePath    string
	hasSourcePath bool
}

func (l *locale) Language() string { return l.lang }

func (l *locale) Lookup(name string) (rlf.PhraseDefinition, bool) {
	d, ok := l.byName[name]
	return d, ok
}

func (l *locale) LookupById(id rlf.PhraseId) (rlf.PhraseDefinition, bool) {
	d, ok := l.byId[id]
	return d, ok
}

// newLocale builds a locale from a parsed file's definitions, enforcing
// the two load-time structural invariants spec.md §3 names: unique
// phrase names, and no two distinct names sharing a PhraseId.
func newLocale(lang string, file rlf.File) (*locale, error) {
	l := &locale{
		lang:   lang,
		byName: make(map[string]rlf.PhraseDefinition, len(file.Definitions)),
		byId:   make(map[rlf.PhraseId]rlf.PhraseDefinition, len(file.Definitions)),
	}
	for _, def := range file.Definitions {
		if _, exists := l.byName[def.Name]; exists {
			return nil, &rlf.ValidationError{
				Kind: rlf.ErrDuplicatePhraseName,
				Name: def.Name,
				Span: def.Span,
			}
		}
		id := rlf.NewPhraseId(def.Name)
		if other, exists := l.byId[id]; exists {
			return nil, &rlf.ValidationError{
				Kind:      rlf.ErrPhraseIdCollision,
				Name:      def.Name,
				OtherName: other.Name,
				Span:      def.Span,
			}
		}
		l.byName[def.Name] = def
		l.byId[id] = def
	}
	return l, nil
}

// sortedNames returns every defined phrase name in this locale, sorted,
// for deterministic coverage reporting (spec.md §6's `coverage` adapter).
func (l *locale) sortedNames() []string {
	names := make([]string, 0, len(l.byName))
	for name := range l.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
