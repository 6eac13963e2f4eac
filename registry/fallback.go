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

import "github.com/thurn/rlf"

// fallbackStore layers a single fallback locale behind a primary one
// (spec.md §4.7, "Fallback policy: when a phrase is missing in the
// current language, consult the single fallback... once... no
// transitive fallback"). It only ever widens a missing *phrase name*
// lookup; a phrase that resolves in the primary locale is rendered
// entirely against that locale; its missing variants, tags, and
// transforms are never papered over by the fallback language.
type fallbackStore struct {
	primary  *locale
	fallback *locale
}

func (f *fallbackStore) Language() string { return f.primary.Language() }

func (f *fallbackStore) Lookup(name string) (rlf.PhraseDefinition, bool) {
	if def, ok := f.primary.Lookup(name); ok {
		return def, true
	}
	return f.fallback.Lookup(name)
}

func (f *fallbackStore) LookupById(id rlf.PhraseId) (rlf.PhraseDefinition, bool) {
	if def, ok := f.primary.LookupById(id); ok {
		return def, true
	}
	return f.fallback.LookupById(id)
}
