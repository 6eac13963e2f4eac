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

import "github.com/thurn/rlf"

// Store is the minimal phrase lookup surface the evaluator needs. The
// rlf/registry locale type satisfies it directly; tests can satisfy it with a
// bare map.
type Store interface {
	// Language returns the BCP 47 code the store's phrases are written in,
	// consulted for plural classification and transform dispatch.
	Language() string
	Lookup(name string) (rlf.PhraseDefinition, bool)
	LookupById(id rlf.PhraseId) (rlf.PhraseDefinition, bool)
}

// maxCallDepth bounds phrase call nesting (spec.md §4.5, "a hard depth
// limit of 64 guards against runaway recursion that cycle detection
// alone would not catch, e.g. unbounded but acyclic chains").
const maxCallDepth = 64

func contains(stack []string, name string) bool {
	for _, s := range stack {
		if s == name {
			return true
		}
	}
	return false
}
