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

// fnvOffset64 and fnvPrime64 are the FNV-1a 64-bit constants (spec.md
// §3, "PhraseId... FNV-1a-64 is sufficient").
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// PhraseId is a stable 64-bit identifier derived from a phrase name by a
// fixed, non-cryptographic hash (spec.md §3, "PhraseId"). Its byte
// representation is stable across processes and Go versions because the
// hash is computed over the UTF-8 bytes of the name with no
// runtime-dependent salt.
type PhraseId uint64

// NewPhraseId computes the PhraseId for a phrase name using FNV-1a-64.
// The function is a plain loop over bytes, not map/hash-seeded state, so
// it is usable to construct compile-time literal ids (spec.md §4.1,
// "enabling compile-time literal construction of ids").
func NewPhraseId(name string) PhraseId {
	h := fnvOffset64
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= fnvPrime64
	}
	return PhraseId(h)
}
