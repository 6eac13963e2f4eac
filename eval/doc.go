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

// Package eval implements RLF's runtime evaluation engine (spec.md §4.5):
// walking a parsed Template, resolving references against a Store of
// known phrases, composing and looking up variant keys, and applying
// transforms right to left.
//
// The engine is deliberately store-agnostic: it depends on the small
// Store interface rather than on rlf/registry, so rlf/registry can
// depend on rlf/eval instead of the other way around.
package eval
