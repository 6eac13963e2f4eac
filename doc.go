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

// Package rlf implements the core data model of RLF: a template
// localization language that compiles source-language phrases into typed
// callables while loading translations for other languages at runtime.
//
// This package owns the types shared by every other RLF package: the
// tagged-union Value, the grammatical Tag, the dotted VariantKey, the
// stable 64-bit PhraseId, the rendered Phrase, and the PhraseDefinition /
// Template AST produced by package parse. It has no parsing or evaluation
// logic of its own; see rlf/parse, rlf/validate, rlf/eval, rlf/transform,
// and rlf/registry for those concerns.
package rlf
