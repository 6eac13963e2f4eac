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

// Package parse implements the two RLF grammar parsers described in
// spec.md §4.2: ParseTemplate, which parses the template grammar found
// inside a single quoted string, and ParseFile, which parses a whole
// translation file (or a compile-time declaration block supplied by the
// host-language macro adapter, which is out of scope for this module but
// is the intended external consumer of ParseFile).
//
// Both parsers are hand-written recursive-descent scanners operating
// directly on a rune cursor, in the style of the teacher library's
// iri/langtag parsers: no separate tokenizer pass, no parser-generator
// dependency, explicit rlf.Pos tracking for every emitted AST span.
//
// Neither parser recovers from a syntax error: the first failure is
// reported and parsing stops, per spec.md §4.2's error reporting
// contract.
package parse
