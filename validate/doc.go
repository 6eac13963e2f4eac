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

// Package validate implements RLF's compile-time checks over a parsed
// rlf.File (spec.md §4.4): reference resolvability, literal selector
// validity, transform existence, parameter shadowing, call arity, cycle
// freedom, and a soft static tag-obligation check. Validate runs entirely
// over the AST; it never evaluates a template.
//
// Every check collects into a single rlf.ValidationErrors rather than
// stopping at the first problem, so a translator sees every defect in
// one pass. Errors are walked and reported in a stable order (phrase
// definitions in file order, everything inside a definition in source
// order) so two runs over the same file produce byte-identical output.
package validate
