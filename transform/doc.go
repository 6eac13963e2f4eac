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

// Package transform is RLF's closed library of text transforms: the
// universal case transforms and the per-language morphological
// transforms an interpolation's `@name` / `@name:ctx` chain can name
// (spec.md §4.6). It has no dependency on the parser, validator, or
// evaluator; those packages depend on it, through Lookup and IsKnown, to
// resolve a transform name to its implementation.
package transform
