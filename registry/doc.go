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

// Package registry is RLF's public facade (spec.md §4.7, "Locale
// registry"): it owns one phrase store per loaded language, the active
// language and optional single-step fallback, and the source paths
// needed to support reload, and it exposes the rlf/eval entry points as
// methods so a caller never touches rlf/parse, rlf/validate, or rlf/eval
// directly.
package registry
