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

// Option configures a Registry at construction time. The teacher takes
// no configuration of its own, so this follows the ordinary Go
// alternative to a config struct rather than introducing one.
type Option func(*Registry)

// WithLanguage sets the Registry's initial active language, equivalent
// to calling SetLanguage immediately after New. code need not already
// have a loaded store.
func WithLanguage(code string) Option {
	return func(r *Registry) { r.current = code }
}

// WithFallback configures the single-step fallback language consulted
// when a phrase name is missing from the active language (spec.md §4.7,
// "Fallback policy"). Off by default.
func WithFallback(code string) Option {
	return func(r *Registry) { r.fallback = code }
}
