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

import (
	"os"

	"github.com/thurn/rlf"
	"github.com/thurn/rlf/eval"
	"github.com/thurn/rlf/parse"
	"github.com/thurn/rlf/validate"
)

// Registry is RLF's public facade: one phrase store per loaded language,
// an active language, and an optional single-step fallback (spec.md
// §4.7). It is not safe for concurrent use during a load/reload/
// set-language call; see spec.md §5, "Mutability and sharing".
type Registry struct {
	locales  map[string]*locale
	current  string
	fallback string
}

// New constructs an empty Registry. No language has a loaded store until
// one of the LoadTranslations* methods is called.
func New(opts ...Option) *Registry {
	r := &Registry{locales: make(map[string]*locale)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLanguage switches the active language. It does not require code to
// already have a loaded store, mirroring spec.md §4.7's description of
// set_language as a pure state switch independent of loading.
func (r *Registry) SetLanguage(code string) {
	r.current = code
}

// Language returns the currently active language code.
func (r *Registry) Language() string {
	return r.current
}

// LoadTranslationsStr parses text, validates the result against code,
// and on success atomically replaces code's store. It does not record a
// reload path (spec.md §4.7, "does not set the reload path"). A failure
// leaves any prior store for code untouched.
func (r *Registry) LoadTranslationsStr(code, text string) error {
	loc, err := r.buildLocale(code, text)
	if err != nil {
		return err
	}
	r.locales[code] = loc
	return nil
}

// LoadTranslations reads path, parses and validates its contents against
// code, and on success atomically replaces code's store, recording path
// so a later ReloadTranslations can re-read it. A failure leaves any
// prior store for code untouched.
func (r *Registry) LoadTranslations(code, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &rlf.LoadError{Path: path, Cause: err}
	}
	loc, err := r.buildLocale(code, string(data))
	if err != nil {
		return &rlf.LoadError{Path: path, Cause: err}
	}
	loc.sourcePath = path
	loc.hasSourcePath = true
	r.locales[code] = loc
	return nil
}

// ReloadTranslations re-reads the path recorded for code by an earlier
// LoadTranslations call and replaces its store. It fails with a LoadError
// whose NoPathForReload is set if code has no recorded path — either it
// was never loaded, or it was loaded with LoadTranslationsStr instead
// (spec.md §4.7, "fails with 'no-path-for-reload'").
func (r *Registry) ReloadTranslations(code string) error {
	loc, ok := r.locales[code]
	if !ok || !loc.hasSourcePath {
		return &rlf.LoadError{Language: code, NoPathForReload: true}
	}
	return r.LoadTranslations(code, loc.sourcePath)
}

// buildLocale parses and validates text against code's language rules
// and assembles the resulting locale, without touching the registry's
// state — callers install the result only once it is fully built, so a
// parse or validation failure never disturbs the prior store.
func (r *Registry) buildLocale(code, text string) (*locale, error) {
	file, err := parse.ParseFile(text)
	if err != nil {
		return nil, err
	}
	if err := validate.Validate(file, code); err != nil {
		return nil, err
	}
	return newLocale(code, file)
}

// store returns the eval.Store view of the active language, wrapping the
// fallback locale (if any) around it per spec.md §4.7's fallback policy.
func (r *Registry) store() (eval.Store, error) {
	primary, ok := r.locales[r.current]
	if !ok {
		return nil, &rlf.EvalError{Kind: rlf.ErrPhraseNotFound, Name: r.current}
	}
	if r.fallback == "" || r.fallback == r.current {
		return primary, nil
	}
	fb, ok := r.locales[r.fallback]
	if !ok {
		return primary, nil
	}
	return &fallbackStore{primary: primary, fallback: fb}, nil
}

// EvalStr parses template as a standalone template string and evaluates
// it against the active language's store, binding args by name (spec.md
// §4.7, "eval_str").
func (r *Registry) EvalStr(template string, args map[string]rlf.Value) (string, error) {
	tmpl, err := parse.ParseTemplate(template)
	if err != nil {
		return "", err
	}
	st, err := r.store()
	if err != nil {
		return "", err
	}
	return eval.EvalTemplate(st, tmpl, args)
}

// GetPhrase resolves name against the active language's store (falling
// back once if configured) and renders it fully.
func (r *Registry) GetPhrase(name string, args ...rlf.Value) (*rlf.Phrase, error) {
	st, err := r.store()
	if err != nil {
		return nil, err
	}
	return eval.GetPhrase(st, name, args...)
}

// CallPhrase resolves name and returns its rendered default text.
func (r *Registry) CallPhrase(name string, args ...rlf.Value) (string, error) {
	st, err := r.store()
	if err != nil {
		return "", err
	}
	return eval.CallPhrase(st, name, args...)
}

// GetById is GetPhrase's PhraseId counterpart.
func (r *Registry) GetById(id rlf.PhraseId, args ...rlf.Value) (*rlf.Phrase, error) {
	st, err := r.store()
	if err != nil {
		return nil, err
	}
	return eval.GetById(st, id, args...)
}

// CallById is CallPhrase's PhraseId counterpart.
func (r *Registry) CallById(id rlf.PhraseId, args ...rlf.Value) (string, error) {
	st, err := r.store()
	if err != nil {
		return "", err
	}
	return eval.CallById(st, id, args...)
}

// Coverage reports, for each of langs, the source phrase names that have
// no definition in that language's store (spec.md §6, the `coverage`
// adapter's tabulation). A language with no loaded store at all reports
// every source name as missing.
func (r *Registry) Coverage(sourceLang string, langs []string) map[string][]string {
	src, ok := r.locales[sourceLang]
	if !ok {
		return nil
	}
	names := src.sortedNames()
	result := make(map[string][]string, len(langs))
	for _, lang := range langs {
		target, ok := r.locales[lang]
		var missing []string
		for _, name := range names {
			if ok {
				if _, found := target.Lookup(name); found {
					continue
				}
			}
			missing = append(missing, name)
		}
		result[lang] = missing
	}
	return result
}
