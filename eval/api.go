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

// EvalTemplate renders tmpl directly, binding args by name as if they
// were a phrase's parameters. It is the entry point `registry.EvalStr`
// uses for one-off templates that were never attached to a phrase name.
func EvalTemplate(store Store, tmpl rlf.Template, args map[string]rlf.Value) (string, error) {
	ev := &evaluator{store: store}
	return ev.evalTemplate(tmpl, args, nil, 0)
}

// GetPhrase resolves name against store and renders it fully, returning
// every variant alongside its default text so a caller can pick a
// variant itself instead of letting a selector choose one.
func GetPhrase(store Store, name string, args ...rlf.Value) (*rlf.Phrase, error) {
	def, ok := store.Lookup(name)
	if !ok {
		return nil, &rlf.EvalError{Kind: rlf.ErrPhraseNotFound, Name: name}
	}
	ev := &evaluator{store: store}
	return ev.evalPhraseDef(def, args, nil, 0)
}

// CallPhrase resolves name and renders its default text, the common case
// of calling a phrase purely for its string value.
func CallPhrase(store Store, name string, args ...rlf.Value) (string, error) {
	phrase, err := GetPhrase(store, name, args...)
	if err != nil {
		return "", err
	}
	return phrase.Default, nil
}

// GetById is GetPhrase's counterpart for the compile-time PhraseId keys
// spec.md §4.1 describes (used when the phrase name itself need not ship
// in the binary).
func GetById(store Store, id rlf.PhraseId, args ...rlf.Value) (*rlf.Phrase, error) {
	def, ok := store.LookupById(id)
	if !ok {
		return nil, &rlf.EvalError{Kind: rlf.ErrPhraseNotFoundById, Id: id}
	}
	ev := &evaluator{store: store}
	return ev.evalPhraseDef(def, args, nil, 0)
}

// CallById is CallPhrase's counterpart for PhraseId keys.
func CallById(store Store, id rlf.PhraseId, args ...rlf.Value) (string, error) {
	phrase, err := GetById(store, id, args...)
	if err != nil {
		return "", err
	}
	return phrase.Default, nil
}
