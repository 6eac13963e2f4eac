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

package transform

import "github.com/thurn/rlf"

func init() {
	register("en", "a", enA, []rlf.Tag{"a"}, []rlf.Tag{"an"})
	registerAlias("en", "an", "a")
	register("en", "the", enThe)
}

// enA prepends the English indefinite article, reading the phrase's own
// :a or :an tag rather than guessing from spelling — spec.md §6's
// `a_card = "Draw {@a card}."` example requires `card` to carry :a, and
// spelling-based heuristics fail too often in English ("an hour", "a
// university") to be worth encoding here.
func enA(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	form, err := requireOneOf("a", inputTags(input), []rlf.Tag{"a", "an"}, text)
	if err != nil {
		return "", err
	}
	return string(form) + " " + text, nil
}

// enThe stays deliberately unconditional: English "the" never inflects
// for gender or number, so no tag is required (this is one Open Question
// SPEC_FULL.md records rather than elaborating further).
func enThe(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	return "the " + input.AsText(), nil
}
