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

import (
	"strings"

	"github.com/thurn/rlf"
)

func init() {
	register("tr", "inflect", trInflect, []rlf.Tag{"front"}, []rlf.Tag{"back"})
}

// harmonySuffixes gives the front/back allomorph of each suffix named in
// a dot-separated ctx chain (e.g. "pl.dat"). spec.md §4.6 scopes Turkish
// support to this closed two-way (front/back) harmony subset rather than
// the full four-way (front-rounded/front-unrounded/back-rounded/
// back-unrounded) system real Turkish suffixes need — the Open Question
// resolution recorded in SPEC_FULL.md.
var harmonySuffixes = map[string][2]string{
	"pl":  {"ler", "lar"},
	"dat": {"e", "a"},
	"loc": {"de", "da"},
	"abl": {"den", "dan"},
	"gen": {"in", "ın"},
	"acc": {"i", "ı"},
}

// trInflect appends a chain of Turkish suffixes to the input noun, each
// one picking its front- or back-vowel allomorph from the phrase's own
// :front/:back tag, and applying left to right as the ctx chain (e.g.
// "pl.dat" -> plural then dative) specifies.
func trInflect(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	harmony, err := requireOneOf("inflect", inputTags(input), []rlf.Tag{"front", "back"}, text)
	if err != nil {
		return "", err
	}
	chain, ok := ctxText(ctx)
	if !ok || chain == "" {
		return text, nil
	}
	idx := 0
	if harmony == "back" {
		idx = 1
	}
	for _, suffix := range strings.Split(chain, ".") {
		forms, known := harmonySuffixes[suffix]
		if !known {
			return "", errf("unknown turkish suffix %q", suffix)
		}
		text += forms[idx]
	}
	return text, nil
}
