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
	"golang.org/x/text/unicode/norm"

	"github.com/thurn/rlf"
)

func init() {
	register("ar", "al", arAl)
}

// sunLetters are the fourteen Arabic consonants that trigger full
// assimilation of the "al-" definite article's lam into a doubled copy
// of the following letter (spec.md §4.6, "ar al... shadda assimilation");
// the remaining ("moon") letters leave "al-" unchanged.
var sunLetters = map[rune]bool{
	'ت': true, 'ث': true, 'د': true, 'ذ': true, 'ر': true, 'ز': true,
	'س': true, 'ش': true, 'ص': true, 'ض': true, 'ط': true, 'ظ': true,
	'ل': true, 'ن': true,
}

// arAl prefixes the Arabic definite article, assimilating its lam into a
// doubled leading consonant for sun letters (e.g. "al-shams" is written
// and pronounced as if "ash-shams"); the phrase's own :sun or :moon tag
// overrides the letter-class heuristic for loanwords where it fails.
func arAl(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := norm.NFC.String(input.AsText())
	tags := inputTags(input)
	isSun := rlf.HasTag(tags, "sun")
	isMoon := rlf.HasTag(tags, "moon")
	if !isSun && !isMoon {
		first := firstArabicLetter(text)
		isSun = sunLetters[first]
	}
	if isSun {
		// Orthographically "al-" is still written; assimilation is marked by
		// doubling the leading consonant, the copy bearing a shadda
		// (gemination diacritic), ahead of the unmodified original text
		// (spec.md §4.6, "ال" + first consonant + shadda + rest).
		const shadda = "ّ"
		first := string(firstArabicLetter(text))
		return "ال" + first + shadda + text, nil
	}
	return "ال" + text, nil
}

func firstArabicLetter(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
