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
	register("fa", "ezafe", faEzafe)
}

// faEzafe appends the Persian ezafe linking vowel that joins a noun to a
// following modifier: "-ye" (written with a preceding zero-width
// non-joiner plus ye) after a word ending in a vowel letter, "-e" after a
// word ending in a consonant. The phrase's :vowel tag overrides the
// letter-class heuristic the same way the Romance elision transforms do.
func faEzafe(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := norm.NFC.String(input.AsText())
	vowelFinal := rlf.HasTag(inputTags(input), "vowel") || endsInPersianVowel(text)
	if vowelFinal {
		const zwnj = "‌"
		return norm.NFC.String(text + zwnj + "ی"), nil
	}
	return norm.NFC.String(text + "ِ"), nil
}

func endsInPersianVowel(s string) bool {
	last := lastRune(s)
	switch last {
	case 'ا', 'و', 'ی', 'ه':
		return true
	default:
		return false
	}
}

func lastRune(s string) rune {
	r := rune(0)
	for _, c := range s {
		r = c
	}
	return r
}
