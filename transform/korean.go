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
	register("ko", "particle", koParticle)
}

// Hangul syllable block constants for decomposing a precomposed syllable
// into (leading, vowel, trailing) indices, per the standard Unicode
// Hangul Syllables algorithm.
const (
	hangulBase      = 0xAC00
	hangulLast      = 0xD7A3
	jongseongCount  = 28
	jungseongCount  = 21
	syllablesPerLeading = jungseongCount * jongseongCount
)

// hasJongseong reports whether the last Hangul syllable of s ends in a
// trailing consonant (a "closed" syllable), which determines which
// allomorph of a Korean particle attaches. Non-Hangul text (Latin
// transliteration, digits) is treated as vowel-final, matching how
// numerals are read aloud when written digitally.
func hasJongseong(s string) bool {
	last := lastRune(s)
	if last < hangulBase || last > hangulLast {
		return false
	}
	index := int(last) - hangulBase
	return index%jongseongCount != 0
}

// particleForms gives the (closed-syllable, open-syllable) allomorph pair
// for each of the three particle contexts spec.md §4.6 names.
var particleForms = map[string][2]string{
	"subj":  {"이", "가"},
	"obj":   {"을", "를"},
	"topic": {"은", "는"},
}

// koParticle selects the correct allomorph of the Korean subject,
// object, or topic particle based on whether the noun's last syllable
// ends in a consonant, defaulting to the subject particle when no :ctx
// is given. The particle alone is returned, not the noun with the
// particle attached — the template itself writes the noun reference
// immediately before the `@particle` interpolation (spec.md §4.6).
func koParticle(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	role := ctxOr(ctx, "subj")
	forms, ok := particleForms[role]
	if !ok {
		return "", errf("unknown particle context %q", role)
	}
	if hasJongseong(text) {
		return forms[0], nil
	}
	return forms[1], nil
}
