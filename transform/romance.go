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
	"github.com/thurn/rlf"
	"github.com/thurn/rlf/plural"
)

func init() {
	register("es", "el", esEl, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("es", "la", "el")
	register("es", "un", esUn, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("es", "una", "un")

	register("pt", "o", ptO, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("pt", "a", "o")
	register("pt", "um", ptUm, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("pt", "uma", "um")
	register("pt", "de", ptDe, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	register("pt", "em", ptEm, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})

	register("fr", "le", frLe, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("fr", "la", "le")
	register("fr", "un", frUn, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("fr", "une", "un")
	register("fr", "de", frDe, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	register("fr", "au", frAu, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	register("fr", "liaison", frLiaison)

	register("it", "il", itIl, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("it", "lo", "il")
	registerAlias("it", "la", "il")
	register("it", "un", itUn, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	registerAlias("it", "uno", "un")
	registerAlias("it", "una", "un")
	register("it", "di", itDi, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
	register("it", "a", itA, []rlf.Tag{"masc"}, []rlf.Tag{"fem"})
}

func classifyName(lang string, n int64) string { return plural.Classify(lang, n).String() }

// esEl renders the Spanish definite article (el/la/los/las) agreeing in
// gender (the :masc/:fem tag) and number (the ctx count, classified
// one/other by the plural rules).
func esEl(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	tags := inputTags(input)
	gender, err := requireOneOf("el", tags, []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "es", classifyName) == "plural"
	switch {
	case gender == "masc" && !isPlural:
		return "el " + text, nil
	case gender == "masc" && isPlural:
		return "los " + text, nil
	case gender == "fem" && !isPlural:
		return "la " + text, nil
	default:
		return "las " + text, nil
	}
}

func esUn(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	tags := inputTags(input)
	gender, err := requireOneOf("un", tags, []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "es", classifyName) == "plural"
	switch {
	case gender == "masc" && !isPlural:
		return "un " + text, nil
	case gender == "masc" && isPlural:
		return "unos " + text, nil
	case gender == "fem" && !isPlural:
		return "una " + text, nil
	default:
		return "unas " + text, nil
	}
}

func ptO(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("o", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "pt", classifyName) == "plural"
	switch {
	case gender == "masc" && !isPlural:
		return "o " + text, nil
	case gender == "masc" && isPlural:
		return "os " + text, nil
	case gender == "fem" && !isPlural:
		return "a " + text, nil
	default:
		return "as " + text, nil
	}
}

func ptUm(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("um", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	if gender == "masc" {
		return "um " + text, nil
	}
	return "uma " + text, nil
}

func ptDe(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("de", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "pt", classifyName) == "plural"
	switch {
	case gender == "masc" && !isPlural:
		return "do " + text, nil
	case gender == "masc" && isPlural:
		return "dos " + text, nil
	case gender == "fem" && !isPlural:
		return "da " + text, nil
	default:
		return "das " + text, nil
	}
}

func ptEm(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("em", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "pt", classifyName) == "plural"
	switch {
	case gender == "masc" && !isPlural:
		return "no " + text, nil
	case gender == "masc" && isPlural:
		return "nos " + text, nil
	case gender == "fem" && !isPlural:
		return "na " + text, nil
	default:
		return "nas " + text, nil
	}
}

// frVowelInitial reports whether French elision should apply: either the
// phrase carries the explicit :vowel tag (for irregular cases like
// aspirated h) or, absent that tag, its text starts with a vowel letter.
func frVowelInitial(input rlf.Value) bool {
	if rlf.HasTag(inputTags(input), "vowel") {
		return true
	}
	return startsWithVowelLetter(input.AsText())
}

func frLe(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("le", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "fr", classifyName) == "plural"
	if isPlural {
		return "les " + text, nil
	}
	if frVowelInitial(input) {
		return "l'" + text, nil
	}
	if gender == "masc" {
		return "le " + text, nil
	}
	return "la " + text, nil
}

func frUn(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("un", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	if gender == "masc" {
		return "un " + text, nil
	}
	return "une " + text, nil
}

func frDe(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("de", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "fr", classifyName) == "plural"
	if isPlural {
		return "des " + text, nil
	}
	if frVowelInitial(input) {
		return "de l'" + text, nil
	}
	if gender == "masc" {
		return "du " + text, nil
	}
	return "de la " + text, nil
}

func frAu(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("au", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "fr", classifyName) == "plural"
	if isPlural {
		return "aux " + text, nil
	}
	if frVowelInitial(input) {
		return "à l'" + text, nil
	}
	if gender == "masc" {
		return "au " + text, nil
	}
	return "à la " + text, nil
}

// frLiaison selects the "standard" or "vowel" variant of input (which
// must be a Phrase exposing both) based on whether ctx — a second,
// separately referenced phrase — carries the :vowel tag. This is the one
// transform in the library whose context argument is itself inspected
// for tags rather than read as plain text (spec.md §4.6).
func frLiaison(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	if input.Kind != rlf.KindPhrase || input.Phrase == nil {
		return input.AsText(), nil
	}
	key := rlf.VariantKey("standard")
	if ctx != nil && ctx.Kind == rlf.KindPhrase && ctx.Phrase != nil && rlf.HasTag(ctx.Phrase.Tags, "vowel") {
		key = "vowel"
	}
	if text, _, ok := input.Phrase.Variant(key); ok {
		return text, nil
	}
	return input.Phrase.Default, nil
}

// itSImpura reports, for Italian's il/un/di/a families, whether the
// input carries the :s_imp tag and so takes the special "s impura" form
// as opposed to plain vowel elision. The word's spelling is not
// inspected.
func itSImpura(input rlf.Value) bool {
	return rlf.HasTag(inputTags(input), "s_imp")
}

func itIl(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("il", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	isPlural := numberContext(ctx, "it", classifyName) == "plural"
	vowel := startsWithVowelLetter(text) || rlf.HasTag(inputTags(input), "vowel")
	sImp := itSImpura(input)
	switch {
	case gender == "fem" && isPlural:
		return "le " + text, nil
	case gender == "fem" && vowel:
		return "l'" + text, nil
	case gender == "fem":
		return "la " + text, nil
	case isPlural && sImp:
		return "gli " + text, nil
	case isPlural:
		return "i " + text, nil
	case vowel:
		return "l'" + text, nil
	case sImp:
		return "lo " + text, nil
	default:
		return "il " + text, nil
	}
}

func itUn(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("un", inputTags(input), []rlf.Tag{"masc", "fem"}, text)
	if err != nil {
		return "", err
	}
	vowel := startsWithVowelLetter(text) || rlf.HasTag(inputTags(input), "vowel")
	sImp := itSImpura(input)
	switch {
	case gender == "fem" && vowel:
		return "un'" + text, nil
	case gender == "fem":
		return "una " + text, nil
	case sImp:
		return "uno " + text, nil
	default:
		return "un " + text, nil
	}
}

func itDi(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	art, err := itIl(input, ctx, lang)
	if err != nil {
		return "", err
	}
	return combineItPreposition("di", art)
}

func itA(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	art, err := itIl(input, ctx, lang)
	if err != nil {
		return "", err
	}
	return combineItPreposition("a", art)
}

// combineItPreposition fuses an Italian simple preposition with the
// definite-article-plus-noun string art already produced by itIl,
// following the standard preposizioni articolate contractions.
func combineItPreposition(prep, art string) (string, error) {
	var artWord, rest string
	if len(art) >= 2 && art[1] == '\'' {
		// Elided forms ("l'arte") carry no space between article and noun.
		artWord, rest = art[:2], art[2:]
	} else {
		for i, r := range art {
			if r == ' ' {
				artWord, rest = art[:i], art[i+1:]
				break
			}
		}
	}
	if artWord == "" {
		return art, nil
	}
	var fused string
	switch prep {
	case "di":
		switch artWord {
		case "il":
			fused = "del"
		case "lo":
			fused = "dello"
		case "la":
			fused = "della"
		case "l'":
			fused = "dell'"
		case "i":
			fused = "dei"
		case "gli":
			fused = "degli"
		case "le":
			fused = "delle"
		default:
			fused = prep + " " + artWord
		}
	case "a":
		switch artWord {
		case "il":
			fused = "al"
		case "lo":
			fused = "allo"
		case "la":
			fused = "alla"
		case "l'":
			fused = "all'"
		case "i":
			fused = "ai"
		case "gli":
			fused = "agli"
		case "le":
			fused = "alle"
		default:
			fused = prep + " " + artWord
		}
	}
	if fused == "" || fused[len(fused)-1] == '\'' {
		return fused + rest, nil
	}
	return fused + " " + rest, nil
}
