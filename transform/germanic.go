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
	register("de", "der", deDer, []rlf.Tag{"masc"}, []rlf.Tag{"fem"}, []rlf.Tag{"neut"})
	registerAlias("de", "die", "der")
	registerAlias("de", "das", "der")
	register("de", "ein", deEin, []rlf.Tag{"masc"}, []rlf.Tag{"fem"}, []rlf.Tag{"neut"})
	registerAlias("de", "eine", "ein")

	register("nl", "de", nlDe, []rlf.Tag{"de"}, []rlf.Tag{"het"})
	register("nl", "een", nlEen)
}

// deCase is one of the four German grammatical cases a :ctx selector on
// @der/@ein may name; nom is the default when no context is given
// (spec.md §4.6).
type deCase int

const (
	deNom deCase = iota
	deAcc
	deDat
	deGen
)

func parseDeCase(ctx *rlf.Value) deCase {
	switch ctxOr(ctx, "nom") {
	case "acc":
		return deAcc
	case "dat":
		return deDat
	case "gen":
		return deGen
	default:
		return deNom
	}
}

// derTable is the 12-cell (gender x case) definite article table of
// singular forms. German has no separate plural gender distinction for the
// definite article (it is always "die" in the plural); deDer renders
// singular forms only.
var derTable = map[rlf.Tag][4]string{
	"masc": {"der", "den", "dem", "des"},
	"fem":  {"die", "die", "der", "der"},
	"neut": {"das", "das", "dem", "des"},
}

func deDer(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("der", inputTags(input), []rlf.Tag{"masc", "fem", "neut"}, text)
	if err != nil {
		return "", err
	}
	row := derTable[gender]
	return row[parseDeCase(ctx)] + " " + text, nil
}

// einTable is the indefinite article's 12-cell table; German "ein" has no
// plural form at all (spec.md §4.6's "12-form... only singular, no
// plural for indefinite" note), so a plural ctx simply has no bearing
// here.
var einTable = map[rlf.Tag][4]string{
	"masc": {"ein", "einen", "einem", "eines"},
	"fem":  {"eine", "eine", "einer", "einer"},
	"neut": {"ein", "ein", "einem", "eines"},
}

func deEin(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("ein", inputTags(input), []rlf.Tag{"masc", "fem", "neut"}, text)
	if err != nil {
		return "", err
	}
	row := einTable[gender]
	return row[parseDeCase(ctx)] + " " + text, nil
}

// nlDe renders the Dutch definite article, which is "het" for neuter
// ("het"-word) nouns and "de" for everything else (common gender and all
// plurals); the input phrase must carry one of the :de or :het tags
// naming which it is.
func nlDe(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	article, err := requireOneOf("de", inputTags(input), []rlf.Tag{"de", "het"}, text)
	if err != nil {
		return "", err
	}
	return string(article) + " " + text, nil
}

func nlEen(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	return "een " + input.AsText(), nil
}
