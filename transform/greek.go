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
	register("el", "o", elO, []rlf.Tag{"masc"}, []rlf.Tag{"fem"}, []rlf.Tag{"neut"})
	registerAlias("el", "i", "o")
	registerAlias("el", "to", "o")
	register("el", "enas", elEnas, []rlf.Tag{"masc"}, []rlf.Tag{"fem"}, []rlf.Tag{"neut"})
	registerAlias("el", "mia", "enas")
	registerAlias("el", "ena", "enas")
}

// elCase mirrors deCase for Greek's four cases, in the nominative,
// accusative, genitive, dative order spec.md §4.6 lists for Greek
// specifically (dative survives only in fixed expressions in Modern
// Greek but the table carries it for completeness per the Open Question
// resolution in DESIGN.md).
type elCase int

const (
	elNom elCase = iota
	elAcc
	elGen
	elDat
)

func parseElCase(ctx *rlf.Value) elCase {
	switch ctxOr(ctx, "nom") {
	case "acc":
		return elAcc
	case "gen":
		return elGen
	case "dat":
		return elDat
	default:
		return elNom
	}
}

// oTable holds the 24-cell (gender x case x number) definite article
// table: each gender maps to [singular 4-case row, plural 4-case row].
var oTable = map[rlf.Tag][2][4]string{
	"masc": {{"ο", "τον", "του", "τω"}, {"οι", "τους", "των", "τοις"}},
	"fem":  {{"η", "την", "της", "τη"}, {"οι", "τις", "των", "ταις"}},
	"neut": {{"το", "το", "του", "τω"}, {"τα", "τα", "των", "τοις"}},
}

func elO(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("o", inputTags(input), []rlf.Tag{"masc", "fem", "neut"}, text)
	if err != nil {
		return "", err
	}
	numberRow := 0
	if numberContext(ctx, "el", classifyName) == "plural" {
		numberRow = 1
	}
	return oTable[gender][numberRow][parseElCase(ctx)] + " " + text, nil
}

// enasTable is the indefinite article's 12-cell (gender x case) table;
// Greek "ένας/μία/ένα" has no plural form, matching German "ein".
var enasTable = map[rlf.Tag][4]string{
	"masc": {"ένας", "έναν", "ενός", "ενί"},
	"fem":  {"μία", "μία", "μιας", "μία"},
	"neut": {"ένα", "ένα", "ενός", "ενί"},
}

func elEnas(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("enas", inputTags(input), []rlf.Tag{"masc", "fem", "neut"}, text)
	if err != nil {
		return "", err
	}
	return enasTable[gender][parseElCase(ctx)] + " " + text, nil
}
