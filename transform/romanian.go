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
	register("ro", "def", roDef, []rlf.Tag{"masc"}, []rlf.Tag{"fem"}, []rlf.Tag{"neut"})
}

// roDef implements Romanian's enclitic definite article: unlike the other
// Indo-European articles in this library it is a suffix appended to the
// noun, not a separate word prepended to it (spec.md §4.6). Neuter nouns
// behave as masculine in the singular and feminine in the plural, the
// standard descriptive rule for Romanian's "ambigen" gender.
func roDef(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	gender, err := requireOneOf("def", inputTags(input), []rlf.Tag{"masc", "fem", "neut"}, text)
	if err != nil {
		return "", err
	}
	plural := numberContext(ctx, "ro", classifyName) == "plural"
	effective := gender
	if gender == "neut" {
		if plural {
			effective = "fem"
		} else {
			effective = "masc"
		}
	}
	var suffix string
	switch {
	case effective == "masc" && !plural:
		suffix = "ul"
	case effective == "masc" && plural:
		suffix = "ii"
	case effective == "fem" && !plural:
		suffix = "a"
	default:
		suffix = "le"
	}
	return text + suffix, nil
}
