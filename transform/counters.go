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
	"sort"
	"strconv"

	"github.com/thurn/rlf"
)

// counterSpacing distinguishes how a language writes the count, the
// classifier, and the noun relative to one another (spec.md §4.6).
type counterSpacing int

const (
	// noSpacing writes "<count><classifier><noun>" with no spaces at all
	// (Mandarin, Japanese, Korean, Thai).
	noSpacing counterSpacing = iota
	// spaceBeforeText writes "<count><classifier> <noun>": the classifier
	// attaches directly to the count, but a space separates it from the
	// noun (Bengali).
	spaceBeforeText
	// fullSpacing writes "<count> <classifier> <noun>", all three as
	// separate words (Vietnamese).
	fullSpacing
)

func init() {
	register("zh", "count", counterTransform(zhClassifiers, noSpacing),
		tagSets(zhClassifiers)...)
	register("ja", "count", counterTransform(jaClassifiers, noSpacing),
		tagSets(jaClassifiers)...)
	register("ko", "count", counterTransform(koClassifiers, noSpacing),
		tagSets(koClassifiers)...)
	register("vi", "count", counterTransform(viClassifiers, fullSpacing),
		tagSets(viClassifiers)...)
	register("th", "count", counterTransform(thClassifiers, noSpacing),
		tagSets(thClassifiers)...)
	register("bn", "count", counterTransform(bnClassifiers, spaceBeforeText),
		tagSets(bnClassifiers)...)

	register("id", "plural", idPlural)
}

// zhClassifiers maps each Mandarin measure-word tag spec.md §4.6 names to
// its surface form.
var zhClassifiers = map[rlf.Tag]string{
	"zhang": "张", "ge": "个", "ming": "名", "wei": "位",
	"tiao": "条", "ben": "本", "zhi": "只",
}

var jaClassifiers = map[rlf.Tag]string{
	"mai": "枚", "nin": "人", "hiki": "匹", "hon": "本",
	"ko": "個", "satsu": "冊",
}

var koClassifiers = map[rlf.Tag]string{
	"jang": "장", "myeong": "명", "mari": "마리", "gae": "개", "gwon": "권",
}

var viClassifiers = map[rlf.Tag]string{
	"cai": "cái", "con": "con", "nguoi": "người", "chiec": "chiếc", "to": "tờ",
}

var thClassifiers = map[rlf.Tag]string{
	"bai": "ใบ", "tua": "ตัว", "khon": "คน", "an": "อัน",
}

var bnClassifiers = map[rlf.Tag]string{
	"ta": "টা", "ti": "টি", "khana": "খানা", "jon": "জন",
}

func tagSets(m map[rlf.Tag]string) [][]rlf.Tag {
	names := sortedTagKeys(m)
	sets := make([][]rlf.Tag, 0, len(names))
	for _, tag := range names {
		sets = append(sets, []rlf.Tag{tag})
	}
	return sets
}

func sortedTagKeys(m map[rlf.Tag]string) []rlf.Tag {
	names := make([]rlf.Tag, 0, len(m))
	for tag := range m {
		names = append(names, tag)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// counterTransform builds the "count" transform for a classifier language:
// it reads the input phrase's classifier tag, the context integer count
// (default 1), and renders the count, classifier, and noun according to
// spacing (spec.md §4.6).
func counterTransform(classifiers map[rlf.Tag]string, spacing counterSpacing) Func {
	candidates := sortedTagKeys(classifiers)
	return func(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
		text := input.AsText()
		tag, err := requireOneOf("count", inputTags(input), candidates, text)
		if err != nil {
			return "", err
		}
		classifier := classifiers[tag]
		count := int64(1)
		if ctx != nil {
			if n, ok := ctx.AsInt(); ok {
				count = n
			}
		}
		countStr := strconv.FormatInt(count, 10)
		switch spacing {
		case fullSpacing:
			return countStr + " " + classifier + " " + text, nil
		case spaceBeforeText:
			return countStr + classifier + " " + text, nil
		default:
			return countStr + classifier + text, nil
		}
	}
}

// idPlural implements Indonesian's full-reduplication plural: the noun is
// doubled with a hyphen ("buku" -> "buku-buku"), the standard way
// Indonesian marks plurality in place of an inflected plural form.
func idPlural(input rlf.Value, ctx *rlf.Value, lang string) (string, error) {
	text := input.AsText()
	return text + "-" + text, nil
}
