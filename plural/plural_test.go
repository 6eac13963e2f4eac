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

package plural

import "testing"

func TestClassifyEnglish(t *testing.T) {
	t.Parallel()
	if got := Classify("en", 1); got != One {
		t.Errorf("Classify(en, 1) = %v, want One", got)
	}
	if got := Classify("en", 5); got != Other {
		t.Errorf("Classify(en, 5) = %v, want Other", got)
	}
}

func TestClassifyRussian(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n    int64
		want Category
	}{
		{1, One},
		{2, Few},
		{5, Many},
		{11, Many},
		{21, One},
		{22, Few},
	}
	for _, c := range cases {
		if got := Classify("ru", c.n); got != c.want {
			t.Errorf("Classify(ru, %d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestClassifyArabic(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n    int64
		want Category
	}{
		{0, Zero},
		{1, One},
		{2, Two},
		{5, Few},
		{15, Many},
		{100, Other},
		{101, Other},
	}
	for _, c := range cases {
		if got := Classify("ar", c.n); got != c.want {
			t.Errorf("Classify(ar, %d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestClassifyUnknownLanguageUsesEnglishFallback(t *testing.T) {
	t.Parallel()
	if got := Classify("xx", 1); got != One {
		t.Errorf("Classify(xx, 1) = %v, want One", got)
	}
	if got := Classify("xx", 3); got != Other {
		t.Errorf("Classify(xx, 3) = %v, want Other", got)
	}
}

func TestClassifyRegionalVariantMatchesBaseLanguage(t *testing.T) {
	t.Parallel()
	if got := Classify("pt-BR", 0); got != One {
		t.Errorf("Classify(pt-BR, 0) = %v, want One (French/Portuguese rule treats 0 as one)", got)
	}
}

func TestClassifyInvariantLanguages(t *testing.T) {
	t.Parallel()
	for _, lang := range []string{"ja", "zh", "ko", "th", "vi", "id"} {
		for _, n := range []int64{0, 1, 2, 100} {
			if got := Classify(lang, n); got != Other {
				t.Errorf("Classify(%s, %d) = %v, want Other", lang, n, got)
			}
		}
	}
}
