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

package rlf

import "testing"

func TestLevenshtein(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"card", "card", 0},
		{"card", "cart", 1},
		{"card", "cards", 1},
		{"kitten", "sitting", 3},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSuggestionsThresholdByLength(t *testing.T) {
	t.Parallel()

	// "foo" has length 3: threshold is 1.
	got := Suggestions("foo", []string{"fo", "boo", "fooo", "abcde"})
	names := map[string]bool{}
	for _, s := range got {
		names[s.Name] = true
	}
	if !names["fo"] || !names["fooo"] {
		t.Errorf("expected distance-1 candidates present, got %v", got)
	}
	if names["abcde"] {
		t.Errorf("unexpected far candidate in %v", got)
	}
}

func TestSuggestionsOrderedAndCapped(t *testing.T) {
	t.Parallel()

	got := Suggestions("caller", []string{"calller", "callers", "caler", "balled", "zzzzzz"})
	if len(got) > 3 {
		t.Fatalf("Suggestions returned %d entries, want at most 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Distance > got[i].Distance {
			t.Errorf("suggestions not sorted by distance: %v", got)
		}
	}
}
