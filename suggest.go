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

import "sort"

// levenshtein computes the edit distance between a and b. It is the
// textbook dynamic-programming implementation; the alphabets involved
// (phrase names, parameter names, transform names) are short enough that
// the O(len(a)*len(b)) cost never matters.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// maxSuggestDistance returns the did-you-mean distance threshold from
// spec.md §4.4: "maximum distance 1 for names of length <= 3, maximum
// distance 2 otherwise."
func maxSuggestDistance(name string) int {
	if len([]rune(name)) <= 3 {
		return 1
	}
	return 2
}

// Suggestions computes up to three nearest candidates to name out of
// candidates, ordered by distance then by name (spec.md §4.4, §9). Only
// candidates within the length-dependent threshold are returned.
func Suggestions(name string, candidates []string) []Suggestion {
	threshold := maxSuggestDistance(name)
	var out []Suggestion
	for _, c := range candidates {
		if c == name {
			continue
		}
		d := levenshtein(name, c)
		if d <= threshold {
			out = append(out, Suggestion{Name: c, Distance: d})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
