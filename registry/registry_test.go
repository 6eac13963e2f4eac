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

package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thurn/rlf"
)

func TestLoadTranslationsStrAndCallPhrase(t *testing.T) {
	t.Parallel()
	r := New(WithLanguage("en"))
	if err := r.LoadTranslationsStr("en", `hello = "Hello, world!";`); err != nil {
		t.Fatalf("LoadTranslationsStr() error = %v", err)
	}
	got, err := r.CallPhrase("hello")
	if err != nil || got != "Hello, world!" {
		t.Fatalf("CallPhrase(hello) = %q, %v", got, err)
	}
}

func TestLoadTranslationsStrRejectsDuplicatePhraseName(t *testing.T) {
	t.Parallel()
	r := New()
	err := r.LoadTranslationsStr("en", `hello = "a"; hello = "b";`)
	var verr *rlf.ValidationError
	if !errors.As(err, &verr) || verr.Kind != rlf.ErrDuplicatePhraseName {
		t.Fatalf("LoadTranslationsStr() error = %v, want ErrDuplicatePhraseName", err)
	}
}

func TestLoadTranslationsStrFailureLeavesPriorStoreIntact(t *testing.T) {
	t.Parallel()
	r := New(WithLanguage("en"))
	if err := r.LoadTranslationsStr("en", `hello = "Hello, world!";`); err != nil {
		t.Fatalf("initial LoadTranslationsStr() error = %v", err)
	}
	if err := r.LoadTranslationsStr("en", `hello = "oops" `); err == nil {
		t.Fatal("LoadTranslationsStr() with malformed text = nil error, want parse error")
	}
	got, err := r.CallPhrase("hello")
	if err != nil || got != "Hello, world!" {
		t.Fatalf("CallPhrase(hello) after failed reload = %q, %v, want prior store intact", got, err)
	}
}

func TestLoadTranslationsAndReload(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "en.rlf")
	if err := os.WriteFile(path, []byte(`hello = "v1";`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	r := New(WithLanguage("en"))
	if err := r.LoadTranslations("en", path); err != nil {
		t.Fatalf("LoadTranslations() error = %v", err)
	}
	if got, err := r.CallPhrase("hello"); err != nil || got != "v1" {
		t.Fatalf("CallPhrase(hello) = %q, %v, want v1", got, err)
	}

	if err := os.WriteFile(path, []byte(`hello = "v2";`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := r.ReloadTranslations("en"); err != nil {
		t.Fatalf("ReloadTranslations() error = %v", err)
	}
	if got, err := r.CallPhrase("hello"); err != nil || got != "v2" {
		t.Fatalf("CallPhrase(hello) after reload = %q, %v, want v2", got, err)
	}
}

func TestReloadTranslationsFailsWithoutRecordedPath(t *testing.T) {
	t.Parallel()
	r := New(WithLanguage("en"))
	if err := r.LoadTranslationsStr("en", `hello = "v1";`); err != nil {
		t.Fatalf("LoadTranslationsStr() error = %v", err)
	}
	err := r.ReloadTranslations("en")
	var lerr *rlf.LoadError
	if !errors.As(err, &lerr) || !lerr.NoPathForReload {
		t.Fatalf("ReloadTranslations() error = %v, want NoPathForReload LoadError", err)
	}
}

func TestFallbackAppliesOnlyToMissingPhraseName(t *testing.T) {
	t.Parallel()
	r := New(WithLanguage("fr"), WithFallback("en"))
	if err := r.LoadTranslationsStr("en", `
only_en = "only en";
shared = { one: "one", other: "many" };
`); err != nil {
		t.Fatalf("load en: %v", err)
	}
	if err := r.LoadTranslationsStr("fr", `
shared = { one: "un" };
`); err != nil {
		t.Fatalf("load fr: %v", err)
	}

	if got, err := r.CallPhrase("only_en"); err != nil || got != "only en" {
		t.Fatalf("CallPhrase(only_en) = %q, %v, want fallback to en", got, err)
	}

	phrase, err := r.GetPhrase("shared")
	if err != nil {
		t.Fatalf("GetPhrase(shared) error = %v", err)
	}
	if _, _, ok := phrase.Variant("other"); ok {
		t.Fatal("GetPhrase(shared) resolved an `other` variant from en; fallback must not fill in a missing variant within a phrase that exists in the active language")
	}
}

func TestEvalStr(t *testing.T) {
	t.Parallel()
	r := New(WithLanguage("en"))
	if err := r.LoadTranslationsStr("en", `card = :a "card";`); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, err := r.EvalStr(`Draw {@a card}.`, nil)
	if err != nil || got != "Draw a card." {
		t.Fatalf("EvalStr() = %q, %v", got, err)
	}
}

func TestCoverageReportsMissingNames(t *testing.T) {
	t.Parallel()
	r := New()
	if err := r.LoadTranslationsStr("en", `hello = "Hello"; bye = "Bye";`); err != nil {
		t.Fatalf("load en: %v", err)
	}
	if err := r.LoadTranslationsStr("fr", `hello = "Bonjour";`); err != nil {
		t.Fatalf("load fr: %v", err)
	}
	missing := r.Coverage("en", []string{"fr", "de"})
	if got := missing["fr"]; len(got) != 1 || got[0] != "bye" {
		t.Fatalf("Coverage()[fr] = %v, want [bye]", got)
	}
	if got := missing["de"]; len(got) != 2 {
		t.Fatalf("Coverage()[de] = %v, want both names missing", got)
	}
}
