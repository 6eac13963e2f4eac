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

package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/thurn/rlf"
	"github.com/thurn/rlf/parse"
)

func mustParse(t *testing.T, src string) rlf.File {
	t.Helper()
	f, err := parse.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile(%q) error = %v", src, err)
	}
	return f
}

func firstErrorKind(t *testing.T, err error) rlf.ValidationErrorKind {
	t.Helper()
	var verrs rlf.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error is not ValidationErrors: %v (%T)", err, err)
	}
	if len(verrs) == 0 {
		t.Fatalf("Validate() returned empty ValidationErrors")
	}
	return verrs[0].Kind
}

func TestValidateAcceptsWellFormedFile(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `
hello = "Hello, world!";
greet(name) = "Hello, {name}!";
card = { one: "card", other: "cards" };
draw(n) = "Draw {n} {card:n}.";
`)
	if err := Validate(f, "en"); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `a = "{b}"; b = "{c}"; c = "{a}";`)
	err := Validate(f, "en")
	if err == nil {
		t.Fatal("Validate() = nil, want cycle error")
	}
	if firstErrorKind(t, err) != rlf.ErrCyclicReference {
		t.Fatalf("Validate() kind = %v, want ErrCyclicReference: %v", firstErrorKind(t, err), err)
	}
	if !strings.Contains(err.Error(), "a -> b -> c -> a") {
		t.Fatalf("Validate() error = %q, want chain a -> b -> c -> a", err.Error())
	}
}

func TestValidateUnknownReference(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `hello = "{missing}";`)
	err := Validate(f, "en")
	if firstErrorKind(t, err) != rlf.ErrUnknownReference {
		t.Fatalf("kind = %v, want ErrUnknownReference: %v", firstErrorKind(t, err), err)
	}
}

func TestValidateCallArityMismatch(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `greet(name) = "hi {name}"; call(x) = "{greet(x, x)}";`)
	err := Validate(f, "en")
	if firstErrorKind(t, err) != rlf.ErrArgumentCountMismatch {
		t.Fatalf("kind = %v, want ErrArgumentCountMismatch: %v", firstErrorKind(t, err), err)
	}
}

func TestValidateParameterShadowsPhrase(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `name = "Bob"; greet(name) = "hi {name}";`)
	err := Validate(f, "en")
	if firstErrorKind(t, err) != rlf.ErrParameterShadowsPhrase {
		t.Fatalf("kind = %v, want ErrParameterShadowsPhrase: %v", firstErrorKind(t, err), err)
	}
}

func TestValidateUnknownTransform(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `card = "book"; title = "{@nonexistent card}";`)
	err := Validate(f, "en")
	if firstErrorKind(t, err) != rlf.ErrUnknownTransform {
		t.Fatalf("kind = %v, want ErrUnknownTransform: %v", firstErrorKind(t, err), err)
	}
}

func TestValidateInvalidSelector(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `card = { one: "card", other: "cards" }; x = "{card:weird}";`)
	err := Validate(f, "en")
	if firstErrorKind(t, err) != rlf.ErrInvalidSelector {
		t.Fatalf("kind = %v, want ErrInvalidSelector: %v", firstErrorKind(t, err), err)
	}
}

func TestValidateSoftMissingTagCheck(t *testing.T) {
	t.Parallel()
	f := mustParse(t, `card = "book"; x = "{@a card}";`)
	err := Validate(f, "en")
	if firstErrorKind(t, err) != rlf.ErrMissingTagStatic {
		t.Fatalf("kind = %v, want ErrMissingTagStatic: %v", firstErrorKind(t, err), err)
	}
}

func TestValidateSelectorAsParameterIsNotLiteral(t *testing.T) {
	t.Parallel()
	// "n" is a parameter of draw, so card:n resolves n as a parameter
	// reference at evaluation time, not a literal key; it must not be
	// flagged by V2 even though "n" is not itself a declared variant key.
	f := mustParse(t, `card = { one: "card", other: "cards" }; draw(n) = "{card:n}";`)
	if err := Validate(f, "en"); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
