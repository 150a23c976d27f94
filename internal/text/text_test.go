package text

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already normalized", "python developer", "python developer"},
		{"uppercase", "Senior Go Developer", "senior go developer"},
		{"digits and punctuation", "5+ years of C++/Go (2019-2024)!", "years of cgo"},
		{"whitespace runs", "one\t two\n\nthree   four ", "one two three four"},
		{"non ascii letters", "rÉsumé", "rsum"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World! 42",
		"  mixed\tCASE\nand   spacing  ",
		"python developer with aws and docker experience",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeFixedPoint(t *testing.T) {
	// Text that is already lowercase letters with single spaces must pass
	// through unchanged.
	in := "go engineer kubernetes docker"
	if got := Normalize(in); got != in {
		t.Fatalf("expected fixed point, got %q", got)
	}
}

func TestTokens(t *testing.T) {
	if got := Tokens(""); got != nil {
		t.Fatalf("expected nil tokens for empty text, got %v", got)
	}

	got := Tokens("python developer python")
	want := []string{"python", "developer", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("python developer python")
	if len(set) != 2 {
		t.Fatalf("expected 2 distinct tokens, got %d", len(set))
	}
	if _, ok := set["developer"]; !ok {
		t.Fatalf("expected developer in token set")
	}
}
