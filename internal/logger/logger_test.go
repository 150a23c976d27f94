package logger

import "testing"

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		json  bool
		debug bool
	}{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	} {
		l, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("New(%v, %v): %v", tc.json, tc.debug, err)
		}
		if l == nil {
			t.Fatalf("New(%v, %v) returned nil logger", tc.json, tc.debug)
		}
	}
}

func TestPreview(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "hello world", 20, "hello world"},
		{"truncated", "hello world", 5, "hello..."},
		{"collapses whitespace", "a\n\tb   c", 20, "a b c"},
		{"zero limit", "anything", 0, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Preview(tc.in, tc.limit); got != tc.want {
				t.Fatalf("Preview(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}
