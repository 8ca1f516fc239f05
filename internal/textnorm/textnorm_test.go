package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "only punctuation", input: "!!! --- ???", expect: ""},
		{name: "lowercases and strips", input: "Senior Go/Python Developer!", expect: "senior go python developer"},
		{name: "collapses whitespace", input: "  REST\tAPI\n\n design  ", expect: "rest api design"},
		{name: "dotted names split", input: "Node.js, C++ and C#", expect: "node js c and c"},
		{name: "non ascii removed", input: "Café Résumé", expect: "caf r sum"},
		{name: "underscore removed", input: "snake_case", expect: "snake case"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "keeps underscore", input: "snake_case Value", expect: "snake_case value"},
		{name: "keeps unicode letters", input: "Café, Résumé!", expect: "café résumé"},
		{name: "strips symbols", input: "C++ / Node.js", expect: "c node js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeWords(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"Senior Engineer — 5+ years (Go, Kubernetes)",
		"Machine-Learning & Deep_Learning @ SCALE",
		"Ünïcödé text with Ελληνικά and 日本語",
		"tabs\tand\nnewlines\r\n",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}

		onceWords := NormalizeWords(in)
		if twice := NormalizeWords(onceWords); twice != onceWords {
			t.Fatalf("NormalizeWords not idempotent for %q: %q != %q", in, twice, onceWords)
		}
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	got := Tokens("rest api  design")
	if len(got) != 3 || got[0] != "rest" || got[2] != "design" {
		t.Fatalf("unexpected tokens: %v", got)
	}
	if len(Tokens("")) != 0 {
		t.Fatalf("expected no tokens for empty input")
	}
}
