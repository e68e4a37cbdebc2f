package main

import (
	"strings"
	"testing"
)

func TestGeneratedText(t *testing.T) {
	s := generatedText(3, 10)
	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatal(len(lines))
	}
	for _, l := range lines {
		if len(l) != 10 {
			t.Fatalf("%q", l)
		}
	}
	if !strings.HasPrefix(lines[1], "2: b") {
		t.Fatal(lines[1])
	}
}
