package stereotype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ontoverse/ontoforge/stereotype"
)

func TestRelaxCardinality(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantOK  bool
	}{
		{"1", "0..1", true},
		{"3", "0..3", true},
		{"0", "", false},
		{"*", "", false},
		{"1..*", "", false},
		{"1..5", "0..5", true},
		{"x", "x", true},
	}
	for _, c := range cases {
		got, ok := stereotype.RelaxCardinality(c.in)
		assert.Equal(t, c.wantOK, ok, "input %q", c.in)
		if ok {
			assert.Equal(t, c.want, got, "input %q", c.in)
		}
	}
}

func TestMinimalCardinality(t *testing.T) {
	cases := []struct {
		fst, snd string
		want     string
		wantOK   bool
	}{
		{"1", "1", "1", true},
		{"0..1", "1", "0..1", true},
		{"1", "1..3", "1..3", true},
		{"0..1", "0..3", "0..3", true},
		{"1", "1..*", "1..*", true},
		{"0..1", "1..*", "", false},
		{"*", "1", "", false},
	}
	for _, c := range cases {
		got, ok := stereotype.MinimalCardinality(c.fst, c.snd)
		assert.Equal(t, c.wantOK, ok, "inputs %q %q", c.fst, c.snd)
		if ok {
			assert.Equal(t, c.want, got, "inputs %q %q", c.fst, c.snd)
		}
	}
}
