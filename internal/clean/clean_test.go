package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ontoverse/ontoforge/internal/clean"
)

func TestNameFoldsCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, "legalperson", clean.Name("Legal Person"))
	assert.Equal(t, "legalperson", clean.Name("legal-person"))
	assert.Equal(t, "legalperson", clean.Name("LEGAL_PERSON"))
}

func TestNameEmpty(t *testing.T) {
	assert.Equal(t, "", clean.Name(""))
	assert.Equal(t, "", clean.Name("---"))
}

func TestCapitalizeUppercasesLeadingRune(t *testing.T) {
	assert.Equal(t, "Legalperson", clean.Capitalize(clean.Name("Legal Person")))
	assert.Equal(t, "Legalperson", clean.Capitalize(clean.Name("legal-person")))
	assert.Equal(t, "", clean.Capitalize(""))
	assert.Equal(t, "Å", clean.Capitalize("å"))
}
