package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Figglewatts/sanity/internal/domain"
)

func TestParameterTable_ExactMatch(t *testing.T) {
	table := domain.ParameterTable{
		"namecheck": {"pattern": "^asset-.*$"},
	}

	assert.Equal(t, domain.Params{"pattern": "^asset-.*$"}, table.For("namecheck"))
}

func TestParameterTable_AbsentResolvesEmpty(t *testing.T) {
	table := domain.ParameterTable{
		"namecheck": {"pattern": "^asset-.*$"},
	}

	params := table.For("othercheck")
	assert.NotNil(t, params)
	assert.Empty(t, params)
}

func TestParameterTable_NoRegexMatching(t *testing.T) {
	table := domain.ParameterTable{
		"^name.*$": {"pattern": "x"},
	}

	// Top-level keys are exact names, never patterns.
	assert.Empty(t, table.For("namecheck"))
}

func TestParameterTable_NilTable(t *testing.T) {
	var table domain.ParameterTable
	assert.Empty(t, table.For("anything"))
}
