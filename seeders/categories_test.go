package seeders

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camrental/internal/entities"
)

func TestCheckAcyclicAcceptsFixtureData(t *testing.T) {
	require.NoError(t, checkAcyclic(categoryData))
}

func TestCheckAcyclicAcceptsDeepChain(t *testing.T) {
	cats := []entities.Category{
		{Code: "A", Name: "Top"},
		{Code: "B", Name: "Mid", ParentCode: null.StringFrom("A")},
		{Code: "C", Name: "Leaf", ParentCode: null.StringFrom("B")},
	}
	assert.NoError(t, checkAcyclic(cats))
}

func TestCheckAcyclicRejectsCycle(t *testing.T) {
	cats := []entities.Category{
		{Code: "A", Name: "First", ParentCode: null.StringFrom("B")},
		{Code: "B", Name: "Second", ParentCode: null.StringFrom("A")},
	}
	err := checkAcyclic(cats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestCheckAcyclicRejectsSelfParent(t *testing.T) {
	cats := []entities.Category{
		{Code: "A", Name: "Loop", ParentCode: null.StringFrom("A")},
	}
	assert.Error(t, checkAcyclic(cats))
}
