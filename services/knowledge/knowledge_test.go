package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFAQMatchesTokenInKey(t *testing.T) {
	store := NewStore()

	results := store.SearchFAQ("booking")
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "equipment_booking:")
}

func TestSearchProtocolsDoesNotMatchUnrelatedQuery(t *testing.T) {
	store := NewStore()

	results := store.SearchProtocols("booking")
	assert.Empty(t, results)
}

func TestSearchIsCaseInsensitiveOnQuery(t *testing.T) {
	store := NewStore()

	results := store.SearchProtocols("SAFETY first")
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "safety_protocols:")
}

func TestSearchMatchesMultipleEntriesInInsertionOrder(t *testing.T) {
	store := NewStore()

	// "sample" hits sample_preparation, "maintenance" hits equipment_maintenance.
	results := store.SearchProtocols("sample maintenance")
	require.Len(t, results, 2)
	assert.Contains(t, results[0], "sample_preparation:")
	assert.Contains(t, results[1], "equipment_maintenance:")
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.SearchProtocols(""))
	assert.Empty(t, store.SearchFAQ("   "))
}
