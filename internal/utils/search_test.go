package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type searchRecord struct {
	name, sku string
}

func TestFilterByQuery(t *testing.T) {
	records := []searchRecord{{"Basmati Rice", "RICE-01"}, {"Sugar", "SUG-02"}, {"Brown rice", "RICE-02"}}
	fields := func(r searchRecord) []string { return []string{r.name, r.sku} }

	assert.Len(t, FilterByQuery(records, "", fields), 3)
	assert.Len(t, FilterByQuery(records, "   ", fields), 3)
	assert.Len(t, FilterByQuery(records, "RICE", fields), 2)
	assert.Equal(t, []searchRecord{{"Sugar", "SUG-02"}}, FilterByQuery(records, "sug-0", fields))
	assert.Empty(t, FilterByQuery(records, "salt", fields))
}

func TestMatchesQuery(t *testing.T) {
	assert.True(t, MatchesQuery(" acme ", "ACME Traders"))
	assert.False(t, MatchesQuery("acme", "Traders", ""))
	assert.True(t, MatchesQuery(""))
}
