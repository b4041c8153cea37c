package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		err := ValidateQuery(Query{Text: "latest GPT model", MaxResults: 5})
		assert.NoError(t, err)
	})

	t.Run("valid with defaults", func(t *testing.T) {
		err := ValidateQuery(Query{Text: "history of the Roman Empire"})
		assert.NoError(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidateQuery(Query{Text: ""})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		err := ValidateQuery(Query{Text: "   \t\n"})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("negative max results", func(t *testing.T) {
		err := ValidateQuery(Query{Text: "x", MaxResults: -1})
		assert.ErrorIs(t, err, ErrInvalidMaxResults)
	})

	t.Run("max results above limit", func(t *testing.T) {
		err := ValidateQuery(Query{Text: "x", MaxResults: MaxResultsLimit + 1})
		assert.ErrorIs(t, err, ErrInvalidMaxResults)
	})

	t.Run("unknown freshness hint", func(t *testing.T) {
		err := ValidateQuery(Query{Text: "x", Freshness: "fortnight"})
		assert.ErrorIs(t, err, ErrInvalidFreshnessHint)
	})

	t.Run("all known hints accepted", func(t *testing.T) {
		for _, hint := range []FreshnessHint{HintNone, HintDay, HintWeek, HintMonth, HintYear, HintAny} {
			require.NoError(t, ValidateQuery(Query{Text: "x", Freshness: hint}))
		}
	})
}

func TestEffectiveMaxResults(t *testing.T) {
	assert.Equal(t, DefaultMaxResults, Query{Text: "x"}.EffectiveMaxResults())
	assert.Equal(t, 5, Query{Text: "x", MaxResults: 5}.EffectiveMaxResults())
}
