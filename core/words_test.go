package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/schema"
)

func TestProcessCommitMessagesEmptyInput(t *testing.T) {
	_, err := ProcessCommitMessages(nil, testConfig())
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestProcessCommitMessagesFiltering(t *testing.T) {
	cfg := testConfig()
	messages := []string{
		"Fix the parser for issue 1234",
		"fix parser edge case",
		"Add CI to the build",
	}

	entries, err := ProcessCommitMessages(messages, cfg)
	require.NoError(t, err)

	words := make(map[string]int)
	for _, entry := range entries {
		words[entry.Word] = entry.Count
	}

	assert.Equal(t, 2, words["fix"], "tokens are lowercased before counting")
	assert.Equal(t, 2, words["parser"])
	assert.NotContains(t, words, "the", "stop words are discarded")
	assert.NotContains(t, words, "to", "stop words are discarded")
	assert.NotContains(t, words, "1234", "pure numbers are discarded")
	assert.NotContains(t, words, "ci", "tokens under the minimum length are discarded")
}

func TestProcessCommitMessagesRanking(t *testing.T) {
	cfg := testConfig()
	cfg.MaxWords = 2
	messages := []string{
		"parser parser parser",
		"output output",
		"cache",
	}

	entries, err := ProcessCommitMessages(messages, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "parser", entries[0].Word)
	assert.Equal(t, 3, entries[0].Count)
	assert.Equal(t, "output", entries[1].Word)
}

func TestProcessCommitMessagesScaling(t *testing.T) {
	cfg := testConfig()

	entries, err := ProcessCommitMessages([]string{
		"parser parser parser parser",
		"output output",
		"cache cache cache",
	}, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, cfg.MaxWordSize, entries[0].Size, "most frequent word gets the maximum size")
	assert.Equal(t, cfg.MinWordSize, entries[2].Size, "least frequent word gets the minimum size")
	assert.Greater(t, entries[1].Size, cfg.MinWordSize)
	assert.Less(t, entries[1].Size, cfg.MaxWordSize)
}

func TestProcessCommitMessagesUniformCounts(t *testing.T) {
	cfg := testConfig()

	entries, err := ProcessCommitMessages([]string{"parser output cache"}, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, entry := range entries {
		assert.Equal(t, cfg.MaxWordSize, entry.Size, "a zero count range must not divide by zero")
	}
}

func TestProcessCommitMessagesNoUsableTokens(t *testing.T) {
	entries, err := ProcessCommitMessages([]string{"... 123 !!"}, testConfig())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessCommitMessagesStableTies(t *testing.T) {
	cfg := testConfig()

	entries, err := ProcessCommitMessages([]string{"zebra apple mango"}, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []schema.WordFrequencyEntry{
		{Word: "zebra", Count: 1, Size: cfg.MaxWordSize},
		{Word: "apple", Count: 1, Size: cfg.MaxWordSize},
		{Word: "mango", Count: 1, Size: cfg.MaxWordSize},
	}, entries)
}
