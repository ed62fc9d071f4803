package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedbackservice/internal/config"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		StoreDriver:        config.StoreDriverSQLite,
		SQLitePath:         ":memory:",
		LLMProvider:        config.LLMProviderWorkersAI,
		LLMModel:           config.DefaultWorkersAIModel,
		WorkersAIURL:       "http://127.0.0.1:1",
		AnalysisMaxTokens:  150,
		SummaryMaxTokens:   300,
		DigestMaxTokens:    200,
		AnalyzeConcurrency: 1,
		DigestLimit:        20,
		StepMaxAttempts:    1,
	}
}

func TestBuild_SQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	c, err := Build(ctx, testConfig(), logging.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Analyzer)
	assert.NotNil(t, c.Generator)
	assert.NotNil(t, c.Runner)

	item, err := c.Repo.Create(ctx, &model.CreateFeedbackInput{Message: "hello", Source: model.SourceEmail})
	require.NoError(t, err)
	items, err := c.Repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestBuild_GeminiWithoutKey(t *testing.T) {
	cfg := testConfig()
	cfg.LLMProvider = config.LLMProviderGemini

	_, err := Build(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}
