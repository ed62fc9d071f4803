package analyzer

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/mocks"
	"feedbackservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const loginCompletion = `{"theme":"login crash","sentiment":"negative","urgency":"high","summary":"Login causes crash"}`

func setup(t *testing.T, concurrency int) (*Analyzer, *mocks.MockRepository, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	client := mocks.NewMockClient(ctrl)
	return New(repo, client, 150, concurrency, logging.NewNop()), repo, client
}

func loginRow() *model.FeedbackItem {
	return &model.FeedbackItem{
		ID:        1,
		Message:   "App crashes on login",
		Source:    model.SourceEmail,
		CreatedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		a, repo, client := setup(t, 1)
		row := loginRow()
		want := model.Analysis{
			Theme:     "login crash",
			Sentiment: model.SentimentNegative,
			Urgency:   model.UrgencyHigh,
			Summary:   "Login causes crash",
		}
		updated := row.WithAnalysis(want)

		repo.EXPECT().Get(ctx, int64(1)).Return(row, nil)
		client.EXPECT().Complete(ctx, BuildPrompt("App crashes on login"), 150).Return(loginCompletion, nil)
		repo.EXPECT().SaveAnalysis(ctx, int64(1), want).Return(&updated, nil)

		got, err := a.Analyze(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "login crash", *got.Theme)
		assert.Equal(t, model.SentimentNegative, *got.Sentiment)
		assert.Equal(t, model.UrgencyHigh, *got.Urgency)
		assert.Equal(t, "Login causes crash", *got.Summary)
	})

	t.Run("ProseLeavesRowUnchanged", func(t *testing.T) {
		a, repo, client := setup(t, 1)

		repo.EXPECT().Get(ctx, int64(1)).Return(loginRow(), nil)
		client.EXPECT().Complete(ctx, gomock.Any(), 150).Return("This user is clearly upset about logging in.", nil)
		repo.EXPECT().SaveAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := a.Analyze(ctx, 1)
		assert.ErrorIs(t, err, errdefs.ErrAnalysisParse)
	})

	t.Run("InvalidSentimentNotWritten", func(t *testing.T) {
		a, repo, client := setup(t, 1)

		repo.EXPECT().Get(ctx, int64(1)).Return(loginRow(), nil)
		client.EXPECT().Complete(ctx, gomock.Any(), 150).
			Return(`{"theme":"login","sentiment":"meh","urgency":"high","summary":"s"}`, nil)
		repo.EXPECT().SaveAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := a.Analyze(ctx, 1)
		assert.ErrorIs(t, err, errdefs.ErrAnalysisParse)
	})

	t.Run("NotFound", func(t *testing.T) {
		a, repo, _ := setup(t, 1)

		repo.EXPECT().Get(ctx, int64(99)).Return(nil, errdefs.ErrNotFound)

		_, err := a.Analyze(ctx, 99)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("ModelError", func(t *testing.T) {
		a, repo, client := setup(t, 1)

		repo.EXPECT().Get(ctx, int64(1)).Return(loginRow(), nil)
		client.EXPECT().Complete(ctx, gomock.Any(), 150).Return("", errdefs.ErrModelUnavailable)

		_, err := a.Analyze(ctx, 1)
		assert.ErrorIs(t, err, errdefs.ErrModelUnavailable)
	})
}

func TestAnalyzer_Backfill(t *testing.T) {
	ctx := context.Background()

	t.Run("CollectsFailures", func(t *testing.T) {
		a, repo, client := setup(t, 2)
		good := loginRow()
		bad := &model.FeedbackItem{ID: 2, Message: "meh", Source: model.SourceReddit}

		repo.EXPECT().ListUnanalyzed(ctx).Return([]*model.FeedbackItem{good, bad}, nil)
		client.EXPECT().Complete(gomock.Any(), BuildPrompt(good.Message), 150).Return(loginCompletion, nil)
		client.EXPECT().Complete(gomock.Any(), BuildPrompt(bad.Message), 150).Return("no idea", nil)
		repo.EXPECT().SaveAnalysis(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, an model.Analysis) (*model.FeedbackItem, error) {
				updated := good.WithAnalysis(an)
				return &updated, nil
			})

		report, err := a.Backfill(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, report.Analyzed)
		require.Contains(t, report.Failed, int64(2))
		assert.Contains(t, report.Failed[2], "failed to parse AI response")
	})

	t.Run("SequentialByDefault", func(t *testing.T) {
		a, repo, client := setup(t, 1)
		rows := []*model.FeedbackItem{
			{ID: 1, Message: "one", Source: model.SourceEmail},
			{ID: 2, Message: "two", Source: model.SourceEmail},
			{ID: 3, Message: "three", Source: model.SourceEmail},
		}

		inFlight, maxInFlight := 0, 0
		repo.EXPECT().ListUnanalyzed(ctx).Return(rows, nil)
		client.EXPECT().Complete(gomock.Any(), gomock.Any(), 150).Times(3).
			DoAndReturn(func(context.Context, string, int) (string, error) {
				inFlight++
				if inFlight > maxInFlight {
					maxInFlight = inFlight
				}
				time.Sleep(time.Millisecond)
				inFlight--
				return loginCompletion, nil
			})
		repo.EXPECT().SaveAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
			DoAndReturn(func(_ context.Context, id int64, an model.Analysis) (*model.FeedbackItem, error) {
				updated := model.FeedbackItem{ID: id}.WithAnalysis(an)
				return &updated, nil
			})

		report, err := a.Backfill(ctx)
		require.NoError(t, err)
		sort.Slice(report.Analyzed, func(i, j int) bool { return report.Analyzed[i] < report.Analyzed[j] })
		assert.Equal(t, []int64{1, 2, 3}, report.Analyzed)
		assert.Empty(t, report.Failed)
		assert.Equal(t, 1, maxInFlight)
	})

	t.Run("ListError", func(t *testing.T) {
		a, repo, _ := setup(t, 1)
		listErr := errors.New("db down")

		repo.EXPECT().ListUnanalyzed(ctx).Return(nil, listErr)

		_, err := a.Backfill(ctx)
		assert.ErrorIs(t, err, listErr)
	})
}
