package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := &runRepo{drv: s.drv, now: fixedClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))}
	ctx := context.Background()

	id, err := repo.StartRun(ctx, RunStart{
		UseCase:    "Sentiment Analysis",
		Model:      "m",
		Labels:     []string{"positive", "negative"},
		SampleSize: 3,
		BatchSize:  2,
		OutputPath: "out/20240501_100000.csv",
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err, "run ID should be a UUID")

	run, err := repo.GetRun(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, RunRunning, run.Status)
	assert.True(t, run.FinishedAt.IsZero())
	assert.Equal(t, []string{"positive", "negative"}, run.Labels)

	require.NoError(t, repo.FinishRun(ctx, id, RunFinish{Status: RunCompleted, Records: 3}))

	run, err = repo.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, RunCompleted, run.Status)
	assert.Equal(t, 3, run.Records)
	assert.True(t, run.FinishedAt.After(run.StartedAt))
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := &runRepo{drv: s.drv, now: fixedClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))}
	ctx := context.Background()

	var ids []string
	for _, uc := range []string{"a", "b", "c"} {
		id, err := repo.StartRun(ctx, RunStart{UseCase: uc, Model: "m"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := repo.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[0], runs[2].ID)
	assert.Nil(t, runs[0].Labels)

	limited, err := repo.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "c", limited[0].UseCase)
}

func TestGetRunMissing(t *testing.T) {
	s := openTestStore(t)

	run, err := s.RunRepo().GetRun(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, run)
}
