package learnlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_mood "github.com/mlindborg/learnflow/internal/mocks/mood"
)

// recordingAudit captures audit writes in memory.
type recordingAudit struct {
	records []Record
	err     error
}

func (a *recordingAudit) Write(record Record) error {
	if a.err != nil {
		return a.err
	}
	a.records = append(a.records, record)
	return nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 9, 17, 14, 30, 5, 0, time.UTC)
	}
}

func TestService_SetEntryAndSummary(t *testing.T) {
	service := NewService(nil, nil, WithClock(fixedClock()))

	_, err := service.SetEntry(CategoryGoal, "Finish Week 1")
	require.NoError(t, err)
	_, err = service.SetEntry(CategoryNotes, "Focus on layouts")
	require.NoError(t, err)

	summary := service.Summary()

	assert.Equal(t, map[Category]string{
		CategoryGoal:  "Goal: Finish Week 1",
		CategoryNotes: "Notes: Focus on layouts",
	}, summary)
	assert.NotContains(t, summary, CategorySkill)
	assert.LessOrEqual(t, len(summary), len(Categories()))
}

func TestService_SetEntry(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		text     string
		wantText string
		wantErr  error
	}{
		{
			name:     "text is trimmed",
			category: CategorySession,
			text:     "  Studied 2 hours  ",
			wantText: "Studied 2 hours",
		},
		{
			name:     "empty text is a valid entry",
			category: CategorySkill,
			text:     "   ",
			wantText: "",
		},
		{
			name:     "invalid category is a programming error",
			category: "Homework",
			wantErr:  ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(nil, nil, WithClock(fixedClock()))

			record, err := service.SetEntry(tt.category, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, service.Snapshot().Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, record.Text)
			assert.Equal(t, KindBase, record.Kind)
			assert.Equal(t, "2025-09-17T14:30:05", record.Timestamp)
		})
	}
}

func TestService_SetEntry_AuditFailureDoesNotRollBack(t *testing.T) {
	audit := &recordingAudit{err: errors.New("disk full")}
	service := NewService(audit, nil)

	_, err := service.SetEntry(CategoryGoal, "Finish Week 1")

	assert.Error(t, err)
	text, latestErr := service.Latest(CategoryGoal)
	require.NoError(t, latestErr)
	assert.Equal(t, "Finish Week 1", text)
}

func TestService_SetEntry_WritesAuditTrail(t *testing.T) {
	audit := &recordingAudit{}
	service := NewService(audit, nil, WithClock(fixedClock()))

	_, err := service.SetEntry(CategorySession, "Studied 2 hours")
	require.NoError(t, err)

	require.Len(t, audit.records, 1)
	assert.Equal(t, "Studied 2 hours", audit.records[0].Text)
}

func TestService_AddGoal(t *testing.T) {
	tests := []struct {
		name        string
		serviceOpts []ServiceOption
		goalOpts    []GoalOption
		wantStatus  string
	}{
		{
			name:       "default status",
			wantStatus: "in-progress",
		},
		{
			name:        "configured default status",
			serviceOpts: []ServiceOption{WithDefaultGoalStatus("planned")},
			wantStatus:  "planned",
		},
		{
			name:       "per-call override wins",
			goalOpts:   []GoalOption{WithStatus("done")},
			wantStatus: "done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]ServiceOption{WithClock(fixedClock())}, tt.serviceOpts...)
			service := NewService(nil, nil, opts...)

			record, err := service.AddGoal("Learn Rust", tt.goalOpts...)
			require.NoError(t, err)

			assert.Equal(t, CategoryGoal, record.Category)
			assert.Equal(t, KindGoal, record.Kind)
			assert.Equal(t, tt.wantStatus, record.Status)

			stored, ok := service.Snapshot().Latest(CategoryGoal)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, stored.Status)
		})
	}
}

func TestService_AddReflection(t *testing.T) {
	t.Run("mood is classified after append and annotated in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		classifier := mock_mood.NewMockClassifier(ctrl)
		classifier.EXPECT().Classify(gomock.Any(), "Felt stuck debugging").Return("stuck", nil)

		audit := &recordingAudit{}
		service := NewService(audit, classifier, WithClock(fixedClock()))

		record, err := service.AddReflection(context.Background(), "  Felt stuck debugging  ")
		require.NoError(t, err)

		assert.Equal(t, CategoryNotes, record.Category)
		assert.Equal(t, KindReflection, record.Kind)
		assert.Equal(t, "stuck", record.Mood)

		stored, ok := service.Snapshot().Latest(CategoryNotes)
		require.True(t, ok)
		assert.Equal(t, "stuck", stored.Mood)

		// the audit line carries the annotated mood
		require.Len(t, audit.records, 1)
		assert.Equal(t, "stuck", audit.records[0].Mood)
	})

	t.Run("classifier failure keeps the appended record without a mood", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		classifier := mock_mood.NewMockClassifier(ctrl)
		classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return("", errors.New("service unavailable"))

		service := NewService(nil, classifier)

		record, err := service.AddReflection(context.Background(), "Felt great")
		assert.Error(t, err)
		assert.Empty(t, record.Mood)

		stored, ok := service.Snapshot().Latest(CategoryNotes)
		require.True(t, ok)
		assert.Equal(t, "Felt great", stored.Text)
		assert.Empty(t, stored.Mood)
	})

	t.Run("classifier and audit failures are both reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		classifier := mock_mood.NewMockClassifier(ctrl)
		classifyErr := errors.New("service unavailable")
		classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return("", classifyErr)

		auditErr := errors.New("disk full")
		audit := &recordingAudit{err: auditErr}
		service := NewService(audit, classifier)

		_, err := service.AddReflection(context.Background(), "Felt great")
		require.Error(t, err)
		assert.ErrorIs(t, err, classifyErr)
		assert.ErrorIs(t, err, auditErr)

		stored, ok := service.Snapshot().Latest(CategoryNotes)
		require.True(t, ok)
		assert.Empty(t, stored.Mood)
	})

	t.Run("nil classifier appends without annotation", func(t *testing.T) {
		service := NewService(nil, nil)

		record, err := service.AddReflection(context.Background(), "No classifier configured")
		require.NoError(t, err)
		assert.Empty(t, record.Mood)
	})
}

func TestService_Clear(t *testing.T) {
	service := NewService(nil, nil)
	_, err := service.SetEntry(CategorySkill, "Python")
	require.NoError(t, err)

	text, err := service.Latest(CategorySkill)
	require.NoError(t, err)
	require.Equal(t, "Python", text)

	service.Clear()

	for _, category := range Categories() {
		text, err := service.Latest(category)
		require.NoError(t, err)
		assert.Empty(t, text)
	}
	assert.Empty(t, service.Summary())
}

func TestService_MultipleEntriesAppend(t *testing.T) {
	service := NewService(nil, nil)
	_, err := service.SetEntry(CategoryGoal, "First Goal")
	require.NoError(t, err)
	_, err = service.SetEntry(CategoryGoal, "Second Goal")
	require.NoError(t, err)

	history := service.Snapshot().Records(CategoryGoal)
	require.Len(t, history, 2)
	assert.Equal(t, "First Goal", history[0].Text)
	assert.Equal(t, "Second Goal", history[1].Text)

	text, err := service.Latest(CategoryGoal)
	require.NoError(t, err)
	assert.Equal(t, "Second Goal", text)

	summary := service.Summary()
	assert.Equal(t, "Goal: Second Goal", summary[CategoryGoal])
}

func TestService_Latest_InvalidCategory(t *testing.T) {
	service := NewService(nil, nil)

	_, err := service.Latest("Homework")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestService_Snapshot_IsIndependent(t *testing.T) {
	service := NewService(nil, nil)
	_, err := service.SetEntry(CategoryNotes, "original")
	require.NoError(t, err)

	snapshot := service.Snapshot()
	require.NoError(t, snapshot.Append(NewRecord(CategoryNotes, "mutated", time.Now())))

	assert.Len(t, service.Snapshot().Records(CategoryNotes), 1)
}

func TestService_Replace(t *testing.T) {
	service := NewService(nil, nil)
	_, err := service.SetEntry(CategoryGoal, "stale")
	require.NoError(t, err)

	replacement := NewStore()
	require.NoError(t, replacement.Append(NewRecord(CategorySkill, "Go", time.Now())))
	service.Replace(replacement)

	assert.Empty(t, service.Snapshot().Records(CategoryGoal))
	text, err := service.Latest(CategorySkill)
	require.NoError(t, err)
	assert.Equal(t, "Go", text)

	// mutating the source store afterwards must not leak into the service
	require.NoError(t, replacement.Append(NewRecord(CategorySkill, "Rust", time.Now())))
	assert.Len(t, service.Snapshot().Records(CategorySkill), 1)
}
