package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type insightsFixture struct {
	store    *memory.Store
	workouts repository.WorkoutRepository
	bodyComp repository.BodyCompRepository
	service  InsightsService
}

func newInsightsFixture() *insightsFixture {
	store := memory.NewStore()
	f := &insightsFixture{
		store:    store,
		workouts: memory.NewWorkoutRepository(store),
		bodyComp: memory.NewBodyCompRepository(store),
	}
	f.service = NewInsightsService(f.workouts, f.bodyComp, fixedClock)
	return f
}

func (f *insightsFixture) workout(t *testing.T, email string, daysAgo int, typ string, minutes float64) {
	t.Helper()
	_, err := f.workouts.Create(context.Background(), &domain.WorkoutEntry{
		UserEmail:   email,
		Date:        domain.CivilDate(testNow).AddDate(0, 0, -daysAgo),
		Type:        typ,
		DurationMin: minutes,
	})
	require.NoError(t, err)
}

func (f *insightsFixture) weight(t *testing.T, email, date string, kg *float64) {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	_, err = f.bodyComp.Create(context.Background(), &domain.BodyCompEntry{
		UserEmail: email,
		Date:      d,
		WeightKG:  kg,
	})
	require.NoError(t, err)
}

func ptr[T any](v T) *T { return &v }

func TestInsights_Empty(t *testing.T) {
	f := newInsightsFixture()

	report, err := f.service.Insights(context.Background(), "nobody@x.com", 30)
	require.NoError(t, err)

	assert.Equal(t, domain.InsightsTotals{}, report.Totals)
	assert.Empty(t, report.VolumeByDay)
	assert.NotNil(t, report.VolumeByDay)
	assert.Empty(t, report.Types)
	assert.NotNil(t, report.Types)
	assert.Equal(t, []string{SuggestFrequency}, report.Suggestions)
	assert.Nil(t, report.WeightChange)
}

func TestInsights_Streak(t *testing.T) {
	t.Run("three consecutive days ending today", func(t *testing.T) {
		f := newInsightsFixture()
		f.workout(t, "a@x.com", 0, "run", 40)
		f.workout(t, "a@x.com", 1, "bike", 40)
		f.workout(t, "a@x.com", 2, "swim", 40)
		f.workout(t, "a@x.com", 4, "run", 40)

		report, err := f.service.Insights(context.Background(), "a@x.com", 30)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Totals.StreakDays)
	})

	t.Run("no workout today breaks the streak", func(t *testing.T) {
		f := newInsightsFixture()
		f.workout(t, "a@x.com", 1, "run", 40)
		f.workout(t, "a@x.com", 2, "run", 40)

		report, err := f.service.Insights(context.Background(), "a@x.com", 30)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Totals.StreakDays)
	})

	t.Run("two workouts on one day count once", func(t *testing.T) {
		f := newInsightsFixture()
		f.workout(t, "a@x.com", 0, "run", 20)
		f.workout(t, "a@x.com", 0, "lift", 20)

		report, err := f.service.Insights(context.Background(), "a@x.com", 30)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Totals.StreakDays)
		assert.Equal(t, 2, report.Totals.Sessions)
		assert.Equal(t, map[string]float64{"2024-06-15": 40}, report.VolumeByDay)
	})
}

func TestInsights_FrequencyThreshold(t *testing.T) {
	types := []string{"run", "bike", "swim", "lift"}

	tests := []struct {
		name     string
		sessions int
		want     bool
	}{
		{name: "five sessions in thirty days", sessions: 5, want: true},
		{name: "eight sessions in thirty days", sessions: 8, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInsightsFixture()
			for i := 0; i < tt.sessions; i++ {
				f.workout(t, "a@x.com", i*3, types[i%len(types)], 45)
			}

			report, err := f.service.Insights(context.Background(), "a@x.com", 30)
			require.NoError(t, err)
			assert.Equal(t, tt.sessions, report.Totals.Sessions)
			assert.Equal(t, tt.want, contains(report.Suggestions, SuggestFrequency))
			assert.NotContains(t, report.Suggestions, SuggestDuration)
			assert.NotContains(t, report.Suggestions, SuggestVariety)
		})
	}
}

func TestInsights_DurationAndVariety(t *testing.T) {
	f := newInsightsFixture()
	f.workout(t, "a@x.com", 0, "run", 10)
	f.workout(t, "a@x.com", 1, "run", 10)
	f.workout(t, "a@x.com", 2, "run", 11)

	report, err := f.service.Insights(context.Background(), "a@x.com", 7)
	require.NoError(t, err)

	assert.Equal(t, 31.0, report.Totals.Minutes)
	assert.Equal(t, 10.3, report.Totals.AvgDuration)
	// max(3, 7/4) = 3 sessions needed
	assert.Equal(t, []string{SuggestDuration, SuggestVariety}, report.Suggestions)
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 12.25, want: 12.2},
		{in: 12.35, want: 12.3},
		{in: 0.15, want: 0.1},
		{in: 31.0 / 3, want: 10.3},
		{in: 29.96, want: 30},
		{in: 45, want: 45},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTenth(tt.in), "input %v", tt.in)
	}
}

func TestInsights_AverageTieRoundsToEven(t *testing.T) {
	f := newInsightsFixture()
	for i, minutes := range []float64{10, 13, 13, 13} {
		f.workout(t, "a@x.com", i, "run", minutes)
	}

	report, err := f.service.Insights(context.Background(), "a@x.com", 30)
	require.NoError(t, err)
	assert.Equal(t, 49.0, report.Totals.Minutes)
	assert.Equal(t, 12.2, report.Totals.AvgDuration)
}

func TestInsights_WindowBounds(t *testing.T) {
	f := newInsightsFixture()
	f.workout(t, "a@x.com", 6, "run", 30)
	f.workout(t, "a@x.com", 7, "run", 30)
	f.workout(t, "b@x.com", 0, "run", 30)

	report, err := f.service.Insights(context.Background(), "a@x.com", 7)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Totals.Sessions)
	assert.Equal(t, map[string]float64{"2024-06-09": 30}, report.VolumeByDay)
}

func TestInsights_TypesAreTitleCased(t *testing.T) {
	f := newInsightsFixture()
	f.workout(t, "a@x.com", 0, "running", 30)
	f.workout(t, "a@x.com", 1, "RUNNING", 30)
	f.workout(t, "a@x.com", 2, "strength training", 30)
	f.workout(t, "a@x.com", 3, "", 30)

	report, err := f.service.Insights(context.Background(), "a@x.com", 30)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"Running":           2,
		"Strength Training": 1,
		"Unknown":           1,
	}, report.Types)
}

func TestNormalizeWorkoutType(t *testing.T) {
	tests := map[string]string{
		"":            "Unknown",
		"yoga":        "Yoga",
		"hIIT":        "Hiit",
		"cross-fit":   "Cross-Fit",
		"5k run":      "5K Run",
		"pilates  2x": "Pilates  2X",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeWorkoutType(in), "input %q", in)
	}
}

func TestInsights_WeightChange(t *testing.T) {
	t.Run("first and last reading skipping empty weights", func(t *testing.T) {
		f := newInsightsFixture()
		// inserted out of order on purpose
		f.weight(t, "a@x.com", "2024-06-04", ptr(78.0))
		f.weight(t, "a@x.com", "2024-06-01", ptr(80.0))
		f.weight(t, "a@x.com", "2024-06-03", nil)
		f.weight(t, "a@x.com", "2024-06-02", ptr(79.0))

		report, err := f.service.Insights(context.Background(), "a@x.com", 30)
		require.NoError(t, err)
		require.NotNil(t, report.WeightChange)
		assert.InDelta(t, -2.0, *report.WeightChange, 1e-9)
	})

	t.Run("single entry", func(t *testing.T) {
		f := newInsightsFixture()
		f.weight(t, "a@x.com", "2024-06-01", ptr(80.0))

		report, err := f.service.Insights(context.Background(), "a@x.com", 30)
		require.NoError(t, err)
		assert.Nil(t, report.WeightChange)
	})

	t.Run("entries without weight", func(t *testing.T) {
		f := newInsightsFixture()
		f.weight(t, "a@x.com", "2024-06-01", nil)
		f.weight(t, "a@x.com", "2024-06-02", nil)

		report, err := f.service.Insights(context.Background(), "a@x.com", 30)
		require.NoError(t, err)
		assert.Nil(t, report.WeightChange)
	})

	t.Run("history outside the window still counts", func(t *testing.T) {
		f := newInsightsFixture()
		f.weight(t, "a@x.com", "2023-01-01", ptr(90.0))
		f.weight(t, "a@x.com", "2024-06-10", ptr(85.5))

		report, err := f.service.Insights(context.Background(), "a@x.com", 7)
		require.NoError(t, err)
		require.NotNil(t, report.WeightChange)
		assert.InDelta(t, -4.5, *report.WeightChange, 1e-9)
	})
}

func TestInsights_IsRepeatable(t *testing.T) {
	f := newInsightsFixture()
	f.workout(t, "a@x.com", 0, "run", 30)
	f.weight(t, "a@x.com", "2024-06-01", ptr(80.0))
	f.weight(t, "a@x.com", "2024-06-02", ptr(81.0))

	first, err := f.service.Insights(context.Background(), "a@x.com", 30)
	require.NoError(t, err)
	second, err := f.service.Insights(context.Background(), "a@x.com", 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInsights_StoreUnavailable(t *testing.T) {
	f := newInsightsFixture()
	f.store.Err = fmt.Errorf("%w: connection refused", repository.ErrStoreUnavailable)

	report, err := f.service.Insights(context.Background(), "a@x.com", 30)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
