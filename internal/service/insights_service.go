package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"
	"unicode"
)

const (
	DefaultInsightsDays = 30
	MaxInsightsDays     = 365
)

// Suggestion texts, in the order they are emitted.
const (
	SuggestFrequency = "Increase frequency: aim for 3-4 sessions per week."
	SuggestDuration  = "Bump average session length toward 30–45 minutes."
	SuggestVariety   = "Balance your routine by mixing different workout types."
)

const unknownWorkoutType = "Unknown"

type InsightsService interface {
	// Insights aggregates the trailing days-day window ending today.
	// Any store failure fails the whole report.
	Insights(ctx context.Context, email string, days int) (*domain.InsightsReport, error)
}

type insightsService struct {
	workoutRepo  repository.WorkoutRepository
	bodyCompRepo repository.BodyCompRepository
	now          func() time.Time
}

// NewInsightsService creates the aggregator. A nil clock means time.Now.
func NewInsightsService(
	workoutRepo repository.WorkoutRepository,
	bodyCompRepo repository.BodyCompRepository,
	now func() time.Time,
) InsightsService {
	if now == nil {
		now = time.Now
	}
	return &insightsService{
		workoutRepo:  workoutRepo,
		bodyCompRepo: bodyCompRepo,
		now:          now,
	}
}

func (s *insightsService) Insights(ctx context.Context, email string, days int) (*domain.InsightsReport, error) {
	today := domain.CivilDate(s.now())
	start := today.AddDate(0, 0, -(days - 1))

	workouts, err := s.workoutRepo.List(ctx, repository.WorkoutQuery{
		UserEmail: email,
		Start:     &start,
		End:       &today,
	})
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	report := &domain.InsightsReport{
		VolumeByDay: make(map[string]float64),
		Types:       make(map[string]int),
	}

	daysWithWorkout := make(map[string]struct{})
	var totalMinutes float64
	for _, w := range workouts {
		ds := domain.FormatDate(w.Date)
		daysWithWorkout[ds] = struct{}{}
		totalMinutes += w.DurationMin
		report.VolumeByDay[ds] += w.DurationMin
		report.Types[normalizeWorkoutType(w.Type)]++
	}

	sessions := len(workouts)
	var avgDuration float64
	if sessions > 0 {
		avgDuration = totalMinutes / float64(sessions)
	}

	report.Totals = domain.InsightsTotals{
		Sessions:    sessions,
		Minutes:     totalMinutes,
		AvgDuration: roundTenth(avgDuration),
		StreakDays:  currentStreak(today, daysWithWorkout),
	}
	report.Suggestions = suggestions(sessions, avgDuration, days, report.Types)

	entries, err := s.bodyCompRepo.List(ctx, repository.BodyCompQuery{UserEmail: email})
	if err != nil {
		return nil, fmt.Errorf("load body composition: %w", err)
	}
	report.WeightChange = weightChange(entries)

	return report, nil
}

// roundTenth rounds to one decimal place from the exact binary value, ties
// to even: 12.25 becomes 12.2 and 0.15 (stored just below) becomes 0.1.
func roundTenth(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// currentStreak counts consecutive days with a workout, walking back from today.
func currentStreak(today time.Time, daysWithWorkout map[string]struct{}) int {
	streak := 0
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := daysWithWorkout[domain.FormatDate(d)]; !ok {
			return streak
		}
		streak++
	}
}

func suggestions(sessions int, avgDuration float64, days int, types map[string]int) []string {
	out := []string{}
	if sessions < max(3, days/4) {
		out = append(out, SuggestFrequency)
	}
	if avgDuration < 30 && sessions >= 3 {
		out = append(out, SuggestDuration)
	}
	if len(types) > 0 && sessions > 0 {
		top := 0
		for _, n := range types {
			top = max(top, n)
		}
		if float64(top)/float64(sessions) > 0.7 {
			out = append(out, SuggestVariety)
		}
	}
	return out
}

// weightChange compares the earliest and latest weight readings of the full
// history. Fewer than two entries, or no reading at all, yields nil.
func weightChange(entries []domain.BodyCompEntry) *float64 {
	if len(entries) < 2 {
		return nil
	}

	chronological := slices.Clone(entries)
	slices.SortStableFunc(chronological, func(a, b domain.BodyCompEntry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	var first, last *float64
	for _, e := range chronological {
		if e.WeightKG == nil {
			continue
		}
		if first == nil {
			first = e.WeightKG
		}
		last = e.WeightKG
	}
	if first == nil {
		return nil
	}

	change := *last - *first
	return &change
}

// normalizeWorkoutType title-cases a type label: the first letter of every
// run of letters is upper case, the rest lower case. Empty labels become
// "Unknown".
func normalizeWorkoutType(t string) string {
	if t == "" {
		return unknownWorkoutType
	}
	runes := []rune(t)
	inWord := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			inWord = false
			continue
		}
		if inWord {
			runes[i] = unicode.ToLower(r)
		} else {
			runes[i] = unicode.ToTitle(r)
		}
		inWord = true
	}
	return string(runes)
}
