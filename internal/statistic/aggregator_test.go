package statistic

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamienOReilly/reddit-stats/internal/models"
)

func epoch(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

func TestAggregateByYear_SumsWithinYear(t *testing.T) {
	raw := []models.RawCount{
		{Date: epoch(2021, time.February, 1), Count: 3},
		{Date: epoch(2021, time.July, 15), Count: 7},
		{Date: epoch(2022, time.March, 1), Count: 5},
	}

	data := AggregateByYear(raw)

	assert.Equal(t, []string{"2021", "2022"}, data.Labels)
	assert.Equal(t, []float64{10, 5}, data.Values)
}

func TestAggregateByYear_SkipsZeroCountBuckets(t *testing.T) {
	raw := []models.RawCount{
		{Date: epoch(2020, time.January, 1), Count: 0},
		{Date: epoch(2021, time.January, 1), Count: 2},
	}

	data := AggregateByYear(raw)

	assert.Equal(t, []string{"2021"}, data.Labels)
	assert.Equal(t, []float64{2}, data.Values)
}

func TestAggregateByYear_AscendingRegardlessOfInputOrder(t *testing.T) {
	raw := []models.RawCount{
		{Date: epoch(2023, time.June, 1), Count: 1},
		{Date: epoch(2019, time.June, 1), Count: 1},
		{Date: epoch(2021, time.June, 1), Count: 1},
	}

	data := AggregateByYear(raw)

	assert.Equal(t, []string{"2019", "2021", "2023"}, data.Labels)
}

func TestAggregateByYear_EmptyInput(t *testing.T) {
	data := AggregateByYear(nil)
	assert.Empty(t, data.Labels)
	assert.Empty(t, data.Values)
	assert.NotNil(t, data.Labels)
	assert.NotNil(t, data.Values)
}

func TestAggregateByMonth_KeepsMostRecentWindow(t *testing.T) {
	// 30 monthly buckets starting Jan 2020; only the newest 24 survive.
	raw := make([]models.RawCount, 0, 30)
	for i := 0; i < 30; i++ {
		raw = append(raw, models.RawCount{
			Date:  time.Date(2020, time.January+time.Month(i), 1, 0, 0, 0, 0, time.UTC).Unix(),
			Count: int64(i + 1),
		})
	}

	data := AggregateByMonth(raw)

	require.Len(t, data.Labels, RecentMonths)
	require.Len(t, data.Values, RecentMonths)
	assert.Equal(t, "Jul 2020", data.Labels[0])
	assert.Equal(t, "Jun 2022", data.Labels[len(data.Labels)-1])
	// Chronological ascending: values follow the bucket counts 7..30.
	assert.Equal(t, float64(7), data.Values[0])
	assert.Equal(t, float64(30), data.Values[len(data.Values)-1])
}

func TestAggregateByMonth_FewerThanWindow(t *testing.T) {
	raw := []models.RawCount{
		{Date: epoch(2023, time.March, 1), Count: 4},
		{Date: epoch(2023, time.January, 1), Count: 2},
		{Date: epoch(2023, time.February, 1), Count: 3},
	}

	data := AggregateByMonth(raw)

	assert.Equal(t, []string{"Jan 2023", "Feb 2023", "Mar 2023"}, data.Labels)
	assert.Equal(t, []float64{2, 3, 4}, data.Values)
}

func TestAggregateByMonth_DoesNotMutateInput(t *testing.T) {
	raw := []models.RawCount{
		{Date: epoch(2023, time.March, 1), Count: 4},
		{Date: epoch(2023, time.January, 1), Count: 2},
	}

	AggregateByMonth(raw)

	assert.Equal(t, epoch(2023, time.March, 1), raw[0].Date)
	assert.Equal(t, epoch(2023, time.January, 1), raw[1].Date)
}

func TestAggregateByMonth_EmptyInput(t *testing.T) {
	data := AggregateByMonth([]models.RawCount{})
	assert.Empty(t, data.Labels)
	assert.Empty(t, data.Values)
}

func TestAggregateBySubreddit_TopListWithRemainder(t *testing.T) {
	// 12 non-zero entries plus one zero entry: the zero is dropped before
	// ranking, the two smallest fold into "All others".
	raw := []models.RawCountBySubreddit{
		{Subreddit: "zero", Count: 0},
	}
	for i := 0; i < 12; i++ {
		raw = append(raw, models.RawCountBySubreddit{
			Subreddit: fmt.Sprintf("sub%02d", i),
			Count:     int64(100 - i),
		})
	}

	data := AggregateBySubreddit(raw)

	require.Len(t, data.Labels, TopSubreddits+1)
	assert.Equal(t, "sub00", data.Labels[0])
	assert.Equal(t, float64(100), data.Values[0])
	assert.Equal(t, OthersLabel, data.Labels[TopSubreddits])
	// Remainder: counts 90 and 89 fall outside the top ten.
	assert.Equal(t, float64(179), data.Values[TopSubreddits])
	assert.NotContains(t, data.Labels, "zero")
}

func TestAggregateBySubreddit_NoRemainderEntryWhenNothingLeft(t *testing.T) {
	raw := []models.RawCountBySubreddit{
		{Subreddit: "a", Count: 50},
		{Subreddit: "b", Count: 30},
		{Subreddit: "d", Count: 0},
	}

	data := AggregateBySubreddit(raw)

	assert.Equal(t, []string{"a", "b"}, data.Labels)
	assert.Equal(t, []float64{50, 30}, data.Values)
}

func TestAggregateBySubreddit_SortedDescending(t *testing.T) {
	raw := []models.RawCountBySubreddit{
		{Subreddit: "small", Count: 1},
		{Subreddit: "big", Count: 100},
		{Subreddit: "mid", Count: 10},
	}

	data := AggregateBySubreddit(raw)

	assert.Equal(t, []string{"big", "mid", "small"}, data.Labels)
	assert.Equal(t, []float64{100, 10, 1}, data.Values)
}

func TestAggregateBySubreddit_EmptyInput(t *testing.T) {
	data := AggregateBySubreddit(nil)
	assert.Empty(t, data.Labels)
	assert.Empty(t, data.Values)
}

func TestAggregateAll_ProducesSixSeriesInEncounterOrder(t *testing.T) {
	raw := []models.PushShiftData{
		{Content: models.ContentComment, Dimension: models.ByCreated, Counts: []models.RawCount{{Date: epoch(2021, time.May, 1), Count: 2}}},
		{Content: models.ContentSubmission, Dimension: models.ByCreated, Counts: []models.RawCount{{Date: epoch(2022, time.May, 1), Count: 3}}},
		{Content: models.ContentComment, Dimension: models.BySubreddit, SubredditCounts: []models.RawCountBySubreddit{{Subreddit: "golang", Count: 4}}},
		{Content: models.ContentSubmission, Dimension: models.BySubreddit, SubredditCounts: []models.RawCountBySubreddit{{Subreddit: "programming", Count: 5}}},
	}

	series := AggregateAll(raw)

	require.Len(t, series, 6)
	kinds := make([]models.AxisKind, len(series))
	for i, s := range series {
		kinds[i] = s.Kind
	}
	assert.Equal(t, []models.AxisKind{
		models.KindCommentsByYear,
		models.KindCommentsByMonth,
		models.KindSubmissionsByYear,
		models.KindSubmissionsByMonth,
		models.KindCommentsBySubreddit,
		models.KindSubmissionsBySubreddit,
	}, kinds)

	assert.Equal(t, []string{"2021"}, series[0].Data.Labels)
	assert.Equal(t, []string{"May 2021"}, series[1].Data.Labels)
	assert.Equal(t, []string{"golang"}, series[4].Data.Labels)
	assert.Equal(t, []float64{5}, series[5].Data.Values)
}

func TestAggregateAll_EmptyInput(t *testing.T) {
	assert.Empty(t, AggregateAll(nil))
}
