package statistic

import (
	"sort"
	"strconv"
	"time"

	"github.com/DamienOReilly/reddit-stats/internal/models"
)

const (
	// RecentMonths bounds the per-month series to the newest buckets.
	RecentMonths = 24
	// TopSubreddits bounds the per-subreddit series before the remainder entry.
	TopSubreddits = 10
	// OthersLabel names the synthetic remainder entry of the subreddit series.
	OthersLabel = "All others"
)

const monthLabelFormat = "Jan 2006"

// AggregateByYear sums the buckets of each distinct UTC calendar year,
// skipping zero-count buckets. Output is sorted ascending by year.
func AggregateByYear(raw []models.RawCount) models.AxisData {
	sums := make(map[int]int64)
	for _, r := range raw {
		if r.Count == 0 {
			continue
		}
		sums[time.Unix(r.Date, 0).UTC().Year()] += r.Count
	}

	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)

	data := models.NewAxisData(len(years))
	for _, y := range years {
		data.Labels = append(data.Labels, strconv.Itoa(y))
		data.Values = append(data.Values, float64(sums[y]))
	}
	return data
}

// AggregateByMonth keeps the most recent RecentMonths buckets, labeled
// "Jan 2006" in UTC, in chronological ascending order. Buckets arrive at
// monthly granularity already, so no re-aggregation happens here.
func AggregateByMonth(raw []models.RawCount) models.AxisData {
	recent := make([]models.RawCount, len(raw))
	copy(recent, raw)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > RecentMonths {
		recent = recent[:RecentMonths]
	}

	data := models.NewAxisData(len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		data.Labels = append(data.Labels, time.Unix(recent[i].Date, 0).UTC().Format(monthLabelFormat))
		data.Values = append(data.Values, float64(recent[i].Count))
	}
	return data
}

// AggregateBySubreddit ranks non-zero buckets by count descending, keeps the
// top TopSubreddits, and folds whatever remains into one "All others" entry.
// The synthetic entry is omitted when the remainder is zero or negative.
func AggregateBySubreddit(raw []models.RawCountBySubreddit) models.AxisData {
	counts := make([]models.RawCountBySubreddit, 0, len(raw))
	var total int64
	for _, r := range raw {
		if r.Count == 0 {
			continue
		}
		counts = append(counts, r)
		total += r.Count
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	top := counts
	if len(top) > TopSubreddits {
		top = top[:TopSubreddits]
	}

	data := models.NewAxisData(len(top) + 1)
	var topTotal int64
	for _, r := range top {
		data.Labels = append(data.Labels, r.Subreddit)
		data.Values = append(data.Values, float64(r.Count))
		topTotal += r.Count
	}
	if rest := total - topTotal; rest > 0 {
		data.Labels = append(data.Labels, OthersLabel)
		data.Values = append(data.Values, float64(rest))
	}
	return data
}

// AggregateAll maps each raw result set to its finished series: a
// time-bucketed set yields a per-year and a per-month series, a
// subreddit-bucketed set yields one per-subreddit series. Series are
// concatenated in encounter order of the input.
func AggregateAll(data []models.PushShiftData) []models.AxisSeries {
	series := make([]models.AxisSeries, 0, 6)
	for _, d := range data {
		switch d.Dimension {
		case models.ByCreated:
			series = append(series,
				models.AxisSeries{Kind: yearKind(d.Content), Data: AggregateByYear(d.Counts)},
				models.AxisSeries{Kind: monthKind(d.Content), Data: AggregateByMonth(d.Counts)},
			)
		case models.BySubreddit:
			series = append(series,
				models.AxisSeries{Kind: subredditKind(d.Content), Data: AggregateBySubreddit(d.SubredditCounts)},
			)
		}
	}
	return series
}

func yearKind(c models.ContentType) models.AxisKind {
	if c == models.ContentSubmission {
		return models.KindSubmissionsByYear
	}
	return models.KindCommentsByYear
}

func monthKind(c models.ContentType) models.AxisKind {
	if c == models.ContentSubmission {
		return models.KindSubmissionsByMonth
	}
	return models.KindCommentsByMonth
}

func subredditKind(c models.ContentType) models.AxisKind {
	if c == models.ContentSubmission {
		return models.KindSubmissionsBySubreddit
	}
	return models.KindCommentsBySubreddit
}
