package models

// AxisData is a finished, chart-agnostic series. Labels and Values are always
// the same length and index-aligned: Labels[i] belongs to Values[i].
type AxisData struct {
	Labels []string
	Values []float64
}

// NewAxisData returns an empty series with non-nil slices sized for n entries.
func NewAxisData(n int) AxisData {
	return AxisData{
		Labels: make([]string, 0, n),
		Values: make([]float64, 0, n),
	}
}

// AxisKind discriminates the six finished-series variants.
type AxisKind int

const (
	KindCommentsByYear AxisKind = iota
	KindCommentsByMonth
	KindSubmissionsByYear
	KindSubmissionsByMonth
	KindCommentsBySubreddit
	KindSubmissionsBySubreddit
)

func (k AxisKind) String() string {
	switch k {
	case KindCommentsByYear:
		return "comments_by_year"
	case KindCommentsByMonth:
		return "comments_by_month"
	case KindSubmissionsByYear:
		return "submissions_by_year"
	case KindSubmissionsByMonth:
		return "submissions_by_month"
	case KindCommentsBySubreddit:
		return "comments_by_subreddit"
	case KindSubmissionsBySubreddit:
		return "submissions_by_subreddit"
	}
	return "unknown"
}

// AxisSeries is one finished series tagged with its kind.
type AxisSeries struct {
	Kind AxisKind
	Data AxisData
}
