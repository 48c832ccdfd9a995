package models

// ContentType selects which kind of user activity an upstream aggregation
// covers.
type ContentType int

const (
	ContentComment ContentType = iota
	ContentSubmission
)

func (c ContentType) String() string {
	if c == ContentSubmission {
		return "submission"
	}
	return "comment"
}

// Dimension selects the key the upstream API groups raw items by.
type Dimension int

const (
	ByCreated Dimension = iota
	BySubreddit
)

func (d Dimension) String() string {
	if d == BySubreddit {
		return "subreddit"
	}
	return "created_utc"
}

// RawCount is one time bucket from a "created_utc" aggregation.
// Date is epoch seconds of the bucket start.
type RawCount struct {
	Date  int64
	Count int64
}

// RawCountBySubreddit is one bucket from a "subreddit" aggregation.
type RawCountBySubreddit struct {
	Subreddit string
	Count     int64
}

// PushShiftData is one raw result set from a fetch cycle, tagged by content
// type and aggregation dimension. Exactly one of Counts/SubredditCounts is
// populated, matching Dimension. Immutable once produced.
type PushShiftData struct {
	Content         ContentType
	Dimension       Dimension
	Counts          []RawCount
	SubredditCounts []RawCountBySubreddit
}
