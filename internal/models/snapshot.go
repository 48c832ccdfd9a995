package models

// SnapshotResult is the unit of serialization: a fully aggregated statistics
// run for one user. Built either fresh after a successful fetch cycle or by
// decoding a shared link. Immutable once constructed.
//
// Data always holds exactly the six AxisSeries variants, one of each.
// Consumers must treat it as a set; the slice order is a convention of the
// producer, not part of the meaning.
type SnapshotResult struct {
	Version   int
	User      User
	Timestamp int64 // milliseconds since epoch
	Data      []AxisSeries
}
