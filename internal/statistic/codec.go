package statistic

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/DamienOReilly/reddit-stats/internal/models"
	"github.com/DamienOReilly/reddit-stats/internal/statistic/interfaces"
)

// SnapshotVersion is the wire format version. Decode rejects anything else;
// there is no migration between versions.
const SnapshotVersion = 1

// Two-letter keys of the "d" object. Wire contract — shared links encoded by
// one build must decode on any other, so these never change within a version.
const (
	keyCommentsByYear         = "py"
	keyCommentsByMonth        = "pm"
	keySubmissionsByYear      = "sy"
	keySubmissionsByMonth     = "sm"
	keyCommentsBySubreddit    = "ps"
	keySubmissionsBySubreddit = "ss"
)

// ErrInvalidSnapshot covers every decode failure. The stage cause stays
// wrapped underneath for logs and tests; callers only branch on the sentinel.
var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	ErrBadEncoding     = errors.New("snapshot: malformed url-safe base64")
	ErrBadCompression  = errors.New("snapshot: corrupt compressed stream")
	ErrBadText         = errors.New("snapshot: payload is not valid UTF-8")
	ErrBadSchema       = errors.New("snapshot: payload does not match schema")
	ErrVersionMismatch = errors.New("snapshot: unsupported version")
)

// snapshotPayload is the compact wire shape. Pointer fields let decode tell
// a missing field apart from a zero value.
type snapshotPayload struct {
	V *int                    `json:"v"`
	U *string                 `json:"u"`
	T *int64                  `json:"t"`
	D map[string]*axisPayload `json:"d"`
}

type axisPayload struct {
	X []string  `json:"x"`
	Y []float64 `json:"y"`
}

// canonicalOrder fixes the series order of a decoded result. The order is a
// convention, not a meaning; producers and consumers treat Data as a set.
var canonicalOrder = []struct {
	key  string
	kind models.AxisKind
}{
	{keyCommentsBySubreddit, models.KindCommentsBySubreddit},
	{keySubmissionsBySubreddit, models.KindSubmissionsBySubreddit},
	{keyCommentsByYear, models.KindCommentsByYear},
	{keyCommentsByMonth, models.KindCommentsByMonth},
	{keySubmissionsByYear, models.KindSubmissionsByYear},
	{keySubmissionsByMonth, models.KindSubmissionsByMonth},
}

func seriesKey(kind models.AxisKind) string {
	switch kind {
	case models.KindCommentsByYear:
		return keyCommentsByYear
	case models.KindCommentsByMonth:
		return keyCommentsByMonth
	case models.KindSubmissionsByYear:
		return keySubmissionsByYear
	case models.KindSubmissionsByMonth:
		return keySubmissionsByMonth
	case models.KindCommentsBySubreddit:
		return keyCommentsBySubreddit
	case models.KindSubmissionsBySubreddit:
		return keySubmissionsBySubreddit
	}
	return ""
}

// SnapshotCodec maps a SnapshotResult to a single URL-safe string and back.
// Encode stages: compact JSON → UTF-8 bytes → zlib → base64url (no padding).
// Decode runs the exact inverse and validates the schema strictly.
type SnapshotCodec struct {
	compressor interfaces.CompressorInterface
}

func NewSnapshotCodec(compressor interfaces.CompressorInterface) interfaces.SnapshotCodecInterface {
	return &SnapshotCodec{compressor: compressor}
}

// Encode serializes a result into a shareable string. Best effort: callers
// drop the share control when it fails instead of failing the whole run.
func (c *SnapshotCodec) Encode(res *models.SnapshotResult) (string, error) {
	d := make(map[string]*axisPayload, len(res.Data))
	for i := range res.Data {
		s := &res.Data[i]
		key := seriesKey(s.Kind)
		if key == "" {
			return "", fmt.Errorf("unknown series kind %d", s.Kind)
		}
		d[key] = &axisPayload{X: emptyIfNil(s.Data.Labels), Y: emptyIfNilF(s.Data.Values)}
	}

	v, u, ts := res.Version, res.User.Name, res.Timestamp
	raw, err := json.Marshal(snapshotPayload{V: &v, U: &u, T: &ts, D: d})
	if err != nil {
		return "", err
	}

	compressed, err := c.compressor.Compress(raw)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// Decode reverses Encode. Every failure wraps ErrInvalidSnapshot with the
// failing stage underneath; it never panics on hostile input.
func (c *SnapshotCodec) Decode(payload string) (*models.SnapshotResult, error) {
	// Tolerate padded input: the alphabet remap is the contract, padding not.
	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, decodeErr(ErrBadEncoding, err)
	}

	raw, err := c.compressor.Decompress(compressed)
	if err != nil {
		return nil, decodeErr(ErrBadCompression, err)
	}

	if !utf8.Valid(raw) {
		return nil, decodeErr(ErrBadText, nil)
	}

	var p snapshotPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, decodeErr(ErrBadSchema, err)
	}
	if p.V == nil || p.U == nil || p.T == nil || p.D == nil {
		return nil, decodeErr(ErrBadSchema, nil)
	}
	if *p.V != SnapshotVersion {
		return nil, decodeErr(ErrVersionMismatch, fmt.Errorf("got %d, want %d", *p.V, SnapshotVersion))
	}

	data := make([]models.AxisSeries, 0, len(canonicalOrder))
	for _, entry := range canonicalOrder {
		series, ok := p.D[entry.key]
		if !ok || series == nil || series.X == nil || series.Y == nil || len(series.X) != len(series.Y) {
			return nil, decodeErr(ErrBadSchema, fmt.Errorf("series %q missing or malformed", entry.key))
		}
		data = append(data, models.AxisSeries{
			Kind: entry.kind,
			Data: models.AxisData{Labels: series.X, Values: series.Y},
		})
	}

	return &models.SnapshotResult{
		Version:   *p.V,
		User:      models.User{Name: *p.U},
		Timestamp: *p.T,
		Data:      data,
	}, nil
}

func decodeErr(stage, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %w: %v", ErrInvalidSnapshot, stage, cause)
	}
	return fmt.Errorf("%w: %w", ErrInvalidSnapshot, stage)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilF(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
