package model

import "bytes"

// SortField names a result attribute usable as a sort key.
type SortField string

const (
	SortFieldScore SortField = "score"
	SortFieldDate  SortField = "date"
)

// SortKey is one level of an Ordering.
type SortKey struct {
	Field SortField
	Desc  bool
}

// Ordering is a lexicographic list of sort keys. Ties left by every key are
// broken by result id, so the order is total.
type Ordering []SortKey

var (
	// ByTopScore ranks higher scores first; among equal scores the earlier attempt wins.
	ByTopScore = Ordering{{Field: SortFieldScore, Desc: true}, {Field: SortFieldDate}}
	// ByMostRecent ranks the newest attempts first.
	ByMostRecent = Ordering{{Field: SortFieldDate, Desc: true}}
)

// Less reports whether a sorts before b.
func (o Ordering) Less(a, b QuizResult) bool {
	for _, key := range o {
		c := compareField(key.Field, a, b)
		if c == 0 {
			continue
		}
		if key.Desc {
			return c > 0
		}
		return c < 0
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func compareField(field SortField, a, b QuizResult) int {
	switch field {
	case SortFieldScore:
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		}
		return 0
	case SortFieldDate:
		return a.Date.Compare(b.Date)
	default:
		return 0
	}
}
