package sqlstore

import (
	"fmt"
	"strings"

	"github.com/dtroode/quizboard-server/internal/model"
)

var sortColumns = map[model.SortField]string{
	model.SortFieldScore: "score",
	model.SortFieldDate:  "submitted_at",
}

// orderBy renders an ORDER BY clause for the ordering, ending with id so the
// result is total like model.Ordering.Less.
func orderBy(o model.Ordering) (string, error) {
	parts := make([]string, 0, len(o)+1)
	for _, key := range o {
		col, ok := sortColumns[key.Field]
		if !ok {
			return "", fmt.Errorf("unknown sort field %q", key.Field)
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	parts = append(parts, "id ASC")
	return "ORDER BY " + strings.Join(parts, ", "), nil
}
