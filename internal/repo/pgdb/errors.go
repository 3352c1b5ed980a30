package pgdb

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchFilter matches rows where any of the columns contains search, case-insensitively.
func searchFilter(search string, columns ...string) squirrel.Or {
	pattern := "%" + likeEscaper.Replace(search) + "%"
	filter := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		filter = append(filter, squirrel.ILike{column: pattern})
	}

	return filter
}
