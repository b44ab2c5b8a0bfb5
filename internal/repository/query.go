package repository

import (
	"fmt"
	"strings"
)

// SearchLimit caps the number of recs a keyword search returns.
const SearchLimit = 10

// searchFields are matched case-insensitively against every keyword.
var searchFields = []string{
	"recs.title",
	"recs.type",
	"recs.author",
	"recs.summary",
	"recs.reason",
	"tags.tag",
	"users.name",
}

const searchSelect = "SELECT recs.*, users.name AS owner_name FROM recs " +
	"JOIN users ON users.id = recs.user_id " +
	"LEFT JOIN tags ON tags.rec_id = recs.id"

// BuildSearchQuery returns a statement matching any keyword against any of
// the searchable fields, plus its arguments. Keyword k (1-based) is bound once
// as $k and that placeholder is repeated for every field of its group, so
// len(args) == len(keywords). Keywords are lowercased and wrapped in %.
// Callers must pass at least one keyword.
func BuildSearchQuery(keywords []string) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(searchSelect)
	b.WriteString(" WHERE ")

	args := make([]interface{}, 0, len(keywords))
	for i, kw := range keywords {
		if i > 0 {
			b.WriteString(" OR ")
		}
		placeholder := fmt.Sprintf("$%d", i+1)
		b.WriteByte('(')
		for j, field := range searchFields {
			if j > 0 {
				b.WriteString(" OR ")
			}
			fmt.Fprintf(&b, "LOWER(%s) LIKE %s", field, placeholder)
		}
		b.WriteByte(')')
		args = append(args, "%"+strings.ToLower(kw)+"%")
	}

	b.WriteString(" GROUP BY recs.id, users.id")
	b.WriteString(" ORDER BY recs.submit_time DESC")
	fmt.Fprintf(&b, " LIMIT %d", SearchLimit)
	return b.String(), args
}

// BuildTagFilter returns a parenthesised disjunction of tag equalities with
// gorm-style placeholders, one per tag.
func BuildTagFilter(tags []string) (string, []interface{}) {
	conds := make([]string, 0, len(tags))
	args := make([]interface{}, 0, len(tags))
	for _, t := range tags {
		conds = append(conds, "tags.tag = ?")
		args = append(args, t)
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}
