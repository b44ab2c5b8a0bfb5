package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQuery_SingleKeyword(t *testing.T) {
	query, args := BuildSearchQuery([]string{"React"})

	assert.Equal(t, []interface{}{"%react%"}, args)
	assert.Equal(t, len(searchFields), strings.Count(query, "$1"))
	assert.NotContains(t, query, "$2")
	assert.Contains(t, query, "LOWER(recs.title) LIKE $1")
	assert.Contains(t, query, "LOWER(tags.tag) LIKE $1")
	assert.Contains(t, query, "LOWER(users.name) LIKE $1")
	assert.Contains(t, query, "LEFT JOIN tags ON tags.rec_id = recs.id")
	assert.True(t, strings.HasSuffix(query, "GROUP BY recs.id, users.id ORDER BY recs.submit_time DESC LIMIT 10"))
}

func TestBuildSearchQuery_GroupsPerKeyword(t *testing.T) {
	query, args := BuildSearchQuery([]string{"go", "Channels", "x"})

	assert.Equal(t, []interface{}{"%go%", "%channels%", "%x%"}, args)
	for _, p := range []string{"$1", "$2", "$3"} {
		assert.Equal(t, len(searchFields), strings.Count(query, p), p)
	}
	// three parenthesised groups joined by OR
	assert.Equal(t, 3, strings.Count(query, "(LOWER(recs.title)"))
	assert.Contains(t, query, ") OR (")
}

func TestBuildSearchQuery_NeverInterpolatesValues(t *testing.T) {
	hostile := "x'); DROP TABLE recs; --"
	query, args := BuildSearchQuery([]string{hostile})

	assert.NotContains(t, query, "DROP TABLE")
	assert.Equal(t, []interface{}{"%" + strings.ToLower(hostile) + "%"}, args)
}

func TestBuildTagFilter(t *testing.T) {
	cond, args := BuildTagFilter([]string{"sql", "o'brien"})

	assert.Equal(t, "(tags.tag = ? OR tags.tag = ?)", cond)
	assert.Equal(t, []interface{}{"sql", "o'brien"}, args)
}
