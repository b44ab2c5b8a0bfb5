package models

// RecTypes is the fixed set of resource categories a rec may carry.
var RecTypes = []string{
	"podcast",
	"article",
	"webpage",
	"video",
	"interactive-course",
	"eBook",
	"exercise",
	"tool",
	"other",
}

// TagSuggestions is offered to clients when tagging a rec. Recs are free to
// use labels outside this list.
var TagSuggestions = []string{
	"javascript",
	"typescript",
	"react",
	"node",
	"express",
	"sql",
	"postgres",
	"html",
	"css",
	"git",
	"testing",
	"algorithms",
	"data-structures",
	"python",
	"go",
	"devops",
	"career",
	"beginner",
	"advanced",
}

// IsRecType reports whether t is one of RecTypes.
func IsRecType(t string) bool {
	for _, rt := range RecTypes {
		if rt == t {
			return true
		}
	}
	return false
}
