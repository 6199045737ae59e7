package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const QuestionsPerPage = 10

// pageFromQuery reads the 1-based page query parameter. Missing or
// non-integer values fall back to 1.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// paginate returns items[(page-1)*QuestionsPerPage : page*QuestionsPerPage],
// clipped to the slice. Pages before the first or past the end are empty.
func paginate[T any](page int, items []T) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
