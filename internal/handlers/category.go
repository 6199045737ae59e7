package handlers

import (
	"net/http"
	"strconv"

	"github.com/willhughes11/triviaApi/internal/models"
	"github.com/willhughes11/triviaApi/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

type CategoriesResponse struct {
	Success         bool            `json:"success" example:"true"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories" example:"6"`
}

type CategoryQuestionsResponse struct {
	Success        bool                `json:"success" example:"true"`
	Questions      []FormattedQuestion `json:"questions"`
	TotalQuestions int                 `json:"total_questions" example:"2"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories as an id to type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      models.CategoryMap(categories),
		TotalCategories: len(categories),
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Description  Questions of one category in random order, paginated. total_questions counts the returned page.
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := paginate(pageFromQuery(c), models.FormatQuestions(questions))
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(current),
	})
}
