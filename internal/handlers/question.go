package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/willhughes11/triviaApi/internal/models"
	"github.com/willhughes11/triviaApi/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, categoryService: categoryService}
}

type CreateQuestionRequest struct {
	Question   *string  `json:"question" example:"Who discovered penicillin?"`
	Answer     *string  `json:"answer" example:"Alexander Fleming"`
	Category   *FlexInt `json:"category" swaggertype:"integer" example:"1"`
	Difficulty *FlexInt `json:"difficulty" swaggertype:"integer" example:"3"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" example:"which"`
}

type QuestionsPageResponse struct {
	Success        bool                `json:"success" example:"true"`
	Questions      []FormattedQuestion `json:"questions"`
	TotalQuestions int64               `json:"total_questions" example:"19"`
	Categories     map[uint]string     `json:"categories"`
}

type DeleteQuestionResponse struct {
	Success        bool                `json:"success" example:"true"`
	Deleted        uint                `json:"deleted" example:"21"`
	Questions      []FormattedQuestion `json:"questions"`
	TotalQuestions int64               `json:"total_questions" example:"18"`
}

type CreateQuestionResponse struct {
	Success        bool  `json:"success" example:"true"`
	Created        uint  `json:"created" example:"24"`
	TotalQuestions int64 `json:"total_questions" example:"20"`
}

type SearchQuestionsResponse struct {
	Success        bool                `json:"success" example:"true"`
	Questions      []FormattedQuestion `json:"questions"`
	TotalQuestions int                 `json:"total_questions" example:"7"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  All questions in random order, paginated by 10, with the category mapping
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsPageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.ListRandom(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryService.List(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := paginate(pageFromQuery(c), models.FormatQuestions(questions))
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, QuestionsPageResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: int64(len(questions)),
		Categories:     models.CategoryMap(categories),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Deletes the question and returns the remaining questions ordered by id, paginated
// @Tags         questions
// @Produce      json
// @Param        id   path  int true  "Question ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	if err := h.questionService.Delete(ctx, uint(questionID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			abortWithError(c, http.StatusNotFound)
			return
		}
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	remaining, err := h.questionService.ListOrdered(ctx)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        uint(questionID),
		Questions:      paginate(pageFromQuery(c), models.FormatQuestions(remaining)),
		TotalQuestions: int64(len(remaining)),
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  Fields are optional; absent ones are stored as null. The category id is not checked.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/submit [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question, err := h.questionService.Create(ctx, services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.IntPtr(),
		Difficulty: req.Difficulty.IntPtr(),
	})
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	total, err := h.questionService.Count(ctx)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		TotalQuestions: total,
	})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text. Only the requested page (10 rows) is returned and total_questions counts that page.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int                    false "Page number" default(1)
// @Param        request body  SearchQuestionsRequest true  "Search term"
// @Success      200 {object} SearchQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := paginate(pageFromQuery(c), models.FormatQuestions(questions))

	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(current),
	})
}
