package handlers

import (
	"net/http"

	"github.com/willhughes11/triviaApi/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizCategory struct {
	ID   *FlexInt `json:"id" swaggertype:"integer" example:"0"`
	Type string   `json:"type" example:"click"`
}

type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint        `json:"previous_questions" example:"2"`
}

type PlayQuizResponse struct {
	Success  bool               `json:"success" example:"true"`
	Question *FormattedQuestion `json:"question"`
}

// PlayQuiz godoc
// @Summary      Next quiz question
// @Description  A random question of the category (id 0 for any) not in previous_questions. Both fields are required. question is null once the category is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Quiz state"
// @Success      200 {object} PlayQuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil || req.PreviousQuestions == nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), int(*req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	resp := PlayQuizResponse{Success: true}
	if question != nil {
		formatted := question.Format()
		resp.Question = &formatted
	}
	c.JSON(http.StatusOK, resp)
}
