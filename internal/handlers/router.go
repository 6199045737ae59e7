package handlers

import (
	"net/http"

	"github.com/willhughes11/triviaApi/internal/middleware"
	"github.com/willhughes11/triviaApi/internal/services"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Categories *services.CategoryService
	Questions  *services.QuestionService
	Quizzes    *services.QuizService
}

func NewRouter(svc Services) *gin.Engine {
	categoryHandler := NewCategoryHandler(svc.Categories, svc.Questions)
	questionHandler := NewQuestionHandler(svc.Questions, svc.Categories)
	quizHandler := NewQuizHandler(svc.Quizzes)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID(), gin.Logger(), middleware.Recovery())
	r.Use(middleware.CORS())

	r.NoRoute(func(c *gin.Context) { abortWithError(c, http.StatusNotFound) })
	r.NoMethod(func(c *gin.Context) { abortWithError(c, http.StatusMethodNotAllowed) })

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)

	r.GET("/questions", questionHandler.ListQuestions)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/questions/submit", questionHandler.CreateQuestion)
	r.POST("/questions/search", questionHandler.SearchQuestions)

	r.POST("/quizzes", quizHandler.PlayQuiz)

	return r
}
