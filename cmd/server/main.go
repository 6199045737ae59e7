package main

import (
	"log"

	"github.com/willhughes11/triviaApi/internal/config"
	"github.com/willhughes11/triviaApi/internal/database"
	"github.com/willhughes11/triviaApi/internal/handlers"
	"github.com/willhughes11/triviaApi/internal/services"

	_ "github.com/willhughes11/triviaApi/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia questions by category, search and quiz play
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if cfg.SeedData {
		if err := database.Seed(db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(questionService)

	r := handlers.NewRouter(handlers.Services{
		Categories: categoryService,
		Questions:  questionService,
		Quizzes:    quizService,
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
