package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/willhughes11/triviaApi/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

// ListRandom returns every question in a fresh random order.
func (s *QuestionService) ListRandom(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return shuffled(questions), nil
}

func (s *QuestionService) ListOrdered(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// ListByCategory returns the questions of one category in a fresh random order.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Where("category = ?", categoryID).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions of category %d: %w", categoryID, err)
	}
	return shuffled(questions), nil
}

// Search matches term as a case-insensitive substring of the question text.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (s *QuestionService) Create(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Text:       input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &question, nil
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	question, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(question)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
