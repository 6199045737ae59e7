package services

import (
	"context"
	"math/rand"

	"github.com/willhughes11/triviaApi/internal/models"
)

// AnyCategory selects questions from every category.
const AnyCategory = 0

type QuizService struct {
	questions *QuestionService
}

func NewQuizService(questions *QuestionService) *QuizService {
	return &QuizService{questions: questions}
}

// NextQuestion picks a random question of the category that is not listed in
// previous. It returns nil, nil once the category is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []uint) (*models.Question, error) {
	var (
		candidates []models.Question
		err        error
	)
	if categoryID == AnyCategory {
		candidates, err = s.questions.ListRandom(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	unused := make([]models.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			unused = append(unused, q)
		}
	}

	if len(unused) == 0 {
		return nil, nil
	}
	picked := unused[rand.Intn(len(unused))]
	return &picked, nil
}
