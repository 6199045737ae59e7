package models

// Question.Category references Category.ID but is not enforced as a foreign
// key; a dangling category id is stored as given.
type Question struct {
	ID         uint    `gorm:"primaryKey"`
	Text       *string `gorm:"column:question;type:text"`
	Answer     *string `gorm:"column:answer;type:text"`
	Category   *int    `gorm:"column:category;index"`
	Difficulty *int    `gorm:"column:difficulty"`
}

type FormattedQuestion struct {
	ID         uint    `json:"id"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	out := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}
