package database

import (
	"fmt"
	"log"

	"github.com/willhughes11/triviaApi/internal/models"

	"gorm.io/gorm"
)

var seedCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

type seedQuestion struct {
	id         uint
	question   string
	answer     string
	category   int
	difficulty int
}

var seedQuestions = []seedQuestion{
	{5, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{9, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{2, "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{4, "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{6, "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 5, 3},
	{10, "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{11, "Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{12, "Who invented Peanut Butter?", "George Washington Carver", 4, 2},
	{13, "What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{14, "In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{15, "The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{16, "Which Dutch graphic artist–initials M C was a creator of optical illusions?", "Escher", 2, 1},
	{17, "La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{18, "How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{19, "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", 2, 2},
	{20, "What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{21, "Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{22, "Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
	{23, "Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4, 4},
}

// Seed loads the default categories and questions. It does nothing when
// either table already holds rows.
func Seed(db *gorm.DB) error {
	var categories, questions int64
	if err := db.Model(&models.Category{}).Count(&categories).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if err := db.Model(&models.Question{}).Count(&questions).Error; err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if categories > 0 || questions > 0 {
		log.Println("seed skipped, tables not empty")
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		cats := make([]models.Category, len(seedCategories))
		copy(cats, seedCategories)
		if err := tx.Create(&cats).Error; err != nil {
			return err
		}

		rows := make([]models.Question, 0, len(seedQuestions))
		for _, sq := range seedQuestions {
			sq := sq
			rows = append(rows, models.Question{
				ID:         sq.id,
				Text:       &sq.question,
				Answer:     &sq.answer,
				Category:   &sq.category,
				Difficulty: &sq.difficulty,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		// explicit ids leave postgres sequences behind
		if tx.Dialector.Name() == "postgres" {
			for _, table := range []string{"categories", "questions"} {
				stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Printf("seeded %d categories, %d questions", len(seedCategories), len(seedQuestions))
	return nil
}
