package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/csexamtest/examtest-backend/internal/config"
	"github.com/csexamtest/examtest-backend/internal/database"
	"github.com/csexamtest/examtest-backend/internal/logger"
	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/csexamtest/examtest-backend/internal/service"
)

type seedQuestion struct {
	text    string
	options [4]string
	correct string
}

type seedCourse struct {
	name        string
	code        string
	description string
	category    string
	questions   []seedQuestion
}

var courses = []seedCourse{
	{
		name:        "Introduction to Programming",
		code:        "CS101",
		description: "Variables, control flow and functions.",
		category:    "Programming",
		questions: []seedQuestion{
			{"Which keyword declares a constant in Go?", [4]string{"var", "let", "const", "static"}, model.OptionC},
			{"What does a for loop without a condition do?", [4]string{"Runs once", "Runs forever", "Does not compile", "Runs ten times"}, model.OptionB},
			{"Which type holds true or false?", [4]string{"int", "string", "byte", "bool"}, model.OptionD},
		},
	},
	{
		name:        "Data Structures",
		code:        "CS201",
		description: "Lists, stacks, queues, trees and hash tables.",
		category:    "Algorithms",
		questions: []seedQuestion{
			{"Which structure is last-in first-out?", [4]string{"Stack", "Queue", "Heap", "Graph"}, model.OptionA},
			{"Average lookup cost in a hash table?", [4]string{"O(n)", "O(log n)", "O(1)", "O(n log n)"}, model.OptionC},
			{"A binary tree node has at most how many children?", [4]string{"One", "Two", "Three", "Unlimited"}, model.OptionB},
		},
	},
	{
		name:        "Databases",
		code:        "CS301",
		description: "Relational modelling and SQL.",
		category:    "Data Management",
		questions: []seedQuestion{
			{"Which clause filters grouped rows?", [4]string{"WHERE", "ORDER BY", "HAVING", "LIMIT"}, model.OptionC},
			{"A foreign key references which key of another table?", [4]string{"Primary", "Composite", "Surrogate", "Partial"}, model.OptionA},
		},
	},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseService := service.NewCourseService(repository.NewCourseRepository(pool))
	questionService := service.NewQuestionService(repository.NewQuestionRepository(pool))

	fmt.Printf("=== Seeding %d Courses ===\n", len(courses))

	for _, sc := range courses {
		description, category := sc.description, sc.category
		course, err := courseService.Create(ctx, &model.CreateCourseRequest{
			Name:        sc.name,
			Code:        sc.code,
			Description: &description,
			Category:    &category,
		})
		if errors.Is(err, service.ErrCourseCodeTaken) {
			fmt.Printf("Skipping %s: already exists\n", sc.code)
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("code", sc.code).Msg("Failed to create course")
		}

		for _, q := range sc.questions {
			_, err := questionService.Create(ctx, &model.CreateQuestionRequest{
				CourseID:      course.ID.String(),
				QuestionText:  q.text,
				OptionA:       q.options[0],
				OptionB:       q.options[1],
				OptionC:       q.options[2],
				OptionD:       q.options[3],
				CorrectAnswer: q.correct,
			})
			if err != nil {
				log.Fatal().Err(err).Str("code", sc.code).Msg("Failed to create question")
			}
		}
		fmt.Printf("Created %s (%s) with %d questions\n", sc.name, sc.code, len(sc.questions))
	}

	fmt.Println("Seeding complete")
}
