package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/csexamtest/examtest-backend/internal/config"
	"github.com/csexamtest/examtest-backend/internal/database"
	"github.com/csexamtest/examtest-backend/internal/logger"
	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	var (
		course string
		out    string
		pass   int
	)
	flag.StringVar(&course, "course", "", "Only show results for this course code")
	flag.StringVar(&out, "xlsx", "", "Also write the full results workbook to this file")
	flag.IntVar(&pass, "pass", 50, "Score at or above which an attempt counts as passed")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	dashboardRepo := repository.NewDashboardRepository(pool)
	dashboardService := service.NewDashboardService(dashboardRepo)

	stats, err := dashboardService.Stats(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load stats")
	}
	results, err := dashboardService.StudentResults(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load student results")
	}

	color.Cyan("\n=== ExamTest Results ===")
	fmt.Printf("Students: %d  Courses: %d  Questions: %d  Tests: %d (%d completed)  Average: %.2f\n",
		stats.TotalStudents, stats.TotalCourses, stats.TotalQuestions,
		stats.TotalTests, stats.CompletedTests, stats.AverageScore)

	printResults(filterByCourse(results, course), pass)

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create workbook file")
		}
		if err := service.NewExportService(dashboardRepo).WriteStudentResults(ctx, f); err != nil {
			_ = f.Close()
			log.Fatal().Err(err).Msg("Failed to write workbook")
		}
		if err := f.Close(); err != nil {
			log.Fatal().Err(err).Msg("Failed to close workbook file")
		}
		color.Green("Workbook written to %s", out)
	}
}

func filterByCourse(results []model.StudentResult, code string) []model.StudentResult {
	if code == "" {
		return results
	}
	filtered := make([]model.StudentResult, 0, len(results))
	for _, r := range results {
		if strings.EqualFold(r.CourseCode, code) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func printResults(results []model.StudentResult, pass int) {
	if len(results) == 0 {
		color.Yellow("\nNo completed tests yet")
		return
	}

	passed := color.New(color.FgGreen).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()

	color.Yellow("\nCompleted Tests")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Student ID", "Name", "Course", "Score", "Correct", "Time", "Completed"})
	for _, r := range results {
		score := strconv.Itoa(r.Score)
		if r.Score >= pass {
			score = passed(score)
		} else {
			score = failed(score)
		}
		table.Append([]string{
			r.StudentID,
			r.StudentName,
			r.CourseCode,
			score,
			fmt.Sprintf("%d/%d", r.CorrectAnswers, r.TotalQuestions),
			(time.Duration(r.TimeSpent) * time.Second).String(),
			r.CompletedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}
