package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/csexamtest/examtest-backend/internal/config"
	"github.com/csexamtest/examtest-backend/internal/database"
	"github.com/csexamtest/examtest-backend/internal/logger"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/csexamtest/examtest-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	authService := service.NewAuthService(
		repository.NewAdminRepository(pool),
		repository.NewStudentRepository(pool),
		cfg.BcryptCost,
	)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin ===")

	adminID := prompt(reader, "Enter Admin ID: ")
	firstName := prompt(reader, "Enter First Name: ")
	lastName := prompt(reader, "Enter Last Name: ")

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		os.Exit(1)
	}
	password := string(bytePassword)
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		os.Exit(1)
	}

	admin, err := authService.CreateAdmin(ctx, adminID, firstName, lastName, password)
	if err != nil {
		if errors.Is(err, service.ErrAdminIDTaken) {
			fmt.Printf("Error: admin '%s' already exists\n", adminID)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s %s) created with ID: %s\n", admin.AdminID, admin.FirstName, admin.LastName, admin.ID)
}

// prompt reads one required line from stdin, exiting when it is blank.
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		fmt.Printf("Error: %s is required\n", strings.TrimSuffix(strings.TrimPrefix(label, "Enter "), ": "))
		os.Exit(1)
	}
	return line
}
