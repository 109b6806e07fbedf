package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ecoquest/ecoquest-backend/internal/config"
	"github.com/ecoquest/ecoquest-backend/internal/db"
	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/joho/godotenv"
)

// Seeds the quiz question set and challenge catalog. Safe to run repeatedly:
// tables that already hold rows are left alone.
func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}

	if err := conn.AutoMigrate(&model.QuizQuestion{}, &model.Challenge{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	quizRepo := repository.NewQuizRepository(conn)
	if err := quizRepo.EnsureSeeded(ctx, service.SampleQuizQuestions()); err != nil {
		return fmt.Errorf("seed quiz questions: %w", err)
	}

	challengeRepo := repository.NewChallengeRepository(conn)
	if err := challengeRepo.EnsureSeeded(ctx, service.SampleChallenges()); err != nil {
		return fmt.Errorf("seed challenges: %w", err)
	}

	log.Printf("seed complete")
	return nil
}
