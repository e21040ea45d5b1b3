package main

import (
	"context"
	"flag"

	"github.com/rlin/jobdeck/internal/config"
	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/logger"
	"github.com/rlin/jobdeck/internal/repository"
)

// starterQuestions is the default prep bank loaded into a fresh install.
var starterQuestions = []domain.PrepQuestion{
	{Category: domain.PrepBehavioral, Question: "Tell me about yourself.", Difficulty: "easy", Tags: "intro"},
	{Category: domain.PrepBehavioral, Question: "Describe a time you disagreed with a teammate. How did you resolve it?", Difficulty: "medium", Tags: "conflict,teamwork"},
	{Category: domain.PrepBehavioral, Question: "Tell me about a project you are most proud of.", Difficulty: "easy", Tags: "impact"},
	{Category: domain.PrepBehavioral, Question: "Describe a time you missed a deadline. What happened?", Difficulty: "medium", Tags: "failure"},
	{Category: domain.PrepDSA, Question: "Reverse a linked list in place.", Difficulty: "easy", Tags: "linked-list"},
	{Category: domain.PrepDSA, Question: "Find the k-th largest element in an unsorted array.", Difficulty: "medium", Tags: "heap,quickselect"},
	{Category: domain.PrepDSA, Question: "Given a string, find the length of the longest substring without repeating characters.", Difficulty: "medium", Tags: "sliding-window"},
	{Category: domain.PrepDSA, Question: "Serialize and deserialize a binary tree.", Difficulty: "hard", Tags: "tree,recursion"},
	{Category: domain.PrepSystemDesign, Question: "Design a URL shortener.", Difficulty: "medium", Tags: "hashing,storage"},
	{Category: domain.PrepSystemDesign, Question: "Design a rate limiter for a public API.", Difficulty: "medium", Tags: "throttling"},
	{Category: domain.PrepSystemDesign, Question: "Design a news feed for a social network.", Difficulty: "hard", Tags: "fanout,caching"},
	{Category: domain.PrepCoding, Question: "Implement an LRU cache with O(1) get and put.", Difficulty: "medium", Tags: "cache,design"},
	{Category: domain.PrepCoding, Question: "Write a function that parses and evaluates simple arithmetic expressions.", Difficulty: "hard", Tags: "parsing"},
}

func main() {
	// Initialize logger first (with defaults)
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "jobdeck-seed",
	})
	logger.SetDefaultLogger(appLogger)

	// Parse command line flags
	force := flag.Bool("force", false, "Seed even when the prep bank is not empty")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	prepRepo := repository.NewPrepRepository(db)
	ctx := context.Background()

	count, err := prepRepo.Count(ctx)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to count prep questions")
	}
	if count > 0 && !*force {
		appLogger.WithField(logger.FieldCount, count).Info("Prep bank already seeded, nothing to do")
		return
	}

	seeded := 0
	for i := range starterQuestions {
		q := starterQuestions[i]
		if err := prepRepo.Create(ctx, &q); err != nil {
			appLogger.WithError(err).WithField("question", q.Question).Error("Failed to seed question")
			continue
		}
		seeded++
	}

	appLogger.WithField(logger.FieldCount, seeded).Info("Prep bank seeded")
}
