package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"meprofiled/backend/internal/config"
	"meprofiled/backend/internal/models"
	"meprofiled/backend/internal/services"
)

func main() {
	resumePath := flag.String("resume", "", "path to the resume PDF")
	jobPath := flag.String("job", "", "path to a text file with the job description")
	level := flag.String("level", string(models.LevelAuto), "experience level: auto, intern, fresher or experienced")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall analysis timeout")
	flag.Parse()

	if *resumePath == "" || *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.Println("🚀 Starting resume analysis...")

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	resume, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}
	if !services.HasAllowedExtension(*resumePath, cfg.Upload.Extensions) {
		log.Fatalf("❌ %s is not a PDF file", *resumePath)
	}

	jobDescription, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}

	model, err := services.NewEmbeddingModel(
		services.GeminiLoader(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel),
		cfg.Model.CacheSize,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding model: %v", err)
	}

	analyzer, err := services.NewAnalyzerFromConfig(cfg, model, services.NewAnalysisMetrics(prometheus.NewRegistry()))
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := analyzer.Analyze(ctx, models.AnalysisRequest{
		ResumePDF:       resume,
		JobDescription:  string(jobDescription),
		ExperienceLevel: models.ParseExperienceLevelIn(*level, cfg.Validation.ExperienceLevels),
	})
	if err != nil {
		log.Printf("❌ Analysis failed: %v", err)
		cancel()
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode result: %v", err)
	}

	log.Println(strings.Repeat("=", 60))
	fmt.Println(string(out))
}
