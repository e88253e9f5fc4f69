package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apiconfig "rehab_estimator/pkg/api/config"
	apiestimate "rehab_estimator/pkg/api/estimate"
	apiinvest "rehab_estimator/pkg/api/invest"
	apireport "rehab_estimator/pkg/api/report"
	"rehab_estimator/pkg/core/agent"
	"rehab_estimator/pkg/core/prompt"
	"rehab_estimator/pkg/core/store"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize Prompt Library
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Database is optional: without DATABASE_URL reports live in memory only.
	var reportRepo *store.ReportRepo
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Database unavailable, reports are memory-only: %v\n", err)
	} else {
		reportRepo = store.NewReportRepo()
		defer store.Close()
	}
	registry := store.NewRegistry(reportRepo)

	apiestimate.InitHandler(agentMgr, registry)
	apiinvest.InitHandler(agentMgr, registry)
	apireport.InitHandler(registry)
	configHandler := apiconfig.NewHandler(agentMgr)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/api/estimate", apiestimate.HandleEstimate)
	r.Post("/api/invest", apiinvest.HandleInvest)
	r.Get("/api/report", apireport.HandleGetReport)
	r.Get("/api/report/pdf", apireport.HandleDownloadPDF)
	r.Get("/api/config", configHandler.HandleConfig)
	r.Post("/api/config/switch", configHandler.HandleSwitch)

	fmt.Println("Server starting on :8080")
	fmt.Println("  POST /api/estimate      - Generate rehab estimate from photos")
	fmt.Println("  POST /api/invest        - Run investment analysis for a report")
	fmt.Println("  GET  /api/report        - Fetch report state")
	fmt.Println("  GET  /api/report/pdf    - Download the combined PDF report")
	fmt.Println("  GET  /api/config        - Show active model provider")
	fmt.Println("  POST /api/config/switch - Switch model provider")

	if err := http.ListenAndServe(":8080", r); err != nil {
		fmt.Printf("[ERROR] Server failed: %v\n", err)
		os.Exit(1)
	}
}
