package invest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"rehab_estimator/pkg/core/agent"
	"rehab_estimator/pkg/core/invest"
	"rehab_estimator/pkg/core/store"
	"rehab_estimator/pkg/models"
)

var investService *invest.Service
var reportRegistry *store.Registry
var requestTracker *invest.Tracker

func InitHandler(mgr *agent.Manager, registry *store.Registry) {
	investService = invest.NewService(mgr)
	reportRegistry = registry
	requestTracker = invest.NewTracker()
}

type InvestRequest struct {
	ReportID      string `json:"reportId"`
	PurchasePrice string `json:"purchasePrice"`
}

type InvestResponse struct {
	ReportID string                     `json:"reportId"`
	Analysis *models.InvestmentAnalysis `json:"analysis"`
	Metrics  invest.DealMetrics         `json:"metrics"`
}

// HandleInvest runs the investment analysis for an existing report. The
// price can change between calls; each call supersedes the previous one
// for the same report, and a completion that was superseded while the
// model ran is discarded without touching stored state.
func HandleInvest(w http.ResponseWriter, r *http.Request) {
	var req InvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.PurchasePrice = strings.TrimSpace(req.PurchasePrice)
	if req.ReportID == "" || req.PurchasePrice == "" {
		http.Error(w, "reportId and purchasePrice are required", http.StatusBadRequest)
		return
	}

	state, ok := reportRegistry.Get(req.ReportID)
	if !ok {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	seq := requestTracker.Begin(req.ReportID)
	fmt.Printf("[INVEST] Report %s seq %d at price %s\n", req.ReportID, seq, req.PurchasePrice)

	analysis, metrics, err := investService.AnalyzeInvestment(r.Context(), state.Address, state.Estimation, req.PurchasePrice)
	if err != nil {
		var formatErr *invest.ResponseFormatError
		if errors.As(err, &formatErr) {
			// Prior analysis stays untouched; the client keeps showing it.
			fmt.Printf("[WARNING] Report %s seq %d: unusable model response: %v\n", req.ReportID, seq, err)
			http.Error(w, formatErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		fmt.Printf("[ERROR] Investment analysis failed for report %s: %v\n", req.ReportID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Staleness check and state write must be one critical section, or a
	// completion superseded between the two would still land last.
	stored := false
	applied := requestTracker.CompleteIfCurrent(req.ReportID, seq, func() {
		_, stored = reportRegistry.SetAnalysis(req.ReportID, req.PurchasePrice, analysis)
	})
	if !applied {
		fmt.Printf("[INVEST] Report %s seq %d superseded, discarding result\n", req.ReportID, seq)
		http.Error(w, "superseded by a newer analysis request", http.StatusConflict)
		return
	}
	if !stored {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(InvestResponse{
		ReportID: req.ReportID,
		Analysis: analysis,
		Metrics:  metrics,
	})
}
