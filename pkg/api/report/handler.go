package report

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rehab_estimator/pkg/core/report"
	"rehab_estimator/pkg/core/store"
)

var reportRegistry *store.Registry

func InitHandler(registry *store.Registry) {
	reportRegistry = registry
}

// HandleGetReport returns the stored report state as JSON.
func HandleGetReport(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	state, ok := reportRegistry.Get(id)
	if !ok {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleDownloadPDF renders the report as a downloadable PDF.
func HandleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	state, ok := reportRegistry.Get(id)
	if !ok {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	data, err := report.BuildPDF(state.Estimation, state.Analysis, state.Address)
	if err != nil {
		fmt.Printf("[ERROR] PDF generation failed for report %s: %v\n", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[REPORT] PDF for %s (%d bytes)\n", id, len(data))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(state.Address)))
	w.Write(data)
}
