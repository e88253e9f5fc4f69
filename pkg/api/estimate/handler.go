package estimate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rehab_estimator/pkg/core/agent"
	"rehab_estimator/pkg/core/estimate"
	"rehab_estimator/pkg/core/store"
	"rehab_estimator/pkg/models"
)

var estimateService *estimate.Service
var reportRegistry *store.Registry

func InitHandler(mgr *agent.Manager, registry *store.Registry) {
	estimateService = estimate.NewService(mgr)
	reportRegistry = registry
}

type PhotoPayload struct {
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	Base64Data   string `json:"base64"`
	LastModified int64  `json:"lastModified"` // unix millis, optional
}

type EstimateRequest struct {
	Address       string         `json:"address"`
	PurchasePrice string         `json:"purchasePrice"`
	FinishLevel   string         `json:"finishLevel"`
	Photos        []PhotoPayload `json:"photos"`
}

type EstimateResponse struct {
	ReportID   string             `json:"reportId"`
	Estimation *models.Estimation `json:"estimation"`
}

// HandleEstimate runs the full rehab-estimate flow: photos in, parsed
// estimation out, with the result registered for follow-up analysis.
func HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Address = strings.TrimSpace(req.Address)
	if req.Address == "" {
		http.Error(w, "address is required", http.StatusBadRequest)
		return
	}
	if len(req.Photos) == 0 {
		http.Error(w, "at least one photo is required", http.StatusBadRequest)
		return
	}
	finishLevel := models.FinishLevel(req.FinishLevel)
	if req.FinishLevel == "" {
		finishLevel = models.FinishIntermediate
	}
	if !finishLevel.IsValid() {
		http.Error(w, fmt.Sprintf("invalid finish level %q", req.FinishLevel), http.StatusBadRequest)
		return
	}

	photos := make([]models.UploadedPhoto, 0, len(req.Photos))
	for _, p := range req.Photos {
		modTime := time.Now()
		if p.LastModified > 0 {
			modTime = time.UnixMilli(p.LastModified)
		}
		photos = append(photos, models.UploadedPhoto{
			ID:         models.PhotoID(p.Name, modTime),
			Name:       p.Name,
			MimeType:   p.MimeType,
			Base64Data: p.Base64Data,
		})
	}

	fmt.Printf("[ESTIMATE] Request for %q (%d photos, finish: %s)\n", req.Address, len(photos), finishLevel)

	estimation, err := estimateService.GenerateEstimate(r.Context(), req.Address, photos, finishLevel, req.PurchasePrice)
	if err != nil {
		fmt.Printf("[ERROR] Estimate failed for %q: %v\n", req.Address, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state := reportRegistry.Create(req.Address, req.PurchasePrice, finishLevel, estimation)
	fmt.Printf("[ESTIMATE] Report %s created (%d repair items)\n", state.ID, len(estimation.Repairs))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EstimateResponse{
		ReportID:   state.ID,
		Estimation: estimation,
	})
}
