package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"rehab_estimator/pkg/models"
)

// ReportState is everything the server remembers about one property
// analysis: the inputs, the parsed estimate and the latest investment
// analysis. The analysis pointer is replaced wholesale on recompute.
type ReportState struct {
	ID            string                     `json:"id"`
	Address       string                     `json:"address"`
	PurchasePrice string                     `json:"purchasePrice"`
	FinishLevel   models.FinishLevel         `json:"finishLevel"`
	Estimation    *models.Estimation         `json:"estimation"`
	Analysis      *models.InvestmentAnalysis `json:"analysis,omitempty"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

// ReportRepo stores report state as a single JSONB blob per report.
//
// Schema assumption (managed outside this service):
//
//	CREATE TABLE IF NOT EXISTS rehab_reports (
//	  id TEXT PRIMARY KEY,
//	  address TEXT,
//	  report_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type ReportRepo struct{}

func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// Save upserts the report keyed by its id.
func (r *ReportRepo) Save(ctx context.Context, state *ReportState) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO rehab_reports (id, address, report_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			address = EXCLUDED.address,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, state.ID, state.Address, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves a report by id; (nil, nil) when it does not exist.
func (r *ReportRepo) Load(ctx context.Context, id string) (*ReportState, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT report_json FROM rehab_reports WHERE id = $1`, id).Scan(&jsonData)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var state ReportState
	if err := json.Unmarshal(jsonData, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &state, nil
}
