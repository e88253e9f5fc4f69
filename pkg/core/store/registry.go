package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"rehab_estimator/pkg/models"
)

// Registry is the in-memory home of report state, with best-effort
// write-through to Postgres when a pool is available. Persistence
// failures are logged, never surfaced: losing a cached report must not
// fail a request that already has its data.
type Registry struct {
	mu      sync.RWMutex
	reports map[string]*ReportState
	repo    *ReportRepo
}

func NewRegistry(repo *ReportRepo) *Registry {
	return &Registry{
		reports: make(map[string]*ReportState),
		repo:    repo,
	}
}

// Create registers a new report around a freshly parsed estimation and
// returns its generated id.
func (r *Registry) Create(address, purchasePrice string, finishLevel models.FinishLevel, estimation *models.Estimation) *ReportState {
	state := &ReportState{
		ID:            uuid.NewString(),
		Address:       address,
		PurchasePrice: purchasePrice,
		FinishLevel:   finishLevel,
		Estimation:    estimation,
		UpdatedAt:     time.Now(),
	}

	r.mu.Lock()
	r.reports[state.ID] = state
	r.mu.Unlock()

	r.persist(state)
	return state
}

// Get returns the report by id, falling back to the database for
// reports created before a restart.
func (r *Registry) Get(id string) (*ReportState, bool) {
	r.mu.RLock()
	state, ok := r.reports[id]
	r.mu.RUnlock()
	if ok {
		return state, true
	}

	if r.repo == nil || GetPool() == nil {
		return nil, false
	}
	loaded, err := r.repo.Load(context.Background(), id)
	if err != nil || loaded == nil {
		return nil, false
	}

	r.mu.Lock()
	r.reports[id] = loaded
	r.mu.Unlock()
	return loaded, true
}

// SetAnalysis replaces the report's investment analysis and the price
// it was computed for. The whole analysis object swaps; no field-level
// patching.
func (r *Registry) SetAnalysis(id string, purchasePrice string, analysis *models.InvestmentAnalysis) (*ReportState, bool) {
	r.mu.Lock()
	state, ok := r.reports[id]
	if !ok {
		r.mu.Unlock()
		return nil, false
	}
	state.PurchasePrice = purchasePrice
	state.Analysis = analysis
	state.UpdatedAt = time.Now()
	r.mu.Unlock()

	r.persist(state)
	return state, true
}

func (r *Registry) persist(state *ReportState) {
	if r.repo == nil || GetPool() == nil {
		return
	}
	if err := r.repo.Save(context.Background(), state); err != nil {
		fmt.Printf("[WARNING] Failed to persist report %s: %v\n", state.ID, err)
	}
}
