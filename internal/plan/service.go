package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fbarrientos/autoeval/internal/catalog"
	"github.com/fbarrientos/autoeval/internal/llm"
	"github.com/fbarrientos/autoeval/internal/scoring"
)

// ErrNotConfigured is the slice error shown when no LLM credentials are
// configured.
const ErrNotConfigured = "Falta configurar una clave de API para generar planes."

// Config tunes plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds each individual request so a slice never stays
	// loading forever.
	Timeout time.Duration
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// Service orchestrates plan generation: one summary request plus one
// request per area, all in flight at once. Each batch is tagged with a
// generation epoch; responses from an abandoned batch are discarded.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu    sync.Mutex
	epoch string
	plan  Plan

	updates chan struct{}
}

// NewService creates a plan service. A nil provider means generation is
// not configured; Generate then fails every slice with ErrNotConfigured.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		plan:     NewPlan(),
		updates:  make(chan struct{}, 16),
	}
}

// Configured reports whether a provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// Restore seeds the service with a persisted plan. Loading flags are
// cleared: an interrupted generation from a previous run is dead.
func (s *Service) Restore(p Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored := p.clone()
	if restored.Areas == nil {
		restored.Areas = make(map[int]State)
	}
	restored.Summary.IsLoading = false
	for id, st := range restored.Areas {
		st.IsLoading = false
		restored.Areas[id] = st
	}
	s.plan = restored
}

// Plan returns a copy of the current plan.
func (s *Service) Plan() Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.clone()
}

// Updates signals after every slice change. The channel is buffered and
// never closed; a full buffer drops the signal, which is fine because
// consumers re-read Plan() on every wake-up.
func (s *Service) Updates() <-chan struct{} {
	return s.updates
}

// Generating reports whether any slice is still loading.
func (s *Service) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan.Summary.IsLoading {
		return true
	}
	for _, st := range s.plan.Areas {
		if st.IsLoading {
			return true
		}
	}
	return false
}

// AllReady reports whether the summary and every area have non-empty
// content and nothing is loading.
func (s *Service) AllReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan.Summary.IsLoading || s.plan.Summary.Content == "" {
		return false
	}
	for _, a := range catalog.Areas() {
		st, ok := s.plan.Areas[a.ID]
		if !ok || st.IsLoading || st.Content == "" {
			return false
		}
	}
	return true
}

// Generate starts a new generation batch over the given results. A
// second call abandons the previous batch: its in-flight responses are
// discarded when they arrive.
func (s *Service) Generate(ctx context.Context, results []scoring.AreaResult) {
	s.mu.Lock()
	epoch := uuid.NewString()
	s.epoch = epoch

	if s.provider == nil {
		s.plan.Summary = State{Error: ErrNotConfigured}
		for _, r := range results {
			s.plan.Areas[r.Area.ID] = State{Error: ErrNotConfigured}
		}
		s.mu.Unlock()
		s.notify()
		return
	}

	s.plan.Summary = State{IsLoading: true}
	for _, r := range results {
		s.plan.Areas[r.Area.ID] = State{IsLoading: true}
	}
	s.mu.Unlock()
	s.notify()

	go s.generateSummary(ctx, epoch, results)
	for _, r := range results {
		go s.generateArea(ctx, epoch, r)
	}
}

const summarySliceID = 0

// summaryPayload and areaPayload mirror the response schemas.
type summaryPayload struct {
	Resumen string `json:"resumen"`
}

type areaPayload struct {
	Descripcion string   `json:"descripcion"`
	Tareas      []string `json:"tareas"`
}

func (s *Service) generateSummary(ctx context.Context, epoch string, results []scoring.AreaResult) {
	raw, err := s.request(ctx, "plan-summary", summarySchema, summarySystemPrompt, buildSummaryUserMessage(results))
	var content string
	if err == nil {
		var p summaryPayload
		if jerr := json.Unmarshal(raw, &p); jerr != nil {
			err = fmt.Errorf("respuesta mal formada: %w", jerr)
		} else {
			content = strings.TrimSpace(p.Resumen)
		}
	}
	s.apply(epoch, summarySliceID, content, err)
}

func (s *Service) generateArea(ctx context.Context, epoch string, r scoring.AreaResult) {
	raw, err := s.request(ctx, "plan-area", areaSchema, areaSystemPrompt, buildAreaUserMessage(r))
	var content string
	if err == nil {
		var p areaPayload
		if jerr := json.Unmarshal(raw, &p); jerr != nil {
			err = fmt.Errorf("respuesta mal formada: %w", jerr)
		} else {
			content = renderAreaPlan(p)
		}
	}
	s.apply(epoch, r.Area.ID, content, err)
}

func (s *Service) request(ctx context.Context, purpose string, schema *llm.Schema, system, user string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// renderAreaPlan flattens a structured area plan into its display text:
// the next-level description followed by one "- " line per task.
func renderAreaPlan(p areaPayload) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(p.Descripcion))
	for _, task := range p.Tareas {
		task = strings.TrimSpace(task)
		if task == "" {
			continue
		}
		b.WriteString("\n- ")
		b.WriteString(task)
	}
	return b.String()
}

// apply writes one slice's result, unless the batch was abandoned.
func (s *Service) apply(epoch string, sliceID int, content string, err error) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}

	var st State
	if err != nil {
		st = State{Error: fmt.Sprintf("No se pudo generar el plan: %v", err)}
	} else {
		st = State{Content: content}
	}

	if sliceID == summarySliceID {
		s.plan.Summary = st
	} else {
		s.plan.Areas[sliceID] = st
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Service) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
