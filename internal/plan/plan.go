// Package plan generates the AI development plan: one overall summary
// and one plan per competency area, requested concurrently with
// per-slice state so a single failed request never hides the rest.
package plan

// State tracks one plan slice (the summary or one area's plan).
type State struct {
	Content   string `json:"content"`
	IsLoading bool   `json:"is_loading"`
	Error     string `json:"error,omitempty"`
}

// Plan holds every slice of the development plan.
type Plan struct {
	Summary State         `json:"summary"`
	Areas   map[int]State `json:"areas"`
}

// NewPlan returns an empty plan with an initialized area map.
func NewPlan() Plan {
	return Plan{Areas: make(map[int]State)}
}

// clone returns a deep copy so callers never share the service's map.
func (p Plan) clone() Plan {
	out := Plan{Summary: p.Summary, Areas: make(map[int]State, len(p.Areas))}
	for id, st := range p.Areas {
		out.Areas[id] = st
	}
	return out
}

// HasContent reports whether any slice has generated content.
func (p Plan) HasContent() bool {
	if p.Summary.Content != "" {
		return true
	}
	for _, st := range p.Areas {
		if st.Content != "" {
			return true
		}
	}
	return false
}
