package deployments

import (
	"sync"
	"time"

	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/models"
)

type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateEditing   SessionState = "editing"
	StateSubmitted SessionState = "submitted"
	StateApplied   SessionState = "applied"
)

// Session is one attempt at deploying a computer. Quantities live here and
// never touch the store until Submit succeeds.
type Session struct {
	ID string

	mu           sync.Mutex
	resolver     *Resolver
	state        SessionState
	quantities   models.DeploymentRequest
	insufficient []string
	onTransition func(s *Session, from, to SessionState)
	touchedAt    time.Time
}

type EntryView struct {
	models.EntryAvailability
	Quantity int `json:"quantity"`
}

type SessionView struct {
	ID           string       `json:"id"`
	State        SessionState `json:"state"`
	Entries      []EntryView  `json:"entries"`
	Total        int          `json:"total"`
	Insufficient []string     `json:"insufficient,omitempty"`
}

func NewSession(id string, r *Resolver) *Session {
	return &Session{
		ID:         id,
		resolver:   r,
		state:      StateIdle,
		quantities: models.DeploymentRequest{},
	}
}

func (s *Session) touch(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchedAt = at
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.touchedAt
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Adjust moves an entry's quantity by delta, clamped to current stock.
func (s *Session) Adjust(entryID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setLocked(entryID, s.quantities[entryID]+delta)
}

func (s *Session) Set(entryID string, qty int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setLocked(entryID, qty)
}

func (s *Session) Quantities() models.DeploymentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(models.DeploymentRequest, len(s.quantities))
	for id, qty := range s.quantities {
		out[id] = qty
	}
	return out
}

func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quantities.Total()
}

func (s *Session) Insufficient() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.insufficient...)
}

// Submit deploys the selected quantities. On rejection the session goes back
// to editing with the diagnostics attached; on success it is applied and
// reset to idle.
func (s *Session) Submit() (Resolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quantities.Total() == 0 {
		return Resolution{}, custom_error.NewValidationError("quantities", "select at least one item to deploy")
	}

	s.transition(StateSubmitted)
	res, err := s.resolver.Deploy(s.quantities)
	if err != nil {
		if stockErr, ok := custom_error.AsInsufficientStock(err); ok {
			s.insufficient = append([]string(nil), stockErr.Items...)
		}
		s.transition(StateEditing)
		return res, err
	}

	s.transition(StateApplied)
	s.resetLocked()

	return res, nil
}

func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	availability := s.resolver.Availability()
	entries := make([]EntryView, 0, len(availability))
	for _, a := range availability {
		entries = append(entries, EntryView{EntryAvailability: a, Quantity: s.quantities[a.Entry.ID]})
	}

	return SessionView{
		ID:           s.ID,
		State:        s.state,
		Entries:      entries,
		Total:        s.quantities.Total(),
		Insufficient: append([]string(nil), s.insufficient...),
	}
}

func (s *Session) setLocked(entryID string, qty int) (int, error) {
	clamped, err := s.resolver.Clamp(entryID, qty)
	if err != nil {
		return 0, err
	}

	if clamped == 0 {
		delete(s.quantities, entryID)
	} else {
		s.quantities[entryID] = clamped
	}
	if s.state != StateEditing {
		s.transition(StateEditing)
	}

	return clamped, nil
}

func (s *Session) resetLocked() {
	s.quantities = models.DeploymentRequest{}
	s.insufficient = nil
	if s.state != StateIdle {
		s.transition(StateIdle)
	}
}

func (s *Session) transition(to SessionState) {
	from := s.state
	s.state = to
	if s.onTransition != nil {
		s.onTransition(s, from, to)
	}
}
