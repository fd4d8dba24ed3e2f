package customize

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/felizhandmade/feliz-store/cart"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/pricing"
)

// Designer steps, navigated strictly by index. A step's guard blocks Next,
// never a selection change within the step.
const (
	StepKnots = iota
	StepColor1
	StepRope
	StepColor2
	StepAccessory
	StepReview
)

const (
	MinKnots = 2
	MaxKnots = 4
)

var (
	ErrMaxKnots       = errors.New("maximum 4 knots allowed")
	ErrStepIncomplete = errors.New("complete this step before continuing")
	ErrNotOnReview    = errors.New("designer is not on the review step")
	ErrAlreadyDone    = errors.New("designer session already confirmed")
)

// Session is one run through the customization designer. A new session is
// expected per visit; Confirm finishes it for good.
type Session struct {
	mu        sync.Mutex
	step      int
	sel       pricing.Selection
	confirmed bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Selection returns a snapshot of the current picks.
func (s *Session) Selection() pricing.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.sel
	sel.Knots = append([]models.Knot(nil), s.sel.Knots...)
	return sel
}

// ToggleKnot selects a knot, or deselects it if already picked. Deselection
// is always allowed mid-flow; only a fifth distinct selection is rejected.
func (s *Session) ToggleKnot(k models.Knot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, picked := range s.sel.Knots {
		if picked.ID == k.ID {
			s.sel.Knots = append(s.sel.Knots[:i], s.sel.Knots[i+1:]...)
			return nil
		}
	}
	if len(s.sel.Knots) >= MaxKnots {
		return ErrMaxKnots
	}
	s.sel.Knots = append(s.sel.Knots, k)
	return nil
}

func (s *Session) SetColor1(c models.ColorOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Color1 = &c
}

func (s *Session) SetColor2(c models.ColorOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Color2 = &c
}

func (s *Session) SetRope(r models.Rope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Rope = &r
}

// SetAccessory accepts nil: no accessory is a valid terminal choice.
func (s *Session) SetAccessory(a *models.Accessory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Accessory = a
}

// CanAdvance reports whether the current step's completion guard holds.
func (s *Session) CanAdvance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canAdvance()
}

func (s *Session) canAdvance() bool {
	switch s.step {
	case StepKnots:
		return len(s.sel.Knots) >= MinKnots && len(s.sel.Knots) <= MaxKnots
	case StepColor1:
		return s.sel.Color1 != nil
	case StepRope:
		return s.sel.Rope != nil
	case StepColor2:
		return s.sel.Color2 != nil
	default:
		// Accessory and review have no guard.
		return true
	}
}

// Next advances one step if the guard holds.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canAdvance() {
		return ErrStepIncomplete
	}
	if s.step < StepReview {
		s.step++
	}
	return nil
}

// Prev steps back; always allowed.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > 0 {
		s.step--
	}
}

// Estimate prices the current selection without finishing the session.
func (s *Session) Estimate(base int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Total(base, s.sel)
}

// Confirm synthesizes the composite cart item on the review step and marks
// the session spent.
func (s *Session) Confirm(base int64) (cart.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.confirmed {
		return cart.Item{}, ErrAlreadyDone
	}
	if s.step != StepReview {
		return cart.Item{}, ErrNotOnReview
	}
	if len(s.sel.Knots) < MinKnots {
		return cart.Item{}, ErrStepIncomplete
	}

	item := cart.Item{
		ID:       "custom-" + uuid.NewString(),
		Name:     fmt.Sprintf("Custom Bracelet (%s)", s.sel.Knots[0].Name),
		Price:    pricing.Total(base, s.sel),
		Quantity: 1,
		Meta:     s.meta(),
	}
	s.confirmed = true
	return item, nil
}

func (s *Session) meta() string {
	names := make([]string, 0, len(s.sel.Knots))
	for _, k := range s.sel.Knots {
		names = append(names, k.Name)
	}

	ropeName := "—"
	if s.sel.Rope != nil {
		ropeName = s.sel.Rope.Name
	}
	c1, c2 := "—", "—"
	if s.sel.Color1 != nil {
		c1 = s.sel.Color1.Name
	}
	if s.sel.Color2 != nil {
		c2 = s.sel.Color2.Name
	}
	acc := "None"
	if s.sel.Accessory != nil {
		acc = s.sel.Accessory.Name
	}

	return fmt.Sprintf("Knots: %s • Rope: %s • Colors: %s + %s • Acc: %s",
		strings.Join(names, " + "), ropeName, c1, c2, acc)
}
