// Package nav holds the explicit navigation stack that decides which screen
// is visible and which card it is looking at. Each history entry carries the
// active card alongside the screen, with precedence rules for when that
// context survives a navigation — which is why this is a hand-rolled stack
// and not a plain screen history.
package nav

import (
	"context"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/models"
)

// maxDepth bounds the history: pushing past it evicts the oldest frame.
const maxDepth = 10

// Frame is one navigation history entry.
type Frame struct {
	Screen Screen
	// Card is the active card context, nil when the screen has none. Only
	// the ID is authoritative: resolve against the latest store snapshot
	// before acting on the card's fields.
	Card *models.Card
	Edit bool
}

// CardDeleter is the slice of the card store the stack needs for
// delete-aware navigation.
type CardDeleter interface {
	DeleteByID(ctx context.Context, id string) error
}

// Stack is the navigation state machine. It always holds at least one frame;
// the root frame is (home, no card, no edit). Mutations are expected from
// the single UI-driving goroutine only.
type Stack struct {
	deleter CardDeleter
	log     *logger.Logger
	frames  []Frame
}

func NewStack(deleter CardDeleter, log *logger.Logger) *Stack {
	return &Stack{
		deleter: deleter,
		log:     log,
		frames:  []Frame{rootFrame()},
	}
}

func rootFrame() Frame {
	return Frame{Screen: ScreenHome}
}

// Current returns the top frame.
func (s *Stack) Current() Frame {
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Frames returns a copy of the history, oldest first.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// NavigateTo pushes a new frame. Re-navigating to the exact current triple
// is a no-op. The next active card is chosen by precedence: an explicitly
// supplied card always wins; without one, card-detail and edit-existing keep
// the current card; any other destination clears it.
func (s *Stack) NavigateTo(screen Screen, edit bool, card *models.Card) {
	top := s.Current()
	if top.Screen == screen && top.Edit == edit && sameCard(top.Card, card) {
		return
	}

	next := card
	if next == nil && keepsCardContext(screen, edit) {
		next = top.Card
	}

	s.frames = append(s.frames, Frame{Screen: screen, Card: next, Edit: edit})
	if len(s.frames) > maxDepth {
		s.frames = s.frames[1:]
	}
}

func keepsCardContext(screen Screen, edit bool) bool {
	return screen == ScreenCardDetail || (screen == ScreenAddCard && edit)
}

// Back pops the top frame. On a single-frame stack it resets to the root
// frame instead; back navigation never empties the history.
func (s *Stack) Back() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
		return
	}
	s.frames = []Frame{rootFrame()}
}

// DeleteCard deletes the card from the store, drops every frame whose active
// card matches it (relative order preserved), and lands on the home screen
// so the UI never keeps pointing at a deleted card. The store error, if any,
// is returned after the history has been scrubbed.
func (s *Stack) DeleteCard(ctx context.Context, card *models.Card) error {
	if card == nil {
		return nil
	}

	err := s.deleter.DeleteByID(ctx, card.ID)
	if err != nil {
		s.log.Error().Err(err).Str("card_id", card.ID).Msg("card deletion failed, scrubbing history anyway")
	}

	kept := s.frames[:0]
	for _, f := range s.frames {
		if f.Card != nil && f.Card.SameID(*card) {
			continue
		}
		kept = append(kept, f)
	}
	s.frames = kept

	if len(s.frames) == 0 {
		s.frames = []Frame{rootFrame()}
	}
	s.NavigateTo(ScreenHome, false, nil)

	return err
}

// ReplaceScreen rewrites every occurrence of the current top screen id,
// anywhere in the stack, to screen. History depth is untouched; used to swap
// the login screen for the post-login one without growing the stack.
func (s *Stack) ReplaceScreen(screen Screen) {
	current := s.Current().Screen
	if current == screen {
		return
	}
	for i := range s.frames {
		if s.frames[i].Screen == current {
			s.frames[i].Screen = screen
		}
	}
}

// Reset drops the whole history back to the single root frame.
func (s *Stack) Reset() {
	s.frames = []Frame{rootFrame()}
}

func sameCard(a, b *models.Card) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.SameID(*b)
}
