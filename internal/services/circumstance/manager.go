package circumstance

import (
	"passvault/internal/domain"
	"passvault/internal/observable"
)

// Manager implements domain.SpecialCircumstanceManager. The zero circumstance
// is nil.
type Manager struct {
	state *observable.State[domain.SpecialCircumstance]
}

// New returns a Manager holding initial, which may be nil.
func New(initial domain.SpecialCircumstance) *Manager {
	return &Manager{state: observable.New(initial)}
}

// SpecialCircumstance returns the current circumstance or nil.
func (m *Manager) SpecialCircumstance() domain.SpecialCircumstance { return m.state.Value() }

// SetSpecialCircumstance replaces the circumstance; nil clears it.
func (m *Manager) SetSpecialCircumstance(c domain.SpecialCircumstance) { m.state.Set(c) }

// SpecialCircumstanceState returns the observable circumstance.
func (m *Manager) SpecialCircumstanceState() *observable.State[domain.SpecialCircumstance] {
	return m.state
}

// FromShareArgs builds a ShareNewSend circumstance from command-line input.
// A non-empty file wins over text; both empty yields nil.
func FromShareArgs(subject, text, fileName, uri string) domain.SpecialCircumstance {
	switch {
	case uri != "":
		return domain.ShareNewSend{
			Data:                     domain.FileShare{FileName: fileName, URI: uri},
			ShouldFinishWhenComplete: true,
		}
	case text != "":
		return domain.ShareNewSend{
			Data:                     domain.TextShare{Subject: subject, Text: text},
			ShouldFinishWhenComplete: true,
		}
	default:
		return nil
	}
}

var _ domain.SpecialCircumstanceManager = (*Manager)(nil)
