package wizard

// Direction records the last transition, consumed by clients for slide
// animations only.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// StepValidator checks one data-entry step of the form state and returns a
// field -> message map. An empty map means the step passes.
type StepValidator[S any] func(S) map[string]string

// Machine is a guarded step machine over a wizard-shaped form. Data-entry
// steps are 1..N where N = len(validators); step N+1 is the terminal
// confirmation screen and carries no fields.
type Machine[S any] struct {
	validators []StepValidator[S]
}

// State is the per-session cursor. Step always stays within [1, Total].
type State struct {
	Step      int               `json:"step"`
	Direction Direction         `json:"direction"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func New[S any](validators ...StepValidator[S]) *Machine[S] {
	return &Machine[S]{validators: validators}
}

// Total is the step count including the confirmation screen.
func (m *Machine[S]) Total() int {
	return len(m.validators) + 1
}

// NewState starts a fresh wizard at step 1.
func NewState() State {
	return State{Step: 1, Direction: Forward}
}

// Validate runs the active step's validator. Steps past the data-entry
// range have nothing to check.
func (m *Machine[S]) Validate(st State, form S) map[string]string {
	if st.Step < 1 || st.Step > len(m.validators) {
		return nil
	}
	return m.validators[st.Step-1](form)
}

// Next advances only when the active step validates. On failure the state
// keeps its step and the error map is recorded and returned.
func (m *Machine[S]) Next(st *State, form S) map[string]string {
	if st.Step >= m.Total() {
		return nil
	}
	if errs := m.Validate(*st, form); len(errs) > 0 {
		st.Errors = errs
		return errs
	}
	st.Step++
	st.Direction = Forward
	st.Errors = nil
	return nil
}

// Prev always succeeds and never re-validates.
func (m *Machine[S]) Prev(st *State) {
	if st.Step > 1 {
		st.Step--
	}
	st.Direction = Backward
	st.Errors = nil
}

// Submittable reports whether the state sits on the final data-entry step,
// the only step a submission may be issued from.
func (m *Machine[S]) Submittable(st State) bool {
	return st.Step == len(m.validators)
}

// Complete moves the state onto the confirmation screen after a successful
// submission.
func (m *Machine[S]) Complete(st *State) {
	st.Step = m.Total()
	st.Direction = Forward
	st.Errors = nil
}

// ClearError drops a single field's error, mirroring the incremental
// clearing the forms do as the user edits the offending field.
func (st *State) ClearError(field string) {
	delete(st.Errors, field)
}
