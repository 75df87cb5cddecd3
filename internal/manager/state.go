package manager

import "github.com/iwvelando/earning-formula/internal/model"

// State is a snapshot of everything the presentation layer renders. Values
// returned by Manager.State share no memory with the manager.
type State struct {
	Jobs []model.Job `json:"jobs"`
	// TotalResult is nil while the working set is empty.
	TotalResult         *model.TotalCalculationResult `json:"totalResult"`
	SavedConfigurations []model.WorkConfiguration     `json:"savedConfigurations"`
	// CurrentLoaded is the favorite being edited, nil for the unsaved buffer.
	CurrentLoaded *model.WorkConfiguration `json:"currentLoaded"`
	// OriginalLoaded is the last durably written version of CurrentLoaded.
	// Saving under its name updates it in place.
	OriginalLoaded *model.WorkConfiguration `json:"originalLoaded"`
	Currency       model.Currency           `json:"currency"`
	Language       model.Language           `json:"language"`
	ErrorMessage   string                   `json:"errorMessage,omitempty"`
}

// CurrentRef identifies the configuration the working set belongs to.
func (s State) CurrentRef() model.ConfigurationRef {
	if s.CurrentLoaded == nil {
		return model.UnsavedRef()
	}
	return model.SavedRef(s.CurrentLoaded.ID)
}

func (s State) clone() State {
	out := s
	out.Jobs = model.CloneJobs(s.Jobs)
	if s.TotalResult != nil {
		total := s.TotalResult.Clone()
		out.TotalResult = &total
	}
	out.SavedConfigurations = model.CloneConfigurations(s.SavedConfigurations)
	out.CurrentLoaded = clonePtr(s.CurrentLoaded)
	out.OriginalLoaded = clonePtr(s.OriginalLoaded)
	return out
}

func clonePtr(c *model.WorkConfiguration) *model.WorkConfiguration {
	if c == nil {
		return nil
	}
	cp := c.Clone()
	return &cp
}
