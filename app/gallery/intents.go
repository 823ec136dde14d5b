package gallery

// Intent is a structured input from the view layer.
type Intent interface {
	isIntent()
}

// CheckboxState carries every currently checked category, not a delta.
type CheckboxState struct {
	Checked []string
}

// SearchInput carries the raw contents of the search box.
type SearchInput struct {
	Text string
}

// ResetFilters clears categories and query.
type ResetFilters struct{}

// SelectCard toggles selection of the card with the given id.
type SelectCard struct {
	ID string
}

func (CheckboxState) isIntent() {}
func (SearchInput) isIntent()   {}
func (ResetFilters) isIntent()  {}
func (SelectCard) isIntent()    {}

// Dispatch maps an intent onto the matching engine operation.
func (e *Engine) Dispatch(in Intent) {
	switch v := in.(type) {
	case CheckboxState:
		e.SetCategoryFilters(v.Checked)
	case SearchInput:
		e.SetTextQuery(v.Text)
	case ResetFilters:
		e.Reset()
	case SelectCard:
		e.ToggleSelect(v.ID)
	default:
		e.logger.Warn("unhandled intent", "intent", in)
	}
}
