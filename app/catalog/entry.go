package catalog

// Entry is one site template offered by the gallery. Entries are never
// mutated after a load; callers share them by value.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UseCase     string   `json:"use_case"`
	Tags        []string `json:"tags"`
	Features    []string `json:"features"`
}

// HasTag reports whether tag is one of the entry's tags (exact match).
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// document is the wire shape of the catalog file. Data is a pointer so a
// missing "data" field can be told apart from an empty list.
type document struct {
	Data *[]Entry `json:"data"`
}

// DiscoverCategories returns the distinct non-empty use cases across entries
// in first-seen order.
func DiscoverCategories(entries []Entry) []string {
	seen := make(map[string]bool, len(entries))
	var categories []string
	for _, e := range entries {
		if e.UseCase == "" || seen[e.UseCase] {
			continue
		}
		seen[e.UseCase] = true
		categories = append(categories, e.UseCase)
	}
	return categories
}
