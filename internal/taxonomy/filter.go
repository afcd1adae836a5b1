package taxonomy

// Filter is the active-selection state behind the skill/tag/category filter
// bar. A zero Filter is not usable; start from NewFilter.
type Filter struct {
	skills     map[string]struct{}
	tags       map[string]struct{}
	categories map[string]struct{}
}

// FilterState is a Filter flattened to registry order.
type FilterState struct {
	Skills     []string `json:"skills"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// NewFilter returns a filter with every skill, tag and category active.
func NewFilter() *Filter {
	f := &Filter{
		skills:     map[string]struct{}{},
		tags:       map[string]struct{}{},
		categories: map[string]struct{}{},
	}
	for _, s := range skills {
		f.skills[s.ID] = struct{}{}
	}
	for _, t := range tags {
		f.tags[t.ID] = struct{}{}
	}
	for _, c := range categories {
		f.categories[c.ID] = struct{}{}
	}
	return f
}

// ToggleSkill flips a skill, or forces it when enabled is non-nil.
func (f *Filter) ToggleSkill(id string, enabled *bool) {
	if _, ok := skillIndex[id]; !ok {
		return
	}
	toggle(f.skills, id, enabled)
}

func (f *Filter) EnableAllScopes() {
	for _, s := range skills {
		if s.Category == CategoryScope {
			f.skills[s.ID] = struct{}{}
		}
	}
}

// ToggleCategory flips a category, or forces it when enabled is non-nil,
// then rebuilds the active skills and tags from the active categories.
func (f *Filter) ToggleCategory(id string, enabled *bool) {
	if _, ok := categoryIndex[id]; !ok {
		return
	}
	toggle(f.categories, id, enabled)
	f.rebuild()
}

// ClearCategories deselects every category, which restores the full
// selection.
func (f *Filter) ClearCategories() {
	clear(f.categories)
	f.rebuild()
}

// SelectCategories makes exactly the given categories active. Unknown ids
// are ignored; an empty result restores the full selection.
func (f *Filter) SelectCategories(ids []string) {
	clear(f.categories)
	for _, id := range ids {
		if _, ok := categoryIndex[id]; ok {
			f.categories[id] = struct{}{}
		}
	}
	f.rebuild()
}

// SelectScopes makes exactly the given scope skills active. An empty list
// enables all scopes.
func (f *Filter) SelectScopes(ids []string) {
	for _, s := range skills {
		if s.Category == CategoryScope {
			delete(f.skills, s.ID)
		}
	}
	n := 0
	for _, id := range ids {
		if s, ok := LookupSkill(id); ok && s.Category == CategoryScope {
			f.skills[id] = struct{}{}
			n++
		}
	}
	if n == 0 {
		f.EnableAllScopes()
	}
}

func (f *Filter) SkillActive(id string) bool {
	_, ok := f.skills[id]
	return ok
}

func (f *Filter) TagActive(id string) bool {
	_, ok := f.tags[id]
	return ok
}

func (f *Filter) CategoryActive(id string) bool {
	_, ok := f.categories[id]
	return ok
}

func (f *Filter) Snapshot() FilterState {
	st := FilterState{
		Skills:     []string{},
		Tags:       []string{},
		Categories: []string{},
	}
	for _, s := range skillsByCategory {
		if f.SkillActive(s.ID) {
			st.Skills = append(st.Skills, s.ID)
		}
	}
	for _, t := range tags {
		if f.TagActive(t.ID) {
			st.Tags = append(st.Tags, t.ID)
		}
	}
	for _, c := range categories {
		if f.CategoryActive(c.ID) {
			st.Categories = append(st.Categories, c.ID)
		}
	}
	return st
}

// rebuild keeps scope selections and derives everything else from the
// active categories.
func (f *Filter) rebuild() {
	for _, s := range skills {
		if s.Category != CategoryScope {
			delete(f.skills, s.ID)
		}
	}
	clear(f.tags)

	if len(f.categories) > 0 {
		for _, c := range categories {
			if _, ok := f.categories[c.ID]; !ok {
				continue
			}
			for _, id := range c.Skills {
				f.skills[id] = struct{}{}
			}
			for _, id := range c.Tags {
				f.tags[id] = struct{}{}
			}
		}
		return
	}

	for _, c := range categories {
		f.categories[c.ID] = struct{}{}
	}
	for _, s := range skills {
		if s.Category != CategoryScope {
			f.skills[s.ID] = struct{}{}
		}
	}
	for _, t := range tags {
		f.tags[t.ID] = struct{}{}
	}
}

func toggle(set map[string]struct{}, id string, enabled *bool) {
	_, on := set[id]
	switch {
	case enabled == nil && on, enabled != nil && !*enabled:
		delete(set, id)
	default:
		set[id] = struct{}{}
	}
}
