// Package taxonomy holds the fixed skill, tag and category tables used to
// label projects and achievements. The tables are built once at package init
// and never mutated.
package taxonomy

import (
	"fmt"
	"sort"
)

// SkillCategory groups skills for display and filtering.
type SkillCategory string

const (
	CategoryLang     SkillCategory = "lang"
	CategoryTech     SkillCategory = "tech"
	CategoryPlatform SkillCategory = "platform"
	CategoryActivity SkillCategory = "activity"
	CategoryScope    SkillCategory = "scope"
)

// SubtleTag marks achievements the front-end renders de-emphasized.
const SubtleTag = "subtle"

type Skill struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Category SkillCategory `json:"category"`
}

type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Category is a filter preset over skills and tags. It is not persisted.
type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Color  string   `json:"color"`
	Skills []string `json:"skills"`
	Tags   []string `json:"tags"`
}

type CategoryColor struct {
	Category SkillCategory `json:"category"`
	Color    string        `json:"color"`
}

var colors = []CategoryColor{
	{CategoryLang, "#fff127"},
	{CategoryTech, "#a7c7ff"},
	{CategoryPlatform, "#ffa6de"},
	{CategoryActivity, "#ffc280"},
	{CategoryScope, "#c8c8c8"},
}

var skills = []Skill{
	{"ts", "TypeScript", CategoryLang},
	{"js", "JavaScript", CategoryLang},
	{"cs", "C#", CategoryLang},
	{"python", "Python", CategoryLang},
	{"java", "Java", CategoryLang},
	{"ruby", "Ruby", CategoryLang},
	{"rust", "Rust", CategoryLang},
	{"htmlcss", "HTML/CSS", CategoryLang},
	{"sql", "SQL", CategoryLang},
	{"nosql", "NoSQL", CategoryLang},
	{"node", "Node", CategoryTech},
	{"react", "React", CategoryTech},
	{"svelte", "Svelte", CategoryTech},
	{"aws", "AWS", CategoryTech},
	{"gcp", "GCP", CategoryTech},
	{"unity", "Unity", CategoryTech},
	{"godot", "Godot", CategoryTech},
	{"canvas", "Canvas2D", CategoryTech},
	{"webgl", "WebGL", CategoryTech},
	{"desktop", "Desktop", CategoryPlatform},
	{"mobile", "Mobile", CategoryPlatform},
	{"consoles", "Consoles", CategoryPlatform},
	{"vr", "VR/AR/XR", CategoryPlatform},
	{"gamedesign", "Game Design", CategoryActivity},
	{"audio", "Audio Design", CategoryActivity},
	{"vfx", "VFX Design", CategoryActivity},
	{"architect", "Architecture", CategoryActivity},
	{"manage", "Management", CategoryActivity},
	{"talks", "Tech Talks", CategoryActivity},
	{"perf", "Performance Optimization", CategoryActivity},
	{"realtime", "Realtime Multiplayer", CategoryActivity},
	{"anim", "Animation", CategoryActivity},
	{"devops", "Dev Ops", CategoryActivity},
	{"oncall", "On-Call", CategoryActivity},
	{"webrtc", "WebRTC", CategoryTech},
	{"diffusion", "Diffusion Models", CategoryTech},
	{"llm", "LLM Models", CategoryTech},
	{"gpu", "GPU", CategoryTech},
	{"pro", "Professional", CategoryScope},
	{"extra", "Extracurricular", CategoryScope},
	{"startup", "Startup", CategoryScope},
	{"enterprise", "Enterprise", CategoryScope},
	{"solo", "Sole Dev", CategoryScope},
}

var tags = []Tag{
	{SubtleTag, "Subtlety", "#e4e4e4"},
	{"general", "General", "#bfbfbf"},
	{"lead", "Leadership", "#c596ff"},
	{"onlyi", "Only I Could Solve", "#ffbc5f"},
	{"process", "Process", "#91f086"},
	{"docs", "Documentation", "#87d1ff"},
}

var categories = []Category{
	{
		ID:     "games",
		Name:   "Game Developer",
		Color:  "#ffbc5f",
		Skills: []string{"cs", "unity", "godot", "consoles", "vr", "gamedesign", "audio", "vfx", "gpu"},
		Tags:   []string{"onlyi", "docs"},
	},
	{
		ID:    "web",
		Name:  "Web Developer",
		Color: "#ffbc5f",
		Skills: []string{
			"ts", "js", "htmlcss", "sql", "nosql", "node", "react",
			"svelte", "aws", "gcp", "canvas", "webgl", "webrtc",
		},
		Tags: []string{"onlyi", "docs"},
	},
	{
		ID:     "realtime",
		Name:   "Realtime Engineer",
		Color:  "#ffbc5f",
		Skills: []string{"perf", "realtime", "anim", "webgl", "webrtc"},
		Tags:   []string{"onlyi", "docs"},
	},
	{
		ID:     "ai",
		Name:   "AI Developer",
		Color:  "#ffbc5f",
		Skills: []string{"diffusion", "llm"},
		Tags:   []string{"onlyi", "docs"},
	},
	{
		ID:     "lead",
		Name:   "Engineering Lead",
		Color:  "#ffbc5f",
		Skills: []string{"architect", "manage", "talks", "oncall"},
		Tags:   []string{"process", "lead", "docs"},
	},
}

var (
	skillIndex    = make(map[string]int, len(skills))
	tagIndex      = make(map[string]int, len(tags))
	categoryIndex = make(map[string]int, len(categories))
	colorIndex    = make(map[SkillCategory]string, len(colors))

	skillsByCategory []Skill
)

func init() {
	for i, s := range skills {
		skillIndex[s.ID] = i
	}
	for i, t := range tags {
		tagIndex[t.ID] = i
	}
	for i, c := range categories {
		categoryIndex[c.ID] = i
	}
	for _, c := range colors {
		colorIndex[c.Category] = c.Color
	}

	// Category rank is the order in which a category first appears in the
	// skill table, not the order of the color table.
	rank := map[SkillCategory]int{}
	for _, s := range skills {
		if _, ok := rank[s.Category]; !ok {
			rank[s.Category] = len(rank)
		}
	}
	skillsByCategory = append([]Skill(nil), skills...)
	sort.SliceStable(skillsByCategory, func(i, j int) bool {
		return rank[skillsByCategory[i].Category] < rank[skillsByCategory[j].Category]
	})
}

func LookupSkill(id string) (Skill, bool) {
	i, ok := skillIndex[id]
	if !ok {
		return Skill{}, false
	}
	return skills[i], true
}

func LookupTag(id string) (Tag, bool) {
	i, ok := tagIndex[id]
	if !ok {
		return Tag{}, false
	}
	return tags[i], true
}

func LookupCategory(id string) (Category, bool) {
	i, ok := categoryIndex[id]
	if !ok {
		return Category{}, false
	}
	return cloneCategory(categories[i]), true
}

// Color returns the display color of a skill category.
func Color(c SkillCategory) (string, bool) {
	v, ok := colorIndex[c]
	return v, ok
}

// Skills returns all skills in declaration order.
func Skills() []Skill {
	return append([]Skill(nil), skills...)
}

// SkillsByCategory returns all skills grouped by category, keeping
// declaration order inside each group.
func SkillsByCategory() []Skill {
	return append([]Skill(nil), skillsByCategory...)
}

func ScopeSkills() []Skill {
	return filterSkills(func(s Skill) bool { return s.Category == CategoryScope })
}

func NonScopeSkills() []Skill {
	return filterSkills(func(s Skill) bool { return s.Category != CategoryScope })
}

func Tags() []Tag {
	return append([]Tag(nil), tags...)
}

func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, cloneCategory(c))
	}
	return out
}

func Colors() []CategoryColor {
	return append([]CategoryColor(nil), colors...)
}

// ValidateSkills reports the first id that is not a known skill.
func ValidateSkills(ids []string) error {
	for _, id := range ids {
		if _, ok := skillIndex[id]; !ok {
			return fmt.Errorf("unknown skill %q", id)
		}
	}
	return nil
}

func ValidateTags(ids []string) error {
	for _, id := range ids {
		if _, ok := tagIndex[id]; !ok {
			return fmt.Errorf("unknown tag %q", id)
		}
	}
	return nil
}

func ValidateCategories(ids []string) error {
	for _, id := range ids {
		if _, ok := categoryIndex[id]; !ok {
			return fmt.Errorf("unknown category %q", id)
		}
	}
	return nil
}

// ValidateScopes accepts only skills of the scope category.
func ValidateScopes(ids []string) error {
	for _, id := range ids {
		s, ok := LookupSkill(id)
		if !ok || s.Category != CategoryScope {
			return fmt.Errorf("unknown scope %q", id)
		}
	}
	return nil
}

func filterSkills(keep func(Skill) bool) []Skill {
	var out []Skill
	for _, s := range skillsByCategory {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func cloneCategory(c Category) Category {
	c.Skills = append([]string(nil), c.Skills...)
	c.Tags = append([]string(nil), c.Tags...)
	return c
}
