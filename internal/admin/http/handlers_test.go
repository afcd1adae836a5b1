package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/folio-site/folio-backend/internal/applications/domain"
	"github.com/folio-site/folio-backend/internal/projects/domain"
)

type fakeProjects struct {
	created []domain.ProjectInput
	updated []domain.ProjectInput
	deleted []string
	err     error
}

func (f *fakeProjects) List(context.Context) ([]domain.Project, error) {
	return []domain.Project{{ID: "site", Name: "Site"}}, nil
}

func (f *fakeProjects) Create(_ context.Context, in domain.ProjectInput) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeProjects) Update(_ context.Context, in domain.ProjectInput) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, in)
	return nil
}

func (f *fakeProjects) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAchievements struct {
	created []domain.AchievementInput
	updated []domain.AchievementInput
	err     error
}

func (f *fakeAchievements) List(context.Context) ([]domain.Achievement, error) {
	return []domain.Achievement{{ID: 1, ProjectID: "site", Summary: "Did it."}}, nil
}

func (f *fakeAchievements) Create(_ context.Context, in domain.AchievementInput) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, in)
	return int64(40 + len(f.created)), nil
}

func (f *fakeAchievements) Update(_ context.Context, in domain.AchievementInput) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, in)
	return nil
}

type fakeApplications struct {
	created  []appdomain.ApplicationInput
	updated  []appdomain.ApplicationInput
	archived []int64
	deleted  []int64
	err      error
}

func (f *fakeApplications) List(context.Context) ([]appdomain.Application, error) {
	return []appdomain.Application{{ID: 3, URL: "acme"}}, nil
}

func (f *fakeApplications) Create(_ context.Context, in appdomain.ApplicationInput) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, in)
	return 9, nil
}

func (f *fakeApplications) Update(_ context.Context, in appdomain.ApplicationInput) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, in)
	return nil
}

func (f *fakeApplications) Archive(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.archived = append(f.archived, id)
	return nil
}

func (f *fakeApplications) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTimeline struct {
	invalidations int
}

func (f *fakeTimeline) ProjectsByYear(context.Context) ([]domain.ProjectsYear, error) {
	return []domain.ProjectsYear{{Year: 2026, Projects: []domain.ProjectWithAchievements{{
		Project:      domain.Project{ID: "site"},
		Achievements: []domain.Achievement{{ID: 1, Private: "note"}},
	}}}}, nil
}

func (f *fakeTimeline) Invalidate(context.Context) error {
	f.invalidations++
	return nil
}

type fixture struct {
	router       *gin.Engine
	projects     *fakeProjects
	achievements *fakeAchievements
	applications *fakeApplications
	timeline     *fakeTimeline
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		projects:     &fakeProjects{},
		achievements: &fakeAchievements{},
		applications: &fakeApplications{},
		timeline:     &fakeTimeline{},
	}
	r := gin.New()
	New(f.projects, f.achievements, f.applications, f.timeline).Register(r.Group("/admin"))
	f.router = r
	return f
}

func (f *fixture) post(path string, fields url.Values) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func projectForm() url.Values {
	return url.Values{
		"id":          {"site"},
		"name":        {" Site "},
		"description": {""},
		"start":       {"2024-02-01"},
		"end":         {""},
		"skills":      {"svelte, ts,"},
		"media":       {"a.png\nb.png\n"},
	}
}

func TestCreateProject(t *testing.T) {
	f := newFixture()
	w, body := f.post("/admin/projects/create", projectForm())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "site", body["projectId"])

	require.Len(t, f.projects.created, 1)
	in := f.projects.created[0]
	assert.Equal(t, "Site", in.Name)
	assert.Nil(t, in.Description)
	assert.Nil(t, in.End)
	assert.Equal(t, []string{"svelte", "ts"}, in.Skills)
	assert.Equal(t, []string{"a.png", "b.png"}, in.Media)
	assert.Equal(t, 1, f.timeline.invalidations)
}

func TestCreateProject_FirstMissingFieldWins(t *testing.T) {
	cases := []struct {
		drop string
		want string
	}{
		{"id", "Project ID is required"},
		{"name", "Project name is required"},
		{"description", "Invalid form data: description"},
		{"start", "Start date is required"},
		{"skills", "Invalid form data: skills"},
		{"media", "Invalid form data: media"},
	}
	for _, tc := range cases {
		t.Run(tc.drop, func(t *testing.T) {
			f := newFixture()
			fields := projectForm()
			fields.Del(tc.drop)

			w, body := f.post("/admin/projects/create", fields)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.want, body["error"])
			assert.Empty(t, f.projects.created)
			assert.Zero(t, f.timeline.invalidations)
		})
	}
}

func TestCreateProject_ReportsOnlyFirstViolation(t *testing.T) {
	f := newFixture()
	fields := projectForm()
	fields.Del("name")
	fields.Del("id")

	_, body := f.post("/admin/projects/create", fields)
	assert.Equal(t, "Project ID is required", body["error"])
}

func TestCreateProject_UnknownSkill(t *testing.T) {
	f := newFixture()
	fields := projectForm()
	fields.Set("skills", "ts,golang")

	w, body := f.post("/admin/projects/create", fields)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Invalid form data: skills: unknown skill "golang"`, body["error"])
	assert.Empty(t, f.projects.created)
}

func TestCreateProject_DuplicateID(t *testing.T) {
	f := newFixture()
	f.projects.err = domain.ErrProjectExists

	w, body := f.post("/admin/projects/create", projectForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Project ID already exists", body["error"])
	assert.Zero(t, f.timeline.invalidations)
}

func TestUpdateProject(t *testing.T) {
	f := newFixture()
	fields := projectForm()
	fields.Set("description", "  Built it ")
	fields.Set("end", "2025-06-30")

	w, _ := f.post("/admin/projects/update", fields)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.projects.updated, 1)
	in := f.projects.updated[0]
	require.NotNil(t, in.Description)
	assert.Equal(t, "Built it", *in.Description)
	require.NotNil(t, in.End)
	assert.Equal(t, 2025, in.End.Year())

	f.projects.err = domain.ErrNotFound
	w, body := f.post("/admin/projects/update", fields)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", body["error"])
}

func TestUpdateProject_NameOnlyNeedsToBePresent(t *testing.T) {
	f := newFixture()
	fields := projectForm()
	fields.Set("name", "  ")

	w, _ := f.post("/admin/projects/update", fields)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.projects.updated, 1)
	assert.Equal(t, "", f.projects.updated[0].Name)

	fields.Del("name")
	w, body := f.post("/admin/projects/update", fields)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid form data: name", body["error"])
	assert.Len(t, f.projects.updated, 1)

	w, body = f.post("/admin/projects/create", projectFormWith("name", "  "))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Project name is required", body["error"])
}

func projectFormWith(key, value string) url.Values {
	fields := projectForm()
	fields.Set(key, value)
	return fields
}

func TestDeleteProject(t *testing.T) {
	f := newFixture()
	w, _ := f.post("/admin/projects/delete", url.Values{"id": {"site"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"site"}, f.projects.deleted)

	f.projects.err = errors.New("connection reset")
	w, body := f.post("/admin/projects/delete", url.Values{"id": {"site"}})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", body["error"])
}

func achievementForm() url.Values {
	return url.Values{
		"projectId":   {"site"},
		"summary":     {"Shipped v2.."},
		"description": {""},
		"private":     {"between us"},
		"tags":        {"lead,docs"},
		"order":       {"99"},
	}
}

func TestCreateAchievement_NormalizesAndClamps(t *testing.T) {
	f := newFixture()
	w, body := f.post("/admin/achievements/create", achievementForm())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(41), body["id"])
	require.Len(t, f.achievements.created, 1)
	in := f.achievements.created[0]
	assert.Equal(t, "Shipped v2.", in.Summary)
	assert.Equal(t, 2, in.Order)
	assert.Equal(t, "between us", in.Private)
	assert.Equal(t, []string{"lead", "docs"}, in.Tags)
	assert.Equal(t, 1, f.timeline.invalidations)
}

func TestCreateAchievement_Validation(t *testing.T) {
	f := newFixture()

	fields := achievementForm()
	fields.Del("summary")
	_, body := f.post("/admin/achievements/create", fields)
	assert.Equal(t, "Summary is required", body["error"])

	fields = achievementForm()
	fields.Set("order", "first")
	_, body = f.post("/admin/achievements/create", fields)
	assert.Equal(t, "Invalid form data: order", body["error"])

	fields = achievementForm()
	fields.Set("tags", "loud")
	_, body = f.post("/admin/achievements/create", fields)
	assert.Equal(t, `Invalid form data: tags: unknown tag "loud"`, body["error"])

	assert.Empty(t, f.achievements.created)
}

func TestCreateAchievement_UnknownProject(t *testing.T) {
	f := newFixture()
	f.achievements.err = domain.ErrNotFound

	w, body := f.post("/admin/achievements/create", achievementForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Project not found", body["error"])
}

func TestUpdateAchievement(t *testing.T) {
	f := newFixture()
	fields := achievementForm()
	fields.Set("order", "-7")

	_, body := f.post("/admin/achievements/update", fields)
	assert.Equal(t, "Achievement ID is required", body["error"])

	fields.Set("id", "12")
	w, _ := f.post("/admin/achievements/update", fields)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.achievements.updated, 1)
	assert.Equal(t, int64(12), f.achievements.updated[0].ID)
	assert.Equal(t, -2, f.achievements.updated[0].Order)
}

func TestDropAchievement_IsNoOp(t *testing.T) {
	f := newFixture()
	for _, path := range []string{"/admin/achievements/delete", "/admin/achievements/archive"} {
		w, body := f.post(path, url.Values{"id": {"12"}})
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, true, body["success"])

		_, body = f.post(path, url.Values{})
		assert.Equal(t, "Achievement ID is required", body["error"])
	}
	assert.Zero(t, f.timeline.invalidations)
}

func applicationForm() url.Values {
	return url.Values{
		"url":                     {" ACME "},
		"company":                 {"Acme"},
		"role":                    {"Staff Engineer"},
		"introduction":            {"Hello"},
		"highlightedAchievements": {`[{"id":4,"comment":"see this"},{"id":"x"}]`},
		"defaultCategories":       {"web, ai"},
		"defaultScopes":           {"pro"},
	}
}

func TestCreateApplication(t *testing.T) {
	f := newFixture()
	w, body := f.post("/admin/applications/create", applicationForm())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(9), body["id"])
	require.Len(t, f.applications.created, 1)
	in := f.applications.created[0]
	assert.Equal(t, "acme", in.URL)
	assert.False(t, in.Archived)
	assert.Equal(t, []int64{4}, in.HighlightedAchievementIDs)
	assert.Equal(t, []string{"see this"}, in.HighlightedComments)
	assert.Equal(t, []string{"web", "ai"}, in.DefaultCategories)
	assert.Equal(t, []string{"pro"}, in.DefaultScopes)
}

func TestCreateApplication_MalformedHighlightsDegrade(t *testing.T) {
	f := newFixture()
	fields := applicationForm()
	fields.Set("highlightedAchievements", "{oops")

	w, _ := f.post("/admin/applications/create", fields)
	require.Equal(t, http.StatusOK, w.Code)
	in := f.applications.created[0]
	assert.Equal(t, []int64{}, in.HighlightedAchievementIDs)
	assert.Equal(t, []string{}, in.HighlightedComments)
}

func TestCreateApplication_Validation(t *testing.T) {
	cases := map[string]string{
		"url":                     "URL slug is required",
		"company":                 "Company name is required",
		"role":                    "Role is required",
		"introduction":            "Introduction is required",
		"highlightedAchievements": "Invalid form data: highlightedAchievements",
		"defaultCategories":       "Invalid form data: defaultCategories",
		"defaultScopes":           "Invalid form data: defaultScopes",
	}
	for field, want := range cases {
		t.Run(field, func(t *testing.T) {
			f := newFixture()
			fields := applicationForm()
			fields.Del(field)

			w, body := f.post("/admin/applications/create", fields)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, want, body["error"])
			assert.Empty(t, f.applications.created)
		})
	}
}

func TestCreateApplication_UnknownScope(t *testing.T) {
	f := newFixture()
	fields := applicationForm()
	fields.Set("defaultScopes", "ts")

	_, body := f.post("/admin/applications/create", fields)
	assert.Equal(t, `Invalid form data: defaultScopes: unknown scope "ts"`, body["error"])
	assert.Empty(t, f.applications.created)
}

func TestCreateApplication_SlugTaken(t *testing.T) {
	f := newFixture()
	f.applications.err = appdomain.ErrSlugTaken

	w, body := f.post("/admin/applications/create", applicationForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "URL slug is already in use", body["error"])
}

func TestUpdateApplication(t *testing.T) {
	f := newFixture()
	fields := applicationForm()
	fields.Set("id", "abc")

	_, body := f.post("/admin/applications/update", fields)
	assert.Equal(t, "Invalid application ID", body["error"])

	fields.Set("id", "3")
	fields.Set("archived", "true")
	w, _ := f.post("/admin/applications/update", fields)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.applications.updated, 1)
	assert.Equal(t, int64(3), f.applications.updated[0].ID)
	assert.True(t, f.applications.updated[0].Archived)
}

func TestArchiveAndDeleteApplication(t *testing.T) {
	f := newFixture()

	w, _ := f.post("/admin/applications/archive", url.Values{"id": {"3"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{3}, f.applications.archived)

	w, _ = f.post("/admin/applications/delete", url.Values{"id": {"3"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{3}, f.applications.deleted)
	assert.Equal(t, 2, f.timeline.invalidations)

	_, body := f.post("/admin/applications/delete", url.Values{})
	assert.Equal(t, "Application ID is required", body["error"])

	f.applications.err = appdomain.ErrApplicationNotFound
	w, _ = f.post("/admin/applications/archive", url.Values{"id": {"77"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminReads(t *testing.T) {
	f := newFixture()

	w := f.get("/admin/projects")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"private":"note"`)

	w = f.get("/admin/applications")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["applications"], 1)
	assert.Len(t, body["achievements"], 1)
	assert.Len(t, body["projects"], 1)
}
