package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpx/internal/api"
	"erpx/internal/models"
	"erpx/internal/session"
	"erpx/internal/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	store := models.NewTokenStore(t.TempDir())
	client := api.NewClient("http://127.0.0.1:0", store)
	sess := session.NewController(client, store)
	return NewModel(client, sess, theme.NewController(t.TempDir()))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func testProjects() []models.Project {
	return []models.Project{
		{ID: 5, Name: "Plant Upgrade", Status: models.ProjectInProgress, EndDate: "2024-06-30"},
		{ID: 8, Name: "Warehouse Move", Status: models.ProjectPlanned, EndDate: "2024-09-15"},
	}
}

func TestProjectsLoadedClearsLoadingAndError(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.ErrorMessage = "stale error"
	assert.True(t, m.IsLoading)

	m, _ = update(t, m, projectsLoadedMsg(testProjects()))

	assert.False(t, m.IsLoading)
	assert.Empty(t, m.ErrorMessage)
	assert.Len(t, m.Projects, 2)
}

func TestFetchErrorKeepsProjects(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))

	m, _ = update(t, m, errorMsg{generation: -1, message: "Failed to load projects: boom"})

	assert.False(t, m.IsLoading)
	assert.Equal(t, "Failed to load projects: boom", m.ErrorMessage)
	// The previous project list survives a failed refresh
	assert.Len(t, m.Projects, 2)
}

func TestSelectingProjectStartsMetricsFetch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.SelectedProject)
	assert.Equal(t, 5, m.SelectedProject.ID)
	assert.Nil(t, m.Metrics)
	assert.Equal(t, 1, m.generation)
	assert.NotNil(t, cmd)
}

func TestStaleMetricsResponseIsDropped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))

	// Select project A, then project B before A's metrics arrive
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.SelectedProject)
	assert.Equal(t, 8, m.SelectedProject.ID)
	assert.Equal(t, 2, m.generation)

	// A's response carries generation 1 and must be ignored
	m, _ = update(t, m, metricsLoadedMsg{generation: 1, metrics: models.ProjectMetrics{ProgressPercentage: 10}})
	assert.Nil(t, m.Metrics)

	// B's response is current and lands
	m, _ = update(t, m, metricsLoadedMsg{generation: 2, metrics: models.ProjectMetrics{ProgressPercentage: 70}})
	require.NotNil(t, m.Metrics)
	assert.Equal(t, 70.0, m.Metrics.ProgressPercentage)
}

func TestStaleWorkOrdersResponseIsDropped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, workOrdersLoadedMsg{generation: 0, orders: []models.WorkOrder{{ID: 1}}})
	assert.Empty(t, m.WorkOrders)

	m, _ = update(t, m, workOrdersLoadedMsg{generation: 1, orders: []models.WorkOrder{{ID: 2}}})
	require.Len(t, m.WorkOrders, 1)
	assert.Equal(t, 2, m.WorkOrders[0].ID)
}

func TestMetricsErrorKeepsSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, errorMsg{generation: 1, message: "Failed to load metrics: boom"})

	assert.Equal(t, "Failed to load metrics: boom", m.ErrorMessage)
	require.NotNil(t, m.SelectedProject)
	assert.Equal(t, 5, m.SelectedProject.ID)
}

func TestStaleFetchErrorIsDropped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))

	// Select project A, then project B; A's fetch fails afterwards
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, errorMsg{generation: 1, message: "Failed to load metrics: boom"})
	assert.Empty(t, m.ErrorMessage)

	// A failure for the current selection still surfaces
	m, _ = update(t, m, errorMsg{generation: 2, message: "Failed to load metrics: boom"})
	assert.Equal(t, "Failed to load metrics: boom", m.ErrorMessage)
}

func TestReselectionClearsPriorMetrics(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, projectsLoadedMsg(testProjects()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, metricsLoadedMsg{generation: 1, metrics: models.ProjectMetrics{ProgressPercentage: 40}})
	require.NotNil(t, m.Metrics)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.Metrics)
	assert.Empty(t, m.WorkOrders)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestThemeToggleKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, theme.ModeLight, m.Theme.Mode())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})

	assert.Equal(t, theme.ModeDark, m.Theme.Mode())
}
