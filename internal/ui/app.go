package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"erpx/internal/api"
	"erpx/internal/models"
	"erpx/internal/session"
	"erpx/internal/theme"
	"erpx/internal/ui/components"
)

// Model represents the dashboard UI model
type Model struct {
	Client  *api.Client
	Session *session.Controller
	Theme   *theme.Controller

	Viewport viewport.Model
	Spinner  spinner.Model
	Progress progress.Model

	Projects        []models.Project
	Cursor          int
	SelectedProject *models.Project
	Metrics         *models.ProjectMetrics
	WorkOrders      []models.WorkOrder

	IsLoading     bool
	StatusMessage string
	ErrorMessage  string

	// generation stamps each metrics/work-order fetch; responses carrying a
	// stale generation are dropped so the latest selection always wins
	generation int

	Width  int
	Height int
	Ready  bool
}

// NewModel creates a new dashboard model
func NewModel(client *api.Client, sess *session.Controller, themes *theme.Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Client:        client,
		Session:       sess,
		Theme:         themes,
		Spinner:       s,
		Progress:      progress.New(progress.WithDefaultGradient()),
		IsLoading:     true,
		StatusMessage: "Loading projects...",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadProjects(m.Client))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.IsLoading = true
			m.StatusMessage = "Refreshing projects..."
			return m, loadProjects(m.Client)
		case "t":
			m.Theme.Toggle()
			m.refreshContent()
			return m, nil
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.refreshContent()
			}
			return m, nil
		case "down", "j":
			if m.Cursor < len(m.Projects)-1 {
				m.Cursor++
				m.refreshContent()
			}
			return m, nil
		case "enter":
			if m.Cursor >= 0 && m.Cursor < len(m.Projects) {
				selected := m.Projects[m.Cursor]
				m.SelectedProject = &selected
				m.Metrics = nil
				m.WorkOrders = nil
				m.generation++
				m.StatusMessage = fmt.Sprintf("Loading metrics for %s...", selected.Name)
				m.refreshContent()
				return m, tea.Batch(
					loadMetrics(m.Client, selected.ID, m.generation),
					loadWorkOrders(m.Client, selected.ID, m.generation),
				)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, msg.Height-5)
			m.Viewport.YPosition = 2
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - 5
		}
		m.refreshContent()

		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case projectsLoadedMsg:
		m.IsLoading = false
		m.ErrorMessage = ""
		m.Projects = msg
		if m.Cursor >= len(m.Projects) {
			m.Cursor = 0
		}
		m.StatusMessage = fmt.Sprintf("Loaded %d projects", len(msg))
		m.refreshContent()
		return m, nil

	case metricsLoadedMsg:
		if msg.generation != m.generation {
			// Response for a project that is no longer selected
			return m, nil
		}
		m.Metrics = &msg.metrics
		m.StatusMessage = "Ready"
		m.refreshContent()
		return m, nil

	case workOrdersLoadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.WorkOrders = msg.orders
		m.refreshContent()
		return m, nil

	case errorMsg:
		if msg.generation >= 0 && msg.generation != m.generation {
			// Failure of a fetch for a project that is no longer selected
			return m, nil
		}
		m.IsLoading = false
		m.ErrorMessage = msg.message
		m.StatusMessage = "Error"
		m.refreshContent()
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	scheme := m.Theme.Scheme()

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	title := "ERP Dashboard"
	if user := m.Session.CurrentUser(); user != nil {
		title = fmt.Sprintf("ERP Dashboard - %s (%s)", user.Username, user.Role)
	}

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title)).
		Padding(0, 1).
		Render(title)

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Muted)).
		Padding(0, 1).
		Render(status)

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Muted)).
		Padding(0, 1).
		Render("↑/↓ select · enter open · r refresh · t theme · q quit")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Error)).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		m.Viewport.View(),
		errorView,
		help,
	)
}

// refreshContent re-renders the viewport from current state
func (m *Model) refreshContent() {
	if !m.Ready {
		return
	}

	scheme := m.Theme.Scheme()
	listWidth := m.Width / 2
	detailWidth := m.Width - listWidth - 2

	selectedID := 0
	if m.SelectedProject != nil {
		selectedID = m.SelectedProject.ID
	}

	list := components.RenderProjects(m.Projects, m.Cursor, selectedID, listWidth, scheme)
	detail := components.RenderDetail(m.SelectedProject, m.Metrics, m.WorkOrders, m.Progress, detailWidth, scheme)

	m.Viewport.SetContent(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail))
}

// Messages
type projectsLoadedMsg []models.Project

type metricsLoadedMsg struct {
	generation int
	metrics    models.ProjectMetrics
}

type workOrdersLoadedMsg struct {
	generation int
	orders     []models.WorkOrder
}

// errorMsg carries the generation of the selection its fetch belonged to,
// or -1 for fetches that are not tied to a selection.
type errorMsg struct {
	generation int
	message    string
}

// Commands
func loadProjects(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		projects, err := client.GetProjects()
		if err != nil {
			return errorMsg{generation: -1, message: fmt.Sprintf("Failed to load projects: %v", err)}
		}
		return projectsLoadedMsg(projects)
	}
}

func loadMetrics(client *api.Client, projectID, generation int) tea.Cmd {
	return func() tea.Msg {
		metrics, err := client.GetProjectMetrics(projectID)
		if err != nil {
			return errorMsg{generation: generation, message: fmt.Sprintf("Failed to load metrics: %v", err)}
		}
		return metricsLoadedMsg{generation: generation, metrics: *metrics}
	}
}

func loadWorkOrders(client *api.Client, projectID, generation int) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.GetWorkOrders(projectID)
		if err != nil {
			return errorMsg{generation: generation, message: fmt.Sprintf("Failed to load work orders: %v", err)}
		}
		return workOrdersLoadedMsg{generation: generation, orders: orders}
	}
}
