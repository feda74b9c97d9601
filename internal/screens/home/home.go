package home

import (
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tenfold/internal/config"
	"github.com/abhisek/tenfold/internal/problemgen"
	"github.com/abhisek/tenfold/internal/router"
	"github.com/abhisek/tenfold/internal/screen"
	sessionscreen "github.com/abhisek/tenfold/internal/screens/session"
	settingsscreen "github.com/abhisek/tenfold/internal/screens/settings"
	"github.com/abhisek/tenfold/internal/ui/components"
	"github.com/abhisek/tenfold/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu     components.Menu
	settings *config.Settings
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. settings is shared with the settings
// screen, so edits show up here when it is popped.
func New(settings *config.Settings, generator problemgen.Generator) *HomeScreen {
	h := &HomeScreen{settings: settings}

	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return h.startDrill(generator)
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settingsscreen.New(settings)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// startDrill pushes a drill built from the current settings. Invalid
// settings keep the learner on the home screen, where the problem is shown.
func (h *HomeScreen) startDrill(generator problemgen.Generator) tea.Cmd {
	cfg, err := h.settings.SessionConfig()
	if err != nil {
		log.Printf("start drill: %v", err)
		return nil
	}
	policy, err := h.settings.AdvancePolicy()
	if err != nil {
		log.Printf("start drill: %v", err)
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sessionscreen.New(cfg, policy, generator)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.RootReturnedMsg); ok {
		// Back from a result screen: offer another drill first.
		h.menu.Reset()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)
	settingsErr := h.settings.Validate()

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		if settingsErr != nil {
			variant = MascotAlert
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	advance := ""
	if policy, err := h.settings.AdvancePolicy(); err == nil {
		advance = policy.DisplayName()
	}
	sections = append(sections, renderSetupCard(h.settings.Describe(), advance, cw, compact))

	if settingsErr != nil {
		sections = append(sections, renderSettingsError(settingsErr, cw))
	}

	sections = append(sections, components.ArcadeMenu(
		h.menu.Labels(), h.menu.Selected, cw, compact))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
