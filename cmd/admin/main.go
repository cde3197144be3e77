package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/walkies/cmd/admin/internal/view"
	"github.com/MrJamesThe3rd/walkies/internal/booking"
	bookingStore "github.com/MrJamesThe3rd/walkies/internal/booking/store"
	"github.com/MrJamesThe3rd/walkies/internal/config"
	"github.com/MrJamesThe3rd/walkies/internal/database"
	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
	"github.com/MrJamesThe3rd/walkies/internal/reward"
	rewardStore "github.com/MrJamesThe3rd/walkies/internal/reward/store"
)

type model struct {
	cfg            *config.Config
	bookingService *booking.Service
	rewardService  *reward.Service
	authenticator  *auth.Authenticator

	currentView View
	active      view.View
}

type View int

const (
	ViewMenu View = iota
	ViewCampaigns
	ViewPending
	ViewToken
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	return model{
		cfg:            cfg,
		bookingService: booking.NewService(bookingStore.New(db), booking.WithLeadTime(cfg.Booking.LeadTime)),
		rewardService:  reward.NewService(rewardStore.New(db)),
		authenticator:  auth.New(cfg.Auth.JWTSecret, cfg.Auth.CookieName),
		currentView:    ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				return m.open(ViewCampaigns, view.NewCampaignsModel(m.rewardService))
			case "2":
				return m.open(ViewPending, view.NewPendingModel(m.bookingService, m.cfg.Admin.UserID))
			case "3":
				return m.open(ViewToken, view.NewTokenModel(m.authenticator))
			}

			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	newModel, cmd := m.active.Update(msg)
	m.active = newModel.(view.View)

	return m, cmd
}

func (m model) open(v View, screen view.View) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.active = screen

	return m, screen.Init()
}

var helpStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(1)

func (m model) View() string {
	if m.currentView == ViewMenu || m.active == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			m.cfg.App.Name + " Admin\n\n" +
				"1. Reward Campaigns\n" +
				"2. Pending Bookings\n" +
				"3. Issue Session Token\n\n" +
				"q. Quit",
		)
	}

	title := lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render(m.active.Title())

	return lipgloss.JoinVertical(lipgloss.Left, title, m.active.View(), helpStyle.Render(m.active.ShortHelp()))
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run admin console", "error", err)
		os.Exit(1)
	}
}
