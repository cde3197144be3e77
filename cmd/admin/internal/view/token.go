package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
)

// TokenModel mints session tokens for support and local testing.
type TokenModel struct {
	auth  *auth.Authenticator
	form  *huh.Form
	input *tokenInput

	token  string
	cookie string
	err    error
}

type tokenInput struct {
	userID string
	role   auth.Role
	ttl    time.Duration
}

func NewTokenModel(a *auth.Authenticator) TokenModel {
	m := TokenModel{auth: a, input: &tokenInput{role: auth.RoleClient, ttl: 24 * time.Hour}}
	m.form = m.newForm()

	return m
}

func (m TokenModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Value(&m.input.userID).
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("enter a UUID")
					}

					return nil
				}),
			huh.NewSelect[auth.Role]().
				Title("Role").
				Options(
					huh.NewOption("Client", auth.RoleClient),
					huh.NewOption("Walker", auth.RoleWalker),
					huh.NewOption("Admin", auth.RoleAdmin),
				).
				Value(&m.input.role),
			huh.NewSelect[time.Duration]().
				Title("Valid for").
				Options(
					huh.NewOption("1 hour", time.Hour),
					huh.NewOption("1 day", 24*time.Hour),
					huh.NewOption("7 days", 7*24*time.Hour),
				).
				Value(&m.input.ttl),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m TokenModel) Title() string     { return "Session Token" }
func (m TokenModel) ShortHelp() string { return "Esc: back" }

func (m TokenModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	if m.token != "" || m.err != nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.issue(auth.Identity{UserID: uuid.MustParse(strings.TrimSpace(m.input.userID)), Role: m.input.role}, m.input.ttl)

	return m, nil
}

func (m *TokenModel) issue(id auth.Identity, ttl time.Duration) {
	m.token, m.err = m.auth.Sign(id, ttl)
	if m.err != nil {
		return
	}

	m.cookie = m.auth.Cookie(m.token, ttl).String()
}

func (m TokenModel) View() string {
	switch {
	case m.err != nil:
		return padded(fmt.Sprintf("Error: %v", m.err))
	case m.token != "":
		return padded(fmt.Sprintf("Token for %s (%s)\n\nSet-Cookie: %s\n\nAuthorization: Bearer %s",
			m.input.userID, m.input.role, m.cookie, m.token))
	default:
		return padded(panel("Issue Session Token", m.form.View()))
	}
}
