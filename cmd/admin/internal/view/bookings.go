package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/booking"
)

type pendingState int

const (
	pendingStateBrowse pendingState = iota
	pendingStateApprove
	pendingStateReject
)

// PendingModel lists bookings waiting for an admin decision.
type PendingModel struct {
	svc     *booking.Service
	adminID uuid.UUID

	state    pendingState
	table    table.Model
	bookings []*booking.Booking
	form     *huh.Form
	input    *decisionInput

	loading bool
	err     error
	status  string
}

type decisionInput struct {
	confirm bool
	notes   string
}

func NewPendingModel(svc *booking.Service, adminID uuid.UUID) PendingModel {
	return PendingModel{
		svc:     svc,
		adminID: adminID,
		table: newTable([]table.Column{
			{Title: "Starts", Width: 17},
			{Title: "Service", Width: 13},
			{Title: "Client", Width: 36},
			{Title: "Pets", Width: 5},
			{Title: "Notes", Width: 30},
		}),
		loading: true,
	}
}

func (m PendingModel) Title() string { return "Pending Bookings" }

func (m PendingModel) ShortHelp() string {
	if m.state != pendingStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | enter: approve | x: reject | g: refresh"
}

func (m PendingModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PendingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPendingMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.bookings = msg.bookings
		m.refreshTable()

		return m, nil

	case decisionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == pendingStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m PendingModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "g":
			m.loading = true
			return m, m.loadCmd()
		case "enter", "x":
			if m.selected() == nil {
				break
			}

			if m.adminID == uuid.Nil {
				m.status = "Decisions are disabled: set ADMIN_USER_ID to your admin user id"
				return m, nil
			}

			if keyMsg.String() == "x" {
				return m.enterDecision(pendingStateReject)
			}

			return m.enterDecision(pendingStateApprove)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PendingModel) selected() *booking.Booking {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.bookings) {
		return nil
	}

	return m.bookings[idx]
}

func (m PendingModel) enterDecision(state pendingState) (tea.Model, tea.Cmd) {
	m.input = &decisionInput{}

	title := "Approve this booking?"
	if state == pendingStateReject {
		title = "Reject this booking? It is cancelled and cannot be approved later."
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				CharLimit(1000).
				Value(&m.input.notes),
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&m.input.confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = state
	m.table.Blur()

	return m, m.form.Init()
}

func (m PendingModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.backToBrowse()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	var next tea.Cmd
	if m.input.confirm {
		next = m.decideCmd(m.selected(), m.state == pendingStateApprove, strings.TrimSpace(m.input.notes))
	}

	m.backToBrowse()

	return m, next
}

func (m *PendingModel) backToBrowse() {
	m.state = pendingStateBrowse
	m.form = nil
	m.input = nil
	m.table.Focus()
}

func (m PendingModel) View() string {
	if m.loading {
		return padded("Loading pending bookings...")
	}

	if m.err != nil {
		return padded(fmt.Sprintf("Error: %v", m.err))
	}

	content := framed(m.table.View())
	if len(m.bookings) == 0 {
		content = faint("Nothing waiting for approval.") + "\n" + content
	}

	if m.form != nil {
		title := "Approve Booking"
		if m.state == pendingStateReject {
			title = "Reject Booking"
		}

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel(title, m.form.View()))
	}

	if m.status != "" {
		content = faint(m.status) + "\n" + content
	}

	return padded(content)
}

func (m *PendingModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.bookings))
	for _, b := range m.bookings {
		rows = append(rows, table.Row{
			FormatDateTime(b.StartsAt),
			string(b.ServiceType),
			b.ClientID.String(),
			fmt.Sprintf("%d", len(b.PetIDs)),
			b.Notes,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadPendingMsg struct {
	bookings []*booking.Booking
	err      error
}

type decisionMsg struct {
	status string
	err    error
}

func (m PendingModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		bookings, err := m.svc.ListPendingBookings(ctx)

		return loadPendingMsg{bookings: bookings, err: err}
	}
}

func (m PendingModel) decideCmd(b *booking.Booking, approve bool, notes string) tea.Cmd {
	if b == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if approve {
			if err := m.svc.ApproveBooking(ctx, b.ID, m.adminID, notes); err != nil {
				return decisionMsg{err: err}
			}

			return decisionMsg{status: "Booking approved"}
		}

		if err := m.svc.RejectBooking(ctx, b.ID, m.adminID, notes); err != nil {
			return decisionMsg{err: err}
		}

		return decisionMsg{status: "Booking rejected"}
	}
}
