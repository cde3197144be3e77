package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

type campaignState int

const (
	campaignStateBrowse campaignState = iota
	campaignStateConfirmRun
	campaignStateCreate
)

type CampaignsModel struct {
	svc *reward.Service

	state     campaignState
	table     table.Model
	campaigns []*reward.Campaign
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Held by pointer so copies of the model share what the form writes.
	input *campaignInput
}

type campaignInput struct {
	confirm  bool
	name     string
	metric   reward.Metric
	window   reward.Granularity
	thresh   string
	prefix   string
	discType reward.DiscountType
	discVal  string
}

func NewCampaignsModel(svc *reward.Service) CampaignsModel {
	return CampaignsModel{
		svc: svc,
		table: newTable([]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Type", Width: 10},
			{Title: "Active", Width: 7},
			{Title: "Rule", Width: 30},
			{Title: "Redemption", Width: 30},
		}),
		loading: true,
	}
}

func (m CampaignsModel) Title() string { return "Reward Campaigns" }

func (m CampaignsModel) ShortHelp() string {
	if m.state != campaignStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new loyalty | a: activate | d: deactivate | r: run loyalty | g: refresh"
}

func (m CampaignsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CampaignsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCampaignsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.campaigns = msg.campaigns
		m.refreshTable()

		return m, nil

	case campaignActionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.backToBrowse()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == campaignStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m CampaignsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "g":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterCreate()
		case "a":
			if c := m.selected(); c != nil {
				return m, m.activateCmd(c, true)
			}
		case "d":
			if c := m.selected(); c != nil {
				return m, m.activateCmd(c, false)
			}
		case "r":
			if c := m.selected(); c != nil {
				return m.enterConfirmRun(c)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CampaignsModel) selected() *reward.Campaign {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.campaigns) {
		return nil
	}

	return m.campaigns[idx]
}

func (m CampaignsModel) enterConfirmRun(c *reward.Campaign) (tea.Model, tea.Cmd) {
	m.input = &campaignInput{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Run loyalty calculation for %q?", c.Name)).
				Description("Vouchers already issued this window are left as they are.").
				Affirmative("Run").
				Negative("Cancel").
				Value(&m.input.confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = campaignStateConfirmRun
	m.table.Blur()

	return m, m.form.Init()
}

func (m CampaignsModel) enterCreate() (tea.Model, tea.Cmd) {
	m.input = &campaignInput{
		metric:   reward.MetricWalks,
		window:   reward.GranularityMonth,
		prefix:   "LOYAL",
		discType: reward.DiscountFixed,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.input.name).Validate(notEmpty("name")),
			huh.NewSelect[reward.Metric]().
				Title("Metric").
				Options(
					huh.NewOption("Completed walks", reward.MetricWalks),
					huh.NewOption("Spend", reward.MetricSpend),
				).
				Value(&m.input.metric),
			huh.NewSelect[reward.Granularity]().
				Title("Window").
				Options(
					huh.NewOption("Month", reward.GranularityMonth),
					huh.NewOption("Quarter", reward.GranularityQuarter),
					huh.NewOption("Six months", reward.GranularitySixMonth),
					huh.NewOption("Twelve months", reward.GranularityTwelveMonth),
				).
				Value(&m.input.window),
			huh.NewInput().Title("Threshold").Value(&m.input.thresh).Validate(positiveDecimal),
			huh.NewInput().Title("Code prefix").Value(&m.input.prefix).Validate(notEmpty("prefix")),
		),
		huh.NewGroup(
			huh.NewSelect[reward.DiscountType]().
				Title("Discount").
				Options(
					huh.NewOption("Fixed amount", reward.DiscountFixed),
					huh.NewOption("Percent", reward.DiscountPercent),
				).
				Value(&m.input.discType),
			huh.NewInput().Title("Value").Value(&m.input.discVal).Validate(positiveDecimal),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = campaignStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m CampaignsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	switch m.state {
	case campaignStateConfirmRun:
		if m.input.confirm {
			next = m.runCmd(m.selected())
		}
	case campaignStateCreate:
		next = m.createCmd()
	}

	m.backToBrowse()

	return m, next
}

func (m *CampaignsModel) backToBrowse() {
	m.state = campaignStateBrowse
	m.form = nil
	m.input = nil
	m.table.Focus()
}

func (m CampaignsModel) View() string {
	if m.loading {
		return padded("Loading campaigns...")
	}

	if m.err != nil {
		return padded(fmt.Sprintf("Error: %v", m.err))
	}

	content := framed(m.table.View())

	switch {
	case m.state == campaignStateConfirmRun && m.form != nil:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel("Run Loyalty", m.form.View()))
	case m.state == campaignStateCreate && m.form != nil:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel("New Loyalty Campaign", m.form.View()))
	}

	if m.status != "" {
		content = faint(m.status) + "\n" + content
	}

	return padded(content)
}

func (m *CampaignsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		active := ""
		if c.Active {
			active = "yes"
		}

		rows = append(rows, table.Row{c.Name, string(c.Type), active, describeRule(c.Loyalty), describeRedemption(c.Redemption)})
	}

	m.table.SetRows(rows)
}

func describeRule(l *reward.LoyaltyRule) string {
	if l == nil {
		return "-"
	}

	return fmt.Sprintf("%s >= %s per %s (%s)", l.Metric, l.Threshold.String(), strings.ToLower(string(l.Window)), l.CodePrefix)
}

func describeRedemption(r reward.Redemption) string {
	switch r := r.(type) {
	case reward.InternalCode:
		if r.Discount.Type == reward.DiscountPercent {
			return r.Discount.Value.String() + "% off"
		}

		return FormatMoney(r.Discount.Value) + " off"
	case reward.ExternalLink:
		return r.CTAURL
	default:
		return "-"
	}
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}

		return nil
	}
}

func positiveDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return fmt.Errorf("enter a positive number")
	}

	return nil
}

// Messages

type loadCampaignsMsg struct {
	campaigns []*reward.Campaign
	err       error
}

type campaignActionMsg struct {
	status string
	err    error
}

func (m CampaignsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		campaigns, err := m.svc.ListCampaigns(ctx)

		return loadCampaignsMsg{campaigns: campaigns, err: err}
	}
}

func (m CampaignsModel) activateCmd(c *reward.Campaign, active bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if active {
			if err := m.svc.ActivateCampaign(ctx, c.ID); err != nil {
				return campaignActionMsg{err: err}
			}

			return campaignActionMsg{status: fmt.Sprintf("Activated %q", c.Name)}
		}

		if err := m.svc.DeactivateCampaign(ctx, c.ID); err != nil {
			return campaignActionMsg{err: err}
		}

		return campaignActionMsg{status: fmt.Sprintf("Deactivated %q", c.Name)}
	}
}

func (m CampaignsModel) runCmd(c *reward.Campaign) tea.Cmd {
	if c == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.RunLoyaltyCalculation(ctx, c.ID)
		if err != nil {
			return campaignActionMsg{err: err}
		}

		return campaignActionMsg{status: fmt.Sprintf(
			"%s window %s: %d eligible, %d new vouchers", c.Name, res.WindowKey, res.Eligible, res.Issued)}
	}
}

func (m CampaignsModel) createCmd() tea.Cmd {
	params := reward.CreateCampaignParams{
		Name: m.input.name,
		Type: reward.TypeLoyalty,
		Loyalty: &reward.LoyaltyRule{
			Metric:     m.input.metric,
			Window:     m.input.window,
			Threshold:  decimal.RequireFromString(strings.TrimSpace(m.input.thresh)),
			CodePrefix: m.input.prefix,
		},
		Redemption: reward.InternalCode{Discount: reward.Discount{
			Type:  m.input.discType,
			Value: decimal.RequireFromString(strings.TrimSpace(m.input.discVal)),
		}},
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.svc.CreateCampaign(ctx, params)
		if err != nil {
			return campaignActionMsg{err: err}
		}

		return campaignActionMsg{status: fmt.Sprintf("Created %q (inactive)", c.Name)}
	}
}
