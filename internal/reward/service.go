package reward

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reward
type Repository interface {
	CreateCampaign(ctx context.Context, c *Campaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*Campaign, error)
	ListCampaigns(ctx context.Context) ([]*Campaign, error)
	// ActiveLoyaltyExists reports whether a loyalty campaign other than exclude is active.
	ActiveLoyaltyExists(ctx context.Context, exclude uuid.UUID) (bool, error)
	// SetActive returns ErrLoyaltyAlreadyActive when activation would break loyalty exclusivity.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	EligibleClients(ctx context.Context, q EligibilityQuery) ([]EligibleClient, error)
	// IssueVouchers inserts the vouchers, skipping any whose (campaign, client, window)
	// already exists. It returns how many were inserted.
	IssueVouchers(ctx context.Context, vouchers []*Voucher) (int, error)
	ListClientVouchers(ctx context.Context, clientID uuid.UUID) ([]*Voucher, error)
	FindClientVoucher(ctx context.Context, clientID uuid.UUID, code string) (*Voucher, error)
}

// EligibilityQuery selects clients whose metric total since Since reaches Threshold.
// With ScopeNewClients only clients who signed up at or after Since are considered.
type EligibilityQuery struct {
	Metric    Metric
	Scope     Scope
	Since     time.Time
	Threshold decimal.Decimal
}

type Service struct {
	repo Repository
	now  func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateCampaignParams struct {
	Name       string
	Type       Type
	Scope      Scope
	StartsAt   *time.Time
	EndsAt     *time.Time
	Loyalty    *LoyaltyRule
	Redemption Redemption
}

// CreateCampaign stores a new, inactive campaign.
func (s *Service) CreateCampaign(ctx context.Context, params CreateCampaignParams) (*Campaign, error) {
	c := &Campaign{
		Name:       strings.TrimSpace(params.Name),
		Type:       params.Type,
		Scope:      params.Scope,
		StartsAt:   params.StartsAt,
		EndsAt:     params.EndsAt,
		Loyalty:    params.Loyalty,
		Redemption: params.Redemption,
	}
	if c.Scope == "" {
		c.Scope = ScopeAllClients
	}

	if c.Loyalty != nil {
		c.Loyalty.CodePrefix = upper.String(strings.TrimSpace(c.Loyalty.CodePrefix))
	}

	if err := validateCampaign(c); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func validateCampaign(c *Campaign) error {
	if c.Name == "" {
		return ErrNameRequired
	}

	if !c.Type.Valid() {
		return ErrInvalidType
	}

	if c.Scope != ScopeAllClients && c.Scope != ScopeNewClients {
		return ErrInvalidScope
	}

	if c.StartsAt != nil && c.EndsAt != nil && !c.EndsAt.After(*c.StartsAt) {
		return ErrInvalidPeriod
	}

	switch {
	case c.Type == TypeLoyalty && c.Loyalty == nil:
		return ErrLoyaltyRequired
	case c.Type != TypeLoyalty && c.Loyalty != nil:
		return ErrLoyaltyNotAllowed
	case c.Loyalty != nil:
		if err := c.Loyalty.validate(); err != nil {
			return err
		}
	}

	if c.Redemption == nil {
		return ErrRedemptionRequired
	}

	return c.Redemption.validate()
}

// ActivateCampaign turns a campaign on. At most one LOYALTY campaign may be active;
// the store enforces the same rule so concurrent activations cannot both succeed.
func (s *Service) ActivateCampaign(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}

	if c.Active {
		return nil
	}

	if c.Type == TypeLoyalty {
		exists, err := s.repo.ActiveLoyaltyExists(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("check active loyalty: %w", err)
		}

		if exists {
			return ErrLoyaltyAlreadyActive
		}
	}

	return s.repo.SetActive(ctx, c.ID, true)
}

func (s *Service) DeactivateCampaign(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}

	if !c.Active {
		return nil
	}

	return s.repo.SetActive(ctx, c.ID, false)
}

func (s *Service) GetCampaign(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	return s.repo.GetCampaign(ctx, id)
}

func (s *Service) ListCampaigns(ctx context.Context) ([]*Campaign, error) {
	return s.repo.ListCampaigns(ctx)
}

// RunResult summarizes one loyalty calculation.
type RunResult struct {
	CampaignID uuid.UUID
	WindowKey  string
	Eligible   int
	Issued     int
}

// RunLoyaltyCalculation grants a voucher to every client whose activity in the current
// window reaches the campaign threshold. Running it again in the same window issues
// nothing new; Eligible still reports every qualifying client.
func (s *Service) RunLoyaltyCalculation(ctx context.Context, campaignID uuid.UUID) (*RunResult, error) {
	c, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if c.Type != TypeLoyalty || c.Loyalty == nil {
		return nil, ErrNotLoyalty
	}

	if !c.Active {
		return nil, ErrCampaignNotActive
	}

	now := s.now()
	if c.Expired(now) {
		return nil, ErrCampaignEnded
	}

	window, err := WindowFor(now, c.Loyalty.Window)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.EligibleClients(ctx, EligibilityQuery{
		Metric:    c.Loyalty.Metric,
		Scope:     c.Scope,
		Since:     window.Start,
		Threshold: c.Loyalty.Threshold,
	})
	if err != nil {
		return nil, fmt.Errorf("find eligible clients: %w", err)
	}

	res := &RunResult{CampaignID: c.ID, WindowKey: window.Key, Eligible: len(clients)}
	if len(clients) == 0 {
		return res, nil
	}

	kind := kindFor(c.Redemption)
	vouchers := make([]*Voucher, 0, len(clients))

	for _, cl := range clients {
		vouchers = append(vouchers, &Voucher{
			CampaignID: c.ID,
			ClientID:   cl.ClientID,
			Code:       VoucherCode(c.Loyalty.CodePrefix, cl.FirstName, cl.LastName),
			Kind:       kind,
			WindowKey:  window.Key,
			Status:     VoucherActive,
		})
	}

	res.Issued, err = s.repo.IssueVouchers(ctx, vouchers)
	if err != nil {
		return nil, fmt.Errorf("issue vouchers: %w", err)
	}

	return res, nil
}

func (s *Service) ListClientVouchers(ctx context.Context, clientID uuid.UUID) ([]*Voucher, error) {
	return s.repo.ListClientVouchers(ctx, clientID)
}

// FindVoucher returns the client's voucher with the given code together with the
// campaign that issued it.
func (s *Service) FindVoucher(ctx context.Context, clientID uuid.UUID, code string) (*Voucher, *Campaign, error) {
	v, err := s.repo.FindClientVoucher(ctx, clientID, upper.String(strings.TrimSpace(code)))
	if err != nil {
		return nil, nil, err
	}

	c, err := s.repo.GetCampaign(ctx, v.CampaignID)
	if err != nil {
		return nil, nil, err
	}

	return v, c, nil
}
