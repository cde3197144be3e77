package reward_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

var now = time.Date(2025, 5, 14, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func loyaltyCampaign(active bool) *reward.Campaign {
	return &reward.Campaign{
		ID:     uuid.New(),
		Name:   "Spring loyalty",
		Type:   reward.TypeLoyalty,
		Scope:  reward.ScopeAllClients,
		Active: active,
		Loyalty: &reward.LoyaltyRule{
			Metric:     reward.MetricWalks,
			Window:     reward.GranularityMonth,
			Threshold:  decimal.NewFromInt(5),
			CodePrefix: "LOYAL",
		},
		Redemption: reward.InternalCode{Discount: reward.Discount{
			Type:  reward.DiscountFixed,
			Value: decimal.NewFromInt(10),
		}},
	}
}

func TestService_CreateCampaign(t *testing.T) {
	internal := reward.InternalCode{Discount: reward.Discount{Type: reward.DiscountPercent, Value: decimal.NewFromInt(20)}}
	rule := func() *reward.LoyaltyRule {
		return &reward.LoyaltyRule{
			Metric:     reward.MetricSpend,
			Window:     reward.GranularityQuarter,
			Threshold:  decimal.NewFromInt(200),
			CodePrefix: "vip",
		}
	}

	type testCase struct {
		name    string
		params  reward.CreateCampaignParams
		wantErr error
	}

	tests := []testCase{
		{
			name:   "Loyalty",
			params: reward.CreateCampaignParams{Name: "VIP", Type: reward.TypeLoyalty, Loyalty: rule(), Redemption: internal},
		},
		{
			name: "ExternalPromotion",
			params: reward.CreateCampaignParams{
				Name:       "Partner offer",
				Type:       reward.TypePromotion,
				Redemption: reward.ExternalLink{CTAURL: "https://partner.example.com/offer"},
			},
		},
		{
			name:    "MissingName",
			params:  reward.CreateCampaignParams{Name: "  ", Type: reward.TypeLoyalty, Loyalty: rule(), Redemption: internal},
			wantErr: reward.ErrNameRequired,
		},
		{
			name:    "UnknownType",
			params:  reward.CreateCampaignParams{Name: "X", Type: "RAFFLE", Redemption: internal},
			wantErr: reward.ErrInvalidType,
		},
		{
			name:    "LoyaltyWithoutRule",
			params:  reward.CreateCampaignParams{Name: "X", Type: reward.TypeLoyalty, Redemption: internal},
			wantErr: reward.ErrLoyaltyRequired,
		},
		{
			name:    "RuleOnPromotion",
			params:  reward.CreateCampaignParams{Name: "X", Type: reward.TypePromotion, Loyalty: rule(), Redemption: internal},
			wantErr: reward.ErrLoyaltyNotAllowed,
		},
		{
			name: "ZeroThreshold",
			params: func() reward.CreateCampaignParams {
				r := rule()
				r.Threshold = decimal.Zero
				return reward.CreateCampaignParams{Name: "X", Type: reward.TypeLoyalty, Loyalty: r, Redemption: internal}
			}(),
			wantErr: reward.ErrInvalidThreshold,
		},
		{
			name: "BadPrefix",
			params: func() reward.CreateCampaignParams {
				r := rule()
				r.CodePrefix = "VIP-1"
				return reward.CreateCampaignParams{Name: "X", Type: reward.TypeLoyalty, Loyalty: r, Redemption: internal}
			}(),
			wantErr: reward.ErrInvalidCodePrefix,
		},
		{
			name:    "MissingRedemption",
			params:  reward.CreateCampaignParams{Name: "X", Type: reward.TypeLoyalty, Loyalty: rule()},
			wantErr: reward.ErrRedemptionRequired,
		},
		{
			name: "PercentOver100",
			params: reward.CreateCampaignParams{
				Name: "X", Type: reward.TypePromotion,
				Redemption: reward.InternalCode{Discount: reward.Discount{Type: reward.DiscountPercent, Value: decimal.NewFromInt(120)}},
			},
			wantErr: reward.ErrInvalidDiscount,
		},
		{
			name: "RelativeCTA",
			params: reward.CreateCampaignParams{
				Name: "X", Type: reward.TypeReferral, Redemption: reward.ExternalLink{CTAURL: "/offers/1"},
			},
			wantErr: reward.ErrInvalidCTAURL,
		},
		{
			name: "EndBeforeStart",
			params: reward.CreateCampaignParams{
				Name: "X", Type: reward.TypePromotion, Redemption: internal,
				StartsAt: func() *time.Time { t := now; return &t }(), EndsAt: func() *time.Time { t := now.Add(-time.Hour); return &t }(),
			},
			wantErr: reward.ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := reward.NewMockRepository(ctrl)

			if tt.wantErr == nil {
				repo.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := reward.NewService(repo, reward.WithClock(fixedClock))

			c, err := svc.CreateCampaign(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.False(t, c.Active)
			assert.Equal(t, reward.ScopeAllClients, c.Scope)

			if c.Loyalty != nil {
				assert.Equal(t, "VIP", c.Loyalty.CodePrefix)
			}
		})
	}
}

func TestService_ActivateCampaign(t *testing.T) {
	type testCase struct {
		name      string
		campaign  *reward.Campaign
		setupMock func(repo *reward.MockRepository, c *reward.Campaign)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Loyalty",
			campaign: loyaltyCampaign(false),
			setupMock: func(repo *reward.MockRepository, c *reward.Campaign) {
				repo.EXPECT().ActiveLoyaltyExists(gomock.Any(), c.ID).Return(false, nil)
				repo.EXPECT().SetActive(gomock.Any(), c.ID, true).Return(nil)
			},
		},
		{
			name:     "AnotherLoyaltyActive",
			campaign: loyaltyCampaign(false),
			setupMock: func(repo *reward.MockRepository, c *reward.Campaign) {
				repo.EXPECT().ActiveLoyaltyExists(gomock.Any(), c.ID).Return(true, nil)
			},
			wantErr: reward.ErrLoyaltyAlreadyActive,
		},
		{
			name:     "LostActivationRace",
			campaign: loyaltyCampaign(false),
			setupMock: func(repo *reward.MockRepository, c *reward.Campaign) {
				repo.EXPECT().ActiveLoyaltyExists(gomock.Any(), c.ID).Return(false, nil)
				repo.EXPECT().SetActive(gomock.Any(), c.ID, true).Return(reward.ErrLoyaltyAlreadyActive)
			},
			wantErr: reward.ErrLoyaltyAlreadyActive,
		},
		{
			name:      "AlreadyActive",
			campaign:  loyaltyCampaign(true),
			setupMock: func(*reward.MockRepository, *reward.Campaign) {},
		},
		{
			name: "PromotionSkipsExclusivity",
			campaign: func() *reward.Campaign {
				c := loyaltyCampaign(false)
				c.Type = reward.TypePromotion
				c.Loyalty = nil
				return c
			}(),
			setupMock: func(repo *reward.MockRepository, c *reward.Campaign) {
				repo.EXPECT().SetActive(gomock.Any(), c.ID, true).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := reward.NewMockRepository(ctrl)
			repo.EXPECT().GetCampaign(gomock.Any(), tt.campaign.ID).Return(tt.campaign, nil)
			tt.setupMock(repo, tt.campaign)

			err := reward.NewService(repo).ActivateCampaign(context.Background(), tt.campaign.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, apperr.KindPolicyViolation, apperr.KindOf(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_DeactivateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reward.NewMockRepository(ctrl)
	c := loyaltyCampaign(true)

	repo.EXPECT().GetCampaign(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().SetActive(gomock.Any(), c.ID, false).Return(nil)

	require.NoError(t, reward.NewService(repo).DeactivateCampaign(context.Background(), c.ID))
}

func TestService_RunLoyaltyCalculation_Rejects(t *testing.T) {
	promo := loyaltyCampaign(true)
	promo.Type = reward.TypePromotion
	promo.Loyalty = nil

	ended := loyaltyCampaign(true)
	ended.EndsAt = func() *time.Time { t := now.Add(-time.Minute); return &t }()

	tests := []struct {
		name     string
		campaign *reward.Campaign
		getErr   error
		wantErr  error
		wantKind apperr.Kind
	}{
		{"NotFound", nil, reward.ErrCampaignNotFound, reward.ErrCampaignNotFound, apperr.KindNotFound},
		{"NotLoyalty", promo, nil, reward.ErrNotLoyalty, apperr.KindInvalidState},
		{"Inactive", loyaltyCampaign(false), nil, reward.ErrCampaignNotActive, apperr.KindInvalidState},
		{"Ended", ended, nil, reward.ErrCampaignEnded, apperr.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := reward.NewMockRepository(ctrl)
			repo.EXPECT().GetCampaign(gomock.Any(), gomock.Any()).Return(tt.campaign, tt.getErr)

			_, err := reward.NewService(repo, reward.WithClock(fixedClock)).
				RunLoyaltyCalculation(context.Background(), uuid.New())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}

func TestService_RunLoyaltyCalculation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reward.NewMockRepository(ctrl)
	c := loyaltyCampaign(true)
	jo, ann := uuid.New(), uuid.New()

	repo.EXPECT().GetCampaign(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().EligibleClients(gomock.Any(), reward.EligibilityQuery{
		Metric:    reward.MetricWalks,
		Scope:     reward.ScopeAllClients,
		Since:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Threshold: c.Loyalty.Threshold,
	}).Return([]reward.EligibleClient{
		{ClientID: jo, FirstName: "Jo", LastName: "Smith", Value: decimal.NewFromInt(7)},
		{ClientID: ann, FirstName: "Ann", LastName: "Lee", Value: decimal.NewFromInt(5)},
	}, nil)
	repo.EXPECT().IssueVouchers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vs []*reward.Voucher) (int, error) {
			require.Len(t, vs, 2)
			assert.Equal(t, "LOYALJOSM", vs[0].Code)
			assert.Equal(t, jo, vs[0].ClientID)
			assert.Equal(t, "LOYALANLE", vs[1].Code)

			for _, v := range vs {
				assert.Equal(t, c.ID, v.CampaignID)
				assert.Equal(t, "2025-05", v.WindowKey)
				assert.Equal(t, reward.VoucherInternal, v.Kind)
				assert.Equal(t, reward.VoucherActive, v.Status)
			}

			return 1, nil
		})

	res, err := reward.NewService(repo, reward.WithClock(fixedClock)).RunLoyaltyCalculation(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Eligible)
	assert.Equal(t, 1, res.Issued)
	assert.Equal(t, "2025-05", res.WindowKey)
}

func TestService_RunLoyaltyCalculation_NewClientsScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reward.NewMockRepository(ctrl)
	c := loyaltyCampaign(true)
	c.Scope = reward.ScopeNewClients
	c.EndsAt = func() *time.Time { t := now.Add(24 * time.Hour); return &t }()

	repo.EXPECT().GetCampaign(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().EligibleClients(gomock.Any(), reward.EligibilityQuery{
		Metric:    reward.MetricWalks,
		Scope:     reward.ScopeNewClients,
		Since:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Threshold: c.Loyalty.Threshold,
	}).Return(nil, nil)

	res, err := reward.NewService(repo, reward.WithClock(fixedClock)).RunLoyaltyCalculation(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Zero(t, res.Eligible)
}

func TestService_RunLoyaltyCalculation_NoneEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reward.NewMockRepository(ctrl)
	c := loyaltyCampaign(true)

	repo.EXPECT().GetCampaign(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().EligibleClients(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := reward.NewService(repo, reward.WithClock(fixedClock)).RunLoyaltyCalculation(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Zero(t, res.Eligible)
	assert.Zero(t, res.Issued)
}

// memRepo keeps vouchers in memory with the same uniqueness rule as the database.
type memRepo struct {
	reward.Repository

	mu       sync.Mutex
	campaign *reward.Campaign
	clients  []reward.EligibleClient
	vouchers map[string]*reward.Voucher
}

func (m *memRepo) GetCampaign(context.Context, uuid.UUID) (*reward.Campaign, error) {
	return m.campaign, nil
}

func (m *memRepo) EligibleClients(context.Context, reward.EligibilityQuery) ([]reward.EligibleClient, error) {
	return m.clients, nil
}

func (m *memRepo) IssueVouchers(_ context.Context, vs []*reward.Voucher) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	issued := 0

	for _, v := range vs {
		key := v.CampaignID.String() + "/" + v.ClientID.String() + "/" + v.WindowKey
		if _, ok := m.vouchers[key]; ok {
			continue
		}

		v.ID = uuid.New()
		m.vouchers[key] = v
		issued++
	}

	return issued, nil
}

func TestService_RunLoyaltyCalculation_Idempotent(t *testing.T) {
	repo := &memRepo{
		campaign: loyaltyCampaign(true),
		clients: []reward.EligibleClient{
			{ClientID: uuid.New(), FirstName: "Jo", LastName: "Smith"},
			{ClientID: uuid.New(), FirstName: "Ann", LastName: "Lee"},
		},
		vouchers: map[string]*reward.Voucher{},
	}
	svc := reward.NewService(repo, reward.WithClock(fixedClock))

	first, err := svc.RunLoyaltyCalculation(context.Background(), repo.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Issued)

	second, err := svc.RunLoyaltyCalculation(context.Background(), repo.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Eligible)
	assert.Zero(t, second.Issued)
	assert.Len(t, repo.vouchers, 2)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			_, err := svc.RunLoyaltyCalculation(context.Background(), repo.campaign.ID)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Len(t, repo.vouchers, 2)
}

func TestService_FindVoucher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reward.NewMockRepository(ctrl)
	c := loyaltyCampaign(true)
	clientID := uuid.New()
	v := &reward.Voucher{ID: uuid.New(), CampaignID: c.ID, ClientID: clientID, Code: "LOYALJOSM"}

	repo.EXPECT().FindClientVoucher(gomock.Any(), clientID, "LOYALJOSM").Return(v, nil)
	repo.EXPECT().GetCampaign(gomock.Any(), c.ID).Return(c, nil)

	gotV, gotC, err := reward.NewService(repo).FindVoucher(context.Background(), clientID, " loyaljosm ")
	require.NoError(t, err)
	assert.Equal(t, v, gotV)
	assert.Equal(t, c, gotC)
}
