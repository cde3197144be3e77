package view

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

func TestCampaignsModel_Load(t *testing.T) {
	m := NewCampaignsModel(nil)

	updated, _ := m.Update(loadCampaignsMsg{campaigns: []*reward.Campaign{
		{
			ID:     uuid.New(),
			Name:   "Loyal walkers",
			Type:   reward.TypeLoyalty,
			Active: true,
			Loyalty: &reward.LoyaltyRule{
				Metric:     reward.MetricWalks,
				Window:     reward.GranularityQuarter,
				Threshold:  decimal.NewFromInt(10),
				CodePrefix: "LOYAL",
			},
			Redemption: reward.InternalCode{Discount: reward.Discount{Type: reward.DiscountPercent, Value: decimal.NewFromInt(15)}},
		},
		{
			ID:         uuid.New(),
			Name:       "Partner treats",
			Type:       reward.TypePromotion,
			Redemption: reward.ExternalLink{CTAURL: "https://treats.example.com"},
		},
	}})

	cm, ok := updated.(CampaignsModel)
	require.True(t, ok)
	assert.False(t, cm.loading)

	rows := cm.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "yes", rows[0][2])
	assert.Equal(t, "WALKS >= 10 per quarter (LOYAL)", rows[0][3])
	assert.Equal(t, "15% off", rows[0][4])
	assert.Equal(t, "-", rows[1][3])
	assert.Equal(t, "https://treats.example.com", rows[1][4])
}

func TestCampaignsModel_ActionError(t *testing.T) {
	m := NewCampaignsModel(nil)
	m.loading = false

	updated, cmd := m.Update(campaignActionMsg{err: errors.New("another loyalty campaign is already active")})

	cm := updated.(CampaignsModel)
	assert.Contains(t, cm.status, "another loyalty campaign is already active")
	assert.Equal(t, campaignStateBrowse, cm.state)
	assert.NotNil(t, cmd)
}

func TestPositiveDecimal(t *testing.T) {
	assert.NoError(t, positiveDecimal("12.5"))
	assert.Error(t, positiveDecimal("0"))
	assert.Error(t, positiveDecimal("-3"))
	assert.Error(t, positiveDecimal("ten"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "7.50", FormatMoney(decimal.RequireFromString("7.5")))
}
