package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/database"
	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

const oneActiveLoyaltyIndex = "reward_campaigns_one_active_loyalty"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCampaignColumns = `
	id, name, type, scope, active, starts_at, ends_at,
	metric, window_granularity, threshold, code_prefix,
	redemption_mode, discount_type, discount_value, cta_url,
	created_at, updated_at
`

func scanCampaign(s scanner) (*reward.Campaign, error) {
	var c reward.Campaign

	var typ, scope, mode string

	var metric, window, prefix, discountType, ctaURL sql.NullString

	var threshold, discountValue decimal.NullDecimal

	if err := s.Scan(
		&c.ID, &c.Name, &typ, &scope, &c.Active, &c.StartsAt, &c.EndsAt,
		&metric, &window, &threshold, &prefix,
		&mode, &discountType, &discountValue, &ctaURL,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = reward.Type(typ)
	c.Scope = reward.Scope(scope)

	if metric.Valid {
		c.Loyalty = &reward.LoyaltyRule{
			Metric:     reward.Metric(metric.String),
			Window:     reward.Granularity(window.String),
			Threshold:  threshold.Decimal,
			CodePrefix: prefix.String,
		}
	}

	switch reward.RedemptionMode(mode) {
	case reward.RedemptionInternalCode:
		c.Redemption = reward.InternalCode{Discount: reward.Discount{
			Type:  reward.DiscountType(discountType.String),
			Value: discountValue.Decimal,
		}}
	case reward.RedemptionExternalLink:
		c.Redemption = reward.ExternalLink{CTAURL: ctaURL.String}
	default:
		return nil, fmt.Errorf("unknown redemption mode %q", mode)
	}

	return &c, nil
}

func (s *Store) CreateCampaign(ctx context.Context, c *reward.Campaign) error {
	query := `
		INSERT INTO reward_campaigns (
			name, type, scope, active, starts_at, ends_at,
			metric, window_granularity, threshold, code_prefix,
			redemption_mode, discount_type, discount_value, cta_url, created_at
		)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id, created_at
	`

	var metric, window, prefix, discountType, ctaURL sql.NullString

	var threshold, discountValue decimal.NullDecimal

	if l := c.Loyalty; l != nil {
		metric = sql.NullString{String: string(l.Metric), Valid: true}
		window = sql.NullString{String: string(l.Window), Valid: true}
		threshold = decimal.NewNullDecimal(l.Threshold)
		prefix = sql.NullString{String: l.CodePrefix, Valid: true}
	}

	switch r := c.Redemption.(type) {
	case reward.InternalCode:
		discountType = sql.NullString{String: string(r.Discount.Type), Valid: true}
		discountValue = decimal.NewNullDecimal(r.Discount.Value)
	case reward.ExternalLink:
		ctaURL = sql.NullString{String: r.CTAURL, Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Type, c.Scope, c.StartsAt, c.EndsAt,
		metric, window, threshold, prefix,
		c.Redemption.Mode(), discountType, discountValue, ctaURL,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return apperr.Storage("creating campaign", err)
	}

	c.Active = false

	return nil
}

func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*reward.Campaign, error) {
	query := `SELECT ` + selectCampaignColumns + ` FROM reward_campaigns WHERE id = $1`

	c, err := scanCampaign(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reward.ErrCampaignNotFound
		}

		return nil, apperr.Storage("getting campaign", err)
	}

	return c, nil
}

func (s *Store) ListCampaigns(ctx context.Context) ([]*reward.Campaign, error) {
	query := `SELECT ` + selectCampaignColumns + ` FROM reward_campaigns ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperr.Storage("listing campaigns", err)
	}
	defer rows.Close()

	var campaigns []*reward.Campaign

	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, apperr.Storage("scanning campaign", err)
		}

		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating campaigns", err)
	}

	return campaigns, nil
}

func (s *Store) ActiveLoyaltyExists(ctx context.Context, exclude uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reward_campaigns
			WHERE type = $1 AND active AND id <> $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, reward.TypeLoyalty, exclude).Scan(&exists); err != nil {
		return false, apperr.Storage("checking active loyalty campaign", err)
	}

	return exists, nil
}

func (s *Store) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE reward_campaigns SET active = $2, updated_at = NOW() WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, active)
	if err != nil {
		if database.IsUniqueViolation(err, oneActiveLoyaltyIndex) {
			return reward.ErrLoyaltyAlreadyActive
		}

		return apperr.Storage("updating campaign", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("updating campaign", err)
	}

	if n == 0 {
		return reward.ErrCampaignNotFound
	}

	return nil
}

// EligibleClients aggregates per-client activity since q.Since. WALKS counts completed
// bookings that started in the window; SPEND sums the discounted totals of invoices
// paid in the window. NEW_CLIENTS scope also requires the client to have signed up
// within the window.
func (s *Store) EligibleClients(ctx context.Context, q reward.EligibilityQuery) ([]reward.EligibleClient, error) {
	var query string

	switch q.Metric {
	case reward.MetricWalks:
		query = `
			SELECT c.id, c.first_name, c.last_name, COUNT(b.id)::numeric AS total
			FROM bookings b
			JOIN clients c ON c.id = b.client_id
			WHERE b.status = 'completed' AND b.starts_at >= $1
				AND ($3::text <> 'NEW_CLIENTS' OR c.created_at >= $1)
			GROUP BY c.id, c.first_name, c.last_name
			HAVING COUNT(b.id) >= $2::numeric
			ORDER BY c.last_name, c.first_name
		`
	case reward.MetricSpend:
		query = `
			SELECT c.id, c.first_name, c.last_name, SUM(i.total_after_discount) AS total
			FROM invoices i
			JOIN clients c ON c.id = i.client_id
			WHERE i.status = 'paid' AND i.paid_at >= $1
				AND ($3::text <> 'NEW_CLIENTS' OR c.created_at >= $1)
			GROUP BY c.id, c.first_name, c.last_name
			HAVING SUM(i.total_after_discount) >= $2::numeric
			ORDER BY c.last_name, c.first_name
		`
	default:
		return nil, reward.ErrInvalidMetric
	}

	rows, err := s.db.QueryContext(ctx, query, q.Since, q.Threshold, string(q.Scope))
	if err != nil {
		return nil, apperr.Storage("querying eligible clients", err)
	}
	defer rows.Close()

	var clients []reward.EligibleClient

	for rows.Next() {
		var ec reward.EligibleClient
		if err := rows.Scan(&ec.ClientID, &ec.FirstName, &ec.LastName, &ec.Value); err != nil {
			return nil, apperr.Storage("scanning eligible client", err)
		}

		clients = append(clients, ec)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating eligible clients", err)
	}

	return clients, nil
}

func (s *Store) IssueVouchers(ctx context.Context, vouchers []*reward.Voucher) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperr.Storage("starting voucher transaction", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO rewards_issued (campaign_id, client_id, code, kind, window_key, status, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT ON CONSTRAINT rewards_issued_window_key DO NOTHING
		RETURNING id, issued_at
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, apperr.Storage("preparing voucher insert", err)
	}
	defer stmt.Close()

	issued := 0

	for _, v := range vouchers {
		err := stmt.QueryRowContext(ctx, v.CampaignID, v.ClientID, v.Code, v.Kind, v.WindowKey, v.Status).
			Scan(&v.ID, &v.IssuedAt)
		if errors.Is(err, sql.ErrNoRows) {
			// Already issued for this window.
			continue
		}

		if err != nil {
			return 0, apperr.Storage("issuing voucher", err)
		}

		issued++
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage("committing vouchers", err)
	}

	return issued, nil
}

const selectVoucherColumns = `
	id, campaign_id, client_id, code, kind, window_key, status, used_invoice_id, used_at, issued_at
`

func scanVoucher(s scanner) (*reward.Voucher, error) {
	var v reward.Voucher

	var kind, status string

	if err := s.Scan(
		&v.ID, &v.CampaignID, &v.ClientID, &v.Code, &kind, &v.WindowKey, &status,
		&v.UsedInvoiceID, &v.UsedAt, &v.IssuedAt,
	); err != nil {
		return nil, err
	}

	v.Kind = reward.VoucherKind(kind)
	v.Status = reward.VoucherStatus(status)

	return &v, nil
}

func (s *Store) ListClientVouchers(ctx context.Context, clientID uuid.UUID) ([]*reward.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + ` FROM rewards_issued WHERE client_id = $1 ORDER BY issued_at DESC`

	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, apperr.Storage("listing vouchers", err)
	}
	defer rows.Close()

	var vouchers []*reward.Voucher

	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, apperr.Storage("scanning voucher", err)
		}

		vouchers = append(vouchers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating vouchers", err)
	}

	return vouchers, nil
}

// FindClientVoucher prefers an unused voucher when the client holds the same code
// from several windows.
func (s *Store) FindClientVoucher(ctx context.Context, clientID uuid.UUID, code string) (*reward.Voucher, error) {
	query := `
		SELECT ` + selectVoucherColumns + `
		FROM rewards_issued
		WHERE client_id = $1 AND code = $2
		ORDER BY (status = 'ACTIVE') DESC, issued_at DESC
		LIMIT 1
	`

	v, err := scanVoucher(s.db.QueryRowContext(ctx, query, clientID, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reward.ErrVoucherNotFound
		}

		return nil, apperr.Storage("finding voucher", err)
	}

	return v, nil
}
