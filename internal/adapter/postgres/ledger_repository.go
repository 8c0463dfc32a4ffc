package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adex/internal/core/domain"
	"adex/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Balance mutations run as store-side increments inside a
// transaction, so two concurrent operations on the same profile cannot
// lose an update.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// GetProfile returns a profile by id.
func (r *LedgerRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `SELECT id, username, tokens FROM profiles WHERE id = $1`, userID).
		Scan(&p.ID, &p.Username, &p.Tokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAd returns an ad by id, or nil when it does not exist.
func (r *LedgerRepository) GetAd(ctx context.Context, adID int64) (*domain.Ad, error) {
	var a domain.Ad
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, title, description, link, tokens_spent, created_at FROM ads WHERE id = $1`, adID).
		Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Link, &a.TokensSpent, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// HasInteraction reports whether a matching interaction exists.
func (r *LedgerRepository) HasInteraction(ctx context.Context, adID int64, userID string, kind domain.InteractionKind, since time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ad_interactions WHERE ad_id = $1 AND user_id = $2`
	args := []any{adID, userID}
	if kind != "" {
		args = append(args, string(kind))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if !since.IsZero() {
		args = append(args, since)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	query += ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// InsertInteractionAndCredit stores the interaction row and credits the
// profile atomically. The credit is a store-side increment; the updated
// balance is returned from the same statement.
func (r *LedgerRepository) InsertInteractionAndCredit(ctx context.Context, in domain.AdInteraction, reward int64) (balance int64, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	_, err = tx.Exec(ctx, `INSERT INTO ad_interactions (ad_id, user_id, type, created_at) VALUES ($1,$2,$3,$4)`,
		in.AdID, in.UserID, string(in.Kind), in.CreatedAt)
	if err != nil {
		return 0, err
	}

	err = tx.QueryRow(ctx, `UPDATE profiles SET tokens = tokens + $1 WHERE id = $2 RETURNING tokens`, reward, in.UserID).
		Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrProfileNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// InsertAdAndDebit debits the owner and stores the ad atomically. The debit
// statement guards the balance itself, so an overdraft rolls the whole
// transaction back.
func (r *LedgerRepository) InsertAdAndDebit(ctx context.Context, ad domain.Ad) (created *domain.Ad, balance int64, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	err = tx.QueryRow(ctx, `UPDATE profiles SET tokens = tokens - $1 WHERE id = $2 AND tokens >= $1 RETURNING tokens`,
		ad.TokensSpent, ad.UserID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrInsufficientTokens
	}
	if err != nil {
		return nil, 0, err
	}

	err = tx.QueryRow(ctx, `INSERT INTO ads (user_id, title, description, link, tokens_spent) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at`,
		ad.UserID, ad.Title, ad.Description, ad.Link, ad.TokensSpent).
		Scan(&ad.ID, &ad.CreatedAt)
	if err != nil {
		return nil, 0, err
	}
	return &ad, balance, nil
}

// ListAvailableAds returns ads not owned by userID, newest first, with the
// owner's username joined in. The policy's de-duplication window is applied
// store-side via NOT EXISTS rather than a client-built exclusion list.
func (r *LedgerRepository) ListAvailableAds(ctx context.Context, userID string, f port.AvailableFilter) ([]domain.Ad, error) {
	sub := `SELECT 1 FROM ad_interactions i WHERE i.ad_id = a.id AND i.user_id = $1`
	args := []any{userID}
	if f.ExcludeKind != "" {
		args = append(args, string(f.ExcludeKind))
		sub += fmt.Sprintf(" AND i.type = $%d", len(args))
	}
	if !f.Since.IsZero() {
		args = append(args, f.Since)
		sub += fmt.Sprintf(" AND i.created_at >= $%d", len(args))
	}
	query := fmt.Sprintf(`
        SELECT a.id, a.user_id, a.title, a.description, a.link, a.tokens_spent, a.created_at, p.username
        FROM ads a
        JOIN profiles p ON p.id = a.user_id
        WHERE a.user_id <> $1
          AND NOT EXISTS (%s)
        ORDER BY a.created_at DESC`, sub)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var a domain.Ad
		err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Link, &a.TokensSpent, &a.CreatedAt, &a.OwnerUsername)
		return a, err
	})
}

// ListOwnAds returns the user's ads, newest first.
func (r *LedgerRepository) ListOwnAds(ctx context.Context, userID string) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, user_id, title, description, link, tokens_spent, created_at
        FROM ads
        WHERE user_id = $1
        ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var a domain.Ad
		err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Link, &a.TokensSpent, &a.CreatedAt)
		return a, err
	})
}
