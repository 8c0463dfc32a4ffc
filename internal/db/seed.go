package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo profiles, ads and interactions for local development.
// It is idempotent per run only in the sense that conflicts are ignored;
// repeated runs add more ads.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	userIDs := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		id := uuid.NewString()
		username := fmt.Sprintf("demo-user-%d", i)
		tokens := int64(10 + r.Intn(40))
		_, err := pool.Exec(ctx, `INSERT INTO profiles (id, username, tokens) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
			id, username, tokens)
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	adIDs := make([]int64, 0, 15)
	for i, userID := range userIDs {
		for j := 1; j <= 3; j++ {
			title := fmt.Sprintf("Demo ad %d from user %d", j, i+1)
			description := "Seeded advertisement for local development."
			link := fmt.Sprintf("https://example.com/landing/%d-%d", i+1, j)
			spent := int64(1 + r.Intn(5))
			var adID int64
			err := pool.QueryRow(ctx, `INSERT INTO ads (user_id, title, description, link, tokens_spent) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
				userID, title, description, link, spent).Scan(&adID)
			if err != nil {
				return err
			}
			adIDs = append(adIDs, adID)
		}
	}

	// a few historical interactions, never on the user's own ad
	for i := 0; i < 20; i++ {
		adID := adIDs[r.Intn(len(adIDs))]
		userID := userIDs[r.Intn(len(userIDs))]
		var ownerID string
		if err := pool.QueryRow(ctx, `SELECT user_id FROM ads WHERE id = $1`, adID).Scan(&ownerID); err != nil {
			return err
		}
		if ownerID == userID {
			continue
		}
		kind := []string{"view", "click"}[r.Intn(2)]
		createdAt := time.Now().UTC().Add(-time.Duration(1+r.Intn(72)) * time.Hour)
		_, err := pool.Exec(ctx, `INSERT INTO ad_interactions (ad_id, user_id, type, created_at) VALUES ($1,$2,$3,$4)`,
			adID, userID, kind, createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}
