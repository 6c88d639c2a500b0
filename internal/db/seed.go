package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data for local development: listings, accounts and a
// mix of pending and active campaigns. Idempotent via ON CONFLICT.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	cities := []string{"Lisbon", "Porto", "Faro", "Braga", "Coimbra", "Aveiro"}
	for i := 1; i <= 6; i++ {
		title := fmt.Sprintf("%d-bedroom apartment in %s", 1+i%3, cities[i-1])
		price := int64(90000 + i*25000)
		imageURL := fmt.Sprintf("https://example.com/listings/%d.jpg", i)
		_, err := db.Exec(ctx, `INSERT INTO listings (id, title, city, price, image_url, created_at)
VALUES ($1,$2,$3,$4,$5,now()) ON CONFLICT DO NOTHING`, i, title, cities[i-1], price, imageURL)
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 3; i++ {
		_, err := db.Exec(ctx, `INSERT INTO accounts (id, display_name, created_at)
VALUES ($1,$2,now()) ON CONFLICT DO NOTHING`, i, fmt.Sprintf("Agent %d", i))
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	type seedCampaign struct {
		listingID   int64
		requesterID int64
		slotType    string
		days        int
		price       int64
		status      string
		daysLeft    int // for active campaigns
	}
	campaigns := []seedCampaign{
		{listingID: 1, requesterID: 1, slotType: "premium", days: 7, price: 8000, status: "active", daysLeft: 3},
		{listingID: 2, requesterID: 2, slotType: "standard", days: 14, price: 8000, status: "active", daysLeft: 9},
		{listingID: 3, requesterID: 2, slotType: "standard", days: 7, price: 4500, status: "active", daysLeft: 6},
		{listingID: 4, requesterID: 3, slotType: "premium", days: 30, price: 25000, status: "pending"},
		{listingID: 5, requesterID: 3, slotType: "standard", days: 1, price: 800, status: "pending"},
	}
	for i, sc := range campaigns {
		var startAt, endAt *time.Time
		if sc.status == "active" {
			start := now.AddDate(0, 0, sc.daysLeft-sc.days)
			end := now.AddDate(0, 0, sc.daysLeft)
			startAt, endAt = &start, &end
		}
		// deterministic ids keep reseeding idempotent
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("seed-campaign-%d", i)))
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, listing_id, requester_id, slot_type, duration_days, requested_days,
     price, payment_reference, status, start_at, end_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now()) ON CONFLICT DO NOTHING`,
			id, sc.listingID, sc.requesterID, sc.slotType, sc.days, sc.days,
			sc.price, fmt.Sprintf("MM-2024-%04d", 1000+i), sc.status, startAt, endAt)
		if err != nil {
			return err
		}
	}
	return nil
}
