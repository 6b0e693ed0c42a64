// Package seed fills an empty database with a demo catalog and a batch of
// pseudo-random movements. It exists for demos and local development; the
// only behavior callers rely on is that reruns never duplicate catalog rows
// and never reuse a movement id that is already present.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/Poovetha/Inventory/internal/models"
)

// Run inserts the catalog (only when the respective table is empty) and then
// generates movements: 5 inbounds to the first location followed by 15
// random inbound/outbound/transfer movements. Returns the number of
// movements created.
func Run(db *gorm.DB) (int, error) {
	var productCount, locationCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return 0, fmt.Errorf("seed: count products: %w", err)
	}
	if err := db.Model(&models.Location{}).Count(&locationCount).Error; err != nil {
		return 0, fmt.Errorf("seed: count locations: %w", err)
	}

	if productCount == 0 {
		catalog := []models.Product{
			{Name: "Product A"},
			{Name: "Product B"},
			{Name: "Product C"},
			{Name: "Product D"},
		}
		if err := db.Create(&catalog).Error; err != nil {
			return 0, fmt.Errorf("seed: insert products: %w", err)
		}
	}
	if locationCount == 0 {
		catalog := []models.Location{
			{Name: "Location X"},
			{Name: "Location Y"},
			{Name: "Location Z"},
		}
		if err := db.Create(&catalog).Error; err != nil {
			return 0, fmt.Errorf("seed: insert locations: %w", err)
		}
	}

	var products []models.Product
	if err := db.Order("product_id").Find(&products).Error; err != nil {
		return 0, fmt.Errorf("seed: load products: %w", err)
	}
	var locations []models.Location
	if err := db.Order("location_id").Find(&locations).Error; err != nil {
		return 0, fmt.Errorf("seed: load locations: %w", err)
	}
	if len(products) == 0 || len(locations) == 0 {
		return 0, nil
	}

	existing := map[string]bool{}
	var ids []string
	if err := db.Model(&models.Movement{}).Pluck("movement_id", &ids).Error; err != nil {
		return 0, fmt.Errorf("seed: load movement ids: %w", err)
	}
	for _, id := range ids {
		existing[id] = true
	}

	baseTime := time.Now().UTC().Add(-5 * 24 * time.Hour)
	counter := 0
	nextID := func() string {
		counter++
		return fmt.Sprintf("M%03d", counter)
	}
	stamp := func() time.Time { return baseTime.Add(time.Duration(counter) * time.Hour) }
	randomProduct := func() uint { return products[rand.Intn(len(products))].ProductID }
	randomLocation := func() uint { return locations[rand.Intn(len(locations))].LocationID }

	created := 0
	insert := func(m models.Movement) error {
		if existing[m.MovementID] {
			// id taken by an earlier run; skip, the counter keeps advancing
			return nil
		}
		if err := db.Create(&m).Error; err != nil {
			return fmt.Errorf("seed: insert movement %s: %w", m.MovementID, err)
		}
		created++
		return nil
	}

	// stock up the first location so outbounds have something to drain
	firstLoc := locations[0].LocationID
	for i := 0; i < 5; i++ {
		m := models.Movement{
			MovementID: nextID(),
			Timestamp:  stamp(),
			ProductID:  randomProduct(),
			ToLocation: &firstLoc,
			Qty:        5 + rand.Intn(11),
		}
		if err := insert(m); err != nil {
			return created, err
		}
	}

	for i := 0; i < 15; i++ {
		m := models.Movement{
			MovementID: nextID(),
			Timestamp:  stamp(),
			ProductID:  randomProduct(),
		}
		action := rand.Intn(3)
		if action == 2 && len(locations) < 2 {
			action = 0 // transfers need two distinct locations
		}
		switch action {
		case 0: // inbound
			to := randomLocation()
			m.ToLocation = &to
			m.Qty = 1 + rand.Intn(10)
		case 1: // outbound
			from := randomLocation()
			m.FromLocation = &from
			m.Qty = 1 + rand.Intn(8)
		default: // transfer
			from := randomLocation()
			to := randomLocation()
			for to == from {
				to = randomLocation()
			}
			m.FromLocation = &from
			m.ToLocation = &to
			m.Qty = 1 + rand.Intn(6)
		}
		if err := insert(m); err != nil {
			return created, err
		}
	}
	return created, nil
}
