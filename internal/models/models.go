package models

import "time"

// Product is something that can be moved between locations.
type Product struct {
	ProductID   uint   `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name        string `gorm:"size:120;not null"`
	Description string `gorm:"size:255"`
}

func (Product) TableName() string { return "product" }

// Location is a warehouse or store movements flow through.
type Location struct {
	LocationID uint   `gorm:"column:location_id;primaryKey;autoIncrement"`
	Name       string `gorm:"size:120;not null"`
	Address    string `gorm:"size:255"`
}

func (Location) TableName() string { return "location" }

// Movement records qty units of a product entering a location, leaving one,
// or transferring between two. A nil endpoint means outside the system.
// MovementID is supplied by the user and immutable once created.
//
// The from/to columns reference location rows but the constraint is not
// enforced at the database level: deleting a product or location leaves its
// movements in place, and readers tolerate the dangling references.
type Movement struct {
	MovementID   string    `gorm:"column:movement_id;primaryKey;size:64"`
	Timestamp    time.Time `gorm:"not null;index"`
	ProductID    uint      `gorm:"column:product_id;not null;index"`
	FromLocation *uint     `gorm:"column:from_location"`
	ToLocation   *uint     `gorm:"column:to_location"`
	Qty          int       `gorm:"not null"`
}

func (Movement) TableName() string { return "product_movement" }
