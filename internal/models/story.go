package models

import "time"

// Story is one entry of the family story shelf, seeded from the catalog.
type Story struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Summary   string    `bson:"summary" json:"summary"`
	Category  string    `bson:"category" json:"category"`
	AgeBand   string    `bson:"age_band" json:"age_band"`
	Version   string    `bson:"catalog_version" json:"catalog_version"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
