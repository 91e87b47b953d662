// repository/trip_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/vacai/vacai-backend/models"
)

// Store keys. The trip collection is persisted as a single JSON array, the
// same layout the original client kept in browser storage.
const (
	TripsKey       = "vacai_trips"
	CurrentUserKey = "vacai_current_user"
)

// TripRepository handles durable storage of the trip collection
type TripRepository struct {
	DB *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository() *TripRepository {
	return &TripRepository{
		DB: GetDB(),
	}
}

// LoadTrips reads the full trip collection from the store. A missing key or
// an unreadable document degrades to an empty collection rather than an
// error: the application must stay usable with zero trips.
func (r *TripRepository) LoadTrips() []*models.Trip {
	value, err := getValue(r.DB, TripsKey)
	if err != nil {
		log.Printf("Warning: failed to read trips from store: %v", err)
		return []*models.Trip{}
	}
	if value == "" {
		return []*models.Trip{}
	}

	var trips []*models.Trip
	if err := json.Unmarshal([]byte(value), &trips); err != nil {
		log.Printf("Warning: corrupt trip data in store, starting empty: %v", err)
		return []*models.Trip{}
	}
	return trips
}

// SaveTrips writes the full trip collection to the store. Unlike reads,
// write failures are surfaced: silent data loss is unacceptable.
func (r *TripRepository) SaveTrips(trips []*models.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("failed to encode trips: %v", err)
	}
	if err := setValue(r.DB, TripsKey, string(data)); err != nil {
		return fmt.Errorf("failed to write trips to store: %v", err)
	}
	return nil
}

// getValue reads a single record by key; returns "" when the key is absent.
func getValue(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// setValue upserts a single record.
func setValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		"INSERT INTO kv_store (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// deleteValue removes a single record; absent keys are not an error.
func deleteValue(db *sql.DB, key string) error {
	_, err := db.Exec("DELETE FROM kv_store WHERE key = ?", key)
	return err
}
