package models

import "gorm.io/gorm"

// Counter backs the named sequences (cart_id, order_id, order_item_id).
type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value int
}

// NextSequence atomically increments and returns the named counter. The
// upsert runs as a single statement, so concurrent callers always get
// distinct values.
func NextSequence(db *gorm.DB, name string) (int, error) {
	var value int
	err := db.Raw(`
		INSERT INTO counters (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`, name).Scan(&value).Error
	return value, err
}
