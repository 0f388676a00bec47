package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

// batteryTypesKey is the settings row that holds the configured type labels
// as a JSON array of strings.
const batteryTypesKey = "battery_types"

// MySQLStore is the production Store backed by the primary MySQL pool.
type MySQLStore struct {
	DB *sql.DB
}

// NewMySQLStore wraps an open connection pool.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

// ListItems returns the entire collection. The mirror always replaces its
// local list wholesale, so there is no pagination or incremental read.
func (s *MySQLStore) ListItems(ctx context.Context) ([]models.BatteryItem, error) {
	query := `
		SELECT id, brand, model, battery_type, location, quantity, low_stock_threshold, updated_at
		FROM battery_items
		ORDER BY brand ASC, model ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.BatteryItem{}
	for rows.Next() {
		var item models.BatteryItem
		if err := rows.Scan(
			&item.ID, &item.Brand, &item.Model, &item.BatteryType,
			&item.Location, &item.Quantity, &item.LowStockThreshold, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *MySQLStore) GetItem(ctx context.Context, id int64) (models.BatteryItem, error) {
	query := `
		SELECT id, brand, model, battery_type, location, quantity, low_stock_threshold, updated_at
		FROM battery_items
		WHERE id = ?`

	var item models.BatteryItem
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Brand, &item.Model, &item.BatteryType,
		&item.Location, &item.Quantity, &item.LowStockThreshold, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BatteryItem{}, ErrNotFound
	}
	return item, err
}

func (s *MySQLStore) CreateItem(ctx context.Context, item models.BatteryItem) (models.BatteryItem, error) {
	item.UpdatedAt = time.Now()

	query := `
		INSERT INTO battery_items
		(brand, model, battery_type, location, quantity, low_stock_threshold, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		item.Brand, item.Model, item.BatteryType, item.Location,
		item.Quantity, item.LowStockThreshold, item.UpdatedAt,
	)
	if err != nil {
		return models.BatteryItem{}, err
	}

	// The store assigns the identifier.
	id, err := result.LastInsertId()
	if err != nil {
		return models.BatteryItem{}, err
	}
	item.ID = id
	return item, nil
}

// UpdateItem overwrites the whole record. There is no version check; the
// last writer wins, exactly like a document overwrite.
func (s *MySQLStore) UpdateItem(ctx context.Context, item models.BatteryItem) error {
	query := `
		UPDATE battery_items
		SET brand = ?, model = ?, battery_type = ?, location = ?,
		    quantity = ?, low_stock_threshold = ?, updated_at = ?
		WHERE id = ?`

	result, err := s.DB.ExecContext(ctx, query,
		item.Brand, item.Model, item.BatteryType, item.Location,
		item.Quantity, item.LowStockThreshold, time.Now(), item.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Could also mean the row was written with identical values, but
		// MySQL reports 0 changed rows either way; re-check existence.
		if _, getErr := s.GetItem(ctx, item.ID); getErr != nil {
			return getErr
		}
	}
	return nil
}

func (s *MySQLStore) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, "DELETE FROM battery_items WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustQuantity applies the delta inside a transaction so the non-negative
// check and the write see the same row.
func (s *MySQLStore) AdjustQuantity(ctx context.Context, id int64, delta int) (models.BatteryItem, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.BatteryItem{}, err
	}
	defer tx.Rollback()

	var quantity int
	err = tx.QueryRowContext(ctx,
		"SELECT quantity FROM battery_items WHERE id = ? FOR UPDATE", id,
	).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BatteryItem{}, ErrNotFound
	}
	if err != nil {
		return models.BatteryItem{}, err
	}

	// The invariant lives here, at the mutation boundary.
	if quantity+delta < 0 {
		return models.BatteryItem{}, ErrNegativeQuantity
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE battery_items SET quantity = quantity + ?, updated_at = ? WHERE id = ?",
		delta, time.Now(), id,
	)
	if err != nil {
		return models.BatteryItem{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.BatteryItem{}, err
	}

	return s.GetItem(ctx, id)
}

// GetBatteryTypes reads the JSON list from the settings table.
func (s *MySQLStore) GetBatteryTypes(ctx context.Context) ([]string, error) {
	var raw string
	err := s.DB.QueryRowContext(ctx,
		"SELECT setting_value FROM settings WHERE setting_key = ?", batteryTypesKey,
	).Scan(&raw)
	if err != nil {
		return nil, err
	}

	var types []string
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *MySQLStore) SaveBatteryTypes(ctx context.Context, types []string) error {
	raw, err := json.Marshal(types)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO settings (setting_key, setting_value)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`
	_, err = s.DB.ExecContext(ctx, query, batteryTypesKey, string(raw))
	return err
}
