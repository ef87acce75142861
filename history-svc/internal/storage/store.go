package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"bitecart/history-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const DefaultStatusTTL = 7 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS order_status_history (
	id         BIGSERIAL PRIMARY KEY,
	order_id   TEXT        NOT NULL,
	old_status TEXT        NOT NULL DEFAULT '',
	new_status TEXT        NOT NULL,
	source     TEXT        NOT NULL DEFAULT '',
	changed_at TIMESTAMPTZ NOT NULL,
	UNIQUE (order_id, old_status, new_status)
);
CREATE INDEX IF NOT EXISTS order_status_history_order_idx ON order_status_history (order_id, changed_at);
`

// Store keeps the audit trail in Postgres and the latest status per order in Redis.
type Store struct {
	db        *sql.DB
	rdb       *redis.Client
	statusTTL time.Duration
}

func NewStore(db *sql.DB, rdb *redis.Client, statusTTL time.Duration) *Store {
	if statusTTL <= 0 {
		statusTTL = DefaultStatusTTL
	}
	return &Store{
		db:        db,
		rdb:       rdb,
		statusTTL: statusTTL,
	}
}

func LatestKey(orderID string) string {
	return "order:" + orderID
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// RecordTransition inserts one history row. Several cart-svc replicas may
// watch the same order, so a repeated transition is dropped and reported as false.
func (s *Store) RecordTransition(ctx context.Context, entry domain.HistoryEntry) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO order_status_history (order_id, old_status, new_status, source, changed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, old_status, new_status) DO NOTHING
	`, entry.OrderID, entry.OldStatus, entry.NewStatus, entry.Source, entry.ChangedAt)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) History(ctx context.Context, orderID string) ([]domain.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, old_status, new_status, source, changed_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at, id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.OldStatus, &e.NewStatus, &e.Source, &e.ChangedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// updateLatestScript writes the mirror only when no newer update is stored.
// It returns 1 when it wrote.
var updateLatestScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'updated_at')
if current and tonumber(current) > tonumber(ARGV[2]) then
	return 0
end

redis.call('HSET', KEYS[1], 'status', ARGV[1], 'updated_at', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// UpdateLatest mirrors status into Redis unless a newer one is already there.
// The check and the write are one atomic step.
func (s *Store) UpdateLatest(ctx context.Context, orderID, status string, at time.Time) error {
	return updateLatestScript.Run(ctx, s.rdb, []string{LatestKey(orderID)},
		status, at.UnixMilli(), s.statusTTL.Milliseconds()).Err()
}

// Latest reads the Redis mirror and falls back to the newest history row,
// re-warming the mirror on the way out.
func (s *Store) Latest(ctx context.Context, orderID string) (*domain.LatestStatus, error) {
	fields, err := s.rdb.HGetAll(ctx, LatestKey(orderID)).Result()
	if err == nil && fields["status"] != "" {
		ms, _ := strconv.ParseInt(fields["updated_at"], 10, 64)
		return &domain.LatestStatus{
			OrderID:   orderID,
			Status:    fields["status"],
			UpdatedAt: time.UnixMilli(ms).UTC(),
		}, nil
	}

	latest := &domain.LatestStatus{OrderID: orderID}
	err = s.db.QueryRowContext(ctx, `
		SELECT new_status, changed_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at DESC, id DESC
		LIMIT 1
	`, orderID).Scan(&latest.Status, &latest.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	_ = s.UpdateLatest(ctx, orderID, latest.Status, latest.UpdatedAt)
	return latest, nil
}
