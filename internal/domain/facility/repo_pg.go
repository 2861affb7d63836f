package facility

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lamasamir/hms/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return pool
}

// =========== Inventory Repository ===========

type inventoryRepoPG struct{ pool *pgxpool.Pool }

func NewInventoryRepoPG(pool *pgxpool.Pool) InventoryRepository {
	return &inventoryRepoPG{pool: pool}
}

const inventoryCols = `id, name, category, quantity, unit, added_date, last_updated, expiry_date, created_at`

func scanInventoryItem(row pgx.Row) (*InventoryItem, error) {
	var it InventoryItem
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Quantity, &it.Unit,
		&it.AddedDate, &it.LastUpdated, &it.ExpiryDate, &it.CreatedAt)
	return &it, err
}

func (r *inventoryRepoPG) Create(ctx context.Context, item *InventoryItem) error {
	item.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO inventory_items (id, name, category, quantity, unit, added_date, last_updated, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		item.ID, item.Name, item.Category, item.Quantity, item.Unit,
		item.AddedDate, item.LastUpdated, item.ExpiryDate).Scan(&item.CreatedAt)
}

func (r *inventoryRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	return scanInventoryItem(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+inventoryCols+` FROM inventory_items WHERE id = $1`, id))
}

func (r *inventoryRepoPG) List(ctx context.Context, limit, offset int) ([]*InventoryItem, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+inventoryCols+` FROM inventory_items ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}

// =========== Entry Log Repository ===========

type entryLogRepoPG struct{ pool *pgxpool.Pool }

func NewEntryLogRepoPG(pool *pgxpool.Pool) EntryLogRepository {
	return &entryLogRepoPG{pool: pool}
}

const entryLogCols = `id, person_name, purpose, time_in, time_out, handled_by, created_at`

func scanEntryLog(row pgx.Row) (*EntryLog, error) {
	var l EntryLog
	err := row.Scan(&l.ID, &l.PersonName, &l.Purpose, &l.TimeIn, &l.TimeOut, &l.HandledBy, &l.CreatedAt)
	return &l, err
}

func (r *entryLogRepoPG) Create(ctx context.Context, log *EntryLog) error {
	log.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO entry_logs (id, person_name, purpose, time_in, time_out, handled_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		log.ID, log.PersonName, log.Purpose, log.TimeIn, log.TimeOut, log.HandledBy).Scan(&log.CreatedAt)
}

func (r *entryLogRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*EntryLog, error) {
	return scanEntryLog(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+entryLogCols+` FROM entry_logs WHERE id = $1`, id))
}

func (r *entryLogRepoPG) List(ctx context.Context, limit, offset int) ([]*EntryLog, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM entry_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+entryLogCols+` FROM entry_logs ORDER BY time_in DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*EntryLog
	for rows.Next() {
		l, err := scanEntryLog(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, rows.Err()
}
