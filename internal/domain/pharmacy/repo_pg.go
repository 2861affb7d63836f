package pharmacy

import (
	"context"
	"fmt"

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

// =========== Medicine Repository ===========

type medicineRepoPG struct{ pool *pgxpool.Pool }

func NewMedicineRepoPG(pool *pgxpool.Pool) MedicineRepository {
	return &medicineRepoPG{pool: pool}
}

const medicineCols = `id, name, description, manufacturer, price, expiry_date, stock, created_at`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Manufacturer,
		&m.Price, &m.ExpiryDate, &m.Stock, &m.CreatedAt)
	return &m, err
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO medicines (id, name, description, manufacturer, price, expiry_date, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		m.ID, m.Name, m.Description, m.Manufacturer, m.Price, m.ExpiryDate, m.Stock).Scan(&m.CreatedAt)
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return scanMedicine(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+medicineCols+` FROM medicines WHERE id = $1`, id))
}

func (r *medicineRepoPG) Update(ctx context.Context, m *Medicine) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE medicines
		SET name = $2, description = $3, manufacturer = $4, price = $5, expiry_date = $6, stock = $7
		WHERE id = $1`,
		m.ID, m.Name, m.Description, m.Manufacturer, m.Price, m.ExpiryDate, m.Stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *medicineRepoPG) List(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM medicines`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+medicineCols+` FROM medicines ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

// =========== Sale Repository ===========

type saleRepoPG struct{ pool *pgxpool.Pool }

func NewSaleRepoPG(pool *pgxpool.Pool) SaleRepository {
	return &saleRepoPG{pool: pool}
}

// The total is derived from the medicine's current price on every read.
// Nothing about the price at sale time is persisted.
const saleCols = `s.id, s.patient_id, s.medicine_id, s.quantity, s.sale_date,
	s.quantity * m.price AS total_price, s.created_at`

const saleFrom = `medicine_sales s JOIN medicines m ON m.id = s.medicine_id`

func scanSale(row pgx.Row) (*MedicineSale, error) {
	var s MedicineSale
	err := row.Scan(&s.ID, &s.PatientID, &s.MedicineID, &s.Quantity,
		&s.SaleDate, &s.TotalPrice, &s.CreatedAt)
	return &s, err
}

func (r *saleRepoPG) Create(ctx context.Context, s *MedicineSale) error {
	s.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO medicine_sales (id, patient_id, medicine_id, quantity, sale_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		s.ID, s.PatientID, s.MedicineID, s.Quantity, s.SaleDate).Scan(&s.CreatedAt)
}

func (r *saleRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicineSale, error) {
	return scanSale(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+saleCols+` FROM `+saleFrom+` WHERE s.id = $1`, id))
}

func (r *saleRepoPG) List(ctx context.Context, limit, offset int) ([]*MedicineSale, int, error) {
	return r.list(ctx, "", nil, limit, offset)
}

func (r *saleRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicineSale, int, error) {
	return r.list(ctx, ` WHERE s.patient_id = $1`, []interface{}{patientID}, limit, offset)
}

func (r *saleRepoPG) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*MedicineSale, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM medicine_sales s`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY s.sale_date DESC LIMIT $%d OFFSET $%d`,
		saleCols, saleFrom, where, len(args)+1, len(args)+2)
	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*MedicineSale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}
