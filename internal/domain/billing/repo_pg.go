package billing

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

type billRepoPG struct{ pool *pgxpool.Pool }

func NewBillRepoPG(pool *pgxpool.Pool) BillRepository {
	return &billRepoPG{pool: pool}
}

const billCols = `id, patient_id, appointment_id, description, amount, tax, discount, total,
	payment_method, payment_status, payment_date, created_at`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.AppointmentID, &b.Description, &b.Amount, &b.Tax,
		&b.Discount, &b.Total, &b.PaymentMethod, &b.PaymentStatus, &b.PaymentDate, &b.CreatedAt)
	return &b, err
}

func (r *billRepoPG) Create(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO bills (id, patient_id, appointment_id, description, amount, tax, discount, total,
			payment_method, payment_status, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		b.ID, b.PatientID, b.AppointmentID, b.Description, b.Amount, b.Tax, b.Discount, b.Total,
		b.PaymentMethod, b.PaymentStatus, b.PaymentDate).Scan(&b.CreatedAt)
}

func (r *billRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return scanBill(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+billCols+` FROM bills WHERE id = $1`, id))
}

func (r *billRepoPG) Update(ctx context.Context, b *Bill) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE bills
		SET patient_id = $2, appointment_id = $3, description = $4, amount = $5, tax = $6,
			discount = $7, total = $8, payment_method = $9, payment_status = $10, payment_date = $11
		WHERE id = $1`,
		b.ID, b.PatientID, b.AppointmentID, b.Description, b.Amount, b.Tax, b.Discount, b.Total,
		b.PaymentMethod, b.PaymentStatus, b.PaymentDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *billRepoPG) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return r.list(ctx, "", nil, limit, offset)
}

func (r *billRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	return r.list(ctx, ` WHERE patient_id = $1`, []interface{}{patientID}, limit, offset)
}

func (r *billRepoPG) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*Bill, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bills`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`SELECT %s FROM bills%s ORDER BY payment_date DESC LIMIT $%d OFFSET $%d`,
		billCols, where, len(args)+1, len(args)+2)
	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}
