package delivery

import (
	"context"
	"errors"
	"fmt"

	c "nutritrack/internal/core/domain/common"
	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/reminder"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
	DELIVERY_PK_CONSTRAINT_NAME   = "reminder_delivery_pkey"
	DELIVERY_FIRE_CONSTRAINT_NAME = "reminder_delivery_label_scheduled_for_key"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxDeliveryRepository struct {
	db DBTX
}

func NewPgxDeliveryRepository(db DBTX) *PgxDeliveryRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxDeliveryRepository{db: db}
}

type payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

const createDelivery = `
INSERT INTO reminder_delivery (id, label, scheduled_for, fired_at, status, permission, error, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, label, scheduled_for, fired_at, status, permission, error, payload
`

func (r *PgxDeliveryRepository) Create(ctx context.Context, d reminder.Delivery) (reminder.Delivery, error) {
	var encoded pgtype.JSONB
	if err := encoded.Set(payload{Title: d.Title, Body: d.Body}); err != nil {
		return d, fmt.Errorf("could not encode delivery payload due to error: %w", err)
	}

	row := r.db.QueryRow(
		ctx,
		createDelivery,
		d.ID.String(),
		d.Label,
		d.ScheduledFor,
		d.FiredAt,
		d.Status.String(),
		d.Permission,
		encodeOptionalText(d.Error),
		encoded,
	)
	created, err := scanDelivery(row)

	var errUniqueConstraint *pgconn.PgError
	if errors.As(err, &errUniqueConstraint) && errUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		return d, fmt.Errorf(
			"%w: %s (%s)",
			reminder.ErrDeliveryAlreadyRecorded,
			d.ID,
			errUniqueConstraint.ConstraintName,
		)
	}
	if err != nil {
		return d, err
	}
	return created, nil
}

const readDeliveries = `
SELECT id, label, scheduled_for, fired_at, status, permission, error, payload
FROM reminder_delivery
WHERE ($1::text IS NULL OR label = $1)
ORDER BY fired_at DESC, id
LIMIT $2 OFFSET $3
`

func (r *PgxDeliveryRepository) Read(
	ctx context.Context,
	options reminder.DeliveryReadOptions,
) ([]reminder.Delivery, error) {
	limit := pgtype.Int8{Status: pgtype.Null}
	if options.Limit.IsPresent {
		limit = pgtype.Int8{Int: int64(options.Limit.Value), Status: pgtype.Present}
	}

	rows, err := r.db.Query(ctx, readDeliveries, encodeOptionalText(options.LabelEquals), limit, int64(options.Offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]reminder.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func scanDelivery(row pgx.Row) (d reminder.Delivery, err error) {
	var (
		rawID     string
		rawStatus string
		rawError  pgtype.Text
		encoded   pgtype.JSONB
	)
	err = row.Scan(
		&rawID,
		&d.Label,
		&d.ScheduledFor,
		&d.FiredAt,
		&rawStatus,
		&d.Permission,
		&rawError,
		&encoded,
	)
	if err != nil {
		return d, err
	}

	if d.ID, err = uuid.Parse(rawID); err != nil {
		return d, err
	}
	if d.Status, err = reminder.ParseDeliveryStatus(rawStatus); err != nil {
		return d, err
	}
	d.Error = c.NewOptional(rawError.String, rawError.Status == pgtype.Present)

	p := payload{}
	if encoded.Status == pgtype.Present {
		if err := encoded.AssignTo(&p); err != nil {
			return d, fmt.Errorf("could not decode delivery payload: %w", err)
		}
	}
	d.Title = p.Title
	d.Body = p.Body
	return d, nil
}

func encodeOptionalText(value c.Optional[string]) pgtype.Text {
	if !value.IsPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: value.Value, Status: pgtype.Present}
}
