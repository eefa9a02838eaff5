package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

const table = "reservations"

// pqUniqueViolation SQLSTATE нарушения уникального индекса
const pqUniqueViolation = "23505"

var columns = []string{
	"id",
	"service_kind",
	"booking_date",
	"start_time",
	"sub_option",
	"vehicle_type",
	"vehicle_name",
	"vehicle_model",
	"vehicle_year",
	"vehicle_plate",
	"vehicle_size",
	"moto_name",
	"moto_size",
	"color",
	"piece_count",
	"price",
	"user_email",
	"verified",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями всех видов услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Уникальный индекс (service_kind, booking_date, start_time) гарантирует не более одной записи на слот,
// нарушение возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var vehicleName, vehicleModel, vehicleYear, vehiclePlate, vehicleSize *string
	if v := res.Vehicle; v != nil {
		vehicleName, vehicleModel, vehicleYear, vehiclePlate = &v.Name, &v.Model, &v.Year, &v.Plate
		size := string(v.SizeClass)
		vehicleSize = &size
	}
	var motoName, motoSize *string
	if m := res.Moto; m != nil {
		size := string(m.SizeClass)
		motoName, motoSize = &m.Name, &size
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[1:18]...).
		Values(
			res.Kind,
			res.Date,
			res.Hour,
			nullString(string(res.SubOption)),
			nullString(string(res.VehicleType)),
			vehicleName,
			vehicleModel,
			vehicleYear,
			vehiclePlate,
			vehicleSize,
			motoName,
			motoSize,
			res.Color,
			res.PieceCount,
			res.Price,
			res.UserEmail,
			res.Verified,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s %s %s", ErrSlotTaken, res.Kind, res.Date.Format(domain.DateFormat), res.Hour)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}
	return res, nil
}

// List возвращает бронирования по фильтру.
// Для одной даты внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)
	builder = applyFilter(builder, filter)

	if filter.IsSingleDay() {
		builder = builder.OrderBy("start_time ASC")
	} else {
		builder = builder.OrderBy("booking_date DESC", "start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.IsSingleDay() {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// BookedHours возвращает время занятых слотов вида услуги на дату
func (r *Repository) BookedHours(ctx context.Context, kind domain.ServiceKind, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("start_time").
		From(table).
		Where(squirrel.Eq{"service_kind": kind, "booking_date": date}).
		OrderBy("start_time ASC")
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BookedHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]types.TimeString, 0)
	for rows.Next() {
		var hour types.TimeString
		if err := rows.Scan(&hour); err != nil {
			return nil, fmt.Errorf("%w: BookedHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, hour)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedHours - rows error: %v", ErrScanRow, err)
	}
	return hours, nil
}

// SetVerified меняет признак проверки бронирования администратором
func (r *Repository) SetVerified(ctx context.Context, id int64, verified bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("verified", verified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetVerified - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetVerified", query, args)
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// Revenue возвращает сумму цен и количество бронирований вида услуги в периоде [from, to).
// Пустая граница не ограничивает период.
func (r *Repository) Revenue(ctx context.Context, kind domain.ServiceKind, from, to *time.Time) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COALESCE(SUM(price), 0)", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{"service_kind": kind})
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.Lt{"booking_date": *to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: Revenue - build select query: %v", ErrBuildQuery, err)
	}

	var (
		total float64
		count int
	)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: Revenue - scan: %v", ErrScanRow, err)
	}
	return total, count, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.ReservationFilter) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Eq{"service_kind": filter.Kind})

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.UserEmail != nil {
		builder = builder.Where(squirrel.Eq{"user_email": *filter.UserEmail})
	}
	if filter.Verified != nil {
		builder = builder.Where(squirrel.Eq{"verified": *filter.Verified})
	}
	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                                                  domain.Reservation
		subOption, vehicleType                               sql.NullString
		vehicleName, vehicleModel, vehicleYear, vehiclePlate sql.NullString
		vehicleSize, motoName, motoSize, color               sql.NullString
		pieceCount                                           sql.NullInt64
		price                                                sql.NullFloat64
		createdAt, updatedAt                                 sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.Kind,
		&res.Date,
		&res.Hour,
		&subOption,
		&vehicleType,
		&vehicleName,
		&vehicleModel,
		&vehicleYear,
		&vehiclePlate,
		&vehicleSize,
		&motoName,
		&motoSize,
		&color,
		&pieceCount,
		&price,
		&res.UserEmail,
		&res.Verified,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.SubOption = domain.SubOption(subOption.String)
	res.VehicleType = domain.VehicleType(vehicleType.String)
	if vehicleName.Valid {
		res.Vehicle = &domain.VehicleProfile{
			Name:      vehicleName.String,
			Model:     vehicleModel.String,
			Year:      vehicleYear.String,
			Plate:     vehiclePlate.String,
			SizeClass: domain.SizeClass(vehicleSize.String),
		}
	}
	if motoName.Valid {
		res.Moto = &domain.MotoProfile{Name: motoName.String, SizeClass: domain.SizeClass(motoSize.String)}
	}
	if color.Valid {
		c := color.String
		res.Color = &c
	}
	if pieceCount.Valid {
		n := int(pieceCount.Int64)
		res.PieceCount = &n
	}
	if price.Valid {
		p := price.Float64
		res.Price = &p
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
