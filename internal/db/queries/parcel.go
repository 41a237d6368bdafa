package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-service/internal/db"
	"shipment-service/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// ErrParcelNotFound возвращается, когда посылки с указанным ID нет
var ErrParcelNotFound = errors.New("parcel not found")

// Столбцы таблицы посылок в порядке, ожидаемом StructScan
var parcelColumns = []string{
	"id",
	"sender_full_name",
	"recipient_full_name",
	"origin_location",
	"destination_location",
	"origin_postcode",
	"destination_postcode",
	"notification_phone",
	"parcel_type",
	"payment_amount",
	"created_at",
	"updated_at",
}

// ParcelQueriesInterface определяет интерфейс для запросов к посылкам
type ParcelQueriesInterface interface {
	CreateParcel(ctx context.Context, input *models.ParcelInput) (*models.Parcel, error)
	GetParcel(ctx context.Context, id string) (*models.Parcel, error)
	ListParcels(ctx context.Context, params models.ParcelListQuery) ([]models.Parcel, error)
	UpdateParcel(ctx context.Context, id string, input *models.ParcelInput) (*models.Parcel, error)
	DeleteParcel(ctx context.Context, id string) error
}

// ParcelQueries содержит методы запросов для работы с посылками
type ParcelQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewParcelQueries создает новый экземпляр ParcelQueries
func NewParcelQueries(db *db.Database) *ParcelQueries {
	return &ParcelQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateParcel создает новую посылку. Вход должен быть полностью
// провалидирован вызывающей стороной.
func (q *ParcelQueries) CreateParcel(ctx context.Context, input *models.ParcelInput) (*models.Parcel, error) {
	// Генерируем UUID
	id := uuid.New().String()
	now := time.Now()

	parcelType := models.ParcelTypeDefault
	if input.ParcelType != nil {
		parcelType = *input.ParcelType
	}

	// Создаем запрос
	query := q.sq.
		Insert("parcel").
		Columns(parcelColumns...).
		Values(
			id,
			*input.SenderFullName,
			*input.RecipientFullName,
			*input.OriginLocation,
			*input.DestinationLocation,
			*input.OriginPostcode,
			*input.DestinationPostcode,
			*input.NotificationPhone,
			parcelType,
			input.PaymentAmount.String(),
			now,
			now,
		).
		Suffix("RETURNING " + strings.Join(parcelColumns, ", "))

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var parcel models.Parcel
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&parcel)
	if err != nil {
		return nil, fmt.Errorf("failed to create parcel: %w", err)
	}

	return &parcel, nil
}

// GetParcel получает посылку по ID
func (q *ParcelQueries) GetParcel(ctx context.Context, id string) (*models.Parcel, error) {
	query := q.sq.
		Select(parcelColumns...).
		From("parcel").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var parcel models.Parcel
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&parcel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParcelNotFound
		}
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	return &parcel, nil
}

// ListParcels получает список посылок с фильтрацией, поиском и сортировкой
func (q *ParcelQueries) ListParcels(ctx context.Context, params models.ParcelListQuery) ([]models.Parcel, error) {
	builder := q.sq.
		Select(parcelColumns...).
		From("parcel")

	if params.ParcelType != nil {
		builder = builder.Where(squirrel.Eq{"parcel_type": *params.ParcelType})
	}
	if params.NotificationPhone != "" {
		builder = builder.Where(squirrel.Eq{"notification_phone": params.NotificationPhone})
	}

	builder = applyShipmentFilters(builder, params.ShipmentListQuery)

	qsql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var parcels []models.Parcel
	err = q.db.SelectContext(ctx, &parcels, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	return parcels, nil
}

// UpdateParcel обновляет присутствующие во входе поля посылки и сдвигает
// updated_at. Возвращает ErrParcelNotFound, если посылки нет.
func (q *ParcelQueries) UpdateParcel(ctx context.Context, id string, input *models.ParcelInput) (*models.Parcel, error) {
	builder := q.sq.Update("parcel")

	if input.SenderFullName != nil {
		builder = builder.Set("sender_full_name", *input.SenderFullName)
	}
	if input.RecipientFullName != nil {
		builder = builder.Set("recipient_full_name", *input.RecipientFullName)
	}
	if input.OriginLocation != nil {
		builder = builder.Set("origin_location", *input.OriginLocation)
	}
	if input.DestinationLocation != nil {
		builder = builder.Set("destination_location", *input.DestinationLocation)
	}
	if input.OriginPostcode != nil {
		builder = builder.Set("origin_postcode", *input.OriginPostcode)
	}
	if input.DestinationPostcode != nil {
		builder = builder.Set("destination_postcode", *input.DestinationPostcode)
	}
	if input.NotificationPhone != nil {
		builder = builder.Set("notification_phone", *input.NotificationPhone)
	}
	if input.ParcelType != nil {
		builder = builder.Set("parcel_type", *input.ParcelType)
	}
	if input.PaymentAmount != nil {
		builder = builder.Set("payment_amount", input.PaymentAmount.String())
	}

	builder = builder.
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(parcelColumns, ", "))

	qsql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var parcel models.Parcel
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&parcel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParcelNotFound
		}
		return nil, fmt.Errorf("failed to update parcel: %w", err)
	}

	return &parcel, nil
}

// DeleteParcel удаляет посылку по ID
func (q *ParcelQueries) DeleteParcel(ctx context.Context, id string) error {
	query := q.sq.
		Delete("parcel").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete parcel: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrParcelNotFound
	}

	return nil
}
