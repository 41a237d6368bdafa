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

// ErrLetterNotFound возвращается, когда письма с указанным ID нет
var ErrLetterNotFound = errors.New("letter not found")

// Столбцы таблицы писем в порядке, ожидаемом StructScan
var letterColumns = []string{
	"id",
	"sender_full_name",
	"recipient_full_name",
	"origin_location",
	"destination_location",
	"origin_postcode",
	"destination_postcode",
	"letter_type",
	"weight_kg",
	"created_at",
	"updated_at",
}

// LetterQueriesInterface определяет интерфейс для запросов к письмам
type LetterQueriesInterface interface {
	CreateLetter(ctx context.Context, input *models.LetterInput) (*models.Letter, error)
	GetLetter(ctx context.Context, id string) (*models.Letter, error)
	ListLetters(ctx context.Context, params models.LetterListQuery) ([]models.Letter, error)
	UpdateLetter(ctx context.Context, id string, input *models.LetterInput) (*models.Letter, error)
	DeleteLetter(ctx context.Context, id string) error
}

// LetterQueries содержит методы запросов для работы с письмами
type LetterQueries struct {
	db *db.Database
	sq squirrel.StatementBuilderType
}

// NewLetterQueries создает новый экземпляр LetterQueries
func NewLetterQueries(db *db.Database) *LetterQueries {
	return &LetterQueries{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateLetter создает новое письмо. Вход должен быть полностью
// провалидирован вызывающей стороной.
func (q *LetterQueries) CreateLetter(ctx context.Context, input *models.LetterInput) (*models.Letter, error) {
	// Генерируем UUID
	id := uuid.New().String()
	now := time.Now()

	letterType := models.LetterTypeDefault
	if input.LetterType != nil {
		letterType = *input.LetterType
	}

	// Создаем запрос
	query := q.sq.
		Insert("letter").
		Columns(letterColumns...).
		Values(
			id,
			*input.SenderFullName,
			*input.RecipientFullName,
			*input.OriginLocation,
			*input.DestinationLocation,
			*input.OriginPostcode,
			*input.DestinationPostcode,
			letterType,
			input.WeightKg.String(),
			now,
			now,
		).
		Suffix("RETURNING " + strings.Join(letterColumns, ", "))

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var letter models.Letter
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&letter)
	if err != nil {
		return nil, fmt.Errorf("failed to create letter: %w", err)
	}

	return &letter, nil
}

// GetLetter получает письмо по ID
func (q *LetterQueries) GetLetter(ctx context.Context, id string) (*models.Letter, error) {
	query := q.sq.
		Select(letterColumns...).
		From("letter").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var letter models.Letter
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&letter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLetterNotFound
		}
		return nil, fmt.Errorf("failed to get letter: %w", err)
	}

	return &letter, nil
}

// ListLetters получает список писем с фильтрацией, поиском и сортировкой
func (q *LetterQueries) ListLetters(ctx context.Context, params models.LetterListQuery) ([]models.Letter, error) {
	builder := q.sq.
		Select(letterColumns...).
		From("letter")

	if params.LetterType != nil {
		builder = builder.Where(squirrel.Eq{"letter_type": *params.LetterType})
	}

	builder = applyShipmentFilters(builder, params.ShipmentListQuery)

	qsql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var letters []models.Letter
	err = q.db.SelectContext(ctx, &letters, qsql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list letters: %w", err)
	}

	return letters, nil
}

// UpdateLetter обновляет присутствующие во входе поля письма и сдвигает
// updated_at. Возвращает ErrLetterNotFound, если письма нет.
func (q *LetterQueries) UpdateLetter(ctx context.Context, id string, input *models.LetterInput) (*models.Letter, error) {
	builder := q.sq.Update("letter")

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
	if input.LetterType != nil {
		builder = builder.Set("letter_type", *input.LetterType)
	}
	if input.WeightKg != nil {
		builder = builder.Set("weight_kg", input.WeightKg.String())
	}

	builder = builder.
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(letterColumns, ", "))

	qsql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var letter models.Letter
	err = q.db.QueryRowxContext(ctx, qsql, args...).StructScan(&letter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLetterNotFound
		}
		return nil, fmt.Errorf("failed to update letter: %w", err)
	}

	return &letter, nil
}

// DeleteLetter удаляет письмо по ID
func (q *LetterQueries) DeleteLetter(ctx context.Context, id string) error {
	query := q.sq.
		Delete("letter").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete letter: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrLetterNotFound
	}

	return nil
}
