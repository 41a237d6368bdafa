package models

import (
	"fmt"
	"time"
)

// Типы писем
const (
	LetterTypeRegular    = 1
	LetterTypeRegistered = 2
	LetterTypeValuable   = 3
	LetterTypeExpress    = 4

	// Тип по умолчанию, если клиент его не указал
	LetterTypeDefault = LetterTypeRegular
)

// Ограничения точности веса
const (
	WeightMaxDigits     = 7
	WeightDecimalPlaces = 3
)

var letterTypeLabels = map[int]string{
	LetterTypeRegular:    "письмо",
	LetterTypeRegistered: "заказное письмо",
	LetterTypeValuable:   "ценное письмо",
	LetterTypeExpress:    "экспресс-письмо",
}

// LetterTypeLabel возвращает читаемое название типа письма
func LetterTypeLabel(code int) string {
	return letterTypeLabels[code]
}

// Letter представляет письмо
type Letter struct {
	ID                  string    `json:"id" db:"id"`
	SenderFullName      string    `json:"sender_full_name" db:"sender_full_name"`
	RecipientFullName   string    `json:"recipient_full_name" db:"recipient_full_name"`
	OriginLocation      string    `json:"origin_location" db:"origin_location"`
	DestinationLocation string    `json:"destination_location" db:"destination_location"`
	OriginPostcode      int64     `json:"origin_postcode" db:"origin_postcode"`
	DestinationPostcode int64     `json:"destination_postcode" db:"destination_postcode"`
	LetterType          int       `json:"letter_type" db:"letter_type"`
	WeightKg            string    `json:"weight_kg" db:"weight_kg"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// LetterInput представляет данные запроса на создание или обновление письма
type LetterInput struct {
	ShipmentInput
	LetterType *int     `json:"letter_type"`
	WeightKg   *Decimal `json:"weight_kg"`
}

// Validate проверяет данные запроса. При partial=true (PATCH) проверяются
// только присутствующие поля. Все нарушения собираются в одну карту.
func (in *LetterInput) Validate(partial bool) ValidationErrors {
	errs := ValidationErrors{}

	in.ShipmentInput.validate(partial, errs)

	if !partial {
		requireField(errs, "weight_kg", in.WeightKg == nil)
	}

	if in.LetterType != nil {
		if _, ok := letterTypeLabels[*in.LetterType]; !ok {
			errs.Add("letter_type", fmt.Sprintf("Значения %d нет среди допустимых вариантов.", *in.LetterType))
		}
	}

	if in.WeightKg != nil {
		if messages := in.WeightKg.Validate(WeightMaxDigits, WeightDecimalPlaces); len(messages) > 0 {
			for _, m := range messages {
				errs.Add("weight_kg", m)
			}
		} else if in.WeightKg.Sign() <= 0 {
			errs.Add("weight_kg", ErrMsgWeightPositive)
		}
	}

	return errs
}

// LetterResponse представляет письмо в ответе API: помимо числового кода
// типа содержит его читаемое название
type LetterResponse struct {
	ID                  string    `json:"id"`
	SenderFullName      string    `json:"sender_full_name"`
	RecipientFullName   string    `json:"recipient_full_name"`
	OriginLocation      string    `json:"origin_location"`
	DestinationLocation string    `json:"destination_location"`
	OriginPostcode      int64     `json:"origin_postcode"`
	DestinationPostcode int64     `json:"destination_postcode"`
	LetterType          int       `json:"letter_type"`
	LetterTypeDisplay   string    `json:"letter_type_display"`
	WeightKg            string    `json:"weight_kg"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewLetterResponse формирует представление письма для API
func NewLetterResponse(letter *Letter) LetterResponse {
	return LetterResponse{
		ID:                  letter.ID,
		SenderFullName:      letter.SenderFullName,
		RecipientFullName:   letter.RecipientFullName,
		OriginLocation:      letter.OriginLocation,
		DestinationLocation: letter.DestinationLocation,
		OriginPostcode:      letter.OriginPostcode,
		DestinationPostcode: letter.DestinationPostcode,
		LetterType:          letter.LetterType,
		LetterTypeDisplay:   LetterTypeLabel(letter.LetterType),
		WeightKg:            letter.WeightKg,
		CreatedAt:           letter.CreatedAt,
		UpdatedAt:           letter.UpdatedAt,
	}
}

// LetterListQuery представляет параметры запроса списка писем
type LetterListQuery struct {
	ShipmentListQuery
	LetterType *int `form:"letter_type"`
}
