package models

import (
	"fmt"
	"time"
)

// Типы посылок
const (
	ParcelTypeSmallPacket   = 1
	ParcelTypeParcel        = 2
	ParcelTypeFirstClass    = 3
	ParcelTypeValuable      = 4
	ParcelTypeInternational = 5
	ParcelTypeExpress       = 6

	// Тип по умолчанию, если клиент его не указал
	ParcelTypeDefault = ParcelTypeParcel
)

// Ограничения точности суммы платежа
const (
	PaymentMaxDigits     = 10
	PaymentDecimalPlaces = 2
)

var parcelTypeLabels = map[int]string{
	ParcelTypeSmallPacket:   "мелкий пакет",
	ParcelTypeParcel:        "посылка",
	ParcelTypeFirstClass:    "посылка 1 класса",
	ParcelTypeValuable:      "ценная посылка",
	ParcelTypeInternational: "посылка международная",
	ParcelTypeExpress:       "экспресс-посылка",
}

// ParcelTypeLabel возвращает читаемое название типа посылки
func ParcelTypeLabel(code int) string {
	return parcelTypeLabels[code]
}

// Parcel представляет посылку
type Parcel struct {
	ID                  string    `json:"id" db:"id"`
	SenderFullName      string    `json:"sender_full_name" db:"sender_full_name"`
	RecipientFullName   string    `json:"recipient_full_name" db:"recipient_full_name"`
	OriginLocation      string    `json:"origin_location" db:"origin_location"`
	DestinationLocation string    `json:"destination_location" db:"destination_location"`
	OriginPostcode      int64     `json:"origin_postcode" db:"origin_postcode"`
	DestinationPostcode int64     `json:"destination_postcode" db:"destination_postcode"`
	NotificationPhone   string    `json:"notification_phone" db:"notification_phone"`
	ParcelType          int       `json:"parcel_type" db:"parcel_type"`
	PaymentAmount       string    `json:"payment_amount" db:"payment_amount"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// ParcelInput представляет данные запроса на создание или обновление посылки
type ParcelInput struct {
	ShipmentInput
	NotificationPhone *string  `json:"notification_phone"`
	ParcelType        *int     `json:"parcel_type"`
	PaymentAmount     *Decimal `json:"payment_amount"`
}

// Validate проверяет данные запроса, см. LetterInput.Validate
func (in *ParcelInput) Validate(partial bool) ValidationErrors {
	errs := ValidationErrors{}

	in.ShipmentInput.validate(partial, errs)

	if !partial {
		requireField(errs, "notification_phone", in.NotificationPhone == nil)
		requireField(errs, "payment_amount", in.PaymentAmount == nil)
	}

	checkMaxLength(errs, "notification_phone", in.NotificationPhone, PhoneMaxLength)

	if in.ParcelType != nil {
		if _, ok := parcelTypeLabels[*in.ParcelType]; !ok {
			errs.Add("parcel_type", fmt.Sprintf("Значения %d нет среди допустимых вариантов.", *in.ParcelType))
		}
	}

	if in.PaymentAmount != nil {
		if messages := in.PaymentAmount.Validate(PaymentMaxDigits, PaymentDecimalPlaces); len(messages) > 0 {
			for _, m := range messages {
				errs.Add("payment_amount", m)
			}
		} else if in.PaymentAmount.Sign() < 0 {
			errs.Add("payment_amount", ErrMsgPaymentNegative)
		}
	}

	return errs
}

// ParcelResponse представляет посылку в ответе API: помимо числового кода
// типа содержит его читаемое название
type ParcelResponse struct {
	ID                  string    `json:"id"`
	SenderFullName      string    `json:"sender_full_name"`
	RecipientFullName   string    `json:"recipient_full_name"`
	OriginLocation      string    `json:"origin_location"`
	DestinationLocation string    `json:"destination_location"`
	OriginPostcode      int64     `json:"origin_postcode"`
	DestinationPostcode int64     `json:"destination_postcode"`
	NotificationPhone   string    `json:"notification_phone"`
	ParcelType          int       `json:"parcel_type"`
	ParcelTypeDisplay   string    `json:"parcel_type_display"`
	PaymentAmount       string    `json:"payment_amount"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewParcelResponse формирует представление посылки для API
func NewParcelResponse(parcel *Parcel) ParcelResponse {
	return ParcelResponse{
		ID:                  parcel.ID,
		SenderFullName:      parcel.SenderFullName,
		RecipientFullName:   parcel.RecipientFullName,
		OriginLocation:      parcel.OriginLocation,
		DestinationLocation: parcel.DestinationLocation,
		OriginPostcode:      parcel.OriginPostcode,
		DestinationPostcode: parcel.DestinationPostcode,
		NotificationPhone:   parcel.NotificationPhone,
		ParcelType:          parcel.ParcelType,
		ParcelTypeDisplay:   ParcelTypeLabel(parcel.ParcelType),
		PaymentAmount:       parcel.PaymentAmount,
		CreatedAt:           parcel.CreatedAt,
		UpdatedAt:           parcel.UpdatedAt,
	}
}

// ParcelListQuery представляет параметры запроса списка посылок
type ParcelListQuery struct {
	ShipmentListQuery
	ParcelType        *int   `form:"parcel_type"`
	NotificationPhone string `form:"notification_phone"`
}
