package models

import (
	"fmt"
	"strings"
)

// Ограничения полей отправления
const (
	FullNameMaxLength = 255
	LocationMaxLength = 255
	PhoneMaxLength    = 20

	// Минимальный шестизначный почтовый индекс
	PostcodeMinValue = 100000
)

// Сообщения об ошибках валидации
const (
	ErrMsgRequired        = "Обязательное поле."
	ErrMsgInvalidValue    = "Недопустимое значение."
	ErrMsgInvalidNumber   = "Требуется численное значение."
	ErrMsgPostcodeLength  = "Индекс должен состоять из 6 цифр"
	ErrMsgWeightPositive  = "Вес должен быть положительным числом."
	ErrMsgPaymentNegative = "Сумма платежа не может быть отрицательной."
	ErrMsgPostcodeMatch   = "Индекс отправки и назначения не должны совпадать."
	ErrMsgLocationMatch   = "Пункт отправки и назначения не должны совпадать."
)

// NonFieldErrorsKey — ключ для ошибок, относящихся к записи целиком,
// а не к отдельному полю
const NonFieldErrorsKey = "non_field_errors"

// ValidationErrors отображает имя поля в список сообщений об ошибках.
// Ошибки перекрестных проверок хранятся под ключом NonFieldErrorsKey.
type ValidationErrors map[string][]string

// Add добавляет сообщение об ошибке для поля
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// HasField сообщает, есть ли у поля хотя бы одна ошибка
func (v ValidationErrors) HasField(field string) bool {
	return len(v[field]) > 0
}

// ErrorResponse представляет ошибку API
type ErrorResponse struct {
	Error   string           `json:"error"`
	Details ValidationErrors `json:"details,omitempty"`
}

// ShipmentInput содержит общие изменяемые поля письма и посылки.
// Поля объявлены указателями, чтобы при частичном обновлении отличать
// отсутствующее поле от пустого значения.
type ShipmentInput struct {
	SenderFullName      *string `json:"sender_full_name"`
	RecipientFullName   *string `json:"recipient_full_name"`
	OriginLocation      *string `json:"origin_location"`
	DestinationLocation *string `json:"destination_location"`
	OriginPostcode      *int64  `json:"origin_postcode"`
	DestinationPostcode *int64  `json:"destination_postcode"`
}

// validate проверяет общие поля отправления. При partial=false все поля
// обязательны (создание или полное обновление). Перекрестные проверки
// выполняются только если оба участвующих поля присутствуют и сами по
// себе корректны.
func (in *ShipmentInput) validate(partial bool, errs ValidationErrors) {
	if !partial {
		requireField(errs, "sender_full_name", in.SenderFullName == nil)
		requireField(errs, "recipient_full_name", in.RecipientFullName == nil)
		requireField(errs, "origin_location", in.OriginLocation == nil)
		requireField(errs, "destination_location", in.DestinationLocation == nil)
		requireField(errs, "origin_postcode", in.OriginPostcode == nil)
		requireField(errs, "destination_postcode", in.DestinationPostcode == nil)
	}

	checkMaxLength(errs, "sender_full_name", in.SenderFullName, FullNameMaxLength)
	checkMaxLength(errs, "recipient_full_name", in.RecipientFullName, FullNameMaxLength)
	checkMaxLength(errs, "origin_location", in.OriginLocation, LocationMaxLength)
	checkMaxLength(errs, "destination_location", in.DestinationLocation, LocationMaxLength)

	checkPostcode(errs, "origin_postcode", in.OriginPostcode)
	checkPostcode(errs, "destination_postcode", in.DestinationPostcode)

	// Индексы сравниваем только когда оба поля присутствуют и прошли
	// собственные проверки: при PATCH без одного из них проверка
	// пропускается, а не считается нарушенной
	if in.OriginPostcode != nil && in.DestinationPostcode != nil &&
		!errs.HasField("origin_postcode") && !errs.HasField("destination_postcode") {
		if *in.OriginPostcode == *in.DestinationPostcode {
			errs.Add(NonFieldErrorsKey, ErrMsgPostcodeMatch)
		}
	}

	if in.OriginLocation != nil && in.DestinationLocation != nil &&
		!errs.HasField("origin_location") && !errs.HasField("destination_location") {
		if strings.EqualFold(*in.OriginLocation, *in.DestinationLocation) {
			errs.Add(NonFieldErrorsKey, ErrMsgLocationMatch)
		}
	}
}

func requireField(errs ValidationErrors, field string, missing bool) {
	if missing {
		errs.Add(field, ErrMsgRequired)
	}
}

func checkMaxLength(errs ValidationErrors, field string, value *string, max int) {
	if value == nil {
		return
	}
	if len([]rune(*value)) > max {
		errs.Add(field, fmt.Sprintf("Убедитесь, что это значение содержит не более %d символов.", max))
	}
}

func checkPostcode(errs ValidationErrors, field string, value *int64) {
	if value == nil {
		return
	}
	if *value < PostcodeMinValue {
		errs.Add(field, ErrMsgPostcodeLength)
	}
}

// ShipmentListQuery представляет общие параметры фильтрации и сортировки
// списка отправлений
type ShipmentListQuery struct {
	SenderFullName      string `form:"sender_full_name"`
	RecipientFullName   string `form:"recipient_full_name"`
	OriginLocation      string `form:"origin_location"`
	DestinationLocation string `form:"destination_location"`
	CreatedAtAfter      string `form:"created_at_after"`
	Search              string `form:"search"`
	Ordering            string `form:"ordering"`
}

// Допустимые значения параметра ordering
var orderingColumns = map[string]string{
	"created_at":        "created_at ASC",
	"-created_at":       "created_at DESC",
	"updated_at":        "updated_at ASC",
	"-updated_at":       "updated_at DESC",
	"sender_full_name":  "sender_full_name ASC",
	"-sender_full_name": "sender_full_name DESC",
}

// OrderBy переводит параметр ordering в выражение сортировки.
// Неизвестные значения игнорируются, по умолчанию — новые записи первыми.
func (q *ShipmentListQuery) OrderBy() string {
	if expr, ok := orderingColumns[q.Ordering]; ok {
		return expr
	}
	return "created_at DESC"
}
