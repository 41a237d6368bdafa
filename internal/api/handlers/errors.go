package handlers

import (
	"encoding/json"
	"errors"

	"shipment-service/internal/models"
)

// bindingDetails переводит ошибку разбора тела запроса в карту ошибок
// валидации, если ее удается привязать к конкретному полю (например,
// строка вместо целого индекса). Иначе возвращает nil.
func bindingDetails(err error) models.ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		details := models.ValidationErrors{}
		details.Add(typeErr.Field, models.ErrMsgInvalidValue)
		return details
	}
	return nil
}
