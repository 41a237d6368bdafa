package queries

import (
	"time"

	"shipment-service/internal/models"

	"github.com/Masterminds/squirrel"
)

// Поля, по которым работает свободный поиск (?search=)
var searchColumns = []string{
	"sender_full_name",
	"recipient_full_name",
	"origin_location",
	"destination_location",
}

// applyShipmentFilters добавляет к запросу общие для писем и посылок
// условия фильтрации, поиска и сортировки
func applyShipmentFilters(builder squirrel.SelectBuilder, params models.ShipmentListQuery) squirrel.SelectBuilder {
	// Подстрочные фильтры без учета регистра
	if params.SenderFullName != "" {
		builder = builder.Where(squirrel.ILike{"sender_full_name": "%" + params.SenderFullName + "%"})
	}
	if params.RecipientFullName != "" {
		builder = builder.Where(squirrel.ILike{"recipient_full_name": "%" + params.RecipientFullName + "%"})
	}

	// Точные фильтры по пунктам отправки и получения
	if params.OriginLocation != "" {
		builder = builder.Where(squirrel.Eq{"origin_location": params.OriginLocation})
	}
	if params.DestinationLocation != "" {
		builder = builder.Where(squirrel.Eq{"destination_location": params.DestinationLocation})
	}

	// Нижняя граница даты создания, включительно
	if params.CreatedAtAfter != "" {
		createdAfter, err := time.Parse(time.RFC3339, params.CreatedAtAfter)
		if err == nil {
			builder = builder.Where(squirrel.GtOrEq{"created_at": createdAfter})
		}
	}

	// Свободный поиск по ФИО и пунктам
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, column := range searchColumns {
			or = append(or, squirrel.ILike{column: pattern})
		}
		builder = builder.Where(or)
	}

	return builder.OrderBy(params.OrderBy())
}
