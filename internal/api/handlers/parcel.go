package handlers

import (
	"errors"
	"net/http"

	"shipment-service/internal/db/queries"
	"shipment-service/internal/models"

	"github.com/gin-gonic/gin"
)

// ParcelHandler содержит обработчики для работы с посылками
type ParcelHandler struct {
	parcelQueries queries.ParcelQueriesInterface
}

// NewParcelHandler создает новый экземпляр ParcelHandler
func NewParcelHandler(parcelQueries queries.ParcelQueriesInterface) *ParcelHandler {
	return &ParcelHandler{
		parcelQueries: parcelQueries,
	}
}

// ListParcels обрабатывает запрос на получение списка посылок
// с фильтрацией, поиском и сортировкой
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	var query models.ParcelListQuery

	// Извлекаем параметры запроса
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Неверные параметры запроса: " + err.Error(),
		})
		return
	}

	parcels, err := h.parcelQueries.ListParcels(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при получении списка посылок.",
		})
		return
	}

	// Пустой результат фильтрации — это пустой список, а не ошибка
	response := make([]models.ParcelResponse, 0, len(parcels))
	for i := range parcels {
		response = append(response, models.NewParcelResponse(&parcels[i]))
	}

	c.JSON(http.StatusOK, response)
}

// GetParcel обрабатывает запрос на получение посылки по ID
func (h *ParcelHandler) GetParcel(c *gin.Context) {
	parcel, err := h.parcelQueries.GetParcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrParcelNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Посылка с таким ID не найдена.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при получении посылки.",
		})
		return
	}

	c.JSON(http.StatusOK, models.NewParcelResponse(parcel))
}

// CreateParcel обрабатывает запрос на создание посылки
func (h *ParcelHandler) CreateParcel(c *gin.Context) {
	var input models.ParcelInput

	// Проверяем запрос
	if err := c.ShouldBindJSON(&input); err != nil {
		if details := bindingDetails(err); details != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Не удалось создать посылку. Неверные данные.",
				Details: details,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Валидируем все поля; при ошибках ничего не сохраняем
	if errs := input.Validate(false); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Не удалось создать посылку. Неверные данные.",
			Details: errs,
		})
		return
	}

	parcel, err := h.parcelQueries.CreateParcel(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при создании посылки.",
		})
		return
	}

	c.JSON(http.StatusCreated, models.NewParcelResponse(parcel))
}

// UpdateParcel обрабатывает запрос на полное (PUT) или частичное (PATCH)
// обновление посылки
func (h *ParcelHandler) UpdateParcel(c *gin.Context) {
	// PATCH разрешает прислать только часть полей
	partial := c.Request.Method == http.MethodPatch

	var input models.ParcelInput

	if err := c.ShouldBindJSON(&input); err != nil {
		if details := bindingDetails(err); details != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Не удалось обновить. Ошибки валидации.",
				Details: details,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Неверный запрос: " + err.Error(),
		})
		return
	}

	if errs := input.Validate(partial); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Не удалось обновить. Ошибки валидации.",
			Details: errs,
		})
		return
	}

	parcel, err := h.parcelQueries.UpdateParcel(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, queries.ErrParcelNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Посылка с таким ID не найдена.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при обновлении посылки.",
		})
		return
	}

	c.JSON(http.StatusOK, models.NewParcelResponse(parcel))
}

// DeleteParcel обрабатывает запрос на удаление посылки
func (h *ParcelHandler) DeleteParcel(c *gin.Context) {
	err := h.parcelQueries.DeleteParcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrParcelNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Не удалось удалить. Посылка не найдена.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при удалении посылки.",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
