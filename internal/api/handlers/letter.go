package handlers

import (
	"errors"
	"net/http"

	"shipment-service/internal/db/queries"
	"shipment-service/internal/models"

	"github.com/gin-gonic/gin"
)

// LetterHandler содержит обработчики для работы с письмами
type LetterHandler struct {
	letterQueries queries.LetterQueriesInterface
}

// NewLetterHandler создает новый экземпляр LetterHandler
func NewLetterHandler(letterQueries queries.LetterQueriesInterface) *LetterHandler {
	return &LetterHandler{
		letterQueries: letterQueries,
	}
}

// ListLetters обрабатывает запрос на получение списка писем
// с фильтрацией, поиском и сортировкой
func (h *LetterHandler) ListLetters(c *gin.Context) {
	var query models.LetterListQuery

	// Извлекаем параметры запроса
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Неверные параметры запроса: " + err.Error(),
		})
		return
	}

	letters, err := h.letterQueries.ListLetters(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при получении списка писем.",
		})
		return
	}

	// Пустой результат фильтрации — это пустой список, а не ошибка
	response := make([]models.LetterResponse, 0, len(letters))
	for i := range letters {
		response = append(response, models.NewLetterResponse(&letters[i]))
	}

	c.JSON(http.StatusOK, response)
}

// GetLetter обрабатывает запрос на получение письма по ID
func (h *LetterHandler) GetLetter(c *gin.Context) {
	letter, err := h.letterQueries.GetLetter(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrLetterNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Письмо с таким ID не найдено.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при получении письма.",
		})
		return
	}

	c.JSON(http.StatusOK, models.NewLetterResponse(letter))
}

// CreateLetter обрабатывает запрос на создание письма
func (h *LetterHandler) CreateLetter(c *gin.Context) {
	var input models.LetterInput

	// Проверяем запрос
	if err := c.ShouldBindJSON(&input); err != nil {
		if details := bindingDetails(err); details != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Не удалось создать письмо. Неверные данные.",
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
			Error:   "Не удалось создать письмо. Неверные данные.",
			Details: errs,
		})
		return
	}

	letter, err := h.letterQueries.CreateLetter(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при создании письма.",
		})
		return
	}

	c.JSON(http.StatusCreated, models.NewLetterResponse(letter))
}

// UpdateLetter обрабатывает запрос на полное (PUT) или частичное (PATCH)
// обновление письма
func (h *LetterHandler) UpdateLetter(c *gin.Context) {
	// PATCH разрешает прислать только часть полей
	partial := c.Request.Method == http.MethodPatch

	var input models.LetterInput

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

	letter, err := h.letterQueries.UpdateLetter(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, queries.ErrLetterNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Письмо с таким ID не найдено.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при обновлении письма.",
		})
		return
	}

	c.JSON(http.StatusOK, models.NewLetterResponse(letter))
}

// DeleteLetter обрабатывает запрос на удаление письма
func (h *LetterHandler) DeleteLetter(c *gin.Context) {
	err := h.letterQueries.DeleteLetter(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrLetterNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Не удалось удалить. Письмо не найдено.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Ошибка при удалении письма.",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
