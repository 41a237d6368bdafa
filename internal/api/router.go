package api

import (
	"shipment-service/internal/api/handlers"
	"shipment-service/internal/db"
	"shipment-service/internal/db/queries"

	"github.com/gin-gonic/gin"
)

// SetupRouter настраивает маршруты API
func SetupRouter(db *db.Database) *gin.Engine {
	// Создаем экземпляр Gin
	router := gin.Default()

	// Создаем запросы к базе данных
	letterQueries := queries.NewLetterQueries(db)
	parcelQueries := queries.NewParcelQueries(db)

	// Создаем обработчики
	letterHandler := handlers.NewLetterHandler(letterQueries)
	parcelHandler := handlers.NewParcelHandler(parcelQueries)

	letters := router.Group("/letters")
	{
		letters.GET("", letterHandler.ListLetters)
		letters.POST("", letterHandler.CreateLetter)
		letters.GET("/:id", letterHandler.GetLetter)
		letters.PUT("/:id", letterHandler.UpdateLetter)
		letters.PATCH("/:id", letterHandler.UpdateLetter)
		letters.DELETE("/:id", letterHandler.DeleteLetter)
	}

	parcels := router.Group("/parcels")
	{
		parcels.GET("", parcelHandler.ListParcels)
		parcels.POST("", parcelHandler.CreateParcel)
		parcels.GET("/:id", parcelHandler.GetParcel)
		parcels.PUT("/:id", parcelHandler.UpdateParcel)
		parcels.PATCH("/:id", parcelHandler.UpdateParcel)
		parcels.DELETE("/:id", parcelHandler.DeleteParcel)
	}

	return router
}
