package routes

import (
	"stayhub/controllers"
	middlewares "stayhub/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(middlewares.ErrorHandler())

	// Property
	v1.GET("/properties", middlewares.AuthMiddleware(1, 2), controllers.GetAllProperties)
	v1.GET("/propertiesSearch", controllers.GetDetailedPropertiesByCity)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.POST("/properties", middlewares.AuthMiddleware(1, 2), controllers.CreateProperty)
	v1.PUT("/propertyUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateProperty)
	v1.PUT("/propertyStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangePropertyStatus)

	// Loại phòng
	v1.GET("/roomTypes/:propertyId", controllers.GetRoomTypesByProperty)
	v1.GET("/availableRoomTypes/:code", controllers.GetAvailableRoomTypes)
	v1.GET("/roomTypeLowestPrice/:id", controllers.GetRoomTypeLowestPrice)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(1, 2), controllers.CreateRoomType)
	v1.PUT("/roomTypeUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoomType)
	v1.PUT("/roomTypeStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRoomTypeStatus)

	// Phòng
	v1.GET("/roomNumbers/:roomTypeId", controllers.GetRoomNumbers)
	v1.POST("/roomNumbers", middlewares.AuthMiddleware(1, 2), controllers.CreateRoomNumber)
	v1.PUT("/roomNumberUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoomNumber)

	// Khuyến mãi
	v1.GET("/priceRules", middlewares.AuthMiddleware(1, 2), controllers.GetPriceRules)
	v1.GET("/priceRules/:id", controllers.GetPriceRuleDetail)
	v1.POST("/priceRules", middlewares.AuthMiddleware(1, 2), controllers.CreatePriceRule)
	v1.PUT("/priceRuleUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdatePriceRule)
	v1.DELETE("/priceRules/:id", middlewares.AuthMiddleware(1, 2), controllers.DeletePriceRule)
	v1.PUT("/priceRuleStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangePriceRuleStatus)

	// Booking
	v1.GET("/bookings", middlewares.AuthMiddleware(1, 2), controllers.GetBookings)
	v1.POST("/bookings", controllers.CreateBooking)
	v1.GET("/bookings/:id", controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(0, 1, 2), controllers.ChangeBookingStatus)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(0, 1, 2), controllers.GetBookingsByUser)
}
