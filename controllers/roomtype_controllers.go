package controllers

import (
	"errors"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToRoomTypeResponse(roomType models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:           roomType.ID,
		PropertyID:   roomType.PropertyID,
		Name:         roomType.Name,
		BasePrice:    roomType.BasePrice,
		QuantityRoom: roomType.QuantityRoom,
		NumBed:       roomType.NumBed,
		NumTolet:     roomType.NumTolet,
		Acreage:      roomType.Acreage,
		People:       roomType.People,
		Status:       roomType.Status,
		Avatar:       roomType.Avatar,
		CreatedAt:    roomType.CreatedAt,
		UpdatedAt:    roomType.UpdatedAt,
	}
}

func GetRoomTypesByProperty(c *gin.Context) {
	propertyId := c.Param("propertyId")

	var roomTypes []models.RoomType
	if err := config.DB.Where("property_id = ?", propertyId).Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomTypeResponses := make([]dto.RoomTypeResponse, 0)
	for _, roomType := range roomTypes {
		roomTypeResponses = append(roomTypeResponses, convertToRoomTypeResponse(roomType))
	}

	response.Success(c, roomTypeResponses)
}

// GetAvailableRoomTypes trả về các loại phòng của một property theo mã, kèm số
// phòng trống, danh sách phòng trống và giá thấp nhất trong khoảng ngày yêu cầu
func GetAvailableRoomTypes(c *gin.Context) {
	propertyCode := c.Param("code")

	fromDate, toDate, err := parseStayWindow(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.
		Preload("RoomTypes", "status = ?", constants.RoomTypeStatusActive).
		Preload("RoomTypes.RoomNumbers", "status = ?", constants.RoomNumberStatusAvailable).
		Preload("RoomTypes.RoomNumbers.PriceRules").
		Where("code = ?", propertyCode).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	bookingService := services.NewBookingService(config.DB)

	roomTypeResponses := make([]dto.AvailableRoomTypeResponse, 0)
	for _, roomType := range property.RoomTypes {
		bookings, err := bookingService.ActiveBookingsForRoomType(roomType.ID, fromDate, toDate)
		if err != nil {
			response.ServerError(c)
			return
		}

		availability := services.RoomTypeAvailability(roomType.QuantityRoom, bookings, fromDate, toDate)
		lowest := services.LowestPriceForRoomType(roomType, fromDate)

		// Booking gắn phòng cụ thể mới chặn được phòng đó
		bookingsByRoom := services.GroupBookingsByRoomNumber(bookings)
		freeRooms := make([]string, 0)
		for _, room := range services.FreeRoomNumbers(roomType.RoomNumbers, bookingsByRoom, fromDate, toDate) {
			freeRooms = append(freeRooms, room.RoomNumber)
		}

		roomTypeResponses = append(roomTypeResponses, dto.AvailableRoomTypeResponse{
			ID:             roomType.ID,
			PropertyID:     roomType.PropertyID,
			Name:           roomType.Name,
			BasePrice:      roomType.BasePrice,
			QuantityRoom:   roomType.QuantityRoom,
			NumBed:         roomType.NumBed,
			People:         roomType.People,
			Avatar:         roomType.Avatar,
			AvailableRooms: availability.AvailableRooms,
			IsAvailable:    availability.IsAvailable,
			LowestPrice:    lowest.LowestPrice,
			PriceSource:    lowest.Source,
			Promotion:      convertToPromotionInfo(lowest.Promotion),
			FreeRooms:      freeRooms,
		})
	}

	response.Success(c, roomTypeResponses)
}

// GetRoomTypeLowestPrice tính giá thấp nhất của một loại phòng tại một ngày,
// mặc định là hôm nay
func GetRoomTypeLowestPrice(c *gin.Context) {
	roomTypeId := c.Param("id")

	onDate := time.Now().Truncate(24 * time.Hour)
	if onDateStr := c.Query("onDate"); onDateStr != "" {
		parsed, err := time.Parse(layout, onDateStr)
		if err != nil {
			response.BadRequest(c, "onDate không hợp lệ")
			return
		}
		onDate = parsed
	}

	var roomType models.RoomType
	if err := config.DB.
		Preload("RoomNumbers", "status = ?", constants.RoomNumberStatusAvailable).
		Preload("RoomNumbers.PriceRules").
		First(&roomType, roomTypeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	lowest := services.LowestPriceForRoomType(roomType, onDate)

	response.Success(c, gin.H{
		"roomTypeId":  roomType.ID,
		"onDate":      onDate.Format(layout),
		"lowestPrice": lowest.LowestPrice,
		"priceSource": lowest.Source,
		"promotion":   convertToPromotionInfo(lowest.Promotion),
	})
}

func CreateRoomType(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == 2 && property.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	newRoomType := models.RoomType{
		PropertyID:   request.PropertyID,
		Name:         request.Name,
		BasePrice:    request.BasePrice,
		QuantityRoom: request.QuantityRoom,
		NumBed:       request.NumBed,
		NumTolet:     request.NumTolet,
		Acreage:      request.Acreage,
		People:       request.People,
		Description:  request.Description,
		Avatar:       request.Avatar,
		Img:          request.Img,
	}

	if err := validator.ValidateRoomType(&newRoomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&newRoomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(property.UserID)

	// Cập nhật lại giá thấp nhất đã denormalize của property
	propertyService := services.NewPropertyService(services.PropertyServiceOptions{DB: config.DB})
	go propertyService.RefreshLowestPrice(newRoomType.PropertyID)

	response.Success(c, convertToRoomTypeResponse(newRoomType))
}

func UpdateRoomType(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.RoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.Preload("Parent").First(&roomType, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if currentUserRole == 2 && roomType.Parent.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if request.Name != "" {
		roomType.Name = request.Name
	}
	if request.BasePrice > 0 {
		// Đổi giá gốc không tính lại final_price của các rule đã lưu
		roomType.BasePrice = request.BasePrice
	}
	if request.QuantityRoom > 0 {
		roomType.QuantityRoom = request.QuantityRoom
	}
	if request.NumBed > 0 {
		roomType.NumBed = request.NumBed
	}
	if request.NumTolet > 0 {
		roomType.NumTolet = request.NumTolet
	}
	if request.Acreage > 0 {
		roomType.Acreage = request.Acreage
	}
	if request.People > 0 {
		roomType.People = request.People
	}
	if request.Description != "" {
		roomType.Description = request.Description
	}
	if request.Avatar != "" {
		roomType.Avatar = request.Avatar
	}
	if len(request.Img) > 0 {
		roomType.Img = request.Img
	}

	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(roomType.Parent.UserID)

	propertyService := services.NewPropertyService(services.PropertyServiceOptions{DB: config.DB})
	go propertyService.RefreshLowestPrice(roomType.PropertyID)

	response.Success(c, convertToRoomTypeResponse(roomType))
}

func ChangeRoomTypeStatus(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var input struct {
		ID     uint `json:"id"`
		Status int  `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.Preload("Parent").First(&roomType, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == 2 && roomType.Parent.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	roomType.Status = input.Status
	if err := roomType.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(roomType.Parent.UserID)

	response.Success(c, convertToRoomTypeResponse(roomType))
}
