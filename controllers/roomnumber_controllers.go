package controllers

import (
	"errors"
	"strings"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// applyRoomNumberUpdate áp các trường client gửi lên phòng, trường bỏ trống
// giữ nguyên giá trị cũ
func applyRoomNumberUpdate(room *models.RoomNumber, request dto.RoomNumberRequest) error {
	if request.RoomNumber != "" {
		room.RoomNumber = request.RoomNumber
	}
	if request.Status != nil {
		room.Status = *request.Status
		if err := room.ValidateStatus(); err != nil {
			return err
		}
	}
	return nil
}

func convertToRoomNumberResponse(room models.RoomNumber) dto.RoomNumberResponse {
	return dto.RoomNumberResponse{
		ID:         room.ID,
		RoomTypeID: room.RoomTypeID,
		RoomNumber: room.RoomNumber,
		Status:     room.Status,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

// GetRoomNumbers liệt kê các phòng của một loại phòng. Có truyền fromDate thì
// trả kèm cờ phòng còn trống trong khoảng ngày đó.
func GetRoomNumbers(c *gin.Context) {
	roomTypeId := c.Param("roomTypeId")

	var roomType models.RoomType
	if err := config.DB.Preload("RoomNumbers").First(&roomType, roomTypeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomNumberResponse, 0)

	if c.Query("fromDate") != "" {
		fromDate, toDate, err := parseStayWindow(c)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		bookingService := services.NewBookingService(config.DB)
		bookingsByRoom, err := bookingService.ActiveBookingsByRoomNumber(roomType.ID, fromDate, toDate)
		if err != nil {
			response.ServerError(c)
			return
		}

		for _, room := range roomType.RoomNumbers {
			roomResponse := convertToRoomNumberResponse(room)
			isFree := services.CountOverlappingBookings(bookingsByRoom[room.ID], fromDate, toDate) == 0
			roomResponse.IsFree = &isFree
			roomResponses = append(roomResponses, roomResponse)
		}
	} else {
		for _, room := range roomType.RoomNumbers {
			roomResponses = append(roomResponses, convertToRoomNumberResponse(room))
		}
	}

	response.Success(c, roomResponses)
}

func CreateRoomNumber(c *gin.Context) {
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

	var request dto.CreateRoomNumberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.Preload("Parent").First(&roomType, request.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == 2 && roomType.Parent.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if strings.TrimSpace(request.RoomNumber) == "" {
		response.BadRequest(c, "Số phòng không được để trống")
		return
	}

	newRoom := models.RoomNumber{
		RoomTypeID: request.RoomTypeID,
		RoomNumber: request.RoomNumber,
		Status:     constants.RoomNumberStatusAvailable,
	}

	if err := config.DB.Create(&newRoom).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(roomType.Parent.UserID)

	// Loại phòng trước đó chưa có phòng nào thì giá property đổi từ unavailable
	propertyService := services.NewPropertyService(services.PropertyServiceOptions{DB: config.DB})
	go propertyService.RefreshLowestPrice(roomType.PropertyID)

	response.Success(c, convertToRoomNumberResponse(newRoom))
}

func UpdateRoomNumber(c *gin.Context) {
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

	var request dto.RoomNumberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.RoomNumber
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var roomType models.RoomType
	if err := config.DB.Preload("Parent").First(&roomType, room.RoomTypeID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if currentUserRole == 2 && roomType.Parent.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if err := applyRoomNumberUpdate(&room, request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(roomType.Parent.UserID)

	response.Success(c, convertToRoomNumberResponse(room))
}
