package controllers

import (
	goerrors "errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var CacheBookingsAll = "bookings:all"

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	actor := dto.ActorResponse{
		Name:        booking.GuestName,
		Email:       booking.GuestEmail,
		PhoneNumber: booking.GuestPhone,
	}
	if booking.User != nil {
		actor = dto.ActorResponse{
			Name:        booking.User.Name,
			Email:       booking.User.Email,
			PhoneNumber: booking.User.PhoneNumber,
		}
	}

	roomNumber := ""
	if booking.RoomNumber != nil {
		roomNumber = booking.RoomNumber.RoomNumber
	}

	return dto.BookingResponse{
		ID:   booking.ID,
		User: actor,
		Property: dto.BookingPropertyResponse{
			ID:      booking.Property.ID,
			Code:    booking.Property.Code,
			Name:    booking.Property.Name,
			Address: booking.Property.Address,
			City:    booking.Property.City,
			Avatar:  booking.Property.Avatar,
		},
		RoomType: dto.BookingRoomTypeResponse{
			ID:        booking.RoomType.ID,
			Name:      booking.RoomType.Name,
			BasePrice: booking.RoomType.BasePrice,
		},
		RoomNumber:   roomNumber,
		CheckInDate:  booking.CheckInDate.Format(layout),
		CheckOutDate: booking.CheckOutDate.Format(layout),
		Status:       booking.Status,
		NightlyPrice: booking.NightlyPrice,
		PriceSource:  booking.PriceSource,
		TotalPrice:   booking.TotalPrice,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

func GetBookings(c *gin.Context) {
	// Xác thực token
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

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	nameFilter := c.Query("name")
	phoneFilter := c.Query("phone")
	statusFilter := c.Query("status")
	propertyFilter := c.Query("propertyId")

	// Tạo cache key động theo quyền
	var cacheKey string
	if currentUserRole == 2 {
		cacheKey = fmt.Sprintf("bookings:tenant:%d", currentUserID)
	} else {
		cacheKey = CacheBookingsAll
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allBookings []models.Booking

	// Lấy dữ liệu từ Redis
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		tx := config.DB.Model(&models.Booking{}).
			Preload("User").Preload("Property").Preload("RoomType").Preload("RoomNumber")

		if currentUserRole == 2 {
			// Tenant chỉ thấy booking trên property của mình
			tx = tx.Joins("JOIN properties ON properties.id = bookings.property_id").
				Where("properties.user_id = ?", currentUserID)
		}

		if err := tx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 5*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	// Áp dụng filter trên dữ liệu từ Redis
	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if nameFilter != "" {
			name := booking.GuestName
			if booking.User != nil {
				name = booking.User.Name
			}
			if !strings.Contains(strings.ToLower(name), strings.ToLower(nameFilter)) {
				continue
			}
		}
		if phoneFilter != "" {
			phone := booking.GuestPhone
			if booking.User != nil {
				phone = booking.User.PhoneNumber
			}
			if !strings.Contains(phone, phoneFilter) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatus, _ := strconv.Atoi(statusFilter)
			if booking.Status != parsedStatus {
				continue
			}
		}
		if propertyFilter != "" {
			parsedProperty, _ := strconv.Atoi(propertyFilter)
			if booking.PropertyID != uint(parsedProperty) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	// Booking mới cập nhật lên đầu
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	total := len(filteredBookings)

	start := page * limit
	end := start + limit
	if start >= total {
		filteredBookings = []models.Booking{}
	} else if end > total {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0)
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// CreateBooking tạo booking mới. Kiểm tra phòng trống trước khi ghi nhưng
// không khóa, hai request cùng lúc vẫn có thể cùng đặt được.
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkInDate, err := time.Parse(layout, request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "checkInDate không hợp lệ")
		return
	}
	checkOutDate, err := time.Parse(layout, request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "checkOutDate không hợp lệ")
		return
	}

	if err := validator.ValidateBookingDates(checkInDate, checkOutDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Có token thì gắn user, không thì nhận booking của khách vãng lai
	var userID *uint
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		tokenUserID, _, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		userID = &tokenUserID
	} else if request.UserID != 0 {
		userID = &request.UserID
	} else {
		if err := validator.ValidateGuestInfo(request.GuestName, request.GuestPhone); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	var roomType models.RoomType
	if err := config.DB.
		Preload("RoomNumbers", "status = ?", constants.RoomNumberStatusAvailable).
		Preload("RoomNumbers.PriceRules").
		First(&roomType, request.RoomTypeID).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if roomType.PropertyID != request.PropertyID {
		response.BadRequest(c, "Loại phòng không thuộc property này")
		return
	}

	bookingService := services.NewBookingService(config.DB)
	activeBookings, err := bookingService.ActiveBookingsForRoomType(roomType.ID, checkInDate, checkOutDate)
	if err != nil {
		response.ServerError(c)
		return
	}

	var nightlyPrice int
	var priceSource string
	if request.RoomNumberID != nil {
		// Đặt phòng cụ thể: phòng phải thuộc loại phòng, đang mở bán và chưa
		// bị đụng ngày
		var room *models.RoomNumber
		for i := range roomType.RoomNumbers {
			if roomType.RoomNumbers[i].ID == *request.RoomNumberID {
				room = &roomType.RoomNumbers[i]
				break
			}
		}
		if room == nil {
			response.BadRequest(c, "Phòng không thuộc loại phòng này hoặc đang bảo trì")
			return
		}

		bookingsByRoom := services.GroupBookingsByRoomNumber(activeBookings)
		if services.CountOverlappingBookings(bookingsByRoom[room.ID], checkInDate, checkOutDate) > 0 {
			response.Conflict(c, "Phòng đã có người đặt trong khoảng ngày này")
			return
		}

		resolution := services.ResolvePromotion(roomType.BasePrice, room.PriceRules, checkInDate)
		nightlyPrice = resolution.Price
		priceSource = resolution.Source
	} else {
		availability := services.RoomTypeAvailability(roomType.QuantityRoom, activeBookings, checkInDate, checkOutDate)
		if !availability.IsAvailable {
			response.Conflict(c, "Loại phòng đã hết phòng trong khoảng ngày này")
			return
		}

		lowest := services.LowestPriceForRoomType(roomType, checkInDate)
		if lowest.Source == services.PriceSourceUnavailable {
			nightlyPrice = roomType.BasePrice
			priceSource = services.PriceSourceRegular
		} else {
			nightlyPrice = lowest.LowestPrice
			priceSource = lowest.Source
		}
	}

	nights := int(checkOutDate.Sub(checkInDate).Hours() / 24)

	newBooking := models.Booking{
		UserID:       userID,
		PropertyID:   request.PropertyID,
		RoomTypeID:   request.RoomTypeID,
		RoomNumberID: request.RoomNumberID,
		CheckInDate:  checkInDate,
		CheckOutDate: checkOutDate,
		Status:       models.BookingStatusPending,
		GuestName:    request.GuestName,
		GuestEmail:   request.GuestEmail,
		GuestPhone:   request.GuestPhone,
		NightlyPrice: nightlyPrice,
		PriceSource:  priceSource,
		TotalPrice:   nights * nightlyPrice,
	}

	if err := bookingService.Create(&newBooking); err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches()

	if err := config.DB.Preload("User").Preload("Property").Preload("RoomType").Preload("RoomNumber").
		First(&newBooking, newBooking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(newBooking))
}

func GetBookingDetail(c *gin.Context) {
	bookingId := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Property").Preload("RoomType").Preload("RoomNumber").
		First(&booking, bookingId).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

func ChangeBookingStatus(c *gin.Context) {
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

	bookingService := services.NewBookingService(config.DB)
	booking, err := bookingService.GetByID(input.ID)
	if err != nil {
		response.NotFound(c)
		return
	}

	// Khách chỉ thao tác trên booking của mình
	if currentUserRole == 0 {
		if booking.UserID == nil || *booking.UserID != currentUserID {
			response.Forbidden(c)
			return
		}
	}

	switch input.Status {
	case models.BookingStatusConfirmed:
		if currentUserRole == 0 {
			response.Forbidden(c)
			return
		}
		err = bookingService.Confirm(booking)
	case models.BookingStatusCancelled:
		// Khách chỉ được hủy trước giờ nhận phòng 24 tiếng
		if currentUserRole == 0 && time.Until(booking.CheckInDate) < 24*time.Hour {
			response.BadRequest(c, "Quá hạn hủy, vui lòng liên hệ quản trị viên")
			return
		}
		err = bookingService.Cancel(booking)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err != nil {
		if goerrors.Is(err, errors.ErrBookingCancelled) || goerrors.Is(err, errors.ErrBookingConfirmed) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c)
		return
	}

	invalidateBookingCaches()

	response.Success(c, gin.H{"id": booking.ID, "status": booking.Status})
}

// GetBookingsByUser trả về lịch sử booking của một user
func GetBookingsByUser(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("User").Preload("Property").Preload("RoomType").Preload("RoomNumber").
		Where("user_id = ?", currentUserID).
		Order("updated_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0)
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}

// invalidateBookingCaches xóa cache danh sách booking sau khi ghi, gồm cả
// cache theo tenant
func invalidateBookingCaches() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache booking: %v", err)
	}
}
