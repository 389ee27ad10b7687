package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
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

var CachePropertiesAll = "properties:all"

var layout = "02/01/2006"

// parseStayWindow đọc fromDate/toDate từ query. Không truyền thì mặc định
// ở một đêm từ hôm nay.
func parseStayWindow(c *gin.Context) (time.Time, time.Time, error) {
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	today := time.Now().Truncate(24 * time.Hour)
	fromDate := today
	toDate := today.AddDate(0, 0, 1)

	var err error
	if fromDateStr != "" {
		fromDate, err = time.Parse(layout, fromDateStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fromDate không hợp lệ")
		}
		// Không truyền toDate thì mặc định trả phòng ngày hôm sau
		toDate = fromDate.AddDate(0, 0, 1)
	}
	if toDateStr != "" {
		toDate, err = time.Parse(layout, toDateStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("toDate không hợp lệ")
		}
	}
	return fromDate, toDate, nil
}

func convertToPropertyResponse(property models.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:        property.ID,
		Code:      property.Code,
		Name:      property.Name,
		Address:   property.Address,
		City:      property.City,
		District:  property.District,
		Price:     property.Price,
		Status:    property.Status,
		Avatar:    property.Avatar,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}

func convertToPromotionInfo(promo *services.PromotionDetails) *dto.PromotionInfo {
	if promo == nil {
		return nil
	}
	return &dto.PromotionInfo{
		NameOfSale:     promo.NameOfSale,
		DiscountType:   promo.DiscountType,
		DiscountAmount: promo.DiscountAmount,
		RoomNumber:     promo.RoomNumber,
		RoomTypeName:   promo.RoomTypeName,
		StartDate:      promo.StartDate.Format(layout),
		EndDate:        promo.EndDate.Format(layout),
	}
}

func GetAllProperties(c *gin.Context) {
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
	cityFilter := c.Query("city")
	statusFilter := c.Query("status")

	// Tạo cache key động theo quyền
	var cacheKey string
	if currentUserRole == 2 {
		cacheKey = fmt.Sprintf("properties:tenant:%d", currentUserID)
	} else {
		cacheKey = CachePropertiesAll
	}

	// Kết nối Redis
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allProperties []models.Property

	// Lấy dữ liệu từ Redis
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allProperties); err != nil || len(allProperties) == 0 {
		tx := config.DB.Model(&models.Property{})

		if currentUserRole == 2 {
			// Tenant chỉ thấy property của mình
			tx = tx.Where("user_id = ?", currentUserID)
		}

		if err := tx.Find(&allProperties).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu dữ liệu vào Redis
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allProperties, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách property vào Redis: %v", err)
		}
	}

	// Áp dụng filter trên dữ liệu từ Redis
	filteredProperties := make([]models.Property, 0)
	for _, property := range allProperties {
		if nameFilter != "" {
			decodedNameFilter, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(property.Name), strings.ToLower(decodedNameFilter)) {
				continue
			}
		}
		if cityFilter != "" {
			decodedCityFilter, _ := url.QueryUnescape(cityFilter)
			if !strings.EqualFold(property.City, decodedCityFilter) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatus, _ := strconv.Atoi(statusFilter)
			if property.Status != parsedStatus {
				continue
			}
		}
		filteredProperties = append(filteredProperties, property)
	}

	total := len(filteredProperties)

	// Pagination
	start := page * limit
	end := start + limit
	if start >= total {
		filteredProperties = []models.Property{}
	} else if end > total {
		filteredProperties = filteredProperties[start:]
	} else {
		filteredProperties = filteredProperties[start:end]
	}

	propertyResponses := make([]dto.PropertyResponse, 0)
	for _, property := range filteredProperties {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(property))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, total)
}

// GetDetailedPropertiesByCity tìm property theo thành phố, kèm số phòng trống
// và giá thấp nhất của từng loại phòng trong khoảng ngày yêu cầu
func GetDetailedPropertiesByCity(c *gin.Context) {
	cityFilter := c.Query("city")
	nameFilter := c.Query("name")
	sessionID := c.Query("sessionId")

	// Giữ nil khi client không truyền ngày để bộ lọc phiên trước còn gộp
	// lại được
	var fromPtr, toPtr *time.Time
	if fromDateStr := c.Query("fromDate"); fromDateStr != "" {
		parsed, err := time.Parse(layout, fromDateStr)
		if err != nil {
			response.BadRequest(c, "fromDate không hợp lệ")
			return
		}
		fromPtr = &parsed
	}
	if toDateStr := c.Query("toDate"); toDateStr != "" {
		parsed, err := time.Parse(layout, toDateStr)
		if err != nil {
			response.BadRequest(c, "toDate không hợp lệ")
			return
		}
		toPtr = &parsed
	}

	var priceMin, priceMax *int
	if priceMinStr := c.Query("priceMin"); priceMinStr != "" {
		if parsed, err := strconv.Atoi(priceMinStr); err == nil {
			priceMin = &parsed
		}
	}
	if priceMaxStr := c.Query("priceMax"); priceMaxStr != "" {
		if parsed, err := strconv.Atoi(priceMaxStr); err == nil {
			priceMax = &parsed
		}
	}

	// Gộp với bộ lọc của lần tìm trước nếu client gửi sessionId
	filters := &dto.PropertySearchFilters{
		City:     cityFilter,
		Name:     nameFilter,
		PriceMin: priceMin,
		PriceMax: priceMax,
		FromDate: fromPtr,
		ToDate:   toPtr,
	}
	rdb, redisErr := config.ConnectRedis()
	if sessionID != "" && redisErr == nil {
		if c.Query("resetFilters") == "true" {
			if err := services.ClearLastFilters(config.Ctx, rdb, sessionID); err != nil {
				log.Printf("Lỗi khi xóa bộ lọc tìm kiếm: %v", err)
			}
		} else if lastFilters, err := services.GetLastFilters(config.Ctx, rdb, sessionID); err == nil {
			filters = services.MergeFilters(lastFilters, filters)
		}
		if err := services.SaveLastFilters(config.Ctx, rdb, sessionID, filters); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc tìm kiếm: %v", err)
		}
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
	// Không có ngày nào sau khi gộp thì mặc định ở một đêm từ hôm nay
	today := time.Now().Truncate(24 * time.Hour)
	fromDate := today
	toDate := today.AddDate(0, 0, 1)
	if filters.FromDate != nil {
		fromDate = *filters.FromDate
		toDate = fromDate.AddDate(0, 0, 1)
	}
	if filters.ToDate != nil {
		toDate = *filters.ToDate
	}

	// Loại phòng nháp/ngừng bán và phòng đang bảo trì không tính vào kết quả
	tx := config.DB.Model(&models.Property{}).
		Preload("RoomTypes", "status = ?", constants.RoomTypeStatusActive).
		Preload("RoomTypes.RoomNumbers", "status = ?", constants.RoomNumberStatusAvailable).
		Preload("RoomTypes.RoomNumbers.PriceRules").
		Where("status = ?", constants.PropertyStatusActive)
	if filters.City != "" {
		decodedCity, _ := url.QueryUnescape(filters.City)
		tx = tx.Where("city ILIKE ?", "%"+decodedCity+"%")
	}
	if filters.Name != "" {
		decodedName, _ := url.QueryUnescape(filters.Name)
		tx = tx.Where("name ILIKE ?", "%"+decodedName+"%")
	}

	var properties []models.Property
	if err := tx.Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingService := services.NewBookingService(config.DB)

	propertyResponses := make([]dto.DetailedPropertyResponse, 0)
	for _, property := range properties {
		roomTypeResponses := make([]dto.AvailableRoomTypeResponse, 0)
		for _, roomType := range property.RoomTypes {
			bookings, err := bookingService.ActiveBookingsForRoomType(roomType.ID, fromDate, toDate)
			if err != nil {
				response.ServerError(c)
				return
			}

			availability := services.RoomTypeAvailability(roomType.QuantityRoom, bookings, fromDate, toDate)
			lowest := services.LowestPriceForRoomType(roomType, fromDate)

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
			})
		}

		// Giá thấp nhất của cả property làm badge hiển thị
		propertyLowest := services.LowestPriceForProperty(property.RoomTypes, fromDate)

		if filters.PriceMin != nil && propertyLowest.LowestPrice < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && propertyLowest.LowestPrice > *filters.PriceMax {
			continue
		}

		propertyResponses = append(propertyResponses, dto.DetailedPropertyResponse{
			ID:          property.ID,
			Code:        property.Code,
			Name:        property.Name,
			Address:     property.Address,
			City:        property.City,
			District:    property.District,
			Avatar:      property.Avatar,
			LowestPrice: propertyLowest.LowestPrice,
			PriceSource: propertyLowest.Source,
			Promotion:   convertToPromotionInfo(propertyLowest.Promotion),
			RoomTypes:   roomTypeResponses,
		})
	}

	total := len(propertyResponses)

	start := page * limit
	end := start + limit
	if start >= total {
		propertyResponses = []dto.DetailedPropertyResponse{}
	} else if end > total {
		propertyResponses = propertyResponses[start:]
	} else {
		propertyResponses = propertyResponses[start:end]
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, total)
}

func GetPropertyDetail(c *gin.Context) {
	propertyId := c.Param("id")

	var property models.Property
	if err := config.DB.Preload("RoomTypes").First(&property, propertyId).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomTypeResponses := make([]dto.RoomTypeResponse, 0)
	for _, roomType := range property.RoomTypes {
		roomTypeResponses = append(roomTypeResponses, convertToRoomTypeResponse(roomType))
	}

	response.Success(c, dto.PropertyDetail{
		ID:               property.ID,
		Code:             property.Code,
		Name:             property.Name,
		Address:          property.Address,
		City:             property.City,
		District:         property.District,
		ShortDescription: property.ShortDescription,
		Description:      property.Description,
		Price:            property.Price,
		Status:           property.Status,
		Avatar:           property.Avatar,
		Img:              property.Img,
		TimeCheckIn:      property.TimeCheckIn,
		TimeCheckOut:     property.TimeCheckOut,
		CreatedAt:        property.CreatedAt,
		UpdatedAt:        property.UpdatedAt,
		RoomTypes:        roomTypeResponses,
	})
}

func CreateProperty(c *gin.Context) {
	// Xác thực token
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

	var request dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	newProperty := models.Property{
		Code:             request.Code,
		UserID:           currentUserID,
		Name:             request.Name,
		Address:          request.Address,
		City:             request.City,
		District:         request.District,
		ShortDescription: request.ShortDescription,
		Description:      request.Description,
		Avatar:           request.Avatar,
		Img:              request.Img,
		TimeCheckIn:      request.TimeCheckIn,
		TimeCheckOut:     request.TimeCheckOut,
	}

	if err := validator.ValidateProperty(&newProperty); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&newProperty).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(currentUserID)

	response.Success(c, newProperty)
}

func UpdateProperty(c *gin.Context) {
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

	var request struct {
		ID               uint   `json:"id"`
		Name             string `json:"name"`
		Address          string `json:"address"`
		City             string `json:"city"`
		District         string `json:"district"`
		ShortDescription string `json:"shortDescription"`
		Description      string `json:"description"`
		Avatar           string `json:"avatar"`
		TimeCheckIn      string `json:"timeCheckIn"`
		TimeCheckOut     string `json:"timeCheckOut"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	// Tenant chỉ sửa được property của mình
	if currentUserRole == 2 && property.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if request.Name != "" {
		property.Name = request.Name
	}
	if request.Address != "" {
		property.Address = request.Address
	}
	if request.City != "" {
		property.City = request.City
	}
	if request.District != "" {
		property.District = request.District
	}
	if request.ShortDescription != "" {
		property.ShortDescription = request.ShortDescription
	}
	if request.Description != "" {
		property.Description = request.Description
	}
	if request.Avatar != "" {
		property.Avatar = request.Avatar
	}
	if request.TimeCheckIn != "" {
		property.TimeCheckIn = request.TimeCheckIn
	}
	if request.TimeCheckOut != "" {
		property.TimeCheckOut = request.TimeCheckOut
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(property.UserID)

	response.Success(c, property)
}

func ChangePropertyStatus(c *gin.Context) {
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

	var property models.Property
	if err := config.DB.First(&property, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == 2 && property.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	property.Status = input.Status
	if err := property.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCaches(property.UserID)

	response.Success(c, property)
}

// invalidatePropertyCaches xóa cache danh sách property sau khi ghi
func invalidatePropertyCaches(tenantID uint) {
	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, CachePropertiesAll)
	_ = services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("properties:tenant:%d", tenantID))
}
