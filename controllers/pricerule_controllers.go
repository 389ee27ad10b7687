package controllers

import (
	"errors"
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

func convertToPriceRuleResponse(rule models.PriceRule) dto.PriceRuleResponse {
	return dto.PriceRuleResponse{
		ID:             rule.ID,
		RoomNumberID:   rule.RoomNumberID,
		NameOfSale:     rule.NameOfSale,
		DiscountType:   rule.DiscountType,
		DiscountAmount: rule.DiscountAmount,
		FinalPrice:     rule.FinalPrice,
		StartDate:      rule.StartDate.Format(layout),
		EndDate:        rule.EndDate.Format(layout),
		Status:         rule.Status,
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
	}
}

// refreshPriceForRoomNumber tính lại giá denormalize của property chứa phòng
func refreshPriceForRoomNumber(roomNumberID uint) {
	var room models.RoomNumber
	if err := config.DB.First(&room, roomNumberID).Error; err != nil {
		return
	}
	var roomType models.RoomType
	if err := config.DB.First(&roomType, room.RoomTypeID).Error; err != nil {
		return
	}
	propertyService := services.NewPropertyService(services.PropertyServiceOptions{DB: config.DB})
	propertyService.RefreshLowestPrice(roomType.PropertyID)
}

func GetPriceRules(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
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

	tx := config.DB.Model(&models.PriceRule{})

	if nameFilter := c.Query("name"); nameFilter != "" {
		tx = tx.Where("name_of_sale ILIKE ?", "%"+nameFilter+"%")
	}
	if statusFilter := c.Query("status"); statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if typeFilter := c.Query("discountType"); typeFilter != "" {
		tx = tx.Where("discount_type = ?", typeFilter)
	}
	if roomFilter := c.Query("roomNumberId"); roomFilter != "" {
		tx = tx.Where("room_number_id = ?", roomFilter)
	}
	if onDateStr := c.Query("onDate"); onDateStr != "" {
		// Lọc các rule còn hiệu lực tại một ngày, tính cả hai đầu
		onDate, err := time.Parse(layout, onDateStr)
		if err != nil {
			response.BadRequest(c, "onDate không hợp lệ")
			return
		}
		tx = tx.Where("start_date <= ? AND end_date >= ?", onDate, onDate)
	}

	var totalRules int64
	if err := tx.Count(&totalRules).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rules []models.PriceRule
	if err := tx.Order("updated_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	ruleResponses := make([]dto.PriceRuleResponse, 0)
	for _, rule := range rules {
		ruleResponses = append(ruleResponses, convertToPriceRuleResponse(rule))
	}

	response.SuccessWithPagination(c, ruleResponses, page, limit, int(totalRules))
}

func GetPriceRuleDetail(c *gin.Context) {
	ruleId := c.Param("id")

	var rule models.PriceRule
	if err := config.DB.First(&rule, ruleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToPriceRuleResponse(rule))
}

func CreatePriceRule(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.PriceRuleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	startDate, err := time.Parse(layout, request.StartDate)
	if err != nil {
		response.BadRequest(c, "startDate không hợp lệ")
		return
	}
	endDate, err := time.Parse(layout, request.EndDate)
	if err != nil {
		response.BadRequest(c, "endDate không hợp lệ")
		return
	}

	newRule := models.PriceRule{
		RoomNumberID:   request.RoomNumberID,
		NameOfSale:     request.NameOfSale,
		DiscountType:   request.DiscountType,
		DiscountAmount: request.DiscountAmount,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         constants.PriceRuleStatusActive,
	}

	if err := validator.ValidatePriceRule(&newRule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	priceRuleService := services.NewPriceRuleService(config.DB)
	if err := priceRuleService.Create(&newRule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	go refreshPriceForRoomNumber(newRule.RoomNumberID)

	response.Success(c, convertToPriceRuleResponse(newRule))
}

func UpdatePriceRule(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.PriceRuleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var rule models.PriceRule
	if err := config.DB.First(&rule, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if request.NameOfSale != "" {
		rule.NameOfSale = request.NameOfSale
	}
	if request.DiscountType != "" {
		rule.DiscountType = request.DiscountType
	}
	if request.DiscountAmount > 0 {
		rule.DiscountAmount = request.DiscountAmount
	}
	if request.StartDate != "" {
		startDate, err := time.Parse(layout, request.StartDate)
		if err != nil {
			response.BadRequest(c, "startDate không hợp lệ")
			return
		}
		rule.StartDate = startDate
	}
	if request.EndDate != "" {
		endDate, err := time.Parse(layout, request.EndDate)
		if err != nil {
			response.BadRequest(c, "endDate không hợp lệ")
			return
		}
		rule.EndDate = endDate
	}

	if err := validator.ValidatePriceRule(&rule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	priceRuleService := services.NewPriceRuleService(config.DB)
	if err := priceRuleService.Update(&rule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	go refreshPriceForRoomNumber(rule.RoomNumberID)

	response.Success(c, convertToPriceRuleResponse(rule))
}

func DeletePriceRule(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
		response.Unauthorized(c)
		return
	}

	ruleId := c.Param("id")

	var rule models.PriceRule
	if err := config.DB.First(&rule, ruleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	go refreshPriceForRoomNumber(rule.RoomNumberID)

	response.Success(c, gin.H{"id": rule.ID})
}

func ChangePriceRuleStatus(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
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

	var rule models.PriceRule
	if err := config.DB.First(&rule, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	rule.Status = input.Status
	if err := rule.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	go refreshPriceForRoomNumber(rule.RoomNumberID)

	response.Success(c, convertToPriceRuleResponse(rule))
}
