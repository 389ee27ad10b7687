package jobs

import (
	"time"

	"stayhub/utils"

	"github.com/robfig/cron/v3"
)

// PropertyPriceRefresher định nghĩa interface cho việc tính lại giá thấp nhất
// của property
type PropertyPriceRefresher interface {
	RefreshAllLowestPrices() error
}

var propertyPriceRefresher PropertyPriceRefresher

// SetPropertyPriceRefresher thiết lập implementation cho PropertyPriceRefresher
func SetPropertyPriceRefresher(refresher PropertyPriceRefresher) {
	propertyPriceRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Chạy lúc 0h mỗi ngày, khuyến mãi hết hạn qua đêm làm giá lưu sẵn lệch đi
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang chạy cập nhật giá thấp nhất cho property lúc: %v", now)
		if propertyPriceRefresher == nil {
			utils.LogError("Lỗi: PropertyPriceRefresher chưa được thiết lập")
			return
		}
		if err := propertyPriceRefresher.RefreshAllLowestPrices(); err != nil {
			utils.LogError("Lỗi khi cập nhật giá thấp nhất cho property: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}
