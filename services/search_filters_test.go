package services

import (
	"testing"

	"stayhub/dto"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestMergeFiltersKeepsOldValues(t *testing.T) {
	old := &dto.PropertySearchFilters{City: "Đà Nẵng", PriceMin: intPtr(200000)}
	merged := MergeFilters(old, &dto.PropertySearchFilters{Name: "Biển"})

	assert.Equal(t, "Đà Nẵng", merged.City)
	assert.Equal(t, "Biển", merged.Name)
	assert.Equal(t, 200000, *merged.PriceMin)
}

func TestMergeFiltersNewOverridesOld(t *testing.T) {
	old := &dto.PropertySearchFilters{City: "Đà Nẵng"}
	merged := MergeFilters(old, &dto.PropertySearchFilters{City: "Huế"})

	assert.Equal(t, "Huế", merged.City)
}

func TestMergeFiltersRestoresDatesFromLastSearch(t *testing.T) {
	// Lần tìm mới không truyền ngày thì dùng lại khoảng ngày của lần trước
	fromDate := d(2025, 3, 10)
	toDate := d(2025, 3, 15)
	old := &dto.PropertySearchFilters{FromDate: &fromDate, ToDate: &toDate}

	merged := MergeFilters(old, &dto.PropertySearchFilters{City: "Huế"})

	assert.NotNil(t, merged.FromDate)
	assert.NotNil(t, merged.ToDate)
	assert.Equal(t, fromDate, *merged.FromDate)
	assert.Equal(t, toDate, *merged.ToDate)
}

func TestMergeFiltersConflictingPriceRange(t *testing.T) {
	// PriceMin mới vượt PriceMax cũ thì bỏ PriceMax cũ
	old := &dto.PropertySearchFilters{PriceMax: intPtr(300000)}
	merged := MergeFilters(old, &dto.PropertySearchFilters{PriceMin: intPtr(500000)})

	assert.Equal(t, 500000, *merged.PriceMin)
	assert.Nil(t, merged.PriceMax)
}
