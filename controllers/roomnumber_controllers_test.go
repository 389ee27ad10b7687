package controllers

import (
	"testing"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func statusPtr(v int) *int {
	return &v
}

func TestApplyRoomNumberUpdateKeepsStatusWhenNotSent(t *testing.T) {
	// Chỉ đổi mã phòng thì trạng thái phải giữ nguyên
	room := models.RoomNumber{RoomNumber: "A101", Status: constants.RoomNumberStatusAvailable}

	err := applyRoomNumberUpdate(&room, dto.RoomNumberRequest{RoomNumber: "A105"})

	assert.NoError(t, err)
	assert.Equal(t, "A105", room.RoomNumber)
	assert.Equal(t, constants.RoomNumberStatusAvailable, room.Status)
}

func TestApplyRoomNumberUpdateSetsStatusWhenSent(t *testing.T) {
	room := models.RoomNumber{RoomNumber: "A101", Status: constants.RoomNumberStatusAvailable}

	err := applyRoomNumberUpdate(&room, dto.RoomNumberRequest{Status: statusPtr(constants.RoomNumberStatusMaintenance)})

	assert.NoError(t, err)
	assert.Equal(t, "A101", room.RoomNumber)
	assert.Equal(t, constants.RoomNumberStatusMaintenance, room.Status)
}

func TestApplyRoomNumberUpdateRejectsInvalidStatus(t *testing.T) {
	room := models.RoomNumber{RoomNumber: "A101", Status: constants.RoomNumberStatusAvailable}

	err := applyRoomNumberUpdate(&room, dto.RoomNumberRequest{Status: statusPtr(5)})

	assert.Error(t, err)
}
