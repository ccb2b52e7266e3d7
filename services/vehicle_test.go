package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpark/models"
)

func TestRegisterVehicleDuplicate(t *testing.T) {
	setupTestDB(t)

	v := &models.Vehicle{
		OwnerName:     "Asha Rao",
		VehicleNumber: "KA-05-MN-4321",
		VehicleType:   models.VehicleTypeCar,
		ContactNumber: "9876543210",
	}
	require.NoError(t, RegisterVehicle(v))
	assert.NotZero(t, v.ID)
	assert.False(t, v.CreatedAt.IsZero())

	dup := &models.Vehicle{
		OwnerName:     "Someone Else",
		VehicleNumber: "KA-05-MN-4321",
		VehicleType:   models.VehicleTypeBike,
		ContactNumber: "9000000000",
	}
	assert.ErrorIs(t, RegisterVehicle(dup), ErrDuplicateVehicle)
}

func TestVehicleListRoundTrip(t *testing.T) {
	setupTestDB(t)

	image := "data:image/png;base64,abcd"
	v := &models.Vehicle{
		OwnerName:     "Ravi Kumar",
		VehicleNumber: "TN-10-AA-0001",
		VehicleType:   models.VehicleTypeBike,
		ContactNumber: "9123456780",
		ImageURL:      &image,
	}
	require.NoError(t, RegisterVehicle(v))

	vehicles, err := GetAllVehicles()
	require.NoError(t, err)
	require.Len(t, vehicles, 1)

	got := vehicles[0]
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, "Ravi Kumar", got.OwnerName)
	assert.Equal(t, "TN-10-AA-0001", got.VehicleNumber)
	assert.Equal(t, models.VehicleTypeBike, got.VehicleType)
	assert.Equal(t, "9123456780", got.ContactNumber)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, image, *got.ImageURL)
}

func TestUpdateVehicle(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateVehicle(99, map[string]interface{}{"owner_name": "Nobody"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	v := &models.Vehicle{
		OwnerName:     "Asha Rao",
		VehicleNumber: "KA-05-MN-4321",
		VehicleType:   models.VehicleTypeCar,
		ContactNumber: "9876543210",
	}
	require.NoError(t, RegisterVehicle(v))

	updated, err := UpdateVehicle(v.ID, map[string]interface{}{
		"owner_name":     "Asha R",
		"contact_number": "9876500000",
	})
	require.NoError(t, err)
	assert.Equal(t, v.ID, updated.ID)
	assert.Equal(t, "Asha R", updated.OwnerName)
	assert.Equal(t, "9876500000", updated.ContactNumber)
	assert.Equal(t, "KA-05-MN-4321", updated.VehicleNumber)

	// 空的更新回傳原紀錄
	same, err := UpdateVehicle(v.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Asha R", same.OwnerName)
}

func TestDeleteVehicle(t *testing.T) {
	setupTestDB(t)

	assert.ErrorIs(t, DeleteVehicle(1), ErrVehicleNotFound)

	v := &models.Vehicle{
		OwnerName:     "Asha Rao",
		VehicleNumber: "KA-05-MN-4321",
		VehicleType:   models.VehicleTypeCar,
		ContactNumber: "9876543210",
	}
	require.NoError(t, RegisterVehicle(v))
	require.NoError(t, DeleteVehicle(v.ID))

	vehicles, err := GetAllVehicles()
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	assert.ErrorIs(t, DeleteVehicle(v.ID), ErrVehicleNotFound)
}
