package rest

import (
	"database/sql"

	"netinv-api/db"

	"github.com/gofiber/fiber/v2"
)

func ListDevicesHandler(c *fiber.Ctx) error {
	devices, err := db.GetDevices()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve devices")
	}

	details := make([]DeviceDetail, len(devices))
	for i, d := range devices {
		details[i] = DeviceDetail{
			ID:              d.ID,
			DeviceName:      d.DeviceName,
			DeviceType:      d.DeviceType,
			MACAddress:      d.MACAddress,
			ManagementIP:    d.ManagementIP,
			LocationID:      d.LocationID,
			LocationName:    d.LocationName,
			Description:     d.Description,
			AssignedIPCount: d.AssignedIPCount,
		}
	}

	return c.JSON(details)
}

func CreateDeviceHandler(c *fiber.Ctx) error {
	var req DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	device := &db.Device{
		DeviceName:   req.DeviceName,
		DeviceType:   req.DeviceType,
		MACAddress:   req.MACAddress,
		ManagementIP: req.ManagementIP,
		LocationID:   req.LocationID,
		Description:  req.Description,
	}

	id, err := db.CreateDevice(device)
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "MAC address already exists")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to create device")
	}

	return c.Status(fiber.StatusCreated).JSON(CreatedResponse{
		ID:      id,
		Message: "Device added successfully",
	})
}

func UpdateDeviceHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid device id")
	}

	var req DeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	device := &db.Device{
		ID:           int64(id),
		DeviceName:   req.DeviceName,
		DeviceType:   req.DeviceType,
		MACAddress:   req.MACAddress,
		ManagementIP: req.ManagementIP,
		LocationID:   req.LocationID,
		Description:  req.Description,
	}

	err = db.UpdateDevice(device)
	if err == sql.ErrNoRows {
		return ReturnNotFound(c, "Device not found")
	}
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "MAC address already exists")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to update device")
	}

	return c.JSON(SuccessResponse{Message: "Device updated successfully"})
}

func DeleteDeviceHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid device id")
	}

	if err := db.DeleteDevice(int64(id)); err != nil {
		return ReturnInternalError(c, "Failed to delete device")
	}

	return c.JSON(SuccessResponse{Message: "Device deleted successfully"})
}
