package rest

import (
	"database/sql"

	"netinv-api/db"

	"github.com/gofiber/fiber/v2"
)

func ListIPsHandler(c *fiber.Ctx) error {
	ips, err := db.GetIPInventory()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve IP addresses")
	}

	return c.JSON(ipInventoryToDetails(ips))
}

func ipInventoryToDetails(ips []db.IPInventoryRow) []IPDetail {
	details := make([]IPDetail, len(ips))
	for i, ip := range ips {
		details[i] = IPDetail{
			ID:          ip.ID,
			IPAddress:   ip.IPAddress.IPAddress,
			DeviceID:    ip.DeviceID,
			DeviceName:  ip.DeviceName,
			DeviceType:  ip.DeviceType,
			ClientID:    ip.ClientID,
			ClientName:  ip.ClientName,
			Description: ip.Description,
		}
	}
	return details
}

func CreateIPHandler(c *fiber.Ctx) error {
	var req IPRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	ip := &db.IPAddress{
		IPAddress:   req.IPAddress,
		DeviceID:    req.DeviceID,
		Description: req.Description,
	}

	id, err := db.CreateIP(ip)
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "IP address already exists")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to create IP address")
	}

	return c.Status(fiber.StatusCreated).JSON(CreatedResponse{
		ID:      id,
		Message: "IP address added successfully",
	})
}

func BulkCreateIPsHandler(c *fiber.Ctx) error {
	var req BulkIPRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	ips := make([]db.IPAddress, len(req.IPs))
	for i, r := range req.IPs {
		ips[i] = db.IPAddress{
			IPAddress:   r.IPAddress,
			DeviceID:    r.DeviceID,
			Description: r.Description,
		}
	}

	err := db.BulkCreateIPs(ips)
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "One or more IP addresses already exist")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to create IP addresses")
	}

	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Message: "IP addresses added successfully",
	})
}

func UpdateIPHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid IP id")
	}

	var req IPRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	ip := &db.IPAddress{
		ID:          int64(id),
		IPAddress:   req.IPAddress,
		DeviceID:    req.DeviceID,
		Description: req.Description,
	}

	err = db.UpdateIP(ip)
	if err == sql.ErrNoRows {
		return ReturnNotFound(c, "IP address not found")
	}
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "IP address already exists")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to update IP address")
	}

	return c.JSON(SuccessResponse{Message: "IP address updated successfully"})
}

func DeleteIPHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid IP id")
	}

	if err := db.DeleteIP(int64(id)); err != nil {
		return ReturnInternalError(c, "Failed to delete IP address")
	}

	return c.JSON(SuccessResponse{Message: "IP address deleted successfully"})
}
