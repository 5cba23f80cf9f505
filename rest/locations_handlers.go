package rest

import (
	"database/sql"

	"netinv-api/db"

	"github.com/gofiber/fiber/v2"
)

func ListLocationsHandler(c *fiber.Ctx) error {
	locations, err := db.GetLocations()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve locations")
	}

	details := make([]LocationDetail, len(locations))
	for i, l := range locations {
		details[i] = LocationDetail{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
		}
	}

	return c.JSON(details)
}

func GetLocationHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid location id")
	}

	location, err := db.GetLocationByID(int64(id))
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve location")
	}
	if location == nil {
		return ReturnNotFound(c, "Location not found")
	}

	return c.JSON(LocationDetail{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
	})
}

func CreateLocationHandler(c *fiber.Ctx) error {
	var req LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	id, err := db.CreateLocation(req.Name, req.Description)
	if err != nil {
		return ReturnInternalError(c, "Failed to create location")
	}

	return c.Status(fiber.StatusCreated).JSON(CreatedResponse{
		ID:      id,
		Message: "Location added successfully",
	})
}

func UpdateLocationHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid location id")
	}

	var req LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	err = db.UpdateLocation(int64(id), req.Name, req.Description)
	if err == sql.ErrNoRows {
		return ReturnNotFound(c, "Location not found")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to update location")
	}

	return c.JSON(SuccessResponse{Message: "Location updated successfully"})
}

func DeleteLocationHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid location id")
	}

	count, err := db.CountDevicesAtLocation(int64(id))
	if err != nil {
		return ReturnInternalError(c, "Failed to check location usage")
	}
	if count > 0 {
		return ReturnConflict(c, "Cannot delete location: it is being used by one or more devices")
	}

	if err := db.DeleteLocation(int64(id)); err != nil {
		return ReturnInternalError(c, "Failed to delete location")
	}

	return c.JSON(SuccessResponse{Message: "Location deleted successfully"})
}
