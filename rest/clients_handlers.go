package rest

import (
	"database/sql"

	"netinv-api/db"
	"netinv-api/ipam"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func ListClientsHandler(c *fiber.Ctx) error {
	clients, err := db.GetClients()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve clients")
	}

	details := make([]ClientDetail, len(clients))
	for i, cl := range clients {
		details[i] = clientRowToDetail(cl)
	}

	return c.JSON(details)
}

func clientRowToDetail(cl db.ClientDetailRow) ClientDetail {
	return ClientDetail{
		ID:           cl.ID,
		Name:         cl.Name,
		ContactInfo:  cl.ContactInfo,
		DeviceID:     cl.DeviceID,
		DeviceName:   cl.DeviceName,
		DeviceType:   cl.DeviceType,
		MACAddress:   cl.MACAddress,
		IPID:         cl.IPID,
		IPAddress:    cl.IPAddressStr,
		LocationID:   cl.LocationID,
		LocationName: cl.LocationName,
		Description:  cl.Description,
	}
}

func ListClientsByAreaHandler(c *fiber.Ctx) error {
	groups, err := db.GetClientsByArea()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve clients by area")
	}

	details := make([]AreaDetail, len(groups))
	for i, g := range groups {
		clients := make([]AreaClientDetail, len(g.Clients))
		for j, cl := range g.Clients {
			clients[j] = AreaClientDetail{
				ID:          cl.ID,
				Name:        cl.Name,
				ContactInfo: cl.ContactInfo,
				DeviceName:  cl.DeviceName,
				DeviceType:  cl.DeviceType,
				IPAddress:   cl.IPAddress,
			}
		}
		details[i] = AreaDetail{
			LocationID:   g.LocationID,
			LocationName: g.LocationName,
			Clients:      clients,
		}
	}

	return c.JSON(details)
}

// ListAvailableIPsHandler serves both the unscoped listing and the
// per-device variant; the device filter comes from the optional route param.
func ListAvailableIPsHandler(c *fiber.Ctx) error {
	var targetDeviceID *int64
	if c.Params("deviceId") != "" {
		id, err := c.ParamsInt("deviceId")
		if err != nil {
			return ReturnBadRequest(c, "Invalid device id")
		}
		v := int64(id)
		targetDeviceID = &v
	}

	inventory, err := db.GetIPInventory()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve IP inventory")
	}

	records := make([]ipam.Record, len(inventory))
	assigned := make(map[int64]bool)
	rowsByID := make(map[int64]db.IPInventoryRow, len(inventory))

	for i, row := range inventory {
		rec := ipam.Record{
			ID:       row.ID,
			Address:  row.IPAddress.IPAddress,
			DeviceID: row.DeviceID,
		}
		if row.DeviceType != nil {
			rec.DeviceType = *row.DeviceType
		}
		records[i] = rec
		rowsByID[row.ID] = row

		if row.ClientID != nil {
			assigned[row.ID] = true
		}
	}

	available, malformed := ipam.Resolve(records, assigned, targetDeviceID)
	for _, rec := range malformed {
		log.Warnf("skipping malformed stored IP address %q (id %d)", rec.Address, rec.ID)
	}

	details := make([]AvailableIPDetail, len(available))
	for i, rec := range available {
		row := rowsByID[rec.ID]
		details[i] = AvailableIPDetail{
			ID:          row.ID,
			IPAddress:   row.IPAddress.IPAddress,
			DeviceID:    row.DeviceID,
			DeviceName:  row.DeviceName,
			DeviceType:  row.DeviceType,
			Description: row.Description,
		}
	}

	return c.JSON(details)
}

func GetClientHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid client id")
	}

	client, err := db.GetClientByID(int64(id))
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve client")
	}
	if client == nil {
		return ReturnNotFound(c, "Client not found")
	}

	return c.JSON(clientRowToDetail(*client))
}

func CreateClientHandler(c *fiber.Ctx) error {
	var req ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	if req.IPID != nil {
		taken, err := db.IsIPAssignedToOther(*req.IPID, 0)
		if err != nil {
			return ReturnInternalError(c, "Failed to check IP assignment")
		}
		if taken {
			return ReturnConflict(c, "IP address already assigned to another client")
		}
	}

	client := &db.Client{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		DeviceID:    req.DeviceID,
		IPID:        req.IPID,
		Description: req.Description,
	}

	id, err := db.CreateClient(client)
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "IP address already assigned to another client")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to create client")
	}

	return c.Status(fiber.StatusCreated).JSON(CreatedResponse{
		ID:      id,
		Message: "Client added successfully",
	})
}

func UpdateClientHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid client id")
	}

	var req ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	if req.IPID != nil {
		taken, err := db.IsIPAssignedToOther(*req.IPID, int64(id))
		if err != nil {
			return ReturnInternalError(c, "Failed to check IP assignment")
		}
		if taken {
			return ReturnConflict(c, "IP address already assigned to another client")
		}
	}

	client := &db.Client{
		ID:          int64(id),
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		DeviceID:    req.DeviceID,
		IPID:        req.IPID,
		Description: req.Description,
	}

	err = db.UpdateClient(client)
	if err == sql.ErrNoRows {
		return ReturnNotFound(c, "Client not found")
	}
	if db.IsDuplicateKey(err) {
		return ReturnConflict(c, "IP address already assigned to another client")
	}
	if err != nil {
		return ReturnInternalError(c, "Failed to update client")
	}

	return c.JSON(SuccessResponse{Message: "Client updated successfully"})
}

func DeleteClientHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid client id")
	}

	if err := db.DeleteClient(int64(id)); err != nil {
		return ReturnInternalError(c, "Failed to delete client")
	}

	return c.JSON(SuccessResponse{Message: "Client deleted successfully"})
}
