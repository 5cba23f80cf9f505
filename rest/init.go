package rest

import (
	"netinv-api/sms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var smsDispatcher *sms.Dispatcher

func Init(app *fiber.App, dispatcher *sms.Dispatcher) {
	smsDispatcher = dispatcher

	SetupSwagger(app)

	api := app.Group("/api")

	api.Get("/locations", ListLocationsHandler)
	api.Post("/locations", CreateLocationHandler)
	api.Get("/locations/:id", GetLocationHandler)
	api.Put("/locations/:id", UpdateLocationHandler)
	api.Delete("/locations/:id", DeleteLocationHandler)

	api.Get("/devices", ListDevicesHandler)
	api.Post("/devices", CreateDeviceHandler)
	api.Put("/devices/:id", UpdateDeviceHandler)
	api.Delete("/devices/:id", DeleteDeviceHandler)

	api.Get("/ips", ListIPsHandler)
	api.Post("/ips", CreateIPHandler)
	api.Post("/ips/bulk", BulkCreateIPsHandler)
	api.Put("/ips/:id", UpdateIPHandler)
	api.Delete("/ips/:id", DeleteIPHandler)

	api.Get("/clients", ListClientsHandler)
	api.Get("/clients/by-area", ListClientsByAreaHandler)
	api.Get("/clients/available-ips", ListAvailableIPsHandler)
	api.Get("/clients/available-ips/:deviceId", ListAvailableIPsHandler)
	api.Post("/clients", CreateClientHandler)
	api.Get("/clients/:id", GetClientHandler)
	api.Put("/clients/:id", UpdateClientHandler)
	api.Delete("/clients/:id", DeleteClientHandler)

	api.Post("/sms/send", SendSMSHandler)
	api.Post("/sms/send-by-location", SendSMSByLocationHandler)
	api.Post("/sms/send-all", SendSMSAllHandler)
	api.Get("/sms/history", ListSMSCampaignsHandler)
	api.Get("/sms/history/:clientId", GetClientSMSHistoryHandler)

	log.Info("REST API started")
}
