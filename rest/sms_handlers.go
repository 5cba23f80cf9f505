package rest

import (
	"errors"

	"netinv-api/db"
	"netinv-api/sms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func SendSMSHandler(c *fiber.Ctx) error {
	var req SendSMSRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	return dispatchAndRespond(c, sms.Selector{ClientIDs: req.Recipients}, req.Message)
}

func SendSMSByLocationHandler(c *fiber.Ctx) error {
	var req SendSMSByLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	return dispatchAndRespond(c, sms.Selector{LocationID: &req.LocationID}, req.Message)
}

func SendSMSAllHandler(c *fiber.Ctx) error {
	var req SendSMSAllRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if err := validateStruct(req); err != nil {
		return ReturnBadRequest(c, err.Error())
	}

	return dispatchAndRespond(c, sms.Selector{All: true}, req.Message)
}

func dispatchAndRespond(c *fiber.Ctx, sel sms.Selector, message string) error {
	result, err := smsDispatcher.Dispatch(c.Context(), sel, message)

	var noValid *sms.NoValidRecipientsError
	if errors.As(err, &noValid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           "No valid contact numbers found",
			"skipped_details": noValid.Skipped,
		})
	}

	var gatewayErr *sms.GatewaySendError
	if errors.As(err, &gatewayErr) {
		log.Errorf("sms gateway send failed: %v", gatewayErr)
		return ReturnBadGateway(c, "SMS gateway send failed")
	}

	if err != nil {
		return ReturnInternalError(c, "Failed to send SMS")
	}

	response := SendSMSResponse{
		Message:        "SMS sent successfully",
		Status:         result.Status,
		BatchID:        result.BatchID,
		Sent:           result.Sent,
		Skipped:        result.Skipped,
		SkippedDetails: result.SkippedDetails,
		GatewayResult:  result.GatewayResult,
	}

	// The gateway already delivered, so a logging failure must not turn
	// into an error response. 202 tells the caller to reconcile logs.
	if result.Status == sms.StatusSentUnlogged {
		log.Errorf("sms batch %s sent but not logged: %v", result.BatchID, result.LoggingError)
		response.Message = "SMS sent but logging failed"
		return c.Status(fiber.StatusAccepted).JSON(response)
	}

	return c.JSON(response)
}

func GetClientSMSHistoryHandler(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("clientId")
	if err != nil {
		return ReturnBadRequest(c, "Invalid client id")
	}

	logs, err := db.GetSMSHistoryForClient(int64(clientID))
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve SMS history")
	}

	details := make([]SMSLogDetail, len(logs))
	for i, l := range logs {
		details[i] = SMSLogDetail{
			ID:       l.ID,
			ClientID: l.ClientID,
			Message:  l.Message,
			SentAt:   l.SentAt,
			BatchID:  l.BatchID,
		}
	}

	return c.JSON(details)
}

func ListSMSCampaignsHandler(c *fiber.Ctx) error {
	rows, err := db.GetSMSHistory()
	if err != nil {
		return ReturnInternalError(c, "Failed to retrieve SMS history")
	}

	return c.JSON(sms.AggregateHistory(rows))
}
