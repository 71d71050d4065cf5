package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"hotel-booking/errors"
	"hotel-booking/logger"
	"hotel-booking/middleware"
	"hotel-booking/model"
)

func GetRoot(c *fiber.Ctx) error {
	return c.SendString("hotel booking server is running")
}

// parseDocument decodes a JSON body as relaxed extended JSON so integer
// values are stored as integers. An empty body decodes to an empty document.
func parseDocument(c *fiber.Ctx) (model.Document, error) {
	body := c.Body()
	if len(body) == 0 {
		return model.Document{}, nil
	}
	var doc model.Document
	if err := bson.UnmarshalExtJSON(body, false, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func serverError(c *fiber.Ctx, err error, message string) error {
	logger.ErrorLogger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"method":     c.Method(),
		"path":       c.Path(),
	}).Errorf("%v: %v", message, err)
	return errors.RaiseInternalServerError(c, message)
}

func badBody(c *fiber.Ctx) error {
	return errors.RaiseBadRequestError(c, "invalid request body")
}
