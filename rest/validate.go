package rest

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the validate tags on a request model and flattens the
// first failure into a client-facing message.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", fe.Field())
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
		case "ipv4":
			return fmt.Errorf("%s must be a valid IPv4 address", fe.Field())
		case "mac":
			return fmt.Errorf("%s must be a valid MAC address", fe.Field())
		default:
			return fmt.Errorf("%s is invalid", fe.Field())
		}
	}

	return err
}
