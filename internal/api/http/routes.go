package httpapi

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-lookup/internal/weather"
)

var validate = validator.New()

// Allow-list for city names: letters, whitespace, hyphen, apostrophe,
// comma, period.
var cityNameRx = regexp.MustCompile(`^[a-zA-Z\s\-',.]+$`)

func init() {
	validate.RegisterValidation("cityname", func(fl validator.FieldLevel) bool {
		return cityNameRx.MatchString(fl.Field().String())
	})
}

// ErrorHandler renders every handler error as the service's JSON error
// envelope. Wired into fiber.Config by main and by route tests.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. The trailing
// catch-all turns unmatched routes into the JSON 404 envelope, so it must be
// registered after every other route.
func RegisterRoutes(app *fiber.App, client *weather.Client) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Get("/api/weather", func(c *fiber.Ctx) error {
		if !c.Context().QueryArgs().Has("city") {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required parameter: city")
		}

		city := strings.TrimSpace(c.Query("city"))
		msg, err := validateCity(city)
		if err != nil {
			log.Printf("city validation failed unexpectedly for %q: %v", city, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}
		if msg != "" {
			return fiber.NewError(fiber.StatusBadRequest, msg)
		}

		snapshot, err := client.Lookup(c.UserContext(), city)
		if err != nil {
			if errors.Is(err, weather.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "City not found")
			}
			var ue *weather.UpstreamError
			if errors.As(err, &ue) {
				// Detail stays in the logs; callers get a generic message.
				log.Printf("upstream failure for city %q: %v", city, err)
				return fiber.NewError(fiber.StatusBadGateway, "Upstream weather service error")
			}
			log.Printf("unexpected error for city %q: %v", city, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}

		return c.JSON(snapshot)
	})

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})
}

// weatherQuery holds the city parameter; tags evaluate in order, so the first
// failing rule decides the message.
type weatherQuery struct {
	City string `validate:"required,max=100,cityname"`
}

// validateCity returns the 400 message for an invalid trimmed city name, or
// "" when it is acceptable.
func validateCity(city string) (string, error) {
	return validationMessage(validate.Struct(weatherQuery{City: city}))
}

// validationMessage maps a validator result to the client-facing message for
// its first failing rule. Anything that is not a recognized rule failure is
// returned as an error so the handler can treat it as internal.
func validationMessage(err error) (string, error) {
	if err == nil {
		return "", nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return "City parameter cannot be empty", nil
		case "max":
			return "City parameter is too long (max 100 characters)", nil
		case "cityname":
			return "City parameter contains invalid characters", nil
		}
	}
	return "", err
}
