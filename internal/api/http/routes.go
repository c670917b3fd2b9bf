package httpapi

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/fo-weather-stations/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/stations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"stations": service.Stations(),
		})
	})

	v1.Get("/stations/:station/record", func(c *fiber.Ctx) error {
		rec, err := service.Record(c.Context(), c.Params("station"))
		if err != nil {
			return mapError(err)
		}
		return c.JSON(rec)
	})

	v1.Get("/stations/:station/sensors", func(c *fiber.Ctx) error {
		units, err := parseUnitsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sensors, err := service.Sensors(c.Context(), c.Params("station"), units)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{
			"station": c.Params("station"),
			"sensors": sensors,
		})
	})

	v1.Get("/stations/:station/sensors/:sensor", func(c *fiber.Ctx) error {
		units, err := parseUnitsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sv, err := service.Sensor(c.Context(), c.Params("station"), c.Params("sensor"), units)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(sv)
	})
}

// unitsQuery holds the optional unit-system selector.
type unitsQuery struct {
	Units string `validate:"omitempty,oneof=metric imperial"`
}

func parseUnitsQuery(c *fiber.Ctx) (weather.UnitSystem, error) {
	q := unitsQuery{Units: c.Query("units")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return weather.UnitSystem(q.Units), nil
}

// mapError translates service errors onto HTTP statuses: unknown lookups are
// 404, a request abandoned by its own caller is 408, and feed acquisition
// failures surface as 502 so a poller can tell a stale station apart from a
// bad request. Feed-side timeouts are wrapped by the fetch layer and do not
// carry the caller's context error, so they stay on the 502 path.
func mapError(err error) error {
	if errors.Is(err, weather.ErrUnknownStation) || errors.Is(err, weather.ErrUnknownSensor) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fiber.NewError(fiber.StatusRequestTimeout, err.Error())
	}
	return fiber.NewError(fiber.StatusBadGateway, err.Error())
}
