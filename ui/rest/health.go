package rest

import (
	"github.com/AzielCF/az-citydata/domains/health"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
	"github.com/AzielCF/az-citydata/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Health struct {
	Service health.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service health.IHealthUsecase) Health {
	handler := Health{Service: service}

	group := app.Group("/api/health")
	group.Get("/status", handler.GetStatus)

	return handler
}

func (h *Health) GetStatus(c *fiber.Ctx) error {
	record, err := h.Service.GetStatus(c.UserContext())
	if err != nil {
		internal := pkgError.InternalServerError(err.Error())
		return c.Status(internal.StatusCode()).JSON(utils.ResponseData{
			Status:  internal.StatusCode(),
			Code:    internal.ErrCode(),
			Message: internal.Error(),
		})
	}
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Health status retrieved",
		Results: record,
	})
}
