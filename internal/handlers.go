package internal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
	secret  []byte
}

func NewHandlers(Service IService, secret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger, secret: []byte(secret)}
}

func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	api.Get("/queue", h.GetQueue)

	orders := api.Group("/orders")
	orders.Get("/:id", h.GetOrder)
	orders.Post("/:id/start", h.Transition(h.Service.StartPreparing))
	orders.Post("/:id/ready", h.Transition(h.Service.MarkReady))
	orders.Post("/:id/complete", h.Transition(h.Service.Complete))
	orders.Post("/:id/acknowledge", h.Transition(h.Service.Acknowledge))
	orders.Post("/:id/cancel", h.Transition(h.Service.Cancel))
}

func (h *Handlers) GetQueue(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	orders, err := h.Service.GetQueue(c.Context(), actor)
	if err != nil {
		return h.orderError(c, err)
	}
	if len(orders) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	actor, err := h.actorFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	o, err := h.Service.GetOrder(c.Context(), id, actor)
	if err != nil {
		return h.orderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(o)
}

type transitionFunc func(context.Context, int64, Actor) (model.Order, error)

// Transition wraps one of the explicit status changes of the service.
func (h *Handlers) Transition(fn transitionFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := h.actorFromToken(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		o, err := fn(c.Context(), id, actor)
		if err != nil {
			h.logger.Errorf("Error on status change request for order %d: %s", id, err.Error())
			return h.orderError(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(o)
	}
}

func (h *Handlers) orderError(c *fiber.Ctx, err error) error {
	var ite *InvalidTransitionError
	switch {
	case errors.As(err, &ite):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": ite.Error(), "data": fiber.Map{"currentStatus": ite.From}})
	case errors.Is(err, ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, ErrStatusConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on order request"})
}

func (h *Handlers) actorFromToken(c *fiber.Ctx) (Actor, error) {
	tokenString := c.Cookies("token")
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenString == "" {
		return Actor{}, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return h.secret, nil
	})
	if err != nil {
		return Actor{}, err
	}

	id, _ := claims["id"].(string)
	uid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	switch Role(role) {
	case RoleStaff, RoleCustomer:
	default:
		return Actor{}, ErrInvalidToken
	}

	return Actor{UserID: uid, Role: Role(role)}, nil
}
