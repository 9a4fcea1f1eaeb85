package internal

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

type Role string

const (
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

type Actor struct {
	UserID int64
	Role   Role
}

// customerTransitions lists the targets a customer may request on own orders.
var customerTransitions = map[model.Status]bool{
	model.OrderStatusCancelled:    true,
	model.OrderStatusAcknowledged: true,
}

type IService interface {
	GetJWTToken(uid int64, role Role) (string, error)
	GetOrder(context.Context, int64, Actor) (model.Order, error)
	GetQueue(context.Context, Actor) ([]model.Order, error)
	StartPreparing(context.Context, int64, Actor) (model.Order, error)
	MarkReady(context.Context, int64, Actor) (model.Order, error)
	Complete(context.Context, int64, Actor) (model.Order, error)
	Acknowledge(context.Context, int64, Actor) (model.Order, error)
	Cancel(context.Context, int64, Actor) (model.Order, error)
}

type Service struct {
	Repository IRepository
	notifier   INotifier
	clock      Clock
	logger     *zap.SugaredLogger
	secret     []byte
}

func NewService(repository IRepository, notifier INotifier, clock Clock, secret string, logger *zap.SugaredLogger) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		Repository: repository,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
		secret:     []byte(secret),
	}
}

func (s Service) GetJWTToken(uid int64, role Role) (string, error) {
	claims := jwt.MapClaims{
		"id":   strconv.FormatInt(uid, 10),
		"role": string(role),
		"exp":  s.clock.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s Service) GetOrder(ctx context.Context, id int64, actor Actor) (model.Order, error) {
	o, err := s.Repository.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}

	if actor.Role != RoleStaff && o.UserID != actor.UserID {
		return model.Order{}, ErrForbidden
	}
	return o, nil
}

func (s Service) GetQueue(ctx context.Context, actor Actor) ([]model.Order, error) {
	if actor.Role != RoleStaff {
		return nil, ErrForbidden
	}
	return s.Repository.GetOpenOrders(ctx)
}

func (s Service) StartPreparing(ctx context.Context, id int64, actor Actor) (model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusPreparing, actor)
}

func (s Service) MarkReady(ctx context.Context, id int64, actor Actor) (model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusReady, actor)
}

func (s Service) Complete(ctx context.Context, id int64, actor Actor) (model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusCompleted, actor)
}

func (s Service) Acknowledge(ctx context.Context, id int64, actor Actor) (model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusAcknowledged, actor)
}

func (s Service) Cancel(ctx context.Context, id int64, actor Actor) (model.Order, error) {
	return s.transition(ctx, id, model.OrderStatusCancelled, actor)
}

func (s Service) transition(ctx context.Context, id int64, to model.Status, actor Actor) (model.Order, error) {
	o, err := s.Repository.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}

	if !s.allowed(o, to, actor) {
		return model.Order{}, ErrForbidden
	}

	if !model.CanTransition(o.Status, to) {
		return model.Order{}, &InvalidTransitionError{OrderID: o.ID, From: o.Status, To: to}
	}

	now := s.clock.Now()
	var startedAt *time.Time
	if to == model.OrderStatusPreparing {
		startedAt = &now
		if o.EstimatedPrepMinutes == 0 {
			if m := EstimatePrepMinutes(o.Items); m > 0 {
				if err = s.Repository.SetEstimatedPrep(ctx, o.ID, m); err != nil {
					return model.Order{}, err
				}
				o.EstimatedPrepMinutes = m
			}
		}
	}

	from := o.Status
	if err = s.Repository.UpdateStatus(ctx, o.ID, from, to, startedAt); err != nil {
		return model.Order{}, err
	}

	o.Status = to
	if startedAt != nil {
		o.PreparationStartedAt = startedAt
	}

	s.logger.Infof("order %d moved from %s to %s by %s %d", o.ID, from, to, actor.Role, actor.UserID)
	e := statusChanged(o.ID, from, to, now, startedAt)
	s.notify(model.OrderChannel(o.ID), e)
	// staff dashboards learn about changes made by customers
	if actor.Role == RoleCustomer {
		s.notify(model.AdminsChannel, e)
	}
	return o, nil
}

func (s Service) notify(channel string, e model.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(channel, e); err != nil {
		s.logger.Warnf("notification for order %d to %s not queued: %s", e.OrderID, channel, err.Error())
	}
}

func (s Service) allowed(o model.Order, to model.Status, actor Actor) bool {
	switch actor.Role {
	case RoleStaff:
		return true
	case RoleCustomer:
		return o.UserID == actor.UserID && customerTransitions[to]
	}
	return false
}
