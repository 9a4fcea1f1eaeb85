package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal"
	mock_internal "github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/mock"
	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

var _ = Describe("Queue", func() {
	var (
		ctrl  *gomock.Controller
		queue *internal.Queue
		rep   *mock_internal.MockIRepository
		ntf   *mock_internal.MockINotifier
		now   time.Time
		ctx   context.Context
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)
		ntf = mock_internal.NewMockINotifier(ctrl)
		now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ctx = context.Background()

		queue = internal.NewQueue(rep, ntf, fixedClock{now}, logger.Sugar(), internal.QueueConfig{})
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	started := func(ago time.Duration) *time.Time {
		t := now.Add(-ago)
		return &t
	}

	Context("Sweep", func() {
		It("starts preparing a received order close to its pickup", func() {
			order := model.Order{
				ID:                   1,
				PickupDeadline:       now.Add(20 * time.Minute),
				PlacedAt:             now.Add(-time.Hour),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 15,
			}

			var event model.Event
			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)
			rep.EXPECT().UpdateStatus(gomock.Any(), int64(1), model.OrderStatusReceived, model.OrderStatusPreparing, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, _, _ model.Status, startedAt *time.Time) error {
					Expect(startedAt).ShouldNot(BeNil())
					Expect(*startedAt).Should(Equal(now))
					return nil
				})
			ntf.EXPECT().Notify("order_1", gomock.Any()).
				DoAndReturn(func(_ string, e model.Event) error {
					event = e
					return nil
				}).Times(1)

			res, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Started).Should(Equal(1))
			Expect(event.Type).Should(Equal(model.EventStatusChanged))
			Expect(event.NewStatus).Should(Equal(model.OrderStatusPreparing))
			Expect(event.OldStatus).Should(Equal(model.OrderStatusReceived))
			Expect(event.PreparationStartedAt).ShouldNot(BeNil())
			Expect(*event.PreparationStartedAt).Should(Equal(now))
			Expect(event.ID).ShouldNot(BeEmpty())
		})
		It("leaves a received order with enough time untouched", func() {
			order := model.Order{
				ID:                   2,
				PickupDeadline:       now.Add(26 * time.Minute),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 15,
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)

			res, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Evaluated).Should(Equal(1))
			Expect(res.Started).Should(Equal(0))
		})
		It("starts a received order exactly at estimate plus buffer", func() {
			order := model.Order{
				ID:                   20,
				PickupDeadline:       now.Add(25 * time.Minute),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 15,
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)
			rep.EXPECT().UpdateStatus(gomock.Any(), int64(20), model.OrderStatusReceived, model.OrderStatusPreparing, &now).Return(nil)
			ntf.EXPECT().Notify("order_20", gomock.Any()).Return(nil)

			res, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Started).Should(Equal(1))
		})
		It("never starts an order without pickup deadline", func() {
			order := model.Order{ID: 3, Status: model.OrderStatusReceived, EstimatedPrepMinutes: 15}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)

			_, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("marks ready only orders whose prep time elapsed", func() {
			done := model.Order{
				ID:                   4,
				PickupDeadline:       now.Add(5 * time.Minute),
				Status:               model.OrderStatusPreparing,
				EstimatedPrepMinutes: 15,
				PreparationStartedAt: started(16 * time.Minute),
			}
			cooking := model.Order{
				ID:                   5,
				PickupDeadline:       now.Add(5 * time.Minute),
				Status:               model.OrderStatusPreparing,
				EstimatedPrepMinutes: 15,
				PreparationStartedAt: started(10 * time.Minute),
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{done, cooking}, nil)
			rep.EXPECT().UpdateStatus(gomock.Any(), int64(4), model.OrderStatusPreparing, model.OrderStatusReady, nil).Return(nil)
			ntf.EXPECT().Notify("order_4", gomock.Any()).
				DoAndReturn(func(_ string, e model.Event) error {
					Expect(e.NewStatus).Should(Equal(model.OrderStatusReady))
					return nil
				})

			res, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Ready).Should(Equal(1))
			Expect(res.Evaluated).Should(Equal(2))
		})
		It("marks ready exactly when the estimate elapses", func() {
			order := model.Order{
				ID:                   6,
				Status:               model.OrderStatusPreparing,
				EstimatedPrepMinutes: 15,
				PreparationStartedAt: started(15 * time.Minute),
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)
			rep.EXPECT().UpdateStatus(gomock.Any(), int64(6), model.OrderStatusPreparing, model.OrderStatusReady, nil).Return(nil)
			ntf.EXPECT().Notify("order_6", gomock.Any()).Return(nil)

			_, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("estimates prep time once when unset", func() {
			order := model.Order{
				ID:             7,
				PickupDeadline: now.Add(2 * time.Hour),
				Status:         model.OrderStatusReceived,
			}
			items := []model.OrderItem{{FoodItemID: 1, Quantity: 1, Customization: "extra cheese"}}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)
			rep.EXPECT().GetOrderItems(gomock.Any(), int64(7)).Return(items, nil)
			rep.EXPECT().SetEstimatedPrep(gomock.Any(), int64(7), 10).Return(nil)

			_, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())

			order.EstimatedPrepMinutes = 10
			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)

			_, err = queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("keeps going after a failing order", func() {
			broken := model.Order{
				ID:                   8,
				PickupDeadline:       now.Add(time.Minute),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 5,
			}
			vanished := model.Order{
				ID:                   9,
				PickupDeadline:       now.Add(time.Minute),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 5,
			}
			fine := model.Order{
				ID:                   10,
				PickupDeadline:       now.Add(time.Minute),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 5,
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{broken, vanished, fine}, nil)
			gomock.InOrder(
				rep.EXPECT().UpdateStatus(gomock.Any(), int64(8), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("some error")),
				rep.EXPECT().UpdateStatus(gomock.Any(), int64(9), gomock.Any(), gomock.Any(), gomock.Any()).Return(internal.ErrNotFound),
				rep.EXPECT().UpdateStatus(gomock.Any(), int64(10), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			)
			ntf.EXPECT().Notify("order_10", gomock.Any()).Return(nil)

			res, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Failed).Should(Equal(2))
			Expect(res.Started).Should(Equal(1))
		})
		It("does not fail the transition when notification is dropped", func() {
			order := model.Order{
				ID:                   11,
				PickupDeadline:       now.Add(time.Minute),
				Status:               model.OrderStatusReceived,
				EstimatedPrepMinutes: 5,
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil)
			rep.EXPECT().UpdateStatus(gomock.Any(), int64(11), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			ntf.EXPECT().Notify("order_11", gomock.Any()).Return(internal.ErrQueueFull)

			res, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Started).Should(Equal(1))
			Expect(res.Failed).Should(Equal(0))
		})
		It("does not notify twice when a concurrent sweep already moved the order", func() {
			order := model.Order{
				ID:                   12,
				PickupDeadline:       now.Add(time.Minute),
				Status:               model.OrderStatusPreparing,
				EstimatedPrepMinutes: 5,
				PreparationStartedAt: started(10 * time.Minute),
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return([]model.Order{order}, nil).Times(2)
			gomock.InOrder(
				rep.EXPECT().UpdateStatus(gomock.Any(), int64(12), model.OrderStatusPreparing, model.OrderStatusReady, nil).Return(nil),
				rep.EXPECT().UpdateStatus(gomock.Any(), int64(12), model.OrderStatusPreparing, model.OrderStatusReady, nil).Return(internal.ErrStatusConflict),
			)
			ntf.EXPECT().Notify("order_12", gomock.Any()).Return(nil).Times(1)

			_, err := queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			_, err = queue.Sweep(ctx)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("is a no-op for orders that already left the open set", func() {
			rep.EXPECT().GetOpenOrders(gomock.Any()).Return(nil, nil).Times(2)

			for i := 0; i < 2; i++ {
				res, err := queue.Sweep(ctx)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(res.Evaluated).Should(Equal(0))
			}
		})
		It("leaves the rest for the next sweep once the deadline passed", func() {
			orders := []model.Order{
				{ID: 13, PickupDeadline: now, Status: model.OrderStatusReceived, EstimatedPrepMinutes: 5},
				{ID: 14, PickupDeadline: now, Status: model.OrderStatusReceived, EstimatedPrepMinutes: 5},
			}
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return(orders, nil)

			res, err := queue.Sweep(cctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Skipped).Should(Equal(2))
			Expect(res.Evaluated).Should(Equal(0))
		})
		It("returns the store error when open orders cannot be read", func() {
			rep.EXPECT().GetOpenOrders(gomock.Any()).Return(nil, errors.New("some error"))

			_, err := queue.Sweep(ctx)
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("RecomputePriorities", func() {
		It("writes only changed priorities and never the status", func() {
			orders := []model.Order{
				{ID: 1, PickupDeadline: now.Add(10 * time.Minute), Status: model.OrderStatusReceived, Priority: model.PriorityHigh},
				{ID: 2, PickupDeadline: now.Add(45 * time.Minute), Status: model.OrderStatusReceived, Priority: model.PriorityLow},
				{ID: 3, PickupDeadline: now.Add(2 * time.Hour), Status: model.OrderStatusPreparing},
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return(orders, nil)
			rep.EXPECT().UpdatePriority(gomock.Any(), int64(2), model.PriorityMedium).Return(nil)
			rep.EXPECT().UpdatePriority(gomock.Any(), int64(3), model.PriorityLow).Return(nil)

			n, err := queue.RecomputePriorities(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n).Should(Equal(2))
		})
		It("skips orders that left the queue meanwhile", func() {
			orders := []model.Order{
				{ID: 1, PickupDeadline: now.Add(10 * time.Minute), Status: model.OrderStatusReceived},
				{ID: 2, PickupDeadline: now.Add(10 * time.Minute), Status: model.OrderStatusReceived},
			}

			rep.EXPECT().GetOpenOrders(gomock.Any()).Return(orders, nil)
			rep.EXPECT().UpdatePriority(gomock.Any(), int64(1), model.PriorityHigh).Return(internal.ErrStatusConflict)
			rep.EXPECT().UpdatePriority(gomock.Any(), int64(2), model.PriorityHigh).Return(nil)

			n, err := queue.RecomputePriorities(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n).Should(Equal(1))
		})
	})
})
