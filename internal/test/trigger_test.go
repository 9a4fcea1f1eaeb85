package test

import (
	"context"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal"
	mock_internal "github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/mock"
)

var _ = Describe("Trigger", func() {
	var (
		ctrl      *gomock.Controller
		queue     *internal.Queue
		retention *internal.Retention
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		rep := mock_internal.NewMockIRepository(ctrl)
		logger := zap.NewNop().Sugar()

		queue = internal.NewQueue(rep, nil, nil, logger, internal.QueueConfig{})
		retention = internal.NewRetention(rep, nil, logger, 0)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	It("registers the default schedules", func() {
		t, err := internal.NewTrigger(context.Background(), queue, retention, internal.Schedules{
			Sweep:     "@every 60s",
			Priority:  "@every 5m",
			Retention: "0 0 * * *",
		}, zap.NewNop().Sugar())
		Expect(err).ShouldNot(HaveOccurred())

		t.Start()
		t.Stop()
	})
	It("rejects a malformed schedule", func() {
		_, err := internal.NewTrigger(context.Background(), queue, retention, internal.Schedules{
			Sweep:     "@every 60s",
			Priority:  "every five minutes",
			Retention: "0 0 * * *",
		}, zap.NewNop().Sugar())
		Expect(err).Should(HaveOccurred())
	})
})
