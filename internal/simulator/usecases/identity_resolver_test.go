package usecases_test

import (
	"context"
	"errors"
	"sensor-simulator/internal/simulator/domain"
	"sensor-simulator/internal/simulator/usecases"
	mockusecases "sensor-simulator/test/unit/doubles/simulator/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("IdentityResolver", func() {
	var (
		ctrl     *gomock.Controller
		mockAPI  *mockusecases.MockSensorAPI
		resolver *usecases.IdentityResolver
		ctx      context.Context
		cfg      domain.SensorConfig
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockAPI = mockusecases.NewMockSensorAPI(ctrl)
		resolver = usecases.NewIdentityResolver(mockAPI)
		ctx = context.Background()
		cfg = domain.SensorConfig{
			Name:      "X",
			Type:      domain.SensorTypeTemperature,
			Location:  "Simulation Lab",
			BaseValue: 22,
			Variance:  3,
		}
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.When("an existing sensor is preferred", func() {
		ginkgo.It("should return the listed sensor without creating one", func() {
			mockAPI.EXPECT().ListSensors(gomock.Any()).Return([]domain.RegisteredSensor{
				{ID: "1", Name: "other"},
				{ID: "7", Name: "X", Type: "Temperature", Status: "active"},
			}, nil)

			id, err := resolver.Resolve(ctx, cfg, true)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.SensorID("7")))
		})

		ginkgo.It("should pick the first exact match in listing order", func() {
			mockAPI.EXPECT().ListSensors(gomock.Any()).Return([]domain.RegisteredSensor{
				{ID: "3", Name: "x"},
				{ID: "4", Name: "X"},
				{ID: "5", Name: "X"},
			}, nil)

			id, err := resolver.Resolve(ctx, cfg, true)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.SensorID("4")))
		})

		ginkgo.It("should fall through to creation when the name is unknown", func() {
			gomock.InOrder(
				mockAPI.EXPECT().ListSensors(gomock.Any()).Return([]domain.RegisteredSensor{{ID: "1", Name: "other"}}, nil),
				mockAPI.EXPECT().CreateSensor(gomock.Any(), domain.SensorRegistration{
					Name:     "X",
					Type:     domain.SensorTypeTemperature,
					Location: "Simulation Lab",
				}).Return(domain.SensorID("9"), nil),
			)

			id, err := resolver.Resolve(ctx, cfg, true)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.SensorID("9")))
		})

		ginkgo.It("should fail as unreachable when the listing fails", func() {
			cause := errors.New("connection refused")
			mockAPI.EXPECT().ListSensors(gomock.Any()).Return(nil, cause)

			_, err := resolver.Resolve(ctx, cfg, true)

			var resolutionErr *domain.ResolutionError
			gomega.Expect(errors.As(err, &resolutionErr)).To(gomega.BeTrue())
			gomega.Expect(resolutionErr.Kind).To(gomega.Equal(domain.ResolutionUnreachable))
			gomega.Expect(err).To(gomega.MatchError(cause))
		})
	})

	ginkgo.When("a new sensor is registered", func() {
		ginkgo.It("should return the created id without listing", func() {
			mockAPI.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).Return(domain.SensorID("11"), nil)

			id, err := resolver.Resolve(ctx, cfg, false)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.SensorID("11")))
		})

		ginkgo.It("should look the sensor up after a conflict", func() {
			gomock.InOrder(
				mockAPI.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).Return(domain.SensorID(""), domain.ErrSensorAlreadyExists),
				mockAPI.EXPECT().ListSensors(gomock.Any()).Return([]domain.RegisteredSensor{{ID: "12", Name: "X"}}, nil),
			)

			id, err := resolver.Resolve(ctx, cfg, false)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.SensorID("12")))
		})

		ginkgo.It("should report an unresolved conflict when the lookup finds nothing", func() {
			gomock.InOrder(
				mockAPI.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).Return(domain.SensorID(""), domain.ErrSensorAlreadyExists),
				mockAPI.EXPECT().ListSensors(gomock.Any()).Return([]domain.RegisteredSensor{}, nil),
			)

			_, err := resolver.Resolve(ctx, cfg, false)

			var resolutionErr *domain.ResolutionError
			gomega.Expect(errors.As(err, &resolutionErr)).To(gomega.BeTrue())
			gomega.Expect(resolutionErr.Kind).To(gomega.Equal(domain.ResolutionConflictUnresolved))
		})

		ginkgo.It("should not retry other failures", func() {
			cause := errors.New("boom")
			mockAPI.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).Return(domain.SensorID(""), cause).Times(1)

			_, err := resolver.Resolve(ctx, cfg, false)

			var resolutionErr *domain.ResolutionError
			gomega.Expect(errors.As(err, &resolutionErr)).To(gomega.BeTrue())
			gomega.Expect(resolutionErr.Kind).To(gomega.Equal(domain.ResolutionUnreachable))
			gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
		})
	})
})
