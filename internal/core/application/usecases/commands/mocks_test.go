package commands_test

import (
	"context"
	"testing"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	var d *delivery.Delivery
	if v := args.Get(0); v != nil {
		d = v.(*delivery.Delivery)
	}
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	var d *delivery.Delivery
	if v := args.Get(0); v != nil {
		d = v.(*delivery.Delivery)
	}
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllMissingRoute(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	var ds []*delivery.Delivery
	if v := args.Get(0); v != nil {
		ds = v.([]*delivery.Delivery)
	}
	return ds, args.Error(1)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockRouteEstimator struct{ mock.Mock }

func (m *MockRouteEstimator) Estimate(
	ctx context.Context, restaurantAddress, customerAddress string,
) (*delivery.RouteInfo, bool) {
	args := m.Called(ctx, restaurantAddress, customerAddress)
	var info *delivery.RouteInfo
	if v := args.Get(0); v != nil {
		info = v.(*delivery.RouteInfo)
	}
	return info, args.Bool(1)
}

func pendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"12 Rue de la Paix, Paris", "34 Avenue Victor Hugo, Paris", "")
	require.NoError(t, err)
	return d
}

func assignedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d := pendingDelivery(t)
	require.NoError(t, d.Assign(kernel.NewUUID(), "Jean Dupont"))
	return d
}

func pickedUpDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d := assignedDelivery(t)
	require.NoError(t, d.PickUp())
	return d
}

func inTransitDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d := pickedUpDelivery(t)
	require.NoError(t, d.StartTransit())
	return d
}

func deliveredDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d := inTransitDelivery(t)
	require.NoError(t, d.Deliver())
	return d
}

func fullRouteInfo(t *testing.T) *delivery.RouteInfo {
	t.Helper()
	restaurant, err := kernel.NewCoordinates(48.8698, 2.3311)
	require.NoError(t, err)
	customer, err := kernel.NewCoordinates(48.8708, 2.2850)
	require.NoError(t, err)
	estimate, err := delivery.NewEstimate(3.4, 12,
		"https://www.google.com/maps/dir/?api=1&origin=48.869800,2.331100&destination=48.870800,2.285000&travelmode=driving")
	require.NoError(t, err)
	info, err := delivery.NewRouteInfoWithEstimate(restaurant, customer, estimate)
	require.NoError(t, err)
	return &info
}
