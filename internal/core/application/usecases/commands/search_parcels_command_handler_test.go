package commands_test

import (
	"log/slog"
	"testing"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func pendingParcel(t *testing.T, ownerID, pickupAddressID, dropoffAddressID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), ownerID, pickupAddressID, dropoffAddressID,
		"test shipment", parcel.ActionSend, "", "")
	require.NoError(t, err)
	return p
}

// searchFixture wires a courier with a stored Brussels->Antwerp route and
// geocoded endpoint addresses.
type searchFixture struct {
	userID             kernel.UUID
	requester          *courier.Courier
	startAddress       *address.Address
	destinationAddress *address.Address
	courierRepo        *MockCourierRepository
	addressRepo        *MockAddressRepository
	parcelRepo         *MockParcelRepository
	uow                *MockUoW
	factory            *MockMatchingUoWFactory
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()
	f := &searchFixture{
		userID:      kernel.NewUUID(),
		courierRepo: new(MockCourierRepository),
		addressRepo: new(MockAddressRepository),
		parcelRepo:  new(MockParcelRepository),
		uow:         new(MockUoW),
		factory:     new(MockMatchingUoWFactory),
	}

	requester, err := courier.NewCourier(kernel.NewUUID(), f.userID)
	require.NoError(t, err)
	f.requester = requester

	f.startAddress = storedAddress(t, routeFields("Rue de la Loi"), 50.8503, 4.3517)
	f.destinationAddress = storedAddress(t, routeFields("Meir"), 51.2194, 4.4025)
	require.NoError(t, requester.SetRoute(f.startAddress.ID(), f.destinationAddress.ID()))

	f.uow.On("Begin", t.Context()).Return(nil).Once()
	f.uow.On("CourierRepository").Return(f.courierRepo)
	f.uow.On("AddressRepository").Return(f.addressRepo)
	f.uow.On("ParcelRepository").Return(f.parcelRepo)
	f.uow.On("Commit", t.Context()).Return(nil).Once()
	f.uow.On("Rollback", t.Context()).Return(nil).Once()
	f.factory.On("Create").Return(f.uow).Once()

	f.courierRepo.On("GetByUserID", t.Context(), f.userID).Return(requester, nil).Once()
	f.courierRepo.On("Update", t.Context(), requester).Return(nil).Once()
	f.addressRepo.On("Get", t.Context(), f.startAddress.ID()).Return(f.startAddress, nil).Once()
	f.addressRepo.On("Get", t.Context(), f.destinationAddress.ID()).Return(f.destinationAddress, nil).Once()

	return f
}

func (f *searchFixture) handler() commands.SearchParcelsCommandHandler {
	return commands.NewSearchParcelsCommandHandler(f.factory,
		commands.NewAddressResolver(new(MockAddressRepository), new(MockGeocoderClient)),
		discardLogger())
}

func (f *searchFixture) addCandidate(t *testing.T, ownerID kernel.UUID, pickupLat, pickupLng, dropoffLat, dropoffLng float64) *parcel.Parcel {
	t.Helper()
	pickup := storedAddress(t, routeFields("Pickup"), pickupLat, pickupLng)
	dropoff := storedAddress(t, routeFields("Dropoff"), dropoffLat, dropoffLng)
	f.addressRepo.On("Get", t.Context(), pickup.ID()).Return(pickup, nil).Once()
	f.addressRepo.On("Get", t.Context(), dropoff.ID()).Return(dropoff, nil).Once()
	return pendingParcel(t, ownerID, pickup.ID(), dropoff.ID())
}

func TestSearchParcelsCommandHandler_Handle_StickyRoute(t *testing.T) {
	ctx := t.Context()
	f := newSearchFixture(t)

	// Near the route start and end respectively.
	onRoute := f.addCandidate(t, kernel.NewUUID(), 50.8467, 4.3525, 51.2100, 4.4100)
	// Pickup in Ghent, far outside the default 5 km pickup radius.
	offRoute := f.addCandidate(t, kernel.NewUUID(), 51.0543, 3.7174, 51.2100, 4.4100)

	f.parcelRepo.On("GetAllPending", ctx).Return([]*parcel.Parcel{onRoute, offRoute}, nil).Once()

	cmd, err := commands.NewSearchParcelsCommand(f.userID, nil, nil, 0, 0)
	require.NoError(t, err)

	matches, err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].IsEqual(onRoute))
	f.uow.AssertExpectations(t)
}

func TestSearchParcelsCommandHandler_Handle_ExcludesOwnParcels(t *testing.T) {
	ctx := t.Context()
	f := newSearchFixture(t)

	own := pendingParcel(t, f.userID, kernel.NewUUID(), kernel.NewUUID())
	f.parcelRepo.On("GetAllPending", ctx).Return([]*parcel.Parcel{own}, nil).Once()

	cmd, err := commands.NewSearchParcelsCommand(f.userID, nil, nil, 0, 0)
	require.NoError(t, err)

	matches, err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, matches)
	// Own parcels are excluded before any address lookup happens.
	f.addressRepo.AssertNumberOfCalls(t, "Get", 2)
}

func TestSearchParcelsCommandHandler_Handle_SkipsUngeocodedCandidate(t *testing.T) {
	ctx := t.Context()
	f := newSearchFixture(t)

	bare, err := address.NewAddress(kernel.NewUUID(), "Nowhere", "1", "", "9999")
	require.NoError(t, err)
	f.addressRepo.On("Get", ctx, bare.ID()).Return(bare, nil).Once()

	candidate := pendingParcel(t, kernel.NewUUID(), bare.ID(), kernel.NewUUID())
	f.parcelRepo.On("GetAllPending", ctx).Return([]*parcel.Parcel{candidate}, nil).Once()

	cmd, err := commands.NewSearchParcelsCommand(f.userID, nil, nil, 0, 0)
	require.NoError(t, err)

	matches, err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, matches)
	f.uow.AssertExpectations(t)
}

func TestSearchParcelsCommandHandler_Handle_RadiiOverrideIsSticky(t *testing.T) {
	ctx := t.Context()
	f := newSearchFixture(t)

	// About 5.56 km north of the route start, outside the default radius.
	boundary := f.addCandidate(t, kernel.NewUUID(), 50.90, 4.35, 51.2194, 4.4025)
	f.parcelRepo.On("GetAllPending", ctx).Return([]*parcel.Parcel{boundary}, nil).Once()

	cmd, err := commands.NewSearchParcelsCommand(f.userID, nil, nil, 6.0, 6.0)
	require.NoError(t, err)

	matches, err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.InDelta(t, 6.0, f.requester.PickupRadiusKm(), 1e-9)
	assert.InDelta(t, 6.0, f.requester.DropoffRadiusKm(), 1e-9)
}

func TestSearchParcelsCommandHandler_Handle_RouteOverridePersisted(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	requester, err := courier.NewCourier(kernel.NewUUID(), userID)
	require.NoError(t, err)
	require.False(t, requester.HasRoute())

	start := routeFields("Rue de la Loi")
	destination := routeFields("Meir")
	startAddress := storedAddress(t, start, 50.8503, 4.3517)
	destinationAddress := storedAddress(t, destination, 51.2194, 4.4025)

	reader := new(MockAddressRepository)
	reader.On("GetByFields", ctx, start).Return(startAddress, nil).Once()
	reader.On("GetByFields", ctx, destination).Return(destinationAddress, nil).Once()

	txAddressRepo := new(MockAddressRepository)
	txAddressRepo.On("GetByFields", ctx, start).Return(startAddress, nil).Once()
	txAddressRepo.On("GetByFields", ctx, destination).Return(destinationAddress, nil).Once()

	courierRepo := new(MockCourierRepository)
	courierRepo.On("GetByUserID", ctx, userID).Return(requester, nil).Once()
	courierRepo.On("Update", ctx, requester).Return(nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetAllPending", ctx).Return([]*parcel.Parcel{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("AddressRepository").Return(txAddressRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSearchParcelsCommandHandler(factory,
		commands.NewAddressResolver(reader, new(MockGeocoderClient)), discardLogger())

	cmd, err := commands.NewSearchParcelsCommand(userID, &start, &destination, 0, 0)
	require.NoError(t, err)

	matches, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, matches)
	require.True(t, requester.HasRoute())
	assert.True(t, requester.StartAddressID().IsEqual(startAddress.ID()))
	assert.True(t, requester.DestinationAddressID().IsEqual(destinationAddress.ID()))
}

func TestSearchParcelsCommandHandler_Handle_NoRouteAnywhere(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	requester, err := courier.NewCourier(kernel.NewUUID(), userID)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	courierRepo.On("GetByUserID", ctx, userID).Return(requester, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("AddressRepository").Return(new(MockAddressRepository))
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSearchParcelsCommandHandler(factory,
		commands.NewAddressResolver(new(MockAddressRepository), new(MockGeocoderClient)),
		discardLogger())

	cmd, err := commands.NewSearchParcelsCommand(userID, nil, nil, 0, 0)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, courier.ErrRouteNotSet)
	uow.AssertNotCalled(t, "Commit")
}

func TestSearchParcelsCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	courierRepo := new(MockCourierRepository)
	courierRepo.On("GetByUserID", ctx, userID).
		Return(nil, errs.NewObjectNotFoundError("userId", userID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSearchParcelsCommandHandler(factory,
		commands.NewAddressResolver(new(MockAddressRepository), new(MockGeocoderClient)),
		discardLogger())

	cmd, err := commands.NewSearchParcelsCommand(userID, nil, nil, 0, 0)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCourierNotFound)
}

func TestNewSearchParcelsCommand_RouteMustBePaired(t *testing.T) {
	start := routeFields("Rue de la Loi")

	_, err := commands.NewSearchParcelsCommand(kernel.NewUUID(), &start, nil, 0, 0)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
