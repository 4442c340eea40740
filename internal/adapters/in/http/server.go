package http

import (
	"errors"
	"net/http"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/application/usecases/queries"
	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"
	"parcelmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the parcel matching service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	onboardCourierHandler  commands.OnboardCourierCommandHandler
	setRouteHandler        commands.SetRouteCommandHandler
	setAvailabilityHandler commands.SetAvailabilityCommandHandler
	updateLocationHandler  commands.UpdateLocationCommandHandler
	createParcelHandler    commands.CreateParcelCommandHandler
	searchParcelsHandler   commands.SearchParcelsCommandHandler
	assignDeliveryHandler  commands.AssignDeliveryCommandHandler
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler
	cancelDeliveryHandler  commands.CancelDeliveryCommandHandler

	// Query handlers
	trackParcelHandler        queries.TrackParcelQueryHandler
	getDeliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler
	getPendingParcelsHandler  queries.GetPendingParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	onboardCourierHandler commands.OnboardCourierCommandHandler,
	setRouteHandler commands.SetRouteCommandHandler,
	setAvailabilityHandler commands.SetAvailabilityCommandHandler,
	updateLocationHandler commands.UpdateLocationCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	searchParcelsHandler commands.SearchParcelsCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getDeliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler,
	getPendingParcelsHandler queries.GetPendingParcelsQueryHandler,
) *Server {
	return &Server{
		onboardCourierHandler:     onboardCourierHandler,
		setRouteHandler:           setRouteHandler,
		setAvailabilityHandler:    setAvailabilityHandler,
		updateLocationHandler:     updateLocationHandler,
		createParcelHandler:       createParcelHandler,
		searchParcelsHandler:      searchParcelsHandler,
		assignDeliveryHandler:     assignDeliveryHandler,
		advanceDeliveryHandler:    advanceDeliveryHandler,
		cancelDeliveryHandler:     cancelDeliveryHandler,
		trackParcelHandler:        trackParcelHandler,
		getDeliveryHistoryHandler: getDeliveryHistoryHandler,
		getPendingParcelsHandler:  getPendingParcelsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/couriers", s.OnboardCourier)
	api.PUT("/couriers/:userId/route", s.SetRoute)
	api.PUT("/couriers/:userId/availability", s.SetAvailability)
	api.PUT("/couriers/:userId/location", s.UpdateLocation)
	api.GET("/couriers/:userId/deliveries", s.GetDeliveryHistory)

	api.POST("/parcels", s.CreateParcel)
	api.POST("/parcels/search", s.SearchParcels)
	api.GET("/parcels/pending", s.GetPendingParcels)
	api.GET("/parcels/:parcelId/track", s.TrackParcel)

	api.POST("/deliveries", s.AssignDelivery)
	api.PATCH("/deliveries/:deliveryId/status", s.AdvanceDelivery)
	api.POST("/deliveries/:deliveryId/cancel", s.CancelDelivery)
}

// OnboardCourier handles POST /api/v1/couriers - registers a user as a courier.
func (s *Server) OnboardCourier(ctx echo.Context) error {
	var request OnboardCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := parseUUID("userId", request.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courierID := kernel.NewUUID()

	cmd, err := commands.NewOnboardCourierCommand(courierID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.onboardCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.String()})
}

// SetRoute handles PUT /api/v1/couriers/:userId/route - replaces the courier's route.
func (s *Server) SetRoute(ctx echo.Context) error {
	userID, err := parseUUID("userId", ctx.Param("userId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request SetRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRouteCommand(userID,
		toAddressFields(request.Start), toAddressFields(request.Destination))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.setRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAvailability handles PUT /api/v1/couriers/:userId/availability.
func (s *Server) SetAvailability(ctx echo.Context) error {
	userID, err := parseUUID("userId", ctx.Param("userId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request SetAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetAvailabilityCommand(userID, request.Available)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLocation handles PUT /api/v1/couriers/:userId/location - stores the
// courier's live position, last write wins.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	userID, err := parseUUID("userId", ctx.Param("userId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewCoordinate(request.Lat, request.Lng)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateLocationCommand(userID, location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateParcel handles POST /api/v1/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := parseUUID("ownerId", request.OwnerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcelID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		ownerID,
		toAddressFields(request.Pickup),
		toAddressFields(request.Dropoff),
		request.Description,
		parcel.ActionType(request.ActionType),
		parcel.Category(request.Category),
		parcel.Size(request.Size),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: parcelID.String()})
}

// SearchParcels handles POST /api/v1/parcels/search - finds pending parcels
// along the courier's route.
func (s *Server) SearchParcels(ctx echo.Context) error {
	var request SearchParcelsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := parseUUID("userId", request.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var start, destination *address.Fields
	if request.Start != nil {
		fields := toAddressFields(*request.Start)
		start = &fields
	}
	if request.Destination != nil {
		fields := toAddressFields(*request.Destination)
		destination = &fields
	}

	cmd, err := commands.NewSearchParcelsCommand(userID, start, destination,
		request.PickupRadiusKm, request.DropoffRadiusKm)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels, err := s.searchParcelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:          p.ID().String(),
			Description: p.Description(),
			ActionType:  string(p.ActionType()),
			Category:    string(p.Category()),
			Size:        string(p.Size()),
			Status:      p.Status().String(),
			CreatedAt:   p.CreatedAt(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingParcels handles GET /api/v1/parcels/pending - the open parcel board.
func (s *Server) GetPendingParcels(ctx echo.Context) error {
	query := queries.NewGetPendingParcelsQuery()

	parcels, err := s.getPendingParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PendingParcelResponse, len(parcels))
	for i, p := range parcels {
		item := PendingParcelResponse{
			ID:          p.ID.String(),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
		if p.PickupLocation != nil {
			item.PickupLocation = &Location{
				Lat: p.PickupLocation.Lat(),
				Lng: p.PickupLocation.Lng(),
			}
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackParcel handles GET /api/v1/parcels/:parcelId/track - resolves the
// parcel's current location from cached coordinates.
func (s *Server) TrackParcel(ctx echo.Context) error {
	parcelID, err := parseUUID("parcelId", ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewTrackParcelQuery(parcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	tracked, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackParcelResponse{
		ParcelID: tracked.ParcelID.String(),
		Status:   tracked.Status.String(),
		Location: Location{
			Lat: tracked.Location.Lat(),
			Lng: tracked.Location.Lng(),
		},
	})
}

// AssignDelivery handles POST /api/v1/deliveries - assigns a pending parcel
// to the couriering user.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var request AssignDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := parseUUID("parcelId", request.ParcelID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID, err := parseUUID("userId", request.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, parcelID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// AdvanceDelivery handles PATCH /api/v1/deliveries/:deliveryId/status - moves
// a delivery to the requested lifecycle status.
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	deliveryID, err := parseUUID("deliveryId", ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request AdvanceDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(deliveryID, target, request.At)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:deliveryId/cancel - cancels
// a delivery and reopens its parcel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := parseUUID("deliveryId", ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryHistory handles GET /api/v1/couriers/:userId/deliveries -
// the user's deliveries, newest first.
func (s *Server) GetDeliveryHistory(ctx echo.Context) error {
	userID, err := parseUUID("userId", ctx.Param("userId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDeliveryHistoryQuery(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveries, err := s.getDeliveryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]DeliveryHistoryItem, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryHistoryItem{
			DeliveryID:   d.DeliveryID.String(),
			ParcelID:     d.ParcelID.String(),
			Description:  d.Description,
			Status:       d.Status.String(),
			PickupTime:   d.PickupTime,
			DeliveryTime: d.DeliveryTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseUUID(paramName, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func toAddressFields(dto AddressFields) address.Fields {
	return address.Fields{
		StreetName:  dto.StreetName,
		HouseNumber: dto.HouseNumber,
		ExtraInfo:   dto.ExtraInfo,
		PostalCode:  dto.PostalCode,
		City:        dto.City,
		Country:     dto.Country,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrCourierNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidTransition),
		errors.Is(err, commands.ErrParcelNotAvailable),
		errors.Is(err, commands.ErrCourierNotAvailable),
		errors.Is(err, commands.ErrOwnParcel),
		errors.Is(err, commands.ErrCourierAlreadyOnboarded),
		errors.Is(err, courier.ErrRouteNotSet),
		errors.Is(err, queries.ErrParcelNotTrackable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrGeocodingFailed):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
