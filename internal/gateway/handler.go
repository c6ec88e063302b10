package gateway

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
	"github.com/medportal/porter/pkg/pagination"
)

// Handler proxies the browser REST surface onto the dispatch service.
type Handler struct {
	client dispatchv1.PorterServiceClient
	relay  *Relay
	logger zerolog.Logger
}

func NewHandler(client dispatchv1.PorterServiceClient, relay *Relay, logger zerolog.Logger) *Handler {
	return &Handler{
		client: client,
		relay:  relay,
		logger: logger.With().Str("component", "gateway.handler").Logger(),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/porter-requests/stream", h.relay.Stream)
	api.POST("/porter-requests", h.CreatePorterRequest)
	api.GET("/porter-requests", h.ListPorterRequests)
	api.GET("/porter-requests/:id", h.GetPorterRequest)
	api.PUT("/porter-requests/:id", h.UpdatePorterRequest)
	api.PATCH("/porter-requests/:id/status", h.UpdateStatus)
	api.PATCH("/porter-requests/:id/timestamps", h.UpdateTimestamps)
	api.DELETE("/porter-requests/:id", h.DeletePorterRequest)
	api.GET("/patients/:hn", h.LookupPatient)
}

type locationInput struct {
	BuildingID   string  `json:"buildingId"`
	DepartmentID string  `json:"departmentId"`
	RoomBed      *string `json:"roomBed"`
}

func (l locationInput) proto() *dispatchv1.Location {
	return &dispatchv1.Location{BuildingId: l.BuildingID, DepartmentId: l.DepartmentID, RoomBed: stringValue(l.RoomBed)}
}

func stringValue(p *string) *wrapperspb.StringValue {
	if p == nil {
		return nil
	}
	return wrapperspb.String(*p)
}

func boolValue(p *bool) *wrapperspb.BoolValue {
	if p == nil {
		return nil
	}
	return wrapperspb.Bool(*p)
}

func timestampOf(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

type createInput struct {
	RequesterDepartmentID string        `json:"requesterDepartmentId"`
	RequesterName         string        `json:"requesterName"`
	RequesterPhone        string        `json:"requesterPhone"`
	RequesterUserID       string        `json:"requesterUserId"`
	PatientHN             string        `json:"patientHN"`
	PatientName           string        `json:"patientName"`
	PatientConditions     []string      `json:"patientConditions"`
	PickupLocation        locationInput `json:"pickupLocation"`
	DeliveryLocation      locationInput `json:"deliveryLocation"`
	RequestedAt           time.Time     `json:"requestedAt"`
	UrgencyLevel          string        `json:"urgencyLevel"`
	VehicleType           string        `json:"vehicleType"`
	HasVehicle            bool          `json:"hasVehicle"`
	ReturnTrip            bool          `json:"returnTrip"`
	TransportReason       string        `json:"transportReason"`
	Equipment             []string      `json:"equipment"`
	SpecialNotes          *string       `json:"specialNotes"`
}

// wireVehicle undoes displayVehicle.
func wireVehicle(v string) string {
	return strings.ReplaceAll(v, "-", "_")
}

func (in createInput) proto() *dispatchv1.PorterRequest {
	r := &dispatchv1.PorterRequest{
		RequesterDepartmentId: in.RequesterDepartmentID,
		RequesterName:         in.RequesterName,
		RequesterPhone:        in.RequesterPhone,
		RequesterUserId:       in.RequesterUserID,
		PatientHn:             in.PatientHN,
		PatientName:           in.PatientName,
		PatientConditions:     in.PatientConditions,
		Pickup:                in.PickupLocation.proto(),
		Delivery:              in.DeliveryLocation.proto(),
		UrgencyLevel:          in.UrgencyLevel,
		VehicleType:           wireVehicle(in.VehicleType),
		HasVehicle:            in.HasVehicle,
		ReturnTrip:            in.ReturnTrip,
		TransportReason:       in.TransportReason,
		Equipment:             in.Equipment,
		SpecialNotes:          stringValue(in.SpecialNotes),
	}
	if !in.RequestedAt.IsZero() {
		r.RequestedAt = timestamppb.New(in.RequestedAt)
	}
	return r
}

type updateInput struct {
	RequesterDepartmentID *string        `json:"requesterDepartmentId"`
	RequesterName         *string        `json:"requesterName"`
	RequesterPhone        *string        `json:"requesterPhone"`
	PatientHN             *string        `json:"patientHN"`
	PatientName           *string        `json:"patientName"`
	PatientConditions     []string       `json:"patientConditions"`
	PickupLocation        *locationInput `json:"pickupLocation"`
	DeliveryLocation      *locationInput `json:"deliveryLocation"`
	RequestedAt           *time.Time     `json:"requestedAt"`
	UrgencyLevel          *string        `json:"urgencyLevel"`
	VehicleType           *string        `json:"vehicleType"`
	HasVehicle            *bool          `json:"hasVehicle"`
	ReturnTrip            *bool          `json:"returnTrip"`
	TransportReason       *string        `json:"transportReason"`
	Equipment             []string       `json:"equipment"`
	SpecialNotes          *string        `json:"specialNotes"`
	Status                *string        `json:"status"`
	AssignedToID          *string        `json:"assignedToId"`
	CancelledReason       *string        `json:"cancelledReason"`
	ActorID               *string        `json:"actorId"`
}

func (in updateInput) proto() *dispatchv1.PorterRequestPatch {
	p := &dispatchv1.PorterRequestPatch{
		RequesterDepartmentId: stringValue(in.RequesterDepartmentID),
		RequesterName:         stringValue(in.RequesterName),
		RequesterPhone:        stringValue(in.RequesterPhone),
		PatientHn:             stringValue(in.PatientHN),
		PatientName:           stringValue(in.PatientName),
		PatientConditions:     in.PatientConditions,
		RequestedAt:           timestampOf(in.RequestedAt),
		UrgencyLevel:          stringValue(in.UrgencyLevel),
		HasVehicle:            boolValue(in.HasVehicle),
		ReturnTrip:            boolValue(in.ReturnTrip),
		TransportReason:       stringValue(in.TransportReason),
		Equipment:             in.Equipment,
		SpecialNotes:          stringValue(in.SpecialNotes),
		Status:                stringValue(in.Status),
		AssignedToId:          stringValue(in.AssignedToID),
		CancelledReason:       stringValue(in.CancelledReason),
		ActorId:               stringValue(in.ActorID),
	}
	if in.PickupLocation != nil {
		p.Pickup = in.PickupLocation.proto()
	}
	if in.DeliveryLocation != nil {
		p.Delivery = in.DeliveryLocation.proto()
	}
	if in.VehicleType != nil {
		p.VehicleType = wrapperspb.String(wireVehicle(*in.VehicleType))
	}
	return p
}

type statusInput struct {
	Status          string  `json:"status"`
	AssignedToID    *string `json:"assignedToId"`
	CancelledReason *string `json:"cancelledReason"`
	ActorID         *string `json:"actorId"`
}

type timestampsInput struct {
	PickupAt   *time.Time `json:"pickupAt"`
	DeliveryAt *time.Time `json:"deliveryAt"`
	ReturnAt   *time.Time `json:"returnAt"`
}

func (h *Handler) CreatePorterRequest(c echo.Context) error {
	var in createInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.client.CreatePorterRequest(c.Request().Context(), &dispatchv1.CreatePorterRequestRequest{Request: in.proto()})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, NewRequestView(resp.GetRequest()))
}

func (h *Handler) GetPorterRequest(c echo.Context) error {
	resp, err := h.client.GetPorterRequest(c.Request().Context(), &dispatchv1.GetPorterRequestRequest{Id: c.Param("id")})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, NewRequestView(resp.GetRequest()))
}

func (h *Handler) ListPorterRequests(c echo.Context) error {
	pg := pagination.FromContext(c)
	resp, err := h.client.ListPorterRequests(c.Request().Context(), &dispatchv1.ListPorterRequestsRequest{
		Status:          c.QueryParam("status"),
		UrgencyLevel:    c.QueryParam("urgency_level"),
		AssignedToId:    c.QueryParam("assigned_to_id"),
		RequesterUserId: c.QueryParam("requester_user_id"),
		Limit:           int32(pg.Limit),
		Offset:          int32(pg.Offset),
	})
	if err != nil {
		return httpError(err)
	}
	views := make([]*RequestView, 0, len(resp.GetItems()))
	for _, r := range resp.GetItems() {
		views = append(views, NewRequestView(r))
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, int(resp.GetTotal()), pg))
}

func (h *Handler) UpdatePorterRequest(c echo.Context) error {
	var in updateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.client.UpdatePorterRequest(c.Request().Context(), &dispatchv1.UpdatePorterRequestRequest{
		Id:    c.Param("id"),
		Patch: in.proto(),
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, NewRequestView(resp.GetRequest()))
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var in statusInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if in.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	resp, err := h.client.UpdatePorterRequestStatus(c.Request().Context(), &dispatchv1.UpdateStatusRequest{
		Id:              c.Param("id"),
		Status:          in.Status,
		AssignedToId:    stringValue(in.AssignedToID),
		CancelledReason: stringValue(in.CancelledReason),
		ActorId:         stringValue(in.ActorID),
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, NewRequestView(resp.GetRequest()))
}

func (h *Handler) UpdateTimestamps(c echo.Context) error {
	var in timestampsInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.client.UpdatePorterRequestTimestamps(c.Request().Context(), &dispatchv1.UpdateTimestampsRequest{
		Id:         c.Param("id"),
		PickupAt:   timestampOf(in.PickupAt),
		DeliveryAt: timestampOf(in.DeliveryAt),
		ReturnAt:   timestampOf(in.ReturnAt),
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, NewRequestView(resp.GetRequest()))
}

func (h *Handler) DeletePorterRequest(c echo.Context) error {
	if _, err := h.client.DeletePorterRequest(c.Request().Context(), &dispatchv1.DeletePorterRequestRequest{Id: c.Param("id")}); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) LookupPatient(c echo.Context) error {
	p, err := h.client.LookupPatient(c.Request().Context(), &dispatchv1.LookupPatientRequest{Hn: c.Param("hn")})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newPatientView(p))
}
