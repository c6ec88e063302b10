package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
)

func newTestRouter(fake *fakeDispatch) *echo.Echo {
	e := echo.New()
	h := NewHandler(fake, NewRelay(fake, time.Hour, zerolog.Nop()), zerolog.Nop())
	h.RegisterRoutes(e.Group("/api/v1"))
	return e
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreatePorterRequest(t *testing.T) {
	fake := newFakeDispatch()
	var got *dispatchv1.PorterRequest
	fake.create = func(in *dispatchv1.CreatePorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
		got = in.GetRequest()
		r := proto.Clone(in.GetRequest()).(*dispatchv1.PorterRequest)
		r.Id = "new-id"
		r.Status = "WAITING_CENTER"
		return &dispatchv1.PorterRequestResponse{Request: r}, nil
	}
	e := newTestRouter(fake)

	rec := serve(e, http.MethodPost, "/api/v1/porter-requests", `{
		"requesterName": "Nurse A",
		"patientHN": "HN001",
		"patientName": "Somchai",
		"pickupLocation": {"buildingId": "b1", "departmentId": "d1"},
		"deliveryLocation": {"buildingId": "b2", "departmentId": "d2"},
		"urgencyLevel": "RUSH",
		"vehicleType": "GOLF-CART"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got == nil {
		t.Fatal("create not forwarded")
	}
	if got.GetVehicleType() != "GOLF_CART" {
		t.Errorf("expected wire vehicle GOLF_CART, got %q", got.GetVehicleType())
	}
	if got.GetRequestedAt() != nil {
		t.Errorf("absent requestedAt must stay unset, got %v", got.GetRequestedAt())
	}
	if got.GetPickup().GetBuildingId() != "b1" || got.GetDelivery().GetDepartmentId() != "d2" {
		t.Errorf("locations not mapped: %+v %+v", got.Pickup, got.Delivery)
	}
	var view RequestView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.ID != "new-id" || view.VehicleType != "GOLF-CART" {
		t.Errorf("unexpected view: %+v", view)
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", status.Error(codes.NotFound, "porter request not found"), http.StatusNotFound},
		{"invalid transition", status.Error(codes.FailedPrecondition, "invalid transition"), http.StatusConflict},
		{"stale", status.Error(codes.Aborted, "status changed"), http.StatusConflict},
		{"validation", status.Error(codes.InvalidArgument, "bad"), http.StatusBadRequest},
		{"unavailable", status.Error(codes.Unavailable, "down"), http.StatusServiceUnavailable},
		{"external auth", status.Error(codes.Unauthenticated, "clinical api"), http.StatusBadGateway},
		{"unknown code", status.Error(codes.DataLoss, "?"), http.StatusInternalServerError},
		{"no status", errors.New("dial tcp: refused"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeDispatch()
			fake.get = func(*dispatchv1.GetPorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
				return nil, tt.err
			}
			rec := serve(newTestRouter(fake), http.MethodGet, "/api/v1/porter-requests/abc", "")
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestHandler_GetPassesID(t *testing.T) {
	fake := newFakeDispatch()
	fake.get = func(in *dispatchv1.GetPorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
		return &dispatchv1.PorterRequestResponse{Request: &dispatchv1.PorterRequest{Id: in.GetId()}}, nil
	}
	rec := serve(newTestRouter(fake), http.MethodGet, "/api/v1/porter-requests/r-9", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"r-9"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_ListPorterRequests(t *testing.T) {
	fake := newFakeDispatch()
	var got *dispatchv1.ListPorterRequestsRequest
	fake.list = func(in *dispatchv1.ListPorterRequestsRequest) (*dispatchv1.ListPorterRequestsResponse, error) {
		got = in
		return &dispatchv1.ListPorterRequestsResponse{
			Items: []*dispatchv1.PorterRequest{{Id: "a"}, {Id: "b"}},
			Total: 5,
		}, nil
	}
	rec := serve(newTestRouter(fake), http.MethodGet, "/api/v1/porter-requests?status=WAITING&urgency_level=RUSH&limit=2&offset=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Status != "WAITING" || got.UrgencyLevel != "RUSH" || got.Limit != 2 || got.Offset != 1 {
		t.Errorf("unexpected list request: %+v", got)
	}
	var body struct {
		Data    []RequestView `json:"data"`
		Total   int           `json:"total"`
		HasMore bool          `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 2 || body.Total != 5 || !body.HasMore {
		t.Errorf("unexpected page: %+v", body)
	}
}

func TestHandler_ListEmptyReturnsArray(t *testing.T) {
	fake := newFakeDispatch()
	fake.list = func(*dispatchv1.ListPorterRequestsRequest) (*dispatchv1.ListPorterRequestsResponse, error) {
		return &dispatchv1.ListPorterRequestsResponse{}, nil
	}
	rec := serve(newTestRouter(fake), http.MethodGet, "/api/v1/porter-requests", "")
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty data array, got %s", rec.Body.String())
	}
}

func TestHandler_UpdatePorterRequest(t *testing.T) {
	fake := newFakeDispatch()
	var got *dispatchv1.UpdatePorterRequestRequest
	fake.update = func(in *dispatchv1.UpdatePorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
		got = in
		return &dispatchv1.PorterRequestResponse{Request: &dispatchv1.PorterRequest{Id: in.GetId()}}, nil
	}
	rec := serve(newTestRouter(fake), http.MethodPut, "/api/v1/porter-requests/r-1",
		`{"patientName":"New Name","vehicleType":"GOLF-CART","deliveryLocation":{"buildingId":"b9","departmentId":"d9"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.GetId() != "r-1" {
		t.Errorf("expected id r-1, got %q", got.GetId())
	}
	p := got.GetPatch()
	if p.GetPatientName() == nil || p.GetPatientName().GetValue() != "New Name" {
		t.Errorf("patient name not patched: %v", p.GetPatientName())
	}
	if p.GetVehicleType().GetValue() != "GOLF_CART" {
		t.Errorf("vehicle not converted: %v", p.GetVehicleType())
	}
	if p.GetDelivery().GetBuildingId() != "b9" {
		t.Errorf("delivery not patched: %+v", p.Delivery)
	}
	if p.Pickup != nil || p.RequesterName != nil || p.Status != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	fake := newFakeDispatch()
	var got *dispatchv1.UpdateStatusRequest
	fake.setStatus = func(in *dispatchv1.UpdateStatusRequest) (*dispatchv1.PorterRequestResponse, error) {
		got = in
		return &dispatchv1.PorterRequestResponse{Request: &dispatchv1.PorterRequest{Id: in.GetId(), Status: in.GetStatus()}}, nil
	}
	e := newTestRouter(fake)

	rec := serve(e, http.MethodPatch, "/api/v1/porter-requests/r-1/status", `{"status":"CANCELLED","cancelledReason":"patient discharged","actorId":"emp-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.GetStatus() != "CANCELLED" || got.GetCancelledReason().GetValue() != "patient discharged" || got.GetActorId().GetValue() != "emp-1" {
		t.Errorf("unexpected status request: %+v", got)
	}

	rec = serve(e, http.MethodPatch, "/api/v1/porter-requests/r-1/status", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing status, got %d", rec.Code)
	}
}

func TestHandler_UpdateTimestamps(t *testing.T) {
	fake := newFakeDispatch()
	var got *dispatchv1.UpdateTimestampsRequest
	fake.setTimes = func(in *dispatchv1.UpdateTimestampsRequest) (*dispatchv1.PorterRequestResponse, error) {
		got = in
		return &dispatchv1.PorterRequestResponse{Request: &dispatchv1.PorterRequest{Id: in.GetId()}}, nil
	}
	rec := serve(newTestRouter(fake), http.MethodPatch, "/api/v1/porter-requests/r-1/timestamps", `{"pickupAt":"2026-01-02T03:04:05Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got.GetPickupAt() == nil || !got.GetPickupAt().AsTime().Equal(want) {
		t.Errorf("unexpected pickup: %v", got.PickupAt)
	}
	if got.DeliveryAt != nil || got.ReturnAt != nil {
		t.Error("absent timestamps must stay nil")
	}
}

func TestHandler_DeletePorterRequest(t *testing.T) {
	fake := newFakeDispatch()
	var deleted string
	fake.del = func(in *dispatchv1.DeletePorterRequestRequest) (*dispatchv1.DeletePorterRequestResponse, error) {
		deleted = in.GetId()
		return &dispatchv1.DeletePorterRequestResponse{}, nil
	}
	rec := serve(newTestRouter(fake), http.MethodDelete, "/api/v1/porter-requests/r-3", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "r-3" {
		t.Errorf("expected r-3 deleted, got %q", deleted)
	}
}

func TestHandler_LookupPatient(t *testing.T) {
	fake := newFakeDispatch()
	fake.patient = func(in *dispatchv1.LookupPatientRequest) (*dispatchv1.Patient, error) {
		if in.GetHn() != "HN001" {
			return nil, status.Error(codes.NotFound, "patient not found")
		}
		return &dispatchv1.Patient{Hn: "HN001", FirstName: "Somchai"}, nil
	}
	e := newTestRouter(fake)

	rec := serve(e, http.MethodGet, "/api/v1/patients/HN001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
	var p PatientView
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.HN != "HN001" || p.FirstName != "Somchai" {
		t.Errorf("unexpected patient: %+v", p)
	}
	rec = serve(e, http.MethodGet, "/api/v1/patients/HN999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_StreamRouteWinsOverID(t *testing.T) {
	fake := newFakeDispatch()
	fake.subErr = status.Error(codes.Unavailable, "down")
	rec := serve(newTestRouter(fake), http.MethodGet, "/api/v1/porter-requests/stream", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected the stream route to answer 503, got %d", rec.Code)
	}
	if fake.lastSubscribe() == nil {
		t.Error("stream route not reached")
	}
}
