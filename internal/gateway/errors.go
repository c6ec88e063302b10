package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var grpcToHTTP = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.NotFound:           http.StatusNotFound,
	codes.FailedPrecondition: http.StatusConflict,
	codes.Aborted:            http.StatusConflict,
	codes.AlreadyExists:      http.StatusConflict,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.Canceled:           499,
	codes.Unauthenticated:    http.StatusBadGateway,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.Unimplemented:      http.StatusNotImplemented,
}

// httpError maps a dispatch call failure onto an echo error. Errors that
// carry no gRPC status mean the call never reached the service.
func httpError(err error) *echo.HTTPError {
	st, ok := status.FromError(err)
	if !ok {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dispatch service unavailable")
	}
	code, found := grpcToHTTP[st.Code()]
	if !found {
		code = http.StatusInternalServerError
	}
	return echo.NewHTTPError(code, st.Message())
}
