package porter

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotFound is returned when no porter request has the given id.
	ErrNotFound = errors.New("porter request not found")
	// ErrInvalidTransition is returned for a backward move or any move out of
	// a terminal status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrCancelReasonRequired is returned when cancelling without a reason.
	ErrCancelReasonRequired = errors.New("cancellation reason is required")
	// ErrStaleStatus is returned when the stored status changed between read
	// and write.
	ErrStaleStatus = errors.New("porter request status changed concurrently")
	// ErrValidation wraps field-level validation failures.
	ErrValidation = errors.New("validation failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ToStatus converts a domain error into a gRPC status error so callers on the
// other side of the wire can tell the kinds apart.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrStaleStatus):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, ErrCancelReasonRequired), errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
