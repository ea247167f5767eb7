package grpc

import (
	"errors"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service and repository errors to gRPC status codes
func toStatus(err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return status.Error(codes.InvalidArgument, vErr.Message)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrInstallmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	}
	logger.Error("gRPC call failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
