package grpc

import (
	"context"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// userIDHeader is set by the auth interceptor after the bearer token is validated
const userIDHeader = "user-id"

// GetUserIDFromContext returns the authenticated user of the call
func GetUserIDFromContext(ctx context.Context) (int32, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	values := md.Get(userIDHeader)
	if len(values) == 0 {
		return 0, status.Error(codes.Unauthenticated, "user is not authenticated")
	}

	id, err := strconv.ParseInt(values[0], 10, 32)
	if err != nil || id <= 0 {
		return 0, status.Errorf(codes.Unauthenticated, "invalid user id %q", values[0])
	}
	return int32(id), nil
}
