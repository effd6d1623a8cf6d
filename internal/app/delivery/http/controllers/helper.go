package controllers

import (
	"context"
	"errors"
	"net/http"
	"preop-service/internal/pkg/exceptions"
	"preop-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 20

// writeUsecaseError maps a usecase failure onto the response, turning an
// expired request context into a gateway timeout.
func writeUsecaseError(ctx context.Context, log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
