package controllers

import (
	"context"

	"lumora-io/api/internal/common"
)

func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}
