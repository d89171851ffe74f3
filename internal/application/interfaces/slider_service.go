package interfaces

import (
	"context"

	"content-service/internal/application/query"
)

type SliderService interface {
	ListActive(ctx context.Context) (*query.SliderQueryListResult, error)
}
