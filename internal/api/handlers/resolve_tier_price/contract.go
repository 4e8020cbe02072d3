package resolve_tier_price

import (
	"context"

	resolveTierPrice "github.com/lensroom/studio-booking-service/internal/usecase/resolve_tier_price"
)

type ResolveTierPriceUseCase interface {
	Execute(ctx context.Context, req *resolveTierPrice.Request) (*resolveTierPrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
