package create_master

import (
	"context"

	masterModels "github.com/olhgfsaw/salon-booking-service/internal/service/masters/models"
)

type MasterService interface {
	Create(ctx context.Context, req *masterModels.CreateMasterRequest) (*masterModels.MasterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
