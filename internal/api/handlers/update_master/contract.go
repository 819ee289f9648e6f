package update_master

import (
	"context"

	masterModels "github.com/olhgfsaw/salon-booking-service/internal/service/masters/models"
)

type MasterService interface {
	Update(ctx context.Context, id string, req *masterModels.UpdateMasterRequest) (*masterModels.MasterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
