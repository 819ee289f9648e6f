package user

import (
	"github.com/olhgfsaw/salon-booking-service/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения SQL запросов
type DBExecutor = dbmetrics.DBExecutor
