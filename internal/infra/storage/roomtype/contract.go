package roomtype

import "github.com/Vzyree-619/FindoTrip-sub006/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
