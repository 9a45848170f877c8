package models

import "time"

// DateStatus состояние одной календарной даты после разрешения переопределений
// и подсчета занятости. Для заблокированных дат занятость не вычисляется:
// BookedUnits и RemainingUnits остаются нулевыми
type DateStatus struct {
	Date              time.Time
	Blocked           bool
	BlockReason       *string // nil, если дата не заблокирована
	BookedUnits       int
	EffectiveCapacity int
	RemainingUnits    int // может быть отрицательным при овербукинге
}
