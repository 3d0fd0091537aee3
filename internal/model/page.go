package model

import "time"

// Page конверт постраничного ответа API.
// Ядро использует только Content, остальные поля информационные.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// ScheduleQuery параметры запроса занятий за диапазон дат (включительно)
type ScheduleQuery struct {
	StartDate  time.Time
	EndDate    time.Time
	MaxResults int
}
