package dto

import (
	"time"

	"vofc-ingest-be/pkg/queue"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

type QueueResponse struct {
	Items  []queue.Item         `json:"items"`
	Counts map[queue.Status]int `json:"counts"`
}

type StopResponse struct {
	Requested bool   `json:"requested"`
	Sentinel  string `json:"sentinel"`
}
