package health

import (
	"context"

	"github.com/AzielCF/az-citydata/domains/cache"
)

type Status string

const (
	StatusOk    Status = "OK"
	StatusError Status = "ERROR"
)

type Upstream struct {
	Name       string `json:"name"`
	BaseURL    string `json:"base_url"`
	Configured bool   `json:"configured"`
}

type Record struct {
	Status    Status      `json:"status"`
	Version   string      `json:"version"`
	StartedAt string      `json:"started_at"`
	Uptime    string      `json:"uptime"`
	Cache     cache.Stats `json:"cache"`
	Upstreams []Upstream  `json:"upstreams"`
	Message   string      `json:"message,omitempty"`
}

type IHealthUsecase interface {
	GetStatus(ctx context.Context) (Record, error)
}
