package sources

import (
	"context"

	"github.com/Anway-Kapoor/SentiNews/internal/models"
)

// Provider is the contract every external content source implements.
type Provider interface {
	Name() string
	Enabled() bool
	Search(ctx context.Context, topic string, timeRange models.TimeRange) ([]models.Post, error)
}
