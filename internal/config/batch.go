package config

import "fmt"

// MaxBatchWorkers bounds the batch worker pool.
const MaxBatchWorkers = 256

// BatchConfig configures the batch command.
type BatchConfig struct {
	Workers int `yaml:"workers"` // concurrent phrases in flight
}

// Validate checks that the worker count is within range.
func (b BatchConfig) Validate() error {
	if b.Workers < 1 || b.Workers > MaxBatchWorkers {
		return fmt.Errorf("%w: batch.workers must be between 1 and %d, got %d", ErrInvalidConfig, MaxBatchWorkers, b.Workers)
	}
	return nil
}
