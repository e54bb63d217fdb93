package config

import (
	"fmt"
	"os"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Queue.validate(); err != nil {
		return fmt.Errorf("queue: %w", err)
	}

	if c.Email.Enabled && len(c.Email.URLList()) == 0 {
		return fmt.Errorf("email.urls must be set when email is enabled")
	}

	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket must not be empty")
	}

	if err := c.Deficiency.validate(); err != nil {
		return fmt.Errorf("deficiency: %w", err)
	}

	return nil
}

func (q *QueueConfig) validate() error {
	if q.Stream == "" || q.Group == "" {
		return fmt.Errorf("stream and group must not be empty")
	}
	if q.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", q.Concurrency)
	}
	if q.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", q.MaxRetries)
	}
	if q.Consumer == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "worker"
		}
		q.Consumer = host
	}
	return nil
}

func (d *DeficiencyConfig) validate() error {
	if d.DescriptionBudget < 10 {
		return fmt.Errorf("description_budget must be >= 10 (got %d)", d.DescriptionBudget)
	}
	if d.DefaultLimit <= 0 || d.MaxLimit < d.DefaultLimit {
		return fmt.Errorf("default_limit must be > 0 and <= max_limit (got %d, %d)", d.DefaultLimit, d.MaxLimit)
	}
	if d.MaxImages <= 0 {
		return fmt.Errorf("max_images must be > 0 (got %d)", d.MaxImages)
	}
	return nil
}
