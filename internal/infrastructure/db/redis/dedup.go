package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// PaymentDedup provides payment-receipt idempotency backed by Redis. The
// simulated gateway retries notifications; a transaction id seen within the
// TTL is treated as a replay.
// Key format: payment:<project_id>:<transaction_id>
type PaymentDedup struct {
	client *redis.Client
}

// NewPaymentDedup creates a PaymentDedup wrapping the given Redis client.
func NewPaymentDedup(client *redis.Client) *PaymentDedup {
	return &PaymentDedup{client: client}
}

// IsDuplicate reports whether this transaction has already been recorded.
func (d *PaymentDedup) IsDuplicate(ctx context.Context, projectID, transactionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(projectID, transactionID)).Result()
	if err != nil {
		return false, fmt.Errorf("payment dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this transaction has been processed (expires after dedupTTL).
func (d *PaymentDedup) Mark(ctx context.Context, projectID, transactionID string) error {
	return d.client.Set(ctx, d.key(projectID, transactionID), "1", dedupTTL).Err()
}

func (d *PaymentDedup) key(projectID, transactionID string) string {
	return fmt.Sprintf("payment:%s:%s", projectID, transactionID)
}
