// Package pubsub provides a generic in-process publish/subscribe broker. The
// registry service uses it to announce deployments as they are created and
// deleted.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened to the published payload.
type EventType string

const (
	// DeployedEvent announces a deployment whose definitions were registered,
	// or an unchanged redeploy that returned an existing deployment.
	DeployedEvent EventType = "deployed"
	// DeletedEvent announces a removed deployment.
	DeletedEvent EventType = "deleted"
)

// Event is one published payload with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber streams events until ctx is cancelled.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}
