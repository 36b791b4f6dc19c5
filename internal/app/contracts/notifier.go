package contracts

import "context"

// EventNotifier publishes schedule-change events for downstream consumers.
// Publishing is best-effort from the caller's perspective; a failed publish
// never rolls back the schedule mutation it announces.
type EventNotifier interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}
