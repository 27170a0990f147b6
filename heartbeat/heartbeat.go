package heartbeat

import (
	"context"
)

// Heartbeat signals a fully successful run to an external monitor.
type Heartbeat interface {
	Beat(context.Context) error
}

type NopHeartbeat struct{}

func NewNopHeartbeat() NopHeartbeat {
	return NopHeartbeat{}
}

func (NopHeartbeat) Beat(context.Context) error {
	return nil
}
