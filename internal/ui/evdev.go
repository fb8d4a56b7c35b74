package ui

import (
	"fmt"
	"time"
)

// EvdevEvent is a key press read from a Linux input device.
type EvdevEvent struct {
	Time   time.Time
	Device string // e.g. "event3"
	Type   uint16
	Code   uint16
	Value  int32
}

// Describe formats the event for the debug overlay, with its age at now.
func (ev EvdevEvent) Describe(now time.Time) string {
	age := now.Sub(ev.Time).Truncate(time.Millisecond)
	return fmt.Sprintf("%s  code=%-4d  type=%-2d  val=%d  %s ago", ev.Device, ev.Code, ev.Type, ev.Value, age)
}
