//go:build linux

package ui

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Linux evdev constants
const (
	evKey   = 0x01
	keyBack = 158 // KEY_BACK (XF86Back)
)

// inputEventSize is the size of a Linux input_event struct (timeval + u16 + u16 + s32).
var inputEventSize = int(unsafe.Sizeof(struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}{}))

var evdevBackPressed atomic.Bool

const recentEventsMax = 8

var (
	recentEventsMu sync.Mutex
	recentEvents   []EvdevEvent
)

var evdevOnce sync.Once

// StartEvdev starts watching /dev/input/event* devices for the remote's
// KEY_BACK button. Later calls do nothing.
func StartEvdev() {
	evdevOnce.Do(func() { go watchEvdevBack() })
}

func watchEvdevBack() {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(matches) == 0 {
		return
	}

	for _, path := range matches {
		go readEvdev(path)
	}
}

func readEvdev(path string) {
	f, err := os.Open(path)
	if err != nil {
		// No permission or device not accessible
		logrus.WithError(err).WithField("device", path).Debug("evdev: skipping device")
		return
	}
	defer f.Close()

	device := filepath.Base(path)
	buf := make([]byte, inputEventSize)
	for {
		_, err := f.Read(buf)
		if err != nil {
			return
		}

		recordEvdev(device, buf, time.Now())
	}
}

// recordEvdev decodes one input_event and records it when it is a key press.
func recordEvdev(device string, buf []byte, now time.Time) {
	// Parse type (offset 16), code (offset 18), value (offset 20)
	typ := binary.LittleEndian.Uint16(buf[16:18])
	code := binary.LittleEndian.Uint16(buf[18:20])
	value := int32(binary.LittleEndian.Uint32(buf[20:24]))
	if typ != evKey || value != 1 {
		return
	}

	ev := EvdevEvent{Time: now, Device: device, Type: typ, Code: code, Value: value}
	recentEventsMu.Lock()
	recentEvents = append(recentEvents, ev)
	if len(recentEvents) > recentEventsMax {
		recentEvents = recentEvents[len(recentEvents)-recentEventsMax:]
	}
	recentEventsMu.Unlock()
	logrus.WithFields(logrus.Fields{"device": device, "code": code}).Debug("evdev: key press")

	if code == keyBack {
		evdevBackPressed.Store(true)
	}
}

// EvdevBackJustPressed returns true once if the evdev KEY_BACK was pressed,
// then resets the flag.
func EvdevBackJustPressed() bool {
	return evdevBackPressed.CompareAndSwap(true, false)
}

// EvdevRecentEvents returns a snapshot of the most recent evdev key-press events.
func EvdevRecentEvents() []EvdevEvent {
	recentEventsMu.Lock()
	defer recentEventsMu.Unlock()
	out := make([]EvdevEvent, len(recentEvents))
	copy(out, recentEvents)
	return out
}
