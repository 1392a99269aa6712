package engine

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Window is a wall-clock trigger time for scheduled watering.
type Window struct {
	Hour   int
	Minute int
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

// ParseWindows parses "08:00,18:00" style configuration. Invalid entries
// are skipped; an empty result means no scheduled watering.
func ParseWindows(s string) []Window {
	var out []Window
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		hm := strings.SplitN(part, ":", 2)
		if len(hm) != 2 {
			continue
		}
		h, err1 := strconv.Atoi(hm[0])
		m, err2 := strconv.Atoi(hm[1])
		if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			continue
		}
		out = append(out, Window{Hour: h, Minute: m})
	}
	return out
}

// DefaultWindows are the morning and evening watering slots.
func DefaultWindows() []Window {
	return []Window{{Hour: 8, Minute: 0}, {Hour: 18, Minute: 0}}
}

// ScheduleTrigger tracks which windows already fired. A window fires when
// a monitoring tick lands in its minute, and at most once per minute even
// if several ticks overlap it.
type ScheduleTrigger struct {
	mu        sync.Mutex
	windows   []Window
	lastFired map[Window]time.Time
}

func NewScheduleTrigger(windows []Window) *ScheduleTrigger {
	return &ScheduleTrigger{
		windows:   windows,
		lastFired: make(map[Window]time.Time, len(windows)),
	}
}

// Due returns the windows matching now's hour and minute that have not
// fired within this minute yet, and marks them fired.
func (s *ScheduleTrigger) Due(now time.Time) []Window {
	s.mu.Lock()
	defer s.mu.Unlock()

	minute := now.Truncate(time.Minute)

	var due []Window
	for _, w := range s.windows {
		if now.Hour() != w.Hour || now.Minute() != w.Minute {
			continue
		}
		if last, ok := s.lastFired[w]; ok && last.Equal(minute) {
			continue
		}
		s.lastFired[w] = minute
		due = append(due, w)
	}
	return due
}

func (s *ScheduleTrigger) Windows() []Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Window, len(s.windows))
	copy(out, s.windows)
	return out
}
