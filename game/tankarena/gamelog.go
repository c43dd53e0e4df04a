package tankarena

import "strconv"

// Prefer use lightweight representation of constants for the future transport
const (
	LogEventShot logEventType = 1 << iota
	LogEventHitTarget
	LogEventHitTank
	LogEventFizzle
	LogEventOutOfRange
	LogEventPowerUp
	LogEventRespawn
)

type logEventType uint8

func (t logEventType) String() string {
	switch t {
	case LogEventShot:
		return "shot"
	case LogEventHitTarget:
		return "hit-target"
	case LogEventHitTank:
		return "hit-tank"
	case LogEventFizzle:
		return "fizzle"
	case LogEventOutOfRange:
		return "out-of-range"
	case LogEventPowerUp:
		return "powerup"
	case LogEventRespawn:
		return "respawn"
	}

	return "unknown"
}

// LogEntry records something that happened during a tick. Player and Other are
// player indexes, -1 when not relevant.
type LogEntry struct {
	Tick      int
	EventType logEventType
	Player    int
	Other     int
}

type TankArenaGameLog struct {
	entries []LogEntry
	cursor  int
}

func NewTankArenaGameLog() *TankArenaGameLog {
	return &TankArenaGameLog{
		entries: make([]LogEntry, 0),
	}
}

func MakeLogEntry(tick int, eventType logEventType, player int, other int) LogEntry {
	return LogEntry{
		Tick:      tick,
		EventType: eventType,
		Player:    player,
		Other:     other,
	}
}

func (e LogEntry) String() string {
	res := "#" + strconv.Itoa(e.Tick) + " " + e.EventType.String()
	if e.Player >= 0 {
		res += " player=" + strconv.Itoa(e.Player)
	}
	if e.Other >= 0 {
		res += " other=" + strconv.Itoa(e.Other)
	}
	return res
}

func (l *TankArenaGameLog) AddEntry(entry LogEntry) {
	l.entries = append(l.entries, entry)
}

func (l *TankArenaGameLog) GetEntries() []LogEntry {
	return l.entries
}

// PopNewEntries returns the entries added since the previous call.
func (l *TankArenaGameLog) PopNewEntries() []LogEntry {
	res := l.entries[l.cursor:]
	l.cursor = len(l.entries)
	return res
}

func (l *TankArenaGameLog) Count(eventType logEventType) int {
	count := 0
	for _, entry := range l.entries {
		if entry.EventType == eventType {
			count++
		}
	}

	return count
}
