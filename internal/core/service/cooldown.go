package service

import (
	"math"
	"sync"
	"time"
)

// Verdict is the result of a cooldown check. Remaining is only meaningful
// when Allowed is false.
type Verdict struct {
	Allowed   bool
	Remaining int
}

type cooldownKey struct {
	userID  int64
	command string
}

// CooldownLimiter tracks the last invocation time per (user, command) pair.
// Entries are never evicted; the user universe of this bot is the small set
// of chats in the catalog.
type CooldownLimiter struct {
	mutex sync.Mutex
	last  map[cooldownKey]time.Time
	now   func() time.Time
}

func NewCooldownLimiter() *CooldownLimiter {
	return &CooldownLimiter{
		last: make(map[cooldownKey]time.Time),
		now:  time.Now,
	}
}

// Check reports whether the user may run the command now. An allowed call
// records the current time under the same lock, so two near-simultaneous
// invocations can never both pass.
func (l *CooldownLimiter) Check(userID int64, command string, cooldown time.Duration) Verdict {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	key := cooldownKey{userID: userID, command: command}

	last, ok := l.last[key]
	if !ok || now.Sub(last) >= cooldown {
		l.last[key] = now
		return Verdict{Allowed: true}
	}

	remaining := int(math.Ceil((cooldown - now.Sub(last)).Seconds()))
	if remaining < 1 {
		remaining = 1
	}

	return Verdict{Allowed: false, Remaining: remaining}
}
