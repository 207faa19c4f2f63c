package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DispatchScheduler runs delayed callbacks on the program's update loop
// instead of the timer goroutine. Callbacks fired before Bind are
// dropped; nothing schedules that early in practice.
type DispatchScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewDispatchScheduler() *DispatchScheduler {
	return &DispatchScheduler{}
}

// Bind wires the scheduler to a running program's Send.
func (s *DispatchScheduler) Bind(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *DispatchScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(applyMsg{fn: fn})
		}
	})
}
