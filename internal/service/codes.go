package service

import (
	"fmt"
	"sync"
	"time"
)

// CodeSource issues time-derived order and transaction codes. The stamp is
// strictly monotonic per process, so two codes requested in the same
// millisecond still differ; the UNIQUE column constraint backstops collisions
// across restarts.
type CodeSource struct {
	mu   sync.Mutex
	last int64
}

func NewCodeSource() *CodeSource { return &CodeSource{} }

func (s *CodeSource) stamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return now
}

func (s *CodeSource) OrderCode() string { return fmt.Sprintf("#%d", s.stamp()) }

func (s *CodeSource) TransactionCode() string { return fmt.Sprintf("#T%d", s.stamp()) }
