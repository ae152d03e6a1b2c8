// SPDX-License-Identifier: MIT
// Package: axiomic/internal/session
//
// session.go: one calculator pad: parses a line, runs it against the
// engine packages, and keeps a bounded history of what happened.
//
// Contract:
//   • Run never panics on user input; failures come back as wrapped
//     axiomic sentinels (or calculus errors for derive/integrate).
//   • Both successes and failures are recorded in History.
//   • A Session is safe for concurrent use.

package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/calculus"
	"github.com/katalvlaran/axiomic/config"
	"github.com/katalvlaran/axiomic/primes"
	"github.com/katalvlaran/axiomic/render"
)

// DefaultHistoryLimit is the number of entries History keeps.
const DefaultHistoryLimit = 100

// Reply is the outcome of one successful line.
type Reply struct {
	// Command names the handler that ran ("calc" for bare expressions).
	Command string
	// Text is the human-readable rendering.
	Text string
	// Data is the structured result, suitable for render.Export.
	Data any
}

// Entry is one line of history.
type Entry struct {
	Line  string
	Reply Reply
	Err   error
}

// Option configures a Session.
type Option func(*Session)

// WithEngine replaces the symbolic calculus backend. Panics on nil.
func WithEngine(e calculus.Engine) Option {
	if e == nil {
		panic("session: WithEngine(nil)")
	}

	return func(s *Session) { s.engine = e }
}

// WithHistoryLimit caps History. Panics if n < 1.
func WithHistoryLimit(n int) Option {
	if n < 1 {
		panic("session: WithHistoryLimit(n<1)")
	}

	return func(s *Session) { s.limit = n }
}

// Session runs pad lines under one configuration.
type Session struct {
	cfg    config.Config
	popts  []primes.Option
	copts  []render.ChartOption
	log    *zap.Logger
	engine calculus.Engine
	limit  int

	mu      sync.Mutex
	history []Entry
}

// New builds a Session. A nil logger is replaced by zap.NewNop.
func New(cfg config.Config, log *zap.Logger, opts ...Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		cfg:    cfg,
		popts:  cfg.PrimeOptions(),
		copts:  cfg.ChartOptions(),
		log:    log,
		engine: calculus.Symbolic{},
		limit:  DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes one line: "<command> <args>", a bare integer (primality
// check) or a bare semantic expression such as "5 + 6".
func (s *Session) Run(line string) (Reply, error) {
	line = strings.TrimSpace(line)
	reply, err := s.dispatch(line)
	s.record(Entry{Line: line, Reply: reply, Err: err})

	switch kind := axiomic.KindOf(err); kind {
	case axiomic.KindNone:
		s.log.Debug("line ok", zap.String("line", line), zap.String("command", reply.Command))
	case axiomic.KindBoundExceeded:
		s.log.Warn("bound exceeded", zap.String("line", line), zap.Stringer("kind", kind), zap.Error(err))
	default:
		s.log.Debug("line failed", zap.String("line", line), zap.Stringer("kind", kind), zap.Error(err))
	}

	return reply, err
}

func (s *Session) dispatch(line string) (Reply, error) {
	if line == "" {
		return Reply{}, fmt.Errorf("session: empty line: %w", axiomic.ErrInvalidInput)
	}
	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	if h, ok := handlers[name]; ok {
		return h(s, strings.TrimSpace(args))
	}
	if _, err := parseInt(line); err == nil {
		return isPrime(s, line)
	}

	return calc(s, line)
}

func (s *Session) record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
	if over := len(s.history) - s.limit; over > 0 {
		s.history = append(s.history[:0:0], s.history[over:]...)
	}
}

// History returns a copy of the recorded entries, oldest first.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.history))
	copy(out, s.history)

	return out
}

// Commands lists the command words Run understands, sorted.
func Commands() []string {
	out := make([]string, 0, len(handlers))
	for name := range handlers {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
