package session_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/calculus"
	"github.com/katalvlaran/axiomic/config"
	"github.com/katalvlaran/axiomic/internal/session"
	"github.com/katalvlaran/axiomic/primes"
)

func newSession(opts ...session.Option) *session.Session {
	return session.New(config.Default(), zap.NewNop(), opts...)
}

// TestRun_Commands checks the text of every command on a known input.
func TestRun_Commands(t *testing.T) {
	s := newSession()
	cases := []struct{ line, command, want string }{
		{"5 + 6", "calc", "5 + 6 = 11\n→ Axiom 0: ⚪ Void – potential (prime)"},
		{"calc 7 ÷ 2", "calc", "7 ÷ 2 = 3.50\n→ Axiom 3: 🟡 Triad – transformation (prime)"},
		{"NOT 5", "calc", "NOT 5 = -6\n→ Axiom 5: 🟢 Growth – identity"},
		{"17", "isprime", "17 is prime\n→ Axiom 6: 🟣 Recursion – memory"},
		{"isprime 18", "isprime", "18 is not prime\n→ Axiom 7: 🟤 Self-awareness"},
		{"primes 20", "primes", "2, 3, 5, 7, 11, 13, 17, 19"},
		{"next 13", "next", "next prime after 13: 17"},
		{"nth 10", "nth", "prime #10 is 29"},
		{"factor 28", "factor", "28 = 2^2 × 7"},
		{"FACTOR 17", "factor", "17 is already prime"},
		{"gaps 20", "gaps", "1, 2, 2, 4, 2, 4, 2"},
		{"twins 15", "twins", "(3, 5), (5, 7), (11, 13)"},
		{"goldbach 28", "goldbach", "28 = 5 + 23"},
		{"compose 0, 12", "compose", "⚪ 0 → Void – potential →→→ 🔴 12 → Monad – distinction"},
		{"derive x**2 + 3*x", "derive", "d/dx(x**2 + 3*x) = 2*x + 3"},
		{"derive t^2 wrt t", "derive", "d/dt(t^2) = 2*t"},
		{"integrate sin(x)", "integrate", "∫ sin(x) dx = -cos(x) + C"},
	}
	for _, tc := range cases {
		r, err := s.Run(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.command, r.Command, tc.line)
		assert.Equal(t, tc.want, r.Text, tc.line)
	}
}

// TestRun_StructuredData exposes engine values for export.
func TestRun_StructuredData(t *testing.T) {
	s := newSession()

	r, err := s.Run("primes 10")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5, 7}, r.Data)

	r, err = s.Run("factor 360")
	require.NoError(t, err)
	assert.Equal(t, []primes.PrimePower{{Prime: 2, Exp: 3}, {Prime: 3, Exp: 2}, {Prime: 5, Exp: 1}}, r.Data)

	r, err = s.Run("isprime 11")
	require.NoError(t, err)
	v, ok := r.Data.(session.Verdict)
	require.True(t, ok)
	assert.True(t, v.Prime)
	assert.Equal(t, 0, v.Axiom.Index)
}

// TestRun_LegendChartHelp covers the multi-line replies.
func TestRun_LegendChartHelp(t *testing.T) {
	s := newSession()

	r, err := s.Run("legend")
	require.NoError(t, err)
	assert.Len(t, strings.Split(r.Text, "\n"), 11)

	r, err = s.Run("chart 30 10")
	require.NoError(t, err)
	assert.Len(t, strings.Split(r.Text, "\n"), 4)
	bs, ok := r.Data.([]primes.Bucket)
	require.True(t, ok)
	assert.Equal(t, 4, bs[0].Count)

	r, err = s.Run("chart 100")
	require.NoError(t, err)
	assert.Len(t, r.Data, 11, "default width is n/10")

	r, err = s.Run("help")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "goldbach")
}

// TestRun_Errors maps failures onto the taxonomy.
func TestRun_Errors(t *testing.T) {
	s := newSession()
	cases := []struct {
		line string
		want error
	}{
		{"", axiomic.ErrInvalidInput},
		{"   ", axiomic.ErrInvalidInput},
		{"factor abc", axiomic.ErrInvalidInput},
		{"hello world", axiomic.ErrInvalidInput},
		{"7 / 0", axiomic.ErrDivisionByZero},
		{"primes 20000", axiomic.ErrBoundExceeded},
		{"isprime 99999999999999999999", axiomic.ErrBoundExceeded},
		{"nth 10001", axiomic.ErrBoundExceeded},
		{"nth 0", axiomic.ErrInvalidInput},
		{"gaps 2", axiomic.ErrInsufficientData},
		{"goldbach 7", axiomic.ErrInvalidInput},
		{"goldbach 9223372036854775806", axiomic.ErrBoundExceeded},
		{"compose 1, two", axiomic.ErrInvalidInput},
		{"chart", axiomic.ErrInvalidInput},
		{"chart 10 0", axiomic.ErrInvalidInput},
		{"derive 2 +", axiomic.ErrInvalidInput},
		{"derive x wrt sin", axiomic.ErrInvalidInput},
		{"integrate sin(x^2)", calculus.ErrUnsupported},
	}
	for _, tc := range cases {
		_, err := s.Run(tc.line)
		assert.ErrorIs(t, err, tc.want, "%q", tc.line)
	}

	_, err := s.Run("derive 2 +")
	assert.ErrorIs(t, err, calculus.ErrParse, "calculus cause is kept")
}

// TestRun_ConfigLimits applies the configured bounds.
func TestRun_ConfigLimits(t *testing.T) {
	cfg := config.Default()
	cfg.Limits.MaxPrimeRange = 50
	cfg.Limits.MaxGoldbach = 100
	s := session.New(cfg, nil)

	_, err := s.Run("primes 51")
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)
	_, err = s.Run("primes 50")
	assert.NoError(t, err)

	_, err = s.Run("goldbach 102")
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)
	_, err = s.Run("goldbach 100")
	assert.NoError(t, err)
}

// TestHistory keeps the newest entries, failures included.
func TestHistory(t *testing.T) {
	s := newSession(session.WithHistoryLimit(3))
	for _, line := range []string{"1 + 1", "2 + 2", "3 / 0", "4 + 4", "5 + 5"} {
		_, _ = s.Run(line)
	}

	h := s.History()
	require.Len(t, h, 3)
	assert.Equal(t, "3 / 0", h[0].Line)
	assert.ErrorIs(t, h[0].Err, axiomic.ErrDivisionByZero)
	assert.Equal(t, "5 + 5", h[2].Line)
	assert.NoError(t, h[2].Err)

	h[0].Line = "mutated"
	assert.Equal(t, "3 / 0", s.History()[0].Line, "History returns a copy")

	assert.Panics(t, func() { session.WithHistoryLimit(0) })
}

// TestRun_Concurrent shares one Session across goroutines.
func TestRun_Concurrent(t *testing.T) {
	s := newSession(session.WithHistoryLimit(16))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, err := s.Run(fmt.Sprintf("%d + %d", i, j))
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.History(), 16)
}

// TestRun_LogsBoundAtWarn emits one warn entry with the kind.
func TestRun_LogsBoundAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := session.New(config.Default(), zap.New(core))

	_, _ = s.Run("primes 20000")
	_, _ = s.Run("5 + 6")

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, "bound_exceeded", warns[0].ContextMap()["kind"])
	assert.Equal(t, 1, logs.FilterMessage("line ok").Len())
}

type stubEngine struct{}

func (stubEngine) Derivative(expr, v string) (string, error) { return "D[" + expr + "]", nil }
func (stubEngine) Integral(expr, v string) (string, error)   { return "", calculus.ErrUnsupported }

// TestWithEngine routes derive and integrate through the given backend.
func TestWithEngine(t *testing.T) {
	s := newSession(session.WithEngine(stubEngine{}))

	r, err := s.Run("derive y wrt y")
	require.NoError(t, err)
	assert.Equal(t, "d/dy(y) = D[y]", r.Text)

	_, err = s.Run("integrate y")
	assert.ErrorIs(t, err, calculus.ErrUnsupported)
	assert.Panics(t, func() { session.WithEngine(nil) })
}
