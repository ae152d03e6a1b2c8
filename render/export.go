// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/axiomic"
)

// Envelope is the JSON document Export writes.
type Envelope struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	GeneratedAt time.Time  `json:"generated_at"`
	Data        any        `json:"data,omitempty"`
	Error       *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request inside an Envelope.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ExportOption customizes Export and ExportError.
type ExportOption func(*exportOptions)

type exportOptions struct {
	id  func() string
	now func() time.Time
}

// WithIDFunc replaces the uuid generator. Panics on nil.
func WithIDFunc(f func() string) ExportOption {
	if f == nil {
		panic("render: WithIDFunc(nil)")
	}

	return func(o *exportOptions) { o.id = f }
}

// WithClock replaces time.Now. Panics on nil.
func WithClock(f func() time.Time) ExportOption {
	if f == nil {
		panic("render: WithClock(nil)")
	}

	return func(o *exportOptions) { o.now = f }
}

func gatherExport(opts []ExportOption) exportOptions {
	o := exportOptions{id: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Export writes data wrapped in an Envelope of the given kind.
func Export(w io.Writer, kind string, data any, opts ...ExportOption) error {
	o := gatherExport(opts)

	return write(w, Envelope{ID: o.id(), Kind: kind, GeneratedAt: o.now().UTC(), Data: data})
}

// ExportError writes an Envelope carrying err instead of data.
func ExportError(w io.Writer, kind string, err error, opts ...ExportOption) error {
	o := gatherExport(opts)
	body := &ErrorBody{Kind: axiomic.KindOf(err).String(), Message: err.Error()}

	return write(w, Envelope{ID: o.id(), Kind: kind, GeneratedAt: o.now().UTC(), Error: body})
}

func write(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("render: export %s: %w", env.Kind, err)
	}

	return nil
}
