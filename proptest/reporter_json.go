package proptest

import (
	"io"
	"sync"

	"github.com/sugawarayuuta/sonnet"
)

// jsonEvent is the wire shape for both trial and failure events, matching
// the neutral reporter event schema this package documents: a discriminant
// "type" field plus whichever of the remaining fields that event kind
// carries.
type jsonEvent struct {
	Type        string `json:"type"`
	Property    string `json:"property,omitempty"`
	SoFar       int    `json:"so_far,omitempty"`
	NumTests    int    `json:"num_tests,omitempty"`
	TrialNumber int    `json:"trial_number,omitempty"`
	FailingArgs []any  `json:"failing_args,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// JSONReporter encodes every event as a newline-delimited JSON object
// written to W, via sonnet — a drop-in encoding/json replacement already
// used elsewhere in this pack for high-throughput JSON decoding — rather
// than hand-rolling a string builder.
type JSONReporter struct {
	W io.Writer

	mu sync.Mutex
}

// Trial implements Reporter.
func (j *JSONReporter) Trial(ev TrialEvent) {
	j.write(jsonEvent{
		Type:     "trial",
		Property: ev.Property,
		SoFar:    ev.SoFar,
		NumTests: ev.NumTests,
	})
}

// Failure implements Reporter.
func (j *JSONReporter) Failure(ev FailureEvent) {
	j.write(jsonEvent{
		Type:        "failure",
		Property:    ev.Property,
		TrialNumber: ev.TrialNumber,
		FailingArgs: ev.FailingArgs,
		Reason:      ev.Result.Verdict.Reason,
	})
}

func (j *JSONReporter) write(ev jsonEvent) {
	data, err := sonnet.Marshal(ev)
	if err != nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.W.Write(data)
	j.W.Write([]byte{'\n'})
}
