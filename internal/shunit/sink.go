package shunit

import (
	"sync"
)

//go:generate moq -fmt goimports -pkg shunit_test -out ./sink_mock_test.go . Sink

// Sink receives the lifecycle notifications of a suite run. Calls are
// never concurrent and arrive in the order the events occurred.
type Sink interface {
	TestStarted(test string)
	TestFinished(test string)
	TestFailure(test string, message string)
	SuiteAborted(suite string, cause error)
}

// EventKind identifies the kind of a TestEvent.
type EventKind string

const (
	EventStarted  EventKind = "started"
	EventFailed   EventKind = "failed"
	EventFinished EventKind = "finished"
	EventAborted  EventKind = "aborted"
)

// TestEvent is a single notification as seen by an EventRecorder. For
// aborted events Test holds the suite name.
type TestEvent struct {
	Kind    EventKind
	Test    string
	Message string
	Cause   error
}

// EventRecorder is a Sink that keeps every notification in order.
type EventRecorder struct {
	mu     sync.Mutex
	events []TestEvent
}

func (r *EventRecorder) record(e TestEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *EventRecorder) TestStarted(test string) {
	r.record(TestEvent{Kind: EventStarted, Test: test})
}

func (r *EventRecorder) TestFinished(test string) {
	r.record(TestEvent{Kind: EventFinished, Test: test})
}

func (r *EventRecorder) TestFailure(test string, message string) {
	r.record(TestEvent{Kind: EventFailed, Test: test, Message: message})
}

func (r *EventRecorder) SuiteAborted(suite string, cause error) {
	r.record(TestEvent{Kind: EventAborted, Test: suite, Cause: cause})
}

// Events returns a copy of the recorded events.
func (r *EventRecorder) Events() []TestEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]TestEvent, len(r.events))
	copy(events, r.events)
	return events
}
