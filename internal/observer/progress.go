package observer

import (
	"io"

	"github.com/imkira/go-observer"
	"gopkg.in/cheggaaa/pb.v2"
)

// ProgressObserver shows a progress bar over all tests of a run. The
// bar's total is the sum of the estimated test counts of the suites
// seen so far and grows if a suite turns out to have more tests.
type ProgressObserver struct {
	done chan struct{}
	prop observer.Property
	bar  *pb.ProgressBar
}

// NewProgressObserver returns an observer drawing its bar on out.
func NewProgressObserver(prop observer.Property, out io.Writer) *ProgressObserver {
	return &ProgressObserver{
		done: make(chan struct{}),
		prop: prop,
		bar:  pb.Simple.New(0).SetWriter(out),
	}
}

func (po *ProgressObserver) Start() error {
	stream := po.prop.Observe()
	po.bar.Start()
	go func() {
		defer close(po.done)

		follow(stream, func(data interface{}) bool {
			switch event := data.(type) {
			case SuiteStart:
				po.bar.SetTotal(po.bar.Total() + int64(event.Expected))
			case TestResult:
				if event.Status == StatusAborted {
					return true
				}
				po.bar.Increment()
				if po.bar.Current() > po.bar.Total() {
					po.bar.SetTotal(po.bar.Current())
				}
			case TestExecutionEnd:
				po.bar.Finish()
				return false
			}
			return true
		})
	}()
	return nil
}

// Finalize waits until the bar has been completed.
func (po *ProgressObserver) Finalize() error {
	<-po.done
	return nil
}

// Total returns the bar's current total.
func (po *ProgressObserver) Total() int64 {
	return po.bar.Total()
}

// Current returns the number of tests completed so far.
func (po *ProgressObserver) Current() int64 {
	return po.bar.Current()
}
