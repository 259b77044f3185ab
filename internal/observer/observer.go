package observer

import (
	"github.com/imkira/go-observer"
)

// follow hands every value of stream to handle, starting with the
// current one, until handle returns false. Observers take their stream
// in Start so that no value published after Start returns is missed.
func follow(stream observer.Stream, handle func(data interface{}) bool) {
	for {
		if !handle(stream.Value()) {
			return
		}
		<-stream.Changes()
		stream.Next()
	}
}
