// Package eventlog appends request and error events to per-topic log files.
// Events are queued on a channel and written by a single background
// goroutine, so handlers never block on disk.
package eventlog

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	RequestLog = "reqLog.log"
	ErrorLog   = "errLog.log"
)

type event struct {
	file    string
	message string
	at      time.Time
}

type Logger struct {
	dir    string
	events chan event
	done   chan struct{}
}

func New(dir string) *Logger {
	return &Logger{
		dir:    dir,
		events: make(chan event, 256),
		done:   make(chan struct{}),
	}
}

// Log queues one line for the given file. Drops the event if the writer
// cannot keep up rather than stalling the request path.
func (l *Logger) Log(file, format string, args ...interface{}) {
	ev := event{file: file, message: fmt.Sprintf(format, args...), at: time.Now()}
	select {
	case l.events <- ev:
	default:
		log.Printf("eventlog: queue full, dropping event for %s", file)
	}
}

// Start runs the writer loop until ctx is cancelled, then drains whatever
// is still queued before signalling Stop.
func (l *Logger) Start(ctx context.Context) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		log.Printf("eventlog: cannot create log dir %s: %v", l.dir, err)
	}

	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case ev := <-l.events:
					l.write(ev)
				default:
					return
				}
			}
		case ev := <-l.events:
			l.write(ev)
		}
	}
}

// Stop blocks until the writer loop has drained and exited.
func (l *Logger) Stop() {
	<-l.done
}

func (l *Logger) write(ev event) {
	line := fmt.Sprintf("%s\t%s\t%s\n", ev.at.Format("20060102 15:04:05"), uuid.NewString(), ev.message)
	f, err := os.OpenFile(filepath.Join(l.dir, ev.file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("eventlog: open %s: %v", ev.file, err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		log.Printf("eventlog: write %s: %v", ev.file, err)
	}
}
