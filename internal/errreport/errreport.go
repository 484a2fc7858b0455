// Package errreport forwards recovered errors to Sentry. Without a DSN every
// call is a no-op apart from the usual log line at the call site.
package errreport

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

func Init(dsn, environment, release string) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// user ids and message texts stay out of reports
			event.User = sentry.User{}
			return event
		},
	})
	if err != nil {
		log.Printf("⚠️ Sentry init failed (non-blocking): %v", err)
		return
	}
	if dsn == "" {
		log.Println("SENTRY_DSN is empty, error reporting disabled")
	} else {
		log.Println("📡 Sentry initialized")
	}
}

func Flush() { sentry.Flush(2 * time.Second) }

// Capture reports err tagged with component.
func Capture(err error, component string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", component)
		sentry.CaptureException(err)
	})
}
