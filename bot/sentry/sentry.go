package sentry

import (
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/modmail-cloud/departments-worker/bot/errorcontext"
	"github.com/sirupsen/logrus"
)

func Initialise(dsn string) error {
	if dsn == "" {
		logrus.Warn("sentry dsn is not set, error reporting is disabled")
		return nil
	}

	return sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
	})
}

// ErrorWithContext reports the error tagged with the guild/user/channel it
// occurred in and returns the sentry event id for user-facing error messages.
func ErrorWithContext(err error, errCtx errorcontext.WorkerErrorContext) string {
	logrus.Errorf("%s (guild=%d user=%d)", err.Error(), errCtx.Guild, errCtx.User)

	var eventId *sentrygo.EventID
	sentrygo.WithScope(func(scope *sentrygo.Scope) {
		scope.SetTags(errCtx.Tags())
		eventId = sentrygo.CaptureException(err)
	})

	if eventId == nil {
		return ""
	}

	return string(*eventId)
}
