package app

import (
	"funkin-launcher/internal/logger"
	"funkin-launcher/internal/session"
)

// Lifecycle flushes session state on the way out. Registered with the
// shutdown manager so both window close and signals go through it.
type Lifecycle struct {
	session    *session.Session
	log        logger.Logger
	isShutdown bool
}

func NewLifecycle(sess *session.Session, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		session: sess,
		log:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true

	l.session.Flush()
	l.log.Info("Lifecycle", "session state flushed", nil)
}
