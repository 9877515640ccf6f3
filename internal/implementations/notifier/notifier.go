package notifier

import (
	"context"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"
)

// Composite hands every event to all of its notifiers. A failing notifier
// does not prevent the rest from being called; the first error is returned.
type Composite struct {
	log       logging.Logger
	notifiers []namedNotifier
}

type namedNotifier struct {
	name     string
	notifier notification.Notifier
}

func NewComposite(log logging.Logger) *Composite {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Composite{log: log}
}

func (c *Composite) With(name string, n notification.Notifier) *Composite {
	if n == nil {
		panic(e.NewNilArgumentError(name))
	}
	c.notifiers = append(c.notifiers, namedNotifier{name: name, notifier: n})
	return c
}

func (c *Composite) Notify(ctx context.Context, event notification.Event) error {
	var firstErr error
	for _, n := range c.notifiers {
		err := n.notifier.Notify(ctx, event)
		if err != nil {
			logging.Error(
				ctx,
				c.log,
				err,
				logging.Entry("notifier", n.name),
				logging.Entry("eventID", event.ID),
				logging.Entry("label", event.Label),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.log.Info(
			ctx,
			"Notification has been successfully sent.",
			logging.Entry("notifier", n.name),
			logging.Entry("eventID", event.ID),
			logging.Entry("label", event.Label),
		)
	}
	return firstErr
}
