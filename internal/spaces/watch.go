package spaces

import (
	"context"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/model"
)

// DefaultInterval is how often Watch polls the window server.
const DefaultInterval = time.Second

// DisplayLister returns the current displays and their spaces.
type DisplayLister interface {
	ListDisplays() ([]model.Display, error)
}

// Watch polls lister every interval and calls fn with the current position
// whenever it changes, including once for the initial state. A position with
// ok == false means no space could be resolved. Listing errors are logged and
// polling continues. Watch returns when ctx is done, or with the first error
// returned by fn.
func Watch(ctx context.Context, lister DisplayLister, interval time.Duration, fn func(pos Position, ok bool) error) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	var (
		last    Position
		lastOK  bool
		started bool
	)
	poll := func() error {
		displays, err := lister.ListDisplays()
		if err != nil {
			logger.Warnf(ctx, "unable to list displays: %v", err)
			return nil
		}
		pos, ok := Current(displays)
		if started && pos == last && ok == lastOK {
			return nil
		}
		started = true
		last, lastOK = pos, ok
		logger.Debugf(ctx, "space changed: %+v (resolved: %v)", pos, ok)
		return fn(pos, ok)
	}

	if err := poll(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := poll(); err != nil {
				return err
			}
		}
	}
}
