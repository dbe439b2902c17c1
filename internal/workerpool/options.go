package workerpool

import "log/slog"

type options struct {
	log       *slog.Logger
	observers []Observer
}

type Option func(*options)

// WithLogger sets the logger used for pool lifecycle messages.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithObserver attaches observers; they are notified in the order given.
func WithObserver(obs ...Observer) Option {
	return func(o *options) {
		for _, ob := range obs {
			if ob != nil {
				o.observers = append(o.observers, ob)
			}
		}
	}
}
