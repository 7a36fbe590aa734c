package notify

import "fmt"

// Subscription is one live channel binding. Close releases it.
type Subscription interface {
	Close() error
}

// Subscriber is the push transport handed to a Listener. Implementations
// wrap whatever delivers server events (an FCM topic binding, a websocket,
// a test fake); the Listener only cares about subscribe and teardown.
type Subscriber interface {
	Subscribe(channel string, handler func(Event)) (Subscription, error)
}

// Listener binds a Counters to a set of push channels for the lifetime of a
// view. Close must be called when the view unmounts so no subscription leaks
// across page transitions.
type Listener struct {
	counters *Counters
	subs     []Subscription
	closed   bool
}

// Listen subscribes the counters to every named channel. On any subscribe
// failure the already-opened subscriptions are released before returning.
func Listen(sub Subscriber, counters *Counters, channels ...string) (*Listener, error) {
	l := &Listener{counters: counters}

	for _, ch := range channels {
		s, err := sub.Subscribe(ch, counters.Apply)
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("subscribe %s: %w", ch, err)
		}
		l.subs = append(l.subs, s)
	}

	return l, nil
}

// Close releases every subscription. Safe to call more than once.
func (l *Listener) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	var firstErr error
	for _, s := range l.subs {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.subs = nil
	return firstErr
}
