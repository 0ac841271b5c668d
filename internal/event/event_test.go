package event_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vets2tech/onboard/internal/event"
)

func TestBus_PublishSubscribe(t *testing.T) {
	tests := map[string]struct {
		published   []string
		subscribers map[string][]string
		assert      func(t *testing.T, received map[string][]event.Event)
	}{
		"a subscriber should only receive the event it subscribed to": {
			published:   []string{"user.registered", "quiz.completed"},
			subscribers: map[string][]string{"mail": {"user.registered"}},

			assert: func(t *testing.T, received map[string][]event.Event) {
				assert.ElementsMatch(t, []event.Event{named("user.registered")}, received["mail"])
			},
		},

		"a subscriber should receive every publish of its event": {
			published:   []string{"challenge.graded", "challenge.graded", "challenge.graded"},
			subscribers: map[string][]string{"result": {"challenge.graded"}},

			assert: func(t *testing.T, received map[string][]event.Event) {
				assert.Len(t, received["result"], 3)
			},
		},

		"an event should fan out to every subscriber": {
			published: []string{"quiz.completed"},
			subscribers: map[string][]string{
				"result": {"quiz.completed"},
				"mail":   {"quiz.completed"},
			},

			assert: func(t *testing.T, received map[string][]event.Event) {
				assert.ElementsMatch(t, []event.Event{named("quiz.completed")}, received["result"])
				assert.ElementsMatch(t, []event.Event{named("quiz.completed")}, received["mail"])
			},
		},

		"a subscriber with multiple subscriptions should receive each stream": {
			published: []string{"user.registered", "quiz.completed", "challenge.graded", "quiz.completed"},
			subscribers: map[string][]string{
				"result": {"quiz.completed", "challenge.graded"},
			},

			assert: func(t *testing.T, received map[string][]event.Event) {
				assert.ElementsMatch(t, []event.Event{
					named("quiz.completed"),
					named("quiz.completed"),
					named("challenge.graded"),
				}, received["result"])
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mu := sync.Mutex{}
			received := make(map[string][]event.Event)

			b := event.NewBus()
			for sub, names := range tt.subscribers {
				sub := sub
				for _, n := range names {
					b.Subscribe(n, func(ctx context.Context, e event.Event) error {
						mu.Lock()
						received[sub] = append(received[sub], e)
						mu.Unlock()
						return nil
					})
				}
			}

			for _, n := range tt.published {
				b.Publish(context.Background(), named(n))
			}
			b.Stop()

			tt.assert(t, received)
		})
	}
}

func TestBus_HandlerFailuresAreIsolated(t *testing.T) {
	t.Parallel()

	mu := sync.Mutex{}
	var delivered int

	b := event.NewBus()
	b.Subscribe("e", func(ctx context.Context, e event.Event) error {
		return fmt.Errorf("boom")
	})
	b.Subscribe("e", func(ctx context.Context, e event.Event) error {
		panic("boom")
	})
	b.Subscribe("e", func(ctx context.Context, e event.Event) error {
		mu.Lock()
		delivered++
		mu.Unlock()
		return nil
	})

	b.Publish(context.Background(), named("e"))
	b.Publish(context.Background(), named("e"))
	b.Stop()

	assert.Equal(t, 2, delivered, "a failing handler should not block the others")
}

type named string

func (e named) Name() string {
	return string(e)
}
