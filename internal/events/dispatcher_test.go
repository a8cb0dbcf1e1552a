package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPublish(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventQuizSubmitted, func(_ context.Context, e Event) error {
		got = append(got, "first:"+string(e.Type))
		return errors.New("mailer down")
	})
	d.Subscribe(EventQuizSubmitted, func(_ context.Context, e Event) error {
		got = append(got, "second:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventCourseCreated, func(context.Context, Event) error {
		t.Fatal("unrelated handler called")
		return nil
	})

	err := d.Publish(context.Background(), New(EventQuizSubmitted, Actor{UserID: "u1"}, nil))
	assert.ErrorContains(t, err, "mailer down")
	assert.Equal(t, []string{"first:quiz_submitted", "second:quiz_submitted"}, got)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(EventEnrollmentCreated, Actor{}, nil)))
}

func TestDispatcherConcurrentUse(t *testing.T) {
	d := NewInMemoryDispatcher()
	var mu sync.Mutex
	count := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Subscribe(EventDiscussionCreated, func(context.Context, Event) error {
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = d.Publish(context.Background(), New(EventDiscussionCreated, Actor{}, nil))
		}()
	}
	wg.Wait()

	count = 0
	require.NoError(t, d.Publish(context.Background(), New(EventDiscussionCreated, Actor{}, nil)))
	assert.Equal(t, 20, count)
}

func TestNewStampsEvent(t *testing.T) {
	e := New(EventCourseCreated, Actor{Email: "alice@example.com"}, CourseCreatedPayload{CourseID: "c1"})
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, "alice@example.com", e.Actor.Email)
}
