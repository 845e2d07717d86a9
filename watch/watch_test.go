package watch

import (
	"sync"
	"testing"
	"time"

	utils "github.com/scimas/judgment/internal"
	"github.com/stretchr/testify/assert"
)

func TestLatestValue(t *testing.T) {
	v := NewValue(1)

	val, version := v.Get()
	utils.AssertEqual(t, val, 1)
	utils.AssertEqual(t, version, uint64(0))

	v.Set(2)
	val, version = v.Get()
	utils.AssertEqual(t, val, 2)
	utils.AssertEqual(t, version, uint64(1))
}

func TestSubscriberSeesPublish(t *testing.T) {
	v := NewValue("initial")
	r := v.Subscribe()

	utils.AssertEqual(t, r.Latest(), "initial")

	go v.Set("updated")

	utils.Within(t, time.Second, func() {
		utils.AssertEqual(t, r.Await(5*time.Second), "updated")
	})
}

func TestNoLostWakeups(t *testing.T) {
	const subscribers = 25
	v := NewValue(0)

	results := make(chan int, subscribers)
	var ready sync.WaitGroup
	ready.Add(subscribers)
	for i := 0; i < subscribers; i++ {
		r := v.Subscribe()
		go func() {
			ready.Done()
			results <- r.Await(5 * time.Second)
		}()
	}
	ready.Wait()
	// give the goroutines a beat to actually block
	time.Sleep(10 * time.Millisecond)

	v.Set(42)

	for i := 0; i < subscribers; i++ {
		select {
		case got := <-results:
			utils.AssertEqual(t, got, 42)
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never woke up", i)
		}
	}
}

func TestLateSubscriber(t *testing.T) {
	v := NewValue(0)
	v.Set(7)

	// a receiver created after the publish sees it without waiting
	r := v.Subscribe()
	utils.AssertEqual(t, r.Latest(), 7)

	// a receiver that missed the publish gets it back immediately on Await
	stale := &Receiver[int]{value: v, seen: 0}
	utils.Within(t, 100*time.Millisecond, func() {
		utils.AssertEqual(t, stale.Await(5*time.Second), 7)
	})
}

func TestRepeatedReadsAreIdempotent(t *testing.T) {
	v := NewValue(3)
	r := v.Subscribe()

	first := r.Latest()
	second := r.Latest()
	assert.Equal(t, first, second)
}

func TestPublishRacingTimeout(t *testing.T) {
	// a publish landing just as the timer fires must still be reported
	// as a change, otherwise the caller silently swallows the update
	v := NewValue(0)
	for i := 1; i <= 200; i++ {
		r := v.Subscribe()
		published := make(chan struct{})
		go func(n int) {
			v.Set(n)
			close(published)
		}(i)

		val, changed := r.AwaitChange(50 * time.Microsecond)
		<-published

		if val == i {
			assert.True(t, changed, "observed publish %d but reported unchanged", i)
		} else {
			assert.False(t, changed)
		}
	}
}

func TestStopWakesWaiter(t *testing.T) {
	v := NewValue("idle")
	r := v.Subscribe()
	stop := make(chan struct{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(stop)
	}()

	utils.Within(t, time.Second, func() {
		val, changed := r.AwaitChangeStop(stop, time.Minute)
		utils.AssertEqual(t, val, "idle")
		assert.False(t, changed)
	})
}

func TestAwaitTimeout(t *testing.T) {
	v := NewValue("unchanged")
	r := v.Subscribe()

	start := time.Now()
	got := r.Await(50 * time.Millisecond)
	elapsed := time.Since(start)

	utils.AssertEqual(t, got, "unchanged")
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}
