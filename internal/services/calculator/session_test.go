package calculator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	st := NewSessionStore(time.Hour)

	sess := st.Create()
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, StateIdle, sess.Snapshot().State)

	res, err := st.Apply(sess.ID, Input{Tokens: []Token{"6", Multiply, "7", Solve}})
	require.NoError(t, err)
	assert.Equal(t, "42", res.Snapshot.Display)

	res, err = st.Apply(sess.ID, Input{Keys: []KeyEvent{{Key: "Escape"}}})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, res.Snapshot.State)
	assert.Empty(t, res.Solves)

	require.NoError(t, st.Delete(sess.ID))
	_, err = st.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, st.Delete(sess.ID), ErrSessionNotFound)
}

func TestSessionStore_Independent(t *testing.T) {
	st := NewSessionStore(time.Hour)
	a, b := st.Create(), st.Create()

	_, err := st.Apply(a.ID, Input{Tokens: []Token{"1", Add}})
	require.NoError(t, err)
	_, err = st.Apply(b.ID, Input{Tokens: []Token{"9"}})
	require.NoError(t, err)

	assert.Equal(t, "1+", a.Snapshot().Display)
	assert.Equal(t, "9", b.Snapshot().Display)
	assert.Equal(t, 2, st.Len())
}

func TestSessionStore_ConcurrentApply(t *testing.T) {
	st := NewSessionStore(time.Hour)
	sess := st.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = st.Apply(sess.ID, Input{Tokens: []Token{"1"}})
		}()
	}
	wg.Wait()

	snap := sess.Snapshot()
	assert.Len(t, snap.Display, 50)
	assert.Equal(t, snap.Display, snap.Expression)
}

func TestSessionStore_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewSessionStore(10 * time.Minute)
	st.now = func() time.Time { return now }

	stale := st.Create()
	now = now.Add(8 * time.Minute)
	fresh := st.Create()
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, st.Sweep())
	_, err := st.Get(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSessionStore_RunStopsOnCancel(t *testing.T) {
	st := NewSessionStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		st.Run(ctx, time.Millisecond, nil)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSessionStore_RunReportsLiveSessions(t *testing.T) {
	st := NewSessionStore(time.Minute)
	st.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	st.Create()
	st.Create()
	st.now = func() time.Time { return time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC) }
	st.Create()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	live := make(chan int, 1)
	go st.Run(ctx, time.Millisecond, func(n int) {
		select {
		case live <- n:
		default:
		}
	})

	select {
	case n := <-live:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("Run never reported after a sweep")
	}
}

func TestApply_SolvesCountedIndividually(t *testing.T) {
	res, err := Apply(Snapshot{}, Input{
		Tokens: []Token{"5", Divide, "0", Solve, "1", Add, "1", Solve},
		Keys:   []KeyEvent{{Key: "Enter", FromTextInput: true}, {Key: "Enter"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []State{StateErrored, StateSolved, StateSolved}, res.Solves)
	assert.Equal(t, "2", res.Snapshot.Display)
}

func TestApply_Detached(t *testing.T) {
	res, err := Apply(Snapshot{Display: "2+", Expression: "2+"}, Input{Tokens: []Token{"2", Solve}})
	require.NoError(t, err)
	assert.Equal(t, "4", res.Snapshot.Display)
	assert.Equal(t, []State{StateSolved}, res.Solves)

	_, err = Apply(Snapshot{Display: ErrorMarker, Expression: "1"}, Input{})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
