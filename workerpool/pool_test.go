package workerpool_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/workerpool"
)

func TestSubmitWithResultReturnsValue(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	handle := workerpool.SubmitWithResult(pool, func() int { return 21 * 2 })
	val, err := handle.Result()
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestSubmitFansOutAcrossWorkers(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const n = 50
	handles := make([]*workerpool.Handle[int], n)
	for i := 0; i < n; i++ {
		i := i
		handles[i] = workerpool.SubmitWithResult(pool, func() int { return i * i })
	}
	for i, h := range handles {
		val, err := h.Result()
		require.NoError(t, err)
		assert.Equal(t, i*i, val)
	}
}

func TestSubmitWithResultSurfacesPanicAsError(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	handle := workerpool.SubmitWithResult(pool, func() int {
		panic("boom")
	})
	_, err := handle.Result()
	assert.Error(t, err)
}

func TestPoolSurvivesAWorkerPanicking(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	panicker := workerpool.SubmitWithResult(pool, func() int { panic("dead") })
	_, err := panicker.Result()
	require.Error(t, err)

	// The pool as a whole must still service new submissions afterward,
	// even though the panicking worker itself is gone for good.
	ok := workerpool.SubmitWithResult(pool, func() int { return 7 })
	val, err := ok.Result()
	require.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestGroupSubmitWaitsForAllTasks(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	var wg workerpool.WaitGroup
	var completed atomic.Int32
	for i := 0; i < 10; i++ {
		workerpool.GroupSubmit(pool, &wg, func() {
			time.Sleep(time.Millisecond)
			completed.Add(1)
		})
	}
	wg.Wait()
	assert.Equal(t, int32(10), completed.Load())
}

func TestSingleWorkerPoolSurfacesErrorInsteadOfDeadlockingAfterPanic(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	// The only worker dies servicing this one; job2 is submitted before
	// job1's panic is observed by the caller (mirrors evaluateStep
	// submitting every job before collecting any result), so it has no
	// worker left to receive it.
	job1 := workerpool.SubmitWithResult(pool, func() int { panic("boom") })
	job2 := workerpool.SubmitWithResult(pool, func() int { return 42 })

	done := make(chan struct{})
	var err1, err2 error
	go func() {
		_, err1 = job1.Result()
		_, err2 = job2.Result()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Result() deadlocked instead of surfacing an error for the unreceived job")
	}

	assert.Error(t, err1)
	assert.Error(t, err2)
}

func TestCloseMarksPoolDeadAndJoinsWorkers(t *testing.T) {
	pool := workerpool.New(3)
	assert.True(t, pool.IsAlive())
	pool.Close()
	assert.False(t, pool.IsAlive())
}
