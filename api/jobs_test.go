package api

import (
	"sync"
	"testing"
	"time"
)

func waitForJob(t *testing.T, jm *JobManager, id string) JobStatusResponse {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := jm.Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		status := job.snapshot()
		if status.State == JobDone || status.State == JobFailed {
			return status
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %q did not finish in time", id)
	return JobStatusResponse{}
}

func TestSubmitCollatzRunsToCompletion(t *testing.T) {
	jm := NewJobManager(NewBroadcaster())

	job, err := jm.SubmitCollatz("27")
	if err != nil {
		t.Fatalf("SubmitCollatz: %v", err)
	}

	status := waitForJob(t, jm, job.ID)
	if status.Steps != 70 {
		t.Errorf("Steps = %d, want 70", status.Steps)
	}
	if status.Max == "" {
		t.Error("expected non-empty Max")
	}
}

func TestSubmitCollatzRejectsGarbageSeed(t *testing.T) {
	jm := NewJobManager(NewBroadcaster())

	if _, err := jm.SubmitCollatz("not-a-number"); err == nil {
		t.Fatal("expected an error for a non-numeric seed")
	}
	if _, err := jm.SubmitCollatz("-5"); err == nil {
		t.Fatal("expected an error for a negative seed")
	}
}

func TestSubmitLucasLehmerRunsToCompletion(t *testing.T) {
	jm := NewJobManager(NewBroadcaster())

	job, err := jm.SubmitLucasLehmer(17)
	if err != nil {
		t.Fatalf("SubmitLucasLehmer: %v", err)
	}

	status := waitForJob(t, jm, job.ID)
	if status.IsPrime == nil || !*status.IsPrime {
		t.Errorf("IsPrime = %v, want true for p=17", status.IsPrime)
	}
}

func TestConcurrencyLimitStillRunsEveryJobToCompletion(t *testing.T) {
	jm := NewJobManagerWithConcurrencyLimit(NewBroadcaster(), 1)

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		job, err := jm.SubmitLucasLehmer(7)
		if err != nil {
			t.Fatalf("SubmitLucasLehmer: %v", err)
		}
		ids = append(ids, job.ID)
	}

	for _, id := range ids {
		status := waitForJob(t, jm, id)
		if status.IsPrime == nil || !*status.IsPrime {
			t.Errorf("job %s: IsPrime = %v, want true for p=7", id, status.IsPrime)
		}
	}
}

func TestConcurrencyLimitSerializesAccessToSharedSlot(t *testing.T) {
	jm := NewJobManagerWithConcurrencyLimit(NewBroadcaster(), 1)

	var mu sync.Mutex
	var active, maxActive int

	track := func() {
		jm.acquire()
		defer jm.release()
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			track()
		}()
	}
	wg.Wait()

	if maxActive != 1 {
		t.Errorf("maxActive = %d, want 1 (concurrency limit not enforced)", maxActive)
	}
}

func TestGetUnknownJobID(t *testing.T) {
	jm := NewJobManager(NewBroadcaster())
	if _, err := jm.Get("nope"); err != ErrJobNotFound {
		t.Errorf("Get(nope) error = %v, want ErrJobNotFound", err)
	}
}

func TestListReturnsAllJobs(t *testing.T) {
	jm := NewJobManager(NewBroadcaster())
	if _, err := jm.SubmitCollatz("27"); err != nil {
		t.Fatalf("SubmitCollatz: %v", err)
	}
	if _, err := jm.SubmitLucasLehmer(5); err != nil {
		t.Fatalf("SubmitLucasLehmer: %v", err)
	}

	if got := len(jm.List()); got != 2 {
		t.Errorf("List() length = %d, want 2", got)
	}
	if got := jm.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}
