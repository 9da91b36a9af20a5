package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/lookbusy1344/bignum/bignum"
	"github.com/lookbusy1344/bignum/numtheory"
)

// ErrJobNotFound is returned when a job ID has no matching job.
var ErrJobNotFound = errors.New("job not found")

// Job is a submitted numtheory computation, tracked from submission
// through completion.
type Job struct {
	ID        string
	Kind      JobKind
	State     JobState
	CreatedAt time.Time

	Steps   uint64
	Max     string
	IsPrime bool
	Err     error

	mu sync.RWMutex
}

func (j *Job) snapshot() JobStatusResponse {
	j.mu.RLock()
	defer j.mu.RUnlock()

	resp := JobStatusResponse{
		JobID:     j.ID,
		Kind:      j.Kind,
		State:     j.State,
		CreatedAt: j.CreatedAt,
	}
	if j.State == JobDone {
		switch j.Kind {
		case JobCollatz:
			resp.Steps = j.Steps
			resp.Max = j.Max
		case JobLucasLehmer:
			isPrime := j.IsPrime
			resp.IsPrime = &isPrime
		}
	}
	if j.Err != nil {
		resp.Error = j.Err.Error()
	}
	return resp
}

func (j *Job) setRunning() {
	j.mu.Lock()
	j.State = JobRunning
	j.mu.Unlock()
}

func (j *Job) setFailed(err error) {
	j.mu.Lock()
	j.State = JobFailed
	j.Err = err
	j.mu.Unlock()
}

func (j *Job) setCollatzResult(steps uint64, max string) {
	j.mu.Lock()
	j.State = JobDone
	j.Steps = steps
	j.Max = max
	j.mu.Unlock()
}

func (j *Job) setLucasLehmerResult(isPrime bool) {
	j.mu.Lock()
	j.State = JobDone
	j.IsPrime = isPrime
	j.mu.Unlock()
}

// JobManager runs numtheory computations in background goroutines and
// broadcasts each job's final result: a mutex-guarded map keyed by a
// random hex ID, with a broadcaster wired in for result events. No
// progress events are sent while a job runs.
type JobManager struct {
	jobs        map[string]*Job
	broadcaster *Broadcaster
	sem         chan struct{} // nil means unlimited concurrency
	mu          sync.RWMutex
}

// NewJobManager creates a job manager that reports results through
// broadcaster, with no limit on how many jobs run concurrently.
func NewJobManager(broadcaster *Broadcaster) *JobManager {
	return NewJobManagerWithConcurrencyLimit(broadcaster, 0)
}

// NewJobManagerWithConcurrencyLimit creates a job manager that runs at
// most maxConcurrent jobs at once; a job submitted past the limit
// queues until a slot frees up. maxConcurrent <= 0 means unlimited,
// matching config.Config.Server.MaxConcurrentJobs's zero value.
func NewJobManagerWithConcurrencyLimit(broadcaster *Broadcaster, maxConcurrent int) *JobManager {
	jm := &JobManager{
		jobs:        make(map[string]*Job),
		broadcaster: broadcaster,
	}
	if maxConcurrent > 0 {
		jm.sem = make(chan struct{}, maxConcurrent)
	}
	return jm
}

func (jm *JobManager) acquire() {
	if jm.sem != nil {
		jm.sem <- struct{}{}
	}
}

func (jm *JobManager) release() {
	if jm.sem != nil {
		<-jm.sem
	}
}

// SubmitCollatz starts a Collatz trajectory computation for seed
// (a decimal string) and returns its job immediately; the computation
// runs asynchronously.
func (jm *JobManager) SubmitCollatz(seedDecimal string) (*Job, error) {
	seed := bignum.New()
	if err := setDecimalString(seed, seedDecimal); err != nil {
		return nil, err
	}

	job, err := jm.newJob(JobCollatz)
	if err != nil {
		return nil, err
	}

	go func() {
		jm.acquire()
		defer jm.release()

		job.setRunning()
		steps, max := numtheory.CollatzSteps(seed)
		job.setCollatzResult(steps, max.String())
		jm.broadcaster.BroadcastResult(job.ID, map[string]interface{}{
			"steps": steps,
			"max":   max.String(),
		})
	}()

	return job, nil
}

// SubmitLucasLehmer starts a Lucas-Lehmer primality test for 2^p - 1
// and returns its job immediately.
func (jm *JobManager) SubmitLucasLehmer(p uint32) (*Job, error) {
	job, err := jm.newJob(JobLucasLehmer)
	if err != nil {
		return nil, err
	}

	go func() {
		jm.acquire()
		defer jm.release()

		job.setRunning()
		isPrime := numtheory.LucasLehmer(p)
		job.setLucasLehmerResult(isPrime)
		jm.broadcaster.BroadcastResult(job.ID, map[string]interface{}{
			"isPrime": isPrime,
		})
	}()

	return job, nil
}

func (jm *JobManager) newJob(kind JobKind) (*Job, error) {
	id, err := generateJobID()
	if err != nil {
		return nil, err
	}

	job := &Job{
		ID:        id,
		Kind:      kind,
		State:     JobPending,
		CreatedAt: time.Now(),
	}

	jm.mu.Lock()
	jm.jobs[id] = job
	jm.mu.Unlock()

	return job, nil
}

// Get returns the job with the given ID, or ErrJobNotFound.
func (jm *JobManager) Get(id string) (*Job, error) {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	job, ok := jm.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// List returns every job, most recently created first.
func (jm *JobManager) List() []*Job {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	result := make([]*Job, 0, len(jm.jobs))
	for _, job := range jm.jobs {
		result = append(result, job)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Count returns the number of tracked jobs.
func (jm *JobManager) Count() int {
	jm.mu.RLock()
	defer jm.mu.RUnlock()
	return len(jm.jobs)
}

func generateJobID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// setDecimalString parses a decimal string into dst, rejecting
// anything math/big itself would reject as not-a-valid-unsigned-integer
// before handing it to bignum.SetString, since bignum's own parser
// aborts the process on a malformed string rather than returning an
// error, correct behavior for a library call but wrong for untrusted
// HTTP input.
func setDecimalString(dst *bignum.BigUInt, s string) error {
	if s == "" {
		return fmt.Errorf("seed must not be empty")
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return fmt.Errorf("%q is not a valid non-negative decimal integer", s)
	}
	dst.SetString(s)
	return nil
}
