package api

import "time"

// JobKind identifies which numtheory computation a job runs.
type JobKind string

const (
	JobCollatz     JobKind = "collatz"
	JobLucasLehmer JobKind = "lucas-lehmer"
	JobSelfCheck   JobKind = "selfcheck"
)

// JobState is the lifecycle state of a submitted job.
type JobState string

const (
	JobPending JobState = "pending"
	JobRunning JobState = "running"
	JobDone    JobState = "done"
	JobFailed  JobState = "failed"
)

// JobCreateRequest is the body of a job submission request. Seed is
// used by collatz jobs, as a decimal string so it round-trips through
// bignum.SetString without overflowing JSON's float64 number type; P is
// used by lucas-lehmer jobs, as a plain JSON number.
type JobCreateRequest struct {
	Seed   string `json:"seed,omitempty"`
	P      uint32 `json:"p,omitempty"`
	Rounds int    `json:"rounds,omitempty"`
}

// JobCreateResponse is returned immediately after a job is accepted.
type JobCreateResponse struct {
	JobID     string    `json:"jobId"`
	Kind      JobKind   `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobStatusResponse reports a job's current state and, once finished,
// its result.
type JobStatusResponse struct {
	JobID     string    `json:"jobId"`
	Kind      JobKind   `json:"kind"`
	State     JobState  `json:"state"`
	CreatedAt time.Time `json:"createdAt"`

	// Collatz results.
	Steps uint64 `json:"steps,omitempty"`
	Max   string `json:"max,omitempty"`

	// Lucas-Lehmer results.
	IsPrime *bool `json:"isPrime,omitempty"`

	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string    `json:"status"`
	Jobs   int       `json:"jobs"`
	Time   time.Time `json:"time"`
}
