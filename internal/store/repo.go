package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	RunID  string    // only events recorded for this run
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RunID        string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage over a group of events.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// Run statuses.
const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// RunStart describes a generation run as it begins.
type RunStart struct {
	UseCase    string
	Model      string
	Labels     []string
	SampleSize int
	BatchSize  int
	OutputPath string
}

// RunFinish describes how a generation run ended.
type RunFinish struct {
	Status       string
	Records      int
	ErrorMessage string
}

// Run is a stored generation run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
	Status     string
	RunStart
	Records      int
	ErrorMessage string
}

// RunRepo records generation runs.
type RunRepo interface {
	// StartRun inserts a running row and returns its ID.
	StartRun(ctx context.Context, start RunStart) (string, error)

	// FinishRun marks a run as finished.
	FinishRun(ctx context.Context, id string, finish RunFinish) error

	// ListRuns returns runs newest first. Zero limit means all.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// GetRun returns a run by ID, or nil if it does not exist.
	GetRun(ctx context.Context, id string) (*Run, error)
}
