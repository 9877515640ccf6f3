package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"nutritrack/internal/core/domain/period"
)

var ErrBackendUnavailable = errors.New("nutrition backend is unavailable")

// Summary is the statistics payload of the nutrition backend, passed through verbatim.
type Summary json.RawMessage

func (s Summary) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

type SummaryRequest struct {
	Range       period.Range
	Granularity period.Granularity
}

type SummaryClient interface {
	Summary(ctx context.Context, req SummaryRequest) (Summary, error)
}

type FakeSummaryClient struct {
	Result   Summary
	Error    error
	Requests []SummaryRequest
	lock     sync.Mutex
}

func NewFakeSummaryClient(result string) *FakeSummaryClient {
	return &FakeSummaryClient{Result: Summary(result)}
}

func (c *FakeSummaryClient) Summary(ctx context.Context, req SummaryRequest) (Summary, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Requests = append(c.Requests, req)
	if c.Error != nil {
		return nil, c.Error
	}
	return c.Result, nil
}
