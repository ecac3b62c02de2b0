package menuscraper

import (
	"context"
	"fmt"
	"time"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const submitTimeout = time.Second * 5

type SubmissionResult struct {
	Success bool
	Cause   string
}

func failure(cause string) SubmissionResult {
	return SubmissionResult{Cause: cause}
}

type Submitter struct {
	http       *resty.Client
	backendUrl string
}

func NewSubmitter(backendUrl string) Submitter {
	client := resty.New()
	client.SetBaseURL(backendUrl)
	client.SetTimeout(submitTimeout)

	telemetry.InstrumentResty(client, "services/menuscraper/submit")

	return Submitter{
		http:       client,
		backendUrl: backendUrl,
	}
}

// wire shape of the backend acknowledgment
type submitAck struct {
	Status string `json:"status"`
	Cause  string `json:"cause"`
}

// Submit delivers the batch to the backend's /add endpoint. It never
// retries, the scheduler invoking the job owns any retry policy.
func (s Submitter) Submit(ctx context.Context, batch menus.MenuBatch) SubmissionResult {
	ctx, span := tracer.Start(ctx, "Submit")
	defer span.End()

	var ack submitAck
	res, err := s.http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(batch).
		SetResult(&ack).
		Post("/add")
	if err != nil {
		span.RecordError(err)
		return failure(err.Error())
	}
	if !res.IsSuccess() {
		return failure(fmt.Sprintf("HTTP %d", res.StatusCode()))
	}
	if ack.Status != "success" {
		return failure(ack.Cause)
	}
	return SubmissionResult{Success: true}
}
