package report

import (
	"context"
	"log/slog"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// resolve loads the report and video a message refers to. A missing row
// means the message is stale: it is logged and dropped without flipping
// the task axis.
func (h *Handlers) resolve(ctx context.Context, msg models.StepMessage) (*ent.Report, *ent.Video, bool) {
	rpt, err := h.reports.Get(ctx, msg.ReportID)
	if err != nil {
		slog.Warn("Dropping message for missing report",
			"report_id", msg.ReportID, "step", msg.Step, "error", err)
		return nil, nil, false
	}

	video, err := h.videos.Get(ctx, rpt.VideoID)
	if err != nil {
		slog.Warn("Dropping message for missing video",
			"report_id", msg.ReportID, "video_id", rpt.VideoID, "step", msg.Step, "error", err)
		return nil, nil, false
	}
	return rpt, video, true
}

// finalize writes the terminal axis status for a step. A failed status
// write is logged; the message is still committed upstream.
func (h *Handlers) finalize(ctx context.Context, msg models.StepMessage, runErr error) error {
	if err := h.tasks.MarkStep(ctx, msg.TaskID, msg.Step, runErr == nil); err != nil {
		slog.Error("Failed to record step outcome",
			"task_id", msg.TaskID, "step", msg.Step, "error", err)
	}
	return runErr
}

// completeJSONRetry invokes the LLM expecting JSON, retrying parse
// failures up to the configured budget. Exhaustion leaves out untouched
// and returns the last error; callers decide whether that is terminal.
func (h *Handlers) completeJSONRetry(ctx context.Context, system, user string, out any) error {
	budget := h.cfg.JSONParseRetries
	if budget < 1 {
		budget = 1
	}

	var lastErr error
	for attempt := 1; attempt <= budget; attempt++ {
		if _, err := h.llm.CompleteJSON(ctx, system, user, out); err != nil {
			lastErr = err
			slog.Warn("LLM JSON response unparsable, retrying",
				"attempt", attempt, "max_attempts", budget, "error", err)
			continue
		}
		return nil
	}
	return lastErr
}
