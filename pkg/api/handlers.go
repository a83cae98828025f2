package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/models"
)

type createReportRequest struct {
	GoogleAccessToken string `json:"googleAccessToken"`
}

type createReportResponse struct {
	TaskID int `json:"task_id"`
}

// handleCreateReport allocates the report and task rows and publishes one
// message per step. Completion is asynchronous; the client polls the task.
func (s *Server) handleCreateReport(c *gin.Context) {
	s.createReport(c, false)
}

// handleCreateReportV2 routes to the -v2 topics with vector saves skipped.
// Idea generation is pre-completed unless the v2 idea flow is enabled.
func (s *Server) handleCreateReportV2(c *gin.Context) {
	s.createReport(c, true)
}

func (s *Server) createReport(c *gin.Context, v2 bool) {
	videoID, err := strconv.Atoi(c.Query("video_id"))
	if err != nil || videoID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id query parameter is required"})
		return
	}

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()

	if _, err := s.videos.Get(ctx, videoID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	report, err := s.reports.Create(ctx, videoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create report"})
		return
	}

	task, err := s.tasks.Create(ctx, report.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	steps := map[models.Step]string{
		models.StepOverview: s.kafka.OverviewTopic,
		models.StepAnalysis: s.kafka.AnalysisTopic,
		models.StepIdea:     s.kafka.IdeaTopic,
	}

	runIdea := true
	if v2 && !s.pipeline.V2RunIdea {
		runIdea = false
		if err := s.tasks.MarkIdeaCompleted(ctx, task.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize task"})
			return
		}
	}

	now := time.Now().UTC()
	for step, topic := range steps {
		if step == models.StepIdea && !runIdea {
			continue
		}
		if v2 {
			topic = config.V2Topic(topic)
		}

		msg := models.StepMessage{
			TaskID:            task.ID,
			ReportID:          report.ID,
			Step:              step,
			GoogleAccessToken: req.GoogleAccessToken,
			SkipVectorSave:    v2,
			Timestamp:         now,
		}
		if err := s.producer.Publish(ctx, topic, msg); err != nil {
			// Publish retries are exhausted at this point; surface the
			// failure so the caller can retry the whole request.
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to enqueue " + string(step) + " step"})
			return
		}
	}

	c.JSON(http.StatusCreated, createReportResponse{TaskID: task.ID})
}

// handleGetTask returns the three step axes the client polls.
func (s *Server) handleGetTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := s.tasks.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id":         task.ID,
		"report_id":       task.ReportID,
		"overview_status": task.OverviewStatus,
		"analysis_status": task.AnalysisStatus,
		"idea_status":     task.IdeaStatus,
	})
}

// handleHealth reports process and database health.
func (s *Server) handleHealth(c *gin.Context) {
	status, err := database.Health(c.Request.Context(), s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": status})
}
