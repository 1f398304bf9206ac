// SPX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"celgen-server/db"
	"celgen-server/models"

	"github.com/labstack/echo/v4"
)

func CreateEventLogHandler(eventLog models.EventLog) error {
	if err := db.Conn.Create(&eventLog).Error; err != nil {
		return fmt.Errorf("failed to create event log: %w", err)
	}
	return nil
}

func LogEventHandler(
	category *models.EventCategory,
	status *models.EventStatus,
	batchID *string,
	mode *string,
	ddd *string,
	count *int,
	description *string,
) error {
	eventLog := models.EventLog{
		Category:    category,
		Status:      status,
		BatchID:     batchID,
		Mode:        mode,
		DDD:         ddd,
		Count:       count,
		Description: description,
	}
	return CreateEventLogHandler(eventLog)
}

func LogGenerateEventSuccessHandler(batchID *string, mode string, ddd *string, count int) error {
	status := new(models.EventStatus)
	*status = models.Completed
	category := new(models.EventCategory)
	*category = models.Generate
	return LogEventHandler(category, status, batchID, &mode, ddd, &count, nil)
}

func LogGenerateEventFailureHandler(batchID *string, mode string, ddd *string, count *int, description *string) error {
	status := new(models.EventStatus)
	*status = models.Failed
	category := new(models.EventCategory)
	*category = models.Generate
	return LogEventHandler(category, status, batchID, &mode, ddd, count, description)
}

func LogExportEventHandler(batchID string, format string) error {
	status := new(models.EventStatus)
	*status = models.Completed
	category := new(models.EventCategory)
	*category = models.Export
	description := fmt.Sprintf("Batch exported as %s", format)
	return LogEventHandler(category, status, &batchID, nil, nil, nil, &description)
}

func LogPublishEventHandler(batchID string, eventStatus models.EventStatus, description *string) error {
	status := new(models.EventStatus)
	*status = eventStatus
	category := new(models.EventCategory)
	*category = models.Publish
	return LogEventHandler(category, status, &batchID, nil, nil, nil, description)
}

// GetEventLogsHandler godoc
// @Summary      List recent audit events
// @Tags         event-logs
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Success      200 {array}  EventLogResponse "Event logs retrieved successfully"
// @Failure      401 {object} echo.HTTPError   "Unauthorized, invalid or expired API key"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /v1/event-logs [get]
func GetEventLogsHandler(c echo.Context) error {
	logger := c.Logger()

	var eventLogs []models.EventLog
	if err := db.Conn.Order("created_at DESC").Limit(100).Find(&eventLogs).Error; err != nil {
		logger.Error("Failed to fetch event logs:", err)
		return echo.ErrInternalServerError
	}

	responses := make([]EventLogResponse, 0, len(eventLogs))
	for _, e := range eventLogs {
		resp := EventLogResponse{
			EID:         e.EID.String(),
			BatchID:     e.BatchID,
			Mode:        e.Mode,
			DDD:         e.DDD,
			Count:       e.Count,
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.Category != nil {
			category := string(*e.Category)
			resp.Category = &category
		}
		if e.Status != nil {
			status := string(*e.Status)
			resp.Status = &status
		}
		responses = append(responses, resp)
	}
	return c.JSON(http.StatusOK, responses)
}
