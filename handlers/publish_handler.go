// SPX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"celgen-server/broker"
	"celgen-server/models"

	"github.com/labstack/echo/v4"
)

// PublishBatchHandler godoc
// @Summary      Publish a batch to the AMQP exchange
// @Description  Publishes the batch's E.164 numbers to the configured AMQP exchange for downstream QA consumers.
// @Tags         batches
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        batch_id  path  string  true  "Public batch identifier"
// @Success      200 {object} GenericResponse "Batch published successfully"
// @Failure      401 {object} echo.HTTPError  "Unauthorized, invalid or expired API key"
// @Failure      404 {object} echo.HTTPError  "Batch not found"
// @Failure      503 {object} echo.HTTPError  "No AMQP broker configured"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/batches/{batch_id}/publish [post]
func PublishBatchHandler(c echo.Context) error {
	logger := c.Logger()

	if !broker.Enabled() {
		return &echo.HTTPError{
			Code:    http.StatusServiceUnavailable,
			Message: "No AMQP broker configured, set AMQP_URL to enable publishing",
		}
	}

	batch, httpErr := findBatchWithRecords(c)
	if httpErr != nil {
		return httpErr
	}
	batchID := batch.BID.String()

	client, err := broker.NewClient(broker.Config{})
	if err != nil {
		logger.Error("Failed to initialize AMQP publisher:", err)
		description := err.Error()
		if logErr := LogPublishEventHandler(batchID, models.Failed, &description); logErr != nil {
			logger.Error("Failed to log publish event:", logErr)
		}
		return echo.ErrInternalServerError
	}
	defer client.Close()

	numbers := make([]string, 0, len(batch.Records))
	for _, r := range batch.Records {
		numbers = append(numbers, r.E164)
	}

	msg := broker.BatchMessage{
		BatchID:   batchID,
		Mode:      batch.Mode,
		DDD:       batch.DDD,
		Count:     batch.Count,
		Numbers:   numbers,
		CreatedAt: batch.CreatedAt,
	}
	if err := client.PublishBatch(msg); err != nil {
		logger.Error("Failed to publish batch:", err)
		description := err.Error()
		if logErr := LogPublishEventHandler(batchID, models.Failed, &description); logErr != nil {
			logger.Error("Failed to log publish event:", logErr)
		}
		return echo.ErrInternalServerError
	}

	if err := LogPublishEventHandler(batchID, models.Published, nil); err != nil {
		logger.Error("Failed to log publish event:", err)
	}
	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Batch published successfully. Check your consumer for delivery.",
	})
}
