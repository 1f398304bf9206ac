// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"celgen-server/db"
	"celgen-server/generator"
	"celgen-server/models"

	"github.com/labstack/echo/v4"
	"github.com/nyaruka/phonenumbers"
)

// CreateBatchHandler godoc
// @Summary      Generate a batch of numbers
// @Description  Generates, persists and returns a batch of synthetic Brazilian mobile numbers.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        createBatchRequest  body  CreateBatchRequest  true  "Batch generation request payload"
// @Success      201 {object} CreateBatchResponse "Batch generated successfully"
// @Failure      400 {object} echo.HTTPError      "Bad request, invalid count, mode or DDD"
// @Failure      401 {object} echo.HTTPError      "Unauthorized, invalid or expired API key"
// @Failure      422 {object} echo.HTTPError      "Requested count exceeds the reachable number space"
// @Failure      500 {object} echo.HTTPError      "Internal server error"
// @Router       /v1/batches [post]
func CreateBatchHandler(c echo.Context) error {
	logger := c.Logger()

	var req CreateBatchRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create batch request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	mode := generator.Mode(req.Mode)
	dddCode := ""
	if req.DDD != nil {
		dddCode = *req.DDD
	}
	if mode == generator.ModeFixedDDD && dddCode == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "ddd field is required when mode is FIXED_DDD",
		}
	}

	numbers, err := generator.New().Generate(req.Count, mode, dddCode)
	if err != nil {
		logGenerateFailure(req, err)
		switch {
		case errors.Is(err, generator.ErrInvalidCount):
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "count field must be a positive integer",
			}
		case errors.Is(err, generator.ErrInvalidDDD):
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("ddd %q is not an assigned Brazilian area code", dddCode),
			}
		case errors.Is(err, generator.ErrInvalidMode):
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "mode field must be FIXED_DDD or ALL_DDDS",
			}
		case errors.Is(err, generator.ErrExhaustedSpace):
			return &echo.HTTPError{
				Code:    http.StatusUnprocessableEntity,
				Message: "Requested count exceeds the reachable number space for this mode",
			}
		default:
			logger.Error("Batch generation failed:", err)
			return echo.ErrInternalServerError
		}
	}

	batch := models.Batch{
		Mode:  string(mode),
		Count: len(numbers),
	}
	if mode == generator.ModeFixedDDD {
		batch.DDD = &dddCode
	}
	for _, n := range numbers {
		batch.Records = append(batch.Records, models.PhoneRecord{
			E164:     n.E164(),
			National: n.National(),
			DDD:      n.DDD,
			Numero:   n.Mobile(),
		})
	}

	if err := db.Conn.Create(&batch).Error; err != nil {
		logger.Error("Failed to persist batch:", err)
		return echo.ErrInternalServerError
	}

	batchID := batch.BID.String()
	if err := LogGenerateEventSuccessHandler(&batchID, batch.Mode, batch.DDD, batch.Count); err != nil {
		logger.Error("Failed to log generate event:", err)
	}

	records := make([]PhoneRecordResponse, 0, len(batch.Records))
	for _, r := range batch.Records {
		records = append(records, buildRecordResponse(r))
	}

	return c.JSON(http.StatusCreated, CreateBatchResponse{
		BatchID:   batchID,
		Mode:      batch.Mode,
		DDD:       batch.DDD,
		Count:     batch.Count,
		Records:   records,
		CreatedAt: batch.CreatedAt.Format(time.RFC3339),
		Message:   "Batch generated successfully",
	})
}

// GetAllBatchesHandler godoc
// @Summary      List generated batches
// @Tags         batches
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Success      200 {array}  BatchSummaryResponse "Batches retrieved successfully"
// @Failure      401 {object} echo.HTTPError       "Unauthorized, invalid or expired API key"
// @Failure      500 {object} echo.HTTPError       "Internal server error"
// @Router       /v1/batches [get]
func GetAllBatchesHandler(c echo.Context) error {
	logger := c.Logger()

	var batches []models.Batch
	if err := db.Conn.Order("created_at DESC").Find(&batches).Error; err != nil {
		logger.Error("Failed to fetch batches:", err)
		return echo.ErrInternalServerError
	}

	summaries := make([]BatchSummaryResponse, 0, len(batches))
	for _, b := range batches {
		summaries = append(summaries, BatchSummaryResponse{
			BatchID:   b.BID.String(),
			Mode:      b.Mode,
			DDD:       b.DDD,
			Count:     b.Count,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// GetBatchHandler godoc
// @Summary      Get one batch with its records
// @Tags         batches
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        batch_id  path  string  true  "Public batch identifier"
// @Success      200 {object} CreateBatchResponse "Batch retrieved successfully"
// @Failure      401 {object} echo.HTTPError      "Unauthorized, invalid or expired API key"
// @Failure      404 {object} echo.HTTPError      "Batch not found"
// @Failure      500 {object} echo.HTTPError      "Internal server error"
// @Router       /v1/batches/{batch_id} [get]
func GetBatchHandler(c echo.Context) error {
	batch, httpErr := findBatchWithRecords(c)
	if httpErr != nil {
		return httpErr
	}

	records := make([]PhoneRecordResponse, 0, len(batch.Records))
	for _, r := range batch.Records {
		records = append(records, buildRecordResponse(r))
	}

	return c.JSON(http.StatusOK, CreateBatchResponse{
		BatchID:   batch.BID.String(),
		Mode:      batch.Mode,
		DDD:       batch.DDD,
		Count:     batch.Count,
		Records:   records,
		CreatedAt: batch.CreatedAt.Format(time.RFC3339),
		Message:   "Batch retrieved successfully",
	})
}

// DeleteBatchHandler godoc
// @Summary      Delete a batch
// @Tags         batches
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        batch_id  path  string  true  "Public batch identifier"
// @Success      200 {object} GenericResponse "Batch deleted successfully"
// @Failure      401 {object} echo.HTTPError  "Unauthorized, invalid or expired API key"
// @Failure      404 {object} echo.HTTPError  "Batch not found"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/batches/{batch_id} [delete]
func DeleteBatchHandler(c echo.Context) error {
	logger := c.Logger()

	batch, httpErr := findBatch(c)
	if httpErr != nil {
		return httpErr
	}

	if err := db.Conn.Where("batch_id = ?", batch.ID).Delete(&models.PhoneRecord{}).Error; err != nil {
		logger.Error("Failed to delete batch records:", err)
		return echo.ErrInternalServerError
	}
	if err := db.Conn.Delete(batch).Error; err != nil {
		logger.Error("Failed to delete batch:", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Batch deleted successfully",
	})
}

func findBatch(c echo.Context) (*models.Batch, *echo.HTTPError) {
	batchID := c.Param("batch_id")

	batch := models.Batch{}
	if err := db.Conn.Where("bid = ?", batchID).First(&batch).Error; err != nil {
		return nil, &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Batch %s not found", batchID),
		}
	}
	return &batch, nil
}

func findBatchWithRecords(c echo.Context) (*models.Batch, *echo.HTTPError) {
	batchID := c.Param("batch_id")

	batch := models.Batch{}
	if err := db.Conn.Preload("Records").Where("bid = ?", batchID).First(&batch).Error; err != nil {
		return nil, &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Batch %s not found", batchID),
		}
	}
	return &batch, nil
}

// buildRecordResponse attaches the libphonenumber INTERNATIONAL
// rendering as an independent cross-check of the stored formats.
func buildRecordResponse(r models.PhoneRecord) PhoneRecordResponse {
	resp := PhoneRecordResponse{
		E164:     r.E164,
		National: r.National,
		DDD:      r.DDD,
		Numero:   r.Numero,
	}
	if parsed, err := phonenumbers.Parse(r.E164, "BR"); err == nil {
		resp.International = phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
	}
	return resp
}

func logGenerateFailure(req CreateBatchRequest, genErr error) {
	description := genErr.Error()
	count := req.Count
	_ = LogGenerateEventFailureHandler(nil, req.Mode, req.DDD, &count, &description)
}
