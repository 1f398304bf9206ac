// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"celgen-server/export"
	"celgen-server/generator"

	"github.com/labstack/echo/v4"
)

// ExportBatchHandler godoc
// @Summary      Download a batch as CSV or TXT
// @Description  Streams the batch in the flat-file format: CSV with header e164,national,ddd,numero or TXT with one E.164 per line.
// @Tags         batches
// @Produce      text/csv
// @Produce      text/plain
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        batch_id  path   string  true   "Public batch identifier"
// @Param        format    query  string  false  "Output format, csv (default) or txt"
// @Success      200 {string} string         "File streamed successfully"
// @Failure      400 {object} echo.HTTPError "Unknown format requested"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired API key"
// @Failure      404 {object} echo.HTTPError "Batch not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/batches/{batch_id}/export [get]
func ExportBatchHandler(c echo.Context) error {
	logger := c.Logger()

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "txt" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "format query parameter must be csv or txt",
		}
	}

	batch, httpErr := findBatchWithRecords(c)
	if httpErr != nil {
		return httpErr
	}

	records := make([]export.Record, 0, len(batch.Records))
	for _, r := range batch.Records {
		records = append(records, export.Record{
			E164:     r.E164,
			National: r.National,
			DDD:      r.DDD,
			Numero:   r.Numero,
		})
	}

	dddCode := ""
	if batch.DDD != nil {
		dddCode = *batch.DDD
	}
	filename := export.BaseName("celgen", generator.Mode(batch.Mode), dddCode, batch.CreatedAt) + "." + format

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	if format == "csv" {
		c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	} else {
		c.Response().Header().Set(echo.HeaderContentType, "text/plain; charset=utf-8")
	}
	c.Response().WriteHeader(http.StatusOK)

	var err error
	if format == "csv" {
		err = export.WriteCSVTo(c.Response(), records)
	} else {
		err = export.WriteTXTTo(c.Response(), records)
	}
	if err != nil {
		logger.Error("Failed to stream batch export:", err)
		return err
	}

	if err := LogExportEventHandler(batch.BID.String(), format); err != nil {
		logger.Error("Failed to log export event:", err)
	}
	return nil
}
