// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"celgen-server/commons/ddd"

	"github.com/labstack/echo/v4"
)

// GetAllDDDsHandler godoc
// @Summary      List all valid DDDs
// @Description  Returns the full ANATEL registry of two-digit area codes, optionally filtered by state.
// @Tags         ddds
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true   "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        state          query   string  false  "Two-letter federative unit filter, e.g. SP"
// @Success      200 {array}  DDDResponse    "Registry retrieved successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired API key"
// @Router       /v1/ddds [get]
func GetAllDDDsHandler(c echo.Context) error {
	entries := ddd.All()
	if state := c.QueryParam("state"); state != "" {
		entries = ddd.ByState(state)
	}

	responses := make([]DDDResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, DDDResponse{
			Code:   e.Code,
			State:  e.State,
			Region: e.Region,
		})
	}
	return c.JSON(http.StatusOK, responses)
}

// GetDDDHandler godoc
// @Summary      Look up one DDD
// @Tags         ddds
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        code  path  string  true  "Two-digit area code"
// @Success      200 {object} DDDResponse    "DDD retrieved successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired API key"
// @Failure      404 {object} echo.HTTPError "Code is not an assigned DDD"
// @Router       /v1/ddds/{code} [get]
func GetDDDHandler(c echo.Context) error {
	code := c.Param("code")

	entry, ok := ddd.Lookup(code)
	if !ok {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("%q is not an assigned Brazilian area code", code),
		}
	}
	return c.JSON(http.StatusOK, DDDResponse{
		Code:   entry.Code,
		State:  entry.State,
		Region: entry.Region,
	})
}
