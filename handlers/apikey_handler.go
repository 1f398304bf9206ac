// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"celgen-server/crypto"
	"celgen-server/db"
	"celgen-server/middlewares"
	"celgen-server/models"

	"github.com/labstack/echo/v4"
)

// CreateAPIKeyHandler godoc
// @Summary      Create an API key
// @Description  Creates a new API key. The full key is returned only once.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        createAPIKeyRequest  body  CreateAPIKeyRequest  true  "API key creation payload"
// @Success      201 {object} CreateAPIKeyResponse "API key created successfully"
// @Failure      400 {object} echo.HTTPError       "Bad request, missing name"
// @Failure      401 {object} echo.HTTPError       "Unauthorized, invalid or expired API key"
// @Failure      409 {object} echo.HTTPError       "Key name already in use"
// @Failure      500 {object} echo.HTTPError       "Internal server error"
// @Router       /v1/auth/api-keys [post]
func CreateAPIKeyHandler(c echo.Context) error {
	logger := c.Logger()

	var req CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create API key request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if req.Name == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "name field is required",
		}
	}

	var existing models.APIKey
	if err := db.Conn.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: fmt.Sprintf("An API key named %q already exists", req.Name),
		}
	}

	apiKey, fullKey, err := NewAPIKey(req.Name, req.Description)
	if err != nil {
		logger.Error("Failed to create API key:", err)
		return echo.ErrInternalServerError
	}
	if err := db.Conn.Create(apiKey).Error; err != nil {
		logger.Error("Failed to persist API key:", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusCreated, CreateAPIKeyResponse{
		KeyID:  apiKey.KeyID,
		APIKey: fullKey,
		Name:   apiKey.Name,
		Message: "API key created successfully. Store it securely, it will not be shown again.",
	})
}

// GetAllAPIKeyHandler godoc
// @Summary      List API keys
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Success      200 {array}  APIKeyResponse "API keys retrieved successfully"
// @Failure      401 {object} echo.HTTPError "Unauthorized, invalid or expired API key"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/auth/api-keys [get]
func GetAllAPIKeyHandler(c echo.Context) error {
	logger := c.Logger()

	var apiKeys []models.APIKey
	if err := db.Conn.Order("created_at DESC").Find(&apiKeys).Error; err != nil {
		logger.Error("Failed to fetch API keys:", err)
		return echo.ErrInternalServerError
	}

	responses := make([]APIKeyResponse, 0, len(apiKeys))
	for _, k := range apiKeys {
		resp := APIKeyResponse{
			KeyID:       k.KeyID,
			Name:        k.Name,
			Description: k.Description,
			CreatedAt:   k.CreatedAt.Format(time.RFC3339),
		}
		if k.LastUsedAt != nil {
			lastUsed := k.LastUsedAt.Format(time.RFC3339)
			resp.LastUsedAt = &lastUsed
		}
		if k.ExpiresAt != nil {
			expires := k.ExpiresAt.Format(time.RFC3339)
			resp.ExpiresAt = &expires
		}
		responses = append(responses, resp)
	}
	return c.JSON(http.StatusOK, responses)
}

// DeleteAPIKeyHandler godoc
// @Summary      Delete an API key
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key for authentication."  default(Bearer <your_key_here>)
// @Param        key_id  path  string  true  "Lookup identifier of the key"
// @Success      200 {object} GenericResponse "API key deleted successfully"
// @Failure      401 {object} echo.HTTPError  "Unauthorized, invalid or expired API key"
// @Failure      404 {object} echo.HTTPError  "API key not found"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/auth/api-keys/{key_id} [delete]
func DeleteAPIKeyHandler(c echo.Context) error {
	logger := c.Logger()
	keyID := c.Param("key_id")

	apiKey := models.APIKey{}
	if err := db.Conn.Where("key_id = ?", keyID).First(&apiKey).Error; err != nil {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("API key %s not found", keyID),
		}
	}
	if err := db.Conn.Delete(&apiKey).Error; err != nil {
		logger.Error("Failed to delete API key:", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, GenericResponse{
		Message: "API key deleted successfully",
	})
}

// NewAPIKey builds an APIKey model plus its full plaintext key. The
// KeyID is the leading prefix of the full key used for lookups; only
// the argon2id hash of the full key is stored.
func NewAPIKey(name string, description *string) (*models.APIKey, string, error) {
	fullKey, err := crypto.GenerateRandomString("ck_", 24, "hex")
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate key material: %w", err)
	}

	hashedKey, err := crypto.NewCrypto().HashKey(fullKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash key: %w", err)
	}

	apiKey := &models.APIKey{
		KeyID:       fullKey[:middlewares.APIKeyIDLength],
		HashedKey:   hashedKey,
		Name:        name,
		Description: description,
	}
	return apiKey, fullKey, nil
}
