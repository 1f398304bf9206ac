// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"net/http"
	"strings"
	"time"

	"celgen-server/crypto"
	"celgen-server/db"
	"celgen-server/models"

	"github.com/labstack/echo/v4"
)

// APIKeyIDLength is the number of leading characters of a full key that
// form its lookup ID ("ck_" plus 32 hex chars).
const APIKeyIDLength = 35

const apiKeyPrefix = "ck_"

func VerifyAPIKeyMiddleware() func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer API key is required",
				}
			}

			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKeyValue := after

				if apiKeyValue != "" && strings.HasPrefix(apiKeyValue, apiKeyPrefix) {
					if len(apiKeyValue) >= APIKeyIDLength {
						keyID := apiKeyValue[:APIKeyIDLength]

						apiKey := models.APIKey{}
						err := db.Conn.Where("key_id = ?", keyID).First(&apiKey).Error
						if err == nil {
							if apiKey.ExpiresAt != nil && apiKey.ExpiresAt.Before(time.Now()) {
								logger.Error("API key expired.")
							} else {
								cryptoInstance := crypto.NewCrypto()
								if err := cryptoInstance.VerifyKey(apiKeyValue, apiKey.HashedKey); err == nil {
									now := time.Now()
									apiKey.LastUsedAt = &now
									if err := db.Conn.Save(&apiKey).Error; err != nil {
										logger.Error("Failed to update API key LastUsedAt: ", err)
									}

									c.Set("api_key", apiKey)
									return next(c)
								}
							}
						}
					}
				}
			}

			logger.Error("Authentication failed.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired API key",
			}
		}
	}
}
