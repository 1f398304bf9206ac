package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"celgen-server/crypto"
	"celgen-server/middlewares"
	"celgen-server/models"
)

func TestCreateBatchRequestStructure(t *testing.T) {
	jsonPayload := `{
		"count": 100,
		"mode": "FIXED_DDD",
		"ddd": "11"
	}`

	var req CreateBatchRequest
	err := json.Unmarshal([]byte(jsonPayload), &req)
	if err != nil {
		t.Fatalf("Failed to unmarshal CreateBatchRequest: %v", err)
	}

	if req.Count != 100 {
		t.Errorf("Expected count 100, got %d", req.Count)
	}
	if req.Mode != "FIXED_DDD" {
		t.Errorf("Expected mode FIXED_DDD, got %s", req.Mode)
	}
	if req.DDD == nil || *req.DDD != "11" {
		t.Errorf("Expected ddd 11, got %v", req.DDD)
	}
}

func TestCreateBatchRequestWithoutDDD(t *testing.T) {
	jsonPayload := `{
		"count": 50,
		"mode": "ALL_DDDS"
	}`

	var req CreateBatchRequest
	err := json.Unmarshal([]byte(jsonPayload), &req)
	if err != nil {
		t.Fatalf("Failed to unmarshal CreateBatchRequest: %v", err)
	}

	if req.Count != 50 {
		t.Errorf("Expected count 50, got %d", req.Count)
	}
	if req.Mode != "ALL_DDDS" {
		t.Errorf("Expected mode ALL_DDDS, got %s", req.Mode)
	}
	if req.DDD != nil {
		t.Errorf("Expected ddd to be nil, got %v", req.DDD)
	}
}

func TestBuildRecordResponse(t *testing.T) {
	record := models.PhoneRecord{
		E164:     "+5511998765432",
		National: "(11) 9 9876-5432",
		DDD:      "11",
		Numero:   "998765432",
	}

	resp := buildRecordResponse(record)

	if resp.E164 != record.E164 {
		t.Errorf("Expected e164 %s, got %s", record.E164, resp.E164)
	}
	if resp.National != record.National {
		t.Errorf("Expected national %s, got %s", record.National, resp.National)
	}
	if resp.Numero != record.Numero {
		t.Errorf("Expected numero %s, got %s", record.Numero, resp.Numero)
	}
	if resp.International == "" {
		t.Error("Expected libphonenumber rendering to be attached")
	}
	if !strings.HasPrefix(resp.International, "+55") {
		t.Errorf("Expected international rendering with +55 prefix, got %s", resp.International)
	}
}

func TestNewAPIKey(t *testing.T) {
	apiKey, fullKey, err := NewAPIKey("ci-pipeline", nil)
	if err != nil {
		t.Fatalf("NewAPIKey failed: %v", err)
	}

	if !strings.HasPrefix(fullKey, "ck_") {
		t.Errorf("Expected ck_ prefix on full key, got %s", fullKey)
	}
	if len(apiKey.KeyID) != middlewares.APIKeyIDLength {
		t.Errorf("Expected key ID length %d, got %d", middlewares.APIKeyIDLength, len(apiKey.KeyID))
	}
	if !strings.HasPrefix(fullKey, apiKey.KeyID) {
		t.Error("Expected key ID to be a prefix of the full key")
	}
	if len(fullKey) <= len(apiKey.KeyID) {
		t.Error("Expected full key to be longer than its lookup ID")
	}

	if err := crypto.NewCrypto().VerifyKey(fullKey, apiKey.HashedKey); err != nil {
		t.Errorf("Expected stored hash to verify the full key: %v", err)
	}
	if err := crypto.NewCrypto().VerifyKey(apiKey.KeyID, apiKey.HashedKey); err == nil {
		t.Error("Expected the bare key ID not to verify")
	}
}
