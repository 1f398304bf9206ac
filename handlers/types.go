// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model CreateBatchRequest
type CreateBatchRequest struct {
	// How many numbers to generate
	// required: true
	Count int `json:"count" example:"100"`
	// Generation mode, FIXED_DDD or ALL_DDDS
	// required: true
	Mode string `json:"mode" example:"ALL_DDDS"`
	// Two-digit area code, required iff mode is FIXED_DDD
	DDD *string `json:"ddd" example:"11"`
}

// swagger:model PhoneRecordResponse
type PhoneRecordResponse struct {
	// E.164 form, +55 + DDD + 9 + subscriber digits
	E164 string `json:"e164" example:"+5511998765432"`
	// Brazilian national display form
	National string `json:"national" example:"(11) 9 9876-5432"`
	// Two-digit area code
	DDD string `json:"ddd" example:"11"`
	// Full 9-digit mobile portion, always starting with 9
	Numero string `json:"numero" example:"998765432"`
	// libphonenumber INTERNATIONAL rendering, cross-check only
	International string `json:"international" example:"+55 11 99876-5432"`
}

// swagger:model CreateBatchResponse
type CreateBatchResponse struct {
	// Public identifier of the persisted batch
	BatchID string `json:"batch_id" example:"0d4cfa36-64a4-4a6f-93d2-8c8ce6ac9c05"`
	// Generation mode used
	Mode string `json:"mode" example:"ALL_DDDS"`
	// Fixed area code, null in ALL_DDDS mode
	DDD *string `json:"ddd" example:"11"`
	// Number of generated records
	Count int `json:"count" example:"100"`
	// Generated records in generation order
	Records []PhoneRecordResponse `json:"records"`
	// Timestamp of when the batch was created
	CreatedAt string `json:"created_at" example:"2026-08-30T12:00:00Z"`
	// Message indicating successful generation
	Message string `json:"message" example:"Batch generated successfully"`
}

// swagger:model BatchSummaryResponse
type BatchSummaryResponse struct {
	BatchID   string  `json:"batch_id" example:"0d4cfa36-64a4-4a6f-93d2-8c8ce6ac9c05"`
	Mode      string  `json:"mode" example:"FIXED_DDD"`
	DDD       *string `json:"ddd" example:"11"`
	Count     int     `json:"count" example:"100"`
	CreatedAt string  `json:"created_at" example:"2026-08-30T12:00:00Z"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the operation outcome
	Message string `json:"message" example:"Operation successful"`
}

// swagger:model DDDResponse
type DDDResponse struct {
	// Two-digit area code
	Code string `json:"code" example:"11"`
	// Federative unit the code belongs to
	State string `json:"state" example:"SP"`
	// Macro-region of the state
	Region string `json:"region" example:"Sudeste"`
}

// swagger:model CreateAPIKeyRequest
type CreateAPIKeyRequest struct {
	// Human-readable key name
	// required: true
	Name string `json:"name" example:"ci-pipeline"`
	// Optional description
	Description *string `json:"description" example:"Key used by the nightly QA pipeline."`
}

// swagger:model CreateAPIKeyResponse
type CreateAPIKeyResponse struct {
	// Lookup identifier of the key
	KeyID string `json:"key_id" example:"ck_0123456789abcdef0123456789abcdef"`
	// The full API key. Shown only once; store it securely.
	APIKey string `json:"api_key" example:"ck_0123456789abcdef0123456789abcdef0123456789abcdef"`
	// Name of the created key
	Name string `json:"name" example:"ci-pipeline"`
	// Message indicating successful creation
	Message string `json:"message" example:"API key created successfully"`
}

// swagger:model APIKeyResponse
type APIKeyResponse struct {
	KeyID       string  `json:"key_id" example:"ck_0123456789abcdef0123456789abcdef"`
	Name        string  `json:"name" example:"ci-pipeline"`
	Description *string `json:"description" example:"Key used by the nightly QA pipeline."`
	LastUsedAt  *string `json:"last_used_at" example:"2026-08-30T12:00:00Z"`
	ExpiresAt   *string `json:"expires_at" example:"2027-08-30T12:00:00Z"`
	CreatedAt   string  `json:"created_at" example:"2026-08-30T12:00:00Z"`
}

// swagger:model EventLogResponse
type EventLogResponse struct {
	EID         string  `json:"eid" example:"7f9d6f3a-bb41-4a3f-8a63-0f6f5a3a9f21"`
	Category    *string `json:"category" example:"GENERATE"`
	Status      *string `json:"status" example:"COMPLETED"`
	BatchID     *string `json:"batch_id" example:"0d4cfa36-64a4-4a6f-93d2-8c8ce6ac9c05"`
	Mode        *string `json:"mode" example:"ALL_DDDS"`
	DDD         *string `json:"ddd" example:"11"`
	Count       *int    `json:"count" example:"100"`
	Description *string `json:"description" example:"Batch generated successfully."`
	CreatedAt   string  `json:"created_at" example:"2026-08-30T12:00:00Z"`
}
