package model

import (
	"github.com/google/uuid"

	"iban-scanner/internal/iban"
)

type ValidationResult struct {
	Candidate string         `json:"candidate"`
	Valid     bool           `json:"valid"`
	Reason    iban.Rejection `json:"reason"`
}

type ScanResult struct {
	ID              uuid.UUID      `json:"id"`
	ResultOk        bool           `json:"result_ok"`
	Text            string         `json:"text"`
	Message         string         `json:"message"`
	FramesProcessed int            `json:"frames_processed"`
	Reason          iban.Rejection `json:"reason"`
}
