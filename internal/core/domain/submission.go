package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the lifecycle state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusSuccess  SubmissionStatus = "SUCCESS"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
	SubmissionStatusExpired  SubmissionStatus = "EXPIRED"
	// Unknown is recorded when the caller cancelled and the follow-up poll found nothing.
	SubmissionStatusUnknown SubmissionStatus = "UNKNOWN"
)

// Submission is the persisted record of one signed envelope's submission.
type Submission struct {
	ID         uuid.UUID        `json:"id"`
	Hash       string           `json:"hash"`
	Source     string           `json:"source"`
	Sequence   int64            `json:"sequence"`
	Status     SubmissionStatus `json:"status"`
	Attempts   int              `json:"attempts"`
	ResultCode string           `json:"result_code,omitempty"`
	Ledger     int32            `json:"ledger,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// IsTerminal returns true if the submission is in a final state.
func (s *Submission) IsTerminal() bool {
	return s.Status == SubmissionStatusSuccess ||
		s.Status == SubmissionStatusRejected ||
		s.Status == SubmissionStatusExpired
}

// SubmitResult is the definitive outcome returned to the caller.
type SubmitResult struct {
	Hash     string           `json:"hash"`
	Ledger   int32            `json:"ledger"`
	Status   SubmissionStatus `json:"status"`
	Attempts int              `json:"attempts"`
}

// TransactionRecord is the network's view of an applied transaction.
type TransactionRecord struct {
	Hash       string
	Ledger     int32
	Successful bool
}

// Result codes the submitter resolves with a status lookup instead of surfacing.
const (
	ResultCodeBadSeq    = "tx_bad_seq"
	ResultCodeDuplicate = "tx_duplicate"
)

// SubmissionRejection carries the network's result codes for a rejected envelope.
type SubmissionRejection struct {
	TransactionCode string
	OperationCodes  []string
}

func (r *SubmissionRejection) Error() string {
	if len(r.OperationCodes) == 0 {
		return "transaction rejected: " + r.TransactionCode
	}
	return fmt.Sprintf("transaction rejected: %s %v", r.TransactionCode, r.OperationCodes)
}
