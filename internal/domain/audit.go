package domain

import (
	"fmt"
	"strings"
	"time"
)

// AuditAction names a top-level session operation.
type AuditAction string

const (
	AuditActionCustomerCreate AuditAction = "create_customer"
	AuditActionAccountCreate  AuditAction = "create_account"
	AuditActionDeposit        AuditAction = "deposit"
	AuditActionWithdraw       AuditAction = "withdraw"
	AuditActionStatement      AuditAction = "statement"
	AuditActionAccountList    AuditAction = "list_accounts"
)

// AuditStatus represents the outcome of an audited operation.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailure AuditStatus = "failure"
)

const AuditTimeLayout = "2006-01-02 15:04:05"

// AuditField is one named argument of an audited operation.
type AuditField struct {
	Key   string
	Value string
}

// AuditRecord is a single line of the operation log.
type AuditRecord struct {
	ID        string
	Action    AuditAction
	Arguments []AuditField
	Result    string
	Status    AuditStatus
	CreatedAt time.Time
}

// Line renders the record as one newline-terminated log line.
func (r *AuditRecord) Line() string {
	args := make([]string, 0, len(r.Arguments))
	for _, f := range r.Arguments {
		args = append(args, f.Key+"="+f.Value)
	}

	argText := strings.Join(args, " ")
	if argText == "" {
		argText = "none"
	}

	return fmt.Sprintf("[%s] Operation: %s (id %s) executed with arguments: %s. Returned: %s\n",
		r.CreatedAt.Format(AuditTimeLayout),
		strings.ToUpper(string(r.Action)),
		r.ID,
		argText,
		r.Result,
	)
}
