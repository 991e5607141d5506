package domain

import "time"

// DateLayout is the wire and storage format for accounting dates.
const DateLayout = "2006-01-02"

// MoneyScale is the number of fractional digits every stored amount carries.
const MoneyScale int32 = 2

// SystemUserID is recorded as the actor when a request carries no verified token.
const SystemUserID = "system"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// NewAuditFields stamps creation and update with the same actor and instant.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
