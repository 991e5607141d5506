package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// EncodeMultiFieldToken creates an opaque token from any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeEntryCursor creates a next_token for journal entry listing.
func EncodeEntryCursor(c domain.EntryCursor) string {
	return EncodeMultiFieldToken(c.Date.Format(domain.DateLayout), strconv.FormatInt(c.EntryNumber, 10))
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (domain.EntryCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.EntryCursor{}, err
	}
	if len(parts) != 2 {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (expected 2 fields, got %d)", len(parts))
	}
	date, err := time.Parse(domain.DateLayout, parts[0])
	if err != nil {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	number, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (entry number parse): %w", err)
	}
	return domain.EntryCursor{Date: date, EntryNumber: number}, nil
}
