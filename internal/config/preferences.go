package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/multicalc/loancalc/internal/domain"
)

// CurrentPreferencesSchema is the schema version written by Encode.
const CurrentPreferencesSchema = 1

// ErrUnsupportedSchema reports a preferences blob written by a newer or unknown version.
var ErrUnsupportedSchema = errors.New("unsupported preferences schema")

// Preferences remembers the last loan entered and how the user likes to see results.
type Preferences struct {
	SchemaVersion int              `json:"schema_version"`
	LastTerms     domain.LoanTerms `json:"last_terms"`
	DefaultFormat string           `json:"default_format,omitempty"`
	ExtraPayments []float64        `json:"extra_payments,omitempty"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// legacyPreferences is the unversioned blob of free-text form fields and a
// millisecond timestamp.
type legacyPreferences struct {
	LoanAmount   string `json:"loanAmount"`
	InterestRate string `json:"interestRate"`
	LoanTerm     string `json:"loanTerm"`
	Timestamp    int64  `json:"timestamp"`
}

// EncodePreferences stamps the current schema version and serializes p.
func EncodePreferences(p Preferences) ([]byte, error) {
	p.SchemaVersion = CurrentPreferencesSchema
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding preferences: %w", err)
	}
	return data, nil
}

// DecodePreferences parses a stored blob, migrating unversioned legacy blobs.
func DecodePreferences(data []byte) (Preferences, error) {
	var probe struct {
		SchemaVersion *int `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Preferences{}, fmt.Errorf("decoding preferences: %w", err)
	}

	version := 0
	if probe.SchemaVersion != nil {
		version = *probe.SchemaVersion
	}

	switch version {
	case 0:
		return migrateLegacyPreferences(data)
	case CurrentPreferencesSchema:
		var p Preferences
		if err := json.Unmarshal(data, &p); err != nil {
			return Preferences{}, fmt.Errorf("decoding preferences: %w", err)
		}
		return p, nil
	default:
		return Preferences{}, fmt.Errorf("%w: version %d", ErrUnsupportedSchema, version)
	}
}

func migrateLegacyPreferences(data []byte) (Preferences, error) {
	var legacy legacyPreferences
	if err := json.Unmarshal(data, &legacy); err != nil {
		return Preferences{}, fmt.Errorf("decoding legacy preferences: %w", err)
	}

	p := Preferences{SchemaVersion: CurrentPreferencesSchema}
	// Blank or unparsable fields are left at zero, as the form would have left them empty.
	p.LastTerms.Principal = parseLegacyNumber(legacy.LoanAmount)
	p.LastTerms.AnnualRatePercent = parseLegacyNumber(legacy.InterestRate)
	p.LastTerms.TermYears = parseLegacyNumber(legacy.LoanTerm)
	if legacy.Timestamp > 0 {
		p.UpdatedAt = time.UnixMilli(legacy.Timestamp).UTC()
	}
	return p, nil
}

func parseLegacyNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
