package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/domain"
)

// MaxExtraPayments bounds the number of what-if candidates in a request.
const MaxExtraPayments = 20

// InputParser handles parsing of loan request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a loan request from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.LoanRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a loan request document
func (ip *InputParser) Parse(data []byte) (*domain.LoanRequest, error) {
	var req domain.LoanRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest validates a loaded request
func (ip *InputParser) ValidateRequest(req *domain.LoanRequest) error {
	if req == nil {
		return errors.New("no loan request provided")
	}

	if err := calculation.ValidateTerms(req.Loan); err != nil {
		return fmt.Errorf("loan: %w", err)
	}

	if len(req.ExtraPayments) > MaxExtraPayments {
		return fmt.Errorf("at most %d extra payments may be listed, got %d", MaxExtraPayments, len(req.ExtraPayments))
	}
	for i, extra := range req.ExtraPayments {
		if math.IsNaN(extra) || math.IsInf(extra, 0) || extra <= 0 {
			return fmt.Errorf("extra payment %d must be a positive amount, got %v", i, extra)
		}
	}

	return nil
}

// CreateExampleRequest creates an example loan request
func (ip *InputParser) CreateExampleRequest() *domain.LoanRequest {
	start := domain.NewMonth(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	return &domain.LoanRequest{
		Name: "30-year fixed mortgage",
		Loan: domain.LoanTerms{
			Principal:         200000,
			AnnualRatePercent: 6,
			TermYears:         30,
		},
		ExtraPayments: []float64{50, 100, 200},
		StartDate:     &start,
	}
}
