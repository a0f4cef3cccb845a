// internal/storage/models/scenario.go
package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/offerscope/offerscope/internal/scenario"
)

// ScenarioRecord is a persisted scenario run: the headline metrics as
// queryable columns plus the full input and result as JSONB payloads.
type ScenarioRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	Name        string `gorm:"index;type:varchar(120)"`
	Mode        string `gorm:"not null;type:varchar(10)"`
	Fingerprint string `gorm:"uniqueIndex;not null;type:varchar(64)"`

	HorizonYears    int     `gorm:"not null"`
	NetOutcome      float64 `gorm:"type:decimal(20,2);not null"`
	NetPresentValue float64 `gorm:"type:decimal(20,2);not null"`
	TotalPayout     float64 `gorm:"type:decimal(20,2);not null"`
	ClearWin        bool    `gorm:"not null"`

	Input  []byte `gorm:"type:jsonb;not null"`
	Result []byte `gorm:"type:jsonb;not null"`
}

// NewScenarioRecord builds a record from an evaluated result.
func NewScenarioRecord(res scenario.Result) (*ScenarioRecord, error) {
	inputJSON, err := json.Marshal(res.Input)
	if err != nil {
		return nil, fmt.Errorf("marshal input: %w", err)
	}
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return &ScenarioRecord{
		ID:              uuid.New(),
		Name:            res.Input.Name,
		Mode:            string(res.Input.Mode),
		Fingerprint:     scenario.Fingerprint(res.Input),
		HorizonYears:    res.Input.HorizonYears,
		NetOutcome:      res.NetOutcome,
		NetPresentValue: res.NetPresentValue,
		TotalPayout:     res.TotalPayout,
		ClearWin:        res.ClearWin,
		Input:           inputJSON,
		Result:          resultJSON,
	}, nil
}

// DecodeResult unpacks the stored result payload.
func (r *ScenarioRecord) DecodeResult() (scenario.Result, error) {
	var res scenario.Result
	if err := json.Unmarshal(r.Result, &res); err != nil {
		return scenario.Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return res, nil
}

// DecodeInput unpacks the stored input payload.
func (r *ScenarioRecord) DecodeInput() (scenario.Input, error) {
	var in scenario.Input
	if err := json.Unmarshal(r.Input, &in); err != nil {
		return scenario.Input{}, fmt.Errorf("unmarshal input: %w", err)
	}
	return in, nil
}
