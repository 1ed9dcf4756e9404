package models

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Employment is the applicant's type of occupation
type Employment string

const (
	EmploymentEmployed     Employment = "employed"
	EmploymentSelfEmployed Employment = "self_employed"
	EmploymentStudent      Employment = "student"
	EmploymentRetired      Employment = "retired"
	EmploymentUnemployed   Employment = "unemployed"
)

// WorkDuration is the applicant's tenure at the current job
type WorkDuration string

const (
	WorkOver3Months  WorkDuration = "over_3_months"
	WorkUnder3Months WorkDuration = "under_3_months"
	WorkUnemployed   WorkDuration = "unemployed"
)

// MaritalStatus is the applicant's marital status
type MaritalStatus string

const (
	MaritalMarried MaritalStatus = "married"
	MaritalSingle  MaritalStatus = "single"
)

// CreditHistory is the applicant's past borrowing record
type CreditHistory string

const (
	CreditHistoryGood CreditHistory = "good"
	CreditHistoryBad  CreditHistory = "bad"
	CreditHistoryNone CreditHistory = "none"
)

// Russian labels. The first version of the form posted these, so they are
// accepted as input too.
var (
	employmentLabels = map[Employment]string{
		EmploymentEmployed:     "наёмный",
		EmploymentSelfEmployed: "самозанятый",
		EmploymentStudent:      "студент",
		EmploymentRetired:      "пенсионер",
		EmploymentUnemployed:   "безработный",
	}
	workDurationLabels = map[WorkDuration]string{
		WorkOver3Months:  "более 3",
		WorkUnder3Months: "менее 3",
		WorkUnemployed:   "безработный",
	}
	maritalLabels = map[MaritalStatus]string{
		MaritalMarried: "женат/замужем",
		MaritalSingle:  "холост/не замужем",
	}
	creditHistoryLabels = map[CreditHistory]string{
		CreditHistoryGood: "есть",
		CreditHistoryBad:  "плохая",
		CreditHistoryNone: "нет",
	}
)

func (e Employment) IsValid() bool {
	_, ok := employmentLabels[e]
	return ok
}

func (w WorkDuration) IsValid() bool {
	_, ok := workDurationLabels[w]
	return ok
}

func (m MaritalStatus) IsValid() bool {
	_, ok := maritalLabels[m]
	return ok
}

func (c CreditHistory) IsValid() bool {
	_, ok := creditHistoryLabels[c]
	return ok
}

// Label returns the Russian name used in decision notes
func (e Employment) Label() string { return employmentLabels[e] }

// ParseEmployment accepts a code ("self_employed") or a form label ("самозанятый")
func ParseEmployment(s string) (Employment, error) {
	return parseEnum("employment", s, employmentLabels)
}

// ParseWorkDuration accepts a code ("over_3_months") or a form label ("более 3")
func ParseWorkDuration(s string) (WorkDuration, error) {
	return parseEnum("work_duration", s, workDurationLabels)
}

// ParseMaritalStatus accepts a code ("married") or a form label ("женат/замужем")
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	return parseEnum("marital_status", s, maritalLabels)
}

// ParseCreditHistory accepts a code ("good") or a form label ("есть")
func ParseCreditHistory(s string) (CreditHistory, error) {
	return parseEnum("credit_history", s, creditHistoryLabels)
}

func parseEnum[T ~string](field, s string, labels map[T]string) (T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.Wrapf(ErrInvalidInput, "%s is required", field)
	}
	for code, label := range labels {
		if s == string(code) || s == label {
			return code, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidInput, "%s: unknown value %q", field, s)
}

// ApplicationInput is a complete, typed loan application. Only malformed
// values are bounded here: policy limits such as the lending age range or the
// affordable payment are decided by scoring.
type ApplicationInput struct {
	Age           int64         `json:"age" validate:"gte=0"`
	Employment    Employment    `json:"employment" validate:"enum"`
	WorkDuration  WorkDuration  `json:"work_duration" validate:"enum"`
	Income        int64         `json:"income" validate:"gte=0"`
	MaritalStatus MaritalStatus `json:"marital_status" validate:"enum"`
	SpouseIncome  int64         `json:"spouse_income" validate:"gte=0"`
	Dependents    int64         `json:"dependents" validate:"gte=0"`
	CreditHistory CreditHistory `json:"credit_history" validate:"enum"`
	Amount        int64         `json:"amount" validate:"gt=0"`
	Term          int64         `json:"term" validate:"gt=0"`
}

// Validate checks signs and enum values.
func (in ApplicationInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return adaptValidationError(err)
	}
	return nil
}
