package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// NumberField is a JSON value holding an integer, sent either as a number or as
// a string (HTML forms post everything as strings). Null and "" mean absent.
type NumberField struct {
	raw string
	set bool
}

// Num builds a present NumberField, mostly for tests and internal callers
func Num(v int64) NumberField {
	return NumberField{raw: strconv.FormatInt(v, 10), set: true}
}

func (n *NumberField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = NumberField{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		*n = NumberField{raw: s, set: s != ""}
	default:
		// bools, arrays and objects are kept verbatim and fail in Int
		*n = NumberField{raw: string(data), set: true}
	}
	return nil
}

func (n NumberField) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// Int parses the value. Integral decimals such as "30.0" are accepted.
func (n NumberField) Int(field string) (int64, error) {
	if v, err := strconv.ParseInt(n.raw, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Wrapf(ErrInvalidInput, "%s must be an integer, got %q", field, n.raw)
	}
	return int64(f), nil
}

// ApplicationRequest is the body of POST /check
type ApplicationRequest struct {
	Age           NumberField `json:"age"`
	Employment    string      `json:"employment"`
	WorkDuration  string      `json:"work_duration"`
	Income        NumberField `json:"income"`
	MaritalStatus string      `json:"marital_status"`
	// Marital is the field name used by the first version of the form
	Marital       string      `json:"marital,omitempty"`
	SpouseIncome  NumberField `json:"spouse_income"`
	Dependents    NumberField `json:"dependents"`
	CreditHistory string      `json:"credit_history"`
	Amount        NumberField `json:"amount"`
	Term          NumberField `json:"term"`
}

// Bind converts the request into a validated ApplicationInput. Every failure
// wraps ErrInvalidInput.
func (r ApplicationRequest) Bind() (ApplicationInput, error) {
	var (
		in  ApplicationInput
		err error
	)

	required := func(name string, f NumberField) int64 {
		if err != nil {
			return 0
		}
		if !f.set {
			err = errors.Wrapf(ErrInvalidInput, "%s is required", name)
			return 0
		}
		var v int64
		v, err = f.Int(name)
		return v
	}
	optional := func(name string, f NumberField) int64 {
		if err != nil || !f.set {
			return 0
		}
		var v int64
		v, err = f.Int(name)
		return v
	}

	in.Age = required("age", r.Age)
	in.Income = required("income", r.Income)
	in.SpouseIncome = optional("spouse_income", r.SpouseIncome)
	in.Dependents = optional("dependents", r.Dependents)
	in.Amount = required("amount", r.Amount)
	in.Term = required("term", r.Term)
	if err != nil {
		return ApplicationInput{}, err
	}

	if in.Employment, err = ParseEmployment(r.Employment); err != nil {
		return ApplicationInput{}, err
	}
	if in.WorkDuration, err = ParseWorkDuration(r.WorkDuration); err != nil {
		return ApplicationInput{}, err
	}
	marital := r.MaritalStatus
	if marital == "" {
		marital = r.Marital
	}
	if in.MaritalStatus, err = ParseMaritalStatus(marital); err != nil {
		return ApplicationInput{}, err
	}
	if in.CreditHistory, err = ParseCreditHistory(r.CreditHistory); err != nil {
		return ApplicationInput{}, err
	}

	if err := in.Validate(); err != nil {
		return ApplicationInput{}, err
	}
	return in, nil
}
