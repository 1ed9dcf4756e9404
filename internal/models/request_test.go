package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(t *testing.T, body string) ApplicationRequest {
	t.Helper()
	var req ApplicationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestBind_FormStrings(t *testing.T) {
	req := decodeRequest(t, `{
		"age": "30", "employment": "наёмный", "work_duration": "более 3",
		"income": "100000", "marital": "холост/не замужем", "spouse_income": "",
		"dependents": "0", "credit_history": "есть", "amount": "100000", "term": "12"
	}`)

	in, err := req.Bind()
	require.NoError(t, err)

	assert.Equal(t, ApplicationInput{
		Age:           30,
		Employment:    EmploymentEmployed,
		WorkDuration:  WorkOver3Months,
		Income:        100000,
		MaritalStatus: MaritalSingle,
		SpouseIncome:  0,
		Dependents:    0,
		CreditHistory: CreditHistoryGood,
		Amount:        100000,
		Term:          12,
	}, in)
}

func TestBind_JSONNumbersAndCodes(t *testing.T) {
	req := decodeRequest(t, `{
		"age": 45, "employment": "self_employed", "work_duration": "under_3_months",
		"income": 50000, "marital_status": "married", "spouse_income": 20000.0,
		"credit_history": "none", "amount": 250000, "term": 36
	}`)

	in, err := req.Bind()
	require.NoError(t, err)

	assert.Equal(t, int64(45), in.Age)
	assert.Equal(t, EmploymentSelfEmployed, in.Employment)
	assert.Equal(t, WorkUnder3Months, in.WorkDuration)
	assert.Equal(t, MaritalMarried, in.MaritalStatus)
	assert.Equal(t, int64(20000), in.SpouseIncome)
	assert.Equal(t, int64(0), in.Dependents, "missing dependents defaults to zero")
	assert.Equal(t, CreditHistoryNone, in.CreditHistory)
}

func TestBind_InvalidInput(t *testing.T) {
	valid := map[string]any{
		"age": 30, "employment": "employed", "work_duration": "over_3_months",
		"income": 100000, "marital_status": "single", "credit_history": "good",
		"amount": 100000, "term": 12,
	}

	tests := []struct {
		name    string
		field   string
		value   any
		wantMsg string
	}{
		{"missing age", "age", nil, "age is required"},
		{"non-numeric age", "age", "thirty", "age must be an integer"},
		{"fractional income", "income", 1000.5, "income must be an integer"},
		{"bool amount", "amount", true, "amount must be an integer"},
		{"empty term", "term", "", "term is required"},
		{"unknown employment", "employment", "pirate", `employment: unknown value "pirate"`},
		{"missing credit history", "credit_history", nil, "credit_history is required"},
		{"negative income", "income", -1, "income must be at least 0"},
		{"negative dependents", "dependents", "-2", "dependents must be at least 0"},
		{"zero term", "term", 0, "term must be greater than 0"},
		{"negative age", "age", -1, "age must be at least 0"},
		{"term beyond int64", "term", "99999999999999999999", "term must be an integer"},
		{"amount of exactly 2^63", "amount", "9223372036854775808", "amount must be an integer"},
		{"amount of 2^63 as decimal", "amount", "9223372036854775808.0", "amount must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{}
			for k, v := range valid {
				body[k] = v
			}
			if tt.value == nil {
				delete(body, tt.field)
			} else {
				body[tt.field] = tt.value
			}
			raw, err := json.Marshal(body)
			require.NoError(t, err)

			_, err = decodeRequest(t, string(raw)).Bind()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBind_NoPolicyBounds(t *testing.T) {
	req := decodeRequest(t, `{
		"age": 150, "employment": "employed", "work_duration": "over_3_months",
		"income": "100000000000", "marital_status": "single", "credit_history": "good",
		"amount": 2000000000, "term": 601
	}`)

	in, err := req.Bind()
	require.NoError(t, err)
	assert.Equal(t, int64(150), in.Age)
	assert.Equal(t, int64(2000000000), in.Amount)
	assert.Equal(t, int64(601), in.Term)
}

func TestNumberField_IntBounds(t *testing.T) {
	v, err := NumberField{raw: "9223372036854775807", set: true}.Int("income")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	v, err = NumberField{raw: "-9223372036854775808.0", set: true}.Int("income")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v)

	_, err = NumberField{raw: "9.223372036854775808e18", set: true}.Int("income")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseEnums(t *testing.T) {
	e, err := ParseEmployment("студент")
	require.NoError(t, err)
	assert.Equal(t, EmploymentStudent, e)
	assert.Equal(t, "студент", e.Label())

	w, err := ParseWorkDuration(" unemployed ")
	require.NoError(t, err)
	assert.Equal(t, WorkUnemployed, w)

	c, err := ParseCreditHistory("плохая")
	require.NoError(t, err)
	assert.Equal(t, CreditHistoryBad, c)

	_, err = ParseMaritalStatus("divorced")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_UnknownEnum(t *testing.T) {
	in := ApplicationInput{
		Age: 30, Employment: "astronaut", WorkDuration: WorkOver3Months,
		Income: 100000, MaritalStatus: MaritalSingle, CreditHistory: CreditHistoryGood,
		Amount: 1000, Term: 12,
	}
	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), `employment has unknown value "astronaut"`)
}

func TestNumberField_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		A NumberField `json:"a"`
		B NumberField `json:"b"`
	}{A: Num(42)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"42","b":null}`, string(raw))
}
