// Package scoring decides whether a consumer credit application is approved.
//
// An application runs through a fixed, ordered list of steps. A step is either
// a gate, which may end the evaluation with a rejection, or an adjustment of
// the running score. Once every gate has passed the score decides: a negative
// score rejects the application and lists the collected notes.
package scoring

import (
	"math"
	"strings"

	"github.com/Dan9191/loan-check/internal/models"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// assessment is the state carried from one step to the next
type assessment struct {
	score       int
	notes       []string
	totalIncome int64
	rate        float64
	payment     int64
}

func (a *assessment) adjust(delta int, note string) {
	a.score += delta
	if note != "" {
		a.notes = append(a.notes, note)
	}
}

// step returns a non-nil decision to stop the evaluation
type step struct {
	name string
	run  func(in models.ApplicationInput, a *assessment) (*models.Decision, error)
}

// Report is a decision together with the state that produced it
type Report struct {
	Decision models.Decision
	Step     string // step that produced the decision
	Score    int
	Notes    []string
	Rate     float64 // zero if evaluation stopped before pricing
	Payment  int64   // zero if evaluation stopped before pricing
}

// Evaluator is stateless and safe for concurrent use
type Evaluator struct {
	steps []step
}

// NewEvaluator returns an evaluator running the bank's lending policy
func NewEvaluator() *Evaluator {
	return &Evaluator{steps: []step{
		{"age", checkAge},
		{"employment", checkEmployment},
		{"work_duration", adjustWorkDuration},
		{"household_income", checkHouseholdIncome},
		{"dependents", checkDependents},
		{"credit_history", adjustCreditHistory},
		{"payment", computePayment},
		{"affordability", checkAffordability},
		{"score", decide},
	}}
}

// Evaluate validates the application and returns the credit decision. The
// only error it returns wraps models.ErrInvalidInput, including a household
// income too large to add up.
func (e *Evaluator) Evaluate(in models.ApplicationInput) (models.Decision, error) {
	r, err := e.Assess(in)
	if err != nil {
		return models.Decision{}, err
	}
	return r.Decision, nil
}

// Assess is Evaluate with the intermediate score, notes and pricing
func (e *Evaluator) Assess(in models.ApplicationInput) (Report, error) {
	if err := in.Validate(); err != nil {
		return Report{}, err
	}

	a := &assessment{}
	for _, s := range e.steps {
		d, err := s.run(in, a)
		if err != nil {
			return Report{}, err
		}
		if d != nil {
			return Report{
				Decision: *d,
				Step:     s.name,
				Score:    a.score,
				Notes:    a.notes,
				Rate:     a.rate,
				Payment:  a.payment,
			}, nil
		}
	}
	// decide always returns a decision
	panic("scoring: no step produced a decision")
}

func reject(msg string) (*models.Decision, error) {
	d := models.Reject(msg)
	return &d, nil
}

func checkAge(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	switch {
	case in.Age < MinAge || in.Age > MaxAge:
		return reject(msgAgeOutOfRange)
	case in.Age < 21:
		a.adjust(-10, noteYoung)
	case in.Age > 60:
		a.adjust(-5, noteNearPension)
	default:
		a.adjust(5, "")
	}
	return nil, nil
}

func checkEmployment(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	switch in.Employment {
	case models.EmploymentUnemployed:
		return reject(msgUnemployed)
	case models.EmploymentStudent, models.EmploymentRetired:
		a.adjust(-10, noteEmployment+in.Employment.Label())
	case models.EmploymentSelfEmployed:
		a.adjust(-5, noteSelfEmployed)
	case models.EmploymentEmployed:
		a.adjust(5, "")
	}
	return nil, nil
}

// adjustWorkDuration never rejects. A declared "unemployed" tenure with an
// employed status leaves the score unchanged.
func adjustWorkDuration(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	switch in.WorkDuration {
	case models.WorkUnder3Months:
		a.adjust(-10, noteShortTenure)
	case models.WorkUnemployed:
	case models.WorkOver3Months:
		a.adjust(5, "")
	}
	return nil, nil
}

func checkHouseholdIncome(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	if in.SpouseIncome > math.MaxInt64-in.Income {
		return nil, errors.Wrapf(models.ErrInvalidInput,
			"household income %d + %d is out of range", in.Income, in.SpouseIncome)
	}
	a.totalIncome = in.Income + in.SpouseIncome
	if a.totalIncome < 2*LivingWage {
		return reject(msgLowIncome)
	}
	return nil, nil
}

func checkDependents(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	// past this count the support alone exceeds any int64 income
	if in.Dependents > math.MaxInt64/LivingWage {
		return reject(msgDependents)
	}
	required := in.Dependents * LivingWage
	if a.totalIncome-required < LivingWage {
		return reject(msgDependents)
	}
	if in.Dependents > 3 {
		a.adjust(-5, noteLargeFamily)
	}
	return nil, nil
}

func adjustCreditHistory(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	switch in.CreditHistory {
	case models.CreditHistoryBad:
		a.adjust(-20, noteBadHistory)
	case models.CreditHistoryNone:
		a.adjust(-5, noteNoHistory)
	case models.CreditHistoryGood:
		a.adjust(10, "")
	}
	return nil, nil
}

// computePayment prices the credit with the score as it stands, so a weak
// applicant is quoted the surcharged rate before the affordability check.
func computePayment(in models.ApplicationInput, a *assessment) (*models.Decision, error) {
	a.rate = BaseRateMonth
	if a.score < 0 {
		a.rate += RiskSurcharge
	}
	payment, err := AnnuityPayment(in.Amount, a.rate, in.Term)
	if errors.Is(err, ErrPaymentOverflow) {
		// unaffordable for any income; same outcome as the next gate
		return reject(msgPaymentTooLarge)
	}
	if err != nil {
		return nil, err
	}
	a.payment = payment
	return nil, nil
}

func checkAffordability(_ models.ApplicationInput, a *assessment) (*models.Decision, error) {
	if float64(a.payment) > MaxPaymentShare*float64(a.totalIncome) {
		return reject(msgPaymentTooLarge)
	}
	return nil, nil
}

func decide(_ models.ApplicationInput, a *assessment) (*models.Decision, error) {
	if a.score < 0 {
		return reject(msgLowScore + strings.Join(a.notes, "; "))
	}
	// Printer is not safe for concurrent use
	p := message.NewPrinter(language.English)
	d := models.Approve(
		p.Sprintf("Кредит одобрен! Ежемесячный платёж: %d ₽, ставка: %.1f%% годовых.", a.payment, a.rate*12*100),
		a.payment,
		a.rate,
	)
	return &d, nil
}
