package scoring

// Lending policy, fixed by the bank.
const (
	MinAge          = 18
	MaxAge          = 70
	MinWorkMonths   = 3     // enforced only through the work_duration choice
	LivingWage      = 15000 // subsistence minimum, RUB per month
	BaseRateMonth   = 0.015
	RiskSurcharge   = 0.005 // added to the monthly rate for a negative score
	MaxPaymentShare = 0.45  // of the household income
)

// Rejection messages
const (
	msgAgeOutOfRange   = "Отказ: возраст вне диапазона 18-70 лет."
	msgUnemployed      = "Отказ: безработным кредит не выдаётся."
	msgLowIncome       = "Отказ: совокупный доход семьи менее 2 прожиточных минимумов."
	msgDependents      = "Отказ: после учёта иждивенцев остаётся менее 1 прожиточного минимума."
	msgPaymentTooLarge = "Отказ: платёж превышает 45 % совокупного дохода семьи."
	msgLowScore        = "Отказ по совокупности факторов: "
)

// Score notes
const (
	noteYoung        = "Молодой возраст"
	noteNearPension  = "Предпенсионный/пенсионный возраст"
	noteEmployment   = "Тип занятости: "
	noteSelfEmployed = "Самозанятый"
	noteShortTenure  = "Стаж < 3 мес."
	noteLargeFamily  = "Многодетность"
	noteBadHistory   = "Плохая КИ"
	noteNoHistory    = "КИ отсутствует"
)
