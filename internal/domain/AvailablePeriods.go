package domain

// AvailablePeriods lista os períodos com relatório mensal consolidado disponível
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Períodos no formato mm-yyyy, ordenados
	Years   []string `json:"years"`   // Anos distintos presentes em Periods
	Months  []string `json:"months"`  // Meses distintos presentes em Periods
}
