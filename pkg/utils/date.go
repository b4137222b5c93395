package utils

import "time"

// ParseDate converte uma data no formato yyyy-mm-dd. String vazia retorna nil,
// deixando a validação de obrigatoriedade para o caso de uso
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatDate formata a data para log e resposta, tolerando ponteiros nulos
func FormatDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return date.Format(time.DateOnly)
}
