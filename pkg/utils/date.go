package utils

import "time"

// ParseDate aceita datas AAAA-MM-DD. Texto vazio retorna nil.
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

// Today formata a data corrente no layout usado pelo livro-caixa.
func Today(now time.Time) string {
	return now.Format(time.DateOnly)
}
