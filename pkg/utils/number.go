package utils

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseIntOrZero converte strings numéricas vindas das APIs de anúncios,
// que devolvem inteiros como texto. Valor vazio ou inválido vira zero.
func ParseIntOrZero(s string) int {
	if s == "" {
		return 0
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		logrus.Warnf("Erro ao converter valor inteiro %q: %s", s, err)
		return 0
	}

	return v
}

// ParseFloatOrZero converte strings de valores monetários das APIs de anúncios
func ParseFloatOrZero(s string) float64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logrus.Warnf("Erro ao converter valor decimal %q: %s", s, err)
		return 0
	}

	return v
}

// SafeDivide divide protegendo contra denominador zero
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
