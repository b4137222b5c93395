package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idSize     = 12
)

// GenerateID cria identificadores curtos usados como chave pública de venues
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idSize)
}
