package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera IDs de entidades. Doze caracteres mantêm colisões improváveis
// mesmo com várias instâncias gravando no mesmo espaço de trabalho.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// MustGenerateID é usado onde a falha do gerador de entropia não tem tratamento possível.
func MustGenerateID() string {
	id, err := GenerateID()
	if err != nil {
		panic(err)
	}
	return id
}
