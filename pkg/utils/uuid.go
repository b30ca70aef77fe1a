package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const sessionIDSize = 21

// GenerateSessionID gera o identificador de sessão gravado no token
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, sessionIDSize)
}
