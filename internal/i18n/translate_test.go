package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateInviteError(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t,
			"Solo los administradores pueden invitar miembros al equipo.",
			TranslateInviteError("Forbidden: solo los admins pueden invitar empleados"))
		assert.Equal(t,
			"El correo y el rol son obligatorios.",
			TranslateInviteError("Se requiere email y roleId"))
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		assert.Equal(t,
			"Ya existe una cuenta con este correo electrónico.",
			TranslateInviteError("error: USER ALREADY REGISTERED (code 422)"))
	})

	t.Run("unmapped message falls back to the generic string", func(t *testing.T) {
		assert.Equal(t, GenericInviteError, TranslateInviteError("duplicate key value violates unique constraint"))
	})

	t.Run("conflict message", func(t *testing.T) {
		assert.Equal(t,
			"Este usuario ya pertenece a este estudio.",
			TranslateInviteError("Este usuario ya es miembro del estudio"))
	})
}

func TestTranslateAuthError(t *testing.T) {
	t.Run("known messages translate", func(t *testing.T) {
		assert.Equal(t,
			"Correo o contraseña incorrectos. Verifica tus datos.",
			TranslateAuthError(errors.New("Invalid login credentials")))
		assert.Equal(t,
			"El código numérico ha expirado. Solicita uno nuevo.",
			TranslateAuthError(errors.New("otp expired")))
		assert.Equal(t,
			"Demasiados intentos. Por favor, espera unos minutos e intenta nuevamente.",
			TranslateAuthError(errors.New("Too Many Requests")))
	})

	t.Run("unmapped message passes through raw", func(t *testing.T) {
		assert.Equal(t, "pq: connection refused", TranslateAuthError(errors.New("pq: connection refused")))
	})

	t.Run("nil error yields the generic message", func(t *testing.T) {
		assert.Equal(t, GenericAuthError, TranslateAuthError(nil))
	})
}
