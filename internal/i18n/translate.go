// Package i18n maps raw backend error strings to the Spanish copy shown in
// the dashboard. Auth flows and invitation flows deliberately fall back
// differently: auth returns the raw message so unmapped errors stay visible,
// invitations return a generic string.
package i18n

import "strings"

// inviteErrorMap translates errors surfaced by the invite-employee endpoint
// and the invitation acceptance flow. Keys are matched exactly first, then by
// case-insensitive substring.
var inviteErrorMap = map[string]string{
	// Account / mail delivery
	"A user with this email address has already been registered": "Ya existe una cuenta con este correo electrónico.",
	"User already registered":                                    "Ya existe una cuenta con este correo electrónico.",
	"Email rate limit exceeded":                                  "Se han enviado demasiadas invitaciones. Intenta de nuevo más tarde.",
	"Unable to validate email address: invalid format":           "El formato del correo electrónico no es válido.",
	"Email link is invalid or has expired":                       "El enlace de invitación no es válido o ha expirado.",
	"Signup is disabled":                                         "El registro de nuevos usuarios está desactivado.",
	"Email signups are disabled":                                 "El registro por correo está desactivado.",

	// Authentication
	"Missing Authorization header":  "Error de autenticación. Vuelve a iniciar sesión.",
	"Unauthorized: invalid session": "Tu sesión no es válida. Vuelve a iniciar sesión.",

	// Permission
	"Forbidden: solo los admins pueden invitar empleados": "Solo los administradores pueden invitar miembros al equipo.",

	// Validation
	"Se requiere email y roleId":             "El correo y el rol son obligatorios.",
	"Este usuario ya es miembro del estudio": "Este usuario ya pertenece a este estudio.",

	// Storage / internal
	"Error al crear la invitación": "No se pudo crear la invitación. Intenta de nuevo.",
	"Error interno":                "Ocurrió un error interno. Intenta de nuevo.",
}

// GenericInviteError is the fallback for unmapped invitation errors.
const GenericInviteError = "Ocurrió un error inesperado. Intenta de nuevo."

// GenericAuthError is returned when the auth translator receives no error
// value at all.
const GenericAuthError = "Ocurrió un error inesperado al procesar tu solicitud."

// TranslateInviteError returns the Spanish text for a known invitation error
// message: exact match first, then case-insensitive substring, else a generic
// fallback.
func TranslateInviteError(message string) string {
	if translated, ok := inviteErrorMap[message]; ok {
		return translated
	}

	lower := strings.ToLower(message)
	for key, translated := range inviteErrorMap {
		if strings.Contains(lower, strings.ToLower(key)) {
			return translated
		}
	}

	return GenericInviteError
}

// authErrorRule pairs a lowercase fragment of a backend auth error with its
// Spanish translation. Order matters: the first matching fragment wins.
type authErrorRule struct {
	fragment string
	message  string
}

var authErrorRules = []authErrorRule{
	// Login
	{"invalid login credentials", "Correo o contraseña incorrectos. Verifica tus datos."},
	{"email not confirmed", "Debes confirmar tu correo electrónico antes de iniciar sesión."},
	{"user not found", "No hemos encontrado un usuario con este correo electrónico."},

	// OTP / password reset
	{"token has expired", "El código ingresado es incorrecto o ya ha expirado. Solicita uno nuevo."},
	{"invalid token", "El código ingresado es incorrecto o ya ha expirado. Solicita uno nuevo."},
	{"otp expired", "El código numérico ha expirado. Solicita uno nuevo."},
	{"for security purposes", "Por motivos de seguridad, espera un momento antes de solicitar otro código."},

	// Signup
	{"user already registered", "Este correo electrónico ya está registrado."},
	{"password should be at least", "La contraseña es demasiado corta. Debe tener al menos 8 caracteres."},

	// Rate limits
	{"rate limit exceeded", "Demasiados intentos. Por favor, espera unos minutos e intenta nuevamente."},
	{"too many requests", "Demasiados intentos. Por favor, espera unos minutos e intenta nuevamente."},
}

// TranslateAuthError returns the Spanish text for a known auth error. Unmapped
// messages pass through untranslated so new backend errors remain observable.
func TranslateAuthError(err error) string {
	if err == nil {
		return GenericAuthError
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range authErrorRules {
		if strings.Contains(msg, rule.fragment) {
			return rule.message
		}
	}

	return err.Error()
}
