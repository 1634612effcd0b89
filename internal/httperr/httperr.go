package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond writes a business error with its own status and message table
// entry. Anything else is logged and answered with a generic 500 so storage
// details never reach the caller.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if be, ok := AsBusiness(err); ok {
		Write(c, be.Status(), be.Code, Message(be.Code))
		return
	}

	log.Printf("%s %s: %s: %v", c.Request.Method, c.FullPath(), fallbackCode, err)
	Internal(c, fallbackCode, "Erro interno no servidor.")
}

var messages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"invalid_date":           "Data inválida.",
	"invalid_start_time":     "Data inválida.",
	"start_in_past":          "Não é possível marcar no passado.",
	"invalid_duration":       "Duração do serviço inválida.",
	"outside_business_hours": "Fora do horário de atendimento.",
	"invalid_status":         "Status inválido, use 'confirmed' ou 'canceled'.",
	"invalid_state":          "O compromisso não pode mudar para esse status.",
	"invalid_id":             "Identificador inválido.",
	"service_not_found":      "Serviço não encontrado.",
	"barber_not_found":       "Barbeiro não encontrado.",
	"user_not_found":         "Usuário não encontrado.",
	"appointment_not_found":  "Compromisso não encontrado.",
	"time_conflict":          "Esse horário já está ocupado.",
	"email_already_exists":   "E-mail já cadastrado.",
	"forbidden":              "Você não tem permissão para essa operação.",
	"booking_busy":           "Agenda do barbeiro ocupada, tente novamente.",
	"invalid_credentials":    "E-mail ou senha inválidos.",
	"invalid_email":          "E-mail inválido.",
	"invalid_email_domain":   "O domínio do e-mail informado não parece ser válido.",
	"invalid_phone":          "Telefone inválido.",
	"invalid_role":           "Papel inválido, use 'admin', 'barbeiro' ou 'cliente'.",
	"invalid_file":           "Envie a imagem no campo 'avatar'.",
	"file_too_large":         "A imagem deve ter no máximo 2MB.",
	"unsupported_image":      "Apenas arquivos de imagem (jpeg, png, webp) são permitidos.",
}

func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
