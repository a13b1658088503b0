package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/httperr"
)

// writeDomainError mapeia a taxonomia do domínio e erros de negócio para a
// resposta HTTP. Qualquer coisa fora da taxonomia é tratada como falha de
// persistência (5xx).
func writeDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		httperr.BadRequest(c, "invalid_request", err.Error())

	case domain.IsInvalidTransition(err):
		httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")

	case domain.IsInvalidPrice(err):
		httperr.BadRequest(c, "invalid_price", "Preço final inválido.")

	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")

	case httperr.IsBusiness(err, "client_not_found"):
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")

	case httperr.IsBusiness(err, "appointment_finalized"):
		httperr.BadRequest(c, "appointment_finalized", "Agendamento já finalizado.")

	default:
		httperr.Internal(c, "persistence_failure", "Erro ao gravar alterações.")
	}
}
