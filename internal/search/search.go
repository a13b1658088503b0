// Package search faz busca fuzzy em memória sobre clientes e agendamentos.
// A comparação ignora caixa e acentos; telefone é comparado só por dígitos.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/studiofade/barber-manager/internal/models"
)

const maxResults = 10

type ResultType string

const (
	TypeClient      ResultType = "client"
	TypeAppointment ResultType = "appointment"
)

type Result struct {
	Type     ResultType `json:"type"`
	ID       uint       `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
}

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize baixa a caixa e remove diacríticos ("José" -> "jose").
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Query devolve clientes e agendamentos que batem com a consulta, clientes
// primeiro, truncado em 10 resultados após a concatenação.
func Query(
	q string,
	clients []models.Client,
	apps []models.Appointment,
) []Result {

	nq := Normalize(q)
	if nq == "" {
		return nil
	}
	dq := digitsOnly(q)

	var out []Result

	for i := range clients {
		cl := &clients[i]

		nameHit := strings.Contains(Normalize(cl.Name), nq)
		phoneHit := dq != "" && strings.Contains(digitsOnly(cl.Phone), dq)

		if nameHit || phoneHit {
			out = append(out, Result{
				Type:     TypeClient,
				ID:       cl.ID,
				Title:    cl.Name,
				Subtitle: cl.Phone,
			})
		}
	}

	for i := range apps {
		ap := &apps[i]

		clientName := ""
		if ap.Client != nil {
			clientName = ap.Client.Name
		}

		hit := (clientName != "" && strings.Contains(Normalize(clientName), nq)) ||
			strings.Contains(Normalize(ap.ServiceType), nq) ||
			strings.Contains(Normalize(ap.Status), nq)

		if hit {
			out = append(out, Result{
				Type:     TypeAppointment,
				ID:       ap.ID,
				Title:    ap.ServiceType,
				Subtitle: strings.TrimSpace(clientName + " " + ap.Status),
			})
		}
	}

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
