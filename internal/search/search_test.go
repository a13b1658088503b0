package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studiofade/barber-manager/internal/models"
)

func TestNormalizeStripsAccentsAndCase(t *testing.T) {
	assert.Equal(t, "jose", Normalize("José"))
	assert.Equal(t, "joao da silva", Normalize("  João da Silva "))
	assert.Equal(t, "acai", Normalize("Açaí"))
}

func TestQueryMatchesAccentInsensitive(t *testing.T) {
	clients := []models.Client{
		{ID: 1, Name: "Ana Paula", Phone: "11 99999-0001"},
		{ID: 2, Name: "José Carlos", Phone: "11 99999-0002"},
	}

	results := Query("ana", clients, nil)
	assert.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ID)

	results = Query("jose", clients, nil)
	assert.Len(t, results, 1)
	assert.Equal(t, uint(2), results[0].ID)
}

func TestQueryMatchesPhoneByDigits(t *testing.T) {
	clients := []models.Client{
		{ID: 1, Name: "Ana", Phone: "(11) 99999-0001"},
	}

	results := Query("999990001", clients, nil)
	assert.Len(t, results, 1)

	results = Query("11999", clients, nil)
	assert.Len(t, results, 1)
}

func TestQueryMatchesAppointments(t *testing.T) {
	client := models.Client{ID: 1, Name: "José"}
	cid := client.ID
	apps := []models.Appointment{
		{
			ID:          10,
			ClientID:    &cid,
			Client:      &client,
			ServiceType: "Corte Degradê",
			Status:      "scheduled",
			ScheduledAt: time.Now(),
		},
	}

	// por nome do cliente
	results := Query("jose", nil, apps)
	assert.Len(t, results, 1)
	assert.Equal(t, TypeAppointment, results[0].Type)

	// por serviço, sem acento
	results = Query("degrade", nil, apps)
	assert.Len(t, results, 1)

	// por status
	results = Query("scheduled", nil, apps)
	assert.Len(t, results, 1)
}

func TestQueryClientsComeFirst(t *testing.T) {
	client := models.Client{ID: 1, Name: "Ana"}
	cid := client.ID
	apps := []models.Appointment{
		{ID: 10, ClientID: &cid, Client: &client, ServiceType: "Corte"},
	}

	results := Query("ana", []models.Client{client}, apps)
	assert.Len(t, results, 2)
	assert.Equal(t, TypeClient, results[0].Type)
	assert.Equal(t, TypeAppointment, results[1].Type)
}

func TestQueryCapsAtTen(t *testing.T) {
	var clients []models.Client
	for i := 1; i <= 15; i++ {
		clients = append(clients, models.Client{
			ID:   uint(i),
			Name: fmt.Sprintf("Ana %d", i),
		})
	}

	results := Query("ana", clients, nil)
	assert.Len(t, results, 10)
}

func TestQueryEmptyAndMiss(t *testing.T) {
	clients := []models.Client{{ID: 1, Name: "Ana"}}

	assert.Empty(t, Query("", clients, nil))
	assert.Empty(t, Query("   ", clients, nil))
	assert.Empty(t, Query("zzz", clients, nil))
}
