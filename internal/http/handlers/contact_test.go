package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-tracking-service/internal/testutil/testlog"
)

func TestContactHandler_Submit(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	h := NewContactHandler(rec.Logger())

	body := `{
		"nome": "Maria Costa",
		"email": "maria@example.com",
		"telefone": "(81) 99999-0000",
		"assunto": "Orçamento",
		"mensagem": "Gostaria de um orçamento para envio recorrente."
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/contato", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Submit(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mensagem enviada com sucesso")

	entries := rec.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "contact message received", entries[0].Msg)
}

func TestContactHandler_Submit_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			"missing name",
			`{"email":"a@b.com","assunto":"x","mensagem":"y"}`,
			"Campo obrigatório: nome",
		},
		{
			"bad email",
			`{"nome":"Maria","email":"not-an-email","assunto":"x","mensagem":"y"}`,
			"Campo inválido: email",
		},
		{
			"missing message",
			`{"nome":"Maria","email":"a@b.com","assunto":"x"}`,
			"Campo obrigatório: mensagem",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewContactHandler(testlog.New().Logger())
			req := httptest.NewRequest(http.MethodPost, "/api/contato", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			h.Submit(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}
