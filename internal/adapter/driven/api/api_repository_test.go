package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/diillson/auditaxs-dashboard-go/pkg/log"
)

const auditJSON = `{
  "audit": {
    "id": 42,
    "exported": false,
    "createdAt": "2024-05-01T12:00:00.000Z",
    "updatedAt": "2024-05-02T12:00:00.000Z",
    "establishmentId": 7,
    "establishment": {"id": 7, "companyName": "Padaria Central LTDA", "tradeName": "Padaria Central", "cnpj": "12.345.678/0001-90", "responsible": "Maria"},
    "summaryData": [
      {"id": "a1", "brand": "Visa", "product": "Credit", "percentage": "2,50",
       "years": [{"id": "y1", "year": 2023, "value": "100,00"}]},
      {"id": 2, "brand": "Master", "product": "Debit", "percentage": "1,80",
       "years": [{"id": "y2", "year": "2024", "value": "50,50"}]}
    ]
  }
}`

func newTestRepository(t *testing.T, handler http.HandlerFunc) *AuditRepositoryImpl {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo, err := NewAuditRepository(&types.Config{
		APIURL:     server.URL + "/api",
		APIToken:   "secret-token",
		APITimeout: 5,
	}, log.Discard())
	require.NoError(t, err)

	return repo.(*AuditRepositoryImpl)
}

func TestNewAuditRepositoryRequiresURL(t *testing.T) {
	_, err := NewAuditRepository(&types.Config{}, nil)
	assert.ErrorIs(t, err, types.ErrMissingAPIURL)

	_, err = NewAuditRepository(&types.Config{APIURL: "not-a-url"}, nil)
	assert.Error(t, err)
}

func TestGetAudit(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/audits/42", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(auditJSON))
	})

	audit, err := repo.GetAudit(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, int64(42), audit.ID)
	assert.Equal(t, "Padaria Central LTDA", audit.CompanyName())
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), audit.CreatedAt.UTC())
	require.Len(t, audit.SummaryData, 2)

	assert.Equal(t, "a1", audit.SummaryData[0].ID)
	assert.Equal(t, "2", audit.SummaryData[1].ID)
	assert.Equal(t, []entity.PeriodValue{{ID: "y1", Period: "2023", Value: "100,00"}}, audit.SummaryData[0].Periods)
	assert.Equal(t, "2024", audit.SummaryData[1].Periods[0].Period)
}

func TestGetAuditNotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Auditoria não encontrada"}`))
	})

	_, err := repo.GetAudit(context.Background(), "99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrAuditNotFound))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Auditoria não encontrada", apiErr.Message)
}

func TestGetAuditServerErrorIsNotNotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := repo.GetAudit(context.Background(), "1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, types.ErrAuditNotFound))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")
}

func TestGetAuditMissingID(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := repo.GetAudit(context.Background(), "")
	assert.ErrorIs(t, err, types.ErrMissingAuditID)
}

func TestListAudits(t *testing.T) {
	cases := map[string]string{
		"wrapped": `{"audits":[{"id":1,"establishmentId":3},{"id":2}]}`,
		"array":   `[{"id":1,"establishmentId":3},{"id":2}]`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/audits", r.URL.Path)
				_, _ = w.Write([]byte(payload))
			})

			audits, err := repo.ListAudits(context.Background())
			require.NoError(t, err)
			require.Len(t, audits, 2)
			assert.Equal(t, int64(3), audits[0].EstablishmentID)
			assert.Equal(t, "-", audits[1].CompanyName())
		})
	}
}

func TestGetDetails(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audits/42/details", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("pageSize"))

		_, _ = w.Write([]byte(`{"data":[{"nsu":"123","bandeira":"Visa","valor_venda":"10,00"}],
			"totalPages":3,"currentPage":2,"totalItems":60,"auditId":"42","pageSize":25}`))
	})

	page, err := repo.GetDetails(context.Background(), "42", 2, 25)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Visa", page.Data[0].Brand)
	assert.Equal(t, "10,00", page.Data[0].SaleValue)
}

func TestGetAllDetails(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("allItems"))
		_, _ = w.Write([]byte(`{"detailsData":[{"nsu":"1"},{"nsu":"2"}]}`))
	})

	rows, err := repo.GetAllDetails(context.Background(), "42")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestDeleteAudit(t *testing.T) {
	var called bool
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/audits/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, repo.DeleteAudit(context.Background(), "42"))
	assert.True(t, called)
}

func TestRequestHonoursContext(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAudits(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
