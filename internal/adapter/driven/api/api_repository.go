package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita quanto do corpo de uma resposta de erro é lido.
const maxErrorBody = 64 * 1024

// APIError representa uma resposta não-2xx da API do Auditaxs.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Auditaxs API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("Auditaxs API returned status %d: %s", e.StatusCode, e.Message)
}

// Is faz um 404 casar com types.ErrAuditNotFound.
func (e *APIError) Is(target error) bool {
	return target == types.ErrAuditNotFound && e.StatusCode == http.StatusNotFound
}

// AuditRepositoryImpl implementa o AuditRepository sobre HTTP.
type AuditRepositoryImpl struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAuditRepository cria o cliente da API a partir da configuração.
func NewAuditRepository(cfg *types.Config, logger *logrus.Logger) (repository.AuditRepository, error) {
	if cfg == nil || strings.TrimSpace(cfg.APIURL) == "" {
		return nil, types.ErrMissingAPIURL
	}

	baseURL, err := url.Parse(strings.TrimSpace(cfg.APIURL))
	if err != nil {
		return nil, fmt.Errorf("error parsing API URL: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", cfg.APIURL)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &AuditRepositoryImpl{
		baseURL: baseURL,
		token:   cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger,
	}, nil
}

// ListAudits busca as auditorias do usuário autenticado.
func (r *AuditRepositoryImpl) ListAudits(ctx context.Context) ([]entity.Audit, error) {
	body, err := r.do(ctx, http.MethodGet, "/audits", nil)
	if err != nil {
		return nil, err
	}

	// A API devolve {"audits": [...]} ou, em versões antigas, o array direto.
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var audits []entity.Audit
		if err := json.Unmarshal(body, &audits); err != nil {
			return nil, fmt.Errorf("error decoding audits: %w", err)
		}
		return audits, nil
	}

	var response struct {
		Audits []entity.Audit `json:"audits"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding audits: %w", err)
	}
	return response.Audits, nil
}

// GetAudit busca uma auditoria com o seu resumo.
func (r *AuditRepositoryImpl) GetAudit(ctx context.Context, id string) (entity.Audit, error) {
	if id == "" {
		return entity.Audit{}, types.ErrMissingAuditID
	}

	body, err := r.do(ctx, http.MethodGet, auditPath(id), nil)
	if err != nil {
		return entity.Audit{}, err
	}

	var response struct {
		Audit *entity.Audit `json:"audit"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return entity.Audit{}, fmt.Errorf("error decoding audit %s: %w", id, err)
	}
	if response.Audit == nil {
		return entity.Audit{}, fmt.Errorf("audit %s: %w", id, types.ErrAuditNotFound)
	}
	return *response.Audit, nil
}

// GetDetails busca uma página dos detalhes de venda.
func (r *AuditRepositoryImpl) GetDetails(ctx context.Context, id string, page, pageSize int) (entity.PaginatedDetails, error) {
	if id == "" {
		return entity.PaginatedDetails{}, types.ErrMissingAuditID
	}
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}

	body, err := r.do(ctx, http.MethodGet, auditPath(id)+"/details", query)
	if err != nil {
		return entity.PaginatedDetails{}, err
	}

	var details entity.PaginatedDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return entity.PaginatedDetails{}, fmt.Errorf("error decoding details of audit %s: %w", id, err)
	}
	return details, nil
}

// GetAllDetails busca todos os detalhes de venda de uma vez (usado na planilha).
func (r *AuditRepositoryImpl) GetAllDetails(ctx context.Context, id string) ([]entity.DetailsRow, error) {
	if id == "" {
		return nil, types.ErrMissingAuditID
	}

	query := url.Values{}
	query.Set("allItems", "true")

	body, err := r.do(ctx, http.MethodGet, auditPath(id)+"/details", query)
	if err != nil {
		return nil, err
	}

	var response struct {
		DetailsData []entity.DetailsRow `json:"detailsData"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding details of audit %s: %w", id, err)
	}
	return response.DetailsData, nil
}

// DeleteAudit remove uma auditoria.
func (r *AuditRepositoryImpl) DeleteAudit(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrMissingAuditID
	}
	_, err := r.do(ctx, http.MethodDelete, auditPath(id), nil)
	return err
}

func (r *AuditRepositoryImpl) do(ctx context.Context, method, p string, query url.Values) ([]byte, error) {
	endpoint := *r.baseURL
	rawPath := path.Join(endpoint.EscapedPath(), p)
	unescaped, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, fmt.Errorf("error building request path: %w", err)
	}
	endpoint.Path = unescaped
	endpoint.RawPath = rawPath
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   endpoint.Path,
		}).WithError(err).Debug("request failed")
		return nil, fmt.Errorf("error executing request %s %s: %w", method, endpoint.Path, err)
	}
	defer resp.Body.Close()

	r.logger.WithFields(logrus.Fields{
		"method":      method,
		"path":        endpoint.Path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Auditaxs API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return body, nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

func auditPath(id string) string {
	return "/audits/" + url.PathEscape(id)
}
