package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"golang.org/x/text/language"
)

// ShareLink monta o link público do resumo: <baseURL>/<locale>/summary/<auditID>.
func ShareLink(baseURL, locale, auditID string) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", types.ErrMissingDashboardURL
	}
	if auditID == "" {
		return "", types.ErrMissingAuditID
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", types.ErrInvalidLocale, locale, err)
	}

	return fmt.Sprintf("%s/%s/summary/%s", baseURL, tag.String(), url.PathEscape(auditID)), nil
}
