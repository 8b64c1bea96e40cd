package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository/mocks"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
)

type fixture struct {
	audits    *mocks.MockAuditRepository
	exports   *mocks.MockExportRepository
	publisher *mocks.MockReportPublisher
	console   *fakeConsole
	config    *types.Config
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := types.DefaultConfig()
	cfg.DashboardURL = "https://app.auditaxs.com.br"

	return &fixture{
		audits:    mocks.NewMockAuditRepository(ctrl),
		exports:   mocks.NewMockExportRepository(ctrl),
		publisher: mocks.NewMockReportPublisher(ctrl),
		console:   newFakeConsole(),
		config:    cfg,
	}
}

func (f *fixture) useCase() *DashboardUseCase {
	return NewDashboardUseCase(f.audits, f.exports, f.publisher, f.console, f.config)
}

func (f *fixture) useCaseWithoutPublisher() *DashboardUseCase {
	return NewDashboardUseCase(f.audits, f.exports, nil, f.console, f.config)
}

func sampleAudit() entity.Audit {
	return entity.Audit{
		ID:        42,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Establishment: &entity.Establishment{
			CompanyName: "Padaria Central LTDA",
			CNPJ:        "12.345.678/0001-90",
			Responsible: "Maria",
		},
		SummaryData: []entity.SummaryRow{
			{Brand: "Visa", Product: "Credit", Percentage: "2,5", Periods: []entity.PeriodValue{
				{Period: "2023", Value: "100,00"},
				{Period: "2024", Value: "200,00"},
			}},
			{Brand: "Master", Product: "Debit", Percentage: "1,8", Periods: []entity.PeriodValue{
				{Period: "2024", Value: "50,00"},
			}},
		},
	}
}

func TestListAudits(t *testing.T) {
	f := newFixture(t)
	f.audits.EXPECT().ListAudits(gomock.Any()).Return([]entity.Audit{
		sampleAudit(),
		{ID: 7},
	}, nil)

	require.NoError(t, f.useCase().ListAudits(context.Background()))

	require.Len(t, f.console.tables, 1)
	table := f.console.tables[0]
	assert.Equal(t, []string{"ID", "Data de criação", "Estabelecimento"}, table.columns)
	assert.Equal(t, [][]string{
		{"42", "01/05/2024", "Padaria Central LTDA"},
		{"7", "-", "-"},
	}, table.rows)
}

func TestListAuditsEmpty(t *testing.T) {
	f := newFixture(t)
	f.audits.EXPECT().ListAudits(gomock.Any()).Return(nil, nil)

	require.NoError(t, f.useCase().ListAudits(context.Background()))
	assert.Empty(t, f.console.tables)
	assert.Len(t, f.console.infos, 1)
}

func TestListAuditsError(t *testing.T) {
	f := newFixture(t)
	f.audits.EXPECT().ListAudits(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := f.useCase().ListAudits(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestShowSummary(t *testing.T) {
	f := newFixture(t)
	f.audits.EXPECT().GetAudit(gomock.Any(), "42").Return(sampleAudit(), nil)

	err := f.useCase().ShowSummary(context.Background(), "42", entity.FilterSelection{Brands: []string{"Visa", "Elo"}})
	require.NoError(t, err)

	require.Len(t, f.console.tables, 1)
	grid := f.console.tables[0]
	assert.Equal(t, []string{"Bandeira", "Produto", "Taxa (%)", "2023", "2024", "Total Geral"}, grid.columns)
	assert.Equal(t, [][]string{
		{"Visa", "Credit", "2,5%", "100,00", "200,00", "300,00"},
		{"Total", "-", "-", "100,00", "200,00", "300,00"},
	}, grid.rows)

	assert.Equal(t, []types.ChartBar{{Label: "Master", Value: 0}, {Label: "Visa", Value: 300}}, f.console.charts["Distribuição por Bandeira"])
	assert.Len(t, f.console.charts, 3)
	assert.Equal(t, []string{"Bandeira 'Elo' não encontrada na auditoria"}, f.console.warnings)
	assert.Contains(t, f.console.output.String(), "Bandeiras: Master, Visa")
}

func TestShowSummaryWithoutData(t *testing.T) {
	f := newFixture(t)
	audit := sampleAudit()
	audit.SummaryData = nil
	f.audits.EXPECT().GetAudit(gomock.Any(), "42").Return(audit, nil)

	require.NoError(t, f.useCase().ShowSummary(context.Background(), "42", entity.FilterSelection{}))
	assert.Empty(t, f.console.tables)
	assert.Len(t, f.console.warnings, 1)
}

func TestShowSummaryNotFound(t *testing.T) {
	f := newFixture(t)
	f.audits.EXPECT().GetAudit(gomock.Any(), "99").Return(entity.Audit{}, types.ErrAuditNotFound)

	err := f.useCase().ShowSummary(context.Background(), "99", entity.FilterSelection{})
	assert.ErrorIs(t, err, types.ErrAuditNotFound)
}

func TestShowSummaryRequiresID(t *testing.T) {
	f := newFixture(t)
	err := f.useCase().ShowSummary(context.Background(), "", entity.FilterSelection{})
	assert.ErrorIs(t, err, types.ErrMissingAuditID)
}

func TestShowDetailsUsesConfiguredPageSize(t *testing.T) {
	f := newFixture(t)
	f.config.PageSize = 25
	f.audits.EXPECT().GetDetails(gomock.Any(), "42", 2, 25).Return(entity.PaginatedDetails{
		Data: []entity.DetailsRow{{
			NSU:                 "123",
			SaleDate:            "01/05/2024",
			Brand:               "Visa",
			Product:             "Credit",
			SaleValue:           "1000,5",
			ReferencedFee:       "2,5",
			AuditedFee:          "2",
			DifferenceToReceive: "",
		}},
		CurrentPage: 2,
		TotalPages:  4,
		TotalItems:  80,
	}, nil)

	require.NoError(t, f.useCase().ShowDetails(context.Background(), "42", 2, 0))

	require.Len(t, f.console.tables, 1)
	assert.Equal(t, []string{"123", "01/05/2024", "Visa", "Credit", "1.000,50", "2,5%", "2%", "0,00"}, f.console.tables[0].rows[0])
	assert.Contains(t, f.console.output.String(), "Página 2 de 4 (80 itens)")
}

func TestDeleteAudit(t *testing.T) {
	t.Run("confirmed by flag", func(t *testing.T) {
		f := newFixture(t)
		f.audits.EXPECT().DeleteAudit(gomock.Any(), "42").Return(nil)

		require.NoError(t, f.useCase().DeleteAudit(context.Background(), "42", true))
		assert.Empty(t, f.console.prompts)
		assert.Len(t, f.console.success, 1)
	})

	t.Run("confirmed by prompt", func(t *testing.T) {
		f := newFixture(t)
		f.console.confirm = true
		f.audits.EXPECT().DeleteAudit(gomock.Any(), "42").Return(nil)

		require.NoError(t, f.useCase().DeleteAudit(context.Background(), "42", false))
		assert.Len(t, f.console.prompts, 1)
	})

	t.Run("declined", func(t *testing.T) {
		f := newFixture(t)
		f.console.confirm = false

		require.NoError(t, f.useCase().DeleteAudit(context.Background(), "42", false))
		assert.Equal(t, []string{"Exclusão cancelada."}, f.console.infos)
	})

	t.Run("api error", func(t *testing.T) {
		f := newFixture(t)
		f.audits.EXPECT().DeleteAudit(gomock.Any(), "42").Return(types.ErrAuditNotFound)

		err := f.useCase().DeleteAudit(context.Background(), "42", true)
		assert.ErrorIs(t, err, types.ErrAuditNotFound)
	})
}

func TestShareSummary(t *testing.T) {
	f := newFixture(t)

	link, err := f.useCase().ShareSummary("42", "")
	require.NoError(t, err)
	assert.Equal(t, "https://app.auditaxs.com.br/pt-BR/summary/42", link)

	link, err = f.useCase().ShareSummary("42", "en")
	require.NoError(t, err)
	assert.Equal(t, "https://app.auditaxs.com.br/en/summary/42", link)
}
