package labels

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/domain"
	"github.com/jhoicas/lp-label-api/internal/domain/entity"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
)

const (
	companyA = "company-a"
	idFlour  = "6f1c2a8e-1b4d-4c2e-9a51-0d7e3f9b1a01"
	idRice   = "6f1c2a8e-1b4d-4c2e-9a51-0d7e3f9b1a02"
	idOther  = "6f1c2a8e-1b4d-4c2e-9a51-0d7e3f9b1a03"
)

type fakeRepo struct {
	byCompany map[string]map[string]*entity.LicensePlate
	calls     int
	err       error
}

func (f *fakeRepo) GetByID(_ context.Context, companyID, id string) (*entity.LicensePlate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byCompany[companyID][id], nil
}

func (f *fakeRepo) ListByIDs(_ context.Context, companyID string, ids []string) ([]*entity.LicensePlate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.LicensePlate
	// orden inverso para comprobar que el caso de uso respeta el orden pedido
	for i := len(ids) - 1; i >= 0; i-- {
		if lp, ok := f.byCompany[companyID][ids[i]]; ok {
			out = append(out, lp)
		}
	}
	return out, nil
}

func sp(s string) *string { return &s }

func newRepo() *fakeRepo {
	return &fakeRepo{byCompany: map[string]map[string]*entity.LicensePlate{
		companyA: {
			idFlour: {
				ID: idFlour, CompanyID: companyA, LPNumber: "LP20251201-000123",
				ProductCode: sp("FLR-00"), ProductName: sp("Flour Type 00"),
				Quantity: decimal.NewNullDecimal(decimal.NewFromInt(500)), UoM: sp("kg"),
			},
			idRice: {
				ID: idRice, CompanyID: companyA, LPNumber: "LP20251201-000124",
			},
		},
		"company-b": {
			idOther: {ID: idOther, CompanyID: "company-b", LPNumber: "LP-B-1"},
		},
	}}
}

var fixedNow = time.Date(2025, 12, 1, 14, 30, 5, 0, time.UTC)

func newPrintUC(repo *fakeRepo) *PrintUseCase {
	uc := NewPrintUseCase(repo, label.NewZPLGenerator(), Defaults{Size: label.Size4x6, IncludeQR: true}, zerolog.New(io.Discard))
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func ip(n int) *int   { return &n }
func bp(b bool) *bool { return &b }

func TestPrintLabel_Defaults(t *testing.T) {
	uc := newPrintUC(newRepo())

	resp, err := uc.PrintLabel(context.Background(), companyA, idFlour, dto.PrintLabelRequest{})
	require.NoError(t, err)

	assert.Equal(t, "LP20251201-000123", resp.LPNumber)
	assert.Equal(t, "Flour Type 00", resp.ProductName)
	assert.Equal(t, "4x6", resp.LabelSize)
	assert.Equal(t, 1, resp.Copies)
	assert.True(t, resp.IncludeQR)
	assert.Equal(t, "LP20251201-000123.zpl", resp.DownloadFilename)
	assert.Equal(t, fixedNow, resp.GeneratedAt)
	assert.True(t, strings.HasPrefix(resp.ZPL, "^XA"))
	assert.Contains(t, resp.ZPL, "^BQN")
	assert.Contains(t, resp.ZPL, "^PQ1")
}

func TestPrintLabel_UppercaseIDIsNormalized(t *testing.T) {
	uc := newPrintUC(newRepo())

	resp, err := uc.PrintLabel(context.Background(), companyA, strings.ToUpper(idFlour), dto.PrintLabelRequest{})
	require.NoError(t, err)
	assert.Equal(t, "LP20251201-000123", resp.LPNumber)
}

func TestPrintLabel_InvalidConfigSkipsStore(t *testing.T) {
	repo := newRepo()
	uc := newPrintUC(repo)

	_, err := uc.PrintLabel(context.Background(), companyA, idFlour, dto.PrintLabelRequest{
		PrintOptions: dto.PrintOptions{LabelSize: sp("5x5")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, label.ErrInvalidSize)

	_, err = uc.PrintLabel(context.Background(), companyA, idFlour, dto.PrintLabelRequest{
		PrintOptions: dto.PrintOptions{Copies: ip(101)},
	})
	assert.ErrorIs(t, err, label.ErrTooManyCopies)
	assert.Equal(t, 0, repo.calls)
}

func TestPrintLabel_NotFoundAndTenantScope(t *testing.T) {
	uc := newPrintUC(newRepo())

	_, err := uc.PrintLabel(context.Background(), companyA, idOther, dto.PrintLabelRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.PrintLabel(context.Background(), companyA, "not-a-uuid", dto.PrintLabelRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrintLabel_StoreError(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("conexión perdida")
	uc := newPrintUC(repo)

	_, err := uc.PrintLabel(context.Background(), companyA, idFlour, dto.PrintLabelRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "conexión perdida")
}

func TestPrintBulk_OrderAndTotals(t *testing.T) {
	uc := newPrintUC(newRepo())

	resp, err := uc.PrintBulk(context.Background(), companyA, dto.BulkPrintRequest{
		LPIDs:        []string{idRice, idFlour},
		PrintOptions: dto.PrintOptions{Copies: ip(3), IncludeQR: bp(false), LabelSize: sp("4x3")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"LP20251201-000124", "LP20251201-000123"}, resp.LPNumbers)
	assert.Equal(t, 2, resp.LabelCount)
	assert.Equal(t, 6, resp.TotalLabels)
	assert.Equal(t, "4x3", resp.LabelSize)
	assert.False(t, resp.IncludeQR)
	assert.Equal(t, "labels-20251201-143005.zpl", resp.DownloadFilename)

	blocks, err := label.SplitDocument(resp.ZPL)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "LP20251201-000124")
	assert.Contains(t, blocks[1], "LP20251201-000123")
	assert.NotContains(t, resp.ZPL, "^BQN")
}

func TestPrintBulk_CountCheckedBeforeIO(t *testing.T) {
	repo := newRepo()
	uc := newPrintUC(repo)

	_, err := uc.PrintBulk(context.Background(), companyA, dto.BulkPrintRequest{})
	assert.ErrorIs(t, err, label.ErrNoRecords)

	ids := make([]string, 101)
	for i := range ids {
		ids[i] = idFlour
	}
	_, err = uc.PrintBulk(context.Background(), companyA, dto.BulkPrintRequest{LPIDs: ids})
	assert.ErrorIs(t, err, label.ErrTooManyLabels)
	assert.Equal(t, 0, repo.calls)
}

func TestPrintBulk_DuplicateAndMissing(t *testing.T) {
	uc := newPrintUC(newRepo())

	_, err := uc.PrintBulk(context.Background(), companyA, dto.BulkPrintRequest{LPIDs: []string{idFlour, idFlour}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PrintBulk(context.Background(), companyA, dto.BulkPrintRequest{LPIDs: []string{idFlour, idOther}})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), idOther)
}

func TestValidateAndSizes(t *testing.T) {
	uc := newPrintUC(newRepo())

	resp, err := uc.Validate(dto.PrintOptions{LabelSize: sp("3x2"), Copies: ip(100)})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "3x2", resp.LabelSize)
	assert.Equal(t, 100, resp.Copies)

	_, err = uc.Validate(dto.PrintOptions{Copies: ip(0)})
	assert.ErrorIs(t, err, label.ErrInvalidCopies)

	sizes := uc.Sizes()
	require.Len(t, sizes, 3)
	assert.Equal(t, "4x6", sizes[0].Size)
	assert.Equal(t, 812, sizes[0].WidthDots)
	assert.Equal(t, 1218, sizes[0].HeightDots)
}

type fakePreview struct {
	got label.PrintConfig
	err error
}

func (f *fakePreview) GenerateLabelPreview(_ context.Context, _ *entity.LicensePlate, cfg label.PrintConfig) ([]byte, error) {
	f.got = cfg
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func TestPreview(t *testing.T) {
	fp := &fakePreview{}
	uc := NewPreviewUseCase(newRepo(), label.NewZPLGenerator(), fp, Defaults{Size: label.Size4x6, IncludeQR: true}, zerolog.New(io.Discard))

	pdf, name, err := uc.Preview(context.Background(), companyA, idFlour, "")
	require.NoError(t, err)
	assert.Equal(t, "LP20251201-000123-preview.pdf", name)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))
	assert.Equal(t, label.Size4x6, fp.got.Size)
	assert.Equal(t, 1, fp.got.Copies)

	_, _, err = uc.Preview(context.Background(), companyA, idFlour, "3x2")
	require.NoError(t, err)
	assert.Equal(t, label.Size3x2, fp.got.Size)

	_, _, err = uc.Preview(context.Background(), companyA, idFlour, "2x1")
	assert.ErrorIs(t, err, label.ErrInvalidSize)

	_, _, err = uc.Preview(context.Background(), companyA, idOther, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type fakePrinter struct {
	addr string
	sent string
	err  error
}

func (f *fakePrinter) Send(_ context.Context, addr, zpl string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.addr, f.sent = addr, zpl
	return len(zpl), nil
}

func TestDispatch_Send(t *testing.T) {
	fp := &fakePrinter{}
	uc := NewDispatchUseCase(fp, map[string]string{"dock-1": "10.0.0.5:9100", "dock-2": "10.0.0.6:9100"}, "dock-1", zerolog.New(io.Discard))
	uc.now = func() time.Time { return fixedNow }

	doc := "^XA\n^FO10,10^FDA^FS\n^XZ\n^XA\n^FO10,10^FDB^FS\n^XZ\n"

	resp, err := uc.Send(context.Background(), dto.PrintJobRequest{ZPL: doc})
	require.NoError(t, err)
	assert.Equal(t, "dock-1", resp.PrinterID)
	assert.Equal(t, 2, resp.Labels)
	assert.Equal(t, len(doc), resp.Bytes)
	assert.Equal(t, "10.0.0.5:9100", fp.addr)
	assert.Equal(t, doc, fp.sent)

	resp, err = uc.Send(context.Background(), dto.PrintJobRequest{ZPL: doc, PrinterID: "dock-2"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.6:9100", fp.addr)
	assert.Equal(t, fixedNow, resp.SentAt)
}

func TestDispatch_Errors(t *testing.T) {
	doc := "^XA\n^XZ\n"

	uc := NewDispatchUseCase(&fakePrinter{}, map[string]string{"dock-1": "10.0.0.5:9100"}, "", zerolog.New(io.Discard))
	_, err := uc.Send(context.Background(), dto.PrintJobRequest{ZPL: doc})
	assert.ErrorIs(t, err, domain.ErrPrinterNotConfigured)

	_, err = uc.Send(context.Background(), dto.PrintJobRequest{ZPL: doc, PrinterID: "unknown"})
	assert.ErrorIs(t, err, domain.ErrPrinterNotConfigured)

	_, err = uc.Send(context.Background(), dto.PrintJobRequest{ZPL: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Send(context.Background(), dto.PrintJobRequest{ZPL: "^XA\n^FDx^FS\n", PrinterID: "dock-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	offline := NewDispatchUseCase(&fakePrinter{err: domain.ErrPrinterOffline}, map[string]string{"dock-1": "x:9100"}, "dock-1", zerolog.New(io.Discard))
	_, err = offline.Send(context.Background(), dto.PrintJobRequest{ZPL: doc})
	assert.ErrorIs(t, err, domain.ErrPrinterOffline)
}
