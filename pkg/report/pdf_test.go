package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSnapshot(t *testing.T, sales []entity.SaleRecord, totals entity.Totals) *Document {
	t.Helper()

	doc, err := NewRenderer().Render(entity.NewReportSnapshot(sales, totals))
	require.NoError(t, err)
	require.NotEmpty(t, doc.Bytes)
	return doc
}

func TestRenderEmptySnapshot(t *testing.T) {
	doc := renderSnapshot(t, nil, entity.Totals{})

	assert.Equal(t, 1, doc.Pages)
	assert.Equal(t, []byte("%PDF"), doc.Bytes[:4])
}

func TestRenderSingleSale(t *testing.T) {
	sales := []entity.SaleRecord{
		{ID: 1, ProductName: "Monster Energy", Value: "R$ 12,00", PaymentMethod: "Dinheiro", Date: "01/09/2026"},
	}
	totals := entity.Totals{
		General:  money.FromFloat(12),
		Dinheiro: money.FromFloat(12),
	}

	doc := renderSnapshot(t, sales, totals)
	assert.Equal(t, 1, doc.Pages)
}

func TestRenderPaginatesLongLedgers(t *testing.T) {
	var sales []entity.SaleRecord
	general := money.Zero()
	for i := 0; i < 40; i++ {
		sales = append(sales, entity.SaleRecord{
			ID:            uint64(i + 1),
			ProductName:   fmt.Sprintf("Produto %d", i+1),
			Value:         "R$ 3,00",
			PaymentMethod: "Pix",
			Date:          "01/09/2026",
		})
		general = general.Add(money.FromFloat(3))
	}
	totals := entity.Totals{General: general, Pix: general}

	doc := renderSnapshot(t, sales, totals)

	// First page holds the summary plus the first handful of entries at
	// 20mm each; 40 entries must spill onto further pages.
	assert.Greater(t, doc.Pages, 1)
}

func TestRenderStampsFooterWithFinalPageCount(t *testing.T) {
	var sales []entity.SaleRecord
	for i := 0; i < 40; i++ {
		sales = append(sales, entity.SaleRecord{
			ID:            uint64(i + 1),
			ProductName:   fmt.Sprintf("Produto %d", i+1),
			Value:         "R$ 3,00",
			PaymentMethod: "Pix",
			Date:          "01/09/2026",
		})
	}

	r := NewRenderer()
	r.uncompressed = true
	doc, err := r.Render(entity.NewReportSnapshot(sales, entity.Totals{}))
	require.NoError(t, err)
	require.Greater(t, doc.Pages, 1)

	// The text is written through the cp1252 translator, so the accented
	// byte appears literally in the uncompressed content streams.
	for page := 1; page <= doc.Pages; page++ {
		stamp := fmt.Sprintf("P\xe1gina %d de %d", page, doc.Pages)
		assert.True(t, bytes.Contains(doc.Bytes, []byte(stamp)),
			"page %d of %d missing its footer stamp", page, doc.Pages)
	}

	// One stamp per page and none carrying a stale total.
	assert.Equal(t, doc.Pages, bytes.Count(doc.Bytes, []byte("P\xe1gina ")))
}

func TestRenderFilenameCarriesDate(t *testing.T) {
	snap := entity.NewReportSnapshot(nil, entity.Totals{})
	doc, err := NewRenderer().Render(snap)
	require.NoError(t, err)

	expected := fmt.Sprintf("relatorio-vendas-%s.pdf", snap.GeneratedAt.Format("2006-01-02"))
	assert.Equal(t, expected, doc.Filename)
}

func TestRenderMorePagesForLongerLedgers(t *testing.T) {
	build := func(n int) *Document {
		var sales []entity.SaleRecord
		for i := 0; i < n; i++ {
			sales = append(sales, entity.SaleRecord{
				ID:            uint64(i + 1),
				ProductName:   "Água",
				Value:         "R$ 3,00",
				PaymentMethod: "Dinheiro",
				Date:          "01/09/2026",
			})
		}
		return renderSnapshot(t, sales, entity.Totals{})
	}

	short := build(2)
	long := build(100)

	assert.Equal(t, 1, short.Pages)
	assert.Greater(t, long.Pages, short.Pages)
}
