package glassdesk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glassdesk/internal/config"
	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/project"
	"glassdesk/internal/domain/registry"
	"glassdesk/pkg/logger"
)

type memStore struct{ items []project.Item }

func (s *memStore) Save(it project.Item) error {
	s.items = append(s.items, it)
	return nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.Load(), logger.Nop())
	require.NoError(t, err)
	return e
}

func TestEngine_DocumentLifecycle(t *testing.T) {
	e := newTestEngine(t)

	c := e.NewDocument(registry.TypeInvoice, project.Context{
		Client:       "Δήμος Ρόδου",
		ProjectTitle: "Αντικατάσταση υαλοπινάκων δημαρχείου",
	})

	d := c.Document()
	assert.Equal(t, "Εταιρεία Μου ΑΕ", d.Company.Name, "company block comes from config")
	assert.Equal(t, "Δήμος Ρόδου", d.Client.Name)
	assert.NotEmpty(t, d.Number)

	c.SetItemDescription(1, "Τζάμι ασφαλείας 8mm")
	require.NoError(t, c.SetItemQuantity(1, types.NewMoneyFromInt(2)))
	require.NoError(t, c.SetItemUnitPrice(1, types.MustMoney("100")))

	res, err := e.ExportPDF(context.Background(), c.Snapshot())
	require.NoError(t, err)
	assert.NotEmpty(t, res.PDF)
	assert.Contains(t, res.Filename, "Δήμος_Ρόδου")

	store := &memStore{}
	it, err := e.Finish(c.Snapshot(), store)
	require.NoError(t, err)
	assert.Equal(t, "Εκδόθηκε", it.Stage)
	assert.Len(t, store.items, 1)
}

func TestEngine_IndependentControllers(t *testing.T) {
	e := newTestEngine(t)

	a := e.NewDocument(registry.TypeQuote, project.Context{Client: "Πελάτης Α"})
	b := e.NewDocument(registry.TypeInvoice, project.Context{Client: "Πελάτης Β"})

	require.NoError(t, a.SetItemQuantity(1, types.NewMoneyFromInt(5)))
	require.NoError(t, a.SetItemUnitPrice(1, types.MustMoney("10")))

	assert.True(t, a.Document().Total.Equal(types.MustMoney("50")))
	assert.True(t, b.Document().Total.IsZero(), "documents are edited in isolation")
}

func TestEngine_PrintView(t *testing.T) {
	e := newTestEngine(t)

	c := e.NewDocument(registry.TypeQuote, project.Context{Client: "Πελάτης Α"})
	rep, err := e.PrintView(context.Background(), c.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(rep.Bytes()), "Προσφορά")
}
