package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneway-quote/core/cost"
	"oneway-quote/core/output"
	"oneway-quote/core/quote"
	"oneway-quote/core/types"
)

func newModel() (Model, *quote.Session) {
	s := quote.NewSession()
	m := New(s, cost.NewEngine(nil), output.NewCLIFormatter(output.DefaultMoney(), true), "OneWay media")
	m.now = func() time.Time { return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC) }
	return m, s
}

func keys(names ...string) []tea.KeyMsg {
	var out []tea.KeyMsg
	for _, n := range names {
		switch n {
		case "up":
			out = append(out, tea.KeyMsg{Type: tea.KeyUp})
		case "down":
			out = append(out, tea.KeyMsg{Type: tea.KeyDown})
		case "left":
			out = append(out, tea.KeyMsg{Type: tea.KeyLeft})
		case "right":
			out = append(out, tea.KeyMsg{Type: tea.KeyRight})
		case "enter":
			out = append(out, tea.KeyMsg{Type: tea.KeyEnter})
		case "space":
			out = append(out, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		case "backspace":
			out = append(out, tea.KeyMsg{Type: tea.KeyBackspace})
		case "delete":
			out = append(out, tea.KeyMsg{Type: tea.KeyDelete})
		case "ctrl+c":
			out = append(out, tea.KeyMsg{Type: tea.KeyCtrlC})
		case "ctrl+s":
			out = append(out, tea.KeyMsg{Type: tea.KeyCtrlS})
		default:
			out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(n)})
		}
	}
	return out
}

func press(t *testing.T, m Model, names ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys(names...) {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestCountSteps(t *testing.T) {
	m, s := newModel()

	m, _ = press(t, m, "right", "right", "+", "]", "-")
	assert.Equal(t, 12, s.Quantities().Uploads)

	m, _ = press(t, m, "[", "[", "left")
	assert.Equal(t, 0, s.Quantities().Uploads, "counts never go below zero")

	_, _ = press(t, m, "down", "down", "down", "]", "right")
	assert.Equal(t, 11, s.Quantities().Videos)
}

func TestLogoCycle(t *testing.T) {
	m, s := newModel()
	m, _ = press(t, m, "down", "down", "down", "down")
	require.Equal(t, fieldLogo, m.cursor)

	m, _ = press(t, m, "space")
	assert.Equal(t, types.LogoClientConcept, s.Logo())
	m, _ = press(t, m, "enter", "enter")
	assert.Equal(t, types.LogoNone, s.Logo())
	_, _ = press(t, m, "left")
	assert.Equal(t, types.LogoFullConcept, s.Logo())
}

func TestDiscountEditing(t *testing.T) {
	m, s := newModel()
	m.cursor = fieldDiscountValue

	m, _ = press(t, m, "right")
	assert.True(t, s.Discount().Value.IsZero(), "no value while the kind is none")

	m.cursor = fieldDiscountKind
	m, _ = press(t, m, "space", "down", "right", "right", "]")
	assert.Equal(t, types.DiscountNominal, s.Discount().Kind)
	assert.True(t, decimal.NewFromInt(120000).Equal(s.Discount().Value), s.Discount().Value.String())

	m, _ = press(t, m, "up", "space", "down", "right", "right")
	assert.Equal(t, types.DiscountPercent, s.Discount().Kind)
	assert.True(t, decimal.NewFromInt(2).Equal(s.Discount().Value), "kind change resets the value")

	_, _ = press(t, m, "[")
	assert.True(t, s.Discount().Value.IsZero())
}

func TestTextFields(t *testing.T) {
	m, s := newModel()
	m, _ = press(t, m, "up", "up", "A", "n", "d", "i", "space", "W", "q", "r", "backspace", "backspace")
	assert.Equal(t, fieldClient, m.cursor)
	assert.Equal(t, "Andi W", m.client)
	assert.Equal(t, "Andi W", s.Client())
	assert.False(t, m.Aborted(), "q types into text fields")

	m, _ = press(t, m, "enter", "T", "o", "k", "o", "space")
	assert.Equal(t, fieldShop, m.cursor)
	assert.Equal(t, "Toko", s.Shop())
	assert.Equal(t, "Toko ", m.shop)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m, _ = press(t, m, "space")
			continue
		}
		m, _ = press(t, m, string(r))
	}
	return m
}

func TestAddFee(t *testing.T) {
	m, s := newModel()
	m.cursor = fieldFeeLabel

	m = typeText(t, m, "Express 1 hari")
	m, _ = press(t, m, "enter")
	require.Equal(t, fieldFeeAmount, m.cursor)
	m = typeText(t, m, "50000")
	m, _ = press(t, m, "enter")

	fees := s.ExtraFees()
	require.Len(t, fees, 1)
	assert.Equal(t, "Express 1 hari", fees[0].Label)
	assert.True(t, decimal.NewFromInt(50000).Equal(fees[0].Amount))
	assert.Equal(t, fieldFeeLabel, m.cursor, "ready for the next fee")
	assert.Empty(t, m.feeLabel)
	assert.Empty(t, m.feeAmount)
	assert.Empty(t, m.feeErr)
	assert.Contains(t, m.View(), "Express 1 hari 50000 (1/1)")
}

func TestAddFeeRejectsEmptyLabel(t *testing.T) {
	m, s := newModel()
	m.cursor = fieldFeeAmount

	m = typeText(t, m, "5000")
	m, _ = press(t, m, "enter")
	assert.Empty(t, s.ExtraFees())
	assert.Equal(t, "fee label is required", m.feeErr)
	assert.Equal(t, fieldFeeAmount, m.cursor)
	assert.Equal(t, "5000", m.feeAmount, "rejected entry is kept for correction")
	assert.Contains(t, m.View(), "fee label is required")

	m, _ = press(t, m, "up")
	m = typeText(t, m, "Ongkir")
	m, _ = press(t, m, "enter", "enter")
	require.Len(t, s.ExtraFees(), 1)
	assert.Empty(t, m.feeErr)
	assert.NotContains(t, m.View(), "fee label is required")
}

func TestRemoveFee(t *testing.T) {
	m, s := newModel()
	for _, label := range []string{"Express", "Ongkir", "Revisi"} {
		_, err := s.AddExtraFee(label, "10000")
		require.NoError(t, err)
	}
	m.cursor = fieldFees

	m, _ = press(t, m, "right", "x")
	labels := func() []string {
		var out []string
		for _, f := range s.ExtraFees() {
			out = append(out, f.Label)
		}
		return out
	}
	assert.Equal(t, []string{"Express", "Revisi"}, labels())

	m, _ = press(t, m, "delete")
	assert.Equal(t, []string{"Express"}, labels(), "removing the last entry selects the previous one")
	assert.Equal(t, 0, m.feeSel)

	m, _ = press(t, m, "x", "x")
	assert.Empty(t, s.ExtraFees())
	assert.Contains(t, m.View(), "Daftar Biaya")

	m.cursor = fieldUploads
	_, err := s.AddExtraFee("Express", "10000")
	require.NoError(t, err)
	_, _ = press(t, m, "x")
	assert.Len(t, s.ExtraFees(), 1, "x only removes on the fee list")
}

func TestResetAndFinish(t *testing.T) {
	m, s := newModel()
	m, _ = press(t, m, "]", "]", "r")
	assert.Equal(t, 0, s.Quantities().Uploads)

	m, _ = press(t, m, "ctrl+s")
	assert.True(t, m.Done())

	m, _ = newModel()
	m.cursor = fieldDone
	m, cmd := press(t, m, "enter")
	assert.True(t, m.Done())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAbort(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m, _ := newModel()
		m, cmd := press(t, m, k)
		assert.True(t, m.Aborted(), k)
		assert.False(t, m.Done(), k)
		require.NotNil(t, cmd)
	}
}

func TestView(t *testing.T) {
	m, _ := newModel()
	m, _ = press(t, m, "]", "]", "]", "]", "]", "]", "]", "]", "]", "]", "right")

	view := m.View()
	assert.Contains(t, view, "TINJAUAN INVOICE")
	assert.Contains(t, view, "101 UNIT × Rp 2.500")
	assert.Contains(t, view, "Upload Produk")
	assert.Contains(t, view, "Lewati")
}
