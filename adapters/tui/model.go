// Package tui is the interactive quote form. The left pane edits a
// quote.Session field by field, the right pane is the live invoice preview.
package tui

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"oneway-quote/core/catalog"
	"oneway-quote/core/cost"
	"oneway-quote/core/output"
	"oneway-quote/core/quote"
	"oneway-quote/core/types"
	"oneway-quote/internal/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("57"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// field identifies a form row
type field int

const (
	fieldClient field = iota
	fieldShop
	fieldUploads
	fieldPhotos
	fieldBanners
	fieldVideos
	fieldLogo
	fieldDiscountKind
	fieldDiscountValue
	fieldFeeLabel
	fieldFeeAmount
	fieldFees
	fieldDone
	fieldCount // sentinel, must stay last
)

const (
	smallStep   = 1
	largeStep   = 10
	nominalStep = 10000
	percentStep = 1
)

// Model is the bubbletea model for the quote form
type Model struct {
	session  *quote.Session
	engine   *cost.Engine
	preview  *output.CLIFormatter
	business string
	now      func() time.Time

	// client and shop keep untrimmed input so spaces can be typed
	client string
	shop   string

	// pending fee entry; feeErr is the last rejection shown under it
	feeLabel  string
	feeAmount string
	feeErr    string
	feeSel    int

	cursor  field
	done    bool
	aborted bool
}

// New returns a form editing s
func New(s *quote.Session, engine *cost.Engine, preview *output.CLIFormatter, business string) Model {
	return Model{
		session:  s,
		engine:   engine,
		preview:  preview,
		business: business,
		now:      time.Now,
		client:   s.Client(),
		shop:     s.Shop(),
		cursor:   fieldUploads,
	}
}

// Done reports whether the user finished the form
func (m Model) Done() bool { return m.done }

// Aborted reports whether the user quit without finishing
func (m Model) Aborted() bool { return m.aborted }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "ctrl+s":
		m.done = true
		return m, tea.Quit
	case "up", "shift+tab":
		m.cursor = (m.cursor - 1 + fieldCount) % fieldCount
		return m, nil
	case "down", "tab":
		m.cursor = (m.cursor + 1) % fieldCount
		return m, nil
	}

	if m.cursor.isText() {
		m.editText(key)
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "r":
		m.session.Reset()
		m.client, m.shop = "", ""
		m.feeLabel, m.feeAmount, m.feeErr, m.feeSel = "", "", "", 0
	case "x", "delete":
		if m.cursor == fieldFees {
			m.removeFee()
		}
	case "left", "-":
		m.step(-1, false)
	case "right", "+", "=":
		m.step(1, false)
	case "[":
		m.step(-1, true)
	case "]":
		m.step(1, true)
	case " ", "enter":
		if m.cursor == fieldDone {
			m.done = true
			return m, tea.Quit
		}
		m.cycle(1)
	}
	return m, nil
}

func (f field) isText() bool {
	switch f {
	case fieldClient, fieldShop, fieldFeeLabel, fieldFeeAmount:
		return true
	}
	return false
}

func (m *Model) editText(key tea.KeyMsg) {
	var target *string
	switch m.cursor {
	case fieldClient:
		target = &m.client
	case fieldShop:
		target = &m.shop
	case fieldFeeLabel:
		target = &m.feeLabel
	default:
		target = &m.feeAmount
	}

	switch key.Type {
	case tea.KeyRunes:
		*target += string(key.Runes)
	case tea.KeySpace:
		*target += " "
	case tea.KeyBackspace:
		if r := []rune(*target); len(r) > 0 {
			*target = string(r[:len(r)-1])
		}
	case tea.KeyEnter:
		if m.cursor == fieldFeeAmount {
			m.addFee()
			return
		}
		m.cursor++
		return
	}

	m.session.SetClient(m.client)
	m.session.SetShop(m.shop)
}

// addFee submits the pending entry. A rejected entry stays in place with
// the reason shown inline.
func (m *Model) addFee() {
	if _, err := m.session.AddExtraFee(m.feeLabel, m.feeAmount); err != nil {
		m.feeErr = errorMessage(err)
		return
	}
	m.feeLabel, m.feeAmount, m.feeErr = "", "", ""
	m.feeSel = len(m.session.ExtraFees()) - 1
	m.cursor = fieldFeeLabel
}

func (m *Model) removeFee() {
	fees := m.session.ExtraFees()
	if len(fees) == 0 {
		return
	}
	if m.feeSel >= len(fees) {
		m.feeSel = len(fees) - 1
	}
	m.session.RemoveExtraFee(fees[m.feeSel].ID)
	if m.feeSel >= len(fees)-1 && m.feeSel > 0 {
		m.feeSel--
	}
}

func errorMessage(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// step moves the selected value by one unit in dir; large uses the
// bulk step for counts.
func (m *Model) step(dir int, large bool) {
	n := smallStep
	if large {
		n = largeStep
	}
	q := m.session.Quantities()

	switch m.cursor {
	case fieldUploads:
		m.session.SetUploads(q.Uploads + dir*n)
	case fieldPhotos:
		m.session.SetPhotos(q.Photos + dir*n)
	case fieldBanners:
		m.session.SetBanners(q.Banners + dir*n)
	case fieldVideos:
		m.session.SetVideos(q.Videos + dir*n)
	case fieldLogo, fieldDiscountKind:
		m.cycle(dir)
	case fieldFees:
		if n := len(m.session.ExtraFees()); n > 0 {
			m.feeSel = (m.feeSel + dir + n) % n
		}
	case fieldDiscountValue:
		d := m.session.Discount()
		var unit int64
		switch d.Kind {
		case types.DiscountNominal:
			unit = nominalStep
		case types.DiscountPercent:
			unit = percentStep
		default:
			return
		}
		if large {
			unit *= largeStep
		}
		m.session.SetDiscountValue(d.Value.Add(decimal.NewFromInt(unit * int64(dir))))
	}
}

// cycle rotates the logo option or discount kind
func (m *Model) cycle(dir int) {
	switch m.cursor {
	case fieldLogo:
		m.session.SetLogo(rotate(types.LogoSelections, m.session.Logo(), dir))
	case fieldDiscountKind:
		m.session.SetDiscountKind(rotate(types.DiscountKinds, m.session.Discount().Kind, dir))
	}
}

func rotate[T comparable](options []T, current T, dir int) T {
	for i, opt := range options {
		if opt == current {
			return options[(i+dir+len(options))%len(options)]
		}
	}
	return options[0]
}

// View implements tea.Model
func (m Model) View() string {
	doc := output.NewDocument(m.business, m.session, m.engine, m.now())
	form := m.renderForm()
	return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", m.preview.Preview(doc)) + "\n" +
		helpStyle.Render("↑/↓ pilih  ←/→ ubah  [/] ±10  spasi ganti  enter tambah biaya  x hapus biaya  r reset  ctrl+s selesai  q keluar") + "\n"
}

func (m Model) renderForm() string {
	cat := m.engine.Catalog()
	q := m.session.Quantities()
	d := m.session.Discount()

	rows := []struct {
		label string
		value string
	}{
		fieldClient:        {"Nama Klien", m.client},
		fieldShop:          {"Nama Toko", m.shop},
		fieldUploads:       {cat.MustService(catalog.ServiceUpload).Label, fmt.Sprint(q.Uploads)},
		fieldPhotos:        {cat.MustService(catalog.ServicePhoto).Label, fmt.Sprint(q.Photos)},
		fieldBanners:       {cat.MustService(catalog.ServiceBanner).Label, fmt.Sprint(q.Banners)},
		fieldVideos:        {cat.MustService(catalog.ServiceVideo).Label, fmt.Sprint(q.Videos)},
		fieldLogo:          {"Logo", m.logoOption()},
		fieldDiscountKind:  {"Diskon", discountLabel(d.Kind)},
		fieldDiscountValue: {"Nilai Diskon", discountValue(d)},
		fieldFeeLabel:      {"Biaya Tambahan", m.feeLabel},
		fieldFeeAmount:     {"Nominal Biaya", m.feeAmount},
		fieldFees:          {"Daftar Biaya", m.feeList()},
		fieldDone:          {"", "[ Selesai ]"},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.business))
	sb.WriteString("\n\n")
	for i, row := range rows {
		prefix := "  "
		value := row.value
		if field(i) == m.cursor {
			prefix = cursorStyle.Render("> ")
			value = cursorStyle.Render(value)
		}
		sb.WriteString(prefix + labelStyle.Render(row.label) + value + "\n")
		if field(i) == fieldFeeAmount && m.feeErr != "" {
			sb.WriteString("  " + labelStyle.Render("") + errorStyle.Render(m.feeErr) + "\n")
		}
	}
	return sb.String()
}

// feeList shows the selected fee and its position, e.g. "Express 50000 (1/2)"
func (m Model) feeList() string {
	fees := m.session.ExtraFees()
	if len(fees) == 0 {
		return "-"
	}
	sel := m.feeSel
	if sel >= len(fees) {
		sel = len(fees) - 1
	}
	fee := fees[sel]
	return fmt.Sprintf("%s %s (%d/%d)", fee.Label, fee.Amount.String(), sel+1, len(fees))
}

func (m Model) logoOption() string {
	entry, ok := m.engine.Catalog().Logo(m.session.Logo())
	if !ok {
		return m.session.Logo().String()
	}
	return entry.Option
}

func discountLabel(k types.DiscountKind) string {
	switch k {
	case types.DiscountNominal:
		return "Nominal (Rp)"
	case types.DiscountPercent:
		return "Persen (%)"
	default:
		return "Tanpa Diskon"
	}
}

func discountValue(d types.DiscountConfig) string {
	switch d.Kind {
	case types.DiscountNominal:
		return d.Value.String()
	case types.DiscountPercent:
		return d.Value.String() + "%"
	default:
		return "-"
	}
}
