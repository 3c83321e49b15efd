package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	pb "github.com/mortalmad92/cryptosearch/model/protobuf"
)

// ── styles ────────────────────────────────────────────────────────────────────

var (
	bullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641"))
	bearStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05c5c"))
	wickStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	sarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922"))
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#aaaaaa"))
	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e3b341"))
)

// ── messages ──────────────────────────────────────────────────────────────────

type updateMsg struct{ u *pb.Update }

// ── model ─────────────────────────────────────────────────────────────────────

type model struct {
	symbol   string
	exchange string
	interval string
	nKline   int // max candles drawn, window permitting
	ch       <-chan *pb.Update

	ticker     *pb.TickerSnapshot
	candles    []*pb.Candle
	indicators *pb.IndicatorSet
	available  []string

	width  int
	height int
}

func newModel(symbol, interval string, nKline int, ch <-chan *pb.Update) model {
	return model{
		symbol:   symbol,
		interval: interval,
		nKline:   nKline,
		ch:       ch,
	}
}

// ── Init / Update / View ──────────────────────────────────────────────────────

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.ch)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case updateMsg:
		m.apply(msg.u)
		return m, waitForUpdate(m.ch)
	}

	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "connecting…"
	}
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderChart())
	b.WriteString(m.renderIndicators())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

// ── helpers ───────────────────────────────────────────────────────────────────

// waitForUpdate blocks on the channel and returns a Cmd that fires updateMsg.
func waitForUpdate(ch <-chan *pb.Update) tea.Cmd {
	return func() tea.Msg {
		return updateMsg{<-ch}
	}
}

// apply merges a feed update into the model. Every message is a partial view:
// zero-valued fields mean "unchanged", a reset wipes the slate first.
func (m *model) apply(u *pb.Update) {
	if u.Reset_ {
		m.ticker = nil
		m.candles = nil
		m.indicators = nil
		m.available = nil
	}
	if u.Symbol != "" {
		m.symbol = u.Symbol
	}
	if u.Exchange != "" {
		m.exchange = u.Exchange
	}
	if u.Interval != "" {
		m.interval = u.Interval
	}
	if u.Ticker != nil {
		m.ticker = u.Ticker
	}
	if u.Candles != nil {
		m.candles = u.Candles
		m.indicators = u.Indicators
	}
	if u.Available != nil {
		m.available = u.Available
	}
}

// ── header ────────────────────────────────────────────────────────────────────

func (m model) renderHeader() string {
	base := fmt.Sprintf("%s  %s  %s", m.symbol, strings.ToUpper(m.exchange), m.interval)
	if m.ticker == nil {
		return headerStyle.Render(base + "  searching…")
	}
	t := m.ticker
	chgStyle := bullStyle
	if strings.HasPrefix(strings.TrimSpace(t.PriceChangePercent), "-") {
		chgStyle = bearStyle
	}
	return headerStyle.Render(fmt.Sprintf("%s  last:%s  ", base, t.LastPrice)) +
		chgStyle.Render(t.PriceChangePercent+"%") +
		headerStyle.Render(fmt.Sprintf("  24h H:%s L:%s V:%s  %d candles",
			t.HighPrice, t.LowPrice, t.Volume, len(m.candles)))
}

// ── chart ─────────────────────────────────────────────────────────────────────

const yAxisWidth = 11 // "  12345.67 │"

func (m model) renderChart() string {
	// Reserve: 1 header + chart rows + 1 x-axis + 1 time-label + 1 readout + 1 footer
	chartH := m.height - 5
	if chartH < 3 {
		chartH = 3
	}

	candles := m.candles
	chartW := m.width - yAxisWidth
	maxCols := chartW / 2 // each candle occupies 2 chars
	if maxCols < 1 {
		maxCols = 1
	}
	show := maxCols
	if m.nKline > 0 && m.nKline < show {
		show = m.nKline
	}
	if len(candles) > show {
		candles = candles[len(candles)-show:]
	}
	offset := len(m.candles) - len(candles)

	if len(candles) == 0 {
		// Keep the layout stable while history loads.
		var b strings.Builder
		empty := strings.Repeat(" ", yAxisWidth-1) + "│"
		for row := 0; row < chartH; row++ {
			b.WriteString(axisStyle.Render(empty))
			b.WriteByte('\n')
		}
		b.WriteString(axisStyle.Render(strings.Repeat("─", yAxisWidth)))
		b.WriteString("\n\n")
		return b.String()
	}

	// Price range across visible candles.
	hi, lo := priceRange(candles)
	if hi == lo {
		hi = lo + 1
	}

	// Build a 2-D grid: rows × cols of strings (each cell is one char, styled).
	cols := len(candles) * 2
	grid := make([][]string, chartH)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for i, c := range candles {
		renderCandle(grid, c, i*2, chartH, hi, lo)
	}
	m.overlaySAR(grid, offset, len(candles), chartH, hi, lo)

	// Render rows with Y-axis labels.
	var b strings.Builder
	for row := 0; row < chartH; row++ {
		price := rowToPrice(row, chartH, hi, lo)
		label := fmt.Sprintf("%9.2f │", price)
		b.WriteString(axisStyle.Render(label))
		b.WriteString(strings.Join(grid[row], ""))
		b.WriteByte('\n')
	}

	// X-axis separator.
	b.WriteString(axisStyle.Render(strings.Repeat("─", yAxisWidth+cols)))
	b.WriteByte('\n')

	// Time labels — one timestamp per ~10 candles, anchored under its column.
	b.WriteString(strings.Repeat(" ", yAxisWidth))
	b.WriteString(timeLabels(candles))
	b.WriteByte('\n')

	return b.String()
}

// renderCandle paints one candle into the grid at column x (0-indexed, 2 wide).
func renderCandle(grid [][]string, c *pb.Candle, x, chartH int, hi, lo float64) {
	bullish := c.Close >= c.Open
	style := bullStyle
	if !bullish {
		style = bearStyle
	}

	fH := float64(chartH)
	bodyTop := priceToRow(math.Max(c.Open, c.Close), fH, hi, lo)
	bodyBot := priceToRow(math.Min(c.Open, c.Close), fH, hi, lo)
	wickTop := priceToRow(c.High, fH, hi, lo)
	wickBot := priceToRow(c.Low, fH, hi, lo)

	for row := 0; row < chartH; row++ {
		inBody := row >= bodyTop && row <= bodyBot
		inWick := row >= wickTop && row <= wickBot

		var left, right string
		switch {
		case inBody:
			left = style.Render("█")
			right = style.Render("█")
		case inWick:
			left = wickStyle.Render("│")
			right = " "
		default:
			left = " "
			right = " "
		}

		if x < len(grid[row]) {
			grid[row][x] = left
		}
		if x+1 < len(grid[row]) {
			grid[row][x+1] = right
		}
	}
}

// overlaySAR drops a dot on each visible candle at its stop level. offset maps
// a visible column back to its index in the full series the indicators cover.
func (m model) overlaySAR(grid [][]string, offset, n, chartH int, hi, lo float64) {
	if m.indicators == nil {
		return
	}
	sar := m.indicators.Sar
	for i := 0; i < n; i++ {
		idx := offset + i
		if idx >= len(sar) || math.IsNaN(sar[idx]) {
			continue
		}
		row := priceToRow(sar[idx], float64(chartH), hi, lo)
		x := i * 2
		if grid[row][x] == " " {
			grid[row][x] = sarStyle.Render("·")
		} else if x+1 < len(grid[row]) && grid[row][x+1] == " " {
			grid[row][x+1] = sarStyle.Render("·")
		}
	}
}

// timeLabels lays "15:04" stamps into a fixed-width row so columns never drift.
func timeLabels(candles []*pb.Candle) string {
	row := make([]byte, len(candles)*2)
	for i := range row {
		row[i] = ' '
	}
	for i := 0; i < len(candles); i += 10 {
		label := time.UnixMilli(candles[i].Time).UTC().Format("15:04")
		pos := i * 2
		for j := 0; j < len(label) && pos+j < len(row); j++ {
			row[pos+j] = label[j]
		}
	}
	return string(row)
}

// ── readouts / footer ─────────────────────────────────────────────────────────

func (m model) renderIndicators() string {
	if m.indicators == nil {
		return readoutStyle.Render("indicators warming up…")
	}
	var parts []string
	add := func(name string, vals []float64) {
		if v, ok := lastDefined(vals); ok {
			parts = append(parts, fmt.Sprintf("%s %.2f", name, v))
		}
	}
	add("EMA", m.indicators.Ema)
	add("RSI", m.indicators.Rsi)
	add("K", m.indicators.K)
	add("D", m.indicators.D)
	add("J", m.indicators.J)
	add("SAR", m.indicators.Sar)
	if len(parts) == 0 {
		return readoutStyle.Render("indicators warming up…")
	}
	return readoutStyle.Render(strings.Join(parts, "   "))
}

func (m model) renderFooter() string {
	left := footerStyle.Render("[q] quit")
	if len(m.available) == 0 {
		return left
	}
	names := make([]string, 0, len(m.available))
	for _, ex := range m.available {
		if ex == m.exchange {
			names = append(names, activeStyle.Render(ex))
		} else {
			names = append(names, footerStyle.Render(ex))
		}
	}
	return left + footerStyle.Render("   available: ") + strings.Join(names, " ")
}

// lastDefined walks back to the newest value the warm-up has reached.
func lastDefined(vals []float64) (float64, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		if !math.IsNaN(vals[i]) {
			return vals[i], true
		}
	}
	return 0, false
}

// priceToRow converts a price to a grid row (0 = top = high).
func priceToRow(price, chartH float64, hi, lo float64) int {
	if hi == lo {
		return int(chartH) / 2
	}
	row := (hi - price) / (hi - lo) * (chartH - 1)
	r := int(math.Round(row))
	if r < 0 {
		r = 0
	}
	if r >= int(chartH) {
		r = int(chartH) - 1
	}
	return r
}

// rowToPrice is the inverse of priceToRow.
func rowToPrice(row, chartH int, hi, lo float64) float64 {
	if chartH <= 1 {
		return hi
	}
	return hi - float64(row)/float64(chartH-1)*(hi-lo)
}

// priceRange returns the overall high and low across the visible candles.
func priceRange(candles []*pb.Candle) (hi, lo float64) {
	hi = -math.MaxFloat64
	lo = math.MaxFloat64
	for _, c := range candles {
		if c.High > hi {
			hi = c.High
		}
		if c.Low < lo {
			lo = c.Low
		}
	}
	if hi == -math.MaxFloat64 {
		hi = 0
	}
	if lo == math.MaxFloat64 {
		lo = 0
	}
	return
}
