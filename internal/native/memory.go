package native

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// MemorySession is a pure-Go Session that models libxosd's observable
// behavior without touching an X server. It backs the test suite and the
// CLI's dry-run mode, so it mirrors the real library's quirks: Hide fails
// when nothing is mapped, Show fails when already mapped, colour lookups
// fail for unknown names, and Uninit is single-shot.
//
// Colour names resolve through the SVG palette in x/image/colornames, which
// matches X11's rgb.txt for almost every name ("green" being the notorious
// divergence). Resolved 8-bit channels are widened to the 16-bit range the
// X server reports, by multiplying with 257.
type MemorySession struct {
	maxLines int
	content  []string
	onscreen bool
	uninited bool
	lastErr  string

	colour      [3]int // 16 bit per channel
	colourName  string
	shadowName  string
	outlineName string
	font        string

	timeout    int
	barLength  int
	pos, align int

	shadowOffset, outlineOffset int
	horizontalOff, verticalOff  int

	uninitCalls int
	failNext    string
}

// NewMemorySession creates a simulated session with the given line count.
// The caller must ensure lines >= 1, matching the contract of Create.
func NewMemorySession(lines int) *MemorySession {
	r, g, b, _ := resolveColour(DefaultColourName)
	return &MemorySession{
		maxLines:   lines,
		content:    make([]string, lines),
		colour:     [3]int{r, g, b},
		colourName: DefaultColourName,
		font:       DefaultFontName,
		barLength:  -1,
		pos:        PosTop,
		align:      AlignLeft,
	}
}

// FailNext makes the next session call fail with the given message. Tests
// use it to exercise native-error translation.
func (m *MemorySession) FailNext(msg string) {
	m.failNext = msg
}

// UninitCalls reports how many times Uninit has been invoked.
func (m *MemorySession) UninitCalls() int {
	return m.uninitCalls
}

// Content returns a copy of the currently displayed lines.
func (m *MemorySession) Content() []string {
	out := make([]string, len(m.content))
	copy(out, m.content)
	return out
}

// Timeout returns the configured display timeout in seconds.
func (m *MemorySession) Timeout() int { return m.timeout }

// BarLength returns the configured bar length, -1 meaning library default.
func (m *MemorySession) BarLength() int { return m.barLength }

// Font returns the configured font name.
func (m *MemorySession) Font() string { return m.font }

// fail records an error message and returns -1.
func (m *MemorySession) fail(msg string) int {
	m.lastErr = msg
	return -1
}

// gate handles the destroyed state and injected failures common to every
// call. It returns false when the call must fail.
func (m *MemorySession) gate() bool {
	if m.uninited {
		m.lastErr = "xosd window already destroyed"
		return false
	}
	if m.failNext != "" {
		m.lastErr = m.failNext
		m.failNext = ""
		return false
	}
	return true
}

func resolveColour(name string) (r, g, b int, ok bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return 0, 0, 0, false
	}
	return int(c.R) * 257, int(c.G) * 257, int(c.B) * 257, true
}

func (m *MemorySession) DisplayString(line int, text string) int {
	if !m.gate() {
		return -1
	}
	if line < 0 || line >= m.maxLines {
		return m.fail(fmt.Sprintf("xosd_display: line %d out of range", line))
	}
	m.content[line] = text
	m.onscreen = true
	return len(text)
}

func (m *MemorySession) DisplayPercentage(line, percent int) int {
	if !m.gate() {
		return -1
	}
	if line < 0 || line >= m.maxLines {
		return m.fail(fmt.Sprintf("xosd_display: line %d out of range", line))
	}
	m.content[line] = fmt.Sprintf("percentage(%d)", percent)
	m.onscreen = true
	return percent
}

func (m *MemorySession) DisplaySlider(line, percent int) int {
	if !m.gate() {
		return -1
	}
	if line < 0 || line >= m.maxLines {
		return m.fail(fmt.Sprintf("xosd_display: line %d out of range", line))
	}
	m.content[line] = fmt.Sprintf("slider(%d)", percent)
	m.onscreen = true
	return percent
}

func (m *MemorySession) SetBarLength(length int) int {
	if !m.gate() {
		return -1
	}
	m.barLength = length
	return 0
}

func (m *MemorySession) IsOnscreen() int {
	if !m.gate() {
		return -1
	}
	if m.onscreen {
		return 1
	}
	return 0
}

// WaitUntilNoDisplay returns once nothing is displayed. The simulation has
// no clock, so the timeout elapses immediately.
func (m *MemorySession) WaitUntilNoDisplay() int {
	if !m.gate() {
		return -1
	}
	m.onscreen = false
	return 0
}

func (m *MemorySession) Show() int {
	if !m.gate() {
		return -1
	}
	if m.onscreen {
		return m.fail("xosd_show: already mapped")
	}
	m.onscreen = true
	return 0
}

func (m *MemorySession) Hide() int {
	if !m.gate() {
		return -1
	}
	if !m.onscreen {
		return m.fail("xosd_hide: not mapped")
	}
	m.onscreen = false
	return 0
}

func (m *MemorySession) SetPos(pos int) int {
	if !m.gate() {
		return -1
	}
	if pos < PosTop || pos > PosMiddle {
		return m.fail(fmt.Sprintf("xosd_set_pos: invalid position %d", pos))
	}
	m.pos = pos
	return 0
}

func (m *MemorySession) SetAlign(align int) int {
	if !m.gate() {
		return -1
	}
	if align < AlignLeft || align > AlignRight {
		return m.fail(fmt.Sprintf("xosd_set_align: invalid alignment %d", align))
	}
	m.align = align
	return 0
}

func (m *MemorySession) SetShadowOffset(px int) int {
	if !m.gate() {
		return -1
	}
	m.shadowOffset = px
	return 0
}

func (m *MemorySession) SetOutlineOffset(px int) int {
	if !m.gate() {
		return -1
	}
	m.outlineOffset = px
	return 0
}

func (m *MemorySession) SetHorizontalOffset(px int) int {
	if !m.gate() {
		return -1
	}
	m.horizontalOff = px
	return 0
}

func (m *MemorySession) SetVerticalOffset(px int) int {
	if !m.gate() {
		return -1
	}
	m.verticalOff = px
	return 0
}

func (m *MemorySession) SetColour(name string) int {
	if !m.gate() {
		return -1
	}
	r, g, b, ok := resolveColour(name)
	if !ok {
		return m.fail(fmt.Sprintf("xosd_set_colour: cannot find colour %q", name))
	}
	m.colour = [3]int{r, g, b}
	m.colourName = name
	return 0
}

func (m *MemorySession) SetShadowColour(name string) int {
	if !m.gate() {
		return -1
	}
	if _, _, _, ok := resolveColour(name); !ok {
		return m.fail(fmt.Sprintf("xosd_set_shadow_colour: cannot find colour %q", name))
	}
	m.shadowName = name
	return 0
}

func (m *MemorySession) SetOutlineColour(name string) int {
	if !m.gate() {
		return -1
	}
	if _, _, _, ok := resolveColour(name); !ok {
		return m.fail(fmt.Sprintf("xosd_set_outline_colour: cannot find colour %q", name))
	}
	m.outlineName = name
	return 0
}

func (m *MemorySession) SetFont(name string) int {
	if !m.gate() {
		return -1
	}
	if name == "" {
		return m.fail("xosd_set_font: empty font name")
	}
	m.font = name
	return 0
}

func (m *MemorySession) SetTimeout(seconds int) int {
	if !m.gate() {
		return -1
	}
	m.timeout = seconds
	return 0
}

func (m *MemorySession) Colour() (red, green, blue int, rc int) {
	if !m.gate() {
		return 0, 0, 0, -1
	}
	return m.colour[0], m.colour[1], m.colour[2], 0
}

func (m *MemorySession) Scroll(lines int) int {
	if !m.gate() {
		return -1
	}
	if lines <= 0 || lines > m.maxLines {
		return m.fail(fmt.Sprintf("xosd_scroll: invalid line count %d", lines))
	}
	copy(m.content, m.content[lines:])
	for i := m.maxLines - lines; i < m.maxLines; i++ {
		m.content[i] = ""
	}
	return 0
}

func (m *MemorySession) NumberLines() int {
	if !m.gate() {
		return -1
	}
	return m.maxLines
}

func (m *MemorySession) Uninit() int {
	m.uninitCalls++
	if m.uninited {
		m.lastErr = "xosd window already destroyed"
		return -1
	}
	if m.failNext != "" {
		m.lastErr = m.failNext
		m.failNext = ""
		return -1
	}
	m.uninited = true
	return 0
}

func (m *MemorySession) LastError() string {
	return m.lastErr
}
