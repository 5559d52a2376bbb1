// Package render resolves semantic roles to terminal attributes and
// composites attributed lines onto a terminal surface.
package render

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/textgrid/config"
	"github.com/lixenwraith/textgrid/palette"
	"github.com/lixenwraith/textgrid/terminal"
)

// ANSI color indices, curses numbering.
const (
	colorBlack = iota
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
	colorWhite
)

// ansiPairEnd is one past the fixed 8x8 ANSI combination block. Dynamic
// pair allocation starts here.
const ansiPairEnd = 64

// gradientPairs is the size of the ordered gradient block: six brightness
// levels of a 3x3 down-sampled slice of the extended color cube.
const gradientPairs = 6 * 3 * 3

// AnsiPairIndex maps an (fg, bg) pair of ANSI colors to its canonical slot
// in the fixed combination block. (0, 0) maps to pair 0, the terminal
// default, which Init leaves undefined on purpose.
func AnsiPairIndex(fg, bg uint8) int {
	return int(fg)*8 + int(bg)
}

// pairColors remembers what a dynamically allocated pair was defined with,
// for the exhaustion fallback.
type pairColors struct {
	pair   int
	fg, bg int
}

// Styles maps every Role to resolved terminal attributes. The role table
// is rebuilt wholesale on every (re)configuration and swapped in as one
// atomic snapshot; renders racing a reload see either the old table or the
// new one, never a mix.
type Styles struct {
	surf  terminal.Surface
	table *palette.Table

	roles atomic.Pointer[[roleCount]terminal.Style]

	mu            sync.Mutex
	pairNext      int
	dynamic       []pairColors
	defaultColors bool

	gradientBase  int
	gradientCount int
}

// NewStyles creates an uninitialized role palette. Call Init before
// rendering.
func NewStyles(surf terminal.Surface, table *palette.Table) *Styles {
	return &Styles{surf: surf, table: table}
}

// Init allocates the fixed color-pair blocks for the terminal's
// capability tier and builds the first role table.
//
// With color support, the 8x8 ANSI combination block occupies the fixed
// low pair slots ((0,0) stays the default pair). On 256-color terminals a
// second block is reserved for an ordered gradient over a down-sampled
// slice of the extended color cube, foreground only.
func (s *Styles) Init(cfg config.Config) {
	base := ansiPairEnd

	if s.surf.SupportsColor() {
		for fg := 0; fg < 8; fg++ {
			for bg := 0; bg < 8; bg++ {
				if fg == 0 && bg == 0 {
					continue
				}
				s.surf.SetPair(AnsiPairIndex(uint8(fg), uint8(bg)), fg, bg)
			}
		}

		if s.surf.MaxColors() >= 256 && s.surf.MaxColorPairs() >= ansiPairEnd+gradientPairs {
			bg := colorBlack
			if cfg.DefaultColors {
				bg = -1
			}
			s.gradientBase = base
			for z := 0; z < 6; z++ {
				for x := 1; x < 6; x += 2 {
					for y := 1; y < 6; y += 2 {
						fg := 16 + x + y*6 + z*36
						s.surf.SetPair(base, fg, bg)
						base++
					}
				}
			}
			s.gradientCount = base - s.gradientBase
		}
	}

	s.mu.Lock()
	s.pairNext = base
	s.dynamic = nil
	s.mu.Unlock()

	s.Reload(cfg)
}

// Reload rebuilds the role table from scratch under the given
// configuration and publishes it atomically. Pair slots consumed by
// earlier tables are never reclaimed.
func (s *Styles) Reload(cfg config.Config) {
	s.mu.Lock()
	s.defaultColors = cfg.DefaultColors
	s.mu.Unlock()

	pair := func(fg, bg int) terminal.Style {
		if !s.surf.SupportsColor() {
			return terminal.Style{}
		}
		return terminal.Style{Pair: s.allocPair(fg, bg)}
	}
	bold := func(st terminal.Style) terminal.Style {
		st.Attr |= terminal.AttrBold
		return st
	}

	var roles [roleCount]terminal.Style

	roles[RoleText] = pair(colorWhite, colorBlack)
	if cfg.DimText {
		roles[RoleText].Attr |= terminal.AttrDim
	}
	roles[RoleAltRow] = bold(roles[RoleText])
	roles[RoleHidden] = pair(colorYellow, colorBlack)
	roles[RoleSearch] = terminal.Style{Attr: terminal.AttrReverse}
	roles[RoleOK] = bold(pair(colorGreen, colorBlack))
	roles[RoleWarning] = bold(pair(colorYellow, colorBlack))
	roles[RoleError] = bold(pair(colorRed, colorBlack))

	roles[RoleStatus] = pair(colorBlack, colorWhite)
	roles[RoleWarnStatus] = bold(pair(colorYellow, colorWhite))
	roles[RoleAlertStatus] = bold(pair(colorRed, colorWhite))
	roles[RoleActiveStatus] = pair(colorGreen, colorWhite)
	roles[RoleActiveStatus2] = bold(pair(colorGreen, colorWhite))
	roles[RoleBoldStatus] = bold(pair(colorBlack, colorWhite))
	roles[RoleViewStatus] = bold(pair(colorWhite, colorBlue))

	// Inactive status goes through the color matcher rather than a direct
	// terminal color.
	fg, _ := s.table.Parse("White")
	bg, _ := s.table.Parse("Grey37")
	roles[RoleInactiveStatus] = terminal.Style{Pair: s.EnsurePair(fg, bg)}

	roles[RolePopup] = bold(pair(colorWhite, colorCyan))

	roles[RoleKeyword] = pair(colorBlue, colorBlack)
	roles[RoleString] = bold(pair(colorGreen, colorBlack))
	roles[RoleComment] = pair(colorGreen, colorBlack)
	roles[RoleVariable] = pair(colorCyan, colorBlack)
	roles[RoleSymbol] = pair(colorMagenta, colorBlack)
	roles[RoleFile] = pair(colorBlue, colorBlack)

	roles[RoleDiffDelete] = pair(colorRed, colorBlack)
	roles[RoleDiffAdd] = pair(colorGreen, colorBlack)
	roles[RoleDiffSection] = pair(colorMagenta, colorBlack)

	roles[RoleLowThreshold] = pair(colorBlack, colorGreen)
	roles[RoleMedThreshold] = pair(colorBlack, colorYellow)
	roles[RoleHighThreshold] = pair(colorBlack, colorRed)

	s.roles.Store(&roles)
}

// RoleAttrs returns the resolved attributes for a role from the current
// snapshot.
func (s *Styles) RoleAttrs(r Role) terminal.Style {
	roles := s.roles.Load()
	if roles == nil || r >= roleCount {
		return terminal.Style{}
	}
	return roles[r]
}

// EnsurePair resolves both colors onto the reference palette and returns a
// color pair displaying them. An empty background resolves to black.
func (s *Styles) EnsurePair(fg, bg palette.RGB) int {
	f := int(s.table.Nearest(fg))
	b := colorBlack
	if !bg.Empty() {
		b = int(s.table.Nearest(bg))
	}
	return s.allocPair(f, b)
}

// allocPair hands out pair slots monotonically; slots are never freed or
// reused within a process. On terminals whose pair table is no larger
// than the ANSI block, colors degrade to the fixed combination block
// untouched; only dynamic allocations substitute the terminal defaults
// for white-on-black under the default-colors configuration. When the
// table is exhausted, the perceptually nearest already-allocated pair is
// returned instead of overflowing.
func (s *Styles) allocPair(fg, bg int) int {
	if !s.surf.SupportsColor() {
		return 0
	}
	if s.surf.MaxColorPairs() <= ansiPairEnd {
		return AnsiPairIndex(uint8(fg&7), uint8(bg&7))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.defaultColors {
		if fg == colorWhite {
			fg = -1
		}
		if bg == colorBlack {
			bg = -1
		}
	}

	if s.pairNext >= s.surf.MaxColorPairs() {
		return s.nearestAllocatedLocked(fg, bg)
	}

	p := s.pairNext
	s.pairNext++
	s.surf.SetPair(p, fg, bg)
	s.dynamic = append(s.dynamic, pairColors{pair: p, fg: fg, bg: bg})
	return p
}

// nearestAllocatedLocked finds the allocated pair whose colors are closest
// to the request, comparing foreground and background in Lab space.
func (s *Styles) nearestAllocatedLocked(fg, bg int) int {
	if len(s.dynamic) == 0 {
		return 0
	}
	wantFg, wantBg := s.colorLab(fg, colorWhite), s.colorLab(bg, colorBlack)

	best := s.dynamic[0].pair
	bestDelta := -1.0
	for _, pc := range s.dynamic {
		delta := wantFg.DeltaE(s.colorLab(pc.fg, colorWhite)) +
			wantBg.DeltaE(s.colorLab(pc.bg, colorBlack))
		if bestDelta < 0 || delta < bestDelta {
			best = pc.pair
			bestDelta = delta
		}
	}
	return best
}

// colorLab returns the Lab form of a palette index, substituting fallback
// for the -1 terminal default.
func (s *Styles) colorLab(idx, fallback int) palette.Lab {
	if idx < 0 {
		idx = fallback
	}
	return s.table.Entry(idx & 0xff).Lab
}

// GradientPair returns the i-th pair of the ordered color-cube gradient
// block, clamped to the block. Returns the default pair when no gradient
// block was allocated.
func (s *Styles) GradientPair(i int) int {
	if s.gradientCount == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= s.gradientCount {
		i = s.gradientCount - 1
	}
	return s.gradientBase + i
}

// GradientSize returns the number of pairs in the gradient block.
func (s *Styles) GradientSize() int {
	return s.gradientCount
}
