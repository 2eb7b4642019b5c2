package arena

import (
	"fmt"
	"sort"
	"strings"

	"dungeon-crawl/internal/component"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLog    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleGold   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

const helpLine = "[a]ttack [tab] target [.] wait [q]uaff [r]ead [P] ring [>] descend [Q]uit"

// Run drives the bout on screen until it ends, then shows the summary.
// It reports whether the player asked for another bout.
func (a *Arena) Run(screen tcell.Screen) bool {
	for a.state == StatePlaying {
		a.Draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			a.Act(keyToAction(ev))
		case nil:
			// Screen finalised underneath us.
			if a.state == StatePlaying {
				a.finish(StateQuit)
			}
			return false
		}
	}
	return a.showEndScreen(screen)
}

// Draw renders the status line, the monster roster and the message log.
func (a *Arena) Draw(screen tcell.Screen) {
	screen.Clear()
	sw, sh := screen.Size()

	y := 0
	drawText(screen, 0, y, fmt.Sprintf("Depth %d  Turn %d", a.depth, a.record.Turns), styleGold)
	y++
	drawText(screen, 0, y, a.statusLine(), styleText)
	y++
	drawHLine(screen, y, sw)
	y++

	monsters := a.Monsters()
	target := a.Target()
	if len(monsters) == 0 {
		drawText(screen, 2, y, "(no monsters)", styleDim)
		y++
	}
	for _, id := range monsters {
		m := a.world.Get(id, component.CMonster).(component.Monster)
		hp, _ := a.world.Get(id, component.CHealth).(component.Health)
		line := fmt.Sprintf("  %s %s  %d/%d", m.Glyph, m.Name, hp.Current, hp.Max)
		style := styleText
		if id == target {
			line = ">" + line[1:]
			style = styleTarget
		}
		drawText(screen, 0, y, line, style)
		y++
	}
	drawHLine(screen, y, sw)
	y++

	// Message log fills what is left above the help line.
	rows := sh - y - 1
	if rows > 0 {
		for _, msg := range a.log.Last(rows) {
			drawText(screen, 0, y, msg, styleLog)
			y++
		}
	}
	drawText(screen, 0, sh-1, helpLine, styleDim)
	screen.Show()
}

func (a *Arena) statusLine() string {
	w, p := a.world, a.player
	hp, _ := w.Get(p, component.CHealth).(component.Health)
	str, _ := w.Get(p, component.CStrength).(component.Strength)
	cb, _ := w.Get(p, component.CCombat).(component.Combat)
	prog, _ := w.Get(p, component.CProgression).(component.Progression)
	st, _ := w.Get(p, component.CStatus).(component.Status)

	line := fmt.Sprintf("HP %d/%d  Str %d/%d  AC %d  Lvl %d  Exp %d  Gold %d",
		hp.Current, hp.Max, str.Current, str.Max, cb.Defense, prog.Level, prog.Experience, prog.Gold)
	var flags []string
	if st.Held {
		flags = append(flags, "held")
	}
	if st.Frozen {
		flags = append(flags, "frozen")
	}
	if st.Levitating {
		flags = append(flags, "levitating")
	}
	if len(flags) > 0 {
		line += "  [" + strings.Join(flags, "][") + "]"
	}
	return line
}

// showEndScreen renders the bout summary and returns true if the player
// wants another bout.
func (a *Arena) showEndScreen(screen tcell.Screen) bool {
	type killEntry struct {
		name  string
		count int
	}
	var kills []killEntry
	total := 0
	for name, n := range a.record.Kills {
		kills = append(kills, killEntry{name, n})
		total += n
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].count != kills[j].count {
			return kills[i].count > kills[j].count
		}
		return kills[i].name < kills[j].name
	})

	for {
		screen.Clear()
		sw, _ := screen.Size()
		label := func(y int, l, v string) {
			drawText(screen, 2, y, l, styleLog)
			drawText(screen, 22, y, v, styleText)
		}

		y := 1
		drawHLine(screen, y, sw)
		y += 2
		if a.state == StateDead {
			drawText(screen, 2, y, "REST IN PEACE", styleGold)
			drawText(screen, sw-9, y, "[DEFEAT]", styleBad)
		} else {
			drawText(screen, 2, y, "YOU LEAVE THE ARENA", styleGold)
		}
		y += 2

		r := a.record
		label(y, "Depth Reached:", fmt.Sprint(r.DepthReached))
		y++
		label(y, "Turns Survived:", fmt.Sprint(r.Turns))
		y++
		label(y, "Level:", fmt.Sprint(r.Level))
		y++
		label(y, "Gold:", fmt.Sprint(r.Gold))
		y += 2
		label(y, "Monsters Slain:", fmt.Sprint(total))
		y++
		if len(kills) > 0 {
			var b strings.Builder
			for _, k := range kills {
				fmt.Fprintf(&b, "%s×%d  ", k.name, k.count)
			}
			drawText(screen, 4, y, b.String(), styleDim)
			y++
		}
		y++
		label(y, "Damage Dealt:", fmt.Sprint(r.DamageDealt))
		y++
		label(y, "Damage Taken:", fmt.Sprint(r.DamageTaken))
		y += 2
		if r.KilledBy != "" {
			label(y, "Killed By:", r.KilledBy)
			y += 2
		}
		drawHLine(screen, y, sw)
		y += 2
		drawText(screen, 2, y, "[R] Another Bout", styleGood)
		drawText(screen, 21, y, "[Q] Quit", styleBad)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			switch ev.Rune() {
			case 'r', 'R':
				return true
			case 'q', 'Q':
				return false
			}
		case nil:
			return false
		}
	}
}

// drawText writes s at (x, y), advancing by each rune's cell width and
// clipping at the right edge of the screen.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	sw, _ := screen.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > sw {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

func drawHLine(screen tcell.Screen, y, width int) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, '─', nil, styleDim)
	}
}
