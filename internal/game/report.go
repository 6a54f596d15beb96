package game

import (
	"fmt"
	"strings"
)

// reportEventWindow bounds how many trailing events the report quotes.
const reportEventWindow = 40

// RoundReport renders a plain-text state dump suitable for a bug
// report or the clipboard copy key.
func RoundReport(r *Round) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- tankarena round report ---\n")
	fmt.Fprintf(&b, "tick=%d clock=%dms outcome=%s\n", r.tick, r.NowMS(), r.outcome)
	fmt.Fprintf(&b, "field=(%d,%d %dx%d)\n\n", r.field.Left, r.field.Top, r.field.W, r.field.H)

	for _, t := range []*Tank{r.player, r.enemy} {
		fmt.Fprintf(&b, "== %s ==\n", t.name)
		fmt.Fprintf(&b, "id=%s hp=%d alive=%v\n", t.id, t.health, t.Alive())
		fmt.Fprintf(&b, "pos=(%.1f, %.1f) facing=%s box=(%d,%d %dx%d)\n",
			t.pos.X, t.pos.Y, t.facing, t.box.Left, t.box.Top, t.box.W, t.box.H)
		fmt.Fprintf(&b, "reload_ready=%v last_shot=%dms\n\n", t.CanFire(r.NowMS()), t.lastShot)
	}

	fmt.Fprintf(&b, "== terrain (%d) ==\n", len(r.obstacles))
	for _, o := range r.obstacles {
		fmt.Fprintf(&b, "box=(%d,%d %dx%d)\n", o.box.Left, o.box.Top, o.box.W, o.box.H)
	}

	fmt.Fprintf(&b, "\n== shells (%d) ==\n", len(r.bullets))
	for _, s := range r.bullets {
		fmt.Fprintf(&b, "owner=%s pos=(%.1f, %.1f) dir=(%.0f, %.0f)\n",
			s.ownerID, s.pos.X, s.pos.Y, s.dir.X, s.dir.Y)
	}

	events := r.events.Events()
	from := 0
	if len(events) > reportEventWindow {
		from = len(events) - reportEventWindow
	}
	fmt.Fprintf(&b, "\n== recent events (%d of %d) ==\n", len(events)-from, len(events))
	for _, e := range events[from:] {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
