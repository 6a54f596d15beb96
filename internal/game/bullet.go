package game

// Bullet is a straight-line constant-speed shell. It carries only the
// ID of the tank that fired it, so it stays valid if the firer is
// destroyed mid-flight.
type Bullet struct {
	ownerID string
	pos     Vec2
	dir     Vec2 // unit length
	speed   float64
	facing  Facing
	box     Box
	expired bool
}

// NewBullet spawns a shell centered on pos heading along dir. dir is
// normalized here; a zero dir defaults to straight up.
func NewBullet(ownerID string, pos, dir Vec2, speed float64, w, h int) *Bullet {
	d := dir.Norm()
	if d.IsZero() {
		d = Vec2{0, -1}
	}
	b := &Bullet{
		ownerID: ownerID,
		pos:     pos,
		dir:     d,
		speed:   speed,
		facing:  FacingOf(d),
		box:     Box{W: w, H: h},
	}
	b.box.SyncTo(pos)
	return b
}

// Update advances the shell by dir * speed * dt and expires it the
// tick its box stops intersecting the playfield.
func (b *Bullet) Update(dt float64, field Box) {
	if dt < 0 {
		dt = 0
	}
	b.pos = b.pos.Add(b.dir.Scale(b.speed * dt))
	b.box.SyncTo(b.pos)
	if !b.box.Intersects(field) {
		b.expired = true
	}
}

func (b *Bullet) OwnerID() string { return b.ownerID }
func (b *Bullet) Pos() Vec2       { return b.pos }
func (b *Bullet) Dir() Vec2       { return b.dir }
func (b *Bullet) Facing() Facing  { return b.facing }
func (b *Bullet) Bounds() Box     { return b.box }
func (b *Bullet) Expired() bool   { return b.expired }
