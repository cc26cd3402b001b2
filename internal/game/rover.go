package game

import "github.com/art3mis-rover/art3mis/internal/world"

// Position is a point in world coordinates. It is also the ECS
// component carried by the rover and by dropped items.
type Position struct {
	X, Y float64
}

// RoverControlled tags the player's rover entity.
type RoverControlled struct{}

// Intent is the held movement state for one frame.
type Intent struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is held.
func (i Intent) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// Or merges two input sources; a direction is held if either source holds it.
func (i Intent) Or(o Intent) Intent {
	return Intent{
		Up:    i.Up || o.Up,
		Down:  i.Down || o.Down,
		Left:  i.Left || o.Left,
		Right: i.Right || o.Right,
	}
}

// Step integrates one frame of movement.
//
// Each held direction adds speed*dt on its axis; diagonals are not
// normalized, so two held axes cover more ground than one. moved is
// decided before clamping: pushing into an edge still counts as moving.
func Step(pos Position, in Intent, dt, speed float64, b world.Bounds) (Position, bool) {
	d := speed * dt
	if in.Left {
		pos.X -= d
	}
	if in.Right {
		pos.X += d
	}
	if in.Up {
		pos.Y -= d
	}
	if in.Down {
		pos.Y += d
	}
	pos.X, pos.Y = b.Clamp(pos.X, pos.Y)
	return pos, in.Any()
}
