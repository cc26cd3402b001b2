package hud

import (
	"fmt"
	"math"

	"github.com/art3mis-rover/art3mis/internal/game"
)

// Screen rows and columns used by the HUD.
const (
	statusRow    = 0
	inventoryRow = 1
	barCol       = 35
	barWidth     = 14
	commsLines   = 5
	commsCol     = 12
)

// StatusLine is the energy/regolith readout. Values are floored for
// display only; the session keeps exact values.
func StatusLine(s game.Snapshot) string {
	return fmt.Sprintf("Energy: %d/%d Regolith: %d/%d",
		floor(s.Energy), floor(s.MaxEnergy), floor(s.Regolith), floor(s.MaxRegolith))
}

// InventoryLine is the ingot readout.
func InventoryLine(s game.Snapshot) string {
	return fmt.Sprintf("%s: %d %s: %d %s: %d",
		game.Aluminum.Symbol(), s.Ingots[game.Aluminum],
		game.Iron.Symbol(), s.Ingots[game.Iron],
		game.Silicon.Symbol(), s.Ingots[game.Silicon])
}

func floor(v float64) int { return int(math.Floor(v)) }

// MsgColor returns the palette color for a comms priority.
func MsgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return ColorLightRed
	case game.MsgWarning:
		return ColorYellow
	case game.MsgHaul:
		return ColorLightGreen
	default:
		return ColorCyan
	}
}

// MaterialColor returns the palette color ingots of m are drawn in.
func MaterialColor(m game.Material) uint8 {
	switch m {
	case game.Aluminum:
		return ColorLightGray
	case game.Iron:
		return ColorLightRed
	case game.Silicon:
		return ColorLightBlue
	default:
		return ColorWhite
	}
}

// energyColor shades the energy readout by charge level.
func energyColor(s game.Snapshot) uint8 {
	pct := s.Energy * 100 / s.MaxEnergy
	switch {
	case pct <= 10:
		return ColorLightRed
	case pct <= 25:
		return ColorYellow
	default:
		return ColorWhite
	}
}

// DrawStatus writes the two readouts and their gauges on the top rows.
func DrawStatus(buf *CellBuffer, s game.Snapshot) {
	buf.ClearRow(statusRow)
	buf.ClearRow(inventoryRow)
	buf.WriteString(1, statusRow, StatusLine(s), energyColor(s), ColorBlack)
	buf.WriteString(1, inventoryRow, InventoryLine(s), ColorWhite, ColorBlack)

	buf.DrawBar(barCol, statusRow, barWidth, s.Energy, s.MaxEnergy, ColorYellow)
	buf.DrawBar(barCol, inventoryRow, barWidth, s.Regolith, s.MaxRegolith, ColorBrown)
}

// DrawComms writes the most recent comms lines above the bottom edge.
func DrawComms(buf *CellBuffer, msgs []game.Message) {
	if len(msgs) > commsLines {
		msgs = msgs[len(msgs)-commsLines:]
	}
	top := buf.Rows - commsLines - 1
	for i, m := range msgs {
		buf.WriteString(commsCol, top+i, m.Text, MsgColor(m.Priority), ColorBlack)
	}
}

// DrawGameOver writes the end-of-run panel centered on screen.
// It returns the row the restart label sits on.
func DrawGameOver(buf *CellBuffer, s game.Snapshot) int {
	mid := buf.Rows / 2
	for y := mid - 4; y <= mid+4; y++ {
		buf.ClearRow(y)
	}
	buf.WriteCentered(mid-3, "GAME OVER", ColorLightRed, ColorBlack)
	buf.WriteCentered(mid-1, InventoryLine(s), ColorLightGray, ColorBlack)
	restartRow := mid + 2
	buf.WriteCentered(restartRow, "Restart", ColorWhite, ColorBlack)
	buf.WriteCentered(mid+4, "ENTER or click to restart", ColorDarkGray, ColorBlack)
	return restartRow
}

// Compose draws a full frame for the session: surface, readouts and
// comms. The rover, dropped ingots and the game-over panel are left to
// the frontend, which layers them as it sees fit.
func Compose(buf *CellBuffer, surface *SurfaceView, sess *game.Session) {
	buf.Clear()
	if surface != nil {
		surface.Draw(buf)
	}
	DrawStatus(buf, sess.Snapshot())
	DrawComms(buf, sess.Log.Recent(commsLines))
}
