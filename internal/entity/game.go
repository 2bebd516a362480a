package entity

// WinResult describes a finished game. A nil *WinResult means the game is still going.
type WinResult struct {
	Mark Mark    `json:"mark,omitempty"`
	Line []Coord `json:"line,omitempty"`
	Draw bool    `json:"draw,omitempty"`
}

func (that *WinResult) IsDraw() bool {
	return that != nil && that.Draw
}

// Contains reports whether the coordinate is part of the winning line.
func (that *WinResult) Contains(c Coord) bool {
	if that == nil {
		return false
	}

	for _, cell := range that.Line {
		if cell == c {
			return true
		}
	}

	return false
}

// Snapshot is an immutable copy of the engine state handed out to observers.
type Snapshot struct {
	Session string     `json:"session"`
	Version uint64     `json:"version"`
	Board   Board      `json:"board"`
	Turn    Mark       `json:"turn"`
	Started bool       `json:"started"`
	Win     *WinResult `json:"win,omitempty"`
}

func (that *Snapshot) IsOver() bool {
	return that.Win != nil
}
