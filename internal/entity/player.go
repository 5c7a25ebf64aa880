package entity

// Player - a room member, keyed by its transport connection id.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Board  []int  `json:"board"`
	Marked []int  `json:"marked"`
	Ready  bool   `json:"ready"`
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Board:  []int{},
		Marked: []int{},
	}
}

// MarkNumber - marks the board position holding the called number, if the
// number is on the board and not marked yet. The marked set only grows
// within a round.
func (that *Player) MarkNumber(number int) {
	for idx, cell := range that.Board {
		if cell != number {
			continue
		}

		if !that.HasMarked(idx) {
			that.Marked = append(that.Marked, idx)
		}

		return
	}
}

func (that *Player) HasMarked(idx int) bool {
	for _, marked := range that.Marked {
		if marked == idx {
			return true
		}
	}

	return false
}
