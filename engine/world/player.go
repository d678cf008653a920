package world

// PlayerName is the name the player answers to in logs and events.
const PlayerName = "player"

// Player is the character controlled by the user. It remembers the rooms
// it has walked through so it can go back.
type Player struct {
	Character

	track []*Room
}

// NewPlayer creates the player in the start room.
func NewPlayer(start *Room, maxInjuries, maxWeight int) *Player {
	return &Player{
		Character: *NewCharacter(PlayerName, start, maxInjuries, maxWeight),
		track:     []*Room{start},
	}
}

// Go moves the player through the exit in direction d.
func (p *Player) Go(d Direction) error {
	next, res := TryMove(&p.Character, d)
	if res != MovePossible {
		return res.Err()
	}
	switch {
	case len(p.track) > 1:
		p.track = append(p.track, p.Room)
	case len(p.track) == 1 && p.Room != next:
		p.track = append(p.track, p.Room)
	}
	p.MoveTo(next)
	return nil
}

// Back returns the player to the previous room on the track. At the start
// of the track there is nowhere to go and it reports false.
func (p *Player) Back() bool {
	if len(p.track) <= 1 {
		return false
	}
	last := p.track[len(p.track)-1]
	p.track = p.track[:len(p.track)-1]
	p.MoveTo(last)
	return true
}

// Teleport is what happens on capture: the player is moved to dest and
// everything carried is scattered across rooms. The track is reset.
func (p *Player) Teleport(dest *Room, rooms []*Room, rnd Rand) {
	p.Scatter(rooms, rnd)
	p.Room = dest
	p.track = []*Room{dest}
}

// Track returns the rooms the player could walk back through.
func (p *Player) Track() []*Room {
	out := make([]*Room, len(p.track))
	copy(out, p.track)
	return out
}
