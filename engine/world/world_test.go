package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/nathoo/wawel/types"
)

// seqRand replays a fixed list of draws, each reduced modulo n.
type seqRand struct {
	vals []int
	pos  int
}

func (s *seqRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

func TestTryMove_Matrix(t *testing.T) {
	for _, d := range Directions {
		for _, present := range []bool{false, true} {
			for _, open := range []bool{false, true} {
				from := NewRoom("from", "in a room")
				to := NewRoom("to", "in another room")
				if present {
					from.SetExit(d, to, open)
				}
				c := NewCharacter("c", from, 1, 10)

				dest, res := TryMove(c, d)

				switch {
				case !present:
					assert.Equal(t, MoveNoExit, res, "%s absent", d)
					assert.ErrorIs(t, res.Err(), ErrNoExit)
					assert.Nil(t, dest)
				case !open:
					assert.Equal(t, MoveDoorClosed, res, "%s closed", d)
					assert.ErrorIs(t, res.Err(), ErrDoorClosed)
					assert.Nil(t, dest)
				default:
					assert.Equal(t, MovePossible, res, "%s open", d)
					assert.NoError(t, res.Err())
					assert.Same(t, to, dest)
				}
				assert.Same(t, from, c.Room, "TryMove must not move the actor")
			}
		}
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
	assert.Equal(t, Direction(""), Direction("sideways").Opposite())
}

func TestCharacter_DeathThreshold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ceiling := rapid.IntRange(0, 20).Draw(t, "ceiling")
		hits := rapid.IntRange(0, 30).Draw(t, "hits")

		c := NewCharacter("c", NewRoom("r", "here"), ceiling, 10)
		for i := 0; i < hits; i++ {
			c.Injure()
		}
		if c.Dead() != (hits >= ceiling+1) {
			t.Fatalf("ceiling %d, injuries %d: Dead() = %v", ceiling, hits, c.Dead())
		}
	})
}

func TestCharacter_HealsEveryTwoMoves(t *testing.T) {
	a := NewRoom("a", "in a")
	b := NewRoom("b", "in b")
	c := NewCharacter("c", a, 6, 10)
	c.Injure()
	c.Injure()

	c.MoveTo(b)
	assert.Equal(t, 2, c.Injuries)
	c.MoveTo(a)
	assert.Equal(t, 1, c.Injuries)
	assert.Equal(t, 0, c.movesToHeal)

	c.MoveTo(b)
	c.MoveTo(a)
	assert.Equal(t, 0, c.Injuries)

	c.MoveTo(b)
	assert.Equal(t, 0, c.movesToHeal, "moves without injuries do not count")
}

func TestCharacter_CollectAndDrop(t *testing.T) {
	r := NewRoom("r", "here")
	r.Items.Add(NewItem("feather", "", 1))
	r.Items.Add(NewItem("anvil", "", 100))
	c := NewCharacter("c", r, 1, 45)

	_, err := c.Collect("anvil")
	assert.ErrorIs(t, err, ErrTooHeavy)
	_, err = c.Collect("ghost")
	assert.ErrorIs(t, err, ErrItemNotFound)

	it, err := c.Collect("feather")
	require.NoError(t, err)
	assert.Equal(t, "feather", it.Name)
	assert.Equal(t, 1, c.Weight)
	assert.False(t, r.Items.Has("feather"))

	_, err = c.Drop("ghost")
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = c.Drop("feather")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Weight)
	assert.True(t, r.Items.Has("feather"))
}

func TestCharacter_CanAttack(t *testing.T) {
	c := NewCharacter("c", NewRoom("r", "here"), 1, 45)
	assert.ErrorIs(t, c.CanAttack(), ErrNoWeapon)

	c.AddItem(NewItem("rock", "", 1))
	assert.ErrorIs(t, c.CanAttack(), ErrNoWeapon)

	empty := NewWeapon("gun1", "", 3, 0)
	c.AddItem(empty)
	assert.ErrorIs(t, c.CanAttack(), ErrNoBullets)
	assert.Nil(t, c.Weapon())

	loaded := NewWeapon("gun2", "", 3, 1)
	c.AddItem(loaded)
	assert.NoError(t, c.CanAttack())
	assert.Same(t, loaded, c.Weapon())
}

func TestItem_UseTargets(t *testing.T) {
	room := NewRoom("r", "here")
	victim := NewCharacter("v", room, 1, 45)

	tests := []struct {
		name   string
		item   *Item
		target Target
		want   error
	}{
		{"weapon on room", NewWeapon("gun", "", 3, 1), RoomTarget(room), ErrWrongTarget},
		{"weapon empty", NewWeapon("gun", "", 3, 0), CharacterTarget(victim), ErrNoBullets},
		{"key on character", NewKey("key", "", 1, room), CharacterTarget(victim), ErrWrongTarget},
		{"key wrong room", NewKey("key", "", 1, NewRoom("x", "")), RoomTarget(room), ErrWrongRoom},
		{"chest on character", NewChest("chest", "", 150), CharacterTarget(victim), ErrWrongTarget},
		{"plain item", NewItem("rock", "", 1), RoomTarget(room), ErrNotUsable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.item.Use(tt.target), tt.want)
		})
	}
}

func TestItem_WeaponFires(t *testing.T) {
	victim := NewCharacter("v", NewRoom("r", ""), 1, 45)
	gun := NewWeapon("gun", "", 3, 2)

	require.NoError(t, gun.Use(CharacterTarget(victim)))
	assert.Equal(t, 1, gun.Bullets)
	assert.Equal(t, 1, victim.Injuries)
}

func TestItem_ChestSpillsOnce(t *testing.T) {
	room := NewRoom("r", "")
	chest := NewChest("chest", "", 150)
	chest.Contents.Add(NewItem("leonardo", "", 17))

	require.NoError(t, chest.Use(RoomTarget(room)))
	assert.True(t, room.Items.Has("leonardo"))
	assert.Equal(t, 0, chest.Contents.Len())
	assert.ErrorIs(t, chest.Use(RoomTarget(room)), ErrChestOpened)
}

func TestItem_KeyOpensLocally(t *testing.T) {
	hall := NewRoom("hall", "")
	ballroom := NewRoom("ballroom", "")
	gallery := NewRoom("gallery", "")
	hall.SetExit(East, ballroom, false)
	ballroom.SetExit(West, hall, false)
	ballroom.SetExit(North, gallery, false)

	key := NewKey("key", "", 1, hall)
	require.NoError(t, key.Use(RoomTarget(hall)))

	e, _ := hall.Exit(East)
	assert.True(t, e.Open)
	back, _ := ballroom.Exit(West)
	assert.True(t, back.Open)
	further, _ := ballroom.Exit(North)
	assert.False(t, further.Open, "doors beyond the neighbour stay closed")
}

func TestRoom_OpenExitsOpensOppositeDoorWhereverItLeads(t *testing.T) {
	hall := NewRoom("hall", "")
	vault := NewRoom("vault", "")
	cellar := NewRoom("cellar", "")
	hall.SetExit(East, vault, false)
	vault.SetExit(West, cellar, false)
	vault.SetExit(South, hall, false)

	hall.OpenExits()

	west, _ := vault.Exit(West)
	assert.True(t, west.Open, "the neighbour's opposite door opens even though it leads to the cellar")
	south, _ := vault.Exit(South)
	assert.False(t, south.Open, "only the opposite direction is opened on the neighbour")
}

func TestRoom_ClosedNeighbours(t *testing.T) {
	hall := NewRoom("hall", "")
	east := NewRoom("east", "")
	west := NewRoom("west", "")
	hall.SetExit(East, east, false)
	hall.SetExit(West, west, true)

	assert.Equal(t, []*Room{east}, hall.ClosedNeighbours())
	assert.Equal(t, "Exits: east west", hall.ExitString())
}

func TestPlayer_TrackAndBack(t *testing.T) {
	outside := NewRoom("outside", "outside")
	hall := NewRoom("hall", "in the hall")
	cellar := NewRoom("cellar", "in the cellar")
	outside.SetExit(North, hall, true)
	outside.SetExit(Up, outside, true)
	hall.SetExit(South, outside, true)
	hall.SetExit(Down, cellar, true)

	p := NewPlayer(outside, 6, 45)
	assert.False(t, p.Back(), "nothing to go back to at the start")

	require.NoError(t, p.Go(Up))
	assert.Len(t, p.Track(), 1, "self loop from a fresh track is not recorded")

	require.NoError(t, p.Go(North))
	require.NoError(t, p.Go(Down))
	assert.Same(t, cellar, p.Room)
	assert.Len(t, p.Track(), 3)

	require.True(t, p.Back())
	assert.Same(t, hall, p.Room)
	require.True(t, p.Back())
	assert.Same(t, outside, p.Room)
	assert.False(t, p.Back())

	assert.ErrorIs(t, p.Go(West), ErrNoExit)
}

func TestPlayer_BackHeals(t *testing.T) {
	a := NewRoom("a", "")
	b := NewRoom("b", "")
	a.SetExit(East, b, true)
	p := NewPlayer(a, 6, 45)
	p.Injure()

	require.NoError(t, p.Go(East))
	require.True(t, p.Back())
	assert.Equal(t, 0, p.Injuries)
}

func TestPlayer_TeleportScatters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nRooms := rapid.IntRange(1, 6).Draw(t, "rooms")
		nItems := rapid.IntRange(0, 8).Draw(t, "items")
		rooms := make([]*Room, nRooms)
		for i := range rooms {
			rooms[i] = NewRoom(string(rune('a'+i)), "")
		}
		p := NewPlayer(rooms[0], 6, 1000)
		for i := 0; i < nItems; i++ {
			p.AddItem(NewItem(string(rune('A'+i)), "", i+1))
		}
		draws := rapid.SliceOfN(rapid.IntRange(0, 100), nItems, nItems).Draw(t, "draws")

		dest := rooms[nRooms-1]
		p.Teleport(dest, rooms, &seqRand{vals: draws})

		if p.Items.Len() != 0 || p.Weight != 0 {
			t.Fatalf("inventory not emptied: %d items, weight %d", p.Items.Len(), p.Weight)
		}
		total := 0
		for _, r := range rooms {
			total += r.Items.Len()
		}
		if total != nItems {
			t.Fatalf("scattered %d items, want %d", total, nItems)
		}
		if p.Room != dest || len(p.Track()) != 1 {
			t.Fatalf("player not reset to destination")
		}
	})
}

func testDefs() *types.Defs {
	return &types.Defs{
		Game: types.GameDef{
			Start:             "outside",
			Enemies:           2,
			EnemyName:         "soldier",
			EnemyMaxInjuries:  1,
			PlayerMaxInjuries: 6,
			MaxWeight:         45,
			Artwork:           []string{"painting"},
		},
		Rooms: []types.RoomDef{
			{ID: "hall", Description: "in the hall", Open: true, Exits: map[string]types.ExitDef{
				"south": {To: "outside"},
				"east":  {To: "vault", Closed: true},
			}},
			{ID: "outside", Description: "outside", Open: true, Exits: map[string]types.ExitDef{
				"north": {To: "hall"},
			}},
			{ID: "yard", Description: "in the yard", Open: true},
			{ID: "vault", Description: "in the vault", Exits: map[string]types.ExitDef{
				"west": {To: "hall", Closed: true},
			}},
		},
		Items: []types.ItemDef{
			{ID: "chest", Kind: types.KindChest, Weight: 150, Place: types.Placement{Kind: types.PlaceRoom, Target: "vault"}},
			{ID: "painting", Weight: 10, Place: types.Placement{Kind: types.PlaceChest, Target: "chest"}},
			{ID: "key", Kind: types.KindKey, Weight: 1, Opens: "hall", Place: types.Placement{Kind: types.PlaceRandomOpenRoom}},
			{ID: "gun1", Kind: types.KindWeapon, Weight: 3, Bullets: 10, Place: types.Placement{Kind: types.PlacePlayer}},
			{ID: "gun2", Kind: types.KindWeapon, Weight: 3, Bullets: 10, Place: types.Placement{Kind: types.PlaceEnemy, Index: 1}},
			{ID: "gun3", Kind: types.KindWeapon, Weight: 3, Bullets: 10, Place: types.Placement{Kind: types.PlaceEnemy, Index: 2}},
		},
	}
}

func TestBuild(t *testing.T) {
	// Two enemy draws collide on the first try, then the key lands in the yard.
	w, err := Build(testDefs(), &seqRand{vals: []int{0, 0, 1, 1}})
	require.NoError(t, err)

	require.Len(t, w.Rooms, 4)
	assert.Equal(t, "outside", w.Rooms[0].ID)
	assert.Equal(t, []string{"outside", "hall", "yard"}, roomIDs(w.OpenRooms))

	require.Len(t, w.Enemies, 2)
	assert.Equal(t, "hall", w.Enemies[0].Room.ID)
	assert.Equal(t, "yard", w.Enemies[1].Room.ID)
	assert.True(t, w.Enemies[0].Items.Has("gun2"))
	assert.True(t, w.Enemies[1].Items.Has("gun3"))

	assert.True(t, w.Player.Items.Has("gun1"))
	assert.Equal(t, 3, w.Player.Weight)
	assert.True(t, w.Room("yard").Items.Has("key"))

	chest := w.Room("vault").Items.Get("chest")
	require.NotNil(t, chest)
	assert.True(t, chest.Contents.Has("painting"))

	e, ok := w.Room("hall").Exit(East)
	require.True(t, ok)
	assert.False(t, e.Open)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *types.Defs)
	}{
		{"unknown start", func(d *types.Defs) { d.Game.Start = "nowhere" }},
		{"closed start", func(d *types.Defs) { d.Game.Start = "vault" }},
		{"too many enemies", func(d *types.Defs) { d.Game.Enemies = 3 }},
		{"bad exit", func(d *types.Defs) { d.Rooms[2].Exits = map[string]types.ExitDef{"up": {To: "moon"}} }},
		{"bad key", func(d *types.Defs) { d.Items[2].Opens = "moon" }},
		{"not a chest", func(d *types.Defs) { d.Items[1].Place.Target = "key" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDefs()
			tt.mutate(d)
			_, err := Build(d, &seqRand{vals: []int{0, 1}})
			assert.Error(t, err)
		})
	}
}

func TestWorld_OpenRoomsAndRoster(t *testing.T) {
	w, err := Build(testDefs(), &seqRand{vals: []int{0, 1}})
	require.NoError(t, err)

	vault := w.Room("vault")
	assert.False(t, w.IsOpen(vault))
	assert.True(t, w.AddOpenRoom(vault))
	assert.False(t, w.AddOpenRoom(vault))
	assert.True(t, w.IsOpen(vault))

	e := w.EnemyIn(w.Room("hall"))
	require.NotNil(t, e)
	w.RemoveEnemy(e)
	assert.Len(t, w.Enemies, 1)
	assert.Nil(t, w.EnemyIn(w.Room("hall")))
}

func roomIDs(rooms []*Room) []string {
	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}
