package dungeon

import (
	"testing"
)

func TestRoomsPartitionFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	d := New(cfg)
	d.Reset(5)

	rooms := d.Rooms()
	if rooms.Len() == 0 {
		t.Fatal("expected rooms")
	}
	if !rooms.Union().Equal(d.Floor()) {
		t.Fatal("rooms must cover the floor exactly")
	}
	total := 0
	for _, s := range rooms.Sizes() {
		if s > cfg.RoomArea {
			t.Fatalf("room of %d cells exceeds %d", s, cfg.RoomArea)
		}
		total += s
	}
	if total != d.Floor().Size() {
		t.Fatal("rooms overlap")
	}
	if v := d.Vault(); v != nil && !v.Subset(rooms.Largest()) {
		t.Fatal("vault must sit inside the largest room")
	}
}

func TestStepRevealsRooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	d := New(cfg)
	d.Reset(1)
	if d.Shapes().Len() != 0 {
		t.Fatal("nothing is revealed after Reset")
	}
	d.Step()
	if d.Shapes().Len() != 1 {
		t.Fatalf("expected one revealed room, got %d", d.Shapes().Len())
	}
	for i := 0; i < d.Rooms().Len()+2; i++ {
		d.Step()
	}
	want := d.Rooms().Len()
	if d.Vault() != nil {
		want++
	}
	if d.Shapes().Len() != want {
		t.Fatalf("expected %d shapes after full reveal, got %d", want, d.Shapes().Len())
	}
}
