package manager

import (
	"testing"
	"time"

	"tunebite/game/entity"
	"tunebite/game/types"
)

type seqRand struct {
	ints []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *seqRand) Float64() float64 { return 0.5 }

func TestWallCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridCells))
	n := types.GridCells

	tests := []struct {
		p    types.Point
		want bool
	}{
		{types.Point{-1, 5}, true},
		{types.Point{n, 5}, true},
		{types.Point{5, -1}, true},
		{types.Point{5, n}, true},
		{types.Point{0, 0}, false},
		{types.Point{n - 1, n - 1}, false},
		{types.Point{0, n - 1}, false},
		{types.Point{n - 1, 0}, false},
	}
	for _, tt := range tests {
		if got := cm.IsWallCollision(tt.p); got != tt.want {
			t.Errorf("IsWallCollision(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridCells))

	tests := []struct {
		name string
		body []types.Point
		want bool
	}{
		{"head on last segment", []types.Point{{5, 5}, {4, 5}, {3, 5}, {5, 5}}, true},
		{"head on neck", []types.Point{{5, 5}, {5, 5}, {3, 5}}, true},
		{"straight body", []types.Point{{6, 9}, {5, 9}, {4, 9}}, false},
		{"single cell", []types.Point{{1, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.IsSelfCollision(tt.body); got != tt.want {
				t.Errorf("IsSelfCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckCollisionPrefersWall(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridCells))

	s := entity.NewSnakeAt([]types.Point{{20, 9}, {19, 9}}, types.RIGHT)
	if got := cm.CheckCollision(s); got != WallCollision {
		t.Errorf("CheckCollision = %v, want wall", got)
	}
	s = entity.NewSnakeAt([]types.Point{{5, 5}, {4, 5}, {3, 5}, {5, 5}}, types.RIGHT)
	if got := cm.CheckCollision(s); got != SelfCollision {
		t.Errorf("CheckCollision = %v, want self", got)
	}
	if got := cm.CheckCollision(entity.NewSnake()); got != NoCollision {
		t.Errorf("CheckCollision = %v, want none", got)
	}
}

func TestFoodManagerSpecialLifecycle(t *testing.T) {
	grid := types.NewSquareGrid(types.GridCells)
	fm := NewFoodManager(grid, &seqRand{ints: []int{1, 1, 2, 2}})
	body := types.InitialBody()

	if err := fm.RespawnFood(body); err != nil {
		t.Fatal(err)
	}
	if fm.Food().Position != (types.Point{1, 1}) {
		t.Fatalf("food at %v, want (1,1)", fm.Food().Position)
	}

	created, err := fm.SpawnSpecial(body)
	if err != nil || !created {
		t.Fatalf("SpawnSpecial = %v, %v", created, err)
	}
	if fm.Special().Position == fm.Food().Position {
		t.Error("special food spawned on top of plain food")
	}

	created, err = fm.SpawnSpecial(body)
	if err != nil || created {
		t.Errorf("second SpawnSpecial = %v, %v; at most one special food may exist", created, err)
	}

	if fm.ConsumeSpecial(types.Point{0, 0}) {
		t.Error("consumed special food at the wrong cell")
	}
	if !fm.ConsumeSpecial(fm.Special().Position) {
		t.Error("special food not consumed")
	}
	if fm.Special() != nil {
		t.Error("special food still present after consumption")
	}
}

func TestFoodManagerSpecialExpires(t *testing.T) {
	grid := types.NewSquareGrid(types.GridCells)
	fm := NewFoodManager(grid, &seqRand{ints: []int{3, 4}})

	if _, err := fm.SpawnSpecial(nil); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < types.SpecialFoodLifetime; i++ {
		if fm.TickSpecial() {
			t.Fatalf("expired after %d ticks", i)
		}
	}
	if !fm.TickSpecial() {
		t.Fatal("special food did not expire")
	}
	if fm.Special() != nil {
		t.Error("expired special food was not removed")
	}
	if fm.TickSpecial() {
		t.Error("TickSpecial with no special food reported expiry")
	}
}

func TestFoodAvoidsSpecial(t *testing.T) {
	grid := types.NewSquareGrid(types.GridCells)
	// special at (2,2); the food's first draw lands on it, the second on (8,8)
	fm := NewFoodManager(grid, &seqRand{ints: []int{2, 2, 2, 2, 8, 8}})

	if _, err := fm.SpawnSpecial(nil); err != nil {
		t.Fatal(err)
	}
	if err := fm.RespawnFood(nil); err != nil {
		t.Fatal(err)
	}
	if fm.Food().Position != (types.Point{8, 8}) {
		t.Errorf("food at %v, want (8,8)", fm.Food().Position)
	}
}

func TestMusicSwitchNeverRepeats(t *testing.T) {
	mm := NewMusicManager([]string{"bg1", "bg2", "bg3"})
	rng := &seqRand{ints: []int{0, 1, 0, 1, 1, 0}}

	if got := mm.Pick(rng); got != "bg1" {
		t.Fatalf("Pick = %q, want bg1", got)
	}
	for i := 0; i < 5; i++ {
		prev := mm.Current()
		next := mm.Switch(rng)
		if next == prev {
			t.Fatalf("switch %d kept %q", i, prev)
		}
	}
}

func TestMusicSwitchChoosesAmongOthers(t *testing.T) {
	for idx, want := range []string{"bg2", "bg3"} {
		mm := NewMusicManager([]string{"bg1", "bg2", "bg3"})
		mm.Pick(&seqRand{ints: []int{0}})

		if got := mm.Switch(&seqRand{ints: []int{idx}}); got != want {
			t.Errorf("Switch(%d) = %q, want %q", idx, got, want)
		}
	}
}

func TestMusicSingleTrack(t *testing.T) {
	mm := NewMusicManager([]string{"only"})
	rng := &seqRand{ints: []int{0}}
	mm.Pick(rng)
	if got := mm.Switch(rng); got != "only" {
		t.Errorf("Switch = %q, want only", got)
	}

	empty := NewMusicManager(nil)
	if got := empty.Pick(rng); got != "" {
		t.Errorf("Pick with no tracks = %q", got)
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return clock }

	if sm.State() != types.Home {
		t.Fatalf("initial state = %v, want HOME", sm.State())
	}

	sm.Begin()
	sm.Add(types.FoodPoints)
	sm.Add(types.SpecialFoodPoints)
	if sm.Score() != 6 {
		t.Errorf("score = %d, want 6", sm.Score())
	}

	clock = clock.Add(90 * time.Second)
	rec := sm.End(WallCollision)
	if sm.State() != types.Stopped {
		t.Errorf("state = %v, want STOPPED", sm.State())
	}
	if sm.Score() != 6 {
		t.Errorf("score after game over = %d, want it kept at 6", sm.Score())
	}
	if rec.EndTime.Sub(rec.StartTime) != 90*time.Second || rec.Cause != WallCollision {
		t.Errorf("record = %+v", rec)
	}

	sm.Begin()
	if sm.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", sm.Score())
	}
	sm.Add(2)
	sm.End(SelfCollision)

	if sm.Best() != 6 || sm.Games() != 2 {
		t.Errorf("best=%d games=%d", sm.Best(), sm.Games())
	}
	if sm.Average() != 4 {
		t.Errorf("average = %v, want 4", sm.Average())
	}
}

func TestStateManagerHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxScores+10; i++ {
		sm.Begin()
		sm.Add(i)
		sm.End(WallCollision)
	}
	h := sm.History()
	if len(h) != maxScores {
		t.Fatalf("history length = %d, want %d", len(h), maxScores)
	}
	if h[0].Score != 10 {
		t.Errorf("oldest kept score = %d, want 10", h[0].Score)
	}
}
