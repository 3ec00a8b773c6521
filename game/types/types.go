package types

// Point is a cell on the game grid
type Point struct {
	X, Y int
}

// Add returns the point translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns an n x n grid
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// Area is the number of cells in the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside [0, Width-1] x [0, Height-1]
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// RandomCell returns a uniformly random cell of the grid
func (g Grid) RandomCell(r Rand) Point {
	return Point{
		X: r.Intn(g.Width),
		Y: r.Intn(g.Height),
	}
}

// Rand is the random source the game draws from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Game constants
const (
	GridCells = 20

	// SpecialFoodLifetime is the number of ticks special food stays on the board
	SpecialFoodLifetime = 100
	// SpecialFoodOnEatChance is the chance of special food appearing after plain food is eaten
	SpecialFoodOnEatChance = 0.2
	// SpecialFoodRandomOdds is the 1-in-N chance per tick of special food appearing on its own
	SpecialFoodRandomOdds = 200

	FoodPoints        = 1
	SpecialFoodPoints = 5

	// MaxQueuedTurns bounds how many direction changes can wait for upcoming ticks
	MaxQueuedTurns = 2
)

// InitialBody is the snake's body at the start of every run, head first
func InitialBody() []Point {
	return []Point{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
}

// InitialDirection is the direction the snake starts moving in
const InitialDirection = RIGHT
