package chase_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridchase/astar"
	"github.com/katalvlaran/gridchase/chase"
	"github.com/katalvlaran/gridchase/core"
	"github.com/katalvlaran/gridchase/gridgraph"
)

// splitGrid is a 5×1 corridor cut by a wall at x=2:
//
//	. . # . .
func splitGrid(t *testing.T) *gridgraph.Grid {
	t.Helper()
	gg, err := gridgraph.FromWeights([][]int64{{1, 1, 0, 1, 1}})
	require.NoError(t, err)
	return gg
}

// openGrid is a 5×5 wall-free board with unit weights.
func openGrid(t *testing.T) *gridgraph.Grid {
	t.Helper()
	gg, err := gridgraph.NewGrid(5, 5, gridgraph.WithWeightFn(gridgraph.ConstantWeightFn(1)))
	require.NoError(t, err)
	return gg
}

// ------------------------------------------------------------------------
// Construction
// ------------------------------------------------------------------------

func TestNewSession_Validation(t *testing.T) {
	classic, err := chase.NewClassicGrid()
	require.NoError(t, err)

	cases := []struct {
		name string
		grid *gridgraph.Grid
		opts []chase.Option
		err  error
	}{
		{"NilGrid", nil, nil, chase.ErrNilGrid},
		{"HunterOutside", classic, []chase.Option{chase.WithHunter(core.Tile{X: 10, Y: 3})}, chase.ErrOutOfBounds},
		{"PreyOnWall", classic, []chase.Option{chase.WithPrey(core.Tile{X: 0, Y: 0})}, chase.ErrBlockedTile},
		{"ExitOnWall", classic, []chase.Option{chase.WithExit(core.Tile{X: 3, Y: 2})}, chase.ErrBlockedTile},
		{"ExitUnreachable", splitGrid(t), []chase.Option{
			chase.WithHunter(core.Tile{X: 3}), chase.WithPrey(core.Tile{X: 0}), chase.WithExit(core.Tile{X: 4}),
		}, chase.ErrExitUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := chase.NewSession(tc.grid, tc.opts...)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewSession_ClassicDefaults(t *testing.T) {
	gg, err := chase.NewClassicGrid()
	require.NoError(t, err)
	id := uuid.MustParse("7f0c2a64-6a1b-4c1e-9a53-3c1d6f1f2b10")

	s, err := chase.NewSession(gg, chase.WithID(id))
	require.NoError(t, err)
	assert.Equal(t, id, s.ID())
	assert.Equal(t, chase.ClassicHunter, s.Hunter())
	assert.Equal(t, chase.ClassicPrey, s.Prey())
	assert.Equal(t, chase.ClassicExit, s.Exit())
	assert.Equal(t, chase.Ongoing, s.Outcome())
	assert.Equal(t, 0, s.Turn())
}

func TestNewSession_GeneratesID(t *testing.T) {
	gg, err := chase.NewClassicGrid()
	require.NoError(t, err)
	a, err := chase.NewSession(gg)
	require.NoError(t, err)
	b, err := chase.NewSession(gg)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

// ------------------------------------------------------------------------
// Turns
// ------------------------------------------------------------------------

// TestPlay_HunterCatchesStationaryPrey runs the classic board with a prey that
// never moves: the hunter must step one adjacent tile per turn and catch it.
func TestPlay_HunterCatchesStationaryPrey(t *testing.T) {
	gg, err := chase.NewClassicGrid(gridgraph.WithSeed(3))
	require.NoError(t, err)
	s, err := chase.NewSession(gg)
	require.NoError(t, err)

	initial, _, err := astar.FindPath(gg, chase.ClassicHunter, chase.ClassicPrey)
	require.NoError(t, err)

	// The hunter's trail is itself a cheapest simple route, so it cannot be
	// longer than the 52 passable tiles of the classic board.
	var rep chase.Report
	for turn := 1; turn <= 52 && s.Outcome() == chase.Ongoing; turn++ {
		before := s.Hunter()
		rep, err = s.Play(chase.Wait)
		require.NoError(t, err)
		assert.Equal(t, turn, rep.Turn)
		assert.True(t, before.Adjacent(rep.Hunter), "turn %d: hunter jumped %s→%s", turn, before, rep.Hunter)
		assert.Equal(t, chase.ClassicPrey, rep.Prey)
		if turn == 1 {
			assert.Equal(t, initial[1:], rep.Plan, "first plan is the initial route minus the step taken")
		}
	}
	assert.Equal(t, chase.Caught, s.Outcome())
	assert.Equal(t, chase.ClassicPrey, s.Hunter())
}

func TestPlay_WallsBlockPrey(t *testing.T) {
	gg, err := chase.NewClassicGrid()
	require.NoError(t, err)
	s, err := chase.NewSession(gg)
	require.NoError(t, err)

	for _, cmd := range []chase.Command{chase.MoveUp, chase.MoveLeft} {
		rep, err := s.Play(cmd)
		require.NoError(t, err)
		assert.Equal(t, chase.ClassicPrey, rep.Prey, "%s into a wall must not move the prey", cmd)
	}

	rep, err := s.Play(chase.MoveRight)
	require.NoError(t, err)
	assert.Equal(t, core.Tile{X: 2, Y: 1}, rep.Prey)
}

func TestPlay_BoardEdgeBlocksPrey(t *testing.T) {
	s, err := chase.NewSession(openGrid(t),
		chase.WithHunter(core.Tile{X: 4, Y: 4}),
		chase.WithPrey(core.Tile{X: 0, Y: 0}),
		chase.WithExit(core.Tile{X: 2, Y: 2}),
	)
	require.NoError(t, err)

	rep, err := s.Play(chase.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, core.Tile{X: 0, Y: 0}, rep.Prey)
}

// TestPlay_NoPathHunterWaits puts the hunter behind a wall: it must stay put
// while the prey walks to the exit.
func TestPlay_NoPathHunterWaits(t *testing.T) {
	s, err := chase.NewSession(splitGrid(t),
		chase.WithHunter(core.Tile{X: 0}),
		chase.WithPrey(core.Tile{X: 3}),
		chase.WithExit(core.Tile{X: 4}),
	)
	require.NoError(t, err)

	rep, err := s.Play(chase.Wait)
	require.NoError(t, err)
	assert.Equal(t, core.Tile{X: 0}, rep.Hunter)
	assert.Nil(t, rep.Plan)
	assert.Equal(t, chase.Ongoing, rep.Outcome)

	rep, err = s.Play(chase.MoveRight)
	require.NoError(t, err)
	assert.Equal(t, chase.Escaped, rep.Outcome)
	assert.Equal(t, 2, rep.Turn)

	_, err = s.Play(chase.Wait)
	assert.ErrorIs(t, err, chase.ErrGameOver)
}

func TestPlay_PreyWalksIntoHunter(t *testing.T) {
	s, err := chase.NewSession(openGrid(t),
		chase.WithHunter(core.Tile{X: 2, Y: 2}),
		chase.WithPrey(core.Tile{X: 1, Y: 2}),
		chase.WithExit(core.Tile{X: 0, Y: 0}),
	)
	require.NoError(t, err)

	rep, err := s.Play(chase.MoveRight)
	require.NoError(t, err)
	assert.Equal(t, chase.Caught, rep.Outcome)
	assert.Equal(t, core.Tile{X: 2, Y: 2}, rep.Hunter, "hunter stays when already on the prey")
	assert.Equal(t, []core.Tile{{X: 2, Y: 2}}, rep.Plan)
}

func TestPlay_CaughtBeatsEscape(t *testing.T) {
	// The prey steps onto the exit where the hunter is standing.
	s, err := chase.NewSession(openGrid(t),
		chase.WithHunter(core.Tile{X: 2, Y: 2}),
		chase.WithPrey(core.Tile{X: 2, Y: 1}),
		chase.WithExit(core.Tile{X: 2, Y: 2}),
	)
	require.NoError(t, err)

	rep, err := s.Play(chase.MoveDown)
	require.NoError(t, err)
	assert.Equal(t, chase.Caught, rep.Outcome)
}

func TestPlay_Quit(t *testing.T) {
	gg, err := chase.NewClassicGrid()
	require.NoError(t, err)
	s, err := chase.NewSession(gg)
	require.NoError(t, err)

	rep, err := s.Play(chase.Quit)
	require.NoError(t, err)
	assert.Equal(t, chase.Forfeit, rep.Outcome)
	assert.Equal(t, 0, rep.Turn)
	assert.Equal(t, chase.ClassicHunter, rep.Hunter, "hunter does not move on quit")

	_, err = s.Play(chase.MoveRight)
	assert.ErrorIs(t, err, chase.ErrGameOver)
}

func TestPlay_LogsNoPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	id := uuid.MustParse("00000000-0000-4000-8000-000000000001")

	s, err := chase.NewSession(splitGrid(t),
		chase.WithHunter(core.Tile{X: 0}),
		chase.WithPrey(core.Tile{X: 3}),
		chase.WithExit(core.Tile{X: 4}),
		chase.WithLogger(logger),
		chase.WithID(id),
	)
	require.NoError(t, err)
	_, err = s.Play(chase.Wait)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"hunter has no path, waiting"`)
	assert.Contains(t, out, `"session":"`+id.String()+`"`)
}
