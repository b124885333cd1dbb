package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/reckoning/internal/component"
	"github.com/samdwyer/reckoning/internal/entity"
	"github.com/samdwyer/reckoning/internal/gamedata"
	"github.com/samdwyer/reckoning/internal/telemetry"
	"github.com/samdwyer/reckoning/internal/world"
)

// ErrSessionOver is returned when moving after the player was defeated.
var ErrSessionOver = errors.New("session is over")

const (
	// Random streams derived from the session seed. Terrain uses the seed
	// as is, so a grid can be reproduced with world.Generate alone.
	terrainStream  = 0
	movementStream = 1
	spawnStream    = 2

	hoursPerTurn   = 0.25 // Clock time for one step at normal speed
	secondsPerTurn = 15   // Weather countdown per step
	safeRadius     = 2    // No enemy starts this close to spawn
)

// Session is one play-through: the immutable grid plus every entity on it.
// It is driven by a single caller and is not safe for concurrent use.
type Session struct {
	Grid    *world.Grid
	Player  *entity.Player
	Enemies []*entity.Enemy
	Clock   component.TimeOfDay
	Weather component.Weather
	World   component.WorldState
	State   State
	Turn    int

	cfg      Config
	seed     int64
	data     *gamedata.Bundle
	terrain  *gamedata.TerrainRegistry
	resolver *world.Resolver
	aiRNG    *rand.Rand
}

// NewSession loads the game data, generates the grid and places every entity.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	data, err := gamedata.LoadBundle()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load game data: %w", err)
	}

	terrain := data.Terrain
	if cfg.TerrainFile != "" {
		override, err := gamedata.LoadTerrainOverride(cfg.TerrainFile)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if terrain, err = terrain.WithOverride(override); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	table, err := terrain.Terrain()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	grid, err := world.Generate(ctx, world.Options{
		Size:    cfg.Size,
		Mode:    cfg.Mode,
		Terrain: table,
		Blocked: terrain.Blocked(),
	}, streamRand(seed, terrainStream))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("generate grid: %w", err)
	}

	sx, sy := grid.Spawn()
	s := &Session{
		Grid:     grid,
		Player:   entity.NewPlayer(sx, sy),
		Clock:    component.NewTimeOfDay(),
		Weather:  component.NewWeather(),
		World:    component.NewWorldState(),
		State:    StateExplore,
		cfg:      cfg,
		seed:     seed,
		data:     data,
		terrain:  terrain,
		resolver: world.NewResolver(streamRand(seed, movementStream)),
		aiRNG:    streamRand(seed, spawnStream),
	}
	s.spawnEnemies(cfg.Enemies)

	span.SetAttributes(
		attribute.Int64("session.seed", seed),
		attribute.String("session.mode", cfg.Mode.String()),
		attribute.Int("session.size", grid.Size()),
		attribute.Int("session.enemies", len(s.Enemies)),
	)

	return s, nil
}

// streamRand derives an independent generator for one purpose from the seed.
func streamRand(seed int64, stream uint64) *rand.Rand {
	mixed := uint64(seed) ^ (stream * 0x9E3779B97F4A7C15)
	return rand.New(rand.NewSource(int64(mixed)))
}

// spawnEnemies places up to n enemies on distinct walkable cells reachable
// from spawn, keeping clear of the player's starting area.
func (s *Session) spawnEnemies(n int) {
	if n == 0 {
		return
	}

	sx, sy := s.Grid.Spawn()
	var candidates []world.Point
	world.ReachableFrom(s.Grid, sx, sy).Each(func(p world.Point) {
		if abs(p.X-sx)+abs(p.Y-sy) > safeRadius {
			candidates = append(candidates, p)
		}
	})

	// Set iteration order is random; sort so the seed alone decides placement.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Y != candidates[j].Y {
			return candidates[i].Y < candidates[j].Y
		}
		return candidates[i].X < candidates[j].X
	})
	s.aiRNG.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	for _, p := range candidates[:n] {
		def := s.data.Enemies.SpawnRandom(s.aiRNG)
		if def == nil {
			return
		}
		stats := s.data.Archetypes.Get(def.CombatArchetype())
		s.Enemies = append(s.Enemies, entity.NewEnemy(def, stats, p.X, p.Y))
	}
}

// MovePlayer resolves the player's step, then lets every enemy take its
// step, and advances the clock by one turn.
func (s *Session) MovePlayer(ctx context.Context, dx, dy int) (world.Outcome, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.move")
	defer span.End()

	if s.State != StateExplore {
		return world.Outcome{X: s.Player.X, Y: s.Player.Y, Confused: s.Player.Confused}, ErrSessionOver
	}

	out, err := s.resolver.Resolve(s.Grid, s.Player.Intent(dx, dy))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}
	if out.Moved && s.EnemyAt(out.X, out.Y) != nil {
		out.X, out.Y, out.Moved = s.Player.X, s.Player.Y, false
	}
	s.Player.Apply(out)

	if err := s.stepEnemies(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	s.advanceTime()
	s.Turn++

	span.SetAttributes(
		attribute.Int("session.turn", s.Turn),
		attribute.Bool("move.moved", out.Moved),
		attribute.Bool("move.deflected", out.Deflected),
		attribute.Int("move.confused", out.Confused),
	)

	return out, nil
}

func (s *Session) stepEnemies() error {
	for _, e := range s.Enemies {
		if !e.IsAlive() {
			continue
		}

		dx, dy := e.NextStep(s.Player.X, s.Player.Y, s.aiRNG)
		if e.State == component.StateAttacking {
			s.hitPlayer(e)
			continue
		}

		out, err := s.resolver.Resolve(s.Grid, e.Intent(dx, dy))
		if err != nil {
			return fmt.Errorf("enemy %s: %w", e.Name, err)
		}
		if s.occupied(out.X, out.Y, e) {
			out.X, out.Y, out.Moved = e.X, e.Y, false
		}
		e.Apply(out)
	}
	return nil
}

// hitPlayer applies contact damage from an adjacent enemy.
func (s *Session) hitPlayer(e *entity.Enemy) {
	s.Player.Health -= e.Attack
	if s.Player.Health <= 0 {
		s.Player.Health = 0
		s.State = StateDefeated
	}
}

// occupied reports whether another entity already stands on (x, y).
func (s *Session) occupied(x, y int, self *entity.Enemy) bool {
	if s.Player.X == x && s.Player.Y == y {
		return true
	}
	for _, other := range s.Enemies {
		if other != self && other.IsAlive() && other.X == x && other.Y == y {
			return true
		}
	}
	return false
}

func (s *Session) advanceTime() {
	speed := 1.0
	if biome := s.Biome(); biome != nil && biome.MovementSpeed > 0 {
		speed = biome.MovementSpeed
	}
	s.Clock.Advance(hoursPerTurn / speed)

	if s.Weather.Elapse(secondsPerTurn) {
		s.Weather = component.Weather{
			Current:   component.WeatherType(s.aiRNG.Intn(component.WeatherCount)),
			Intensity: s.aiRNG.Float64(),
			Duration:  component.NewWeather().Duration,
		}
	}
}

// Status summarizes the session in one line for the status bar.
func (s *Session) Status() string {
	hour := int(s.Clock.Hour)
	minute := int((s.Clock.Hour - float64(hour)) * 60)
	biome := s.World.CurrentBiome.String()
	if def := s.Biome(); def != nil {
		biome = def.Name
	}
	status := fmt.Sprintf("Turn %d  HP %d/%d  %02d:%02d %s  %s  %s",
		s.Turn, s.Player.Health, s.Player.MaxHealth, hour, minute,
		s.Clock.Phase, s.Weather.Current, biome)
	if s.Player.Confused > 0 {
		status += fmt.Sprintf("  Confused %d", s.Player.Confused)
	}
	return status
}

// ConfusePlayer adds turns of disorientation to the player.
func (s *Session) ConfusePlayer(turns int) {
	s.Player.Confuse(turns)
}

// Biome returns the modifiers of the current biome.
func (s *Session) Biome() *gamedata.BiomeDef {
	return s.data.Biomes.Get(s.World.CurrentBiome)
}

// Terrain returns the tile definitions in effect for this session.
func (s *Session) Terrain() *gamedata.TerrainRegistry {
	return s.terrain
}

// Seed returns the seed every random stream was derived from.
func (s *Session) Seed() int64 {
	return s.seed
}

// EnemyAt returns the living enemy on (x, y), or nil.
func (s *Session) EnemyAt(x, y int) *entity.Enemy {
	for _, e := range s.Enemies {
		if e.IsAlive() && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
