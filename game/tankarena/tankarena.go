package tankarena

import (
	"math/rand"
	"sort"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/ecs"
	"github.com/bytearena/tankarena/arenaserver/protocol"
	commontypes "github.com/bytearena/tankarena/common/types"
	"github.com/bytearena/tankarena/common/types/mapcontainer"
	"github.com/bytearena/tankarena/common/utils"
)

// PlayerSpec names the agent driving a tank.
type PlayerSpec struct {
	Name   string
	Period int
}

type TankArenaGame struct {
	ticknum int

	gameDescription commontypes.GameDescriptionInterface
	field           mapcontainer.MapField
	manager         *ecs.Manager
	rand            *rand.Rand

	physicalBodyComponent *ecs.Component
	lifecycleComponent    *ecs.Component
	renderComponent       *ecs.Component
	tankComponent         *ecs.Component
	playerComponent       *ecs.Component
	ammoComponent         *ecs.Component
	ownedComponent        *ecs.Component
	targetComponent       *ecs.Component
	powerUpComponent      *ecs.Component

	tanksView      *ecs.View
	ammoView       *ecs.View
	targetsView    *ecs.View
	powerUpsView   *ecs.View
	lifecycleView  *ecs.View
	renderableView *ecs.View

	// playerIdx => tank entity
	players map[int]ecs.EntityID

	pendingRespawns []pendingRespawn
	perceptions     map[int]protocol.AgentPerception

	PhysicalWorld     *box2d.B2World
	collisionListener *collisionListener

	log *TankArenaGameLog
}

// NewTankArenaGame places one tank per contestant on the map starts, then the targets and power-ups.
// players may be nil, in which case tanks are named after the contestants' agents.
func NewTankArenaGame(gameDescription commontypes.GameDescriptionInterface, players []PlayerSpec) *TankArenaGame {
	manager := ecs.NewManager()
	arenaMap := gameDescription.GetMapContainer()

	game := &TankArenaGame{
		gameDescription: gameDescription,
		field:           arenaMap.Data.Field,
		manager:         manager,
		rand:            rand.New(rand.NewSource(gameDescription.GetSeed())),

		physicalBodyComponent: manager.NewComponent(),
		lifecycleComponent:    manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
		tankComponent:         manager.NewComponent(),
		playerComponent:       manager.NewComponent(),
		ammoComponent:         manager.NewComponent(),
		ownedComponent:        manager.NewComponent(),
		targetComponent:       manager.NewComponent(),
		powerUpComponent:      manager.NewComponent(),

		players:         make(map[int]ecs.EntityID),
		pendingRespawns: make([]pendingRespawn, 0),
		perceptions:     make(map[int]protocol.AgentPerception),

		log: NewTankArenaGameLog(),
	}

	gravity := box2d.MakeB2Vec2(0.0, 0.0) // gravity 0: the arena is seen from the top
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.tanksView = manager.CreateView(
		game.tankComponent,
		game.playerComponent,
		game.physicalBodyComponent,
		game.lifecycleComponent,
	)

	game.ammoView = manager.CreateView(
		game.ammoComponent,
		game.ownedComponent,
		game.lifecycleComponent,
	)

	game.targetsView = manager.CreateView(
		game.targetComponent,
		game.lifecycleComponent,
	)

	game.powerUpsView = manager.CreateView(
		game.powerUpComponent,
		game.lifecycleComponent,
	)

	game.lifecycleView = manager.CreateView(
		game.lifecycleComponent,
		game.renderComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.lifecycleComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
	})

	game.collisionListener = newCollisionListener(game)
	game.PhysicalWorld.SetContactListener(game.collisionListener)

	initArena(game, players)
	systemPerception(game)

	return game
}

func initArena(game *TankArenaGame, players []PlayerSpec) {
	arenaMap := game.gameDescription.GetMapContainer()
	starts := make(map[string]mapcontainer.MapStart)
	for _, start := range arenaMap.Data.Starts {
		starts[start.Id] = start
	}

	for playerIdx, contestant := range game.gameDescription.GetContestants() {
		start, ok := starts[contestant.StartId]
		utils.Assertf(ok, "no start %q on map", contestant.StartId)

		spec := PlayerSpec{Name: contestant.AgentName}
		if playerIdx < len(players) {
			spec = players[playerIdx]
		}

		game.NewEntityTank(playerIdx, spec, start.Point.ToVector2(), start.Heading.ToVector2())
	}

	for _, point := range arenaMap.Data.Targets {
		game.NewEntityTarget(point.ToVector2())
	}

	for _, powerup := range arenaMap.Data.PowerUps {
		game.NewEntityPowerUp(powerup.Point.ToVector2(), powerup.Type)
	}
}

func (game *TankArenaGame) Step(ticknum int, dt float64, mutations []protocol.AgentMutationBatch) {

	watch := utils.MakeStopwatch("tankarena::Step()")
	watch.Start("Step")

	game.ticknum = ticknum

	///////////////////////////////////////////////////////////////////////////
	// On traite les mutations
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemMutations")
	systemMutations(game, mutations)
	watch.Stop("systemMutations")

	///////////////////////////////////////////////////////////////////////////
	// On traite les tirs, depuis la position des tanks avant déplacement
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemShooting")
	systemShooting(game, dt)
	watch.Stop("systemShooting")

	///////////////////////////////////////////////////////////////////////////
	// On traite les rotations et déplacements
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemSteering")
	systemSteering(game, dt)
	watch.Stop("systemSteering")

	///////////////////////////////////////////////////////////////////////////
	// On met l'état des objets physiques à jour
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemPhysics")
	systemPhysics(game, dt)
	watch.Stop("systemPhysics")

	///////////////////////////////////////////////////////////////////////////
	// On déplace les projectiles et on résout leurs impacts
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemAmmo")
	systemAmmo(game, dt)
	watch.Stop("systemAmmo")

	///////////////////////////////////////////////////////////////////////////
	// On ramasse les bonus
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemPowerUps")
	systemPowerUps(game)
	watch.Stop("systemPowerUps")

	///////////////////////////////////////////////////////////////////////////
	// On fait vivre les entités
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemLifecycle")
	systemLifecycle(game, dt)
	watch.Stop("systemLifecycle")

	///////////////////////////////////////////////////////////////////////////
	// On supprime les entités mortes, en fin de tour
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemDeath")
	systemDeath(game)
	watch.Stop("systemDeath")

	///////////////////////////////////////////////////////////////////////////
	// On remplace les cibles et bonus disparus
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemRespawn")
	systemRespawn(game)
	watch.Stop("systemRespawn")

	///////////////////////////////////////////////////////////////////////////
	// On construit les perceptions
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemPerception")
	systemPerception(game)
	watch.Stop("systemPerception")

	watch.Stop("Step")

	if utils.IsDebug() {
		utils.Debug("tankarena", watch.String())
	}
}

func (game TankArenaGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *TankArenaGame) getPlayerTank(playerIdx int, tagelements ...interface{}) *ecs.QueryResult {
	id, ok := game.players[playerIdx]
	if !ok {
		return nil
	}

	return game.getEntity(id, tagelements...)
}

// sortedResults returns a snapshot of the view ordered by entity id, so that
// systems run in the same order from one run to the other.
func sortedResults(view *ecs.View) []*ecs.QueryResult {
	results := view.Get()
	sorted := make([]*ecs.QueryResult, len(results))
	copy(sorted, results)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Entity.GetID() < sorted[j].Entity.GetID()
	})

	return sorted
}

func (game TankArenaGame) GetTicknum() int {
	return game.ticknum
}

func (game TankArenaGame) GetField() mapcontainer.MapField {
	return game.field
}

func (game *TankArenaGame) GetGameLog() *TankArenaGameLog {
	return game.log
}

// GetPerception returns the snapshot built at the end of the last tick for the given player.
func (game *TankArenaGame) GetPerception(playerIdx int) (protocol.AgentPerception, bool) {
	perception, ok := game.perceptions[playerIdx]
	return perception, ok
}

func (game *TankArenaGame) GetScores() []Score {
	scores := make([]Score, 0, len(game.players))

	for _, entityresult := range game.tanksView.Get() {
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])
		scores = append(scores, Score{
			PlayerIdx: playerAspect.Idx,
			Name:      playerAspect.Name,
			Period:    playerAspect.Period,
			Score:     playerAspect.Score,
			Stats:     playerAspect.Stats,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].PlayerIdx < scores[j].PlayerIdx
	})

	return scores
}

// CountAlive returns the number of entities of the given kind that are not fading out.
func (game *TankArenaGame) CountAlive(kind EntityKind) int {
	count := 0
	for _, entityresult := range game.lifecycleView.Get() {
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if renderAspect.GetKind() == kind && lifecycleAspect.IsAlive() {
			count++
		}
	}

	return count
}

func (game *TankArenaGame) ImplementsGameInterface() {}

// PopNewLogLines describes the game log entries recorded since the previous call.
func (game *TankArenaGame) PopNewLogLines() []string {
	entries := game.log.PopNewEntries()
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.String()
	}

	return lines
}
