package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"cmp"
	"log"
	"slices"

	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
)

// Action names reported in ActionResult
const (
	ActionAttack  = "attack"
	ActionDefend  = "defend"
	ActionSpecial = "special"
)

// Service defines the combat service interface
type Service interface {
	// Start opens a solo fight on snapshots of player and enemy
	Start(player *entities.Character, enemy *entities.Creature) (*entities.CombatSession, error)

	// PlayerAttack resolves the player's attack
	PlayerAttack(session *entities.CombatSession) (*ActionResult, error)

	// PlayerDefend heals the player and braces for the next enemy attack
	PlayerDefend(session *entities.CombatSession) (*ActionResult, error)

	// EnemyTurn lets the enemy AI act
	EnemyTurn(session *entities.CombatSession) (*ActionResult, error)

	// Summary reports the state of a fight
	Summary(session *entities.CombatSession) *CombatSummary

	// StartTeam opens a team fight with a fixed agility-ordered turn order
	StartTeam(players []*entities.Character, enemy *entities.Creature) (*entities.TeamCombatSession, error)

	// AdvanceTeamTurn moves to the next actor in the turn order and returns it
	AdvanceTeamTurn(session *entities.TeamCombatSession) (string, error)
}

// ActionResult describes one resolved action
type ActionResult struct {
	Action   string
	Actor    string
	Ability  string
	Damage   int
	Healed   int
	Critical bool
	Status   entities.CombatStatus
}

// CombatSummary is the outcome of a fight
type CombatSummary struct {
	Status   entities.CombatStatus
	Rounds   int
	PlayerHP int
	EnemyHP  int
	Log      []string
}

type service struct {
	roller    dice.Roller
	publisher events.Publisher
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller    dice.Roller      // Optional, defaults to a random roller
	Publisher events.Publisher // Optional
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		roller:    cfg.Roller,
		publisher: cfg.Publisher,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

func (s *service) Start(player *entities.Character, enemy *entities.Creature) (*entities.CombatSession, error) {
	if player == nil {
		return nil, rpgerr.InvalidArgument("player is required")
	}
	if enemy == nil {
		return nil, rpgerr.InvalidArgument("enemy is required")
	}

	session := entities.NewCombatSession(player, enemy)

	log.Printf("CombatService: %s engages %s (%d HP)", player.Name, enemy.Name, enemy.CurrentHP)
	events.Notify(s.publisher, &events.CombatEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeCombatStarted},
		Player:    player.Name,
		Enemy:     enemy.Name,
		Status:    session.Status,
		Rounds:    session.Round,
	})

	return session, nil
}

func (s *service) checkTurn(session *entities.CombatSession, turn entities.Turn) error {
	if session == nil || session.Player == nil || session.Enemy == nil {
		return rpgerr.InvalidArgument("combat session is required")
	}
	if session.IsOver() {
		return rpgerr.FailedPreconditionf("combat is already over (%s)", session.Status)
	}
	if session.Turn != turn {
		return rpgerr.FailedPreconditionf("it is the %s's turn", session.Turn).
			WithMeta("turn", string(session.Turn))
	}
	return nil
}

func (s *service) PlayerAttack(session *entities.CombatSession) (*ActionResult, error) {
	if err := s.checkTurn(session, entities.TurnPlayer); err != nil {
		return nil, err
	}
	player, enemy := session.Player, session.Enemy

	damage, critical, err := s.playerDamage(player)
	if err != nil {
		return nil, err
	}
	dealt := max(1, damage-enemy.Defense)

	enemy.ApplyDamage(dealt)
	if critical {
		session.AddLog("Critical hit! %s strikes a weak spot!", player.Name)
	}
	session.AddLog("%s attacks %s for %d damage!", player.Name, enemy.Name, dealt)

	if enemy.IsDefeated() {
		session.AddLog("%s has been defeated!", enemy.Name)
		s.finish(session, entities.CombatStatusVictory)
	} else {
		session.Turn = entities.TurnEnemy
	}

	return &ActionResult{
		Action:   ActionAttack,
		Actor:    player.Name,
		Damage:   dealt,
		Critical: critical,
		Status:   session.Status,
	}, nil
}

// playerDamage rolls the variance before the crit check; a crit uses the
// variance's magnitude so it never rolls below the boosted strength.
func (s *service) playerDamage(player *entities.Character) (int, bool, error) {
	variance, err := dice.Between(s.roller, -3, 3)
	if err != nil {
		return 0, false, rpgerr.Wrap(err, "failed to roll attack variance")
	}

	critical, err := dice.Percent(s.roller, min(20, player.Stats.Agility))
	if err != nil {
		return 0, false, rpgerr.Wrap(err, "failed to roll critical hit")
	}

	base := player.Stats.Strength
	if critical {
		base = base * 3 / 2
		if variance < 0 {
			variance = -variance
		}
	}

	return max(1, base+variance), critical, nil
}

func (s *service) PlayerDefend(session *entities.CombatSession) (*ActionResult, error) {
	if err := s.checkTurn(session, entities.TurnPlayer); err != nil {
		return nil, err
	}
	player := session.Player

	heal, err := dice.Between(s.roller, 5, 15)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll recovery")
	}

	player.Heal(heal)
	session.AddLog("%s takes a defensive stance and recovers %d HP!", player.Name, heal)
	session.PlayerDefending = true
	session.Turn = entities.TurnEnemy

	return &ActionResult{
		Action: ActionDefend,
		Actor:  player.Name,
		Healed: heal,
		Status: session.Status,
	}, nil
}

func (s *service) EnemyTurn(session *entities.CombatSession) (*ActionResult, error) {
	if err := s.checkTurn(session, entities.TurnEnemy); err != nil {
		return nil, err
	}

	useSpecial, err := s.chooseSpecial(session.Enemy)
	if err != nil {
		return nil, err
	}

	var result *ActionResult
	if useSpecial {
		result, err = s.enemySpecial(session)
	} else {
		result, err = s.enemyAttack(session)
	}
	if err != nil {
		return nil, err
	}

	if !session.IsOver() {
		session.Turn = entities.TurnPlayer
		session.Round++
	}
	result.Status = session.Status

	return result, nil
}

// chooseSpecial is the enemy AI. A wounded enemy first tries its 60% desperation
// roll and then falls through to the ordinary 20% roll.
func (s *service) chooseSpecial(enemy *entities.Creature) (bool, error) {
	if !enemy.HasSpecialAbilities() {
		return false, nil
	}

	if enemy.HPRatio() < 0.3 {
		desperate, err := dice.Percent(s.roller, 60)
		if err != nil {
			return false, rpgerr.Wrap(err, "failed to roll enemy action")
		}
		if desperate {
			return true, nil
		}
	}

	special, err := dice.Percent(s.roller, 20)
	if err != nil {
		return false, rpgerr.Wrap(err, "failed to roll enemy action")
	}
	return special, nil
}

func (s *service) enemyDamage(enemy *entities.Creature) (int, error) {
	variance, err := dice.Between(s.roller, -2, 2)
	if err != nil {
		return 0, rpgerr.Wrap(err, "failed to roll enemy variance")
	}
	return max(1, enemy.Attack+variance), nil
}

func (s *service) enemyAttack(session *entities.CombatSession) (*ActionResult, error) {
	player, enemy := session.Player, session.Enemy

	damage, err := s.enemyDamage(enemy)
	if err != nil {
		return nil, err
	}

	if session.PlayerDefending {
		damage = max(1, damage/2)
		session.AddLog("%s's defense reduces incoming damage!", player.Name)
		session.PlayerDefending = false
	}

	dealt := max(1, damage-player.Stats.Defense)
	player.ApplyDamage(dealt)
	session.AddLog("%s attacks %s for %d damage!", enemy.Name, player.Name, dealt)
	s.checkDefeat(session)

	return &ActionResult{Action: ActionAttack, Actor: enemy.Name, Damage: dealt}, nil
}

func (s *service) enemySpecial(session *entities.CombatSession) (*ActionResult, error) {
	player, enemy := session.Player, session.Enemy

	idx, err := dice.Index(s.roller, len(enemy.Abilities))
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to pick special ability")
	}
	ability := enemy.Abilities[idx]
	effect := ability.Effect

	result := &ActionResult{Action: ActionSpecial, Actor: enemy.Name, Ability: ability.Name}
	session.AddLog("%s uses %s!", enemy.Name, ability.Name)

	if effect.DealsDamage() {
		base, err := s.enemyDamage(enemy)
		if err != nil {
			return nil, err
		}
		perHit := max(1, int(float64(base)*effect.Multiplier)-player.Stats.Defense)

		for i := 0; i < effect.HitCount() && !session.IsOver(); i++ {
			result.Damage += player.ApplyDamage(perHit)
			s.checkDefeatQuiet(session)
		}
		session.AddLog("%s takes %d damage from %s!", player.Name, result.Damage, ability.Name)
		if session.IsOver() {
			session.AddLog("%s has been defeated!", player.Name)
			return result, nil
		}
	}

	switch effect.Kind {
	case entities.EffectStun:
		session.AddLog("%s is intimidated and loses next turn!", player.Name)
	case entities.EffectGrapple:
		session.AddLog("%s is caught in %s's grip!", player.Name, enemy.Name)
	case entities.EffectBuff:
		enemy.Attack = int(float64(enemy.Attack) * effect.AttackMultiplier)
		session.AddLog("%s's attack power increases!", enemy.Name)
	case entities.EffectPoison:
		result.Damage += player.ApplyDamage(effect.FlatDamage)
		session.AddLog("Poison deals %d additional damage!", effect.FlatDamage)
		s.checkDefeat(session)
	}

	return result, nil
}

func (s *service) checkDefeatQuiet(session *entities.CombatSession) {
	if session.Player.IsDefeated() {
		s.finish(session, entities.CombatStatusDefeat)
	}
}

func (s *service) checkDefeat(session *entities.CombatSession) {
	if session.Player.IsDefeated() && !session.IsOver() {
		session.AddLog("%s has been defeated!", session.Player.Name)
		s.finish(session, entities.CombatStatusDefeat)
	}
}

func (s *service) finish(session *entities.CombatSession, status entities.CombatStatus) {
	session.Status = status
	session.PlayerDefending = false

	log.Printf("CombatService: %s vs %s ended in %s after %d rounds", session.Player.Name, session.Enemy.Name, status, session.Round)
	events.Notify(s.publisher, &events.CombatEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeCombatEnded},
		Player:    session.Player.Name,
		Enemy:     session.Enemy.Name,
		Status:    status,
		Rounds:    session.Round,
	})
}

func (s *service) Summary(session *entities.CombatSession) *CombatSummary {
	if session == nil {
		return nil
	}

	summary := &CombatSummary{
		Status: session.Status,
		Rounds: session.Round,
		Log:    append([]string(nil), session.Log...),
	}
	if session.Player != nil {
		summary.PlayerHP = session.Player.CurrentHP
	}
	if session.Enemy != nil {
		summary.EnemyHP = session.Enemy.CurrentHP
	}
	return summary
}

func (s *service) StartTeam(players []*entities.Character, enemy *entities.Creature) (*entities.TeamCombatSession, error) {
	if len(players) == 0 {
		return nil, rpgerr.InvalidArgument("at least one player is required")
	}
	if enemy == nil {
		return nil, rpgerr.InvalidArgument("enemy is required")
	}

	roster := make([]*entities.Character, len(players))
	for i, p := range players {
		if p == nil {
			return nil, rpgerr.InvalidArgument("player is required")
		}
		roster[i] = p.Clone()
	}

	ordered := slices.Clone(roster)
	slices.SortStableFunc(ordered, func(a, b *entities.Character) int {
		return cmp.Compare(b.Stats.Agility, a.Stats.Agility)
	})

	turnOrder := make([]string, 0, len(ordered)*2)
	for _, p := range ordered {
		turnOrder = append(turnOrder, p.Name, entities.EnemyActor)
	}

	session := &entities.TeamCombatSession{
		Players:     roster,
		Enemy:       enemy.Clone(),
		TurnOrder:   turnOrder,
		CurrentTurn: 0,
		Round:       1,
		Status:      entities.CombatStatusOngoing,
		Log:         []string{},
		TeamEffects: make(map[string][]string),
	}
	session.AddLog("Team combat begins! %d hunters vs %s", len(roster), enemy.Name)

	return session, nil
}

func (s *service) AdvanceTeamTurn(session *entities.TeamCombatSession) (string, error) {
	if session == nil || len(session.TurnOrder) == 0 {
		return "", rpgerr.InvalidArgument("team combat session is required")
	}
	if session.Status.IsTerminal() {
		return "", rpgerr.FailedPreconditionf("team combat is already over (%s)", session.Status)
	}

	session.CurrentTurn = (session.CurrentTurn + 1) % len(session.TurnOrder)
	if session.CurrentTurn == 0 {
		session.Round++
	}

	return session.CurrentActor(), nil
}
