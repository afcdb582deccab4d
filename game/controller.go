package game

import (
	"fmt"

	"github.com/gammazero/deque"
	log "github.com/sirupsen/logrus"
)

// Controller owns the settings, the running Session and the state machine
// between them. It is driven from a single goroutine: inputs are queued with
// Dispatch and applied in order by Tick.
type Controller struct {
	state    State
	settings *Settings
	session  *Session

	picking   bool
	showMines bool

	// Seed for the first session; later sessions draw theirs from the
	// previous session's rng
	seed int64

	pending deque.Deque

	// Called once whenever a session reaches game over
	OnGameEnd func(*Session)
}

// PanicError is reported for an action whose handling panicked
type PanicError struct {
	Action Action
	Value  interface{}
}

func (err *PanicError) Error() string {
	return fmt.Sprintf("%v: panic: %v", err.Action, err.Value)
}

func NewController(config Config) *Controller {
	return &Controller{
		state:    Configuring,
		settings: NewSettings(config),
		seed:     config.Seed,
	}
}

func (controller *Controller) State() State {
	return controller.state
}

func (controller *Controller) Settings() *Settings {
	return controller.settings
}

// Session returns the running or finished session, nil before the first
// game starts
func (controller *Controller) Session() *Session {
	return controller.session
}

func (controller *Controller) IsPickingColor() bool {
	return controller.picking
}

func (controller *Controller) ShowMines() bool {
	return controller.showMines
}

func (controller *Controller) Dispatch(actions ...Action) {
	for _, action := range actions {
		controller.pending.PushBack(action)
	}
}

func (controller *Controller) Pending() int {
	return controller.pending.Len()
}

// Tick applies every pending action in order and returns how many were
// handled. Rejected actions are logged and skipped. A panic while handling
// an action drops the rest of the queue for this tick.
func (controller *Controller) Tick() int {
	handled := 0
	for controller.pending.Len() > 0 {
		action := controller.pending.PopFront().(Action)
		handled++

		err := controller.safeHandle(action)
		if err == nil {
			continue
		}

		fields := log.Fields{"action": action.String(), "state": controller.state.String()}
		if controller.session != nil {
			fields["session"] = controller.session.id
		}

		if _, panicked := err.(*PanicError); panicked {
			dropped := controller.pending.Len()
			for controller.pending.Len() > 0 {
				controller.pending.PopFront()
			}
			fields["dropped"] = dropped
			log.WithFields(fields).WithError(err).Error("action failed, dropping rest of tick")
			break
		}

		log.WithFields(fields).WithError(err).Debug("action ignored")
	}
	return handled
}

func (controller *Controller) safeHandle(action Action) (err error) {
	defer func() {
		if value := recover(); value != nil {
			err = &PanicError{Action: action, Value: value}
		}
	}()
	return controller.Handle(action)
}

// Handle applies a single action immediately
func (controller *Controller) Handle(action Action) error {
	switch action.Type {
	case ClaimEdge:
		return controller.claim(action.Edge)
	case Restart:
		return controller.restart()
	case OpenSettings:
		return controller.openSettings()
	case ToggleDebugMines:
		controller.showMines = !controller.showMines
		return nil
	}

	if controller.state != Configuring {
		return fmt.Errorf("%v while %v: %w", action, controller.state, ErrInvalidTransition)
	}

	switch action.Type {
	case AdjustSetting:
		controller.settings.Adjust(action.Field, action.Delta)
	case ApplySettings:
		controller.start(controller.settings.Apply(controller.nextSeed()))
	case OpenColorPicker:
		controller.picking = true
	case CloseColorPicker:
		controller.picking = false
	case NextColorEdit:
		controller.settings.NextColorEdit()
	case PrevColorEdit:
		controller.settings.PrevColorEdit()
	case PickColor:
		return controller.settings.SetColor(action.Player, action.Color)
	default:
		return fmt.Errorf("unknown action %v", action)
	}
	return nil
}

// Load starts play on an existing session, such as one rebuilt from a
// snapshot
func (controller *Controller) Load(session *Session) error {
	if controller.state != Configuring {
		return fmt.Errorf("load session while %v: %w", controller.state, ErrInvalidTransition)
	}
	controller.settings = NewSettings(session.Config())
	controller.start(session)
	return nil
}

func (controller *Controller) nextSeed() int64 {
	if controller.session != nil {
		return controller.session.NextSeed()
	}
	return controller.seed
}

func (controller *Controller) start(session *Session) {
	controller.session = session
	controller.picking = false
	controller.state = Playing

	log.WithFields(log.Fields{
		"session": session.id,
		"rows":    session.board.rows,
		"cols":    session.board.cols,
		"mines":   session.board.numMines,
		"players": len(session.players),
	}).Info("game started")

	if session.over {
		controller.finish()
	}
}

func (controller *Controller) finish() {
	controller.state = GameOver
	if controller.OnGameEnd != nil {
		controller.OnGameEnd(controller.session)
	}
}

func (controller *Controller) claim(edge Edge) error {
	if controller.state != Playing {
		return fmt.Errorf("claim %v while %v: %w", edge, controller.state, ErrInvalidTransition)
	}

	session := controller.session
	result, err := session.ClaimCurrent(edge)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"session":    session.id,
		"edge":       edge.String(),
		"player":     result.Player,
		"completed":  len(result.Completed),
		"eliminated": result.Eliminated,
		"next":       result.Next,
	}).Debug("edge claimed")

	if log.GetLevel() >= log.DebugLevel {
		if err := session.board.Verify(); err != nil {
			log.WithField("session", session.id).WithError(err).Error("board invariant broken")
		}
	}

	if result.GameOver {
		controller.finish()
	}
	return nil
}

// restart replays the finished game's settings with a fresh seed: back
// to Configuring, then straight into Playing
func (controller *Controller) restart() error {
	if controller.state != GameOver {
		return fmt.Errorf("restart while %v: %w", controller.state, ErrInvalidTransition)
	}
	controller.state = Configuring
	controller.settings = NewSettings(controller.session.Config())
	controller.start(controller.settings.Apply(controller.nextSeed()))
	return nil
}

func (controller *Controller) openSettings() error {
	switch controller.state {
	case Configuring:
		controller.picking = false
		return nil
	case GameOver:
		controller.state = Configuring
		controller.picking = false
		return nil
	default:
		return fmt.Errorf("open settings while %v: %w", controller.state, ErrInvalidTransition)
	}
}
