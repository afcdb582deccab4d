package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/minedots/game"
)

const tickRate = 30

// Run plays on the terminal until the player quits
func Run(controller *game.Controller) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	return RunOn(screen, controller)
}

// RunOn plays on an initialized screen and finalizes it on return. Each
// tick handles every key received since the last one, applies the queued
// actions, then redraws.
func RunOn(screen tcell.Screen, controller *game.Controller) error {
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	view := NewView(controller)
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for !view.Quit() {
		select {
		case ev := <-events:
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			view.HandleEvent(ev)
		case <-ticker.C:
			view.tick(screen)
		}
	}

	log.Debug("quit requested")
	return nil
}

func (view *View) tick(screen tcell.Screen) {
	if handled := view.controller.Tick(); handled > 0 {
		log.WithField("actions", handled).Debug("tick")
	}
	view.frame++
	view.render(screen)
}

// render draws a frame; a failed frame is logged and skipped
func (view *View) render(screen tcell.Screen) {
	defer func() {
		if value := recover(); value != nil {
			log.WithField("panic", value).Error("render failed")
		}
	}()
	view.Draw(screen)
	screen.Show()
}
