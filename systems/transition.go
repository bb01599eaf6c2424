package systems

import (
	"log"

	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/contact"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewTransitionContactHandler hands contacts with transition volumes to
// their sequencers.
func NewTransitionContactHandler(e *ecs.ECS) func(donburi.World, contact.Event) {
	return func(w donburi.World, ev contact.Event) {
		if !w.Valid(ev.This) {
			return
		}
		entry := w.Entry(ev.This)
		if !entry.HasComponent(components.Transition) {
			return
		}
		seq := components.Transition.Get(entry).Sequencer
		if seq == nil {
			return
		}
		if seq.OnContact(ev) {
			log.Printf("transition: leaving for %q", seq.Config().Destination)
			PlaySFX(e, cfg.SoundTransition)
		}
	}
}
