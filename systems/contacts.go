package systems

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/contact"
	"github.com/automoto/waypoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewContactSystem publishes a contact.Began event each time the player
// starts touching a checkpoint or a transition, then delivers queued
// events to the world's subscribers. Trigger volumes are touched by
// overlapping; solid transitions by pushing against them within
// cfg.Transition.SolidReach.
func NewContactSystem(tracker *contact.Tracker) ecs.System {
	return func(ecs *ecs.ECS) {
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			if e.HasComponent(components.Death) {
				return
			}
			player := components.Player.Get(e)
			obj := components.Object.Get(e).Object

			for _, other := range overlapping(obj, 0, 0, tags.ResolvCheckpoint) {
				touch(ecs.World, tracker, e, other, player.Tag, contact.KindTrigger)
			}
			for _, other := range overlapping(obj, 0, 0, tags.ResolvTransition) {
				if !other.HasTags(tags.ResolvSolid) {
					touch(ecs.World, tracker, e, other, player.Tag, contact.KindTrigger)
				}
			}
			for _, other := range solidContacts(obj, cfg.Transition.SolidReach) {
				touch(ecs.World, tracker, e, other, player.Tag, contact.KindSolid)
			}
		})
		tracker.EndFrame()

		contact.Began.ProcessEvents(ecs.World)
	}
}

// solidContacts returns solid transitions within reach of object on any
// side.
func solidContacts(object *resolv.Object, reach float64) []*resolv.Object {
	seen := map[*resolv.Object]bool{}
	var out []*resolv.Object
	probes := [][2]float64{{reach, 0}, {-reach, 0}, {0, reach}, {0, -reach}}
	for _, p := range probes {
		for _, o := range overlapping(object, p[0], p[1], tags.ResolvTransition) {
			if o.HasTags(tags.ResolvSolid) && !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

func touch(w donburi.World, tracker *contact.Tracker, player *donburi.Entry, other *resolv.Object, tag string, kind contact.Kind) {
	entry, ok := other.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return
	}
	if !tracker.Touch(entry.Entity(), player.Entity(), kind) {
		return
	}
	contact.Began.Publish(w, contact.Event{
		This:  entry.Entity(),
		Other: player.Entity(),
		Tag:   tag,
		Kind:  kind,
	})
}
