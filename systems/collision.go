package systems

import (
	"math"

	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)

		if len(overlapping(obj.Object, 0, 0, tags.ResolvDeadZone)) > 0 {
			handleDeadZoneHit(ecs, e)
		}
	})
}

// resolveHorizontalCollision moves the object by its horizontal speed,
// stopping flush against walls.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solid := nearestBlocking(object, check.ObjectsByTags(tags.ResolvSolid), dx, 0); solid != nil {
		physics.SpeedX = 0
		dx = check.ContactWithObject(solid).X()
	}
	object.X += dx
}

// resolveVerticalCollision moves the object by its vertical speed and
// updates OnGround.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY)

	// Probe one pixel further down so resting objects stay grounded
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solid := nearestBlocking(object, check.ObjectsByTags(tags.ResolvSolid), 0, checkDistance)
	if solid == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		physics.SpeedY = 0
		object.Y += check.ContactWithObject(solid).Y()
		return
	}

	physics.OnGround = solid
	physics.SpeedY = 0
	object.Y += check.ContactWithObject(solid).Y()
}

func clampVerticalSpeed(speedY float64) float64 {
	return math.Max(math.Min(speedY, cfg.Physics.MaxFallSpeed), -16)
}

// nearestBlocking returns the closest candidate that object would run
// into when moved by dx, dy. Candidates come from the cell-level
// broadphase, so boxes that only share a cell are skipped.
func nearestBlocking(object *resolv.Object, candidates []*resolv.Object, dx, dy float64) *resolv.Object {
	var best *resolv.Object
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if !boxesOverlap(object, c, dx, dy) {
			continue
		}
		var dist float64
		switch {
		case dx > 0:
			dist = c.X - (object.X + object.W)
		case dx < 0:
			dist = object.X - (c.X + c.W)
		case dy > 0:
			dist = c.Y - (object.Y + object.H)
		default:
			dist = object.Y - (c.Y + c.H)
		}
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

// overlapping returns the objects carrying tag whose boxes overlap
// object moved by dx, dy.
func overlapping(object *resolv.Object, dx, dy float64, tag string) []*resolv.Object {
	check := object.Check(dx, dy, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if boxesOverlap(object, o, dx, dy) {
			out = append(out, o)
		}
	}
	return out
}

// boxesOverlap reports whether a moved by dx, dy intersects b. Boxes
// that only share an edge do not overlap.
func boxesOverlap(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}

// handleDeadZoneHit freezes the player and starts the respawn delay
func handleDeadZoneHit(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{
		Timer: cfg.DeathZone.RespawnDelayFrames,
	})
}
