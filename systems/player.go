package systems

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		// Frozen until the death system moves the player back
		if playerEntry.HasComponent(components.Death) {
			return
		}

		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)

		handleMovementInput(input, player, physics)
		handleJumpInput(ecs, input, physics)
	})
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	// Acceleration must beat friction for the player to get moving
	accel := cfg.Player.Acceleration + physics.Friction
	switch {
	case left && !right:
		physics.SpeedX -= accel
		player.Direction.X = -1
	case right && !left:
		physics.SpeedX += accel
		player.Direction.X = 1
	}
}

func handleJumpInput(ecs *ecs.ECS, input *components.InputData, physics *components.PhysicsData) {
	jump := GetAction(input, cfg.ActionJump)
	if jump.JustPressed && physics.OnGround != nil {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
		PlaySFX(ecs, cfg.SoundJump)
	}

	// Short hop when jump is released while rising
	if jump.JustReleased && physics.SpeedY < 0 {
		physics.SpeedY /= 2
	}
}
