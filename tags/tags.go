package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Zone     = donburi.NewTag().SetName("Zone")
	Cutscene = donburi.NewTag().SetName("CutsceneZone")
	// LevelScoped marks everything a sub-level setup spawns so teardown can
	// remove it in one sweep.
	LevelScoped = donburi.NewTag().SetName("LevelScoped")
)

// Resolv tags for trigger zones
const (
	ResolvFloor         = "floor"
	ResolvStair         = "stair"
	ResolvLevelSwitch   = "level_switch"
	ResolvGetTicket     = "get_ticket"
	ResolvTicketCheck   = "ticket_check"
	ResolvDespawnPlayer = "despawn_player"
	ResolvCutscene      = "cutscene"
	ResolvCamera        = "camera"
)
