package components

import "github.com/yohamta/donburi"

// TextBoxData is the cutscene dialogue box
type TextBoxData struct {
	Text    string
	Visible bool
}

var TextBox = donburi.NewComponentType[TextBoxData]()

// FollowTextData is a short line drawn above an entity, plus a prompt drawn
// above the controlled kid.
type FollowTextData struct {
	Entity     donburi.Entity
	Text       string
	Lock       float64 // seconds left before Text clears
	PlayerText string
}

var FollowText = donburi.NewComponentType[FollowTextData]()
