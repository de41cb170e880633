package game

import "time"

// timerTickMsg is sent every second to update the game clock.
type timerTickMsg time.Time

// gameEndMsg is sent to trigger the end-of-game flow.
type gameEndMsg struct{}
