package game

// Actor is the player-controlled bird. Its vertical position is a pure
// function of the height at the last boost and the ticks elapsed since:
//
//	position(t) = launchHeight + V0*t + 0.5*gravity*t²
//
// A boost freezes the current height as the new arc origin, so the arc
// restarts from wherever the bird is at the instant of the press.
type Actor struct {
	launchHeight     float64 // Height at the moment of the last boost
	ticksSinceLaunch int     // Ticks elapsed since that boost

	gravity       float64
	boostVelocity float64
}

// NewActor creates an actor with the given kinematic constants.
func NewActor(gravity, boostVelocity float64) *Actor {
	return &Actor{
		gravity:       gravity,
		boostVelocity: boostVelocity,
	}
}

// Spawn places the actor at the given row and zeroes its arc.
func (a *Actor) Spawn(row float64) {
	a.launchHeight = row
	a.ticksSinceLaunch = 0
}

// Position returns the actor's row along its parabolic arc.
// Row 0 is the ceiling; larger values are lower on screen.
func (a *Actor) Position() float64 {
	t := float64(a.ticksSinceLaunch)
	return a.launchHeight + a.boostVelocity*t + 0.5*a.gravity*t*t
}

// Boost restarts the arc from the current height with the boost velocity.
func (a *Actor) Boost() {
	a.launchHeight = a.Position()
	a.ticksSinceLaunch = 0
}

// AdvanceTick moves the actor one tick along its arc.
// Called on every tick that did not consume a boost.
func (a *Actor) AdvanceTick() {
	a.ticksSinceLaunch++
}

// Velocity returns the instantaneous vertical velocity.
// Positive means falling (rows grow downward).
func (a *Actor) Velocity() float64 {
	return a.gravity*float64(a.ticksSinceLaunch) + a.boostVelocity
}

// Descending reports whether the actor is on the falling part of its arc.
// Used only to pick the sprite pose.
func (a *Actor) Descending() bool {
	return a.Velocity() > 0
}

// TicksSinceLaunch returns the ticks elapsed since the last boost.
func (a *Actor) TicksSinceLaunch() int {
	return a.ticksSinceLaunch
}
