package touchtrail

// Place describes where a scene happens.
// Nothing but a name is modeled yet: how places relate to objects has not been defined.
type Place struct {
	Name string
}
