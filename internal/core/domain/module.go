package domain

// Module is a loaded module reference.
//
// A nil *Module returned together with a nil error is the absent marker: the lookup
// was for a target that does not exist.
type Module struct {
	// Name is the path the module was requested under.
	Name string
	// Location is the concrete location the resolver mapped Name to.
	Location string
	// Value is the loaded module itself.
	Value any
}
