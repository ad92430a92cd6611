package catalog

// Vehicle is a rideable quad bike or buggy offered for rental.
type Vehicle struct {
	id          string
	name        string
	description string
	kind        string
	image       string
}

// NewVehicle creates a catalog vehicle.
func NewVehicle(id, name, description, kind, image string) Vehicle {
	return Vehicle{id: id, name: name, description: description, kind: kind, image: image}
}

// ID returns the vehicle identifier.
func (v Vehicle) ID() string { return v.id }

// Name returns the display name.
func (v Vehicle) Name() string { return v.name }

// Description returns the marketing description.
func (v Vehicle) Description() string { return v.description }

// Kind returns the vehicle type (e.g. "Sport", "Utility", "Kids").
func (v Vehicle) Kind() string { return v.kind }

// Image returns the image reference.
func (v Vehicle) Image() string { return v.image }
