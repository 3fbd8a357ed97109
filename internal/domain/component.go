package domain

// Component is a detected software component.
type Component struct {
	ID      string
	Name    string
	Version string
}

// ComponentLink is a many-to-many edge between a component and a service.
type ComponentLink struct {
	ComponentID string
	ServiceID   string
}
