package eventregistry

// EventDefinition is the parsed representation of one event definition.
type EventDefinition struct {
	id           string // persisted identifier, assigned on deploy
	key          string // e.g., "orderCreated"
	name         string // human-readable name
	category     string
	version      int
	tenantID     string
	deploymentID string
	resourceName string
	model        *EventModel
}

// NewEventDefinition creates a definition for a parsed model.
// The key and name are taken from the model.
func NewEventDefinition(model *EventModel, resourceName string) *EventDefinition {
	return &EventDefinition{
		key:          model.Key,
		name:         model.Name,
		resourceName: resourceName,
		model:        model,
	}
}

// RestoreEventDefinition recreates a persisted definition.
// Used by repositories when loading stored rows.
func RestoreEventDefinition(id, key, name, category string, version int, tenantID, deploymentID, resourceName string) *EventDefinition {
	return &EventDefinition{
		id:           id,
		key:          key,
		name:         name,
		category:     category,
		version:      version,
		tenantID:     tenantID,
		deploymentID: deploymentID,
		resourceName: resourceName,
	}
}

// ID returns the persisted identifier, empty before the definition is stored.
func (d *EventDefinition) ID() string {
	return d.id
}

// SetID sets the persisted identifier.
func (d *EventDefinition) SetID(id string) {
	d.id = id
}

// Key returns the event definition key.
func (d *EventDefinition) Key() string {
	return d.key
}

// Name returns the human-readable name.
func (d *EventDefinition) Name() string {
	return d.name
}

// Category returns the definition category.
func (d *EventDefinition) Category() string {
	return d.category
}

// SetCategory sets the definition category.
func (d *EventDefinition) SetCategory(category string) {
	d.category = category
}

// Version returns the definition version, 0 before deployment.
func (d *EventDefinition) Version() int {
	return d.version
}

// SetVersion sets the definition version.
func (d *EventDefinition) SetVersion(version int) {
	d.version = version
}

// TenantID returns the owning tenant.
func (d *EventDefinition) TenantID() string {
	return d.tenantID
}

// SetTenantID sets the owning tenant.
func (d *EventDefinition) SetTenantID(tenantID string) {
	d.tenantID = tenantID
}

// DeploymentID returns the id of the deployment the definition belongs to.
func (d *EventDefinition) DeploymentID() string {
	return d.deploymentID
}

// SetDeploymentID sets the owning deployment id.
func (d *EventDefinition) SetDeploymentID(id string) {
	d.deploymentID = id
}

// ResourceName returns the name of the resource the definition was parsed from.
func (d *EventDefinition) ResourceName() string {
	return d.resourceName
}

// Model returns the parsed event model. Nil for definitions restored from storage.
func (d *EventDefinition) Model() *EventModel {
	return d.model
}
