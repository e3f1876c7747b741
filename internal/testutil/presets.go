package testutil

// Keys and resource names of the standard deployment fixture.
const (
	OrdersResource    = "orders.event"
	ProcessResource   = "process.bpmn"
	CustomersResource = "customers/customers.event"

	OrderCreatedKey       = "orderCreated"
	CustomerRegisteredKey = "customerRegistered"
	CustomerDeletedKey    = "customerDeleted"
)

// WithStandardEvents adds the standard fixture: one single-definition event
// resource, one unclassified process resource and one resource holding a
// list of two definitions.
func (b *DeploymentBuilder) WithStandardEvents() *DeploymentBuilder {
	return b.
		WithEvent(OrdersResource, OrderCreatedKey,
			Name("Order created"),
			InboundChannels("orders"),
			Correlation("orderId", "string"),
			Payload("orderId", "string"),
			Payload("amount", "double")).
		WithResource(ProcessResource, []byte(`<definitions id="orderProcess"/>`)).
		WithEvents(CustomersResource,
			Event(CustomerRegisteredKey,
				Name("Customer registered"),
				OutboundChannels("crm", "mail"),
				Correlation("customerId", "string"),
				Payload("email", "string")),
			Event(CustomerDeletedKey,
				Payload("customerId", "string")))
}

// StandardDefinitionKeys lists the definition keys of WithStandardEvents in
// deployment order.
func StandardDefinitionKeys() []string {
	return []string{OrderCreatedKey, CustomerRegisteredKey, CustomerDeletedKey}
}
