package catalog

import "strconv"

// OrderItem is a single line item on a production order. Attributes carries
// any further item properties usable as grouping keys beyond the fixed ones.
type OrderItem struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	SKU        string            `json:"sku" yaml:"sku"`
	Quantity   int               `json:"quantity" yaml:"quantity"`
	Color      string            `json:"color" yaml:"color"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// GroupingKey reads the named field off the item. An unknown field or an
// empty value returns "", which the grouping function maps to the reserved
// ungrouped bucket.
func (i OrderItem) GroupingKey(field string) string {
	switch field {
	case "sku":
		return i.SKU
	case "color":
		return i.Color
	case "name":
		return i.Name
	case "quantity":
		if i.Quantity == 0 {
			return ""
		}
		return strconv.Itoa(i.Quantity)
	default:
		return i.Attributes[field]
	}
}

// Order is a customer production order composed of line items. GroupingFields
// declares which item fields the user may partition tickets by.
type Order struct {
	ID             string      `json:"id" yaml:"id"`
	Name           string      `json:"name" yaml:"name"`
	TemplateID     string      `json:"template_id" yaml:"template_id"`
	Items          []OrderItem `json:"items" yaml:"items"`
	GroupingFields []string    `json:"grouping_fields" yaml:"grouping_fields"`
}

// HasGroupingField reports whether field is one of the order's declared
// grouping fields.
func (o *Order) HasGroupingField(field string) bool {
	for _, f := range o.GroupingFields {
		if f == field {
			return true
		}
	}
	return false
}
