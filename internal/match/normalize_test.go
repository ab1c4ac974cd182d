package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"Order Id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},
		{"XMLParser", "xmlparser"},
		{"price.cents", "pricecents"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"ABcD", []string{"a", "bc", "d"}},
		{"order_id", []string{"order", "id"}},
		{"price2", []string{"price", "2"}},
		{"order2Ship", []string{"order", "2", "ship"}},
		{"2nd", []string{"2nd"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		input      string
		exported   string
		unexported string
	}{
		{"order_id", "OrderID", "orderID"},
		{"customer name", "CustomerName", "customerName"},
		{"Color", "Color", "color"},
		{"url_path", "URLPath", "urlPath"},
		{"ID", "ID", "id"},
		{"2nd place", "X2ndPlace", "x2ndPlace"},
		{"$amount", "Amount", "amount"},
		{"***", "X", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.exported, ExportedName(tt.input))
			assert.Equal(t, tt.unexported, UnexportedName(tt.input))
		})
	}
}
