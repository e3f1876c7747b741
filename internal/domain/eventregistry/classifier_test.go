package eventregistry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuffixClassifier_IsEventResource(t *testing.T) {
	tests := []struct {
		name     string
		suffixes []string
		resource string
		expected bool
	}{
		{"default suffix matches", DefaultResourceSuffixes, "order-created.event", true},
		{"nested path matches", DefaultResourceSuffixes, "orders/v1/order-created.event", true},
		{"bpmn is ignored", DefaultResourceSuffixes, "process.bpmn", false},
		{"case sensitive", DefaultResourceSuffixes, "order.EVENT", false},
		{"suffix must be at the end", DefaultResourceSuffixes, "order.event.bak", false},
		{"second suffix matches", []string{".event", ".event.yaml"}, "order.event.yaml", true},
		{"no suffix matches", []string{".event", ".channel"}, "order.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewSuffixClassifier(tt.suffixes...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, c.IsEventResource(tt.resource))
		})
	}
}

func TestNewSuffixClassifier_Validation(t *testing.T) {
	c, err := NewSuffixClassifier()
	require.Nil(t, c)
	require.ErrorIs(t, err, ErrNoSuffixes)

	c, err = NewSuffixClassifier(".event", "")
	require.Nil(t, c)
	require.ErrorIs(t, err, ErrEmptySuffix)
}

func TestNewSuffixClassifier_CopiesSuffixes(t *testing.T) {
	suffixes := []string{".event"}
	c, err := NewSuffixClassifier(suffixes...)
	require.NoError(t, err)

	suffixes[0] = ".other"
	require.True(t, c.IsEventResource("a.event"))
	require.Equal(t, []string{".event"}, c.Suffixes())
}

func TestDefaultClassifier(t *testing.T) {
	c := DefaultClassifier()
	require.True(t, c.IsEventResource("a.event"))
	require.False(t, c.IsEventResource("b.bpmn"))
}
