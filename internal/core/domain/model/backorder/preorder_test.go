package backorder

import (
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewPreorder_Created(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	preorder, err := NewPreorder(id, customerID, productID, 2, 1)

	require.NoError(t, err)
	assert.NoError(t, preorder.Validate())
	assert.Equal(t, id, preorder.ID())
	assert.Equal(t, customerID, preorder.CustomerID())
	assert.Equal(t, productID, preorder.ProductID())
	assert.Equal(t, 2, preorder.Quantity())
	assert.Equal(t, 1, preorder.Position())
	assert.Equal(t, PreorderActive, preorder.Status())
	assert.True(t, preorder.IsActive())
	assert.Nil(t, preorder.ConvertedAt())
}

func Test_NewPreorder_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		position int
	}{
		{"zero quantity", 0, 1},
		{"zero position", 1, 0},
		{"negative position", 1, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPreorder(kernel.NewUUID(), kernel.NewUUID(),
				kernel.NewUUID(), tt.quantity, tt.position)
			assert.Error(t, err)
		})
	}
}

func Test_Preorder_Convert_Idempotent(t *testing.T) {
	preorder, err := NewPreorder(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), 1, 1)
	require.NoError(t, err)

	preorder.Convert()
	require.Equal(t, PreorderConverted, preorder.Status())
	require.NotNil(t, preorder.ConvertedAt())
	firstConvertedAt := *preorder.ConvertedAt()

	preorder.Convert()
	assert.Equal(t, PreorderConverted, preorder.Status())
	assert.Equal(t, firstConvertedAt, *preorder.ConvertedAt())
}

func Test_PreorderStatusFromString(t *testing.T) {
	status, err := PreorderStatusFromString("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, PreorderActive, status)

	status, err = PreorderStatusFromString("CONVERTED")
	require.NoError(t, err)
	assert.Equal(t, PreorderConverted, status)

	_, err = PreorderStatusFromString("CANCELLED")
	assert.Error(t, err)
}

func Test_StatusFromString(t *testing.T) {
	for _, name := range []string{"PENDING", "PARTIALLY_AVAILABLE", "ALLOCATED"} {
		t.Run(name, func(t *testing.T) {
			status, err := StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		})
	}

	_, err := StatusFromString("DONE")
	assert.Error(t, err)
}
