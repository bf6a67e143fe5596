package azuresql

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/stretchr/testify/assert"
)

func TestIsStandalone(t *testing.T) {
	standalone := &armsql.Database{
		ID:   to.Ptr("/subscriptions/s/resourceGroups/rg/providers/Microsoft.Sql/servers/srv/databases/app"),
		Name: to.Ptr("app"),
		SKU:  &armsql.SKU{Tier: to.Ptr("Standard"), Capacity: to.Ptr(int32(50))},
	}

	tests := []struct {
		name     string
		database *armsql.Database
		want     bool
	}{
		{name: "standalone database", database: standalone, want: true},
		{name: "nil database", database: nil, want: false},
		{
			name: "master is a system database",
			database: &armsql.Database{
				ID:   to.Ptr("/id"),
				Name: to.Ptr("Master"),
				SKU:  standalone.SKU,
			},
			want: false,
		},
		{
			name: "pool member is scored through its pool",
			database: &armsql.Database{
				ID:   standalone.ID,
				Name: standalone.Name,
				SKU:  standalone.SKU,
				Properties: &armsql.DatabaseProperties{
					ElasticPoolID: to.Ptr("/pools/p1"),
				},
			},
			want: false,
		},
		{
			name: "missing sku",
			database: &armsql.Database{
				ID:   standalone.ID,
				Name: standalone.Name,
			},
			want: false,
		},
		{
			name: "system tier",
			database: &armsql.Database{
				ID:   standalone.ID,
				Name: standalone.Name,
				SKU:  &armsql.SKU{Tier: to.Ptr("System"), Capacity: to.Ptr(int32(0))},
			},
			want: false,
		},
		{
			name: "missing capacity",
			database: &armsql.Database{
				ID:   standalone.ID,
				Name: standalone.Name,
				SKU:  &armsql.SKU{Tier: to.Ptr("Standard")},
			},
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, isStandalone(test.database))
		})
	}
}

func TestExtractResourceGroup(t *testing.T) {
	id := "/subscriptions/sub-1/resourceGroups/My-RG/providers/Microsoft.Sql/servers/srv"
	assert.Equal(t, "My-RG", extractResourceGroup(id))

	// casing of the segment marker varies between APIs
	assert.Equal(t, "rg2", extractResourceGroup("/subscriptions/s/resourcegroups/rg2/providers/x"))

	assert.Equal(t, "", extractResourceGroup("/subscriptions/sub-1"))
	assert.Equal(t, "", extractResourceGroup(""))
}
