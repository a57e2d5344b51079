package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/pkg/validate"
)

type sample struct {
	Name     string `json:"name" validate:"required,max=5"`
	Cost     string `json:"cost" validate:"required,decimal_gte0"`
	LeadTime string `json:"leadTime" validate:"required,int_gte0"`
	Quantity string `json:"quantity" validate:"omitempty,int_gt0"`
	Courier  string `json:"courier" validate:"notblank"`
}

func TestStruct_Valido(t *testing.T) {
	err := validate.Struct(sample{Name: "abc", Cost: "5.75", LeadTime: "0", Quantity: "3", Courier: "DHL"})
	assert.NoError(t, err)
}

func TestStruct_LimiteInt32(t *testing.T) {
	err := validate.Struct(sample{Name: "a", Cost: "1", LeadTime: "2147483647", Quantity: "2147483647", Courier: "x"})
	assert.NoError(t, err)
}

func TestStruct_ReglasPropias(t *testing.T) {
	cases := []struct {
		name  string
		in    sample
		field string
		rule  string
	}{
		{"costo negativo", sample{Name: "a", Cost: "-1", LeadTime: "1", Courier: "x"}, "cost", "decimal_gte0"},
		{"costo no numérico", sample{Name: "a", Cost: "gratis", LeadTime: "1", Courier: "x"}, "cost", "decimal_gte0"},
		{"lead time decimal", sample{Name: "a", Cost: "1", LeadTime: "1.5", Courier: "x"}, "leadTime", "int_gte0"},
		{"cantidad cero", sample{Name: "a", Cost: "1", LeadTime: "1", Quantity: "0", Courier: "x"}, "quantity", "int_gt0"},
		{"courier en blanco", sample{Name: "a", Cost: "1", LeadTime: "1", Courier: "   "}, "courier", "notblank"},
		{"lead time fuera de int32", sample{Name: "a", Cost: "1", LeadTime: "3000000000", Courier: "x"}, "leadTime", "int_gte0"},
		{"cantidad fuera de int32", sample{Name: "a", Cost: "1", LeadTime: "1", Quantity: "3000000000", Courier: "x"}, "quantity", "int_gt0"},
		{"nombre largo", sample{Name: "abcdef", Cost: "1", LeadTime: "1", Courier: "x"}, "name", "max"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.in)
			require.Error(t, err)

			var verr *validate.Error
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
			assert.Equal(t, tc.rule, verr.Fields[0].Rule)
		})
	}
}
