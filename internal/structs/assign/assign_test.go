package assign

import (
	"reflect"
	"testing"
	"time"

	"github.com/chetna1726/attribute-type-casting/internal/records"
	"github.com/chetna1726/attribute-type-casting/internal/registry"
	"github.com/chetna1726/attribute-type-casting/internal/structs/models"
	"github.com/chetna1726/attribute-type-casting/internal/structs/schemas"
	. "github.com/chetna1726/attribute-type-casting/internal/types"
	"github.com/stretchr/testify/assert"
)

func buildRecord(t *testing.T, x any) (rec *records.Record) {
	t.Helper()
	reg := registry.NewRegistry(32)
	attrs, err := schemas.Analyze(reflect.TypeOf(x))
	assert.NoError(t, err)
	err = reg.Register(attrs...)
	assert.NoError(t, err)
	rec = records.NewRecord(reg.Read(), 32)
	return
}

func TestAssign(t *testing.T) {
	type person struct {
		name string `attr:"person/name"`
		age  int    `attr:"person/age,ignoreempty"`
		pets *int   `attr:"person/pets"`
		// rich field values must be public to be read without unsafe
		Birthdate time.Time `attr:"person/birthdate,type=date,ignoreempty"`
	}

	t.Run("assert", func(t *testing.T) {
		rec := buildRecord(t, person{})
		assigner := NewAssigner(models.BuildCachingAnalyzer())
		epoch := time.Date(1969, 7, 20, 20, 17, 54, 0, time.UTC)
		err := assigner.Assign(rec, person{name: "Donald", age: 48, Birthdate: epoch})
		assert.NoError(t, err)

		value, err := rec.Get("person/name")
		assert.NoError(t, err)
		assert.Equal(t, "Donald", value)

		value, err = rec.Get("person/age")
		assert.NoError(t, err)
		assert.Equal(t, int64(48), value)

		value, err = rec.Get("person/birthdate")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC), value)
	})

	t.Run("zero value with ignoreempty", func(t *testing.T) {
		rec := buildRecord(t, person{})
		assigner := NewAssigner(models.BuildCachingAnalyzer())
		err := assigner.Assign(rec, person{name: "Donald"})
		assert.NoError(t, err)

		value, err := rec.Get("person/age")
		assert.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("pointer value", func(t *testing.T) {
		rec := buildRecord(t, person{})
		assigner := NewAssigner(models.BuildCachingAnalyzer())
		four := 4
		err := assigner.Assign(rec, &person{name: "Donald", pets: &four})
		assert.NoError(t, err)

		value, err := rec.Get("person/pets")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), value)
	})

	t.Run("nil pointer fields are unassigned", func(t *testing.T) {
		rec := buildRecord(t, person{})
		assigner := NewAssigner(models.BuildCachingAnalyzer())
		err := assigner.Assign(rec, person{name: "Donald"})
		assert.NoError(t, err)

		value, err := rec.Get("person/pets")
		assert.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("invalid values", func(t *testing.T) {
		rec := buildRecord(t, person{})
		assigner := NewAssigner(models.BuildCachingAnalyzer())
		assert.Error(t, assigner.Assign(rec, 5))
		assert.Error(t, assigner.Assign(rec, nil))
		var p *person
		assert.Error(t, assigner.Assign(rec, p))
	})
}

func TestAssignCastFailures(t *testing.T) {
	type memo struct {
		count string `attr:"memo/count,type=integer"`
	}

	rec := buildRecord(t, memo{})
	assigner := NewAssigner(models.BuildCachingAnalyzer())

	err := assigner.Assign(rec, memo{count: "soup"})
	assert.ErrorIs(t, err, ErrCannotCoerce)

	err = assigner.Assign(rec, memo{count: "27.43"})
	assert.NoError(t, err)
	value, err := rec.Get("memo/count")
	assert.NoError(t, err)
	assert.Equal(t, int64(27), value)
}
