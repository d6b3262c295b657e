package attrs

import (
	"reflect"

	"github.com/chetna1726/attribute-type-casting/internal/records"
	"github.com/chetna1726/attribute-type-casting/internal/registry"
	"github.com/chetna1726/attribute-type-casting/internal/structs/assign"
	"github.com/chetna1726/attribute-type-casting/internal/structs/models"
	"github.com/chetna1726/attribute-type-casting/internal/structs/scan"
	"github.com/chetna1726/attribute-type-casting/internal/structs/schemas"
	"github.com/chetna1726/attribute-type-casting/internal/types"
)

type Config struct {
	// Degree is the degree of the btree indexing the descriptors.
	Degree int
	// AttrsSize is the initial capacity of each record's value map.
	AttrsSize int
}

var defaultConfig Config = Config{
	Degree:    64,
	AttrsSize: 32,
}

// NewRegistry returns an empty attribute registry.
func NewRegistry(config Config) Registry {
	degree := config.Degree
	if degree == 0 {
		degree = defaultConfig.Degree
	}
	attrsSize := config.AttrsSize
	if attrsSize == 0 {
		attrsSize = defaultConfig.AttrsSize
	}
	return &localRegistry{
		reg:       registry.NewRegistry(degree),
		analyzer:  models.BuildCachingAnalyzer(),
		attrsSize: attrsSize,
	}
}

type localRegistry struct {
	reg       *registry.Registry
	analyzer  models.Analyzer
	attrsSize int
}

var _ Registry = (*localRegistry)(nil)

func (r *localRegistry) Register(attrs ...Attr) (err error) {
	err = r.reg.Register(attrs...)
	return
}

func (r *localRegistry) Declare(xs ...any) (err error) {
	for _, x := range xs {
		typ := reflect.TypeOf(x)
		if typ == nil {
			err = types.NewError("attrs.nilDeclaration")
			return
		}
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		var attrs []Attr
		attrs, err = schemas.Analyze(typ)
		if err != nil {
			return
		}
		err = r.reg.Register(attrs...)
		if err != nil {
			return
		}
	}
	return
}

func (r *localRegistry) Attrs() (attrs []Attr) {
	attrs = r.reg.Read().Select().Drain()
	return
}

func (r *localRegistry) Len() (n int) {
	n = r.reg.Read().Len()
	return
}

func (r *localRegistry) NewRecord() (rec *Record) {
	rec = &Record{
		rec:      records.NewRecord(r.reg.Read(), r.attrsSize),
		assigner: assign.NewAssigner(r.analyzer),
		scanner:  scan.NewScanner(r.analyzer),
	}
	return
}
