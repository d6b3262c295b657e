package types

// Attr is a convenient represention of the attributes of an attribute.
type Attr struct {
	// Ident is the public identifier of an attribute.
	Ident Ident
	// Type converts values written to and read from the attribute. When nil,
	// TypeName must name a registered type to resolve at registration time.
	Type Type
	// TypeName is the symbolic name of a registered type. It is ignored when
	// Type is given directly.
	TypeName Ident
	// Default supplies the value read from records never explicitly set. A
	// nil Default reads as nil.
	Default DefaultSpec
	// FromStorage marks the default as already in storage form, to be
	// materialized through Deserialize. Left false, a default is user input
	// and materializes through the type's Cast.
	FromStorage bool
	// Virtual marks an attribute with no storage column. Virtual attributes
	// refuse Export and are skipped by ExportAll.
	Virtual bool
}
