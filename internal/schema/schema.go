package schema

// Kind identifies the rule set applied to a field.
type Kind int

const (
	KindString Kind = iota
	KindEmail
	KindInteger
	KindNumber
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindEmail:
		return "email"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Field is one required entry of a schema.
type Field struct {
	Name string
	Kind Kind
}

func String(name string) Field  { return Field{Name: name, Kind: KindString} }
func Email(name string) Field   { return Field{Name: name, Kind: KindEmail} }
func Integer(name string) Field { return Field{Name: name, Kind: KindInteger} }
func Number(name string) Field  { return Field{Name: name, Kind: KindNumber} }
func Date(name string) Field    { return Field{Name: name, Kind: KindDate} }

// Schema is an ordered list of required fields. Validation walks the fields in
// declaration order and stops at the first violation.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// New builds a schema. Field names must be unique and match the JSON names of
// the record the schema guards.
func New(name string, fields ...Field) *Schema {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := idx[f.Name]; dup {
			panic("schema " + name + ": duplicate field " + f.Name)
		}
		idx[f.Name] = i
	}
	return &Schema{name: name, fields: fields, index: idx}
}

func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the declared fields.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Has reports whether name is a declared field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}
