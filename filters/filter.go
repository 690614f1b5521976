// Package filters turns request parameters into GORM predicates. Each resource
// declares a Spec: an ordered whitelist of parameters, each bound to a Handler.
// Parameters outside the whitelist, and values that are empty, never reach a
// handler. Handlers never fail; malformed values leave the query untouched.
package filters

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Handler refines db with the cleaned value of one parameter.
type Handler func(db *gorm.DB, value any) *gorm.DB

type Rule struct {
	Param string
	Apply Handler
}

// Ordering is a list of ORDER BY columns.
type Ordering []clause.OrderByColumn

func (o Ordering) Apply(db *gorm.DB) *gorm.DB {
	for _, col := range o {
		db = db.Order(col)
	}
	return db
}

// Asc orders by a column of the query's own table.
func Asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: column}}
}

func Desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: column}, Desc: true}
}

type Spec struct {
	resource     string
	rules        []Rule
	defaultOrder Ordering
}

// NewSpec panics on duplicate parameters or missing handlers; specs are
// declared at package init so mistakes surface at startup.
func NewSpec(resource string, defaultOrder Ordering, rules ...Rule) *Spec {
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if r.Apply == nil {
			panic(fmt.Sprintf("filters: %s: parameter %q has no handler", resource, r.Param))
		}
		if _, dup := seen[r.Param]; dup {
			panic(fmt.Sprintf("filters: %s: duplicate parameter %q", resource, r.Param))
		}
		seen[r.Param] = struct{}{}
	}
	return &Spec{resource: resource, rules: rules, defaultOrder: defaultOrder}
}

func (s *Spec) Resource() string {
	return s.resource
}

// Whitelist returns the recognized parameters in application order.
func (s *Spec) Whitelist() []string {
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Param
	}
	return out
}

// EnsureOrder applies the default ordering when nothing has ordered db yet.
func (s *Spec) EnsureOrder(db *gorm.DB) *gorm.DB {
	if Ordered(db) {
		return db
	}
	return s.defaultOrder.Apply(db)
}

// Filter binds a Spec to one request's parameters.
type Filter struct {
	spec    *Spec
	params  Params
	applied []string
}

func New(spec *Spec, params Params) *Filter {
	return &Filter{spec: spec, params: params}
}

// Apply walks the whitelist in declaration order and hands every present,
// meaningful parameter to its handler.
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	f.applied = f.applied[:0]
	for _, rule := range f.spec.rules {
		raw, ok := f.params[rule.Param]
		if !ok {
			continue
		}
		value, ok := Clean(raw)
		if !ok {
			continue
		}
		db = rule.Apply(db, value)
		f.applied = append(f.applied, rule.Param)
	}
	return db
}

// Applied lists the parameters handed to a handler by the last Apply.
func (f *Filter) Applied() []string {
	return append([]string(nil), f.applied...)
}

// Apply filters db by spec using params.
func Apply(db *gorm.DB, spec *Spec, params Params) *gorm.DB {
	return New(spec, params).Apply(db)
}

// Scope is Apply in the form accepted by gorm.DB.Scopes.
func Scope(spec *Spec, params Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return Apply(db, spec, params)
	}
}

// Ordered reports whether an ORDER BY clause has been added to db.
func Ordered(db *gorm.DB) bool {
	if db == nil || db.Statement == nil {
		return false
	}
	_, ok := db.Statement.Clauses["ORDER BY"]
	return ok
}
