package variables

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/smartcalc"
)

// Store maps variable tags to values. Tags are kept in lexicographic order.
//
// The zero value is not usable, clients have to call NewStore.
type Store struct {
	vars *treemap.Map
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{vars: treemap.NewWithStringComparator()}
}

// Lookup returns the value of variable tag. If tag is not set, Lookup returns
// an error matching smartcalc.ErrUnknownVariable.
//
// Interface grammar.Bindings.
func (s *Store) Lookup(tag string) (smartcalc.Number, error) {
	v, found := s.vars.Get(tag)
	if !found {
		tracer().P("var", tag).Debugf("lookup of unknown variable")
		return smartcalc.Number{}, smartcalc.Errorf(smartcalc.UnknownVariable, 0, "unknown variable %q", tag)
	}
	return v.(smartcalc.Number), nil
}

// Set binds tag to n. Any previous value of tag is replaced.
// Set does not check the tag, this is up to the caller.
func (s *Store) Set(tag string, n smartcalc.Number) {
	smartcalc.Assertf(tag != "", "variable with empty tag")
	s.vars.Put(tag, n)
	tracer().P("var", tag).Debugf("%s = %s", tag, n)
}

// IsSet is a predicate: has tag been assigned a value?
func (s *Store) IsSet(tag string) bool {
	_, found := s.vars.Get(tag)
	return found
}

// Len returns the number of variables in the store.
func (s *Store) Len() int {
	return s.vars.Size()
}

// Each calls f for every variable, in lexicographic order of the tags.
func (s *Store) Each(f func(tag string, n smartcalc.Number)) {
	s.vars.Each(func(k, v interface{}) {
		f(k.(string), v.(smartcalc.Number))
	})
}

// Tags returns the tags of all variables, in lexicographic order.
func (s *Store) Tags() []string {
	keys := s.vars.Keys()
	tags := make([]string, len(keys))
	for i, k := range keys {
		tags[i] = k.(string)
	}
	return tags
}

func (s *Store) String() string {
	return fmt.Sprintf("variables%v", s.Tags())
}
