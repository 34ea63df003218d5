// Copyright 2024 OdmKit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mapper translates update specifications expressed against a mapped
// entity field graph into wire update documents.
//
// Field paths are resolved to wire aliases segment by segment; the positional
// placeholder "$" is preserved verbatim. Structured values whose runtime type
// is not deducible from the declared type at their field-path position are
// augmented with a type discriminator field.
package mapper

import (
	"time"

	"go.uber.org/zap"

	"github.com/odmkit/updatemap/internal/mapping"
	"github.com/odmkit/updatemap/internal/types"
	"github.com/odmkit/updatemap/internal/update"
	"github.com/odmkit/updatemap/internal/util/lazyerrors"
	"github.com/odmkit/updatemap/internal/util/must"
)

// DefaultDiscriminatorKey is the field name recording a structured value's
// concrete runtime type in the mapped document.
const DefaultDiscriminatorKey = "_class"

// UpdateMapper maps update specifications to wire update documents.
//
// The mapper itself is stateless; it is safe for concurrent use as long as
// the registry it consults is read-only.
type UpdateMapper struct {
	r                   *mapping.Registry
	l                   *zap.Logger
	metrics             *Metrics
	discriminatorKey    string
	omitHintsForUnknown bool
}

// UpdateMapperOpts represents UpdateMapper options.
type UpdateMapperOpts struct {
	L       *zap.Logger
	Metrics *Metrics

	// DiscriminatorKey overrides DefaultDiscriminatorKey.
	DiscriminatorKey string

	// OmitHintsForUnknown disables type discriminators for values whose
	// declared type is unknown at their field-path position.
	// By default such values are treated as ambiguous and discriminated.
	OmitHintsForUnknown bool
}

// NewUpdateMapper creates a mapper over the given metadata registry.
func NewUpdateMapper(r *mapping.Registry, opts *UpdateMapperOpts) *UpdateMapper {
	if r == nil {
		panic("mapper.NewUpdateMapper: nil registry")
	}

	if opts == nil {
		opts = new(UpdateMapperOpts)
	}

	m := &UpdateMapper{
		r:                   r,
		l:                   opts.L,
		metrics:             opts.Metrics,
		discriminatorKey:    opts.DiscriminatorKey,
		omitHintsForUnknown: opts.OmitHintsForUnknown,
	}

	if m.l == nil {
		m.l = zap.NewNop()
	}

	if m.metrics == nil {
		m.metrics = NewMetrics()
	}

	if m.discriminatorKey == "" {
		m.discriminatorKey = DefaultDiscriminatorKey
	}

	return m
}

// Map translates the update specification into a wire update document,
// resolving field paths against the metadata of the given root entity type.
//
// An empty or unregistered root leaves field paths unresolved;
// values are still converted.
func (m *UpdateMapper) Map(u *update.Update, root mapping.TypeName) (*types.Document, error) {
	if u == nil {
		panic("mapper.UpdateMapper.Map: u is nil")
	}

	res := must.NotFail(types.NewDocument())

	for _, op := range u.Operators() {
		opDoc := must.NotFail(types.NewDocument())

		for _, e := range u.Entries(op) {
			path, err := types.NewPathFromString(e.Path)
			if err != nil {
				return nil, lazyerrors.Errorf("%s: invalid path %q: %w", op, e.Path, err)
			}

			resolved, tgt := m.resolvePath(root, path)

			declared, elem := tgt.typ, tgt.elem
			if isElementwise(op) {
				// the target value is an array element, not the array itself
				declared, elem = tgt.elem, ""
			}

			var value any
			if op == "$rename" {
				value, err = m.mapRenameTarget(root, e.Value)
			} else {
				value, err = m.convertValue(declared, elem, e.Value)
			}
			if err != nil {
				return nil, lazyerrors.Errorf("%s: path %q: %w", op, e.Path, err)
			}

			if err = opDoc.Set(resolved.String(), value); err != nil {
				return nil, lazyerrors.Errorf("%s: path %q: %w", op, e.Path, err)
			}

			m.metrics.Mutations.WithLabelValues(op).Inc()

			m.l.Debug(
				"mapped update mutation",
				zap.String("operator", op),
				zap.String("path", e.Path),
				zap.String("resolved", resolved.String()),
			)
		}

		must.NoError(res.Set(op, opDoc))
	}

	return res, nil
}

// isElementwise returns true for operators whose target values are compared
// against the declared array element type.
func isElementwise(op string) bool {
	return op == "$push" || op == "$addToSet"
}

// target describes the statically declared types at the terminal path segment.
type target struct {
	typ  mapping.TypeName
	elem mapping.TypeName
}

// resolvePath resolves the path's segments to wire aliases against the root
// entity's field graph and reports the declared types at the terminal segment.
//
// The positional placeholder and numeric indexes are preserved verbatim and
// descend into the declared element type. Segments without metadata pass
// through unchanged, and resolution of the remaining segments stops.
func (m *UpdateMapper) resolvePath(root mapping.TypeName, path types.Path) (types.Path, target) {
	var cur *mapping.Entity
	if root != "" {
		cur, _ = m.r.Entity(root)
	}

	segments := path.Slice()
	out := make([]string, 0, len(segments))

	var tgt target
	var last mapping.Field
	var known bool

	for _, segment := range segments {
		if types.IsIndex(segment) {
			out = append(out, segment)

			cur = nil
			tgt = target{}

			if known {
				tgt.typ = last.Elem
				last = mapping.Field{Type: last.Elem}

				if last.Type != "" {
					cur, _ = m.r.Entity(last.Type)
				}
			} else {
				last, known = mapping.Field{}, false
			}

			continue
		}

		if cur == nil {
			out = append(out, segment)
			last, known = mapping.Field{}, false
			tgt = target{}

			continue
		}

		f, ok := cur.Field(segment)
		if !ok {
			out = append(out, segment)
			cur = nil
			last, known = mapping.Field{}, false
			tgt = target{}

			continue
		}

		out = append(out, f.Alias)
		last, known = f, true
		tgt = target{typ: f.Type, elem: f.Elem}

		cur = nil
		if f.Type != "" {
			cur, _ = m.r.Entity(f.Type)
		}
	}

	return types.NewPath(out...), tgt
}

// mapRenameTarget resolves a "$rename" target, which is a field path itself.
func (m *UpdateMapper) mapRenameTarget(root mapping.TypeName, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, lazyerrors.Errorf("$rename target must be a string, got %T", v)
	}

	path, err := types.NewPathFromString(s)
	if err != nil {
		return nil, lazyerrors.Errorf("invalid $rename target %q: %w", s, err)
	}

	resolved, _ := m.resolvePath(root, path)

	return resolved.String(), nil
}

// convertValue converts a mutation target value into its wire representation.
// declared is the statically declared type at the value's field-path position;
// elem is the declared element type if the value is a whole array.
func (m *UpdateMapper) convertValue(declared, elem mapping.TypeName, v any) (any, error) {
	switch v := v.(type) {
	case nil:
		// a null target value never receives a discriminator
		return types.Null, nil

	case types.NullType:
		return v, nil

	case *mapping.Object:
		return m.convertObject(declared, v)

	case *update.Each:
		return m.convertEach(declared, v)

	case []any:
		arr := types.MakeArray(len(v))

		for i, el := range v {
			converted, err := m.convertValue(elem, "", el)
			if err != nil {
				return nil, lazyerrors.Errorf("index %d: %w", i, err)
			}

			if err = arr.Append(converted); err != nil {
				return nil, lazyerrors.Error(err)
			}
		}

		return arr, nil

	case *types.Document:
		// a raw document has no runtime type information; pass it through
		return v.DeepCopy(), nil

	case *types.Array:
		return v.DeepCopy(), nil

	case float64, string, types.Binary, types.ObjectID, bool,
		time.Time, types.Regex, int32, types.Timestamp, int64:
		return v, nil

	default:
		return nil, lazyerrors.Errorf("unsupported value type: %[1]T (%[1]v)", v)
	}
}

// convertEach converts a "$push ... $each" wrapper.
// The wrapper itself never receives a discriminator;
// each element is evaluated independently against the declared element type.
func (m *UpdateMapper) convertEach(declared mapping.TypeName, e *update.Each) (*types.Document, error) {
	arr := types.MakeArray(len(e.Values()))

	for i, el := range e.Values() {
		converted, err := m.convertValue(declared, "", el)
		if err != nil {
			return nil, lazyerrors.Errorf("$each index %d: %w", i, err)
		}

		if err = arr.Append(converted); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	doc := must.NotFail(types.NewDocument("$each", arr))

	if p := e.PositionModifier(); p != nil {
		must.NoError(doc.Set("$position", int32(*p)))
	}

	if s := e.SliceModifier(); s != nil {
		must.NoError(doc.Set("$slice", int32(*s)))
	}

	if s := e.SortModifier(); s != nil {
		must.NoError(doc.Set("$sort", s.DeepCopy()))
	}

	return doc, nil
}

// convertObject converts a typed object into a wire document,
// resolving its field aliases via the metadata of its runtime type and
// injecting a type discriminator if the runtime type is not deducible
// from the declared type.
func (m *UpdateMapper) convertObject(declared mapping.TypeName, o *mapping.Object) (*types.Document, error) {
	ent, _ := m.r.Entity(o.Type())

	doc := must.NotFail(types.NewDocument())

	for _, key := range o.Keys() {
		v := must.NotFail(o.Get(key))

		alias := key
		var ftyp, felem mapping.TypeName

		if ent != nil {
			if f, ok := ent.Field(key); ok {
				alias, ftyp, felem = f.Alias, f.Type, f.Elem
			}
		}

		converted, err := m.convertValue(ftyp, felem, v)
		if err != nil {
			return nil, lazyerrors.Errorf("field %q: %w", key, err)
		}

		if err = doc.Set(alias, converted); err != nil {
			return nil, lazyerrors.Errorf("field %q: %w", key, err)
		}
	}

	if m.needsTypeHint(declared, o.Type()) {
		must.NoError(doc.Set(m.discriminatorKey, string(o.Type())))
		m.metrics.TypeHints.Inc()

		m.l.Debug(
			"wrote type hint",
			zap.String("declared", string(declared)),
			zap.String("runtime", string(o.Type())),
		)
	}

	return doc, nil
}

// needsTypeHint reports whether a value of the given runtime type requires a
// type discriminator at a position with the given declared type.
//
// A hint is required exactly when the runtime type cannot be statically
// proven from the declared type: the declared type is unknown (subject to
// OmitHintsForUnknown), abstract, or differs from the runtime type.
func (m *UpdateMapper) needsTypeHint(declared, runtime mapping.TypeName) bool {
	if m.r.Simple(runtime) {
		return false
	}

	if declared == runtime {
		return false
	}

	if declared == "" {
		return !m.omitHintsForUnknown
	}

	return true
}
