// Package adapt copies same-named fields between structs by reflection.
//
// It complements the typed builders of package mappers for the common case where most fields
// line up by name and only a few need attention:
//
//	a := adapt.NewBuilder().
//		AddConverter("CreatedAt", converters.Lift(converters.NullTime)).
//		Build()
//
//	m := mappers.Mutable[*UserModel](func() *User { return new(User) }).
//		Bind(adapt.Step[*UserModel, *User](a)).
//		Bind(mappers.Into(mappers.From(fullName), (*User).SetDisplayName)).
//		Build()
//
// # Matching Rules
//
// For every exported destination field, in declaration order:
//  1. A source field of the same name is looked up, then one with the same json name, then,
//     with WithCaseInsensitive, one whose name matches ignoring case.
//  2. A converter registered for the field wins; pair scope before destination scope before
//     global scope.
//  3. Otherwise the value is assigned, converted between convertible kinds, or adapted
//     recursively when both sides are structs.
//  4. Anything else is skipped, or reported when WithStrictTypes is set.
//
// # Ignoring Fields
//
//	type User struct {
//	    Name     string
//	    Password string `mapper:"ignore"` // never read nor written
//	    Token    string `mapper:"-"`
//	}
//
// # Embedded Structs
//
// Embedded struct fields, including pointers to structs, are flattened into their parent. Nil
// embedded pointers are skipped on the source side and allocated on the destination side.
//
// # Thread Safety
//
// An Adapter is safe for concurrent use, including registering converters while adapting.
// Registries are replaced copy-on-write and struct metadata is cached per type.
package adapt
