// Package reqparse parses and validates request arguments for the Eucaby
// location-sharing API.
//
// A RequestParser holds an ordered list of Argument definitions. Parsing a
// Values multimap (query string, form or flattened JSON body) runs every
// argument, collects each successfully coerced value into a Namespace and
// reports every failure at once through an *InvalidError. Three classes of
// problems are kept apart:
//   - invalid values: a Coercer rejected the input, or the coerced value is
//     not among the argument's Choices
//   - missing values: a Required argument had no input
//   - unrecognized keys: input keys that no argument declares, reported only
//     by strict parses
//
// The first two land in InvalidError.Errors, keyed by argument name, the last
// in InvalidError.Unparsed. The partially filled Namespace travels with the
// error so handlers can still inspect what did parse.
//
// Coercers are small pure functions of one raw string (see Coercer, Int,
// Bool, Pattern). Domain validators for emails and coordinates, and the
// argument sets of the Eucaby endpoints, live in package args.
//
// Inputs other than Values are turned into one by a Source. Sources are kept
// in a SourceRegistry keyed by input type, and the package level Extract and
// RequestParser.ParseSource use a global registry preloaded with url.Values,
// string maps, JSON byte slices and *http.Request. Handler and WriteError wire
// a parser into net/http.
package reqparse
