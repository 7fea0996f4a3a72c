// Package tabkit contains the core components of tabkit, a library for
// constructing strongly-typed tabular frames from raw, row-oriented data.
// This root package defines types which are employed during the regular use
// of the library, as well as in the extension of the library, and is an
// excellent overview of tabkit's key concepts.
package tabkit
