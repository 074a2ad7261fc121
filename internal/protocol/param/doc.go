// Package param owns the terminal parameter contract.
//
// Ownership boundary:
// - parameter ID catalogue (registry.go)
// - per-kind value codec (kind.go, value.go)
// - the ID -> wire value table (table.go)
// - configuration bundles packed/parsed as one unit (bundle.go, bundles.go)
//
// A Table holds only the value bytes of each item. The 4-byte ID and 1-byte
// length header around them belong to package paramlist.
package param
