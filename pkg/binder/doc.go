// Package binder fills typed request structs from path parameters for
// handler.Wrap.
package binder
