// Package window runs games in a desktop window using raylib. The package is
// empty unless built with the "window" build tag, which needs cgo and the
// raylib system dependencies.
package window
