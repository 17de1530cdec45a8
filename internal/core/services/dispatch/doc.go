// Package dispatch implements ports.Dispatcher: resolve, check arity, invoke.
package dispatch
