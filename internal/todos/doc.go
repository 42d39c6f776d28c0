// Package todos holds the todo list state and the rules that change it.
//
// A Store owns an ordered sequence of model.Todo records. It is changed only
// through Dispatch, which applies one of four actions: set, add, remove and
// toggle. Subscribers are told about every change. Persistence and rendering
// are both subscribers.
package todos
